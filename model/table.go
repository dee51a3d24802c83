package model

import (
	"strings"
)

// Table represents a table as read from the source document, before any
// span resolution.
type Table struct {
	Caption string
	Rows    [][]Cell
}

// Cell represents a table cell
type Cell struct {
	Text     string
	RowSpan  int
	ColSpan  int
	IsHeader bool
}

// NewCell returns a cell with unit spans.
func NewCell(text string) Cell {
	return Cell{Text: text, RowSpan: 1, ColSpan: 1}
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// RowText returns the text of row i with cells joined by single spaces.
// Out of range indexes yield an empty string.
func (t *Table) RowText(i int) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	parts := make([]string, 0, len(t.Rows[i]))
	for _, cell := range t.Rows[i] {
		if cell.Text != "" {
			parts = append(parts, cell.Text)
		}
	}
	return strings.Join(parts, " ")
}

// GetText returns the caption and every row, one row per line.
func (t *Table) GetText() string {
	var sb strings.Builder
	if t.Caption != "" {
		sb.WriteString(t.Caption)
		sb.WriteString("\n")
	}
	for i := range t.Rows {
		sb.WriteString(t.RowText(i))
		sb.WriteString("\n")
	}
	return sb.String()
}
