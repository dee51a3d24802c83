package tables

import (
	"github.com/tsawler/timetable/model"
)

// maxColSpan caps absurd colspan values the same way browsers do.
const maxColSpan = 1000

// Grid is a rectangular matrix of cell text. It is immutable once built.
type Grid struct {
	rows  [][]string
	width int
}

// pendingSpan is a vertical span still owed to the rows below its origin.
type pendingSpan struct {
	rows int // remaining rows to fill
	text string
}

// BuildGrid resolves the spans of t into a Grid.
//
// For each column a pending vertical span is tracked. Rows are processed
// left to right: pending spans at the current column are emitted before
// the next real cell is consumed, a consumed cell is repeated across its
// colspan and registers a pending span of rowspan-1 for each column it
// covers, and spans still pending after the last real cell are flushed to
// the right edge of the row.
func BuildGrid(t *model.Table) *Grid {
	g := &Grid{}
	if t == nil {
		return g
	}

	var pending []pendingSpan

	// fill emits pending spans starting at col and returns the next free column.
	fill := func(row []string, col int) ([]string, int) {
		for col < len(pending) && pending[col].rows > 0 {
			row = append(row, pending[col].text)
			pending[col].rows--
			col++
		}
		return row, col
	}

	for _, cells := range t.Rows {
		row := make([]string, 0, len(cells))
		col := 0
		for _, cell := range cells {
			row, col = fill(row, col)

			rowSpan := cell.RowSpan
			if rowSpan < 1 {
				rowSpan = 1
			}
			colSpan := cell.ColSpan
			if colSpan < 1 {
				colSpan = 1
			}
			if colSpan > maxColSpan {
				colSpan = maxColSpan
			}

			for i := 0; i < colSpan; i++ {
				row = append(row, cell.Text)
				if rowSpan > 1 {
					for len(pending) <= col {
						pending = append(pending, pendingSpan{})
					}
					pending[col] = pendingSpan{rows: rowSpan - 1, text: cell.Text}
				}
				col++
			}
		}
		// Flush spans owed to the right of the last real cell. A gap before
		// a later span is kept as an empty cell so the span stays in its column.
		for ; hasPendingFrom(pending, col); col++ {
			if pending[col].rows > 0 {
				row = append(row, pending[col].text)
				pending[col].rows--
			} else {
				row = append(row, "")
			}
		}

		g.rows = append(g.rows, row)
		if len(row) > g.width {
			g.width = len(row)
		}
	}

	for i, row := range g.rows {
		for len(row) < g.width {
			row = append(row, "")
		}
		g.rows[i] = row
	}

	return g
}

func hasPendingFrom(pending []pendingSpan, col int) bool {
	for i := col; i < len(pending); i++ {
		if pending[i].rows > 0 {
			return true
		}
	}
	return false
}

// FromRows builds a Grid from already rectangular-or-ragged rows of text.
// Short rows are padded. The input is copied.
func FromRows(rows [][]string) *Grid {
	t := &model.Table{Rows: make([][]model.Cell, len(rows))}
	for i, row := range rows {
		t.Rows[i] = make([]model.Cell, len(row))
		for j, text := range row {
			t.Rows[i][j] = model.NewCell(text)
		}
	}
	return BuildGrid(t)
}

// RowCount returns the number of rows
func (g *Grid) RowCount() int {
	return len(g.rows)
}

// ColCount returns the number of columns, identical for every row.
func (g *Grid) ColCount() int {
	return g.width
}

// IsEmpty reports whether the grid has no rows.
func (g *Grid) IsEmpty() bool {
	return len(g.rows) == 0
}

// At returns the text at (row, col), or "" when out of range.
func (g *Grid) At(row, col int) string {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= g.width {
		return ""
	}
	return g.rows[row][col]
}

// Row returns a copy of row i, or nil when out of range.
func (g *Grid) Row(i int) []string {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	out := make([]string, len(g.rows[i]))
	copy(out, g.rows[i])
	return out
}

// Rows returns a copy of every row.
func (g *Grid) Rows() [][]string {
	out := make([][]string, len(g.rows))
	for i := range g.rows {
		out[i] = g.Row(i)
	}
	return out
}
