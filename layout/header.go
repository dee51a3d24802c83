package layout

import (
	"strings"

	"github.com/tsawler/timetable/classify"
	"github.com/tsawler/timetable/model"
	"github.com/tsawler/timetable/tables"
	"github.com/tsawler/timetable/text"
)

// header is an explicit header row and the column of each field it names.
type header struct {
	row  int
	cols map[classify.Field]int
}

// mapped reports whether col is claimed by a header field.
func (h header) mapped(col int) bool {
	for _, c := range h.cols {
		if c == col {
			return true
		}
	}
	return false
}

// value returns the normalized text of the column mapped to f in row.
func (h header) value(row []string, f classify.Field) string {
	col, ok := h.cols[f]
	if !ok || col >= len(row) {
		return ""
	}
	return text.NormalizeSpace(row[col])
}

// findHeader picks, among the first scanRows rows, the one naming the most
// fields. Only rows naming both a day and a time column qualify.
func findHeader(g *tables.Grid, scanRows int) (header, bool) {
	best := header{row: -1}
	limit := min(scanRows, g.RowCount())
	for r := 0; r < limit; r++ {
		cols := make(map[classify.Field]int)
		for col, cell := range g.Row(r) {
			f, ok := classify.HeaderField(cell)
			if !ok {
				continue
			}
			if _, seen := cols[f]; !seen {
				cols[f] = col
			}
		}
		_, hasDay := cols[classify.FieldDay]
		_, hasTime := cols[classify.FieldTime]
		if !hasDay || !hasTime {
			continue
		}
		if len(cols) > len(best.cols) {
			best = header{row: r, cols: cols}
		}
	}
	return best, best.row >= 0
}

// dayEntry is one parsed row of an explicit-header table.
type dayEntry struct {
	Day   model.Day
	Entry model.Entry
}

// parseHeaderRows reads every row below the explicit header of g. Rows
// without a day or a time range are skipped, as are rows with no course.
// The boolean is false when g has no day+time header at all.
func parseHeaderRows(g *tables.Grid, scanRows int) ([]dayEntry, bool) {
	h, ok := findHeader(g, scanRows)
	if !ok {
		return nil, false
	}
	dayCol := h.cols[classify.FieldDay]
	timeCol := h.cols[classify.FieldTime]

	var out []dayEntry
	for r := h.row + 1; r < g.RowCount(); r++ {
		row := g.Row(r)

		day, ok := classify.Day(row[dayCol])
		if !ok {
			continue
		}
		slot, ok := classify.TimeRange(row[timeCol])
		if !ok {
			continue
		}

		var blob []string
		var free []string
		for col, cell := range row {
			if cell == "" {
				continue
			}
			blob = append(blob, text.NormalizeSpace(cell))
			if !h.mapped(col) {
				free = append(free, text.Lines(cell)...)
			}
		}
		rowText := strings.Join(blob, " ")
		derived := classify.Lines(free)

		e := model.Entry{
			Time:       slot,
			Frequency:  classify.Frequency(or(h.value(row, classify.FieldFrequency), rowText)),
			Type:       classify.Type(or(h.value(row, classify.FieldType), rowText)),
			Course:     or(h.value(row, classify.FieldCourse), derived.Course),
			Room:       or(h.value(row, classify.FieldRoom), derived.Room),
			Instructor: or(h.value(row, classify.FieldInstructor), derived.Instructor),
		}
		if e.Course == "" {
			continue
		}
		out = append(out, dayEntry{Day: day, Entry: e})
	}
	return out, true
}

// or returns s, or fallback when s is empty.
func or(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
