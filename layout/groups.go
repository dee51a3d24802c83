package layout

import (
	"sort"

	"github.com/tsawler/timetable/classify"
	"github.com/tsawler/timetable/tables"
)

// groupSet is the caller's expected groups. A nil set means "accept any".
type groupSet map[int]struct{}

func newGroupSet(groups []int) groupSet {
	var s groupSet
	for _, g := range groups {
		if g <= 0 {
			continue
		}
		if s == nil {
			s = make(groupSet, len(groups))
		}
		s[g] = struct{}{}
	}
	return s
}

func (s groupSet) has(g int) bool {
	_, ok := s[g]
	return ok
}

func (s groupSet) sorted() []int {
	out := make([]int, 0, len(s))
	for g := range s {
		out = append(out, g)
	}
	sort.Ints(out)
	return out
}

// columnMap maps a grid column to the group it holds.
type columnMap map[int]int

// columns returns the mapped columns in ascending order.
func (m columnMap) columns() []int {
	out := make([]int, 0, len(m))
	for col := range m {
		out = append(out, col)
	}
	sort.Ints(out)
	return out
}

// groups returns the distinct mapped groups in ascending order.
func (m columnMap) groups() []int {
	seen := make(groupSet, len(m))
	for _, g := range m {
		seen[g] = struct{}{}
	}
	return seen.sorted()
}

// headerGroup reads the group a header cell names. With an expected set,
// the cell must name exactly one distinct member; several members make the
// cell ambiguous and it is ignored. Without one, the cell must hold exactly
// one 3-4 digit number.
func headerGroup(cell string, expected groupSet) (int, bool) {
	numbers := classify.GroupNumbers(cell)
	if len(numbers) == 0 {
		return 0, false
	}
	if len(expected) == 0 {
		if len(numbers) == 1 {
			return numbers[0], true
		}
		return 0, false
	}

	found := 0
	for _, n := range numbers {
		if !expected.has(n) {
			continue
		}
		if found != 0 && found != n {
			return 0, false
		}
		found = n
	}
	return found, found != 0
}

// detectGroupColumns maps grid columns to groups using the first scanRows
// rows. The row resolving the most columns wins; ties keep the earlier row.
// When no row resolves anything and groups are expected, the last columns
// of the grid are assumed to hold the expected groups in ascending order;
// fromHeader is then false.
func detectGroupColumns(g *tables.Grid, expected groupSet, scanRows int) (m columnMap, fromHeader bool) {
	limit := min(scanRows, g.RowCount())
	for r := 0; r < limit; r++ {
		mapping := columnMap{}
		for col, cell := range g.Row(r) {
			if group, ok := headerGroup(cell, expected); ok {
				mapping[col] = group
			}
		}
		if len(mapping) > len(m) {
			m = mapping
		}
	}
	if len(m) > 0 {
		return m, true
	}

	if len(expected) == 0 || g.IsEmpty() {
		return nil, false
	}
	width := g.ColCount()
	groups := expected.sorted()
	start := max(0, width-len(groups))
	m = columnMap{}
	for i, col := 0, start; col < width && i < len(groups); i, col = i+1, col+1 {
		m[col] = groups[i]
	}
	if len(m) == 0 {
		return nil, false
	}
	return m, false
}
