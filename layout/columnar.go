package layout

import (
	"github.com/tsawler/timetable/classify"
	"github.com/tsawler/timetable/htmldoc"
	"github.com/tsawler/timetable/model"
	"github.com/tsawler/timetable/tables"
)

// columnar parses the page's main table as one column per group.
func (c *Classifier) columnar(blocks []htmldoc.Block, expected groupSet) (*model.Timetable, error) {
	log := c.config.Logger

	var candidates []*model.Table
	for _, b := range blocks {
		if b.Kind == htmldoc.BlockTable && b.Table != nil {
			candidates = append(candidates, b.Table)
		}
	}
	if len(candidates) == 0 {
		return nil, &model.ParseError{Layout: model.LayoutColumnar, Err: model.ErrNoTable}
	}

	grid := tables.BuildGrid(tables.SelectMain(candidates, c.config.Tables))
	if grid.IsEmpty() {
		return nil, &model.ParseError{Layout: model.LayoutColumnar, Err: model.ErrEmptyTable}
	}

	cols, fromHeader := detectGroupColumns(grid, expected, c.config.GroupScanRows)
	if len(cols) == 0 {
		return nil, &model.ParseError{Layout: model.LayoutColumnar, Err: model.ErrNoGroupColumns}
	}
	log.Debug().
		Interface("columns", map[int]int(cols)).
		Bool("from_header", fromHeader).
		Msg("group columns resolved")

	asm := NewAssembler()
	if fromHeader {
		for _, g := range cols.groups() {
			asm.MarkDetected(g)
		}
	}

	order := cols.columns()
	var day model.Day
	for r := 0; r < grid.RowCount(); r++ {
		row := grid.Row(r)
		if d, ok := rowDay(row, cols); ok {
			day = d
		}
		if day == "" {
			continue
		}
		slot, ok := rowTime(row, cols)
		if !ok {
			continue
		}

		// Several columns may hold one group (subgroups, colspan), so
		// entries are gathered per group before they are deduplicated.
		byGroup := make(map[int][]model.Entry)
		var groups []int
		for _, col := range order {
			group := cols[col]
			entries := classify.Cell(row[col], slot)
			if len(entries) == 0 {
				continue
			}
			if _, seen := byGroup[group]; !seen {
				groups = append(groups, group)
			}
			byGroup[group] = append(byGroup[group], entries...)
		}
		for _, group := range groups {
			asm.Add(group, day, classify.Dedupe(byGroup[group])...)
		}
	}

	if !fromHeader {
		for _, g := range cols.groups() {
			if asm.HasEntries(g) {
				asm.MarkDetected(g)
			}
		}
	}

	targets := cols.groups()
	if len(expected) > 0 {
		targets = expected.sorted()
	}
	return asm.Build(model.LayoutColumnar, targets), nil
}

// rowDay finds a day label among the cells outside the group columns.
func rowDay(row []string, cols columnMap) (model.Day, bool) {
	for col, cell := range row {
		if _, isGroup := cols[col]; isGroup {
			continue
		}
		if day, ok := classify.Day(cell); ok {
			return day, true
		}
	}
	return "", false
}

// rowTime finds the row's time range, looking outside the group columns
// first.
func rowTime(row []string, cols columnMap) (string, bool) {
	for col, cell := range row {
		if _, isGroup := cols[col]; isGroup {
			continue
		}
		if slot, ok := classify.TimeRange(cell); ok {
			return slot, true
		}
	}
	for _, col := range cols.columns() {
		if slot, ok := classify.TimeRange(row[col]); ok {
			return slot, true
		}
	}
	return "", false
}
