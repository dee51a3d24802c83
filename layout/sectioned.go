package layout

import (
	"github.com/tsawler/timetable/classify"
	"github.com/tsawler/timetable/htmldoc"
	"github.com/tsawler/timetable/model"
	"github.com/tsawler/timetable/tables"
)

// sectioned parses one explicit-header table per group. The boolean is
// false when no table produced an entry.
func (c *Classifier) sectioned(blocks []htmldoc.Block, expected groupSet) (*model.Timetable, bool) {
	log := c.config.Logger
	asm := NewAssembler()
	current := 0

	for i, b := range blocks {
		if b.Kind != htmldoc.BlockTable {
			if group, ok := classify.GroupLabel(b.Text); ok {
				current = group
			}
			continue
		}

		group, ok := tableGroup(b)
		if ok {
			current = group
		} else {
			group = current
		}
		if group == 0 {
			continue
		}
		if len(expected) > 0 && !expected.has(group) {
			log.Debug().Int("table", i).Int("group", group).Msg("skipping table of unexpected group")
			continue
		}

		grid := tables.BuildGrid(b.Table)
		if grid.IsEmpty() {
			continue
		}
		rows, ok := parseHeaderRows(grid, c.config.HeaderScanRows)
		if !ok {
			log.Debug().Int("table", i).Int("group", group).Msg("skipping table without day and time header")
			continue
		}
		if len(rows) == 0 {
			continue
		}

		asm.MarkDetected(group)
		for _, r := range rows {
			asm.Add(group, r.Day, r.Entry)
		}
	}

	detected := asm.Detected()
	if len(detected) == 0 {
		return nil, false
	}
	targets := detected
	if len(expected) > 0 {
		targets = expected.sorted()
	}
	return asm.Build(model.LayoutSectioned, targets), true
}

// tableGroup finds the group a table belongs to from its caption, its
// first three rows, then the labels just before it.
func tableGroup(b htmldoc.Block) (int, bool) {
	t := b.Table
	if t == nil {
		return 0, false
	}
	if group, ok := classify.GroupLabel(t.Caption); ok {
		return group, true
	}
	for i := 0; i < min(3, t.RowCount()); i++ {
		if group, ok := classify.GroupLabel(t.RowText(i)); ok {
			return group, true
		}
	}
	for _, s := range b.Preceding {
		if group, ok := classify.GroupLabel(s); ok {
			return group, true
		}
	}
	return 0, false
}
