package tables

import (
	"strings"

	"github.com/tsawler/timetable/classify"
	"github.com/tsawler/timetable/model"
	"github.com/tsawler/timetable/text"
)

// Config weights the main-table heuristic.
type Config struct {
	// DayWeight is added for every distinct day name found in the table.
	DayWeight int

	// MaxGroupHits caps how much 3-4 digit numbers may contribute, so a
	// long list of numbers cannot outweigh day labels.
	MaxGroupHits int
}

// DefaultConfig returns the weights used for timetable pages.
func DefaultConfig() Config {
	return Config{
		DayWeight:    10,
		MaxGroupHits: 40,
	}
}

// Score rates how much t looks like a timetable: day names weigh most,
// then group numbers, then the number of rows.
func Score(t *model.Table, cfg Config) int {
	if t == nil {
		return 0
	}
	folded := text.Fold(text.NormalizeSpace(t.GetText()))

	dayHits := 0
	for _, name := range classify.DayNames() {
		if strings.Contains(folded, name) {
			dayHits++
		}
	}

	groupHits := len(classify.GroupNumbers(folded))
	if groupHits > cfg.MaxGroupHits {
		groupHits = cfg.MaxGroupHits
	}

	return dayHits*cfg.DayWeight + groupHits + t.RowCount()
}

// SelectMain returns the highest scoring table. Ties go to the earlier
// table. It returns nil when tables is empty.
func SelectMain(tables []*model.Table, cfg Config) *model.Table {
	var best *model.Table
	bestScore := -1
	for _, t := range tables {
		if t == nil {
			continue
		}
		if s := Score(t, cfg); s > bestScore {
			best, bestScore = t, s
		}
	}
	return best
}
