package layout

import (
	"sort"

	"github.com/tsawler/timetable/model"
)

// Assembler collects schedule entries per group and day.
type Assembler struct {
	entries  map[int]map[model.Day][]model.Entry
	detected map[int]struct{}
}

// NewAssembler creates an empty Assembler.
func NewAssembler() *Assembler {
	return &Assembler{
		entries:  make(map[int]map[model.Day][]model.Entry),
		detected: make(map[int]struct{}),
	}
}

// Add appends entries to the (group, day) bucket, keeping their order.
func (a *Assembler) Add(group int, day model.Day, entries ...model.Entry) {
	if len(entries) == 0 || day.Index() < 0 {
		return
	}
	days, ok := a.entries[group]
	if !ok {
		days = make(map[model.Day][]model.Entry)
		a.entries[group] = days
	}
	days[day] = append(days[day], entries...)
}

// MarkDetected records that the page carried evidence for group.
func (a *Assembler) MarkDetected(group int) {
	a.detected[group] = struct{}{}
}

// HasEntries reports whether any entry was added for group.
func (a *Assembler) HasEntries(group int) bool {
	for _, entries := range a.entries[group] {
		if len(entries) > 0 {
			return true
		}
	}
	return false
}

// Detected returns the detected groups in ascending order.
func (a *Assembler) Detected() []int {
	out := make([]int, 0, len(a.detected))
	for g := range a.detected {
		out = append(out, g)
	}
	sort.Ints(out)
	return out
}

// Build emits a Timetable with one key per target group. Each group lists
// only the weekdays that have entries, Monday first.
func (a *Assembler) Build(layout model.Layout, targets []int) *model.Timetable {
	tt := &model.Timetable{
		Layout:         layout,
		Groups:         make(map[int][]model.DaySchedule, len(targets)),
		DetectedGroups: a.Detected(),
	}
	for _, group := range targets {
		days := []model.DaySchedule{}
		for _, day := range model.Weekdays {
			entries := a.entries[group][day]
			if len(entries) == 0 {
				continue
			}
			out := make([]model.Entry, len(entries))
			copy(out, entries)
			days = append(days, model.DaySchedule{Day: day, Entries: out})
		}
		tt.Groups[group] = days
	}
	return tt
}
