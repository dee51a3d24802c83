package model

import (
	"sort"
)

// Day is a teaching weekday.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
)

// Weekdays lists the teaching days in output order.
var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

// Index returns the position of d in Weekdays, or -1.
func (d Day) Index() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return -1
}

// Frequency tells whether a session runs every week or on alternate weeks.
type Frequency string

const (
	Weekly Frequency = "weekly"
	Week1  Frequency = "week1"
	Week2  Frequency = "week2"
)

// SessionType is the kind of teaching session.
type SessionType string

const (
	Lecture SessionType = "lecture"
	Seminar SessionType = "seminar"
	Lab     SessionType = "lab"
)

// Layout identifies which page structure produced a Timetable.
type Layout string

const (
	// LayoutSectioned is one table per group, each introduced by a heading.
	LayoutSectioned Layout = "sectioned"
	// LayoutColumnar is one shared table with a column per group.
	LayoutColumnar Layout = "columnar"
)

// Entry is a single scheduled session. Two entries are duplicates when
// every field is equal.
type Entry struct {
	Time       string      `json:"time"`
	Frequency  Frequency   `json:"frequency"`
	Course     string      `json:"course"`
	Type       SessionType `json:"type"`
	Room       string      `json:"room"`
	Instructor string      `json:"instructor"`
}

// DaySchedule holds the entries of one weekday in page order.
type DaySchedule struct {
	Day     Day     `json:"day"`
	Entries []Entry `json:"entries"`
}

// Timetable is the normalized result of parsing one page.
type Timetable struct {
	// Layout is the strategy that produced this result.
	Layout Layout

	// Groups maps a group identifier to its non-empty weekdays in
	// Monday to Friday order. Every target group has a key, even when
	// no entry was found for it.
	Groups map[int][]DaySchedule

	// DetectedGroups lists, in ascending order, the groups for which the
	// page itself carried evidence. It never echoes the caller's request.
	DetectedGroups []int
}

// Days returns the schedule of a group, or nil when the group is unknown.
func (t *Timetable) Days(group int) []DaySchedule {
	if t == nil {
		return nil
	}
	return t.Groups[group]
}

// Day returns the entries of one weekday for a group.
func (t *Timetable) Day(group int, day Day) []Entry {
	for _, ds := range t.Days(group) {
		if ds.Day == day {
			return ds.Entries
		}
	}
	return nil
}

// GroupIDs returns the output group keys in ascending order.
func (t *Timetable) GroupIDs() []int {
	if t == nil {
		return nil
	}
	ids := make([]int, 0, len(t.Groups))
	for id := range t.Groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// EntryCount returns the total number of entries across all groups.
func (t *Timetable) EntryCount() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, days := range t.Groups {
		for _, ds := range days {
			n += len(ds.Entries)
		}
	}
	return n
}
