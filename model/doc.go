// Package model provides the data structures shared by every stage of
// timetable extraction.
//
// Input side: a [Table] is a raw HTML table as it was read from the page,
// rows of [Cell] values that may still declare row and column spans.
//
// Output side: a [Timetable] maps each student group to its ordered list
// of [DaySchedule] values, Monday to Friday, and each day holds the
// [Entry] values in the order they were encountered on the page.
//
//	tt, err := timetable.ParseString(page, 511, 512)
//	for _, day := range tt.Days(511) {
//	    for _, e := range day.Entries {
//	        fmt.Println(day.Day, e.Time, e.Course, e.Room)
//	    }
//	}
//
// # Errors
//
// Page-level failures are reported as [*ParseError] wrapping one of the
// sentinels [ErrNoTable], [ErrEmptyTable] or [ErrNoGroupColumns]. Rows and
// cells that cannot be classified are never errors; they are omitted.
package model
