// Package layout turns the block stream of a timetable page into a
// per-group schedule.
//
// Timetable pages come in two shapes, tried in this order:
//
//   - sectioned: one table per group, introduced by a "Grupa 211"
//     heading, caption or nearby label. Each table carries an explicit
//     header row naming its columns (Ziua, Ora, Sala, ...).
//   - columnar: one shared table with a column per group, found by
//     scoring every table on the page.
//
// The [Classifier] runs both strategies:
//
//	c := layout.NewClassifier()
//	tt, err := c.Classify(reader.Blocks(), []int{511, 512})
//
// Page-level failures (no table, no group columns) are returned as a
// *model.ParseError. Rows and cells that cannot be classified are
// skipped silently.
//
// # Assembly
//
// The [Assembler] collects entries per group and day in the order the
// tables are read and emits each group's non-empty weekdays from Monday to
// Friday.
package layout
