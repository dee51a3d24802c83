// Package classify turns free-form timetable text into schedule fields.
//
// Source cells carry day, time, frequency, session type, room, instructor
// and course as loosely formatted lines with no reliable delimiter, in
// Romanian, Hungarian or English:
//
//	Programare (C)
//	Prof. Ada Lovelace
//	Sala CR1
//
// [Cell] classifies one cell. Each field is resolved by its own ordered
// list of rules; the first rule that matches wins. The lists are plain
// slices ([frequencyRules], [typeRules], [roomRules], [instructorRules],
// [courseRules]) so a new heuristic is inserted at an explicit priority.
//
// The static alias tables ([Day], [HeaderField]) are shared with the
// layout package, which uses them to find day labels, time ranges and
// header columns.
package classify
