package classify

import (
	"strings"

	"github.com/tsawler/timetable/model"
	"github.com/tsawler/timetable/text"
)

// Cell classifies the text of one timetable cell into zero or more
// entries for the given time slot. A cell may stack several entries
// separated by blank lines. Identical entries are returned once.
func Cell(cellText, timeSlot string) []model.Entry {
	cellText = text.NormalizeLines(cellText)
	if rejectCell(cellText) {
		return nil
	}

	var entries []model.Entry
	for _, raw := range text.Chunks(cellText) {
		if inline := inlineEntries(raw, timeSlot); len(inline) > 0 {
			entries = append(entries, inline...)
			continue
		}

		c := newChunk(raw, strings.Split(raw, "\n"))
		if len(c.lines) == 0 && len(c.markers) == 0 {
			continue
		}
		f := c.classify()
		if f.Course == "" {
			continue
		}
		entries = append(entries, f.entry(timeSlot))
	}
	return Dedupe(entries)
}

// rejectCell reports whether the whole cell is empty, a placeholder dash,
// or nothing but a day label or a time range.
func rejectCell(s string) bool {
	return s == "" || isPlaceholder(s) || IsDayToken(s) || IsTimeToken(s)
}

// inlineEntries parses every line of raw in the compact
// "[sapt. 1:] course (instructor), room" form.
func inlineEntries(raw, timeSlot string) []model.Entry {
	var entries []model.Entry
	for _, line := range strings.Split(raw, "\n") {
		if e, ok := inlineEntry(line, timeSlot); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

func inlineEntry(line, timeSlot string) (model.Entry, bool) {
	stripped := stripSubgroupPrefix(line)
	if stripped == "" {
		return model.Entry{}, false
	}
	m := inlineEntryRe.FindStringSubmatch(stripped)
	if m == nil {
		return model.Entry{}, false
	}
	course := stripInlineMetadata(m[inlineEntryRe.SubexpIndex("course")])
	if course == "" {
		return model.Entry{}, false
	}
	return model.Entry{
		Time:       timeSlot,
		Frequency:  Frequency(stripped),
		Course:     course,
		Type:       Type(stripped),
		Room:       text.NormalizeSpace(m[inlineEntryRe.SubexpIndex("room")]),
		Instructor: text.NormalizeSpace(m[inlineEntryRe.SubexpIndex("instructor")]),
	}, true
}

func (f Fields) entry(timeSlot string) model.Entry {
	return model.Entry{
		Time:       timeSlot,
		Frequency:  f.Frequency,
		Course:     f.Course,
		Type:       f.Type,
		Room:       f.Room,
		Instructor: f.Instructor,
	}
}

// Dedupe drops repeated entries, keeping first occurrences in order.
func Dedupe(entries []model.Entry) []model.Entry {
	if len(entries) < 2 {
		return entries
	}
	seen := make(map[model.Entry]struct{}, len(entries))
	out := entries[:0:0]
	for _, e := range entries {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Frequency detects the week frequency named in s.
func Frequency(s string) model.Frequency {
	return first(frequencyRules, &chunk{raw: s, folded: text.Fold(s)}, model.Weekly)
}

// Type detects the session type named in s.
func Type(s string) model.SessionType {
	return first(typeRules, &chunk{raw: s, folded: text.Fold(s)}, model.Lecture)
}

// Lines classifies free lines, as gathered from the unmapped cells of a
// table row, with the same heuristics Cell applies to a chunk.
func Lines(lines []string) Fields {
	c := newChunk(strings.Join(lines, "\n"), lines)
	return c.classify()
}
