package classify

import (
	"regexp"
	"strings"

	"github.com/tsawler/timetable/model"
	"github.com/tsawler/timetable/text"
)

// chunk is one logical entry being classified. Rules read its lines and
// the fields resolved by earlier rules.
type chunk struct {
	raw     string   // the chunk text, lines joined by "\n"
	folded  string   // text.Fold(raw)
	lines   []string // content lines: no day/time tokens, no formation markers
	markers []string // formation marker lines set aside from lines

	fields Fields
}

// Fields are the classified values of one entry, without its time.
type Fields struct {
	Frequency  model.Frequency
	Type       model.SessionType
	Room       string
	Instructor string
	Course     string
}

// rule is one heuristic: it either resolves a value or passes.
type rule[T any] struct {
	name  string
	apply func(c *chunk) (T, bool)
}

// first returns the value of the first rule that applies, or fallback.
func first[T any](rules []rule[T], c *chunk, fallback T) T {
	for _, r := range rules {
		if v, ok := r.apply(c); ok {
			return v
		}
	}
	return fallback
}

// foldedMatch builds a rule that yields v when re matches the folded chunk.
func foldedMatch[T any](name string, re *regexp.Regexp, v T) rule[T] {
	return rule[T]{name: name, apply: func(c *chunk) (T, bool) {
		return v, re.MatchString(c.folded)
	}}
}

// rawMatch builds a rule that yields v when re matches the raw chunk.
func rawMatch[T any](name string, re *regexp.Regexp, v T) rule[T] {
	return rule[T]{name: name, apply: func(c *chunk) (T, bool) {
		return v, re.MatchString(c.raw)
	}}
}

// frequencyRules: a marker for both weeks means every week.
var frequencyRules = []rule[model.Frequency]{
	{name: "both weeks", apply: func(c *chunk) (model.Frequency, bool) {
		return model.Weekly, week1Re.MatchString(c.folded) && week2Re.MatchString(c.folded)
	}},
	foldedMatch("week 1 marker", week1Re, model.Week1),
	foldedMatch("week 2 marker", week2Re, model.Week2),
}

// typeRules: parenthesized markers outrank free keywords.
var typeRules = []rule[model.SessionType]{
	rawMatch("lecture marker", regexp.MustCompile(`(?i)\((?:c|curs)\)`), model.Lecture),
	rawMatch("seminar marker", regexp.MustCompile(`(?i)\((?:s|sem)\)`), model.Seminar),
	rawMatch("lab marker", regexp.MustCompile(`(?i)\((?:l|lab)\)`), model.Lab),
	foldedMatch("lecture keyword", regexp.MustCompile(`\b(?:lecture|course|curs)\b`), model.Lecture),
	foldedMatch("seminar keyword", regexp.MustCompile(`\bseminar\b`), model.Seminar),
	foldedMatch("lab keyword", regexp.MustCompile(`\b(?:lab|laborator)\b`), model.Lab),
}

var roomRules = []rule[string]{
	{name: "keyword and code", apply: func(c *chunk) (string, bool) {
		for _, line := range c.lines {
			if m := roomCaptureRe.FindStringSubmatch(line); m != nil {
				return strings.TrimSpace(m[1]), true
			}
		}
		return "", false
	}},
	{name: "keyword line", apply: func(c *chunk) (string, bool) {
		for _, line := range c.lines {
			if isRoomLine(line) {
				return text.NormalizeSpace(line), true
			}
		}
		return "", false
	}},
	{name: "lone token", apply: func(c *chunk) (string, bool) {
		// The first content line is where the course sits, even when it is
		// a single word.
		for i, line := range c.lines {
			token := text.NormalizeSpace(line)
			if i == 0 || token == "" || strings.Contains(token, " ") {
				continue
			}
			if isFrequencyLine(token) || IsFormationMarker(token) || isTimeOrDayToken(token) || hasTitle(token) {
				continue
			}
			return token, true
		}
		return "", false
	}},
}

var instructorRules = []rule[string]{
	{name: "academic title", apply: func(c *chunk) (string, bool) {
		for _, line := range c.lines {
			if hasTitle(line) {
				return text.NormalizeSpace(line), true
			}
		}
		return "", false
	}},
	{name: "capitalized name", apply: func(c *chunk) (string, bool) {
		for i, line := range c.lines {
			// A capitalized first line is the course title when more follows.
			if i == 0 && len(c.lines) > 1 {
				continue
			}
			if c.fields.Room != "" && text.NormalizeSpace(line) == c.fields.Room {
				continue
			}
			if isInstructorLine(line) {
				return text.NormalizeSpace(line), true
			}
		}
		return "", false
	}},
}

var courseRules = []rule[string]{
	{name: "first plain line", apply: func(c *chunk) (string, bool) {
		for _, line := range c.lines {
			if isRoomLine(line) || isInstructorLine(line) || IsFormationMarker(line) {
				continue
			}
			if course := stripInlineMetadata(line); course != "" {
				return course, true
			}
		}
		return "", false
	}},
	{name: "any content line", apply: func(c *chunk) (string, bool) {
		for _, line := range c.lines {
			if course := stripInlineMetadata(line); course != "" {
				return course, true
			}
		}
		return "", false
	}},
	{name: "formation marker", apply: func(c *chunk) (string, bool) {
		for _, line := range c.markers {
			if course := stripInlineMetadata(line); course != "" {
				return course, true
			}
		}
		return "", false
	}},
}

// classify runs the field chain in priority order: frequency, type,
// room, instructor, course. Later fields may consult earlier ones.
func (c *chunk) classify() Fields {
	c.fields.Frequency = first(frequencyRules, c, model.Weekly)
	c.fields.Type = first(typeRules, c, model.Lecture)
	c.fields.Room = first(roomRules, c, "")
	c.fields.Instructor = first(instructorRules, c, "")
	c.fields.Course = first(courseRules, c, "")
	return c.fields
}

// newChunk prepares lines for classification. Day and time tokens are
// dropped; formation markers are set aside.
func newChunk(raw string, lines []string) *chunk {
	c := &chunk{raw: raw, folded: text.Fold(raw)}
	for _, line := range lines {
		switch {
		case line == "" || isTimeOrDayToken(line):
		case IsFormationMarker(line):
			c.markers = append(c.markers, line)
		default:
			c.lines = append(c.lines, line)
		}
	}
	return c
}
