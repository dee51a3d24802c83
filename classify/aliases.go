package classify

import (
	"regexp"
	"strings"

	"github.com/tsawler/timetable/model"
	"github.com/tsawler/timetable/text"
)

// dayAlias maps a folded day name to its weekday.
type dayAlias struct {
	name string
	day  model.Day
	re   *regexp.Regexp
}

// dayAliases lists day names in lookup order. Names are folded, so
// "Marți", "Marţi" and "Marti" share one entry.
var dayAliases = compileDayAliases([]struct {
	name string
	day  model.Day
}{
	{"luni", model.Monday},
	{"monday", model.Monday},
	{"hetfo", model.Monday},
	{"marti", model.Tuesday},
	{"tuesday", model.Tuesday},
	{"kedd", model.Tuesday},
	{"miercuri", model.Wednesday},
	{"wednesday", model.Wednesday},
	{"szerda", model.Wednesday},
	{"joi", model.Thursday},
	{"thursday", model.Thursday},
	{"csutortok", model.Thursday},
	{"vineri", model.Friday},
	{"friday", model.Friday},
	{"pentek", model.Friday},
})

func compileDayAliases(in []struct {
	name string
	day  model.Day
}) []dayAlias {
	out := make([]dayAlias, len(in))
	for i, a := range in {
		out[i] = dayAlias{
			name: a.name,
			day:  a.day,
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(a.name) + `\b`),
		}
	}
	return out
}

// DayNames returns every folded day alias, in lookup order.
func DayNames() []string {
	names := make([]string, len(dayAliases))
	for i, a := range dayAliases {
		names[i] = a.name
	}
	return names
}

// Day resolves the weekday named anywhere in s as a whole word.
func Day(s string) (model.Day, bool) {
	folded := text.Fold(text.NormalizeSpace(s))
	if folded == "" {
		return "", false
	}
	for _, a := range dayAliases {
		if a.re.MatchString(folded) {
			return a.day, true
		}
	}
	return "", false
}

// IsDayToken reports whether s is nothing more than a day label: it names
// a day and has at most two words ("Luni", "Luni 1").
func IsDayToken(s string) bool {
	if _, ok := Day(s); !ok {
		return false
	}
	return text.WordCount(s) <= 2
}

// Field identifies a schedule field.
type Field int

const (
	FieldDay Field = iota
	FieldTime
	FieldFrequency
	FieldRoom
	FieldType
	FieldCourse
	FieldInstructor
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldDay:
		return "day"
	case FieldTime:
		return "time"
	case FieldFrequency:
		return "frequency"
	case FieldRoom:
		return "room"
	case FieldType:
		return "type"
	case FieldCourse:
		return "course"
	case FieldInstructor:
		return "instructor"
	default:
		return "unknown"
	}
}

// headerAliases maps folded header labels to fields, checked in order.
var headerAliases = []struct {
	field Field
	re    *regexp.Regexp
}{
	{FieldDay, regexp.MustCompile(`\bziua\b|\bday\b|\bnap\b`)},
	{FieldTime, regexp.MustCompile(`\bora\b|\borele\b|\btime\b|\bhours?\b|\bidopont\b`)},
	{FieldFrequency, regexp.MustCompile(`\bfrecventa\b|\bfrequency\b|\bgyakorisag\b`)},
	{FieldRoom, regexp.MustCompile(`\bsala\b|\broom\b|\bterem\b`)},
	{FieldType, regexp.MustCompile(`\btip(?:ul)?\b|\btype\b|\btipus\b`)},
	{FieldCourse, regexp.MustCompile(`\bdisciplina\b|\bmateria\b|\bcourse\b|\btantargy\b`)},
	{FieldInstructor, regexp.MustCompile(`\bcadr(?:ul)?\s+didactic\b|\binstructor\b|\bprofesor\b|\boktato\b`)},
}

// HeaderField resolves a header cell label to the field it names.
func HeaderField(s string) (Field, bool) {
	folded := text.Fold(text.NormalizeSpace(s))
	if folded == "" {
		return 0, false
	}
	for _, h := range headerAliases {
		if h.re.MatchString(folded) {
			return h.field, true
		}
	}
	return 0, false
}

var (
	timeRangeRe     = regexp.MustCompile(`\b(\d{1,2}(?::\d{2})?\s*[-–]\s*\d{1,2}(?::\d{2})?)\b`)
	timeRangeOnlyRe = regexp.MustCompile(`^\d{1,2}(?::\d{2})?\s*[-–]\s*\d{1,2}(?::\d{2})?$`)
	timeSeparatorRe = regexp.MustCompile(`[-–]`)
)

// TimeRange finds the first "HH[:MM] - HH[:MM]" range in s and returns it
// normalized.
func TimeRange(s string) (string, bool) {
	m := timeRangeRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return NormalizeTime(m[1]), true
}

// IsTimeToken reports whether s is exactly a time range.
func IsTimeToken(s string) bool {
	return timeRangeOnlyRe.MatchString(text.NormalizeSpace(s))
}

// NormalizeTime removes spaces and turns the range separator into an en
// dash: "8 - 10" becomes "8–10".
func NormalizeTime(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	loc := timeSeparatorRe.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + "–" + s[loc[1]:]
}

var groupHeadingRe = regexp.MustCompile(`\b(?:grupa|group)\s+(\d{3,4})\b`)

// GroupLabel finds a "Grupa NNN" / "Group NNN" label in s.
func GroupLabel(s string) (int, bool) {
	m := groupHeadingRe.FindStringSubmatch(text.Fold(text.NormalizeSpace(s)))
	if m == nil {
		return 0, false
	}
	return atoi(m[1]), true
}

var groupNumberRe = regexp.MustCompile(`\b(\d{3,4})\b`)

// GroupNumbers returns every 3-4 digit number in s, in order.
func GroupNumbers(s string) []int {
	matches := groupNumberRe.FindAllString(s, -1)
	if matches == nil {
		return nil
	}
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = atoi(m)
	}
	return out
}

// atoi converts a short run of ASCII digits already validated by a regexp.
func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
