package classify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/tsawler/timetable/text"
)

var (
	// Frequency markers, matched against folded text.
	week1Re         = regexp.MustCompile(`\b(?:week\s*1|sapt\.?\s*1|saptamana\s*1|impar(?:a)?)\b`)
	week2Re         = regexp.MustCompile(`\b(?:week\s*2|sapt\.?\s*2|saptamana\s*2|par(?:a)?)\b`)
	frequencyLineRe = regexp.MustCompile(`\b(?:week\s*[12]|weekly|sapt|saptamana\s*[12]|saptamanal|impar(?:a)?|par(?:a)?)\b`)

	// Frequency keywords removed from course text. Raw text, so diacritics
	// are spelled out.
	frequencyKeywordRe = regexp.MustCompile(`(?i)\b(?:week\s*[12]|weekly|s[aă]pt\.?\s*[12]?|s[aă]pt[aă]m[aâ]na\s*[12]|s[aă]pt[aă]m[aâ]nal|impar(?:[aă])?|par(?:[aă])?)\b\s*:?`)

	// Single letter session markers: "(C)", "(s)", "(L)".
	typeTagRe = regexp.MustCompile(`(?i)\((?:c|s|l)\)`)

	// Academic titles. The abbreviation must end the word or carry a dot,
	// so "Drept" or "Lecture" are not titles.
	titleRe = regexp.MustCompile(`(?i)\b(?:prof|asist|conf|lect|lector|dr)(?:\.|\b)`)

	roomKeywordRe = regexp.MustCompile(`(?i)\b(?:sala|room|amf(?:iteatru)?|aula|lab(?:orator)?)\b`)
	roomCaptureRe = regexp.MustCompile(`(?i)\b(?:sala|room|amf(?:iteatru)?|aula|lab(?:orator)?)\.?\s*[:\-]?\s*([A-Za-z0-9][A-Za-z0-9._/-]*)`)

	subgroupPrefixRe = regexp.MustCompile(`(?i)^(?:sgr\.?|subgr\.?|gr\.?)\s*[\w/-]+\s*:\s*`)

	// Formation markers are short upper case codes ("IM1", "MIE") or a bare
	// group/subgroup number ("511", "511/2").
	formationNumericRe = regexp.MustCompile(`^\d{3,4}(?:/\d+)?$`)
	formationTokenRe   = regexp.MustCompile(`^[A-Z]{1,6}\d{0,3}$`)

	// Room codes that look like formation markers.
	roomCodePrefixes = []string{"CR", "LAB", "AMF", "AULA", "ROOM", "SALA"}
	roomCodeRe       = regexp.MustCompile(`^[CL]\d+[A-Z0-9._/-]*$`)

	// "[sapt. 1:] course (instructor), room" on a single line.
	inlineEntryRe = regexp.MustCompile(`(?i)^(?:(?:sapt\.?\s*[12]|week\s*[12])\s*:\s*)?` +
		`(?P<course>.+?)\s*\((?P<instructor>[^()]+)\)\s*,\s*(?P<room>[A-Za-z0-9_./-]+)$`)

	multiSpaceRe = regexp.MustCompile(`\s+`)
)

// stripSubgroupPrefix removes a leading "gr. 2:" / "sgr. 511/1:" label.
func stripSubgroupPrefix(line string) string {
	return strings.TrimSpace(subgroupPrefixRe.ReplaceAllString(text.NormalizeSpace(line), ""))
}

// stripInlineMetadata removes subgroup prefixes, type markers and
// frequency keywords, leaving the course text.
func stripInlineMetadata(s string) string {
	s = stripSubgroupPrefix(s)
	s = typeTagRe.ReplaceAllString(s, "")
	s = frequencyKeywordRe.ReplaceAllString(s, "")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.Trim(s, " -:,")
}

// IsFormationMarker reports whether line is a sub-cohort label such as
// "IM1" rather than a room code such as "CR1" or "L302".
func IsFormationMarker(line string) bool {
	cleaned := strings.Trim(stripSubgroupPrefix(line), "() ")
	if cleaned == "" {
		return false
	}
	if formationNumericRe.MatchString(cleaned) {
		return true
	}
	if !formationTokenRe.MatchString(cleaned) {
		return false
	}
	for _, prefix := range roomCodePrefixes {
		if strings.HasPrefix(cleaned, prefix) {
			return false
		}
	}
	return !roomCodeRe.MatchString(cleaned)
}

func isFrequencyLine(line string) bool {
	return frequencyLineRe.MatchString(text.Fold(line))
}

func isRoomLine(line string) bool {
	return roomKeywordRe.MatchString(line)
}

func hasTitle(line string) bool {
	return titleRe.MatchString(line)
}

// isInstructorLine reports whether line names a person: it carries an
// academic title, or has at least two capitalized words and is neither a
// room nor a frequency line.
func isInstructorLine(line string) bool {
	if hasTitle(line) {
		return true
	}
	if isRoomLine(line) {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 {
		return false
	}
	capitalized := 0
	for _, w := range words {
		for _, r := range w {
			if unicode.IsUpper(r) {
				capitalized++
			}
			break
		}
	}
	return capitalized >= 2 && !isFrequencyLine(line)
}

// isTimeOrDayToken reports whether line is only a time range or a day label.
func isTimeOrDayToken(line string) bool {
	return IsTimeToken(line) || IsDayToken(line)
}

// isPlaceholder reports whether s is a lone dash marking an empty slot.
func isPlaceholder(s string) bool {
	switch s {
	case "-", "–", "—", "--":
		return true
	}
	return false
}
