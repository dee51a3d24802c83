package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips combining marks after compatibility
// decomposition, so that accented and cedilla/comma-below variants compare
// equal to their plain ASCII spelling.
func Fold(s string) string {
	// transform.Chain keeps internal state; build one per call so Fold is
	// safe for concurrent use.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// NormalizeSpace collapses every run of whitespace, newlines included,
// into a single space and trims the result.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeLines collapses whitespace inside each line, trims every line
// and reduces runs of blank lines to a single blank line. Leading and
// trailing blank lines are removed.
func NormalizeLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var out []string
	blank := false
	for _, line := range strings.Split(s, "\n") {
		line = NormalizeSpace(line)
		if line == "" {
			blank = len(out) > 0
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Lines returns the non-empty normalized lines of s.
func Lines(s string) []string {
	var lines []string
	for _, line := range strings.Split(NormalizeLines(s), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Chunks splits s on blank lines. Each chunk is normalized with
// NormalizeLines and empty chunks are dropped.
func Chunks(s string) []string {
	var chunks []string
	for _, chunk := range strings.Split(NormalizeLines(s), "\n\n") {
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// WordCount returns the number of whitespace separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
