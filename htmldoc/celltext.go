package htmldoc

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/timetable/text"
)

// textWriter accumulates text while tracking whether the output currently
// ends a line, so block boundaries add at most one newline.
type textWriter struct {
	sb        strings.Builder
	atNewline bool
	exclude   func(*html.Node) bool
}

func (w *textWriter) text(s string) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t', '\f':
			return ' '
		}
		return r
	}, s)
	w.sb.WriteString(s)
	if strings.TrimSpace(s) != "" {
		w.atNewline = false
	}
}

// lineBreak always emits a newline; two in a row leave a blank line.
func (w *textWriter) lineBreak() {
	w.sb.WriteString("\n")
	w.atNewline = true
}

// blockBoundary ends the current line unless it is already ended.
func (w *textWriter) blockBoundary() {
	if !w.atNewline {
		w.lineBreak()
	}
}

// isBlockTag reports whether the element starts a new line of text.
func isBlockTag(tag string) bool {
	switch tag {
	case "p", "div", "li", "ul", "ol", "tr", "table", "blockquote", "pre",
		"h1", "h2", "h3", "h4", "h5", "h6", "section", "article":
		return true
	}
	return false
}

func (w *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
		if shouldSkipElement(n.Data) || (w.exclude != nil && w.exclude(n)) {
			return
		}
		switch {
		case n.Data == "br":
			w.lineBreak()
			return
		case n.Data == "td" || n.Data == "th":
			w.text(" ")
		case isBlockTag(n.Data):
			w.blockBoundary()
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}

	if n.Type == html.ElementNode && isBlockTag(n.Data) {
		w.blockBoundary()
	}
}

// cellText extracts the text of a table cell keeping its line structure:
// <br> and block elements end lines, a doubled <br> leaves a blank line
// between stacked entries, and runs of spaces collapse.
func cellText(n *html.Node) string {
	w := &textWriter{atNewline: true}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
	return text.NormalizeLines(w.sb.String())
}

// getTextContent extracts all text content from a node and its descendants,
// with line breaks where <br> and block elements appear.
func getTextContent(n *html.Node) string {
	return textContent(n, nil)
}

// textContent is getTextContent with descendants matching exclude left out.
func textContent(n *html.Node, exclude func(*html.Node) bool) string {
	w := &textWriter{atNewline: true, exclude: exclude}
	w.walk(n)
	return text.NormalizeLines(w.sb.String())
}
