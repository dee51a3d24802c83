// Package timetable provides a fluent API for extracting per-group course
// schedules from timetable web pages.
//
// Basic usage:
//
//	tt, err := timetable.Open("orar.html").Parse()
//	if err != nil {
//	    // handle error
//	}
//	for _, group := range tt.GroupIDs() {
//	    fmt.Println(group, tt.Days(group))
//	}
//
// With options:
//
//	tt, err := timetable.Open("orar.html").
//	    Groups(511, 512).
//	    Logger(log).
//	    Parse()
//
// Pages that carry no usable timetable fail with a *model.ParseError;
// errors.Is matches it against model.ErrNoTable, model.ErrEmptyTable and
// model.ErrNoGroupColumns.
//
// For advanced use cases, the lower-level htmldoc and layout packages are
// also available.
package timetable

import (
	"io"
	"strings"

	"github.com/tsawler/timetable/htmldoc"
	"github.com/tsawler/timetable/model"
)

// Open opens an HTML file and returns a Parser for fluent configuration.
// The file is read by the terminal operation.
//
// Example:
//
//	tt, err := timetable.Open("orar.html").Groups(511).Parse()
func Open(filename string) *Parser {
	return &Parser{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates a Parser reading HTML from r. The input is consumed
// immediately; a read or parse failure is reported by the terminal
// operation.
func FromReader(r io.Reader) *Parser {
	p := &Parser{options: defaultOptions()}
	doc, err := htmldoc.OpenReaderWithOptions(r, p.readerOptions())
	if err != nil {
		p.err = err
		return p
	}
	p.doc = doc
	return p
}

// FromDocument creates a Parser from an already-opened htmldoc.Reader.
// Reader options such as NavigationExclusion have no effect on it.
//
// Example:
//
//	doc, err := htmldoc.Open("orar.html")
//	if err != nil {
//	    // handle error
//	}
//	tt, err := timetable.FromDocument(doc).Parse()
func FromDocument(doc *htmldoc.Reader) *Parser {
	return &Parser{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Parse reads a timetable page from r. groups, when given, restricts the
// output to those groups.
func Parse(r io.Reader, groups ...int) (*model.Timetable, error) {
	return FromReader(r).Groups(groups...).Parse()
}

// ParseString parses a timetable page held in memory.
func ParseString(html string, groups ...int) (*model.Timetable, error) {
	return Parse(strings.NewReader(html), groups...)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	tt := timetable.Must(timetable.Open("orar.html").Parse())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
