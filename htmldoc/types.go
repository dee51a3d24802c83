// Package htmldoc reads an HTML timetable page into the ordered stream of
// blocks the layout classifier walks: headings, paragraphs, emphasis and
// tables, in document order.
package htmldoc

import (
	"github.com/tsawler/timetable/model"
)

// MaxSiblingHops bounds how far back from a table the reader looks for
// sibling context (a "Group N" label placed just before the table).
const MaxSiblingHops = 6

// BlockKind represents the type of a block in document order.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockEmphasis
	BlockTable
)

// String returns the block kind name.
func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockParagraph:
		return "paragraph"
	case BlockEmphasis:
		return "emphasis"
	case BlockTable:
		return "table"
	default:
		return "unknown"
	}
}

// Block is one heading-like node or table, in document order.
type Block struct {
	Kind  BlockKind
	Tag   string
	Text  string // whitespace-normalized text content
	Level int    // For headings (1-6)

	// Table and Preceding are only set for BlockTable.
	Table *model.Table
	// Preceding holds the text of element siblings found within
	// MaxSiblingHops nodes before the table, nearest first.
	Preceding []string
}

// NavigationExclusionMode controls how navigation, headers, and footers are filtered.
type NavigationExclusionMode int

const (
	// NavigationExclusionNone includes all content without filtering.
	NavigationExclusionNone NavigationExclusionMode = iota

	// NavigationExclusionExplicit skips only explicit semantic HTML5 elements:
	// <nav>, <aside>, and ARIA roles (role="navigation", role="complementary").
	// <header> and <footer> are only skipped when they are direct children of <body>
	// or a single top-level wrapper element.
	NavigationExclusionExplicit

	// NavigationExclusionStandard combines explicit element detection with
	// common class/id pattern matching (nav, navbar, menu, footer, sidebar, ...).
	NavigationExclusionStandard
)

// Options configures the reader.
type Options struct {
	NavigationExclusion NavigationExclusionMode
}

// DefaultOptions returns the options used by Open and OpenReader.
func DefaultOptions() Options {
	return Options{NavigationExclusion: NavigationExclusionExplicit}
}
