package timetable

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/tsawler/timetable/htmldoc"
	"github.com/tsawler/timetable/layout"
	"github.com/tsawler/timetable/model"
)

// Parser provides a fluent interface for parsing timetable pages.
// Each configuration method returns a new Parser instance, making it
// safe for concurrent use and allowing method chaining.
type Parser struct {
	// Source
	filename string
	doc      *htmldoc.Reader

	// Configuration
	options ParseOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Parser with a deep copy of options.
func (p *Parser) clone() *Parser {
	return &Parser{
		filename: p.filename,
		doc:      p.doc,
		options:  p.options.clone(),
		err:      p.err,
	}
}

func (p *Parser) readerOptions() htmldoc.Options {
	return htmldoc.Options{NavigationExclusion: p.options.navigation}
}

// document returns the parsed page, reading the file on first use.
func (p *Parser) document() (*htmldoc.Reader, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.doc != nil {
		return p.doc, nil
	}
	if p.filename == "" {
		return nil, errors.New("no filename specified")
	}
	return htmldoc.OpenWithOptions(p.filename, p.readerOptions())
}

// ============================================================================
// Configuration Methods (return new Parser instance)
// ============================================================================

// Groups restricts the output to the given group identifiers. Every
// listed group gets a key in the result, even when the page has nothing
// for it. Multiple calls are cumulative.
//
// Example:
//
//	tt, err := timetable.Open("orar.html").Groups(511, 512).Parse()
func (p *Parser) Groups(groups ...int) *Parser {
	newP := p.clone()
	newP.options.groups = append(newP.options.groups, groups...)
	return newP
}

// Logger sets the logger receiving debug traces of layout decisions.
// The default discards everything.
func (p *Parser) Logger(l zerolog.Logger) *Parser {
	newP := p.clone()
	newP.options.logger = l
	return newP
}

// NavigationExclusion selects which navigation, header and footer
// elements are skipped when reading a file. The default keeps them all. Pages passed to FromReader
// or FromDocument are already read, so it has no effect on them.
func (p *Parser) NavigationExclusion(mode htmldoc.NavigationExclusionMode) *Parser {
	newP := p.clone()
	newP.options.navigation = mode
	return newP
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Blocks returns the headings, paragraphs and tables of the page in
// document order.
func (p *Parser) Blocks() ([]htmldoc.Block, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	return doc.Blocks(), nil
}

// Parse extracts the timetable. Page-level failures are returned as a
// *model.ParseError; file and HTML errors are returned wrapped.
//
// Example:
//
//	tt, err := timetable.Open("orar.html").Parse()
//	var perr *model.ParseError
//	if errors.As(err, &perr) {
//	    // record the page as unparseable and move on
//	}
func (p *Parser) Parse() (*model.Timetable, error) {
	blocks, err := p.Blocks()
	if err != nil {
		return nil, err
	}

	cfg := layout.DefaultConfig()
	cfg.Logger = p.options.logger
	if p.filename != "" {
		cfg.Logger = cfg.Logger.With().Str("file", p.filename).Logger()
	}
	return layout.NewClassifierWithConfig(cfg).Classify(blocks, p.options.groups)
}
