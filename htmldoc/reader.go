package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/timetable/model"
	"github.com/tsawler/timetable/text"
)

// Reader provides access to the blocks of an HTML timetable page.
type Reader struct {
	doc     *html.Node
	title   string
	blocks  []Block
	checker *exclusionChecker
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	return OpenWithOptions(filename, DefaultOptions())
}

// OpenWithOptions opens an HTML file with explicit reader options.
func OpenWithOptions(filename string, opts Options) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReaderWithOptions(f, opts)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	return OpenReaderWithOptions(r, DefaultOptions())
}

// OpenReaderWithOptions parses HTML from an io.Reader with explicit options.
func OpenReaderWithOptions(r io.Reader, opts Options) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		doc:     doc,
		blocks:  make([]Block, 0),
		checker: newExclusionChecker(opts.NavigationExclusion, doc),
	}

	if title := findElement(doc, "title"); title != nil {
		reader.title = text.NormalizeSpace(getTextContent(title))
	}

	body := findElement(doc, "body")
	if body == nil {
		// No body tag, try to extract from root
		body = doc
	}
	reader.traverseNode(body)

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Title returns the document title, if any.
func (r *Reader) Title() string {
	return r.title
}

// Blocks returns the blocks in document order.
func (r *Reader) Blocks() []Block {
	out := make([]Block, len(r.blocks))
	copy(out, r.blocks)
	return out
}

// Tables returns every table on the page in document order.
func (r *Reader) Tables() []*model.Table {
	var tables []*model.Table
	for _, b := range r.blocks {
		if b.Kind == BlockTable {
			tables = append(tables, b.Table)
		}
	}
	return tables
}

// traverseNode walks the DOM in document order. Heading-like nodes are
// recorded and then descended into, so a <strong> nested in a <p> is seen
// after its parent. A table is recorded whole, then the content of its
// cells is walked so layout tables do not hide nested tables or labels.
func (r *Reader) traverseNode(n *html.Node) {
	if n.Type == html.ElementNode {
		// Skip non-content elements
		if shouldSkipElement(n.Data) || r.checker.shouldExclude(n) {
			return
		}

		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			r.addTextBlock(n, BlockHeading, int(n.Data[1]-'0'))

		case "p", "div":
			r.addTextBlock(n, BlockParagraph, 0)

		case "strong", "b":
			r.addTextBlock(n, BlockEmphasis, 0)

		case "table":
			// Empty tables are kept: a page whose only table is empty
			// fails differently from a page without tables.
			table := parseTable(n)
			r.blocks = append(r.blocks, Block{
				Kind:      BlockTable,
				Tag:       n.Data,
				Text:      text.NormalizeSpace(table.GetText()),
				Table:     table,
				Preceding: r.precedingContext(n),
			})
			r.traverseCells(n)
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.traverseNode(c)
	}
}

// traverseCells walks the children of the table's own td/th cells. Rows
// of nested tables belong to those tables, so they are not read twice.
func (r *Reader) traverseCells(table *html.Node) {
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			r.traverseCells(c)
		case "tr":
			for cell := c.FirstChild; cell != nil; cell = cell.NextSibling {
				if cell.Type != html.ElementNode || (cell.Data != "td" && cell.Data != "th") {
					continue
				}
				for k := cell.FirstChild; k != nil; k = k.NextSibling {
					r.traverseNode(k)
				}
			}
		}
	}
}

func (r *Reader) addTextBlock(n *html.Node, kind BlockKind, level int) {
	t := text.NormalizeSpace(textContent(n, r.checker.shouldExclude))
	if t == "" {
		return
	}
	r.blocks = append(r.blocks, Block{
		Kind:  kind,
		Tag:   n.Data,
		Text:  t,
		Level: level,
	})
}

// precedingContext collects the text of element siblings within
// MaxSiblingHops nodes before n. Text and comment nodes count as hops.
func (r *Reader) precedingContext(n *html.Node) []string {
	var context []string
	hops := 0
	for s := n.PrevSibling; s != nil && hops < MaxSiblingHops; s = s.PrevSibling {
		if s.Type == html.ElementNode && !shouldSkipElement(s.Data) && !r.checker.shouldExclude(s) {
			if t := text.NormalizeSpace(textContent(s, r.checker.shouldExclude)); t != "" {
				context = append(context, t)
			}
		}
		hops++
	}
	return context
}

// parseTable extracts a table from an HTML table element.
func parseTable(tableNode *html.Node) *model.Table {
	table := &model.Table{
		Rows: make([][]model.Cell, 0),
	}

	// Find caption, thead, tbody, tfoot, or direct tr children
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "caption":
			table.Caption = text.NormalizeSpace(getTextContent(c))
		case "thead":
			parseTableRows(c, table, true)
		case "tbody", "tfoot":
			parseTableRows(c, table, false)
		case "tr":
			table.Rows = append(table.Rows, parseTableRow(c, false))
		}
	}

	return table
}

// parseTableRows parses rows within thead, tbody or tfoot.
func parseTableRows(section *html.Node, table *model.Table, isHeader bool) {
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "tr" {
			table.Rows = append(table.Rows, parseTableRow(c, isHeader))
		}
	}
}

// parseTableRow parses a single table row. Rows without cells are kept so
// that pending row spans still advance over them.
func parseTableRow(tr *html.Node, isHeader bool) []model.Cell {
	row := make([]model.Cell, 0)

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			row = append(row, model.Cell{
				Text:     cellText(c),
				IsHeader: isHeader || c.Data == "th",
				RowSpan:  parseSpan(getAttr(c, "rowspan")),
				ColSpan:  parseSpan(getAttr(c, "colspan")),
			})
		}
	}

	return row
}

// parseSpan reads a span attribute the lenient way browsers do: leading
// digits only, anything missing or below one becomes one.
func parseSpan(val string) int {
	val = strings.TrimSpace(val)
	n := 0
	for _, r := range val {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > 65534 {
			n = 65534
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

// shouldSkipElement returns true if the element should be skipped during content extraction.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}
