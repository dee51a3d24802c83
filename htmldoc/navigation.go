package htmldoc

import (
	"regexp"

	"golang.org/x/net/html"
)

// navigationPattern matches class/id values that indicate navigation or
// boilerplate content.
var navigationPattern = regexp.MustCompile(
	`(?i)(^|[^a-z])(nav|navbar|navigation|menu|topnav|sidenav|breadcrumb|breadcrumbs|` +
		`site-header|page-header|masthead|banner|` +
		`footer|site-footer|page-footer|colophon|` +
		`sidebar|widget-area|widget|aside)([^a-z]|$)`)

// exclusionChecker holds state for determining which elements to exclude.
type exclusionChecker struct {
	mode            NavigationExclusionMode
	bodyNode        *html.Node
	topLevelWrapper *html.Node // Single wrapper div/main if present
}

// newExclusionChecker creates a checker for the given mode and document.
func newExclusionChecker(mode NavigationExclusionMode, doc *html.Node) *exclusionChecker {
	checker := &exclusionChecker{mode: mode}

	checker.bodyNode = findElement(doc, "body")
	if checker.bodyNode == nil {
		checker.bodyNode = doc
	}
	checker.topLevelWrapper = detectTopLevelWrapper(checker.bodyNode)

	return checker
}

// detectTopLevelWrapper finds a single structural wrapper element if one exists.
// This handles the common pattern of <body><div id="wrapper">...</div></body>
func detectTopLevelWrapper(body *html.Node) *html.Node {
	var structuralChildren []*html.Node

	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "div", "main":
				structuralChildren = append(structuralChildren, c)
			case "script", "style", "noscript", "template":
				// Ignore these
			default:
				// Any other element means no single wrapper
				return nil
			}
		}
	}

	if len(structuralChildren) == 1 {
		return structuralChildren[0]
	}
	return nil
}

// shouldExclude determines if a node should be excluded based on the exclusion mode.
// Tables are never excluded: a timetable page may well style its grid with
// a "menu"-like class.
func (ec *exclusionChecker) shouldExclude(n *html.Node) bool {
	if n.Type != html.ElementNode || n.Data == "table" {
		return false
	}

	switch ec.mode {
	case NavigationExclusionNone:
		return false
	case NavigationExclusionExplicit:
		return ec.shouldExcludeExplicit(n)
	default:
		return ec.shouldExcludeExplicit(n) || ec.shouldExcludeByPattern(n)
	}
}

// shouldExcludeExplicit checks for explicit semantic HTML5 elements and ARIA roles.
func (ec *exclusionChecker) shouldExcludeExplicit(n *html.Node) bool {
	switch n.Data {
	case "nav", "aside":
		return true
	}

	switch getAttr(n, "role") {
	case "navigation", "complementary":
		return true
	case "banner", "contentinfo":
		return ec.isTopLevel(n)
	}

	// <header> and <footer> - only exclude if top-level
	switch n.Data {
	case "header", "footer":
		return ec.isTopLevel(n)
	}

	return false
}

// isTopLevel returns true if the node is a direct child of body or a single top-level wrapper.
func (ec *exclusionChecker) isTopLevel(n *html.Node) bool {
	parent := n.Parent
	if parent == nil {
		return false
	}
	return parent == ec.bodyNode || (ec.topLevelWrapper != nil && parent == ec.topLevelWrapper)
}

// shouldExcludeByPattern checks class and id attributes for common navigation patterns.
func (ec *exclusionChecker) shouldExcludeByPattern(n *html.Node) bool {
	if class := getAttr(n, "class"); class != "" && navigationPattern.MatchString(class) {
		return true
	}
	if id := getAttr(n, "id"); id != "" && navigationPattern.MatchString(id) {
		return true
	}
	return false
}

// getAttr returns the value of an attribute on a node, or empty string if not found.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
