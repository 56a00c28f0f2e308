// Package goquery provides an HTML implementation of
// studyhall.PageExtractor that reduces a web page to its visible text.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"studyhall"
)

// Ensure PageExtractor implements studyhall.PageExtractor at compile time.
var _ studyhall.PageExtractor = (*PageExtractor)(nil)

// PageExtractor strips script, style, and noscript markup and returns
// the remaining visible text, one fragment per line.
type PageExtractor struct{}

// NewPageExtractor returns a new PageExtractor.
func NewPageExtractor() *PageExtractor {
	return &PageExtractor{}
}

// Extract parses the HTML and returns its visible text joined by
// newlines. Parse errors fail the extraction; no partial text is
// returned.
func (e *PageExtractor) Extract(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", studyhall.Errorf(studyhall.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript").Remove()

	var lines []string
	for _, node := range doc.Selection.Nodes {
		collectText(node, &lines)
	}

	return strings.Join(lines, "\n"), nil
}

// collectText walks the node tree in document order, appending each
// non-blank text node as one line.
func collectText(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*lines = append(*lines, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, lines)
	}
}
