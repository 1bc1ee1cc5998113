// Package htmldoc extracts text units from HTML documents.
//
// The document's visible text is collected in document order and grouped
// into paragraphs at block-element boundaries; script, style, and head
// content is skipped. The whole document is one logical unit (index 1).
package htmldoc

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/docchunk/model"
)

// blockElements end the current paragraph when opened or closed.
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "ul": true, "ol": true, "table": true, "tr": true,
	"blockquote": true, "pre": true, "br": true, "header": true,
	"footer": true, "main": true, "nav": true, "aside": true,
}

// skippedElements contribute no visible text.
var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "head": true,
	"title": true, "iframe": true, "object": true,
}

// Extractor extracts text units from HTML files.
type Extractor struct{}

// New creates an HTML extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract parses the file and returns a single unit whose paragraphs are
// the document's visible text grouped at block boundaries.
func (e *Extractor) Extract(ctx context.Context, path string) ([]model.TextUnit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening HTML file: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var (
		paragraphs []string
		current    strings.Builder
	)

	flush := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			paragraphs = append(paragraphs, collapseSpaces(text))
		}
		current.Reset()
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if skippedElements[n.Data] {
				return
			}
			if blockElements[n.Data] {
				flush()
			}
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				if current.Len() > 0 {
					current.WriteString(" ")
				}
				current.WriteString(strings.TrimSpace(n.Data))
			}
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}

		if n.Type == html.ElementNode && blockElements[n.Data] {
			flush()
		}
	}
	walk(doc)
	flush()

	unit := model.TextUnit{
		Index:      model.Ref(1),
		Text:       strings.Join(paragraphs, "\n\n"),
		Paragraphs: paragraphs,
	}
	return []model.TextUnit{unit}, nil
}

// collapseSpaces folds runs of whitespace into single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
