// Package markdown extracts text units from Markdown documents.
//
// The document is parsed with goldmark and flattened to its block-level
// text: headings, paragraphs, list items, and code blocks each become one
// paragraph of a single logical unit (index 1), in source order.
package markdown

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/tsawler/docchunk/model"
)

// Extractor extracts text units from Markdown files.
type Extractor struct{}

// New creates a Markdown extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract parses the file and returns a single unit whose paragraphs are
// the document's block-level text in source order.
func (e *Extractor) Extract(ctx context.Context, path string) ([]model.TextUnit, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading markdown file: %w", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var paragraphs []string
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
			if t := blockText(n, source); t != "" {
				paragraphs = append(paragraphs, t)
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			if t := linesText(node.Lines(), source); t != "" {
				paragraphs = append(paragraphs, t)
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			if t := linesText(node.Lines(), source); t != "" {
				paragraphs = append(paragraphs, t)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking markdown AST: %w", err)
	}

	unit := model.TextUnit{
		Index:      model.Ref(1),
		Text:       strings.Join(paragraphs, "\n\n"),
		Paragraphs: paragraphs,
	}
	return []model.TextUnit{unit}, nil
}

// blockText collects the inline text of a block node.
func blockText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(source))
			if c.SoftLineBreak() || c.HardLineBreak() {
				sb.WriteString(" ")
			}
		default:
			sb.WriteString(blockText(child, source))
		}
	}
	return strings.TrimSpace(sb.String())
}

// linesText joins the raw source lines of a code block.
func linesText(lines *text.Segments, source []byte) string {
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimSpace(sb.String())
}
