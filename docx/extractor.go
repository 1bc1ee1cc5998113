// Package docx extracts text units from DOCX (Office Open XML) documents.
//
// A DOCX file is a ZIP archive; the extractor reads word/document.xml and
// collects paragraph run text in document order. Word documents have no
// fixed pages, so the whole document is one logical unit (index 1) whose
// paragraphs are the chunking granularity.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/docchunk/model"
)

// Extractor extracts text units from DOCX files.
type Extractor struct{}

// New creates a DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract opens the archive, parses the main document part, and returns a
// single unit whose paragraphs are the document's non-empty paragraph
// texts in document order.
func (e *Extractor) Extract(ctx context.Context, path string) ([]model.TextUnit, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	defer zr.Close()

	data, err := fileContent(&zr.Reader, "word/document.xml")
	if err != nil {
		return nil, fmt.Errorf("missing required file: word/document.xml")
	}

	var doc documentXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling document.xml: %w", err)
	}

	var paragraphs []string
	if doc.Body != nil {
		for _, p := range doc.Body.Paragraphs {
			text := strings.TrimSpace(paragraphText(p))
			if text != "" {
				paragraphs = append(paragraphs, text)
			}
		}
	}

	unit := model.TextUnit{
		Index:      model.Ref(1),
		Text:       strings.Join(paragraphs, "\n\n"),
		Paragraphs: paragraphs,
	}
	return []model.TextUnit{unit}, nil
}

// fileContent reads the content of a named file from the ZIP archive.
func fileContent(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// paragraphText joins the text of all runs in a paragraph.
func paragraphText(p paragraphXML) string {
	var sb strings.Builder
	for _, run := range p.Runs {
		for _, t := range run.Text {
			sb.WriteString(t.Value)
		}
		for range run.Tabs {
			sb.WriteString("\t")
		}
		for range run.Breaks {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
