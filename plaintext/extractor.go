// Package plaintext extracts text units from plain text files.
//
// The whole file is one logical unit (index 1); its blank-line-separated
// paragraphs are the chunking granularity. Files carrying a UTF-8, UTF-16LE
// or UTF-16BE byte order mark are decoded transparently.
package plaintext

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tsawler/docchunk/model"
)

// Extractor extracts text units from plain text files.
type Extractor struct{}

// New creates a plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract reads the file and returns a single text unit whose paragraphs
// are the file's blank-line-separated, trimmed, non-empty paragraphs.
func (e *Extractor) Extract(ctx context.Context, path string) ([]model.TextUnit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening text file: %w", err)
	}
	defer f.Close()

	// BOMOverride decodes UTF-16 input and strips a UTF-8 BOM; BOM-less
	// input passes through as UTF-8.
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return nil, fmt.Errorf("reading text file: %w", err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")

	unit := model.TextUnit{
		Index:      model.Ref(1),
		Text:       strings.TrimSpace(content),
		Paragraphs: model.SplitParagraphs(content),
	}
	return []model.TextUnit{unit}, nil
}
