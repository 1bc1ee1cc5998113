package pptx

import (
	"context"
	"fmt"
	"os"

	"github.com/tsawler/docchunk/model"
	"github.com/tsawler/docchunk/pdfdoc"
)

// SlideConverter converts a presentation to a PDF with one page per slide.
// Implementations are external collaborators (a headless office suite, a
// conversion service) and are expected to be bounded synchronous calls.
type SlideConverter interface {
	// ConvertToPDF writes a PDF rendition of the presentation at path
	// into outDir and returns the PDF's path.
	ConvertToPDF(ctx context.Context, path, outDir string) (string, error)
}

// RenderedExtractor extracts slide text by converting the deck to PDF and
// delegating to the PDF per-page pipeline. This is the fallback strategy
// for when direct slide XML parsing is unavailable or undesirable; the
// resulting unit count equals the slide count, and the PDF extractor's
// enrichment hook applies to each rendered slide.
type RenderedExtractor struct {
	Converter SlideConverter
	PDF       *pdfdoc.Extractor
}

// NewRendered creates a rendered-slides extractor. A nil pdf extractor
// defaults to one without enrichment.
func NewRendered(converter SlideConverter, pdf *pdfdoc.Extractor) *RenderedExtractor {
	if pdf == nil {
		pdf = pdfdoc.New()
	}
	return &RenderedExtractor{Converter: converter, PDF: pdf}
}

// Extract converts the deck to a temporary PDF and extracts one unit per
// rendered slide page. The temporary rendition is removed on all exit
// paths.
func (e *RenderedExtractor) Extract(ctx context.Context, path string) ([]model.TextUnit, error) {
	if e.Converter == nil {
		return nil, fmt.Errorf("no slide converter configured")
	}

	tmpDir, err := os.MkdirTemp("", "docchunk-slides-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pdfPath, err := e.Converter.ConvertToPDF(ctx, path, tmpDir)
	if err != nil {
		return nil, fmt.Errorf("converting slides to PDF: %w", err)
	}

	return e.PDF.Extract(ctx, pdfPath)
}
