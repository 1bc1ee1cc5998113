// Package pdfdoc extracts text units from PDF documents using go-fitz
// (MuPDF).
//
// Each page becomes one text unit (1-based index) holding the page's raw
// text layer. When a describer is configured, each page is additionally
// rendered to a PNG image and the externally produced description is
// appended to the page's text as a labeled enrichment block. A failing
// description is soft: the page text passes through unchanged and the
// failure is logged.
package pdfdoc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/tsawler/docchunk/enrich"
	"github.com/tsawler/docchunk/model"
)

// DefaultRenderDPI is the resolution used when rendering pages to images
// for description.
const DefaultRenderDPI = 144

// Extractor extracts one text unit per PDF page.
type Extractor struct {
	// Describer, when non-nil, produces an image description for each
	// rendered page. Description failures are never fatal.
	Describer enrich.Describer

	// RenderDPI is the render resolution for page images.
	// Zero means DefaultRenderDPI.
	RenderDPI float64

	// Logger receives soft enrichment failures. Nil means slog.Default.
	Logger *slog.Logger
}

// New creates a PDF extractor without enrichment.
func New() *Extractor {
	return &Extractor{}
}

// NewWithDescriber creates a PDF extractor that enriches each page with an
// image description.
func NewWithDescriber(d enrich.Describer, logger *slog.Logger) *Extractor {
	return &Extractor{Describer: d, Logger: logger}
}

// Extract opens the document and returns one unit per page, in page order.
// An unreadable or corrupt document fails as a whole; no partial units are
// returned.
func (e *Extractor) Extract(ctx context.Context, path string) ([]model.TextUnit, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	units := make([]model.TextUnit, 0, numPages)

	for n := 0; n < numPages; n++ {
		text, err := doc.Text(n)
		if err != nil {
			return nil, fmt.Errorf("extracting text from page %d: %w", n+1, err)
		}

		unit := model.TextUnit{
			Index: model.Ref(n + 1),
			Text:  strings.TrimSpace(text),
		}

		if e.Describer != nil {
			unit.Enrichment = e.describePage(ctx, doc, n, unit.Text)
		}

		units = append(units, unit)
	}

	return units, nil
}

// describePage renders page n to PNG and asks the describer for a textual
// description. Any failure is logged and yields an empty enrichment.
func (e *Extractor) describePage(ctx context.Context, doc *fitz.Document, n int, pageText string) string {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dpi := e.RenderDPI
	if dpi == 0 {
		dpi = DefaultRenderDPI
	}

	img, err := doc.ImagePNG(n, dpi)
	if err != nil {
		logger.Warn("page render failed, skipping enrichment", "page", n+1, "error", err)
		return ""
	}

	desc, err := e.Describer.Describe(ctx, img, pageText)
	if err != nil {
		logger.Warn("image description failed, skipping enrichment", "page", n+1, "error", err)
		return ""
	}

	return enrich.Label(n+1, desc)
}
