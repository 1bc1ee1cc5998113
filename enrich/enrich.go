// Package enrich appends externally produced descriptions of rendered page
// images to a page's extracted text.
//
// Enrichment is an optional hook on the page-oriented extraction paths. A
// failing describer is never fatal: the page text passes through unchanged
// and the failure is logged by the caller.
package enrich

import (
	"context"
	"fmt"
)

// Describer produces a textual description of a rendered page image. The
// page's extracted text is passed along as context for the description.
// Implementations are external collaborators (vision models, OCR engines)
// and are expected to be bounded synchronous calls.
type Describer interface {
	Describe(ctx context.Context, image []byte, pageText string) (string, error)
}

// DescriberFunc adapts a function to the Describer interface.
type DescriberFunc func(ctx context.Context, image []byte, pageText string) (string, error)

// Describe calls f.
func (f DescriberFunc) Describe(ctx context.Context, image []byte, pageText string) (string, error) {
	return f(ctx, image, pageText)
}

// Label formats a description as the labeled block appended to a page's
// text, e.g. "[Image Description for Page 3]:\n...".
func Label(pageNumber int, description string) string {
	if description == "" {
		return ""
	}
	return fmt.Sprintf("[Image Description for Page %d]:\n%s", pageNumber, description)
}
