//go:build ocr

package enrich

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// OCRDescriber describes a rendered page image by running it through the
// Tesseract OCR engine. It is useful for scanned pages whose text layer is
// empty: the recognized text becomes the page's enrichment block.
//
// This implementation requires Tesseract to be installed and the "ocr"
// build tag. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
type OCRDescriber struct {
	client *gosseract.Client
}

// NewOCRDescriber creates an OCR-backed describer. The describer should be
// closed when no longer needed to release engine resources.
func NewOCRDescriber() (*OCRDescriber, error) {
	return &OCRDescriber{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (d *OCRDescriber) Close() error {
	if d.client != nil {
		return d.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for OCR recognition. Multiple languages
// can be specified as a "+" separated string (e.g., "eng+fra").
func (d *OCRDescriber) SetLanguage(lang string) error {
	return d.client.SetLanguage(lang)
}

// Describe runs OCR over the rendered page image and returns the
// recognized text. Pages whose text layer already covers the recognized
// content gain nothing, so an empty string is returned when recognition
// adds no words beyond the existing page text.
func (d *OCRDescriber) Describe(ctx context.Context, image []byte, pageText string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := d.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := d.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" || text == strings.TrimSpace(pageText) {
		return "", nil
	}

	return text, nil
}
