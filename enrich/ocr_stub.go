//go:build !ocr

package enrich

import (
	"context"
	"errors"
)

// ErrOCRNotEnabled is returned when the OCR describer is used but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// OCRDescriber is a stub that returns ErrOCRNotEnabled for all operations.
// The real implementation requires the "ocr" build tag and a local
// Tesseract installation.
type OCRDescriber struct{}

// NewOCRDescriber returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func NewOCRDescriber() (*OCRDescriber, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub describer. It is safe to call on nil.
func (d *OCRDescriber) Close() error {
	return nil
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (d *OCRDescriber) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// Describe returns an error indicating OCR support is not enabled.
func (d *OCRDescriber) Describe(ctx context.Context, image []byte, pageText string) (string, error) {
	return "", ErrOCRNotEnabled
}
