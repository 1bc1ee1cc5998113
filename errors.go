package docchunk

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates the document's format is not recognized
// by any registered extractor. It is fatal for that document only.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ExtractionError indicates a document's source bytes could not be read or
// parsed. It is fatal for that document only; a batch continues with the
// remaining documents.
type ExtractionError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error, so errors.As can surface more
// specific failures such as gdoc.ResolutionError.
func (e *ExtractionError) Unwrap() error {
	return e.Err
}
