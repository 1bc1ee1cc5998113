// Package gdoc extracts text units from cloud-document reference files.
//
// A .gdoc file is not the document itself but a small JSON payload naming
// a remote document. The extractor resolves the identifier through an
// injected Resolver collaborator and treats the returned composite text
// body as a single unit (index 1).
package gdoc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tsawler/docchunk/model"
)

// Resolver retrieves the composite plain-text body of a remote document.
// Implementations wrap the external document service; timeout and retry
// policy belong to them, not to the extractor.
type Resolver interface {
	Resolve(ctx context.Context, documentID string) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, documentID string) (string, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, documentID string) (string, error) {
	return f(ctx, documentID)
}

// ResolutionError indicates that a cloud-document identifier was invalid
// or the remote document was inaccessible. It is fatal for the document
// being processed.
type ResolutionError struct {
	DocumentID string
	Err        error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	if e.DocumentID == "" {
		return fmt.Sprintf("resolving cloud document: %v", e.Err)
	}
	return fmt.Sprintf("resolving cloud document %q: %v", e.DocumentID, e.Err)
}

// Unwrap returns the underlying error.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// reference is the JSON payload stored in a .gdoc file.
type reference struct {
	DocID string `json:"doc_id"`
}

// Extractor resolves cloud-document references into text units.
type Extractor struct {
	Resolver Resolver
}

// New creates a cloud-document extractor using the given resolver.
func New(resolver Resolver) *Extractor {
	return &Extractor{Resolver: resolver}
}

// Extract reads the reference payload, resolves the document identifier,
// and returns the composite body as a single unit.
func (e *Extractor) Extract(ctx context.Context, path string) ([]model.TextUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference file: %w", err)
	}

	var ref reference
	if err := json.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("parsing reference payload: %w", err)
	}
	if ref.DocID == "" {
		return nil, &ResolutionError{Err: errors.New("no document ID found in reference payload")}
	}

	if e.Resolver == nil {
		return nil, &ResolutionError{DocumentID: ref.DocID, Err: errors.New("no resolver configured")}
	}

	text, err := e.Resolver.Resolve(ctx, ref.DocID)
	if err != nil {
		return nil, &ResolutionError{DocumentID: ref.DocID, Err: err}
	}

	return []model.TextUnit{{Index: model.Ref(1), Text: text}}, nil
}
