// Package sink defines the indexing sink boundary and provides a
// chromem-go backed implementation.
//
// The pipeline's sole obligation toward a sink is to hand it chunk records
// matching the output schema; how records are embedded, indexed, or
// retrieved is the sink's concern.
package sink

import (
	"context"

	"github.com/tsawler/docchunk/chunk"
)

// Sink accepts chunk records for storage and later semantic retrieval.
type Sink interface {
	Store(ctx context.Context, records []chunk.Record) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, records []chunk.Record) error

// Store calls f.
func (f SinkFunc) Store(ctx context.Context, records []chunk.Record) error {
	return f(ctx, records)
}
