package sink

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/tsawler/docchunk/chunk"
)

// Chromem stores chunk records in an embedded chromem-go vector database.
type Chromem struct {
	collection *chromem.Collection
}

// NewChromem opens (or creates) a persistent chromem database at path and
// returns a sink writing into the named collection. The embedding function
// is chromem's (e.g. chromem.NewEmbeddingFuncOllama); see the chromem-go
// documentation for the available providers.
func NewChromem(path, collection string, embed chromem.EmbeddingFunc) (*Chromem, error) {
	db, err := chromem.NewPersistentDB(path, false)
	if err != nil {
		return nil, fmt.Errorf("opening vector database: %w", err)
	}

	coll, err := db.GetOrCreateCollection(collection, nil, embed)
	if err != nil {
		return nil, fmt.Errorf("opening collection %q: %w", collection, err)
	}

	return &Chromem{collection: coll}, nil
}

// NewChromemInMemory returns a sink backed by a non-persistent database,
// useful for tests and one-shot sessions.
func NewChromemInMemory(collection string, embed chromem.EmbeddingFunc) (*Chromem, error) {
	db := chromem.NewDB()
	coll, err := db.GetOrCreateCollection(collection, nil, embed)
	if err != nil {
		return nil, fmt.Errorf("opening collection %q: %w", collection, err)
	}
	return &Chromem{collection: coll}, nil
}

// Store converts records to chromem documents and adds them to the
// collection.
func (s *Chromem) Store(ctx context.Context, records []chunk.Record) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]chromem.Document, 0, len(records))
	for _, r := range records {
		docs = append(docs, chromem.Document{
			ID:      r.ChunkID,
			Content: r.Content,
			Metadata: map[string]string{
				"source_file": r.SourceFile,
				"page_number": r.PageNumber.String(),
				"word_count":  strconv.Itoa(r.WordCount),
				"created_at":  r.CreatedAt.Format(time.RFC3339),
			},
		})
	}

	if err := s.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("adding documents: %w", err)
	}
	return nil
}

// Count returns the number of documents in the underlying collection.
func (s *Chromem) Count() int {
	return s.collection.Count()
}
