package chunk

import (
	"time"

	"github.com/google/uuid"

	"github.com/tsawler/docchunk/model"
)

// Record is the unit of pipeline output: a bounded slice of text with
// position metadata, prepared for an external indexing sink. Records are
// immutable once built; the JSON field names match the sink schema.
type Record struct {
	// Content is the chunk text, a whitespace-joined sequence of words or
	// paragraphs drawn from one or more text units.
	Content string `json:"content"`

	// SourceFile is the originating document's file name.
	SourceFile string `json:"source_file"`

	// PageNumber references the source unit(s): a single index, or a
	// range like "3-4" for a bridge chunk.
	PageNumber model.UnitRef `json:"page_number"`

	// ChunkID is a freshly generated UUID.
	ChunkID string `json:"chunk_id"`

	// WordCount is the number of whitespace-delimited tokens in Content.
	WordCount int `json:"word_count"`

	// CreatedAt is the chunk creation timestamp in UTC.
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord builds a chunk record from text. It allocates a fresh UUID,
// computes the word count, and stamps the current UTC time. There are no
// side effects beyond identifier and timestamp allocation.
func NewRecord(content, sourceFile string, ref model.UnitRef) Record {
	return Record{
		Content:    content,
		SourceFile: sourceFile,
		PageNumber: ref,
		ChunkID:    uuid.NewString(),
		WordCount:  model.WordCount(content),
		CreatedAt:  time.Now().UTC(),
	}
}
