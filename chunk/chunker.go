// Package chunk splits extracted document text into overlapping,
// word-bounded chunks suitable for semantic indexing.
//
// Three strategies are exposed behind one configuration surface: a flat
// word-window slicer, a paragraph accumulator with tail carry-over, and a
// page-oriented mode that bridges adjacent units. See Mode for details.
package chunk

import (
	"fmt"
	"strings"

	"github.com/tsawler/docchunk/model"
)

// Chunker converts an ordered sequence of text units into chunk records.
type Chunker struct {
	config Config
}

// NewChunker creates a chunker with default configuration.
func NewChunker() *Chunker {
	return &Chunker{config: DefaultConfig()}
}

// NewChunkerWithConfig creates a chunker with custom configuration.
// The configuration is validated eagerly; an invalid configuration is
// rejected here, before any document is processed.
func NewChunkerWithConfig(config Config) (*Chunker, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chunker config: %w", err)
	}
	return &Chunker{config: config}, nil
}

// Config returns the chunker's configuration.
func (c *Chunker) Config() Config {
	return c.config
}

// Chunk consumes units in order and emits chunk records in source document
// order. Zero-length input yields zero chunks, never an empty chunk.
func (c *Chunker) Chunk(units []model.TextUnit, sourceFile string) ([]Record, error) {
	if len(units) == 0 {
		return nil, nil
	}

	switch c.config.Mode {
	case ModeWordWindow:
		return c.chunkWordWindow(units, sourceFile), nil
	case ModeParagraph:
		return c.chunkParagraphs(units, sourceFile), nil
	case ModePageBridge:
		return c.chunkPageBridge(units, sourceFile), nil
	default:
		return nil, fmt.Errorf("unknown chunking mode %d", int(c.config.Mode))
	}
}

// chunkWordWindow concatenates all unit text into one word sequence and
// slides a window of WindowSize words over it with a stride of
// WindowSize-Overlap. Consecutive chunks share exactly Overlap words,
// except the final chunk, which may share fewer when truncated by the end
// of the sequence. The loop ends once a window reaches the final word, so
// a document of at most WindowSize words produces exactly one chunk.
func (c *Chunker) chunkWordWindow(units []model.TextUnit, sourceFile string) []Record {
	var parts []string
	for _, u := range units {
		if t := u.FullText(); t != "" {
			parts = append(parts, t)
		}
	}

	words := model.Words(strings.Join(parts, "\n\n"))
	if len(words) == 0 {
		return nil
	}

	ref := units[0].Index
	stride := c.config.WindowSize - c.config.Overlap

	var records []Record
	for start := 0; start < len(words); start += stride {
		end := start + c.config.WindowSize
		if end > len(words) {
			end = len(words)
		}

		content := strings.Join(words[start:end], " ")
		records = append(records, NewRecord(content, sourceFile, ref))

		if end == len(words) {
			break
		}
	}

	return records
}

// chunkParagraphs accumulates whole paragraphs into a running buffer. When
// the buffered word count reaches WindowSize the chunk is closed, and the
// next buffer is seeded with a suffix of the closed paragraphs: walking
// backwards, whole paragraphs are carried over while they fit within the
// Overlap word budget. Word-level splitting within a paragraph is never
// performed, so the actual overlap may come in under the configured
// target. Any remaining buffered content is flushed as a final chunk.
func (c *Chunker) chunkParagraphs(units []model.TextUnit, sourceFile string) []Record {
	var paragraphs []string
	for _, u := range units {
		paragraphs = append(paragraphs, u.ParagraphList()...)
	}

	ref := units[0].Index

	var (
		records []Record
		buffer  []string
		count   int
		fresh   bool // buffer holds content not yet emitted in a chunk
	)

	for _, p := range paragraphs {
		buffer = append(buffer, p)
		count += model.WordCount(p)
		fresh = true

		if count < c.config.WindowSize {
			continue
		}

		records = append(records, NewRecord(strings.Join(buffer, " "), sourceFile, ref))

		// Seed the next chunk with a whole-paragraph tail of the one
		// just closed.
		var seed []string
		seedCount := 0
		for i := len(buffer) - 1; i >= 0; i-- {
			wc := model.WordCount(buffer[i])
			if seedCount+wc > c.config.Overlap {
				break
			}
			seed = append([]string{buffer[i]}, seed...)
			seedCount += wc
		}

		buffer = seed
		count = seedCount
		fresh = false
	}

	// Flush the remainder, but never emit a chunk that holds only
	// carried-over overlap.
	if fresh && len(buffer) > 0 {
		records = append(records, NewRecord(strings.Join(buffer, " "), sourceFile, ref))
	}

	return records
}

// chunkPageBridge emits one chunk per non-empty unit, and between each
// adjacent pair a bridge chunk made of the last OverlapPercentage of the
// first unit's words and the first OverlapPercentage of the second's. The
// bridge's unit reference is the range "i-(i+1)". For m non-empty units
// this produces up to 2m-1 chunks; bridge chunks are interleaved
// immediately after the unit they start from.
func (c *Chunker) chunkPageBridge(units []model.TextUnit, sourceFile string) []Record {
	var records []Record

	for i, u := range units {
		words := model.Words(u.FullText())
		if len(words) > 0 {
			records = append(records, NewRecord(strings.Join(words, " "), sourceFile, u.Index))
		}

		if i+1 >= len(units) {
			continue
		}

		next := model.Words(units[i+1].FullText())
		if len(words) == 0 || len(next) == 0 {
			// An empty unit has no boundary context to preserve.
			continue
		}

		tail := int(c.config.OverlapPercentage * float64(len(words)))
		head := int(c.config.OverlapPercentage * float64(len(next)))

		bridge := make([]string, 0, tail+head)
		bridge = append(bridge, words[len(words)-tail:]...)
		bridge = append(bridge, next[:head]...)
		if len(bridge) == 0 {
			continue
		}

		ref := model.RangeRef(u.Index.Start, units[i+1].Index.Start)
		records = append(records, NewRecord(strings.Join(bridge, " "), sourceFile, ref))
	}

	return records
}
