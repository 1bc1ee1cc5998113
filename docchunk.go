package docchunk

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/tsawler/docchunk/chunk"
	"github.com/tsawler/docchunk/docx"
	"github.com/tsawler/docchunk/enrich"
	"github.com/tsawler/docchunk/format"
	"github.com/tsawler/docchunk/gdoc"
	"github.com/tsawler/docchunk/htmldoc"
	"github.com/tsawler/docchunk/markdown"
	"github.com/tsawler/docchunk/model"
	"github.com/tsawler/docchunk/pdfdoc"
	"github.com/tsawler/docchunk/plaintext"
	"github.com/tsawler/docchunk/pptx"
	"github.com/tsawler/docchunk/sink"
	"github.com/tsawler/docchunk/xlsx"
)

// Extractor converts a document into an ordered sequence of text units.
// One implementation exists per source format; extractors must be safe for
// concurrent use across documents.
type Extractor interface {
	Extract(ctx context.Context, path string) ([]model.TextUnit, error)
}

// Config holds pipeline configuration. Collaborator interfaces (resolver,
// describer, converter, sink) are injected here rather than held as global
// state, so the pipeline is testable with fakes.
type Config struct {
	// Chunking is the base chunker configuration. Its Mode field is a
	// default only; each format maps to a mode via Modes.
	Chunking chunk.Config

	// Modes overrides the per-format chunking mode. Formats not listed
	// use the built-in defaults: paragraph accumulation for flat
	// paragraph-oriented formats (text, Markdown, DOCX, HTML), word
	// windowing for cloud documents, page bridging for page- and
	// slide-oriented formats (PDF, PPTX, XLSX).
	Modes map[format.Format]chunk.Mode

	// Resolver retrieves cloud-document bodies for .gdoc references.
	// Without one, .gdoc documents fail with a ResolutionError.
	Resolver gdoc.Resolver

	// Describer, when set, enriches PDF pages (and rendered slides) with
	// image descriptions. Description failures are soft.
	Describer enrich.Describer

	// Converter, when set, switches slide decks to the rendered
	// strategy: the deck is converted to PDF and run through the PDF
	// per-page pipeline instead of direct shape-text extraction.
	Converter pptx.SlideConverter

	// Sink, when set, receives each document's records after chunking.
	Sink sink.Sink

	// Logger receives per-document failures and soft enrichment errors.
	// Nil means slog.Default.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with default chunking parameters
// and no external collaborators.
func DefaultConfig() Config {
	return Config{
		Chunking: chunk.DefaultConfig(),
	}
}

// defaultModes maps each format to its default chunking mode.
func defaultModes() map[format.Format]chunk.Mode {
	return map[format.Format]chunk.Mode{
		format.PlainText: chunk.ModeParagraph,
		format.Markdown:  chunk.ModeParagraph,
		format.DOCX:      chunk.ModeParagraph,
		format.HTML:      chunk.ModeParagraph,
		format.GDoc:      chunk.ModeWordWindow,
		format.PDF:       chunk.ModePageBridge,
		format.PPTX:      chunk.ModePageBridge,
		format.XLSX:      chunk.ModePageBridge,
	}
}

// Pipeline is the document-to-chunk pipeline. Each Process call is
// independent and side-effect-free apart from sink writes, so multiple
// documents may be processed concurrently on one Pipeline.
type Pipeline struct {
	config     Config
	extractors map[format.Format]Extractor
	modes      map[format.Format]chunk.Mode
	logger     *slog.Logger
}

// New creates a pipeline. The chunking configuration is validated eagerly;
// an invalid configuration is rejected here, before any document is
// processed.
func New(config Config) (*Pipeline, error) {
	if err := config.Chunking.Validate(); err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	modes := defaultModes()
	for f, m := range config.Modes {
		modes[f] = m
	}

	var slides Extractor = pptx.New()
	if config.Converter != nil {
		slides = pptx.NewRendered(config.Converter, pdfdoc.NewWithDescriber(config.Describer, logger))
	}

	p := &Pipeline{
		config: config,
		modes:  modes,
		logger: logger,
		extractors: map[format.Format]Extractor{
			format.PlainText: plaintext.New(),
			format.Markdown:  markdown.New(),
			format.DOCX:      docx.New(),
			format.PPTX:      slides,
			format.XLSX:      xlsx.New(),
			format.PDF:       pdfdoc.NewWithDescriber(config.Describer, logger),
			format.HTML:      htmldoc.New(),
			format.GDoc:      gdoc.New(config.Resolver),
		},
	}

	return p, nil
}

// RegisterExtractor registers (or replaces) the extractor for a format.
// New formats are supported by adding implementations here, not by
// editing the pipeline.
func (p *Pipeline) RegisterExtractor(f format.Format, e Extractor) {
	p.extractors[f] = e
}

// Process runs the full pipeline for one document: format selection,
// extraction, enrichment, chunking, and (when configured) sink delivery.
// A failure is fatal for this document only and never yields partial
// chunks.
func (p *Pipeline) Process(ctx context.Context, path string) ([]chunk.Record, error) {
	f := format.Detect(path)
	if f == format.Unknown {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	extractor, ok := p.extractors[f]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	units, err := extractor.Extract(ctx, path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}

	cfg := p.config.Chunking
	cfg.Mode = p.modes[f]
	chunker, err := chunk.NewChunkerWithConfig(cfg)
	if err != nil {
		return nil, err
	}

	records, err := chunker.Chunk(units, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	if p.config.Sink != nil && len(records) > 0 {
		if err := p.config.Sink.Store(ctx, records); err != nil {
			return nil, fmt.Errorf("storing chunks for %s: %w", path, err)
		}
	}

	return records, nil
}

// ProcessBatch processes each document independently. A failure in one
// document never aborts the batch: the failed document contributes an
// empty record list and a log entry, and processing continues.
func (p *Pipeline) ProcessBatch(ctx context.Context, paths []string) map[string][]chunk.Record {
	results := make(map[string][]chunk.Record, len(paths))
	for _, path := range paths {
		records, err := p.Process(ctx, path)
		if err != nil {
			p.logger.Error("document failed", "path", path, "error", err)
			results[path] = []chunk.Record{}
			continue
		}
		results[path] = records
	}
	return results
}
