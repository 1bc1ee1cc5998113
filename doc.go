// Package docchunk turns heterogeneous documents into overlapping,
// word-bounded text chunks ready for semantic indexing.
//
// A pipeline selects a format-specific extractor, which yields the
// document as an ordered sequence of text units (pages, slides, sheets, or
// one flat paragraph group). The chunker consumes the units and emits
// chunk records carrying content, position metadata, a fresh UUID, and a
// UTC timestamp; records are then handed to the caller or to a configured
// indexing sink.
//
// Basic usage:
//
//	p, err := docchunk.New(docchunk.DefaultConfig())
//	if err != nil {
//	    // handle error
//	}
//	records, err := p.Process(ctx, "report.pdf")
//
// Supported formats are plain text, Markdown, DOCX, PPTX, XLSX, PDF, HTML,
// and .gdoc cloud-document references (the latter require a configured
// Resolver). New formats are added by registering an Extractor, not by
// editing a dispatch function.
package docchunk
