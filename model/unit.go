// Package model defines the shared data types passed between extractors
// and the chunker: text units and the unit references that identify them.
package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UnitRef identifies the source unit(s) a piece of text was derived from.
// A ref is either a single 1-based unit index (page, slide, sheet) or a
// range spanning two adjacent units, as produced for bridge chunks.
type UnitRef struct {
	Start int
	End   int
}

// Ref returns a UnitRef for a single unit index.
func Ref(index int) UnitRef {
	return UnitRef{Start: index, End: index}
}

// RangeRef returns a UnitRef spanning from start to end (inclusive).
func RangeRef(start, end int) UnitRef {
	return UnitRef{Start: start, End: end}
}

// IsRange reports whether the ref spans more than one unit.
func (r UnitRef) IsRange() bool {
	return r.End != r.Start
}

// String returns "3" for a single index or "3-4" for a range.
func (r UnitRef) String() string {
	if r.IsRange() {
		return fmt.Sprintf("%d-%d", r.Start, r.End)
	}
	return strconv.Itoa(r.Start)
}

// MarshalJSON encodes a single index as a JSON number and a range as a
// string like "3-4", matching the indexing sink's page_number field.
func (r UnitRef) MarshalJSON() ([]byte, error) {
	if r.IsRange() {
		return json.Marshal(r.String())
	}
	return json.Marshal(r.Start)
}

// UnmarshalJSON accepts either a JSON number or a "start-end" string.
func (r *UnitRef) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Ref(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unit ref must be a number or range string: %w", err)
	}

	start, end, found := strings.Cut(s, "-")
	if !found {
		return fmt.Errorf("invalid unit ref %q", s)
	}
	a, err := strconv.Atoi(start)
	if err != nil {
		return fmt.Errorf("invalid unit ref %q", s)
	}
	b, err := strconv.Atoi(end)
	if err != nil {
		return fmt.Errorf("invalid unit ref %q", s)
	}

	*r = RangeRef(a, b)
	return nil
}

// TextUnit is one page, slide, sheet, or paragraph-group worth of extracted
// text from a source document. Units are created once by an extractor,
// never mutated, and consumed exactly once by the chunker.
type TextUnit struct {
	// Index is the 1-based position of the unit within the document.
	Index UnitRef

	// Text is the extracted plain text. Never reported as missing: a unit
	// with no extractable text carries an empty string.
	Text string

	// Paragraphs optionally carries the unit's text pre-split into
	// paragraphs, for sources where paragraph boundaries are structural
	// (DOCX runs, Markdown blocks) rather than blank lines in Text.
	Paragraphs []string

	// Enrichment is externally produced descriptive text (such as an image
	// description for a rendered page), appended after Text when chunking.
	Enrichment string
}

// FullText returns the unit text with any enrichment appended.
func (u TextUnit) FullText() string {
	if u.Enrichment == "" {
		return u.Text
	}
	if u.Text == "" {
		return u.Enrichment
	}
	return u.Text + "\n\n" + u.Enrichment
}

// ParagraphList returns the unit's paragraphs, splitting Text on blank
// lines when the extractor did not provide structural paragraphs.
func (u TextUnit) ParagraphList() []string {
	if len(u.Paragraphs) > 0 {
		return u.Paragraphs
	}
	return SplitParagraphs(u.FullText())
}

// Words splits text into whitespace-delimited tokens. All Unicode
// whitespace is treated uniformly as a separator.
func Words(text string) []string {
	return strings.Fields(text)
}

// WordCount returns the number of whitespace-delimited tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SplitParagraphs splits text on blank-line boundaries, trimming each
// paragraph and dropping empty ones.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
