// Package xlsx extracts text units from XLSX workbooks using excelize.
//
// Each sheet becomes one text unit (1-based index in sheet order); rows
// are joined as lines with cells separated by tabs.
package xlsx

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/docchunk/model"
)

// Extractor extracts one text unit per worksheet.
type Extractor struct{}

// New creates an XLSX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract opens the workbook and returns one unit per sheet, in workbook
// order.
func (e *Extractor) Extract(ctx context.Context, path string) ([]model.TextUnit, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	units := make([]model.TextUnit, 0, len(sheets))

	for i, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", name, err)
		}

		var lines []string
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, "\t"))
			if line != "" {
				lines = append(lines, line)
			}
		}

		units = append(units, model.TextUnit{
			Index: model.Ref(i + 1),
			Text:  strings.Join(lines, "\n"),
		})
	}

	return units, nil
}
