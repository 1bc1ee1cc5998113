package chunk

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ExportFormat defines the available export formats for chunk records.
type ExportFormat int

const (
	// ExportFormatJSONL exports as JSON Lines (one record per line)
	ExportFormatJSONL ExportFormat = iota
	// ExportFormatJSON exports as a JSON array
	ExportFormatJSON
	// ExportFormatCSV exports as comma-separated values
	ExportFormatCSV
)

// String returns a human-readable representation of the export format.
func (ef ExportFormat) String() string {
	switch ef {
	case ExportFormatJSONL:
		return "jsonl"
	case ExportFormatJSON:
		return "json"
	case ExportFormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format.
func (ef ExportFormat) FileExtension() string {
	switch ef {
	case ExportFormatJSONL:
		return ".jsonl"
	case ExportFormatJSON:
		return ".json"
	case ExportFormatCSV:
		return ".csv"
	default:
		return ".txt"
	}
}

// ExportConfig holds configuration options for export.
type ExportConfig struct {
	// Format specifies the export format.
	Format ExportFormat

	// PrettyPrint enables indented output for the JSON format.
	PrettyPrint bool

	// IncludeHeader includes a header row in CSV exports.
	IncludeHeader bool
}

// DefaultExportConfig returns sensible defaults for export configuration.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Format:        ExportFormatJSONL,
		PrettyPrint:   false,
		IncludeHeader: true,
	}
}

// Exporter writes chunk records in a sink-compatible textual format.
type Exporter struct {
	config ExportConfig
}

// NewExporter creates an exporter with default configuration.
func NewExporter() *Exporter {
	return &Exporter{config: DefaultExportConfig()}
}

// NewExporterWithConfig creates an exporter with custom configuration.
func NewExporterWithConfig(config ExportConfig) *Exporter {
	return &Exporter{config: config}
}

// Export writes records to w in the configured format.
func (e *Exporter) Export(w io.Writer, records []Record) error {
	switch e.config.Format {
	case ExportFormatJSONL:
		return e.exportJSONL(w, records)
	case ExportFormatJSON:
		return e.exportJSON(w, records)
	case ExportFormatCSV:
		return e.exportCSV(w, records)
	default:
		return fmt.Errorf("unknown export format %d", int(e.config.Format))
	}
}

// ExportToFile writes records to the named file in the configured format.
func (e *Exporter) ExportToFile(filename string, records []Record) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := e.Export(f, records); err != nil {
		return err
	}
	return f.Close()
}

func (e *Exporter) exportJSONL(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding record %s: %w", r.ChunkID, err)
		}
	}
	return nil
}

func (e *Exporter) exportJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	if e.config.PrettyPrint {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	return nil
}

func (e *Exporter) exportCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if e.config.IncludeHeader {
		header := []string{"chunk_id", "source_file", "page_number", "word_count", "created_at", "content"}
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
	}

	for _, r := range records {
		row := []string{
			r.ChunkID,
			r.SourceFile,
			r.PageNumber.String(),
			fmt.Sprintf("%d", r.WordCount),
			r.CreatedAt.Format(time.RFC3339),
			r.Content,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
