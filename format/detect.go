// Package format provides file format detection for the docchunk pipeline.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PlainText indicates a plain text document.
	PlainText
	// Markdown indicates a Markdown document.
	Markdown
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// PPTX indicates a Microsoft PowerPoint (.pptx) presentation.
	PPTX
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// PDF indicates a PDF document.
	PDF
	// HTML indicates an HTML document.
	HTML
	// GDoc indicates a cloud-document reference payload (.gdoc).
	GDoc
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PlainText:
		return "PlainText"
	case Markdown:
		return "Markdown"
	case DOCX:
		return "DOCX"
	case PPTX:
		return "PPTX"
	case XLSX:
		return "XLSX"
	case PDF:
		return "PDF"
	case HTML:
		return "HTML"
	case GDoc:
		return "GDoc"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PlainText:
		return ".txt"
	case Markdown:
		return ".md"
	case DOCX:
		return ".docx"
	case PPTX:
		return ".pptx"
	case XLSX:
		return ".xlsx"
	case PDF:
		return ".pdf"
	case HTML:
		return ".html"
	case GDoc:
		return ".gdoc"
	default:
		return ""
	}
}

// Detect determines file format from the filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".text":
		return PlainText
	case ".md", ".markdown":
		return Markdown
	case ".docx":
		return DOCX
	case ".pptx":
		return PPTX
	case ".xlsx":
		return XLSX
	case ".pdf":
		return PDF
	case ".html", ".htm":
		return HTML
	case ".gdoc":
		return GDoc
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine format. This is more
// reliable than extension-based detection but cannot distinguish between
// the ZIP-based Office formats; use DetectFromReader for those.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}

	// ZIP magic (DOCX/PPTX/XLSX are ZIP archives): PK\x03\x04
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		// Caller should use DetectFromReader to tell ZIP formats apart.
		return Unknown
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}
	data = data[start:]

	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper[:min(500, len(upper))], "<HTML") {
		return true
	}

	return false
}

// DetectFromReader inspects content to determine format. It can distinguish
// between the different ZIP-based Office formats (DOCX, PPTX, XLSX).
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if len(magic) >= 4 && magic[0] == '%' && magic[1] == 'P' && magic[2] == 'D' && magic[3] == 'F' {
		return PDF, nil
	}

	if len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		return detectZIPFormat(r, size)
	}

	if detectHTMLMagic(magic) {
		return HTML, nil
	}

	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive to determine which Office Open XML
// format it contains.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		switch {
		case strings.HasPrefix(f.Name, "word/"):
			return DOCX, nil
		case strings.HasPrefix(f.Name, "ppt/"):
			return PPTX, nil
		case strings.HasPrefix(f.Name, "xl/"):
			return XLSX, nil
		}
	}

	return Unknown, nil
}
