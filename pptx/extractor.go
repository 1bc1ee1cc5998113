// Package pptx extracts text units from PPTX (Office Open XML)
// presentations.
//
// Each slide becomes one text unit (1-based index) holding the text of all
// its text-bearing shapes in shape order, joined by newlines. When the
// slide XML cannot be parsed directly, a deck can instead be converted to
// PDF by an external collaborator and run through the PDF per-page
// pipeline; see RenderedExtractor.
package pptx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tsawler/docchunk/model"
)

// Extractor extracts one text unit per slide by reading shape text
// directly from the slide XML.
type Extractor struct{}

// New creates a PPTX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract opens the archive and returns one unit per slide, in
// presentation order.
func (e *Extractor) Extract(ctx context.Context, path string) ([]model.TextUnit, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	defer zr.Close()

	slideFiles := findSlideFiles(&zr.Reader)
	if len(slideFiles) == 0 {
		return nil, fmt.Errorf("no slides found in presentation")
	}

	units := make([]model.TextUnit, 0, len(slideFiles))
	for i, slidePath := range slideFiles {
		data, err := fileContent(&zr.Reader, slidePath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", slidePath, err)
		}

		var slide slideXML
		if err := xml.Unmarshal(data, &slide); err != nil {
			return nil, fmt.Errorf("unmarshaling %s: %w", slidePath, err)
		}

		units = append(units, model.TextUnit{
			Index: model.Ref(i + 1),
			Text:  slideText(&slide.CSld.SpTree),
		})
	}

	return units, nil
}

// findSlideFiles returns the slide part names sorted by slide number.
func findSlideFiles(zr *zip.Reader) []string {
	var slideFiles []string
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			if !strings.Contains(f.Name, "_rels") {
				slideFiles = append(slideFiles, f.Name)
			}
		}
	}

	sort.Slice(slideFiles, func(i, j int) bool {
		return slideNumber(slideFiles[i]) < slideNumber(slideFiles[j])
	})

	return slideFiles
}

// slideNumber extracts the slide number from a path like
// "ppt/slides/slide1.xml".
func slideNumber(path string) int {
	name := strings.TrimPrefix(path, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	var num int
	fmt.Sscanf(name, "%d", &num)
	return num
}

// fileContent reads the content of a named file from the ZIP archive.
func fileContent(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// slideText concatenates the text of all shapes in the tree, including
// grouped shapes, joined by newlines.
func slideText(tree *spTreeXML) string {
	var parts []string
	collectShapeText(tree.Sp, &parts)
	for _, grp := range tree.GrpSp {
		collectGroupText(&grp, &parts)
	}
	return strings.Join(parts, "\n")
}

func collectShapeText(shapes []spXML, parts *[]string) {
	for _, sp := range shapes {
		if sp.TxBody == nil {
			continue
		}
		var lines []string
		for _, p := range sp.TxBody.P {
			var sb strings.Builder
			for _, r := range p.R {
				sb.WriteString(r.T)
			}
			if text := strings.TrimSpace(sb.String()); text != "" {
				lines = append(lines, text)
			}
		}
		if len(lines) > 0 {
			*parts = append(*parts, strings.Join(lines, "\n"))
		}
	}
}

func collectGroupText(grp *grpSpXML, parts *[]string) {
	collectShapeText(grp.Sp, parts)
	for _, nested := range grp.GrpSp {
		collectGroupText(&nested, parts)
	}
}
