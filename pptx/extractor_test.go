package pptx

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// createTestPPTX creates a minimal PPTX file with the given slide bodies,
// one slide per entry, in order.
func createTestPPTX(t *testing.T, slides ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.pptx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	zw := zip.NewWriter(f)

	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
</Types>`
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte(contentTypes))

	for i, body := range slides {
		slide := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld>
    <p:spTree>` + body + `</p:spTree>
  </p:cSld>
</p:sld>`
		w, _ = zw.Create("ppt/slides/slide" + strconv.Itoa(i+1) + ".xml")
		w.Write([]byte(slide))
	}

	zw.Close()
	f.Close()

	return path
}

// shape wraps text lines in a minimal text-bearing shape, one paragraph
// per line.
func shape(lines ...string) string {
	body := ""
	for _, line := range lines {
		body += `<a:p><a:r><a:t>` + line + `</a:t></a:r></a:p>`
	}
	return `<p:sp><p:txBody>` + body + `</p:txBody></p:sp>`
}

func TestExtract(t *testing.T) {
	path := createTestPPTX(t,
		shape("Slide One Title")+shape("Slide one body text."),
		shape("Slide Two Title"),
	)

	units, err := New().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if len(units) != 2 {
		t.Fatalf("got %d units, want 2", len(units))
	}

	if units[0].Index.String() != "1" || units[1].Index.String() != "2" {
		t.Errorf("unit indexes = %q, %q, want 1, 2", units[0].Index, units[1].Index)
	}

	if units[0].Text != "Slide One Title\nSlide one body text." {
		t.Errorf("slide 1 text = %q", units[0].Text)
	}
	if units[1].Text != "Slide Two Title" {
		t.Errorf("slide 2 text = %q", units[1].Text)
	}
}

func TestExtract_SlideOrder(t *testing.T) {
	// Eleven slides: lexical name order (slide1, slide10, slide11,
	// slide2, ...) differs from numeric order.
	var slides []string
	for i := 1; i <= 11; i++ {
		slides = append(slides, shape("Slide "+strconv.Itoa(i)))
	}

	path := createTestPPTX(t, slides...)

	units, err := New().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if len(units) != 11 {
		t.Fatalf("got %d units, want 11", len(units))
	}
	for i, u := range units {
		want := "Slide " + strconv.Itoa(i+1)
		if u.Text != want {
			t.Errorf("unit %d: text = %q, want %q", i, u.Text, want)
		}
	}
}

func TestExtract_GroupedShapes(t *testing.T) {
	body := shape("Top level") +
		`<p:grpSp>` + shape("In group") + `<p:grpSp>` + shape("Nested") + `</p:grpSp></p:grpSp>`

	path := createTestPPTX(t, body)

	units, err := New().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	want := "Top level\nIn group\nNested"
	if units[0].Text != want {
		t.Errorf("slide text = %q, want %q", units[0].Text, want)
	}
}

func TestExtract_NoSlides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pptx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	zw := zip.NewWriter(f)
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte("<Types/>"))
	zw.Close()
	f.Close()

	if _, err := New().Extract(context.Background(), path); err == nil {
		t.Fatal("expected error for presentation without slides, got nil")
	}
}

func TestExtract_NotAZIP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pptx")
	if err := os.WriteFile(path, []byte("not a zip"), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	if _, err := New().Extract(context.Background(), path); err == nil {
		t.Fatal("expected error for non-ZIP input, got nil")
	}
}
