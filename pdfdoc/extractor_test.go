package pdfdoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/docchunk/enrich"
)

// createTestPDF writes a minimal single-page PDF containing the given text,
// with a correct cross-reference table.
func createTestPDF(t *testing.T, text string) string {
	t.Helper()

	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)

	objects := []string{
		"<</Type/Catalog/Pages 2 0 R>>",
		"<</Type/Pages/Kids[3 0 R]/Count 1>>",
		"<</Type/Page/Parent 2 0 R/MediaBox[0 0 612 792]/Contents 4 0 R/Resources<</Font<</F1 5 0 R>>>>>>",
		fmt.Sprintf("<</Length %d>>stream\n%s\nendstream", len(content)+1, content),
		"<</Type/Font/Subtype/Type1/BaseFont/Helvetica>>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<</Size %d/Root 1 0 R>>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	path := filepath.Join(t.TempDir(), "test.pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing test PDF: %v", err)
	}
	return path
}

func TestExtract(t *testing.T) {
	path := createTestPDF(t, "Hello PDF world")

	units, err := New().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if len(units) != 1 {
		t.Fatalf("got %d units, want 1", len(units))
	}
	if units[0].Index.String() != "1" {
		t.Errorf("unit index = %q, want 1", units[0].Index)
	}
	if !strings.Contains(units[0].Text, "Hello PDF world") {
		t.Errorf("page text = %q, want it to contain %q", units[0].Text, "Hello PDF world")
	}
	if units[0].Enrichment != "" {
		t.Errorf("Enrichment = %q, want empty without a describer", units[0].Enrichment)
	}
}

func TestExtract_WithDescriber(t *testing.T) {
	path := createTestPDF(t, "Quarterly revenue")

	var gotImage []byte
	describer := enrich.DescriberFunc(func(ctx context.Context, image []byte, pageText string) (string, error) {
		gotImage = image
		return "A page of quarterly figures.", nil
	})

	e := NewWithDescriber(describer, quietLogger())
	units, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if len(gotImage) == 0 {
		t.Error("describer received no rendered image")
	}

	want := "[Image Description for Page 1]:\nA page of quarterly figures."
	if units[0].Enrichment != want {
		t.Errorf("Enrichment = %q, want %q", units[0].Enrichment, want)
	}
}

func TestExtract_DescriberFailureIsSoft(t *testing.T) {
	path := createTestPDF(t, "Body text survives")

	describer := enrich.DescriberFunc(func(ctx context.Context, image []byte, pageText string) (string, error) {
		return "", errors.New("vision model unavailable")
	})

	e := NewWithDescriber(describer, quietLogger())
	units, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error: %v, description failures must be soft", err)
	}

	if units[0].Enrichment != "" {
		t.Errorf("Enrichment = %q, want empty after describer failure", units[0].Enrichment)
	}
	if !strings.Contains(units[0].Text, "Body text survives") {
		t.Errorf("page text lost: %q", units[0].Text)
	}
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := New().Extract(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
