package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/sketch"
)

func drawn(t *testing.T) *sketch.Canvas {
	t.Helper()
	c := sketch.NewCanvas(32, 24)
	pts := []sketch.Point{sketch.Pt(4, 4), sketch.Pt(20, 10), sketch.Pt(28, 20)}
	c.HandlePointer(sketch.PointerEvent{Phase: sketch.PhaseBegin, Pointers: []sketch.Pointer{{Pos: pts[0]}}})
	for _, p := range pts[1:] {
		c.HandlePointer(sketch.PointerEvent{Phase: sketch.PhaseMove, Pointers: []sketch.Pointer{{Pos: p}}})
	}
	c.HandlePointer(sketch.PointerEvent{Phase: sketch.PhaseEnd, Pointers: []sketch.Pointer{{Pos: pts[2]}}})
	c.AddLayer()
	return c
}

func TestPNG(t *testing.T) {
	c := drawn(t)
	var buf bytes.Buffer
	if err := PNG(&buf, c); err != nil {
		t.Fatal(err)
	}
	pm, err := sketch.DecodePNG(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if pm.Width() != 32 || pm.Height() != 24 {
		t.Errorf("size = %dx%d, want 32x24", pm.Width(), pm.Height())
	}
	if pm.InkBounds().Empty() {
		t.Error("exported PNG has no ink")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, drawn(t)); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("stat = %v, %v", fi, err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "no", "out.png"), drawn(t)); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}

func TestPDF(t *testing.T) {
	tests := []struct {
		name string
		opts PDFOptions
	}{
		{"snapshot only", PDFOptions{}},
		{"with layers", PDFOptions{Title: "sketch test", Layers: true}},
	}

	sizes := make(map[string]int)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := PDF(&buf, drawn(t), tt.opts); err != nil {
				t.Fatal(err)
			}
			out := buf.Bytes()
			if !bytes.HasPrefix(out, []byte("%PDF-")) {
				t.Errorf("output does not start with a PDF header: %q", out[:min(8, len(out))])
			}
			if !bytes.Contains(out, []byte("%%EOF")) {
				t.Error("output lacks the EOF marker")
			}
			if tt.opts.Title != "" && !bytes.Contains(out, []byte(tt.opts.Title)) {
				t.Error("title missing from the document")
			}
			sizes[tt.name] = len(out)
		})
	}
	if sizes["with layers"] <= sizes["snapshot only"] {
		t.Errorf("layer pages did not grow the document: %v", sizes)
	}
}

func TestSavePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := SavePDF(path, drawn(t), PDFOptions{}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("file is not a PDF")
	}
}
