package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gogpu/sketch"
	"github.com/jung-kurt/gofpdf"
)

// PDFOptions configures PDF output.
type PDFOptions struct {
	// Title is stored in the document information dictionary.
	Title string

	// Layers appends one page per layer, bottom first, after the flattened
	// page. Every layer page shows the raw layer pixels regardless of
	// visibility and opacity.
	Layers bool
}

// PDF writes the canvas to w as a PDF document.
func PDF(w io.Writer, c *sketch.Canvas, opts PDFOptions) error {
	pdf, err := build(c, opts)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: pdf: %w", err)
	}
	return nil
}

// SavePDF writes the canvas to a PDF file at path.
func SavePDF(path string, c *sketch.Canvas, opts PDFOptions) error {
	pdf, err := build(c, opts)
	if err != nil {
		return err
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export: pdf: %w", err)
	}
	return nil
}

func build(c *sketch.Canvas, opts PDFOptions) (*gofpdf.Fpdf, error) {
	w, h := float64(c.Width()), float64(c.Height())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("sketch", false)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, false)
	}

	if err := addPage(pdf, "snapshot", c.Snapshot(), w, h); err != nil {
		return nil, err
	}
	if opts.Layers {
		for i := range c.LayerCount() {
			pm, err := c.LayerImage(i)
			if err != nil {
				return nil, fmt.Errorf("export: pdf: %w", err)
			}
			if err := addPage(pdf, fmt.Sprintf("layer-%d", i), pm, w, h); err != nil {
				return nil, err
			}
		}
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("export: pdf: %w", err)
	}
	return pdf, nil
}

// addPage adds a page showing pm stretched over the w×h page.
func addPage(pdf *gofpdf.Fpdf, name string, pm *sketch.Pixmap, w, h float64) error {
	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		return fmt.Errorf("export: pdf: %s: %w", name, err)
	}
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.AddPage()
	pdf.RegisterImageOptionsReader(name, opt, &buf)
	pdf.ImageOptions(name, 0, 0, w, h, false, opt, 0, "")
	return nil
}
