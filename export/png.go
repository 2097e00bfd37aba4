// Package export writes canvas contents to image and document formats.
//
// PNG output is the flattened snapshot of the visible layers. PDF output
// places the same snapshot on a page sized to the canvas, one point per
// pixel, optionally followed by one page per layer.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/sketch"
)

// PNG writes the flattened canvas to w.
func PNG(w io.Writer, c *sketch.Canvas) error {
	if err := c.Snapshot().EncodePNG(w); err != nil {
		return fmt.Errorf("export: png: %w", err)
	}
	return nil
}

// SavePNG writes the flattened canvas to a PNG file at path.
func SavePNG(path string, c *sketch.Canvas) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("export: png: %w", err)
	}
	if err := PNG(f, c); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
