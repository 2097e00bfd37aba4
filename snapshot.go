package sketch

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Snapshot flattens every visible layer, bottom first, into a new pixmap of
// the canvas size. Each layer is placed at its frame origin and scaled by its
// opacity. A stroke in progress is included as currently previewed.
func (c *Canvas) Snapshot() *Pixmap {
	out := NewPixmap(c.width, c.height)
	dst := out.rgba()
	for _, l := range c.stack.layers {
		if !l.visible || l.opacity <= 0 {
			continue
		}
		r := l.canvasRect()
		src := l.pixels.rgba()
		if l.opacity >= 1 {
			draw.Draw(dst, r, src, image.Point{}, draw.Over)
			continue
		}
		mask := image.NewUniform(color.Alpha{A: uint8(l.opacity*255 + 0.5)})
		draw.DrawMask(dst, r, src, image.Point{}, mask, image.Point{}, draw.Over)
	}
	return out
}

// Thumbnail returns the layer at index scaled to fit a maxSide×maxSide box,
// keeping its aspect ratio. Visibility and opacity are ignored.
func (c *Canvas) Thumbnail(index, maxSide int) (*Pixmap, error) {
	if err := c.stack.checkIndex("thumbnail", index); err != nil {
		return nil, err
	}
	if maxSide < 1 {
		maxSide = 1
	}
	src := c.stack.at(index).pixels
	w, h := fit(src.Width(), src.Height(), maxSide)
	out := NewPixmap(w, h)
	draw.ApproxBiLinear.Scale(out.rgba(), out.Bounds(), src.rgba(), src.Bounds(), draw.Src, nil)
	return out, nil
}

// fit scales w×h down so that the longer side equals maxSide. Sides never
// shrink below one pixel.
func fit(w, h, maxSide int) (int, int) {
	if w >= h {
		return maxSide, max(1, h*maxSide/w)
	}
	return max(1, w*maxSide/h), maxSide
}
