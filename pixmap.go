package sketch

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer with premultiplied alpha.
// The origin is always (0, 0).
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data (premultiplied RGBA, 4 bytes per pixel).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return
	}
	p.img.SetRGBA(x, y, c.premultiplied8(1))
}

// GetPixel returns the unpremultiplied color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return Transparent
	}
	return FromColor(p.img.RGBAAt(x, y)).Unpremultiply()
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	v := c.premultiplied8(1)
	for i := 0; i < len(p.img.Pix); i += 4 {
		p.img.Pix[i+0] = v.R
		p.img.Pix[i+1] = v.G
		p.img.Pix[i+2] = v.B
		p.img.Pix[i+3] = v.A
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	return &Pixmap{img: p.ToImage()}
}

// Equal reports whether both pixmaps have the same size and identical pixels.
func (p *Pixmap) Equal(q *Pixmap) bool {
	return p.img.Rect.Eq(q.img.Rect) && bytes.Equal(p.img.Pix, q.img.Pix)
}

// InkBounds returns the bounding rectangle of all pixels with non-zero
// alpha, or the empty rectangle for a fully transparent pixmap.
func (p *Pixmap) InkBounds() image.Rectangle {
	var ink image.Rectangle
	w := p.Width()
	for y := 0; y < p.Height(); y++ {
		row := p.img.Pix[y*p.img.Stride : y*p.img.Stride+w*4]
		for x := 0; x < w; x++ {
			if row[x*4+3] != 0 {
				ink = ink.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return ink
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return img
}

// rgba returns the backing image. Writes through it modify the pixmap.
func (p *Pixmap) rgba() *image.RGBA {
	return p.img
}

// FromImage creates a pixmap from an image. The result has the size of the
// image bounds and its origin at (0, 0).
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	draw.Draw(pm.img, pm.img.Rect, img, b.Min, draw.Src)
	return pm
}

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// DecodePNG reads a PNG image into a new pixmap.
func DecodePNG(r io.Reader) (*Pixmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("sketch: decode png: %w", err)
	}
	return FromImage(img), nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
