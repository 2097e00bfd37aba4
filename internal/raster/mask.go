package raster

import "image"

// Merge combines src into dst by taking the maximum coverage per pixel.
// Only the intersection of both bounds is touched. Pieces of one stroke that
// overlap at a joint therefore never exceed the coverage of either piece.
func Merge(dst, src *image.Alpha) {
	r := dst.Rect.Intersect(src.Rect)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		si := src.PixOffset(r.Min.X, y)
		for x := 0; x < r.Dx(); x++ {
			if v := src.Pix[si+x]; v > dst.Pix[di+x] {
				dst.Pix[di+x] = v
			}
		}
	}
}

// ClearRect zeroes the coverage of m inside r.
func ClearRect(m *image.Alpha, r image.Rectangle) {
	r = r.Intersect(m.Rect)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := m.PixOffset(r.Min.X, y)
		clear(m.Pix[i : i+r.Dx()])
	}
}

// InkBounds returns the bounding rectangle of all pixels with non-zero
// coverage, or the empty rectangle if there are none.
func InkBounds(m *image.Alpha) image.Rectangle {
	var ink image.Rectangle
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		i := m.PixOffset(m.Rect.Min.X, y)
		for x := 0; x < m.Rect.Dx(); x++ {
			if m.Pix[i+x] != 0 {
				ink = ink.Union(image.Rect(m.Rect.Min.X+x, y, m.Rect.Min.X+x+1, y+1))
			}
		}
	}
	return ink
}
