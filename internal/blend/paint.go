package blend

import (
	"image"
	"image/color"
)

// Paint composites src through mask onto ref and stores the result in dst,
// for every pixel of r. Pixels in r with zero coverage, or outside the mask,
// are copied from ref unchanged.
//
// src is a premultiplied color whose alpha already carries the brush
// opacity. dst and ref must have identical bounds; they may be the same
// image only when the caller wants coverage to accumulate.
func Paint(dst, ref *image.RGBA, mask *image.Alpha, r image.Rectangle, src color.RGBA, mode Mode) {
	r = r.Intersect(dst.Rect).Intersect(ref.Rect)
	if r.Empty() {
		return
	}
	fn := FuncFor(mode)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		ri := ref.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, di, ri = x+1, di+4, ri+4 {
			d := ref.Pix[ri : ri+4 : ri+4]
			o := dst.Pix[di : di+4 : di+4]

			var cov byte
			if (image.Point{X: x, Y: y}).In(mask.Rect) {
				cov = mask.Pix[mask.PixOffset(x, y)]
			}
			if cov == 0 {
				copy(o, d)
				continue
			}

			sr, sg, sb, sa := src.R, src.G, src.B, src.A
			if cov != 255 {
				sr, sg, sb, sa = mulDiv255(sr, cov), mulDiv255(sg, cov), mulDiv255(sb, cov), mulDiv255(sa, cov)
			}
			o[0], o[1], o[2], o[3] = fn(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
		}
	}
}

// Copy copies the pixels of r from src into dst.
func Copy(dst, src *image.RGBA, r image.Rectangle) {
	r = r.Intersect(dst.Rect).Intersect(src.Rect)
	if r.Empty() {
		return
	}
	n := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		si := src.PixOffset(r.Min.X, y)
		copy(dst.Pix[di:di+n], src.Pix[si:si+n])
	}
}
