package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Native is the default Backend. Fills go through the golang.org/x/image/vector
// accumulation rasterizer; strokes are rendered as the union of round-capped
// capsules around the flattened polyline, evaluated with a distance field.
type Native struct{}

// Render implements Backend.
func (Native) Render(elements []Element, style Style, r image.Rectangle) *image.Alpha {
	if r.Empty() || len(elements) == 0 {
		return image.NewAlpha(r)
	}
	if style.Fill {
		return fillVector(elements, r)
	}
	return strokeDistance(elements, style.Width, r)
}

// fillVector fills the path with non-zero winding. Every subpath is closed
// implicitly, as the vector rasterizer requires.
func fillVector(elements []Element, r image.Rectangle) *image.Alpha {
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Src

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	pt := func(p Point) (float32, float32) {
		return float32(p.X - ox), float32(p.Y - oy)
	}

	open := false
	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(e.Point))
			open = true
		case LineTo:
			z.LineTo(pt(e.Point))
			open = true
		case QuadTo:
			cx, cy := pt(e.Control)
			x, y := pt(e.Point)
			z.QuadTo(cx, cy, x, y)
			open = true
		case CubicTo:
			c1x, c1y := pt(e.Control1)
			c2x, c2y := pt(e.Control2)
			x, y := pt(e.Point)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
			open = true
		case Close:
			if open {
				z.ClosePath()
			}
			open = false
		}
	}
	if open {
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = r
	return mask
}

// strokeDistance renders a round-capped, round-joined stroke. A subpath that
// collapses to a single point still produces a dot of diameter width.
func strokeDistance(elements []Element, width float64, r image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(r)
	half := width / 2
	for _, poly := range Flatten(elements, Tolerance) {
		if len(poly) == 1 {
			capsule(mask, poly[0], poly[0], half)
			continue
		}
		for i := 1; i < len(poly); i++ {
			capsule(mask, poly[i-1], poly[i], half)
		}
	}
	return mask
}

// capsule max-combines the coverage of the segment (a, b) thickened by half
// on every side into mask.
func capsule(mask *image.Alpha, a, b Point, half float64) {
	reach := half + 1
	box := PixelRect(
		math.Min(a.X, b.X)-reach, math.Min(a.Y, b.Y)-reach,
		math.Max(a.X, b.X)+reach, math.Max(a.Y, b.Y)+reach,
	).Intersect(mask.Rect)

	for y := box.Min.Y; y < box.Max.Y; y++ {
		i := mask.PixOffset(box.Min.X, y)
		for x := box.Min.X; x < box.Max.X; x, i = x+1, i+1 {
			p := Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			cov := distanceCoverage(distanceToSegment(p, a, b) - half)
			if cov == 0 {
				continue
			}
			if v := uint8(cov*255 + 0.5); v > mask.Pix[i] {
				mask.Pix[i] = v
			}
		}
	}
}

// distanceCoverage maps a signed distance (negative inside) to pixel
// coverage with a one pixel wide linear ramp centered on the edge.
func distanceCoverage(sdf float64) float64 {
	c := 0.5 - sdf
	if !(c > 0) { // NaN included
		return 0
	}
	if c >= 1 {
		return 1
	}
	return c
}
