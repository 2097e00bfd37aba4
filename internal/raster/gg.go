package raster

import (
	"image"
	"image/draw"

	"github.com/fogleman/gg"
)

// GG renders coverage with github.com/fogleman/gg, whose freetype-based
// stroker supports round caps and joins natively.
//
// The freetype stroker emits nothing for zero-length subpaths, so a path
// whose points all coincide is drawn as a filled disc instead.
type GG struct{}

// Render implements Backend.
func (GG) Render(elements []Element, style Style, r image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(r)
	if r.Empty() || len(elements) == 0 {
		return mask
	}

	dc := gg.NewContext(r.Dx(), r.Dy())
	dc.Translate(-float64(r.Min.X), -float64(r.Min.Y))
	dc.SetRGBA(1, 1, 1, 1)

	if p, ok := singlePoint(elements); ok && !style.Fill {
		dc.DrawCircle(p.X, p.Y, style.Width/2)
		dc.Fill()
		return alphaOf(dc, mask)
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case Close:
			dc.ClosePath()
		}
	}

	if style.Fill {
		dc.SetFillRule(gg.FillRuleWinding)
		dc.Fill()
	} else {
		dc.SetLineWidth(style.Width)
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineJoin(gg.LineJoinRound)
		dc.Stroke()
	}
	return alphaOf(dc, mask)
}

// alphaOf copies the alpha channel of the context image into mask.
func alphaOf(dc *gg.Context, mask *image.Alpha) *image.Alpha {
	src, ok := dc.Image().(*image.RGBA)
	if !ok {
		src = image.NewRGBA(dc.Image().Bounds())
		draw.Draw(src, src.Bounds(), dc.Image(), dc.Image().Bounds().Min, draw.Src)
	}

	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	for y := 0; y < h; y++ {
		si := y * src.Stride
		di := y * mask.Stride
		for x := 0; x < w; x++ {
			mask.Pix[di+x] = src.Pix[si+x*4+3]
		}
	}
	return mask
}

// singlePoint reports whether every point of the path is the same point.
func singlePoint(elements []Element) (Point, bool) {
	var (
		first Point
		seen  bool
	)
	same := func(p Point) bool {
		if !seen {
			first, seen = p, true
			return true
		}
		return p == first
	}
	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			if !same(e.Point) {
				return Point{}, false
			}
		case LineTo:
			if !same(e.Point) {
				return Point{}, false
			}
		case QuadTo:
			if !same(e.Control) || !same(e.Point) {
				return Point{}, false
			}
		case CubicTo:
			if !same(e.Control1) || !same(e.Control2) || !same(e.Point) {
				return Point{}, false
			}
		}
	}
	return first, seen
}
