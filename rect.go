package sketch

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/sketch/internal/raster"
)

// Rect is an axis-aligned rectangle in canvas coordinates. Min is the top-left
// corner and Max the bottom-right corner.
type Rect struct {
	Min, Max Point
}

// R returns the rectangle spanned by two corners in any order.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: Point{X: math.Min(x0, x1), Y: math.Min(y0, y1)},
		Max: Point{X: math.Max(x0, x1), Y: math.Max(y0, y1)},
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.Min.X < r.Max.X && r.Min.Y < r.Max.Y)
}

// Expand returns r grown by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Pixels returns the smallest pixel rectangle covering r.
func (r Rect) Pixels() image.Rectangle {
	return raster.PixelRect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// String formats r as "(x0,y0)-(x1,y1)".
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
