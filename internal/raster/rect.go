package raster

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"
)

// maxCoord keeps 26.6 conversions clear of int32 overflow.
const maxCoord = 1 << 24

// PixelRect returns the smallest pixel rectangle containing the float
// rectangle (minX, minY)-(maxX, maxY). The input is snapped outward on the
// 1/64 pixel grid before rounding to whole pixels.
func PixelRect(minX, minY, maxX, maxY float64) image.Rectangle {
	if !(minX <= maxX && minY <= maxY) {
		return image.Rectangle{}
	}

	r := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: floor26_6(minX), Y: floor26_6(minY)},
		Max: fixed.Point26_6{X: ceil26_6(maxX), Y: ceil26_6(maxY)},
	}
	return image.Rect(r.Min.X.Floor(), r.Min.Y.Floor(), r.Max.X.Ceil(), r.Max.Y.Ceil())
}

func floor26_6(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Floor(clampCoord(v) * 64))
}

func ceil26_6(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Ceil(clampCoord(v) * 64))
}

func clampCoord(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > maxCoord:
		return maxCoord
	case v < -maxCoord:
		return -maxCoord
	}
	return v
}
