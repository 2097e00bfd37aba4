package sketch

import "github.com/gogpu/sketch/internal/raster"

// RasterizerMode selects the coverage rasterizer used for strokes and fills.
//
// The mode is per-Canvas, not global. Both modes produce round caps and
// joins and non-zero winding fills; they differ in anti-aliasing detail.
type RasterizerMode int

const (
	// RasterizerNative uses golang.org/x/image/vector for fills and a
	// distance-field stroker (default).
	RasterizerNative RasterizerMode = iota

	// RasterizerGG uses github.com/fogleman/gg for both fills and strokes.
	RasterizerGG
)

// String returns the rasterizer mode name.
func (m RasterizerMode) String() string {
	switch m {
	case RasterizerNative:
		return "Native"
	case RasterizerGG:
		return "GG"
	default:
		return "Unknown"
	}
}

// backend returns the rasterizer for m. Unknown modes fall back to native.
func (m RasterizerMode) backend() raster.Backend {
	if m == RasterizerGG {
		return raster.GG{}
	}
	return raster.Native{}
}
