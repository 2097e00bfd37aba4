// Package raster computes anti-aliased coverage masks for stroked and filled
// path geometry.
//
// A Backend turns a list of path elements into an *image.Alpha whose bounds
// are exactly the requested pixel rectangle. Compositing the coverage onto
// color pixels is left to internal/blend, so the same mask can paint, erase
// or be merged with the coverage of earlier segments of the same stroke.
package raster

import "image"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Element represents a single element in a path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isElement() {}

// LineTo draws a straight line.
type LineTo struct{ Point Point }

func (LineTo) isElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isElement() {}

// Style selects how a path is turned into coverage.
type Style struct {
	// Width is the stroke width in pixels. Ignored when Fill is set.
	Width float64

	// Fill fills the path interior (non-zero winding) instead of stroking it.
	Fill bool
}

// Backend renders coverage for a path.
//
// Render returns a mask whose Bounds() equal r. Path coordinates are in the
// same pixel space as r. Strokes use round caps and round joins.
type Backend interface {
	Render(elements []Element, style Style, r image.Rectangle) *image.Alpha
}
