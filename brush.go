package sketch

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/sketch/internal/blend"
)

// BlendMode selects how a stroke combines with the layer pixels under it.
type BlendMode int

const (
	// BlendNormal composites the stroke color over the layer (source-over).
	BlendNormal BlendMode = iota

	// BlendClear erases: the layer alpha is reduced by the stroke coverage
	// times the brush opacity. The brush color is ignored.
	BlendClear
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// Brush holds the drawing attributes of a stroke. A Brush is a value; the
// canvas copies it when a stroke begins, so later changes never touch strokes
// already in progress or committed.
type Brush struct {
	Color   RGBA
	Width   float64 // stroke width in pixels, > 0
	Opacity float64 // [0, 1]
	Blend   BlendMode
}

// DefaultBrush returns an opaque black brush of width 3.
func DefaultBrush() Brush {
	return Brush{Color: Black, Width: 3, Opacity: 1, Blend: BlendNormal}
}

// Validate reports whether the brush can be used for drawing.
func (b Brush) Validate() error {
	if !(b.Width > 0) || math.IsInf(b.Width, 1) {
		return fmt.Errorf("%w: width %v", ErrInvalidBrush, b.Width)
	}
	if !(b.Opacity >= 0 && b.Opacity <= 1) {
		return fmt.Errorf("%w: opacity %v", ErrInvalidBrush, b.Opacity)
	}
	if b.Blend != BlendNormal && b.Blend != BlendClear {
		return fmt.Errorf("%w: blend mode %d", ErrInvalidBrush, b.Blend)
	}
	return nil
}

// source returns the premultiplied source color with opacity applied.
// Erasing only needs the alpha.
func (b Brush) source() color.RGBA {
	if b.Blend == BlendClear {
		return color.RGBA{A: uint8(clamp01(b.Opacity)*255 + 0.5)}
	}
	return b.Color.premultiplied8(b.Opacity)
}

func (b Brush) mode() blend.Mode {
	if b.Blend == BlendClear {
		return blend.ModeDestinationOut
	}
	return blend.ModeSourceOver
}

// TapAction selects what a stylus double tap does.
type TapAction int

const (
	// TapSwitchEraser toggles the brush between normal and clear blending.
	TapSwitchEraser TapAction = iota

	// TapSwitchPrevious swaps the brush with the previously used one.
	TapSwitchPrevious

	// TapIgnore does nothing.
	TapIgnore
)

// String returns the tap action name.
func (a TapAction) String() string {
	switch a {
	case TapSwitchEraser:
		return "SwitchEraser"
	case TapSwitchPrevious:
		return "SwitchPrevious"
	case TapIgnore:
		return "Ignore"
	default:
		return "Unknown"
	}
}

// BrushSettings is the live brush configuration with a single remembered
// previous brush. It is not a history: only the last replaced brush is kept.
type BrushSettings struct {
	current     Brush
	previous    Brush
	hasPrevious bool
}

// NewBrushSettings returns settings whose current brush is b.
func NewBrushSettings(b Brush) BrushSettings {
	return BrushSettings{current: b}
}

// Current returns the live brush.
func (s *BrushSettings) Current() Brush {
	return s.current
}

// Previous returns the remembered brush, if any.
func (s *BrushSettings) Previous() (Brush, bool) {
	return s.previous, s.hasPrevious
}

// Set replaces the live brush and remembers the one it replaces.
// Setting an identical brush changes nothing.
func (s *BrushSettings) Set(b Brush) {
	if b == s.current {
		return
	}
	s.previous, s.hasPrevious = s.current, true
	s.current = b
}

// SwapPrevious exchanges the live and the remembered brush. It reports
// false when no brush has been remembered yet.
func (s *BrushSettings) SwapPrevious() bool {
	if !s.hasPrevious {
		return false
	}
	s.current, s.previous = s.previous, s.current
	return true
}

// ToggleEraser flips the live brush between normal and clear blending. The
// replaced brush is remembered like any other change.
func (s *BrushSettings) ToggleEraser() {
	b := s.current
	if b.Blend == BlendClear {
		b.Blend = BlendNormal
	} else {
		b.Blend = BlendClear
	}
	s.Set(b)
}

// DoubleTap performs action and reports whether the live brush changed.
func (s *BrushSettings) DoubleTap(action TapAction) bool {
	switch action {
	case TapSwitchEraser:
		s.ToggleEraser()
		return true
	case TapSwitchPrevious:
		return s.SwapPrevious()
	default:
		return false
	}
}
