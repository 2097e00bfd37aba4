package sketch

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestBrush_Validate(t *testing.T) {
	tests := []struct {
		name    string
		brush   Brush
		wantErr bool
	}{
		{"default", DefaultBrush(), false},
		{"eraser", Brush{Width: 10, Opacity: 0.5, Blend: BlendClear}, false},
		{"zero width", Brush{Width: 0, Opacity: 1}, true},
		{"negative width", Brush{Width: -1, Opacity: 1}, true},
		{"nan width", Brush{Width: math.NaN(), Opacity: 1}, true},
		{"infinite width", Brush{Width: math.Inf(1), Opacity: 1}, true},
		{"opacity above one", Brush{Width: 1, Opacity: 1.5}, true},
		{"negative opacity", Brush{Width: 1, Opacity: -0.1}, true},
		{"unknown blend", Brush{Width: 1, Opacity: 1, Blend: BlendMode(7)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.brush.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBrush) {
				t.Errorf("Validate() = %v, want ErrInvalidBrush", err)
			}
		})
	}
}

func TestBrush_Source(t *testing.T) {
	tests := []struct {
		name  string
		brush Brush
		want  color.RGBA
	}{
		{"opaque red", Brush{Color: Red, Width: 1, Opacity: 1}, color.RGBA{255, 0, 0, 255}},
		{"half white", Brush{Color: White, Width: 1, Opacity: 0.5}, color.RGBA{128, 128, 128, 128}},
		{"eraser ignores color", Brush{Color: Red, Width: 1, Opacity: 1, Blend: BlendClear}, color.RGBA{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.brush.source(); got != tt.want {
				t.Errorf("source() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBrushSettings(t *testing.T) {
	black := DefaultBrush()
	red := black
	red.Color = Red

	s := NewBrushSettings(black)
	if _, ok := s.Previous(); ok {
		t.Fatal("fresh settings should not remember a brush")
	}
	if s.SwapPrevious() {
		t.Error("SwapPrevious without a previous brush should report false")
	}

	s.Set(red)
	if prev, ok := s.Previous(); !ok || prev != black {
		t.Errorf("Previous() = %v, %v; want black", prev, ok)
	}

	// Setting the same brush again must not overwrite the remembered one.
	s.Set(red)
	if prev, _ := s.Previous(); prev != black {
		t.Errorf("Previous() after identical Set = %v, want black", prev)
	}

	if !s.SwapPrevious() || s.Current() != black {
		t.Errorf("SwapPrevious: current = %v, want black", s.Current())
	}
	if prev, _ := s.Previous(); prev != red {
		t.Errorf("Previous() after swap = %v, want red", prev)
	}
}

func TestBrushSettings_DoubleTap(t *testing.T) {
	tests := []struct {
		action    TapAction
		wantBlend BlendMode
		wantColor RGBA
		changed   bool
	}{
		{TapSwitchEraser, BlendClear, Red, true},
		{TapSwitchPrevious, BlendNormal, Black, true},
		{TapIgnore, BlendNormal, Red, false},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			s := NewBrushSettings(DefaultBrush())
			red := DefaultBrush()
			red.Color = Red
			s.Set(red)

			if got := s.DoubleTap(tt.action); got != tt.changed {
				t.Errorf("DoubleTap() = %v, want %v", got, tt.changed)
			}
			cur := s.Current()
			if cur.Blend != tt.wantBlend || cur.Color != tt.wantColor {
				t.Errorf("current = %+v, want blend %v color %v", cur, tt.wantBlend, tt.wantColor)
			}
		})
	}
}

func TestBrushSettings_ToggleEraserTwice(t *testing.T) {
	s := NewBrushSettings(DefaultBrush())
	s.ToggleEraser()
	s.ToggleEraser()
	if got := s.Current(); got != DefaultBrush() {
		t.Errorf("after two toggles = %+v, want default", got)
	}
}
