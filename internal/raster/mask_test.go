package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestMerge_Max(t *testing.T) {
	dst := image.NewAlpha(image.Rect(0, 0, 4, 1))
	src := image.NewAlpha(image.Rect(2, 0, 6, 1))
	for x := 0; x < 4; x++ {
		dst.SetAlpha(x, 0, color.Alpha{A: 100})
	}
	src.SetAlpha(2, 0, color.Alpha{A: 50})
	src.SetAlpha(3, 0, color.Alpha{A: 200})
	src.SetAlpha(4, 0, color.Alpha{A: 255})

	Merge(dst, src)

	want := []uint8{100, 100, 100, 200}
	for x, w := range want {
		if got := dst.AlphaAt(x, 0).A; got != w {
			t.Errorf("x=%d: alpha = %d, want %d", x, got, w)
		}
	}
}

func TestClearRect(t *testing.T) {
	m := image.NewAlpha(image.Rect(10, 10, 14, 14))
	for i := range m.Pix {
		m.Pix[i] = 255
	}

	ClearRect(m, image.Rect(11, 11, 100, 13))

	for y := 10; y < 14; y++ {
		for x := 10; x < 14; x++ {
			want := uint8(255)
			if x >= 11 && y >= 11 && y < 13 {
				want = 0
			}
			if got := m.AlphaAt(x, y).A; got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestInkBounds(t *testing.T) {
	m := image.NewAlpha(image.Rect(-5, -5, 5, 5))
	if got := InkBounds(m); !got.Empty() {
		t.Errorf("InkBounds(empty) = %v, want empty", got)
	}

	m.SetAlpha(-2, 1, color.Alpha{A: 1})
	m.SetAlpha(3, -4, color.Alpha{A: 90})

	want := image.Rect(-2, -4, 4, 2)
	if got := InkBounds(m); !got.Eq(want) {
		t.Errorf("InkBounds() = %v, want %v", got, want)
	}
}
