package sketch

import (
	"math"
	"testing"
)

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestSnapshot_Composites(t *testing.T) {
	c := NewCanvas(4, 4)
	c.stack.at(0).pixels.Clear(Red)
	c.AddLayer()
	c.stack.at(1).pixels.Clear(Blue)
	if err := c.SetLayerOpacity(1, 0.5); err != nil {
		t.Fatal(err)
	}

	px := c.Snapshot().GetPixel(1, 1)
	const tol = 2.0 / 255
	if !near(px.A, 1, tol) || !near(px.R, 0.5, tol) || !near(px.B, 0.5, tol) || px.G != 0 {
		t.Errorf("half blue over red = %+v, want (0.5, 0, 0.5, 1)", px)
	}
}

func TestSnapshot_SkipsHiddenAndTransparent(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Canvas)
	}{
		{"hidden", func(c *Canvas) { _ = c.HideLayer(1) }},
		{"opacity zero", func(c *Canvas) { _ = c.SetLayerOpacity(1, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(4, 4)
			c.stack.at(0).pixels.Clear(Red)
			c.AddLayer()
			c.stack.at(1).pixels.Clear(Blue)
			tt.setup(c)

			if px := c.Snapshot().GetPixel(2, 2); px != Red {
				t.Errorf("pixel = %+v, want red", px)
			}
		})
	}
}

func TestSnapshot_LayerOffset(t *testing.T) {
	c := NewCanvas(10, 10)
	l := c.stack.at(0)
	l.pixels.SetPixel(0, 0, Red)
	l.frame = l.frame.Translate(Pt(3.4, 6.6))

	snap := c.Snapshot()
	if px := snap.GetPixel(3, 7); px != Red {
		t.Errorf("offset pixel = %+v, want red", px)
	}
	if px := snap.GetPixel(0, 0); px.A != 0 {
		t.Errorf("origin pixel = %+v, want transparent", px)
	}
}

func TestSnapshot_IncludesStrokeInProgress(t *testing.T) {
	c := NewCanvas(30, 30)
	begin(c, Pt(5, 5), DeviceFinger)
	move(c, Pt(20, 5))
	move(c, Pt(25, 5))

	if c.Snapshot().InkBounds().Empty() {
		t.Error("snapshot misses the previewed stroke")
	}
	c.HandlePointer(PointerEvent{Phase: PhaseCancel})
	if !c.Snapshot().InkBounds().Empty() {
		t.Error("snapshot keeps a cancelled stroke")
	}
}

func TestThumbnail(t *testing.T) {
	c := NewCanvas(40, 20)
	c.stack.at(0).pixels.Clear(Red)
	_ = c.HideLayer(0)

	th, err := c.Thumbnail(0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if th.Width() != 10 || th.Height() != 5 {
		t.Fatalf("thumbnail = %dx%d, want 10x5", th.Width(), th.Height())
	}
	if px := th.GetPixel(5, 2); !near(px.R, 1, 0.01) || !near(px.A, 1, 0.01) {
		t.Errorf("thumbnail pixel = %+v, want red", px)
	}

	th, err = c.Thumbnail(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if th.Width() != 1 || th.Height() != 1 {
		t.Errorf("thumbnail = %dx%d, want 1x1", th.Width(), th.Height())
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, side   int
		wantW, wantH int
	}{
		{40, 20, 10, 10, 5},
		{20, 40, 10, 5, 10},
		{100, 1, 10, 10, 1},
		{1, 100, 10, 1, 10},
		{3, 3, 6, 6, 6},
	}
	for _, tt := range tests {
		w, h := fit(tt.w, tt.h, tt.side)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("fit(%d, %d, %d) = %d, %d; want %d, %d", tt.w, tt.h, tt.side, w, h, tt.wantW, tt.wantH)
		}
	}
}
