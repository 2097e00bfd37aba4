package sketch

import "testing"

func TestSmoothSegment_Midpoints(t *testing.T) {
	tests := []struct {
		name                string
		prevprev, prev, cur Point
	}{
		{"integral", Pt(0, 0), Pt(10, 0), Pt(10, 10)},
		{"fractional", Pt(0.1, 0.7), Pt(3.3, 1.9), Pt(-2.45, 8.05)},
		{"collinear", Pt(1, 1), Pt(2, 2), Pt(3, 3)},
		{"large", Pt(1e9, -1e9), Pt(1e9+0.5, 3), Pt(7, 1e-9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elems := SmoothSegment(tt.prevprev, tt.prev, tt.cur).Elements()
			if len(elems) != 2 {
				t.Fatalf("got %d elements, want 2", len(elems))
			}
			move, ok := elems[0].(MoveTo)
			if !ok {
				t.Fatalf("first element is %T, want MoveTo", elems[0])
			}
			quad, ok := elems[1].(QuadTo)
			if !ok {
				t.Fatalf("second element is %T, want QuadTo", elems[1])
			}

			wantStart := Pt((tt.prevprev.X+tt.prev.X)*0.5, (tt.prevprev.Y+tt.prev.Y)*0.5)
			wantEnd := Pt((tt.prev.X+tt.cur.X)*0.5, (tt.prev.Y+tt.cur.Y)*0.5)
			if move.Point != wantStart {
				t.Errorf("start = %v, want %v", move.Point, wantStart)
			}
			if quad.Control != tt.prev {
				t.Errorf("control = %v, want %v", quad.Control, tt.prev)
			}
			if quad.Point != wantEnd {
				t.Errorf("end = %v, want %v", quad.Point, wantEnd)
			}
		})
	}
}

func TestStrokeBuilder_Freehand(t *testing.T) {
	var b strokeBuilder
	b.begin(Pt(0, 0), DrawFreehand, true, DefaultBrush())

	if b.fill {
		t.Error("freehand strokes must never fill")
	}

	seg, ok := b.move(Pt(10, 0))
	if !ok {
		t.Fatal("move returned no segment")
	}
	elems := seg.Path.Elements()
	if got := elems[0].(MoveTo).Point; got != Pt(0, 0) {
		t.Errorf("first segment starts at %v, want (0,0)", got)
	}
	if got := elems[1].(QuadTo); got.Control != Pt(0, 0) || got.Point != Pt(5, 0) {
		t.Errorf("first segment quad = %+v, want control (0,0) end (5,0)", got)
	}

	seg, _ = b.move(Pt(10, 10))
	elems = seg.Path.Elements()
	if got := elems[0].(MoveTo).Point; got != Pt(5, 0) {
		t.Errorf("second segment starts at %v, want (5,0)", got)
	}
	if got := elems[1].(QuadTo); got.Control != Pt(10, 0) || got.Point != Pt(10, 5) {
		t.Errorf("second segment quad = %+v, want control (10,0) end (10,5)", got)
	}
}

func TestStrokeBuilder_Shapes(t *testing.T) {
	tests := []struct {
		name   string
		mode   DrawMode
		to     Point
		wantOK bool
		bounds Rect
	}{
		{"line", DrawLine, Pt(20, 5), true, R(2, 3, 20, 5)},
		{"line zero length", DrawLine, Pt(2, 3), true, R(2, 3, 2, 3)},
		{"rect", DrawRect, Pt(-4, 9), true, R(-4, 3, 2, 9)},
		{"rect zero width", DrawRect, Pt(2, 10), false, Rect{}},
		{"ellipse", DrawEllipse, Pt(12, 13), true, R(2, 3, 12, 13)},
		{"ellipse zero height", DrawEllipse, Pt(12, 3), false, Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strokeBuilder
			b.begin(Pt(2, 3), tt.mode, false, DefaultBrush())
			b.move(Pt(100, 100)) // shapes are rebuilt, not accumulated
			seg, ok := b.move(tt.to)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if seg.Bounds != tt.bounds {
				t.Errorf("Bounds = %v, want %v", seg.Bounds, tt.bounds)
			}
		})
	}
}

func TestStrokeBuilder_FillOnlyForShapes(t *testing.T) {
	for _, mode := range []DrawMode{DrawFreehand, DrawLine, DrawEllipse, DrawRect} {
		var b strokeBuilder
		b.begin(Pt(0, 0), mode, true, DefaultBrush())
		want := mode == DrawEllipse || mode == DrawRect
		if b.fill != want {
			t.Errorf("%v: fill = %v, want %v", mode, b.fill, want)
		}
	}
}

func TestStrokeBuilder_Dot(t *testing.T) {
	tests := []struct {
		mode   DrawMode
		fill   bool
		wantOK bool
	}{
		{DrawFreehand, false, true},
		{DrawFreehand, true, true}, // fill only applies to shapes
		{DrawLine, false, true},
		{DrawEllipse, false, true},
		{DrawRect, false, true},
		{DrawEllipse, true, false},
		{DrawRect, true, false},
	}
	for _, tt := range tests {
		var b strokeBuilder
		b.begin(Pt(4, 4), tt.mode, tt.fill, DefaultBrush())
		seg, ok := b.dot()
		if ok != tt.wantOK {
			t.Errorf("%v fill=%v: ok = %v, want %v", tt.mode, tt.fill, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if seg.Bounds != R(4, 4, 4, 4) {
			t.Errorf("%v: dot bounds = %v, want a single point", tt.mode, seg.Bounds)
		}
		if seg.Fill {
			t.Errorf("%v: dot segment is filled", tt.mode)
		}
	}
}

func TestNewSegment_Dirty(t *testing.T) {
	brush := DefaultBrush()
	brush.Width = 2
	seg := NewSegment(SmoothSegment(Pt(0, 0), Pt(0, 0), Pt(10, 0)), brush, false)

	if want := R(0, 0, 5, 0); seg.Bounds != want {
		t.Errorf("Bounds = %v, want %v", seg.Bounds, want)
	}
	if want := R(-4, -4, 9, 4); seg.Dirty != want {
		t.Errorf("Dirty = %v, want %v", seg.Dirty, want)
	}
}

func TestPathBounds_IncludesControlPoints(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(5, 20, 10, 0)
	if got, want := p.Bounds(), R(0, 0, 10, 20); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if got := NewPath().Bounds(); got != (Rect{}) {
		t.Errorf("empty Bounds() = %v, want zero", got)
	}
}

func TestDrawModeString(t *testing.T) {
	tests := []struct {
		mode DrawMode
		want string
	}{
		{DrawFreehand, "Freehand"},
		{DrawLine, "Line"},
		{DrawEllipse, "Ellipse"},
		{DrawRect, "Rect"},
		{DrawMode(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("DrawMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
