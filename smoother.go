package sketch

// DrawMode selects the geometry a stroke produces.
type DrawMode int

const (
	// DrawFreehand smooths the raw samples into quadratic curves (default).
	DrawFreehand DrawMode = iota

	// DrawLine draws one straight line from the first to the current sample.
	DrawLine

	// DrawEllipse draws the ellipse inscribed in the box spanned by the first
	// and the current sample.
	DrawEllipse

	// DrawRect draws the box spanned by the first and the current sample.
	DrawRect
)

// String returns the draw mode name.
func (m DrawMode) String() string {
	switch m {
	case DrawFreehand:
		return "Freehand"
	case DrawLine:
		return "Line"
	case DrawEllipse:
		return "Ellipse"
	case DrawRect:
		return "Rect"
	default:
		return "Unknown"
	}
}

// shape reports whether the mode is rebuilt from scratch on every move.
func (m DrawMode) shape() bool {
	return m != DrawFreehand
}

// Segment is one piece of stroke geometry ready to be rasterized.
type Segment struct {
	Path   *Path
	Brush  Brush
	Fill   bool
	Bounds Rect // path bounding box, control points included
	Dirty  Rect // Bounds expanded by twice the brush width
}

// NewSegment wraps path with its bounding and dirty boxes.
func NewSegment(path *Path, brush Brush, fill bool) Segment {
	bounds := path.Bounds()
	return Segment{
		Path:   path,
		Brush:  brush,
		Fill:   fill,
		Bounds: bounds,
		Dirty:  bounds.Expand(2 * brush.Width),
	}
}

// SmoothSegment returns the quadratic curve for three consecutive samples:
// it starts at the midpoint of prevprev and prev, is controlled by prev, and
// ends at the midpoint of prev and cur.
func SmoothSegment(prevprev, prev, cur Point) *Path {
	m1 := prevprev.Mid(prev)
	m2 := prev.Mid(cur)
	p := NewPath()
	p.MoveTo(m1.X, m1.Y)
	p.QuadraticTo(prev.X, prev.Y, m2.X, m2.Y)
	return p
}

// LinePath returns a straight line from a to b.
func LinePath(a, b Point) *Path {
	p := NewPath()
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)
	return p
}

// ShapePath returns the ellipse or rectangle spanned by corners a and b. It
// returns nil when the box has zero width or height, or when mode is not a
// shape mode.
func ShapePath(mode DrawMode, a, b Point) *Path {
	box := R(a.X, a.Y, b.X, b.Y)
	if box.Empty() {
		return nil
	}
	p := NewPath()
	switch mode {
	case DrawEllipse:
		rx, ry := box.Width()/2, box.Height()/2
		p.Ellipse(box.Min.X+rx, box.Min.Y+ry, rx, ry)
	case DrawRect:
		p.Rectangle(box.Min.X, box.Min.Y, box.Width(), box.Height())
	default:
		return nil
	}
	return p
}

// strokeBuilder holds the per-stroke geometry state: the first sample and
// the last three samples. It never keeps more than that.
type strokeBuilder struct {
	mode  DrawMode
	fill  bool
	brush Brush

	first    Point
	prevprev Point
	prev     Point
	current  Point
}

// begin seeds every sample with p, so the first smoothed curve collapses to
// the point p.
func (b *strokeBuilder) begin(p Point, mode DrawMode, fill bool, brush Brush) {
	*b = strokeBuilder{
		mode:     mode,
		fill:     fill && (mode == DrawEllipse || mode == DrawRect),
		brush:    brush,
		first:    p,
		prevprev: p,
		prev:     p,
		current:  p,
	}
}

// move records a new sample and returns the segment it produces. ok is
// false for a shape whose box has no area.
func (b *strokeBuilder) move(p Point) (seg Segment, ok bool) {
	b.prevprev, b.prev, b.current = b.prev, b.current, p

	var path *Path
	switch b.mode {
	case DrawLine:
		path = LinePath(b.first, b.current)
	case DrawEllipse, DrawRect:
		path = ShapePath(b.mode, b.first, b.current)
	default:
		path = SmoothSegment(b.prevprev, b.prev, b.current)
	}
	if path == nil {
		return Segment{}, false
	}
	return NewSegment(path, b.brush, b.fill), true
}

// dot returns the single-point stroke committed for a tap. A filled shape
// has no area to fill for a tap, so it produces nothing; every other mode
// leaves a dot of the brush width.
func (b *strokeBuilder) dot() (Segment, bool) {
	if b.fill {
		return Segment{}, false
	}
	p := b.first
	return NewSegment(SmoothSegment(p, p, p), b.brush, false), true
}
