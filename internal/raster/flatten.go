package raster

import "math"

// Tolerance is the maximum distance from the curve for flattening.
const Tolerance = 0.1

// maxDepth bounds curve subdivision, so curves with non-finite control
// points still terminate.
const maxDepth = 16

// Flatten converts a path with curves into polylines, one per subpath.
// A closed subpath ends with a copy of its first point.
func Flatten(elements []Element, tolerance float64) [][]Point {
	var (
		polys   [][]Point
		current []Point
		pen     Point
		start   Point
	)

	flush := func() {
		if len(current) > 0 {
			polys = append(polys, current)
		}
		current = nil
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			pen, start = e.Point, e.Point
			current = append(current, pen)

		case LineTo:
			if len(current) == 0 {
				current = append(current, pen)
			}
			pen = e.Point
			current = append(current, pen)

		case QuadTo:
			if len(current) == 0 {
				current = append(current, pen)
			}
			flattenQuadraticRec(pen, e.Control, e.Point, tolerance, 0, &current)
			pen = e.Point

		case CubicTo:
			if len(current) == 0 {
				current = append(current, pen)
			}
			flattenCubicRec(pen, e.Control1, e.Control2, e.Point, tolerance, 0, &current)
			pen = e.Point

		case Close:
			if len(current) > 0 {
				current = append(current, start)
			}
			pen = start
			flush()
		}
	}
	flush()

	return polys
}

func lerp(p, q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// flattenQuadraticRec recursively subdivides a quadratic Bezier curve.
func flattenQuadraticRec(p0, p1, p2 Point, tolerance float64, depth int, points *[]Point) {
	if depth >= maxDepth || distanceToSegment(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(q0, q1, 0.5)

	flattenQuadraticRec(p0, q0, q2, tolerance, depth+1, points)
	flattenQuadraticRec(q2, q1, p2, tolerance, depth+1, points)
}

// flattenCubicRec recursively subdivides a cubic Bezier curve using de Casteljau's algorithm.
func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, depth int, points *[]Point) {
	d1 := distanceToSegment(p1, p0, p3)
	d2 := distanceToSegment(p2, p0, p3)
	if depth >= maxDepth || math.Max(d1, d2) < tolerance {
		*points = append(*points, p3)
		return
	}

	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(p2, p3, 0.5)
	r0 := lerp(q0, q1, 0.5)
	r1 := lerp(q1, q2, 0.5)
	s := lerp(r0, r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, depth+1, points)
	flattenCubicRec(s, r1, q2, p3, tolerance, depth+1, points)
}

// distanceToSegment returns the distance from p to the line segment (a, b).
func distanceToSegment(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq < 1e-20 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}

	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+abx*t), p.Y-(a.Y+aby*t))
}
