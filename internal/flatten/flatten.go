// Package flatten converts Bezier curves into polylines accurate to a
// given device-space tolerance. It defines its own Point type, distinct
// from the root package's, to avoid an import cycle: the root package
// calls into flatten, not the other way around.
package flatten

// Point is a 2D coordinate in whatever space the caller is flattening in
// (device space, in practice: error tolerance only means anything in the
// space the caller ultimately rasterizes).
type Point struct {
	X, Y float64
}

// maxDepth bounds the recursive subdivision so a pathological curve
// (looping back on itself, or a chord of zero length with huge control
// point offsets) can't recurse indefinitely.
const maxDepth = 24

func sub(a, b Point) Point       { return Point{a.X - b.X, a.Y - b.Y} }
func dot(a, b Point) float64     { return a.X*b.X + a.Y*b.Y }
func lenSq(a Point) float64      { return a.X*a.X + a.Y*a.Y }
func lerp(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// rejection returns the component of v perpendicular to d: v minus its
// projection onto d. Its squared length is how far a control point
// strays from the chord, which is what flatness is actually measuring.
func rejection(v, d Point, dd float64) Point {
	if dd == 0 {
		return v
	}
	t := dot(v, d) / dd
	return Point{v.X - t*d.X, v.Y - t*d.Y}
}

// cubicFlatEnough reports whether a cubic's two control points deviate
// from the p0-p3 chord by no more than tolerance, measured as the
// perpendicular (rejected) component of each control point's offset from
// p0, so deviation along the chord itself never counts against flatness.
func cubicFlatEnough(p0, p1, p2, p3 Point, tolerance float64) bool {
	d := sub(p3, p0)
	dd := dot(d, d)

	e1 := rejection(sub(p1, p0), d, dd)
	e2 := rejection(sub(p2, p0), d, dd)

	errSq := lenSq(e1)
	if s := lenSq(e2); s > errSq {
		errSq = s
	}
	return errSq <= tolerance*tolerance
}

// Cubic appends a polyline approximation of the cubic Bezier (p0, p1, p2,
// p3) to out, accurate to tolerance (in the same units as the points),
// and returns the extended slice. out should already contain p0 if the
// caller needs it; Cubic never appends the start point, only the points
// it traverses through p3.
func Cubic(out []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	return cubicRec(out, p0, p1, p2, p3, tolerance, 0)
}

func cubicRec(out []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	if depth >= maxDepth || cubicFlatEnough(p0, p1, p2, p3, tolerance) {
		return append(out, p3)
	}

	p01 := lerp(p0, p1, 0.5)
	p12 := lerp(p1, p2, 0.5)
	p23 := lerp(p2, p3, 0.5)
	p012 := lerp(p01, p12, 0.5)
	p123 := lerp(p12, p23, 0.5)
	mid := lerp(p012, p123, 0.5)

	out = cubicRec(out, p0, p01, p012, mid, tolerance, depth+1)
	return cubicRec(out, mid, p123, p23, p3, tolerance, depth+1)
}

// Quadratic appends a polyline approximation of the quadratic Bezier
// (p0, p1, p2) to out, by raising it to the exact equivalent cubic and
// flattening that. Returns the extended slice.
func Quadratic(out []Point, p0, p1, p2 Point, tolerance float64) []Point {
	c1 := Point{p0.X + 2.0/3.0*(p1.X-p0.X), p0.Y + 2.0/3.0*(p1.Y-p0.Y)}
	c2 := Point{p2.X + 2.0/3.0*(p1.X-p2.X), p2.Y + 2.0/3.0*(p1.Y-p2.Y)}
	return Cubic(out, p0, c1, c2, p2, tolerance)
}
