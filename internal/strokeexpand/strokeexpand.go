// Package strokeexpand turns a flattened polyline centerline into
// fillable stroke outline loops, offsetting by half the stroke width
// along each segment's left normal.
//
// There is deliberately no join handling (miter, round, or bevel) and no
// dashing: consecutive offset segments are connected by a straight line
// directly between their endpoints, which is the spec's prescribed
// stand-in for a real join. A closed centerline becomes two loops wound
// in opposite directions — an outer and an inner boundary whose non-zero
// winding difference is the annulus's hole. An open centerline becomes
// one loop: the left offset walking the centerline forward, joined to
// the left offset walking it backward (which is the right offset of the
// original direction), closing the ribbon with a flat butt at each end.
package strokeexpand

import "math"

// Point is a 2D coordinate in whatever space the caller is stroking in.
type Point struct {
	X, Y float64
}

// offsetSide returns, for each segment of points (wrapping around if
// closed), the pair of points offset by halfWidth along that segment's
// left normal. Zero-length segments are skipped rather than producing a
// degenerate offset direction.
func offsetSide(points []Point, halfWidth float64, closed bool) []Point {
	n := len(points)
	segments := n - 1
	if closed {
		segments = n
	}
	if segments < 1 {
		return nil
	}

	out := make([]Point, 0, segments*2)
	for i := 0; i < segments; i++ {
		p0 := points[i]
		p1 := points[(i+1)%n]

		dx, dy := p1.X-p0.X, p1.Y-p0.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*halfWidth, dx/length*halfWidth

		out = append(out, Point{p0.X + nx, p0.Y + ny}, Point{p1.X + nx, p1.Y + ny})
	}
	return out
}

func reversed(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

// Expand returns the fillable stroke outline loops for a centerline of
// width points wide. For closed=true it returns exactly two loops (outer
// forward offset, inner reverse offset); for closed=false it returns a
// single loop enclosing the whole stroked ribbon including its two butt
// ends. Returns nil if points has fewer than two points, or if every
// segment collapses (all points coincide).
func Expand(points []Point, width float64, closed bool) [][]Point {
	if len(points) < 2 {
		return nil
	}
	halfWidth := width / 2

	forward := offsetSide(points, halfWidth, closed)
	if len(forward) == 0 {
		return nil
	}

	if closed {
		reverse := offsetSide(reversed(points), halfWidth, closed)
		return [][]Point{forward, reverse}
	}

	backward := offsetSide(reversed(points), halfWidth, false)
	return [][]Point{append(forward, backward...)}
}
