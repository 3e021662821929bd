package rasterizer

// trapezoid is the shape cut from a horizontal strip [y0,y1] by two
// bounding lines: the left line runs from x0 (at y0) to x1 (at y1), the
// right line from x2 (at y0) to x3 (at y1).
//
//	y1    --------
//	     /       /
//	    /       /
//	   /       /
//	y0 --------
//	  x0 x1   x2 x3
type trapezoid struct {
	y0, y1         float32
	x0, x1, x2, x3 float32
}

func newTrapezoid(y0, y1 float32, l0, l1 Line) trapezoid {
	return trapezoid{y0: y0, y1: y1, x0: l0.GetX(y0), x1: l0.GetX(y1), x2: l1.GetX(y0), x3: l1.GetX(y1)}
}

func (t trapezoid) area() float32 {
	return (t.y1 - t.y0) * (t.x2 + t.x3 - t.x0 - t.x1) * .5
}

// pixelCoverage returns the area of the unit-width column
// [x, x+1) x [trapezoid.y0, trapezoid.y1) covered by the trapezoid,
// exactly, by starting from the full-column area and subtracting the
// slivers that stick out past the column on either side. The cases
// below mirror the trapezoid's actual overlap with the column, which
// can be a partial intersection (a smaller triangle/trapezoid carved
// off at one corner) or an edge entirely outside the column.
func pixelCoverage(t trapezoid, x float32) float32 {
	y0, y1 := t.y0, t.y1
	x0, x1, x2, x3 := t.x0, t.x1, t.x2, t.x3
	x4 := x
	x5 := x + 1

	// assume x4 >= x1 && x5 <= x2, i.e. the column sits entirely inside
	// the trapezoid's straight middle section
	area := y1 - y0

	if x4 < x1 {
		l0 := NewLine(Point{X: x0, Y: y0}, Point{X: x1, Y: y1})
		if x4 < x0 {
			area -= trapezoid{y0: y0, y1: y1, x0: x4, x1: x4, x2: x0, x3: x1}.area()
		} else {
			intersection := intersectLines(l0, constXLine(x4))
			area -= trapezoid{y0: intersection, y1: y1, x0: x4, x1: x4, x2: x4, x3: x1}.area()
		}
		if x5 < x1 {
			intersection := intersectLines(l0, constXLine(x5))
			area += trapezoid{y0: intersection, y1: y1, x0: x5, x1: x5, x2: x5, x3: x1}.area()
		}
	}
	if x5 > x2 {
		l1 := NewLine(Point{X: x2, Y: y0}, Point{X: x3, Y: y1})
		if x5 > x3 {
			area -= trapezoid{y0: y0, y1: y1, x0: x2, x1: x3, x2: x5, x3: x5}.area()
		} else {
			intersection := intersectLines(l1, constXLine(x5))
			area -= trapezoid{y0: y0, y1: intersection, x0: x2, x1: x5, x2: x5, x3: x5}.area()
		}
		if x4 > x2 {
			intersection := intersectLines(l1, constXLine(x4))
			area += trapezoid{y0: y0, y1: intersection, x0: x2, x1: x4, x2: x4, x3: x4}.area()
		}
	}

	return area
}

// constXLine is the degenerate line x = v, m = 0: used only to intersect
// against one of the trapezoid's slanted edges when clipping to a pixel
// column.
func constXLine(v float32) Line { return Line{M: 0, X0: v} }
