// Package rasterizer turns a set of shapes, each a closed set of directed
// edges plus a paint to sample, into pixel coverage via an event-driven
// sweep line and exact analytic trapezoid-area antialiasing. It defines
// its own Point and Color types, distinct from the root package's, to
// avoid an import cycle: the root package calls into rasterizer, not the
// other way around, and hands it plain evaluator closures rather than
// its own Paint interface.
//
// Coordinates and colors are float32 throughout. A rasterizer walks
// millions of sub-pixel trapezoids per frame and never needs more than a
// few bits past the 8-bit output depth, so the extra range and precision
// of float64 buys nothing here.
package rasterizer

import "github.com/chewxy/math32"

// Point is a device-space coordinate.
type Point struct {
	X, Y float32
}

// Color is a premultiplied RGBA sample in linear, straight-alpha-free
// space: R, G, B already include the A factor.
type Color struct {
	R, G, B, A float32
}

func (c Color) add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

func (c Color) scale(f float32) Color {
	return Color{c.R * f, c.G * f, c.B * f, c.A * f}
}

// over composites src atop dst using Porter-Duff "over" on premultiplied
// color: the standard way to stack multiple shapes that are all active at
// the same point before the result is weighted by coverage and summed
// into the pixel.
func over(dst, src Color) Color {
	return src.add(dst.scale(1 - src.A))
}

// Line represents an edge's x coordinate as an affine function of y:
// x = M*y + X0. Every segment of a flattened path outline becomes one of
// these; a purely horizontal segment has no well-defined line (M would be
// infinite) and contributes nothing to winding, so it is never
// constructed as one.
type Line struct {
	M, X0 float32
}

// NewLine builds the line through p0 and p1. Callers must not pass two
// points with the same Y; see Segment.
func NewLine(p0, p1 Point) Line {
	m := (p1.X - p0.X) / (p1.Y - p0.Y)
	return Line{M: m, X0: p0.X - m*p0.Y}
}

// GetX evaluates the line at a given y.
func (l Line) GetX(y float32) float32 {
	return l.M*y + l.X0
}

// intersectLines returns the y at which two non-parallel lines cross.
func intersectLines(a, b Line) float32 {
	return (b.X0 - a.X0) / (a.M - b.M)
}

// Segment is one directed edge of a shape's flattened, device-space
// outline, running from (line.GetX(Y0), Y0) to (line.GetX(Y1), Y1). Y0
// and Y1 are kept in their original traversal order, not sorted, because
// that order is what determines winding direction during the sweep.
type Segment struct {
	Y0, Y1 float32
	Line   Line
}

// NewSegment builds a Segment from two consecutive device-space points
// of a flattened outline. It returns ok=false for a horizontal segment,
// which carries no winding and has no well-defined Line.
func NewSegment(p0, p1 Point) (Segment, bool) {
	if p0.Y == p1.Y {
		return Segment{}, false
	}
	return Segment{Y0: p0.Y, Y1: p1.Y, Line: NewLine(p0, p1)}, true
}

func fmin(a, b float32) float32 { return math32.Min(a, b) }
func fmax(a, b float32) float32 { return math32.Max(a, b) }
