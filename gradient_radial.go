package gg

import "math"

// RadialGradientPaint interpolates colors by the two-circle conical
// gradient model: a focal circle (Focus, Fr) grows or shrinks linearly
// into an end circle (Center, R) as the gradient parameter t runs from 0
// to 1. For a point p, Eval solves for the t at which p lies exactly on
// the interpolated circle.
//
// A plain radial gradient (focus at center, Fr == 0) is the special case
// where the circle doesn't translate, only grows.
type RadialGradientPaint struct {
	Focus  Point
	Fr     float64 // radius of the t=0 circle
	Center Point
	R      float64 // radius of the t=1 circle
	Stops  []ColorStop
	Extend ExtendMode
}

// NewRadialGradientPaint builds a radial (or focal, conical) gradient.
func NewRadialGradientPaint(fx, fy, fr, cx, cy, r float64, extend ExtendMode, stops ...ColorStop) RadialGradientPaint {
	premultiplied := make([]ColorStop, len(stops))
	for i, s := range stops {
		premultiplied[i] = ColorStop{Offset: s.Offset, Color: s.Color.Premultiply()}
	}
	return RadialGradientPaint{
		Focus: Point{X: fx, Y: fy}, Fr: fr,
		Center: Point{X: cx, Y: cy}, R: r,
		Stops: premultiplied, Extend: extend,
	}
}

// Eval implements Paint.
//
// Writing the interpolated circle as center(t) = lerp(Focus, Center, t),
// radius(t) = Fr + t*(R-Fr), the condition |p - center(t)| = radius(t)
// expands into A*t^2 + 2*B*t + C = 0 where A = |c-f|^2 - (r-fr)^2,
// B = (c-f)·(f-p) - fr*(r-fr), C = |f-p|^2 - fr^2. A == 0 && B == 0 means
// the interpolated circle never changes size or position (degenerate):
// transparent black. A negative
// discriminant means p lies on no interpolated circle: also
// transparent. The root choice (fr > r picks the "+" root, else the "-"
// root) selects the branch where radius(t) stays non-negative over the
// range the gradient is actually drawn.
func (g RadialGradientPaint) Eval(p Point) RGBA {
	dr := g.R - g.Fr
	dcx := g.Center.X - g.Focus.X
	dcy := g.Center.Y - g.Focus.Y
	fpx := g.Focus.X - p.X
	fpy := g.Focus.Y - p.Y

	a := dcx*dcx + dcy*dcy - dr*dr
	b := dcx*fpx + dcy*fpy - g.Fr*dr
	c := fpx*fpx + fpy*fpy - g.Fr*g.Fr

	if a == 0 {
		if b == 0 {
			return Transparent
		}
		t := -c / (2 * b)
		return colorAtOffset(g.Stops, t, g.Extend)
	}

	discriminant := b*b - a*c
	if discriminant < 0 {
		return Transparent
	}

	sq := math.Sqrt(discriminant)
	var t float64
	if g.Fr > g.R {
		t = (-b + sq) / a
	} else {
		t = (-b - sq) / a
	}
	return colorAtOffset(g.Stops, t, g.Extend)
}
