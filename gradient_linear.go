package gg

// LinearGradientPaint transitions colors linearly between two points.
// It implements Paint, evaluating stops along the projection of a point
// onto the Start-End axis.
type LinearGradientPaint struct {
	Start  Point
	End    Point
	Stops  []ColorStop // premultiplied colors, any order; sorted on use
	Extend ExtendMode
}

// NewLinearGradientPaint builds a linear gradient from (x0, y0) to (x1, y1).
// Stop colors are premultiplied so the gradient's output is always valid
// premultiplied color, matching every other Paint in this package.
func NewLinearGradientPaint(x0, y0, x1, y1 float64, extend ExtendMode, stops ...ColorStop) LinearGradientPaint {
	premultiplied := make([]ColorStop, len(stops))
	for i, s := range stops {
		premultiplied[i] = ColorStop{Offset: s.Offset, Color: s.Color.Premultiply()}
	}
	return LinearGradientPaint{
		Start:  Point{X: x0, Y: y0},
		End:    Point{X: x1, Y: y1},
		Stops:  premultiplied,
		Extend: extend,
	}
}

// Eval implements Paint.
//
// When Start equals End, the gradient's axis collapses to a point; every
// point then projects to the same location, so we fall back to the first
// stop's color rather than divide by zero (the EmptyGradient condition
// degenerates the same way as a single-stop gradient, not a crash).
func (g LinearGradientPaint) Eval(p Point) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy

	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	px := p.X - g.Start.X
	py := p.Y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t, g.Extend)
}

// firstStopColor returns the color of the stop with the lowest offset, or
// transparent black if there are no stops (the EmptyGradient condition).
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		Logger().Debug("empty gradient")
		return Transparent
	}
	sorted := sortStops(stops)
	return sorted[0].Color
}
