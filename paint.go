package gg

// Paint evaluates to a premultiplied color at any point in the coordinate
// space it was defined in. A Shape's fill and stroke are each a Paint.
type Paint interface {
	Eval(p Point) RGBA
}

// SolidPaint paints every point the same premultiplied color.
type SolidPaint struct {
	Color RGBA
}

// NewSolidPaint premultiplies c and wraps it as a Paint.
func NewSolidPaint(c RGBA) SolidPaint {
	return SolidPaint{Color: c.Premultiply()}
}

// Eval implements Paint.
func (s SolidPaint) Eval(Point) RGBA { return s.Color }

// OpacityPaint scales every channel of an inner paint's evaluated color by
// a constant factor, implementing per-shape fill or stroke opacity without
// touching the paint it wraps.
type OpacityPaint struct {
	Inner   Paint
	Opacity float64
}

// Eval implements Paint.
func (o OpacityPaint) Eval(p Point) RGBA {
	return o.Inner.Eval(p).Scale(o.Opacity)
}

// TransformPaint maps device-space points back into an inner paint's own
// coordinate space before evaluating it. Gradients are specified once, in
// the local coordinate space of the geometry that references them
// (userSpaceOnUse); wrapping them in a TransformPaint at draw time is what
// keeps a gradient glued to its shape instead of to the device.
//
// When the forward transform has no inverse, Singular is true and Eval
// always returns transparent black, matching the SingularTransform
// condition: a gradient painted through a degenerate transform covers
// nothing rather than guessing at a projection.
type TransformPaint struct {
	Inner    Paint
	Inverse  Matrix
	Singular bool
}

// NewTransformPaint wraps inner so that it is evaluated in the space which
// forward maps onto the device space the shape is drawn in.
func NewTransformPaint(inner Paint, forward Matrix) TransformPaint {
	inv, ok := forward.Invert()
	return TransformPaint{Inner: inner, Inverse: inv, Singular: !ok}
}

// Eval implements Paint.
func (t TransformPaint) Eval(p Point) RGBA {
	if t.Singular {
		Logger().Debug("singular transform paint")
		return Transparent
	}
	return t.Inner.Eval(t.Inverse.TransformPoint(p))
}
