package gg

// Stroke is the width used to expand a path's flattened outline into
// fillable geometry. Joins and caps beyond a flat butt end are out of
// scope: every stroked corner is a straight offset connector, and every
// open subpath end is a plain cut, never a round or square cap.
type Stroke struct {
	Width float64
}

// DefaultStroke returns a 1-pixel-wide stroke.
func DefaultStroke() Stroke {
	return Stroke{Width: 1.0}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// Thin returns a 0.5-pixel stroke.
func Thin() Stroke {
	return Stroke{Width: 0.5}
}

// Thick returns a 3-pixel stroke.
func Thick() Stroke {
	return Stroke{Width: 3.0}
}

// Bold returns a 5-pixel stroke.
func Bold() Stroke {
	return Stroke{Width: 5.0}
}
