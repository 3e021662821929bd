package gg

import "testing"

func TestSolidPaintEvalIsConstant(t *testing.T) {
	s := NewSolidPaint(RGB(1, 0, 0))
	a := s.Eval(Pt(0, 0))
	b := s.Eval(Pt(500, -200))
	if a != b {
		t.Fatalf("solid paint should be position-independent: %v vs %v", a, b)
	}
	if a.R != 1 || a.A != 1 {
		t.Fatalf("expected opaque red premultiplied to itself, got %v", a)
	}
}

func TestOpacityPaintScalesResult(t *testing.T) {
	s := NewSolidPaint(RGBA2(1, 1, 1, 1))
	o := OpacityPaint{Inner: s, Opacity: 0.25}
	got := o.Eval(Pt(0, 0))
	if got.A != 0.25 {
		t.Fatalf("expected alpha scaled to 0.25, got %v", got.A)
	}
}

func TestTransformPaintAppliesInverse(t *testing.T) {
	inner := NewSolidPaint(Red)
	tp := NewTransformPaint(inner, Translate(10, 0))
	if tp.Singular {
		t.Fatal("translation is never singular")
	}
	// Evaluating a solid paint anywhere gives the same answer, so this
	// mostly checks that Eval doesn't panic and returns the inner color.
	got := tp.Eval(Pt(10, 0))
	if got != inner.Eval(Pt(0, 0)) {
		t.Fatalf("expected inverse-transformed evaluation of a solid paint to match, got %v", got)
	}

	// A gradient does depend on position: device x=10 must map back to
	// gradient x=0 (the first stop), not stay at x=10 (the last stop).
	grad := NewLinearGradientPaint(0, 0, 10, 0, ExtendPad,
		ColorStop{Offset: 0, Color: Red},
		ColorStop{Offset: 1, Color: Blue},
	)
	gp := NewTransformPaint(grad, Translate(10, 0))
	if got, want := gp.Eval(Pt(10, 0)), grad.Eval(Pt(0, 0)); got != want {
		t.Fatalf("expected the inverse translation to map x=10 back to x=0: want %v got %v", want, got)
	}
}

func TestTransformPaintSingularReturnsTransparent(t *testing.T) {
	zero := Matrix{} // all zero: determinant 0
	tp := NewTransformPaint(NewSolidPaint(Red), zero)
	if !tp.Singular {
		t.Fatal("expected a zero matrix to be reported singular")
	}
	if tp.Eval(Pt(1, 1)) != Transparent {
		t.Fatalf("expected transparent for a singular transform paint, got %v", tp.Eval(Pt(1, 1)))
	}
}
