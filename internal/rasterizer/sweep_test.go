package rasterizer

import (
	"math"
	"testing"
)

type testSink struct {
	width, height int
	pixels        []Color
}

func newTestSink(w, h int) *testSink {
	return &testSink{width: w, height: h, pixels: make([]Color, w*h)}
}

func (s *testSink) Width() int  { return s.width }
func (s *testSink) Height() int { return s.height }

func (s *testSink) AddPixel(x, y int, r, g, b, a float32) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.width + x
	s.pixels[i] = s.pixels[i].add(Color{R: r, G: g, B: b, A: a})
}

func (s *testSink) at(x, y int) Color { return s.pixels[y*s.width+x] }

func approx(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) < float64(eps)
}

// loopShape builds a closed-loop Shape (implicit closing edge) painted
// with a constant color, mirroring how Document.Fill assembles shapes
// from a flattened subpath.
func loopShape(points []Point, c Color) Shape {
	n := len(points)
	var segs []Segment
	for i := 0; i < n; i++ {
		p0 := points[i]
		p1 := points[(i+1)%n]
		if seg, ok := NewSegment(p0, p1); ok {
			segs = append(segs, seg)
		}
	}
	return Shape{Segments: segs, Eval: func(x, y float32) Color { return c }}
}

func TestAxisAlignedSquareEdgesAreHalfCovered(t *testing.T) {
	red := Color{R: 1, A: 1}
	// Edges on half-pixel coordinates cut pixel columns 2 and 7 (and rows
	// 2 and 7) exactly in half; pixels 3..6 are fully inside.
	square := loopShape([]Point{{X: 2.5, Y: 2.5}, {X: 7.5, Y: 2.5}, {X: 7.5, Y: 7.5}, {X: 2.5, Y: 7.5}}, red)

	sink := newTestSink(10, 10)
	Rasterize([]Shape{square}, sink)

	for y := 3; y <= 6; y++ {
		for x := 3; x <= 6; x++ {
			c := sink.at(x, y)
			if !approx(c.A, 1, 1e-4) {
				t.Fatalf("interior pixel (%d,%d) expected alpha 1, got %v", x, y, c.A)
			}
		}
	}

	for _, y := range []int{3, 4, 5, 6} {
		for _, x := range []int{2, 7} {
			c := sink.at(x, y)
			if !approx(c.A, 0.5, 1e-4) {
				t.Fatalf("edge column pixel (%d,%d) expected alpha 0.5, got %v", x, y, c.A)
			}
		}
	}
	for _, x := range []int{3, 4, 5, 6} {
		for _, y := range []int{2, 7} {
			c := sink.at(x, y)
			if !approx(c.A, 0.5, 1e-4) {
				t.Fatalf("edge row pixel (%d,%d) expected alpha 0.5, got %v", x, y, c.A)
			}
		}
	}

	for _, p := range [][2]int{{0, 0}, {9, 9}, {1, 5}, {5, 1}} {
		c := sink.at(p[0], p[1])
		if c.A != 0 {
			t.Fatalf("pixel %v outside the square expected alpha 0, got %v", p, c.A)
		}
	}
}

func TestTrianglePerPixelCoverageMatchesScenario(t *testing.T) {
	white := Color{R: 1, G: 1, B: 1, A: 1}
	tri := loopShape([]Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}}, white)

	sink := newTestSink(3, 3)
	Rasterize([]Shape{tri}, sink)

	// Exact areas under the hypotenuse x+y=3: pixels with x+y<=1 lie fully
	// inside, the diagonal x+y=2 pixels are cut in half. They sum to 4.5,
	// the triangle's area.
	want := map[[2]int]float32{
		{0, 0}: 1,
		{1, 0}: 1,
		{0, 1}: 1,
		{1, 1}: 0.5,
		{2, 0}: 0.5,
		{0, 2}: 0.5,
		{2, 1}: 0,
		{1, 2}: 0,
		{2, 2}: 0,
	}
	for p, expected := range want {
		c := sink.at(p[0], p[1])
		if !approx(c.A, expected, 1e-3) {
			t.Fatalf("pixel %v expected alpha %v, got %v", p, expected, c.A)
		}
	}
}

func TestOverlapBlueBottomYellowTopHalfAlpha(t *testing.T) {
	blue := Color{B: 1, A: 1}
	yellow := Color{R: 0.5, G: 0.5, A: 0.5} // premultiplied yellow at alpha 0.5

	blueRect := loopShape([]Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, blue)
	yellowRect := loopShape([]Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}}, yellow)

	sink := newTestSink(4, 4)
	Rasterize([]Shape{blueRect, yellowRect}, sink)

	blended := over(blue, yellow)
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 2; x++ {
			c := sink.at(x, y)
			if !approx(c.R, blended.R, 1e-4) || !approx(c.B, blended.B, 1e-4) || !approx(c.A, blended.A, 1e-4) {
				t.Fatalf("inner pixel (%d,%d) expected blended %v, got %v", x, y, blended, c)
			}
		}
	}

	for _, p := range [][2]int{{0, 0}, {3, 0}, {0, 3}, {3, 3}} {
		c := sink.at(p[0], p[1])
		if !approx(c.B, blue.B, 1e-4) || !approx(c.A, blue.A, 1e-4) {
			t.Fatalf("outer pixel %v expected plain blue, got %v", p, c)
		}
	}
}

func TestConservationOfAreaForFullCanvasOpaqueShape(t *testing.T) {
	c := Color{R: 1, G: 1, B: 1, A: 1}
	full := loopShape([]Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 5}}, c)

	sink := newTestSink(5, 5)
	Rasterize([]Shape{full}, sink)

	var total float32
	for _, p := range sink.pixels {
		total += p.A
	}
	want := float32(5 * 5 * 1)
	if !approx(total, want, 1e-3) {
		t.Fatalf("expected total alpha %v, got %v", want, total)
	}
}

func TestTransparentPaintLeavesPixmapUnchanged(t *testing.T) {
	opaque := loopShape([]Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, Color{R: 1, A: 1})
	transparent := loopShape([]Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, Color{})

	before := newTestSink(4, 4)
	Rasterize([]Shape{opaque}, before)

	after := newTestSink(4, 4)
	Rasterize([]Shape{opaque, transparent}, after)

	for i := range before.pixels {
		if before.pixels[i] != after.pixels[i] {
			t.Fatalf("adding a fully transparent shape changed pixel %d: %v vs %v", i, before.pixels[i], after.pixels[i])
		}
	}
}

func TestNonZeroRuleOppositeWindingProducesHole(t *testing.T) {
	c := Color{R: 1, A: 1}
	// Reversed winding relative to the outer loop: carves a hole under
	// the non-zero rule when composited as edges of the same shape.
	loops := [][]Point{
		{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 6}, {X: 0, Y: 6}},
		{{X: 2, Y: 2}, {X: 2, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 2}},
	}

	shape := Shape{Eval: func(x, y float32) Color { return c }}
	for _, loop := range loops {
		n := len(loop)
		for i := 0; i < n; i++ {
			if seg, ok := NewSegment(loop[i], loop[(i+1)%n]); ok {
				shape.Segments = append(shape.Segments, seg)
			}
		}
	}

	sink := newTestSink(6, 6)
	Rasterize([]Shape{shape}, sink)

	if got := sink.at(3, 3).A; got != 0 {
		t.Fatalf("expected a hole at the center under opposite winding, got alpha %v", got)
	}
	if got := sink.at(1, 1).A; !approx(got, 1, 1e-4) {
		t.Fatalf("expected full coverage outside the hole, got alpha %v", got)
	}
}
