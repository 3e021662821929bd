package strokeexpand

import "testing"

func TestExpandOpenSingleSegmentProducesAxisAlignedQuad(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}}
	loops := Expand(points, 2, false)
	if len(loops) != 1 {
		t.Fatalf("expected 1 loop for an open centerline, got %d", len(loops))
	}
	loop := loops[0]
	if len(loop) != 4 {
		t.Fatalf("expected 4 corners, got %d", len(loop))
	}
	for _, c := range loop {
		if c.Y != 1 && c.Y != -1 {
			t.Errorf("expected corners at y=+-1 for a width-2 horizontal stroke, got %+v", c)
		}
	}
}

func TestExpandSkipsZeroLengthSegments(t *testing.T) {
	points := []Point{{0, 0}, {0, 0}, {5, 0}}
	loops := Expand(points, 1, false)
	if len(loops) != 1 || len(loops[0]) != 4 {
		t.Fatalf("expected the duplicate point to collapse to a single 4-point loop, got %v", loops)
	}
}

func signedArea(loop []Point) float64 {
	var sum float64
	n := len(loop)
	for i := 0; i < n; i++ {
		p0 := loop[i]
		p1 := loop[(i+1)%n]
		sum += p0.X*p1.Y - p1.X*p0.Y
	}
	return sum / 2
}

func TestExpandClosedProducesTwoOppositelyWoundLoops(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	loops := Expand(square, 2, true)
	if len(loops) != 2 {
		t.Fatalf("expected an outer and inner loop for a closed centerline, got %d", len(loops))
	}
	outer, inner := signedArea(loops[0]), signedArea(loops[1])
	if outer == 0 || inner == 0 {
		t.Fatalf("expected nonzero signed areas, got outer=%v inner=%v", outer, inner)
	}
	if (outer > 0) == (inner > 0) {
		t.Fatalf("expected opposite winding so the non-zero rule carves a hole: outer=%v inner=%v", outer, inner)
	}
}

func TestExpandTooFewPointsReturnsNil(t *testing.T) {
	if got := Expand([]Point{{0, 0}}, 1, false); got != nil {
		t.Fatalf("expected nil for a single point, got %v", got)
	}
}
