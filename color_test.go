package gg

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var approxRGBA = cmp.Comparer(func(a, b RGBA) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
})

func TestOverOpaqueSrcIgnoresDst(t *testing.T) {
	got := Over(Blue.Premultiply(), Red.Premultiply())
	if diff := cmp.Diff(Red.Premultiply(), got, approxRGBA); diff != "" {
		t.Fatalf("opaque src over anything should equal src (-want +got):\n%s", diff)
	}
}

func TestPremultiplyUnpremultiplyRoundTrips(t *testing.T) {
	c := RGBA2(0.2, 0.4, 0.6, 0.5)
	got := c.Premultiply().Unpremultiply()
	if diff := cmp.Diff(c, got, approxRGBA); diff != "" {
		t.Fatalf("premultiply then unpremultiply should round trip (-want +got):\n%s", diff)
	}
}

func TestHexParsesKnownColors(t *testing.T) {
	if diff := cmp.Diff(Red, Hex("#FF0000"), approxRGBA); diff != "" {
		t.Fatalf("Hex(#FF0000) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(RGBA2(0, 1, 0, 128.0/255.0), Hex("00FF0080"), approxRGBA); diff != "" {
		t.Fatalf("Hex with alpha mismatch (-want +got):\n%s", diff)
	}
}
