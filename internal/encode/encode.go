// Package encode implements the dithered PNG encoder that turns a
// premultiplied-alpha pixel buffer into an 8-bit, straight-alpha PNG file.
package encode

import (
	"image"
	"image/png"
	"io"
	"math"
)

// rngSeed is the fixed xorshift128+ seed. Using a constant rather than a
// time- or entropy-derived one means encoding the same pixmap twice
// produces byte-identical output, which is load-bearing for golden-file
// tests of the renderer.
const rngSeed uint64 = 0xC0DEC0DEC0DEC0DE

// rng is a xorshift128+ generator, seeded identically on every call to
// EncodePNG.
type rng struct {
	s0, s1 uint64
}

func newRNG() *rng {
	return &rng{s0: rngSeed, s1: rngSeed}
}

func (r *rng) next() uint64 {
	x := r.s0
	y := r.s1
	r.s0 = y
	x ^= x << 23
	x ^= x >> 17
	x ^= y ^ (y >> 26)
	r.s1 = x
	return x + y
}

// nextFloat returns a uniform value in [0, 1).
func (r *rng) nextFloat() float64 {
	return math.Ldexp(float64(r.next()), -64)
}

// ditherChannel maps a straight channel value in [0, 1] to a byte,
// adding a uniform random offset before truncation so 8-bit quantization
// doesn't band on smooth gradients.
func ditherChannel(r *rng, value float64) uint8 {
	v := value*255 + r.nextFloat()
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// EncodePNG writes width x height pixels of premultiplied RGBA floats
// (4 floats per pixel, row-major, the same layout Pixmap's accumulator
// uses) to w as an 8-bit, straight-alpha, sRGB-labelled PNG.
//
// premultiplied is read at full precision, not pre-rounded to 8 bits: the
// dither exists to recover sub-byte precision lost at quantization, which
// only works if it sees values finer than 1/255 to begin with. Channels
// above 1 or below 0 (the accumulator tolerates over-range sums until
// they're unpremultiplied here) are clamped during dithering.
//
// The same rng sequence is replayed from the same seed on every call, in
// row-major, R-G-B-A per-pixel order, so two encodes of the same pixel
// data are byte-identical.
func EncodePNG(w io.Writer, width, height int, premultiplied []float64) error {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	r := newRNG()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			pr := premultiplied[i+0]
			pg := premultiplied[i+1]
			pb := premultiplied[i+2]
			pa := premultiplied[i+3]

			var sr, sg, sb float64
			if pa > 0 {
				sr, sg, sb = pr/pa, pg/pa, pb/pa
			}

			j := img.PixOffset(x, y)
			img.Pix[j+0] = ditherChannel(r, sr)
			img.Pix[j+1] = ditherChannel(r, sg)
			img.Pix[j+2] = ditherChannel(r, sb)
			img.Pix[j+3] = ditherChannel(r, pa)
		}
	}

	return png.Encode(w, img)
}
