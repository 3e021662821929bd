package gg

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/aebi/vecraster/internal/encode"
)

// Pixmap is a rectangular buffer of premultiplied-alpha colors, stored as
// float64 so AddPixel can accumulate coverage slices without quantizing or
// clamping between additions (spec §4.4, invariant I3: a channel may
// transiently run over [0, 1] while slices are still being summed; it's
// only unpremultiplied, and clamped, at encode time). A non-positive width
// or height is the DegenerateScene condition rather than an error:
// NewPixmap clamps both to zero and returns an otherwise-usable empty
// pixmap.
type Pixmap struct {
	width  int
	height int
	data   []float64 // RGBA, premultiplied, 4 floats per pixel, unclamped
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]float64, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns a freshly quantized snapshot of the pixel data as
// premultiplied RGBA bytes (4 bytes per pixel, row-major). It's a lossy
// view for callers that want raw 8-bit bytes; the accumulator behind
// AddPixel never goes through this quantization itself.
func (p *Pixmap) Data() []uint8 {
	out := make([]uint8, len(p.data))
	for i, v := range p.data {
		out[i] = uint8(clamp255(v * 255))
	}
	return out
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}

// AddPixel accumulates c (premultiplied, already scaled by its coverage
// fraction) onto the pixel's current color. The rasterizer visits a pixel
// once per horizontal strip that crosses it, each time covering a disjoint
// slice of the pixel's area; summing those slices is what builds up the
// final antialiased color, so this is a plain componentwise sum with no
// clamping (shapes occluding each other within a single slice are already
// composited by the rasterizer before it calls this, and the sum itself is
// free to run over 1.0 between additions).
func (p *Pixmap) AddPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] += c.R
	p.data[i+1] += c.G
	p.data[i+2] += c.B
	p.data[i+3] += c.A
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// ToImage quantizes the pixmap to an 8-bit image.RGBA. This, along with
// At, is the image.Image adapter boundary: quantization happens here, not
// inside the float accumulator.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, v := range p.data {
		img.Pix[i] = uint8(clamp255(v * 255))
	}
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := p.ToImage()
	return png.Encode(f, img)
}

// EncodeDithered writes the pixmap to w as an 8-bit sRGB-labelled
// straight-alpha PNG, applying a per-channel random dither drawn from a
// fixed-seed generator, so every call with the same input reproduces the
// same bytes. The
// encoder reads the float accumulator directly rather than a pre-rounded
// 8-bit snapshot, so the dither sees the precision it exists to smooth.
// See internal/encode for the exact algorithm.
func (p *Pixmap) EncodeDithered(w io.Writer) error {
	return encode.EncodePNG(w, p.width, p.height, p.data)
}

// SaveDitheredPNG is EncodeDithered to a file path.
func (p *Pixmap) SaveDitheredPNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return p.EncodeDithered(f)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Unpremultiply().Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
