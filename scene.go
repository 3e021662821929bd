package gg

import (
	"github.com/aebi/vecraster/internal/flatten"
	"github.com/aebi/vecraster/internal/rasterizer"
	"github.com/aebi/vecraster/internal/strokeexpand"
)

// defaultFlattenTolerance is the default maximum flattening error, in
// device pixels, for Document.Tolerance. 1/256 of a pixel keeps curve
// banding below what the eye resolves at typical screen densities
// without spending segments on invisible smoothness.
const defaultFlattenTolerance = 1.0 / 256.0

// Segment is one directed edge of a flattened shape outline, running
// from P0 to P1 in device space. A Shape's Segments never contain a
// horizontal segment (P0.Y == P1.Y): Document drops those before they
// reach here, since they carry no winding and the rasterizer's Line
// parametrization has no slope for them.
type Segment struct {
	P0, P1 Point
}

// Shape is one fillable region: a set of directed edges sharing the
// non-zero winding rule, plus the Paint sampled at every point the
// rasterizer determines is inside. Shape is a data structure built by
// Document, not something most callers construct directly.
type Shape struct {
	Segments []Segment
	Paint    Paint
}

// Scene is a flattened, device-space description of everything to
// render: a list of shapes in the order they composite (shape 0 painted
// first, later shapes on top), plus the output dimensions. Build one
// with Document rather than by hand.
type Scene struct {
	Shapes        []Shape
	Width, Height int
}

// Style describes how Document.Draw paints a path: fill, stroke, or
// both, each with its own paint and opacity.
type Style struct {
	Fill          bool
	FillPaint     Paint
	FillOpacity   float64
	Stroke        bool
	StrokePaint   Paint
	StrokeWidth   float64
	StrokeOpacity float64
}

// Document assembles a Scene by flattening and filling or stroking
// paths, one call at a time, in paint order.
type Document struct {
	scene     *Scene
	Tolerance float64
}

// NewDocument creates an empty Document for a canvas of the given size.
func NewDocument(width, height int) *Document {
	return &Document{
		scene:     &Scene{Width: width, Height: height},
		Tolerance: defaultFlattenTolerance,
	}
}

// Scene returns the Scene assembled so far. The returned pointer is
// shared with the Document; further Fill/Stroke/Draw calls keep
// appending to it.
func (d *Document) Scene() *Scene {
	return d.scene
}

type flatSubpath struct {
	points []Point
	closed bool
}

// flattenSubpaths splits path into its subpaths (at each MoveTo) and
// flattens every curve command into a polyline accurate to tolerance, in
// whatever space path's points are already expressed in (Document.Draw
// is what applies a transform before this ever runs, so the flattening
// itself stays resolution-aware with no transform of its own to apply).
func flattenSubpaths(path *Path, tolerance float64) []flatSubpath {
	var subpaths []flatSubpath
	var current []Point
	var start Point

	flush := func(closed bool) {
		if len(current) > 0 {
			subpaths = append(subpaths, flatSubpath{points: current, closed: closed})
		}
		current = nil
	}

	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			current = []Point{e.Point}
			start = e.Point
		case LineTo:
			current = append(current, e.Point)
		case QuadTo:
			if len(current) == 0 {
				current = append(current, e.Point)
				continue
			}
			p0 := current[len(current)-1]
			pts := flatten.Quadratic(nil, toFlattenPoint(p0), toFlattenPoint(e.Control), toFlattenPoint(e.Point), tolerance)
			for _, fp := range pts {
				current = append(current, fromFlattenPoint(fp))
			}
		case CubicTo:
			if len(current) == 0 {
				current = append(current, e.Point)
				continue
			}
			p0 := current[len(current)-1]
			pts := flatten.Cubic(nil, toFlattenPoint(p0), toFlattenPoint(e.Control1), toFlattenPoint(e.Control2), toFlattenPoint(e.Point), tolerance)
			for _, fp := range pts {
				current = append(current, fromFlattenPoint(fp))
			}
		case Close:
			flush(true)
			current = []Point{start}
		}
	}
	flush(false)
	return subpaths
}

func toFlattenPoint(p Point) flatten.Point   { return flatten.Point{X: p.X, Y: p.Y} }
func fromFlattenPoint(p flatten.Point) Point { return Point{X: p.X, Y: p.Y} }

// segmentsFromLoop returns the directed edges of points, treated as an
// implicitly closed loop (a segment from the last point back to the
// first is always synthesized, per I1/4.2, regardless of whether the
// subpath was explicitly closed). Horizontal segments are dropped.
func segmentsFromLoop(points []Point) []Segment {
	n := len(points)
	if n < 2 {
		return nil
	}
	segs := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		p0 := points[i]
		p1 := points[(i+1)%n]
		if p0.Y == p1.Y {
			continue
		}
		segs = append(segs, Segment{P0: p0, P1: p1})
	}
	return segs
}

// Fill flattens path and pushes a new Shape filled with paint under the
// non-zero winding rule. Every subpath contributes its implicit closing
// segment even if the path never called Close.
func (d *Document) Fill(path *Path, paint Paint) {
	subpaths := flattenSubpaths(path, d.tolerance())
	var segs []Segment
	for _, sp := range subpaths {
		segs = append(segs, segmentsFromLoop(sp.points)...)
	}
	if len(segs) == 0 {
		return
	}
	d.scene.Shapes = append(d.scene.Shapes, Shape{Segments: segs, Paint: paint})
}

// Stroke flattens path, expands every subpath into its stroke outline at
// width, and pushes a new Shape covering the stroked ink painted with
// paint.
func (d *Document) Stroke(path *Path, paint Paint, width float64) {
	subpaths := flattenSubpaths(path, d.tolerance())
	var segs []Segment
	for _, sp := range subpaths {
		points := make([]strokeexpand.Point, len(sp.points))
		for i, p := range sp.points {
			points[i] = strokeexpand.Point{X: p.X, Y: p.Y}
		}
		for _, loop := range strokeexpand.Expand(points, width, sp.closed) {
			ggLoop := make([]Point, len(loop))
			for i, p := range loop {
				ggLoop[i] = Point{X: p.X, Y: p.Y}
			}
			segs = append(segs, segmentsFromLoop(ggLoop)...)
		}
	}
	if len(segs) == 0 {
		return
	}
	d.scene.Shapes = append(d.scene.Shapes, Shape{Segments: segs, Paint: paint})
}

// Draw applies transform to every control point of path, then fills
// and/or strokes it as style directs: fill requires style.Fill and a
// positive FillOpacity, stroke requires style.Stroke, a positive
// StrokeWidth, and a positive StrokeOpacity. Opacity is folded into the
// paint with an OpacityPaint wrapper; gradient paints are wrapped in the
// inverse of transform so they keep evaluating in the user space they
// were originally defined in.
func (d *Document) Draw(path *Path, style Style, transform Matrix) {
	transformed := path.Transform(transform)

	if style.Fill && style.FillOpacity > 0 {
		paint := wrapForTransform(style.FillPaint, transform, style.FillOpacity)
		d.Fill(transformed, paint)
	}
	if style.Stroke && style.StrokeWidth > 0 && style.StrokeOpacity > 0 {
		paint := wrapForTransform(style.StrokePaint, transform, style.StrokeOpacity)
		d.Stroke(transformed, paint, style.StrokeWidth)
	}
}

// wrapForTransform wraps paint so it evaluates as if the shape had never
// been moved into device space: a TransformPaint undoes transform first,
// then an OpacityPaint scales the result. Solid paints don't depend on
// position, but wrapping them anyway keeps this function uniform and
// costs nothing a solid color would notice.
func wrapForTransform(paint Paint, transform Matrix, opacity float64) Paint {
	wrapped := Paint(NewTransformPaint(paint, transform))
	if opacity < 1 {
		wrapped = OpacityPaint{Inner: wrapped, Opacity: opacity}
	}
	return wrapped
}

func (d *Document) tolerance() float64 {
	if d.Tolerance > 0 {
		return d.Tolerance
	}
	return defaultFlattenTolerance
}

// pixmapSink adapts *Pixmap to the rasterizer package's Sink interface,
// converting the float32 coverage-weighted color it produces into the
// float64 RGBA AddPixel already knows how to accumulate.
type pixmapSink struct {
	pm *Pixmap
}

func (s pixmapSink) Width() int  { return s.pm.Width() }
func (s pixmapSink) Height() int { return s.pm.Height() }

func (s pixmapSink) AddPixel(x, y int, r, g, b, a float32) {
	s.pm.AddPixel(x, y, RGBA{R: float64(r), G: float64(g), B: float64(b), A: float64(a)})
}

// Render rasterizes scene into a new Pixmap using the sweep-line
// analytic-coverage rasterizer. A non-positive Width or Height is the
// DegenerateScene condition: Render returns an otherwise-usable empty
// Pixmap rather than an error.
func Render(scene *Scene, opts ...RenderOption) *Pixmap {
	options := defaultRenderOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pm := NewPixmap(scene.Width, scene.Height)
	if pm.Width() == 0 || pm.Height() == 0 {
		Logger().Debug("degenerate scene", "width", scene.Width, "height", scene.Height)
		return pm
	}

	rasterShapes := make([]rasterizer.Shape, len(scene.Shapes))
	for i, shape := range scene.Shapes {
		rasterShapes[i] = toRasterizerShape(shape)
	}

	rasterizer.Rasterize(rasterShapes, pixmapSink{pm: pm})
	return pm
}

func toRasterizerShape(shape Shape) rasterizer.Shape {
	segs := make([]rasterizer.Segment, 0, len(shape.Segments))
	for _, s := range shape.Segments {
		seg, ok := rasterizer.NewSegment(
			rasterizer.Point{X: float32(s.P0.X), Y: float32(s.P0.Y)},
			rasterizer.Point{X: float32(s.P1.X), Y: float32(s.P1.Y)},
		)
		if ok {
			segs = append(segs, seg)
		}
	}
	paint := shape.Paint
	return rasterizer.Shape{
		Segments: segs,
		Eval: func(x, y float32) rasterizer.Color {
			c := paint.Eval(Point{X: float64(x), Y: float64(y)})
			return rasterizer.Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}
		},
	}
}
