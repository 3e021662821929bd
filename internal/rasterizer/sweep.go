package rasterizer

import (
	"container/heap"
	"sort"

	"github.com/chewxy/math32"
)

// Shape is one fillable region: a closed set of directed device-space
// segments, all sharing the non-zero winding rule, plus an Eval callback
// that samples whatever paint the caller attached to it. Shapes are
// composited over each other in slice order: index 0 is painted first,
// and later shapes sit on top wherever they overlap.
type Shape struct {
	Segments []Segment
	Eval     func(x, y float32) Color
}

// Sink receives the rasterizer's output. A *gg.Pixmap satisfies it via a
// small adapter in the root package; Sink exists so this package never
// needs to import the root package's Pixmap type.
type Sink interface {
	Width() int
	Height() int
	AddPixel(x, y int, r, g, b, a float32)
}

type eventType int

const (
	lineStart eventType = iota
	lineEnd
)

type event struct {
	typ   eventType
	y     float32
	index int
}

type eventHeap []event

func (h eventHeap) Len() int            { return len(h) }
func (h eventHeap) Less(i, j int) bool  { return h[i].y < h[j].y }
func (h eventHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(event)) }
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

type rasterizeLine struct {
	Line
	direction int
	shapeIdx  int
}

// Rasterize sweeps shapes top to bottom and fills dst with their
// non-zero-winding, antialiased union. shapes must already be in device
// space (the caller is expected to have flattened curves and applied any
// transform beforehand); Rasterize itself does no clipping beyond dst's
// bounds.
func Rasterize(shapes []Shape, dst Sink) {
	var lines []rasterizeLine
	var events eventHeap

	for si := range shapes {
		for _, s := range shapes[si].Segments {
			index := len(lines)
			if s.Y0 < s.Y1 {
				lines = append(lines, rasterizeLine{Line: s.Line, direction: 1, shapeIdx: si})
				events = append(events, event{typ: lineStart, y: s.Y0, index: index})
				events = append(events, event{typ: lineEnd, y: s.Y1, index: index})
			} else {
				lines = append(lines, rasterizeLine{Line: s.Line, direction: -1, shapeIdx: si})
				events = append(events, event{typ: lineStart, y: s.Y1, index: index})
				events = append(events, event{typ: lineEnd, y: s.Y0, index: index})
			}
		}
	}
	if len(events) == 0 {
		return
	}
	heap.Init(&events)

	y := events[0].y
	var currentLines []int // indices into lines

	for events.Len() > 0 {
		ev := heap.Pop(&events).(event)
		for y < ev.y {
			sort.Slice(currentLines, func(i, j int) bool {
				x0 := lines[currentLines[i]].GetX(y)
				x1 := lines[currentLines[j]].GetX(y)
				if x0 == x1 {
					return lines[currentLines[i]].M < lines[currentLines[j]].M
				}
				return x0 < x1
			})
			nextY := ev.y
			for i := 1; i < len(currentLines); i++ {
				l0 := lines[currentLines[i-1]]
				l1 := lines[currentLines[i]]
				if l0.M != l1.M {
					intersection := intersectLines(l0.Line, l1.Line)
					if y < intersection && intersection < nextY {
						nextY = intersection
					}
				}
			}
			rasterizeStrip(shapes, lines, currentLines, y, nextY, dst)
			y = nextY
		}
		switch ev.typ {
		case lineStart:
			currentLines = append(currentLines, ev.index)
		case lineEnd:
			for i, idx := range currentLines {
				if idx == ev.index {
					currentLines = append(currentLines[:i], currentLines[i+1:]...)
					break
				}
			}
		}
	}
}

func rasterizeStrip(shapes []Shape, lines []rasterizeLine, stripLines []int, y0, y1 float32, dst Sink) {
	height := float32(dst.Height())
	sy0 := fmax(y0, 0)
	sy1 := fmin(y1, height)
	for y := int(sy0); float32(y) < sy1; y++ {
		rasterizeRow(shapes, lines, stripLines, y, y0, y1, dst)
	}
}

func rasterizeRow(shapes []Shape, lines []rasterizeLine, stripLines []int, y int, stripY0, stripY1 float32, dst Sink) {
	rowY0 := fmax(float32(y), stripY0)
	rowY1 := fmin(float32(y+1), stripY1)

	winding := map[int]int{}
	for i := 1; i < len(stripLines); i++ {
		l0 := lines[stripLines[i-1]]
		winding[l0.shapeIdx] += l0.direction
		if winding[l0.shapeIdx] == 0 {
			delete(winding, l0.shapeIdx)
		}
		if len(winding) == 0 {
			continue
		}
		l1 := lines[stripLines[i]]
		trap := newTrapezoid(rowY0, rowY1, l0.Line, l1.Line)
		if trap.x0 > trap.x1 {
			trap.x0, trap.x1 = trap.x1, trap.x0
		}
		if trap.x2 > trap.x3 {
			trap.x2, trap.x3 = trap.x3, trap.x2
		}
		xStart := math32.Max(trap.x0, 0)
		// Clamps to the exact pixel grid edge rather than the original's
		// width-0.5 (rasterizer.cpp:131); the loop below only ever visits
		// integer x < xEnd, so the extra half-pixel margin there was
		// compensating for a different loop bound, not a coverage rule.
		xEnd := math32.Min(trap.x3, float32(dst.Width()))
		for x := int(xStart); float32(x) < xEnd; x++ {
			factor := pixelCoverage(trap, float32(x))
			c := shapeColorAt(shapes, winding, float32(x)+.5, float32(y)+.5)
			dst.AddPixel(x, y, c.R*factor, c.G*factor, c.B*factor, c.A*factor)
		}
	}
}

// shapeColorAt composites the paint of every shape currently active at
// (x, y), in ascending shape index order so later shapes paint over
// earlier ones, exactly as if they'd been drawn in that order with a
// single "over" accumulator.
func shapeColorAt(shapes []Shape, winding map[int]int, x, y float32) Color {
	var c Color
	for idx := range shapes {
		if _, active := winding[idx]; active {
			c = over(c, shapes[idx].Eval(x, y))
		}
	}
	return c
}
