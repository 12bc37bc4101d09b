package game

import "image/color"

// DrawOpKind identifies a recorded draw call.
type DrawOpKind int

const (
	OpRect DrawOpKind = iota
	OpCircle
	OpPolygon
)

func (k DrawOpKind) String() string {
	switch k {
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpPolygon:
		return "polygon"
	}
	return "unknown"
}

// DrawOp is one call made against a RecordingSurface.
type DrawOp struct {
	Kind  DrawOpKind
	X, Y  float64 // rect origin, circle centre, or first polygon vertex
	W, H  float64 // rect size; W is the radius for circles
	Color color.NRGBA
	Paint Paint
	Style Style
}

// RecordingSurface is a Surface that keeps every call instead of drawing.
// The headless harness and tests render into it.
type RecordingSurface struct {
	Ops []DrawOp
	// Keep, when false, only counts calls and discards them.
	Keep  bool
	Count [3]int
}

// NewRecordingSurface returns a surface that keeps its ops.
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{Keep: true}
}

func (r *RecordingSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.add(DrawOp{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c, Style: Opaque})
}

func (r *RecordingSurface) FillCircle(cx, cy, rad float64, p Paint, st Style) {
	r.add(DrawOp{Kind: OpCircle, X: cx, Y: cy, W: rad, Paint: p, Style: st})
}

func (r *RecordingSurface) FillPolygon(pts []Point, p Paint, st Style) {
	op := DrawOp{Kind: OpPolygon, Paint: p, Style: st}
	if len(pts) > 0 {
		op.X, op.Y = pts[0].X, pts[0].Y
	}
	r.add(op)
}

func (r *RecordingSurface) add(op DrawOp) {
	r.Count[op.Kind]++
	if r.Keep {
		r.Ops = append(r.Ops, op)
	}
}

// Total returns the number of calls of every kind.
func (r *RecordingSurface) Total() int {
	return r.Count[OpRect] + r.Count[OpCircle] + r.Count[OpPolygon]
}

// Reset drops recorded ops and counts.
func (r *RecordingSurface) Reset() {
	r.Ops = r.Ops[:0]
	r.Count = [3]int{}
}
