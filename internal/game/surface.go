package game

import (
	"image/color"
	"math"
)

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// Surface is the drawing target of a show. Colours are straight (non
// premultiplied) alpha.
type Surface interface {
	// FillRect fills an axis-aligned rectangle with a solid colour.
	FillRect(x, y, w, h float64, c color.NRGBA)
	// FillCircle fills the disc at (cx, cy) of radius r.
	FillCircle(cx, cy, r float64, p Paint, st Style)
	// FillPolygon fills a convex polygon.
	FillPolygon(pts []Point, p Paint, st Style)
}

// Style carries per-draw opacity and an optional glow halo.
type Style struct {
	Alpha     float64
	Glow      float64 // halo radius beyond the shape; 0 disables it
	GlowColor color.NRGBA
}

// Opaque is a Style with full opacity and no glow.
var Opaque = Style{Alpha: 1}

// GradientKind selects how a gradient parameter is derived from a point.
type GradientKind int

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// GradientStop is a colour at an offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient is a linear gradient from (X0,Y0) to (X1,Y1), or a radial
// gradient centred on (X0,Y0) running from radius R0 to R1.
type Gradient struct {
	Kind   GradientKind
	X0, Y0 float64
	X1, Y1 float64
	R0, R1 float64
	Stops  []GradientStop
}

// Paint is either a solid colour or a gradient.
type Paint struct {
	Color    color.NRGBA
	Gradient *Gradient
}

// Solid returns a flat paint.
func Solid(c color.NRGBA) Paint { return Paint{Color: c} }

// LinearGradient builds a linear gradient paint.
func LinearGradient(x0, y0, x1, y1 float64, stops ...GradientStop) Paint {
	return Paint{Gradient: &Gradient{Kind: GradientLinear, X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}}
}

// RadialGradient builds a radial gradient paint centred on (cx, cy).
func RadialGradient(cx, cy, r0, r1 float64, stops ...GradientStop) Paint {
	return Paint{Gradient: &Gradient{Kind: GradientRadial, X0: cx, Y0: cy, X1: cx, Y1: cy, R0: r0, R1: r1, Stops: stops}}
}

// ColorAt evaluates the paint at (x, y).
func (p Paint) ColorAt(x, y float64) color.NRGBA {
	if p.Gradient == nil {
		return p.Color
	}
	return p.Gradient.ColorAt(x, y)
}

// ColorAt evaluates the gradient at (x, y). Outside the gradient's extent the
// nearest end stop is used.
func (g *Gradient) ColorAt(x, y float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	var t float64
	switch g.Kind {
	case GradientRadial:
		span := g.R1 - g.R0
		if span <= 0 {
			t = 1
		} else {
			t = (math.Hypot(x-g.X0, y-g.Y0) - g.R0) / span
		}
	default:
		dx, dy := g.X1-g.X0, g.Y1-g.Y0
		lenSq := dx*dx + dy*dy
		if lenSq < 1e-9 {
			t = 0
		} else {
			t = ((x-g.X0)*dx + (y-g.Y0)*dy) / lenSq
		}
	}
	return g.at(t)
}

func (g *Gradient) at(t float64) color.NRGBA {
	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}
	for i := 0; i < len(g.Stops)-1; i++ {
		a, b := g.Stops[i], g.Stops[i+1]
		if t >= a.Offset && t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return lerpNRGBA(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return last.Color
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	l := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x)*(1-t) + float64(y)*t))
	}
	return color.NRGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

// withAlpha returns c with its alpha replaced.
func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// rgba is shorthand for the canvas-style rgba(r, g, b, a) literal.
func rgba(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: alphaByte(a)}
}

func alphaByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
