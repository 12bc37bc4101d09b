package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	circleSegments = 24
	circleRings    = 4
)

var whiteSubImage *ebiten.Image

// solidSource returns a 1x1 white source for untextured triangles.
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// ebitenSurface draws onto an ebiten image. Gradients are approximated by
// per-vertex colours on a triangle mesh.
type ebitenSurface struct {
	dst *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
	op  ebiten.DrawTrianglesOptions
}

func newEbitenSurface(dst *ebiten.Image) *ebitenSurface {
	return &ebitenSurface{dst: dst}
}

func (s *ebitenSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *ebitenSurface) FillCircle(cx, cy, r float64, p Paint, st Style) {
	if st.Alpha <= 0 || r <= 0 {
		return
	}
	if st.Glow > 0 {
		s.halo(cx, cy, r, st)
	}

	s.vs, s.is = s.vs[:0], s.is[:0]
	s.vertex(cx, cy, p.ColorAt(cx, cy), st.Alpha)
	for ring := 1; ring <= circleRings; ring++ {
		rr := r * float64(ring) / circleRings
		for k := 0; k < circleSegments; k++ {
			a := 2 * math.Pi * float64(k) / circleSegments
			x, y := cx+rr*math.Cos(a), cy+rr*math.Sin(a)
			s.vertex(x, y, p.ColorAt(x, y), st.Alpha)
		}
	}
	for k := 0; k < circleSegments; k++ {
		k2 := (k + 1) % circleSegments
		s.is = append(s.is, 0, uint16(1+k), uint16(1+k2))
	}
	for ring := 1; ring < circleRings; ring++ {
		inner := 1 + (ring-1)*circleSegments
		outer := 1 + ring*circleSegments
		for k := 0; k < circleSegments; k++ {
			k2 := (k + 1) % circleSegments
			a, b := uint16(inner+k), uint16(inner+k2)
			c, d := uint16(outer+k), uint16(outer+k2)
			s.is = append(s.is, a, c, b, b, c, d)
		}
	}
	s.flush()
}

func (s *ebitenSurface) FillPolygon(pts []Point, p Paint, st Style) {
	if st.Alpha <= 0 || len(pts) < 3 {
		return
	}
	if st.Glow > 0 {
		var cx, cy float64
		for _, pt := range pts {
			cx += pt.X
			cy += pt.Y
		}
		cx /= float64(len(pts))
		cy /= float64(len(pts))
		s.halo(cx, cy, 0, st)
	}

	s.vs, s.is = s.vs[:0], s.is[:0]
	for _, pt := range pts {
		s.vertex(pt.X, pt.Y, p.ColorAt(pt.X, pt.Y), st.Alpha)
	}
	for i := 1; i < len(pts)-1; i++ {
		s.is = append(s.is, 0, uint16(i), uint16(i+1))
	}
	s.flush()
}

// halo paints the shadow-blur stand-in: a disc fading from the glow colour
// at the shape's edge to nothing Glow units further out.
func (s *ebitenSurface) halo(cx, cy, r float64, st Style) {
	outer := r + st.Glow
	edge := 0.0
	if outer > 0 {
		edge = r / outer
	}
	glow := RadialGradient(cx, cy, 0, outer,
		GradientStop{0, withAlpha(st.GlowColor, 0x50)},
		GradientStop{edge, withAlpha(st.GlowColor, 0x38)},
		GradientStop{1, withAlpha(st.GlowColor, 0)},
	)
	s.FillCircle(cx, cy, outer, glow, Style{Alpha: st.Alpha})
}

func (s *ebitenSurface) vertex(x, y float64, c color.NRGBA, alpha float64) {
	s.vs = append(s.vs, ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 0xff,
		ColorG: float32(c.G) / 0xff,
		ColorB: float32(c.B) / 0xff,
		ColorA: float32(c.A) / 0xff * float32(clamp01(alpha)),
	})
}

func (s *ebitenSurface) flush() {
	s.dst.DrawTriangles(s.vs, s.is, solidSource(), &s.op)
}
