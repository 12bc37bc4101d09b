package game

import (
	"image/color"
	"testing"
)

func TestGradient_LinearEndpointsAndMidpoint(t *testing.T) {
	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	p := LinearGradient(0, 0, 100, 0, GradientStop{0, black}, GradientStop{1, white})

	if got := p.ColorAt(-50, 0); got != black {
		t.Fatalf("before start should clamp to first stop, got %v", got)
	}
	if got := p.ColorAt(500, 0); got != white {
		t.Fatalf("past end should clamp to last stop, got %v", got)
	}
	mid := p.ColorAt(50, 30)
	if mid.R != 128 || mid.G != 128 || mid.B != 128 {
		t.Fatalf("midpoint should be grey, got %v", mid)
	}
}

func TestGradient_RadialUsesDistance(t *testing.T) {
	p := RadialGradient(10, 10, 0, 10,
		GradientStop{0, rgba(255, 0, 0, 1)},
		GradientStop{0.5, rgba(0, 255, 0, 1)},
		GradientStop{1, rgba(0, 0, 255, 0)},
	)
	if got := p.ColorAt(10, 10); got.R != 255 {
		t.Fatalf("centre should be red, got %v", got)
	}
	if got := p.ColorAt(15, 10); got.G != 255 {
		t.Fatalf("half radius should be green, got %v", got)
	}
	if got := p.ColorAt(10, 40); got.A != 0 {
		t.Fatalf("outside should be transparent, got %v", got)
	}
}

func TestPaint_SolidIgnoresPosition(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	p := Solid(c)
	if p.ColorAt(0, 0) != c || p.ColorAt(1e6, -1e6) != c {
		t.Fatal("solid paint should be uniform")
	}
}

func TestAlphaByte_Clamps(t *testing.T) {
	if alphaByte(-1) != 0 || alphaByte(2) != 255 || alphaByte(0.5) != 128 {
		t.Fatalf("unexpected alpha bytes: %d %d %d", alphaByte(-1), alphaByte(2), alphaByte(0.5))
	}
}

func TestRecordingSurface_CountsWithoutKeeping(t *testing.T) {
	rs := &RecordingSurface{}
	rs.FillRect(0, 0, 10, 10, color.NRGBA{A: 38})
	rs.FillCircle(1, 1, 2, Solid(color.NRGBA{}), Opaque)
	rs.FillPolygon([]Point{{1, 2}, {3, 4}, {5, 6}}, Solid(color.NRGBA{}), Opaque)
	if len(rs.Ops) != 0 {
		t.Fatalf("Keep=false should not store ops, got %d", len(rs.Ops))
	}
	if rs.Total() != 3 {
		t.Fatalf("expected 3 counted ops, got %d", rs.Total())
	}
	rs.Reset()
	if rs.Total() != 0 {
		t.Fatal("reset should clear counts")
	}
}
