package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Garsondee/Fireworks/internal/config"
)

func TestNewParticle_Ranges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := config.MustHex("#ffd700")
	for i := 0; i < 1000; i++ {
		p := newParticle(rng, 10, 20, c, 3)
		if p.Alpha != 1 {
			t.Fatalf("particle should start opaque, got %.2f", p.Alpha)
		}
		if p.Decay < 0.008 || p.Decay >= 0.023 {
			t.Fatalf("decay out of range: %.4f", p.Decay)
		}
		if p.Size < 1 || p.Size >= 4 {
			t.Fatalf("size out of range: %.2f", p.Size)
		}
		if p.Brightness < 0.5 || p.Brightness >= 1 {
			t.Fatalf("brightness out of range: %.2f", p.Brightness)
		}
		speed := math.Hypot(p.VX, p.VY)
		if speed < 2-1e-9 || speed > 2+3+3*1.5+1e-9 {
			t.Fatalf("speed out of range for size 3: %.3f", speed)
		}
		if p.Color != c {
			t.Fatalf("colour changed: %v", p.Color)
		}
	}
}

func TestParticle_AlphaStrictlyDecreases(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := newParticle(rng, 0, 0, config.MustHex("#ffffff"), 1)
	prev := p.Alpha
	for i := 0; i < 50; i++ {
		p.update(1)
		if p.Alpha >= prev {
			t.Fatalf("frame %d: alpha %.4f did not drop below %.4f", i, p.Alpha, prev)
		}
		prev = p.Alpha
	}
}

func TestParticle_GravityAndFriction(t *testing.T) {
	p := &Particle{VX: 10, VY: 0, Alpha: 1, Decay: 0.01, Gravity: particleGravity, Friction: particleFriction}
	p.update(1)
	if math.Abs(p.VX-9.8) > 1e-9 {
		t.Fatalf("friction: expected vx 9.8, got %.4f", p.VX)
	}
	// vy = (0 + 0.08) * 0.98
	if math.Abs(p.VY-0.0784) > 1e-9 {
		t.Fatalf("gravity: expected vy 0.0784, got %.6f", p.VY)
	}
	if math.Abs(p.X-9.8) > 1e-9 || math.Abs(p.Y-0.0784) > 1e-9 {
		t.Fatalf("position not integrated: (%.4f, %.4f)", p.X, p.Y)
	}
}

func TestParticle_SpeedScalesDisplacement(t *testing.T) {
	a := &Particle{VX: 4, Alpha: 1, Friction: 1}
	b := &Particle{VX: 4, Alpha: 1, Friction: 1}
	a.update(1)
	b.update(2)
	if math.Abs(b.X-2*a.X) > 1e-9 {
		t.Fatalf("speed 2 should double displacement: %.3f vs %.3f", b.X, a.X)
	}
}

func TestParticle_Expired(t *testing.T) {
	if !(&Particle{Alpha: 0, Y: 10}).expired(100) {
		t.Fatal("zero alpha should expire")
	}
	if !(&Particle{Alpha: 0.5, Y: 101}).expired(100) {
		t.Fatal("below the viewport should expire")
	}
	if (&Particle{Alpha: 0.5, Y: 100}).expired(100) {
		t.Fatal("on the bottom edge should not expire")
	}
}

func TestParticle_DrawUsesCurrentAlpha(t *testing.T) {
	rs := NewRecordingSurface()
	p := newParticle(rand.New(rand.NewSource(1)), 50, 50, config.MustHex("#ff0000"), 1)
	p.Alpha = 0.4
	p.draw(rs)
	if rs.Count[OpCircle] != 2 {
		t.Fatalf("expected glow and core circles, got %d", rs.Count[OpCircle])
	}
	for _, op := range rs.Ops {
		if op.Style.Alpha != 0.4 {
			t.Fatalf("draw alpha %.2f, want 0.4", op.Style.Alpha)
		}
	}
	if rs.Ops[1].W >= rs.Ops[0].W {
		t.Fatal("core should be smaller than the glow")
	}
}
