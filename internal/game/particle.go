package game

import (
	"image/color"
	"math"
	"math/rand"
)

const (
	particleGravity  = 0.08
	particleFriction = 0.98
)

var (
	particleCore = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	transparent  = color.NRGBA{}
)

// Particle is one glowing spark of a burst.
type Particle struct {
	X, Y       float64
	VX, VY     float64
	Color      color.NRGBA
	Alpha      float64
	Decay      float64
	Size       float64
	Brightness float64
	Gravity    float64
	Friction   float64
}

// newParticle creates a spark at (x, y) flying in a random direction. The
// spread grows with the size setting.
func newParticle(rng *rand.Rand, x, y float64, c color.NRGBA, size int) *Particle {
	angle := rng.Float64() * math.Pi * 2
	speed := rng.Float64()*(3+float64(size)*1.5) + 2
	return &Particle{
		X:          x,
		Y:          y,
		VX:         math.Cos(angle) * speed,
		VY:         math.Sin(angle) * speed,
		Color:      c,
		Alpha:      1,
		Decay:      rng.Float64()*0.015 + 0.008,
		Size:       rng.Float64()*3 + 1,
		Brightness: rng.Float64()*0.5 + 0.5,
		Gravity:    particleGravity,
		Friction:   particleFriction,
	}
}

// update advances one frame.
func (p *Particle) update(speed float64) {
	p.VY += p.Gravity
	p.VX *= p.Friction
	p.VY *= p.Friction
	p.X += p.VX * speed
	p.Y += p.VY * speed
	p.Alpha -= p.Decay
}

// expired reports whether the spark has faded or fallen out of view.
func (p *Particle) expired(height float64) bool {
	return p.Alpha <= 0 || p.Y > height
}

func (p *Particle) draw(dst Surface) {
	glow := RadialGradient(p.X, p.Y, 0, p.Size*3,
		GradientStop{0, p.Color},
		GradientStop{0.5, withAlpha(p.Color, 0x80)},
		GradientStop{1, transparent},
	)
	dst.FillCircle(p.X, p.Y, p.Size, glow, Style{
		Alpha:     p.Alpha,
		Glow:      15 * p.Brightness,
		GlowColor: p.Color,
	})
	dst.FillCircle(p.X, p.Y, p.Size*0.4, Solid(withAlpha(particleCore, alphaByte(p.Alpha*0.8))), Style{
		Alpha:     p.Alpha,
		Glow:      5,
		GlowColor: particleCore,
	})
}
