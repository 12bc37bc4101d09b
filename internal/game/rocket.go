package game

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/Garsondee/Fireworks/internal/config"
)

// rocketVelocity is the per-frame ascent before the speed multiplier.
const rocketVelocity = -10

var (
	flameGlow = config.MustHex("#ff6600")
	headGlow  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// TrailPoint is one remembered rocket position.
type TrailPoint struct {
	X, Y  float64
	Alpha float64
}

// Rocket climbs from the bottom of the viewport to a target height and
// detonates there.
type Rocket struct {
	X, Y     float64
	TargetY  float64
	Velocity float64
	Trail    []TrailPoint

	exploded     bool
	burstPending bool
	explosions   int
}

// newRocket places a rocket at x on the bottom edge with a target in the
// 10–50% band from the top.
func newRocket(rng *rand.Rand, x, height float64) *Rocket {
	return &Rocket{
		X:        x,
		Y:        height,
		TargetY:  rng.Float64()*height*0.4 + height*0.1,
		Velocity: rocketVelocity,
	}
}

// Exploded reports whether the rocket has detonated.
func (r *Rocket) Exploded() bool { return r.exploded }

// Explosions returns how many times the rocket has detonated (0 or 1).
func (r *Rocket) Explosions() int { return r.explosions }

// BurstPending reports whether the delayed secondary burst is still queued.
func (r *Rocket) BurstPending() bool { return r.burstPending }

// update climbs one frame and detonates on reaching the target.
func (r *Rocket) update(sh *Show) {
	if r.exploded {
		return
	}
	r.Y += r.Velocity * sh.settings.Speed
	r.Trail = append(r.Trail, TrailPoint{X: r.X, Y: r.Y, Alpha: 1})
	if n := len(r.Trail) - sh.tuning.TrailLength; n > 0 {
		r.Trail = append(r.Trail[:0], r.Trail[n:]...)
	}
	if r.Y <= r.TargetY {
		r.explode(sh)
		r.exploded = true
	}
}

// explode emits the main burst, queues the secondary burst and, for the
// romantic theme, sometimes a heart.
func (r *Rocket) explode(sh *Show) {
	if r.exploded || r.explosions > 0 {
		return
	}
	r.explosions++

	theme := sh.settings.Color
	c := theme.Pick(sh.rng)
	count := sh.tuning.BurstParticles * sh.settings.Size
	sh.spawnBurst(r.X, r.Y, c, count)
	sh.stats.Detonations++
	sh.record("rocket", "detonate", fmt.Sprintf("%s %s x=%.0f y=%.0f", theme, hexOf(c), r.X, r.Y), float64(count))

	x, y := r.X, r.Y
	r.burstPending = true
	sh.queue.Schedule(taskSecondaryBurst, sh.tuning.SecondaryBurstDelay, func() {
		r.burstPending = false
		second := theme.Pick(sh.rng)
		n := count / 2
		sh.spawnBurst(x, y, second, n)
		sh.stats.SecondaryBursts++
		sh.record("rocket", "secondary", hexOf(second), float64(n))
	})

	if theme == config.ThemeRomantic && sh.rng.Float64() < sh.tuning.HeartChance {
		r.heart(sh)
	}
}

// heart emits a ring of sparks tracing the parametric heart curve.
func (r *Rocket) heart(sh *Show) {
	c := sh.settings.Color.First()
	n := sh.tuning.HeartPoints
	for i := 0; i < n; i++ {
		hx, hy := heartPoint(float64(i) / float64(n) * math.Pi * 2)
		sh.addParticle(newParticle(sh.rng, r.X+hx, r.Y+hy, c, sh.settings.Size))
	}
	sh.stats.HeartBursts++
	sh.record("rocket", "heart", hexOf(c), float64(n))
}

// heartPoint returns the heart curve offset at parameter t, y pointing down.
func heartPoint(t float64) (float64, float64) {
	s := math.Sin(t)
	x := 16 * s * s * s
	y := -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
	return x, y
}

// reapable is the show's removal policy for rockets.
func (r *Rocket) reapable(height, margin float64) bool {
	if !r.exploded {
		return false
	}
	return r.Y > height+margin || !r.burstPending
}

func (r *Rocket) draw(dst Surface) {
	if r.exploded {
		return
	}
	r.drawTail(dst)

	n := float64(len(r.Trail))
	for i, pt := range r.Trail {
		a := pt.Alpha * (float64(i) / n)
		if a <= 0 {
			continue
		}
		spark := RadialGradient(pt.X, pt.Y, 0, 3,
			GradientStop{0, rgba(255, 255, 255, 1)},
			GradientStop{0.5, rgba(255, 200, 100, 0.8)},
			GradientStop{1, rgba(255, 100, 50, 0)},
		)
		dst.FillCircle(pt.X, pt.Y, 2, spark, Style{Alpha: a})
	}

	head := RadialGradient(r.X, r.Y, 0, 5,
		GradientStop{0, rgba(255, 255, 255, 1)},
		GradientStop{0.5, rgba(255, 200, 150, 0.8)},
		GradientStop{1, rgba(255, 100, 100, 0)},
	)
	dst.FillCircle(r.X, r.Y, 3, head, Style{Alpha: 1, Glow: 15, GlowColor: headGlow})
}

// drawTail renders the flame cone below the head.
func (r *Rocket) drawTail(dst Surface) {
	flame := LinearGradient(r.X, r.Y, r.X, r.Y+30,
		GradientStop{0, rgba(255, 200, 100, 0.8)},
		GradientStop{0.5, rgba(255, 100, 50, 0.6)},
		GradientStop{1, rgba(255, 50, 0, 0)},
	)
	dst.FillPolygon([]Point{
		{r.X, r.Y},
		{r.X - 3, r.Y + 15},
		{r.X + 3, r.Y + 15},
	}, flame, Style{Alpha: 1, Glow: 20, GlowColor: flameGlow})
}

func hexOf(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
