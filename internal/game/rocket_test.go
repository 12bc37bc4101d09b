package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Garsondee/Fireworks/internal/config"
)

func TestNewRocket_TargetBand(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 2000; i++ {
		r := newRocket(rng, 42, 1000)
		if r.TargetY < 100 || r.TargetY >= 500 {
			t.Fatalf("target %.1f outside [100, 500)", r.TargetY)
		}
		if r.Y != 1000 || r.X != 42 {
			t.Fatalf("rocket should start at (42, 1000), got (%.0f, %.0f)", r.X, r.Y)
		}
		if r.Velocity != rocketVelocity {
			t.Fatalf("velocity %.1f, want %d", r.Velocity, rocketVelocity)
		}
	}
}

func TestRocket_TrailIsBoundedFIFO(t *testing.T) {
	sh, _ := newTestShow(t, nil)
	r := sh.Launch(640)
	r.TargetY = 0
	for i := 0; i < 40; i++ {
		r.update(sh)
		if len(r.Trail) > sh.Tuning().TrailLength {
			t.Fatalf("trail grew to %d", len(r.Trail))
		}
		last := r.Trail[len(r.Trail)-1]
		if last.X != r.X || last.Y != r.Y {
			t.Fatal("newest trail point should be the current position")
		}
		if len(r.Trail) == sh.Tuning().TrailLength {
			want := r.Y - float64(rocketVelocity)*float64(sh.Tuning().TrailLength-1)
			if math.Abs(r.Trail[0].Y-want) > 1e-9 {
				t.Fatalf("oldest point y=%.1f, want %.1f", r.Trail[0].Y, want)
			}
		}
	}
}

func TestRocket_SpeedScalesAscent(t *testing.T) {
	sh, _ := newTestShow(t, func(s *config.Settings, _ *config.Tuning) { s.Speed = 2 })
	r := sh.Launch(10)
	r.TargetY = 0
	r.update(sh)
	if r.Y != 700 {
		t.Fatalf("speed 2 should climb 20px, y=%.1f", r.Y)
	}
}

func TestRocket_ExplodesOnceAndStaysExploded(t *testing.T) {
	sh, _ := newTestShow(t, nil)
	r := sh.Launch(640)
	r.TargetY = 715
	r.update(sh)
	if !r.Exploded() {
		t.Fatal("rocket should detonate once it reaches its target")
	}
	r.explode(sh)
	for i := 0; i < 10; i++ {
		r.update(sh)
		if !r.Exploded() {
			t.Fatal("exploded rocket reverted")
		}
	}
	if r.Explosions() != 1 || sh.Stats().Detonations != 1 {
		t.Fatalf("expected one detonation, got rocket=%d show=%d", r.Explosions(), sh.Stats().Detonations)
	}
	if r.Y != 710 {
		t.Fatalf("exploded rocket moved to y=%.1f", r.Y)
	}
}

func TestRocket_BurstSizesAndPalette(t *testing.T) {
	sh, _ := newTestShow(t, func(s *config.Settings, _ *config.Tuning) { s.Size = 2 })
	r := sh.Launch(300)
	r.explode(sh)
	if n := len(sh.Particles()); n != 160 {
		t.Fatalf("main burst: expected 160 particles, got %d", n)
	}
	if !r.BurstPending() {
		t.Fatal("secondary burst should be pending")
	}
	sh.Advance(sh.Tuning().SecondaryBurstDelay - 1)
	if len(sh.Particles()) != 160 {
		t.Fatal("secondary burst fired early")
	}
	sh.Advance(1)
	if n := len(sh.Particles()); n != 240 {
		t.Fatalf("after secondary: expected 240 particles, got %d", n)
	}
	if r.BurstPending() {
		t.Fatal("secondary burst should no longer be pending")
	}
	for _, p := range sh.Particles() {
		if !config.ThemeGolden.Contains(p.Color) {
			t.Fatalf("particle colour %s not in golden palette", hexOf(p.Color))
		}
		if p.X != r.X || p.Y != r.Y {
			t.Fatalf("particle spawned at (%.0f, %.0f), want detonation point", p.X, p.Y)
		}
	}
}

func TestRocket_SecondaryKeepsDetonationTheme(t *testing.T) {
	sh, _ := newTestShow(t, nil)
	r := sh.Launch(300)
	r.explode(sh)
	s := sh.Settings()
	s.Color = config.ThemeRoyal
	if err := sh.ApplySettings(s); err != nil {
		t.Fatal(err)
	}
	sh.Advance(sh.Tuning().SecondaryBurstDelay)
	for _, p := range sh.Particles()[240:] {
		if !config.ThemeGolden.Contains(p.Color) {
			t.Fatalf("secondary particle %s should use the detonation theme", hexOf(p.Color))
		}
	}
}

func TestRocket_HeartOnlyForRomantic(t *testing.T) {
	always := func(theme config.Theme) func(*config.Settings, *config.Tuning) {
		return func(s *config.Settings, tn *config.Tuning) {
			s.Color = theme
			tn.HeartChance = 1
		}
	}

	sh, _ := newTestShow(t, always(config.ThemeGolden))
	sh.Launch(300).explode(sh)
	if sh.Stats().HeartBursts != 0 || len(sh.Particles()) != 240 {
		t.Fatalf("golden theme produced a heart: hearts=%d particles=%d", sh.Stats().HeartBursts, len(sh.Particles()))
	}

	sh, _ = newTestShow(t, always(config.ThemeRomantic))
	sh.Launch(300).explode(sh)
	if sh.Stats().HeartBursts != 1 {
		t.Fatal("romantic theme with chance 1 should always add a heart")
	}
	heart := sh.Particles()[240:]
	if len(heart) != sh.Tuning().HeartPoints {
		t.Fatalf("expected %d heart particles, got %d", sh.Tuning().HeartPoints, len(heart))
	}
	first := config.ThemeRomantic.First()
	for _, p := range heart {
		if p.Color != first {
			t.Fatalf("heart particle %s, want %s", hexOf(p.Color), hexOf(first))
		}
	}
}

func TestRocket_HeartRateNearConfiguredChance(t *testing.T) {
	sh, _ := newTestShow(t, func(s *config.Settings, _ *config.Tuning) {
		s.Color = config.ThemeRomantic
		s.Size = 1
	})
	const trials = 10000
	for i := 0; i < trials; i++ {
		sh.Launch(300).explode(sh)
		sh.Advance(sh.Tuning().SecondaryBurstDelay)
		sh.particles = sh.particles[:0]
	}
	rate := float64(sh.Stats().HeartBursts) / trials
	if rate < 0.27 || rate > 0.33 {
		t.Fatalf("heart rate %.3f not near 0.3", rate)
	}
}

func TestHeartPoint(t *testing.T) {
	x, y := heartPoint(0)
	if math.Abs(x) > 1e-9 || math.Abs(y+5) > 1e-9 {
		t.Fatalf("heartPoint(0) = (%.3f, %.3f), want (0, -5)", x, y)
	}
	x, y = heartPoint(math.Pi / 2)
	if math.Abs(x-16) > 1e-9 || math.Abs(y+4) > 1e-9 {
		t.Fatalf("heartPoint(pi/2) = (%.3f, %.3f), want (16, -4)", x, y)
	}
}

func TestRocket_Reapable(t *testing.T) {
	r := &Rocket{Y: 300}
	if r.reapable(720, 100) {
		t.Fatal("ascending rocket must not be reaped")
	}
	r.exploded, r.burstPending = true, true
	if r.reapable(720, 100) {
		t.Fatal("rocket with a pending secondary burst must not be reaped")
	}
	r.burstPending = false
	if !r.reapable(720, 100) {
		t.Fatal("spent rocket should be reaped")
	}
	r = &Rocket{Y: 821, exploded: true, burstPending: true}
	if !r.reapable(720, 100) {
		t.Fatal("rocket past the removal margin should be reaped")
	}
}

func TestRocket_DrawSkipsTransparentTrail(t *testing.T) {
	sh, _ := newTestShow(t, nil)
	r := sh.Launch(640)
	r.TargetY = 0
	for i := 0; i < 5; i++ {
		r.update(sh)
	}
	rs := NewRecordingSurface()
	r.draw(rs)
	if rs.Count[OpPolygon] != 1 {
		t.Fatalf("expected one tail polygon, got %d", rs.Count[OpPolygon])
	}
	// oldest trail point has alpha 0 and is skipped; the head is a circle
	if rs.Count[OpCircle] != len(r.Trail) {
		t.Fatalf("expected %d circles, got %d", len(r.Trail), rs.Count[OpCircle])
	}
	for _, op := range rs.Ops {
		if op.Style.Alpha <= 0 {
			t.Fatalf("drew %s with alpha %.2f", op.Kind, op.Style.Alpha)
		}
	}

	r.TargetY = 1e6
	r.update(sh)
	rs.Reset()
	r.draw(rs)
	if rs.Total() != 0 {
		t.Fatal("exploded rocket should not be drawn")
	}
}
