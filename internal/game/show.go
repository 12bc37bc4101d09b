package game

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/Garsondee/Fireworks/internal/config"
)

// ErrNoSurface is returned by RenderFrame when there is nothing to draw on.
var ErrNoSurface = errors.New("render surface unavailable")

// EventSink receives structured show events.
type EventSink interface {
	Record(frame int, category, key, value string, num float64)
}

// Stats are running counters for a show.
type Stats struct {
	Frames           int
	Launched         int
	Detonations      int
	SecondaryBursts  int
	HeartBursts      int
	ParticlesSpawned int
	PeakParticles    int
	RocketsReaped    int
}

// Show owns every live rocket and particle and runs the per-frame loop.
// It is not safe for concurrent use; all calls, including queued tasks, run
// on one goroutine.
type Show struct {
	settings config.Settings
	tuning   config.Tuning
	rng      *rand.Rand

	rockets   []*Rocket
	particles []*Particle

	queue     *TaskQueue
	scheduler *LaunchScheduler

	width, height float64
	paused        bool
	frame         int
	stats         Stats
	sink          EventSink
}

// ShowOption configures a Show at construction.
type ShowOption func(*Show)

// WithRand sets the random source.
func WithRand(rng *rand.Rand) ShowOption {
	return func(sh *Show) { sh.rng = rng }
}

// WithTuning overrides the visual constants.
func WithTuning(t config.Tuning) ShowOption {
	return func(sh *Show) { sh.tuning = t }
}

// WithEventSink attaches an event recorder.
func WithEventSink(sink EventSink) ShowOption {
	return func(sh *Show) { sh.sink = sink }
}

// WithViewport sets the initial viewport size.
func WithViewport(w, h int) ShowOption {
	return func(sh *Show) {
		sh.width = float64(w)
		sh.height = float64(h)
	}
}

// NewShow validates s and the tuning, then arms the launch scheduler.
func NewShow(s config.Settings, opts ...ShowOption) (*Show, error) {
	sh := &Show{
		tuning: config.DefaultTuning(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- cosmetic only
		queue:  NewTaskQueue(),
		width:  1280,
		height: 720,
	}
	for _, o := range opts {
		o(sh)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	if err := sh.tuning.Validate(); err != nil {
		return nil, err
	}
	sh.settings = s
	sh.scheduler = newLaunchScheduler(sh)
	sh.scheduler.Arm(s)
	return sh, nil
}

// Settings returns the active settings.
func (sh *Show) Settings() config.Settings { return sh.settings }

// Tuning returns the visual constants.
func (sh *Show) Tuning() config.Tuning { return sh.tuning }

// ApplySettings validates s, replaces the active settings and re-arms the
// scheduler. Invalid settings leave the show untouched.
func (sh *Show) ApplySettings(s config.Settings) error {
	if err := s.Validate(); err != nil {
		sh.record("settings", "reject", err.Error(), 0)
		return err
	}
	sh.settings = s
	sh.scheduler.Arm(s)
	sh.record("settings", "apply", s.FlagLine(), 0)
	return nil
}

// Launch fires a rocket from horizontal position x.
func (sh *Show) Launch(x float64) *Rocket {
	return sh.launch(x, "manual")
}

// LaunchRandom fires a rocket from a random horizontal position.
func (sh *Show) LaunchRandom() *Rocket {
	return sh.launch(sh.randomX(), "manual")
}

func (sh *Show) launch(x float64, source string) *Rocket {
	r := newRocket(sh.rng, x, sh.height)
	sh.rockets = append(sh.rockets, r)
	sh.stats.Launched++
	sh.record("launch", source, fmt.Sprintf("x=%.0f target=%.0f", x, r.TargetY), x)
	return r
}

func (sh *Show) randomX() float64 {
	return sh.rng.Float64() * sh.width
}

// SetPaused freezes or resumes the frame loop. Queued tasks keep running.
func (sh *Show) SetPaused(p bool) {
	if sh.paused == p {
		return
	}
	sh.paused = p
	if p {
		sh.record("show", "pause", "", 0)
	} else {
		sh.record("show", "resume", "", 0)
	}
}

// TogglePause flips the paused state.
func (sh *Show) TogglePause() { sh.SetPaused(!sh.paused) }

// Paused reports whether the frame loop is frozen.
func (sh *Show) Paused() bool { return sh.paused }

// Advance moves the show clock by dt and runs due deferred work.
func (sh *Show) Advance(dt time.Duration) {
	sh.queue.Advance(dt)
}

// Now returns the show clock.
func (sh *Show) Now() time.Duration { return sh.queue.Now() }

// Resize sets the viewport used for new rockets and expiry checks.
func (sh *Show) Resize(w, h int) {
	sh.width = float64(w)
	sh.height = float64(h)
}

// RenderFrame runs one frame against dst: wash the canvas, then update, draw
// and reap rockets and particles in insertion order. A paused show does no
// work.
func (sh *Show) RenderFrame(dst Surface, width, height int) error {
	if dst == nil {
		return ErrNoSurface
	}
	if width > 0 && height > 0 {
		sh.Resize(width, height)
	}
	if sh.paused {
		return nil
	}
	sh.frame++
	sh.stats.Frames++

	dst.FillRect(0, 0, sh.width, sh.height, color.NRGBA{A: alphaByte(sh.tuning.FadeAlpha)})

	kept := sh.rockets[:0]
	for _, r := range sh.rockets {
		r.update(sh)
		r.draw(dst)
		if r.reapable(sh.height, sh.tuning.RemovalMargin) {
			sh.stats.RocketsReaped++
			sh.record("rocket", "reap", fmt.Sprintf("x=%.0f y=%.0f", r.X, r.Y), 0)
			continue
		}
		kept = append(kept, r)
	}
	clear(sh.rockets[len(kept):])
	sh.rockets = kept

	live := sh.particles[:0]
	for _, p := range sh.particles {
		p.update(sh.settings.Speed)
		if p.expired(sh.height) {
			continue
		}
		p.draw(dst)
		live = append(live, p)
	}
	clear(sh.particles[len(live):])
	sh.particles = live

	if n := len(sh.particles); n > sh.stats.PeakParticles {
		sh.stats.PeakParticles = n
	}
	return nil
}

func (sh *Show) spawnBurst(x, y float64, c color.NRGBA, n int) {
	for i := 0; i < n; i++ {
		sh.addParticle(newParticle(sh.rng, x, y, c, sh.settings.Size))
	}
}

func (sh *Show) addParticle(p *Particle) {
	sh.particles = append(sh.particles, p)
	sh.stats.ParticlesSpawned++
}

func (sh *Show) record(category, key, value string, num float64) {
	if sh.sink == nil {
		return
	}
	sh.sink.Record(sh.frame, category, key, value, num)
}

// Rockets returns the live rockets. The slice is owned by the show.
func (sh *Show) Rockets() []*Rocket { return sh.rockets }

// Particles returns the live particles. The slice is owned by the show.
func (sh *Show) Particles() []*Particle { return sh.particles }

// Stats returns a copy of the running counters.
func (sh *Show) Stats() Stats { return sh.stats }

// Frame returns the number of frames rendered while running.
func (sh *Show) Frame() int { return sh.frame }

// Scheduler exposes the auto-launch scheduler.
func (sh *Show) Scheduler() *LaunchScheduler { return sh.scheduler }

// Queue exposes the deferred task queue.
func (sh *Show) Queue() *TaskQueue { return sh.queue }

// Viewport returns the current viewport size.
func (sh *Show) Viewport() (float64, float64) { return sh.width, sh.height }
