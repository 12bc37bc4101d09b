package game

import (
	"math/rand"
	"time"

	"github.com/Garsondee/Fireworks/internal/config"
)

// HeadlessSim is a windowless show harness used by tests and
// cmd/headless-report. It mirrors Game.Update but never opens a window, and
// supports deterministic seeding and structured logging.
type HeadlessSim struct {
	Width   int
	Height  int
	Show    *Show
	SimLog  *SimLog
	Surface *RecordingSurface

	settings config.Settings
	tuning   config.Tuning
	rng      *rand.Rand
}

// SimOption is a builder function applied to a HeadlessSim during construction.
type SimOption func(*HeadlessSim)

// WithViewportSize sets the show dimensions.
func WithViewportSize(w, h int) SimOption {
	return func(hs *HeadlessSim) {
		hs.Width = w
		hs.Height = h
	}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return func(hs *HeadlessSim) {
		hs.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}
}

// WithSettings replaces the default settings.
func WithSettings(s config.Settings) SimOption {
	return func(hs *HeadlessSim) { hs.settings = s }
}

// WithSimTuning replaces the default tuning.
func WithSimTuning(t config.Tuning) SimOption {
	return func(hs *HeadlessSim) { hs.tuning = t }
}

// WithVerbose enables scheduler bookkeeping entries in the SimLog.
func WithVerbose(v bool) SimOption {
	return func(hs *HeadlessSim) {
		hs.SimLog = NewSimLog(v)
	}
}

// WithKeepOps makes the recording surface keep every draw op instead of
// only counting them.
func WithKeepOps(keep bool) SimOption {
	return func(hs *HeadlessSim) { hs.Surface.Keep = keep }
}

// NewHeadlessSim builds a show from the given options.
func NewHeadlessSim(opts ...SimOption) (*HeadlessSim, error) {
	hs := &HeadlessSim{
		Width:    1280,
		Height:   720,
		SimLog:   NewSimLog(false),
		Surface:  &RecordingSurface{},
		settings: config.Default(),
		tuning:   config.DefaultTuning(),
		rng:      rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
	}
	for _, o := range opts {
		o(hs)
	}
	show, err := NewShow(hs.settings,
		WithRand(hs.rng),
		WithTuning(hs.tuning),
		WithEventSink(hs.SimLog),
		WithViewport(hs.Width, hs.Height),
	)
	if err != nil {
		return nil, err
	}
	hs.Show = show
	return hs, nil
}

// Step runs one frame: advance the clock, then render.
func (hs *HeadlessSim) Step() error {
	hs.Show.Advance(hs.tuning.FrameTime)
	return hs.Show.RenderFrame(hs.Surface, hs.Width, hs.Height)
}

// RunFrames runs n frames, stopping at the first error.
func (hs *HeadlessSim) RunFrames(n int) error {
	for i := 0; i < n; i++ {
		if err := hs.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunFor runs as many frames as fit in d, rounding up.
func (hs *HeadlessSim) RunFor(d time.Duration) error {
	ft := hs.tuning.FrameTime
	return hs.RunFrames(int((d + ft - 1) / ft))
}

// RunUntil steps until cond holds or maxFrames have run. It reports whether
// cond was met.
func (hs *HeadlessSim) RunUntil(maxFrames int, cond func() bool) (bool, error) {
	for i := 0; i < maxFrames; i++ {
		if cond() {
			return true, nil
		}
		if err := hs.Step(); err != nil {
			return false, err
		}
	}
	return cond(), nil
}
