package game

import (
	"math/rand"
	"testing"

	"github.com/Garsondee/Fireworks/internal/config"
)

// newTestShow builds a manual-launch show on a 1280x720 viewport with a
// fixed seed. mutate may adjust settings and tuning before construction.
func newTestShow(t *testing.T, mutate func(*config.Settings, *config.Tuning)) (*Show, *SimLog) {
	t.Helper()
	s := config.Default()
	s.AutoLaunch = false
	s.Color = config.ThemeGolden
	tn := config.DefaultTuning()
	if mutate != nil {
		mutate(&s, &tn)
	}
	log := NewSimLog(true)
	sh, err := NewShow(s,
		WithRand(rand.New(rand.NewSource(11))),
		WithTuning(tn),
		WithEventSink(log),
		WithViewport(1280, 720),
	)
	if err != nil {
		t.Fatalf("NewShow: %v", err)
	}
	return sh, log
}

// stepShow advances the clock one frame and renders into rs.
func stepShow(t *testing.T, sh *Show, rs *RecordingSurface) {
	t.Helper()
	sh.Advance(sh.Tuning().FrameTime)
	if err := sh.RenderFrame(rs, 0, 0); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
}
