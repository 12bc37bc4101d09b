package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds the visual constants of the show. None of them have a
// physical meaning; they were picked by eye.
type Tuning struct {
	// SecondaryBurstDelay is the gap between a detonation and its second burst.
	SecondaryBurstDelay time.Duration
	// ExtraRocketDelay is the gap before the second rocket of a high/extreme tick.
	ExtraRocketDelay time.Duration
	// RemovalMargin is how far below the viewport an exploded rocket must be
	// before it is reaped.
	RemovalMargin float64
	// FadeAlpha is the opacity of the black wash painted every frame.
	FadeAlpha float64
	// FrameTime is the simulated time per frame.
	FrameTime time.Duration

	TrailLength    int
	BurstParticles int
	HeartPoints    int
	HeartChance    float64
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		SecondaryBurstDelay: 100 * time.Millisecond,
		ExtraRocketDelay:    200 * time.Millisecond,
		RemovalMargin:       100,
		FadeAlpha:           0.15,
		FrameTime:           time.Second / 60,
		TrailLength:         10,
		BurstParticles:      80,
		HeartPoints:         50,
		HeartChance:         0.3,
	}
}

// Validate rejects tunings that would break the frame loop.
func (t Tuning) Validate() error {
	switch {
	case t.SecondaryBurstDelay < 0:
		return fmt.Errorf("%w: secondary burst delay %v", ErrInvalidTuning, t.SecondaryBurstDelay)
	case t.ExtraRocketDelay < 0:
		return fmt.Errorf("%w: extra rocket delay %v", ErrInvalidTuning, t.ExtraRocketDelay)
	case !(t.RemovalMargin >= 0) || math.IsInf(t.RemovalMargin, 0):
		return fmt.Errorf("%w: removal margin %v", ErrInvalidTuning, t.RemovalMargin)
	case !(t.FadeAlpha >= 0 && t.FadeAlpha <= 1):
		return fmt.Errorf("%w: fade alpha %v", ErrInvalidTuning, t.FadeAlpha)
	case t.FrameTime <= 0:
		return fmt.Errorf("%w: frame time %v", ErrInvalidTuning, t.FrameTime)
	case t.TrailLength < 1:
		return fmt.Errorf("%w: trail length %d", ErrInvalidTuning, t.TrailLength)
	case t.BurstParticles < 1:
		return fmt.Errorf("%w: burst particles %d", ErrInvalidTuning, t.BurstParticles)
	case t.HeartPoints < 1:
		return fmt.Errorf("%w: heart points %d", ErrInvalidTuning, t.HeartPoints)
	case !(t.HeartChance >= 0 && t.HeartChance <= 1):
		return fmt.Errorf("%w: heart chance %v", ErrInvalidTuning, t.HeartChance)
	}
	return nil
}
