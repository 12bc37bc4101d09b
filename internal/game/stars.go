package game

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

const (
	starTwinklePeriod = 3 * time.Second
	narrowViewport    = 768
)

var starColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Star is a fixed background point. X and Y are fractions of the viewport.
type Star struct {
	X, Y  float64
	Size  float64
	Delay time.Duration
}

// StarField is the twinkling backdrop behind the show.
type StarField struct {
	Stars []Star
}

// NewStarField scatters 50 stars on narrow viewports and 100 otherwise.
func NewStarField(rng *rand.Rand, width int) *StarField {
	n := 100
	if width < narrowViewport {
		n = 50
	}
	sf := &StarField{Stars: make([]Star, n)}
	for i := range sf.Stars {
		sf.Stars[i] = Star{
			X:     rng.Float64(),
			Y:     rng.Float64(),
			Size:  rng.Float64()*0.8 + 0.6,
			Delay: time.Duration(rng.Float64() * float64(starTwinklePeriod)),
		}
	}
	return sf
}

// brightness is the star's twinkle opacity at time now, in [0.2, 1].
func (s Star) brightness(now time.Duration) float64 {
	phase := float64(now+s.Delay) / float64(starTwinklePeriod)
	return 0.2 + 0.8*(0.5+0.5*math.Sin(2*math.Pi*phase))
}

// Draw paints every star scaled to a w×h viewport.
func (sf *StarField) Draw(dst Surface, w, h float64, now time.Duration) {
	for _, s := range sf.Stars {
		dst.FillCircle(s.X*w, s.Y*h, s.Size, Solid(starColor), Style{
			Alpha:     s.brightness(now),
			Glow:      2,
			GlowColor: starColor,
		})
	}
}
