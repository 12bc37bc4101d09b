// Package config holds the show settings, the colour theme table and the
// tuning constants shared by the simulation and the command-line programs.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

var (
	ErrInvalidSize      = errors.New("size must be an integer >= 1")
	ErrInvalidSpeed     = errors.New("speed must be > 0")
	ErrUnknownTheme     = errors.New("unknown colour theme")
	ErrUnknownIntensity = errors.New("unknown intensity")
)

// Theme names an entry in the palette table.
type Theme string

const (
	ThemeRomantic Theme = "romantic"
	ThemeGolden   Theme = "golden"
	ThemeRainbow  Theme = "rainbow"
	ThemeRoyal    Theme = "royal"
	ThemePassion  Theme = "passion"
)

// Themes lists every theme in display order.
var Themes = []Theme{ThemeRomantic, ThemeGolden, ThemeRainbow, ThemeRoyal, ThemePassion}

// ParseTheme returns the theme named s.
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if _, ok := palettes[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
	return t, nil
}

func (t Theme) String() string { return string(t) }

// Set implements flag.Value.
func (t *Theme) Set(s string) error {
	v, err := ParseTheme(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Intensity controls the auto-launch cadence.
type Intensity string

const (
	IntensityLow     Intensity = "low"
	IntensityMedium  Intensity = "medium"
	IntensityHigh    Intensity = "high"
	IntensityExtreme Intensity = "extreme"
)

// Intensities lists every intensity from calmest to busiest.
var Intensities = []Intensity{IntensityLow, IntensityMedium, IntensityHigh, IntensityExtreme}

var launchIntervals = map[Intensity]time.Duration{
	IntensityLow:     2000 * time.Millisecond,
	IntensityMedium:  1200 * time.Millisecond,
	IntensityHigh:    800 * time.Millisecond,
	IntensityExtreme: 400 * time.Millisecond,
}

// ParseIntensity returns the intensity named s.
func ParseIntensity(s string) (Intensity, error) {
	i := Intensity(s)
	if _, ok := launchIntervals[i]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownIntensity, s)
	}
	return i, nil
}

func (i Intensity) String() string { return string(i) }

// Set implements flag.Value.
func (i *Intensity) Set(s string) error {
	v, err := ParseIntensity(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// LaunchInterval is the time between auto-launch ticks. Zero for unknown values.
func (i Intensity) LaunchInterval() time.Duration {
	return launchIntervals[i]
}

// DoubleLaunch reports whether each auto-launch tick fires a second rocket.
func (i Intensity) DoubleLaunch() bool {
	return i == IntensityHigh || i == IntensityExtreme
}

// Next cycles to the following intensity, wrapping back to low.
func (i Intensity) Next() Intensity {
	for k, v := range Intensities {
		if v == i {
			return Intensities[(k+1)%len(Intensities)]
		}
	}
	return IntensityLow
}

// Settings is the user-facing configuration of a show.
type Settings struct {
	Size       int
	Speed      float64
	AutoLaunch bool
	Color      Theme
	Intensity  Intensity
}

// Default returns the settings a show starts with.
func Default() Settings {
	return Settings{
		Size:       3,
		Speed:      1,
		AutoLaunch: true,
		Color:      ThemeRomantic,
		Intensity:  IntensityMedium,
	}
}

// Validate rejects settings the simulation cannot run with.
func (s Settings) Validate() error {
	if s.Size < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, s.Size)
	}
	if !(s.Speed > 0) || math.IsInf(s.Speed, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSpeed, s.Speed)
	}
	if _, err := ParseTheme(string(s.Color)); err != nil {
		return err
	}
	if _, err := ParseIntensity(string(s.Intensity)); err != nil {
		return err
	}
	return nil
}

// FlagLine renders the settings as command-line flags accepted by cmd/fireworks.
func (s Settings) FlagLine() string {
	return fmt.Sprintf("-size=%d -speed=%s -auto=%t -theme=%s -intensity=%s",
		s.Size, strconv.FormatFloat(s.Speed, 'g', -1, 64), s.AutoLaunch, s.Color, s.Intensity)
}
