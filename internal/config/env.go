package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvSize      = "FIREWORKS_SIZE"
	EnvSpeed     = "FIREWORKS_SPEED"
	EnvAuto      = "FIREWORKS_AUTO"
	EnvTheme     = "FIREWORKS_THEME"
	EnvIntensity = "FIREWORKS_INTENSITY"
	EnvMusic     = "FIREWORKS_MUSIC"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// FromEnv overlays any FIREWORKS_* variables on base. The result is validated.
func FromEnv(base Settings) (Settings, error) {
	s := base
	if v, ok := os.LookupEnv(EnvSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvSize, err)
		}
		s.Size = n
	}
	if v, ok := os.LookupEnv(EnvSpeed); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvSpeed, err)
		}
		s.Speed = f
	}
	if v, ok := os.LookupEnv(EnvAuto); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvAuto, err)
		}
		s.AutoLaunch = b
	}
	if v, ok := os.LookupEnv(EnvTheme); ok {
		t, err := ParseTheme(v)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvTheme, err)
		}
		s.Color = t
	}
	if v, ok := os.LookupEnv(EnvIntensity); ok {
		i, err := ParseIntensity(v)
		if err != nil {
			return base, fmt.Errorf("%s: %w", EnvIntensity, err)
		}
		s.Intensity = i
	}
	if err := s.Validate(); err != nil {
		return base, err
	}
	return s, nil
}

// RegisterFlags binds the settings fields to flags on fs. Enum flags reject
// unknown names at parse time.
func RegisterFlags(fs *flag.FlagSet, s *Settings) {
	fs.IntVar(&s.Size, "size", s.Size, "explosion size (particle count multiplier, >= 1)")
	fs.Float64Var(&s.Speed, "speed", s.Speed, "motion speed multiplier (> 0)")
	fs.BoolVar(&s.AutoLaunch, "auto", s.AutoLaunch, "launch rockets automatically")
	fs.Var(&s.Color, "theme", "colour theme: romantic, golden, rainbow, royal, passion")
	fs.Var(&s.Intensity, "intensity", "auto-launch intensity: low, medium, high, extreme")
}

// RegisterTuningFlags binds the tunable delays and margins to flags on fs.
func RegisterTuningFlags(fs *flag.FlagSet, t *Tuning) {
	fs.DurationVar(&t.SecondaryBurstDelay, "burst-delay", t.SecondaryBurstDelay, "delay before the secondary burst")
	fs.DurationVar(&t.ExtraRocketDelay, "extra-delay", t.ExtraRocketDelay, "delay before the extra rocket on high/extreme")
	fs.Float64Var(&t.RemovalMargin, "removal-margin", t.RemovalMargin, "off-screen margin before exploded rockets are reaped")
	fs.Float64Var(&t.FadeAlpha, "fade", t.FadeAlpha, "opacity of the per-frame trail fade")
}
