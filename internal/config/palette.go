package config

import (
	"fmt"
	"image/color"
	"math/rand"
	"strconv"
)

// palettes is the colour theme table. It is never modified after init.
var palettes = map[Theme][]color.NRGBA{
	ThemeRomantic: mustHexes("#ff0066", "#ff3385", "#ff66a3", "#ffb3d9", "#ff1744", "#ff5252"),
	ThemeGolden:   mustHexes("#ffd700", "#ffed4e", "#fff9c4", "#ffffff", "#e6e6e6", "#cccccc"),
	ThemeRainbow:  mustHexes("#ff0043", "#14fc56", "#1e7fff", "#e60aff", "#ffbf36", "#ffffff"),
	ThemeRoyal:    mustHexes("#7c4dff", "#9c27b0", "#3f51b5", "#2196f3", "#00bcd4", "#b39ddb"),
	ThemePassion:  mustHexes("#ff0000", "#ff1744", "#ff5252", "#ff8a80", "#ffcdd2", "#ffffff"),
}

// Palette returns a copy of the theme's colours, or nil for an unknown theme.
func (t Theme) Palette() []color.NRGBA {
	p := palettes[t]
	if p == nil {
		return nil
	}
	out := make([]color.NRGBA, len(p))
	copy(out, p)
	return out
}

// Pick returns a random colour from the theme.
func (t Theme) Pick(rng *rand.Rand) color.NRGBA {
	p := palettes[t]
	return p[rng.Intn(len(p))]
}

// First returns the theme's leading colour.
func (t Theme) First() color.NRGBA {
	return palettes[t][0]
}

// Contains reports whether c is one of the theme's colours.
func (t Theme) Contains(c color.NRGBA) bool {
	for _, p := range palettes[t] {
		if p == c {
			return true
		}
	}
	return false
}

// ParseHex parses "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (color.NRGBA, error) {
	if len(s) != 7 && len(s) != 9 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("bad hex colour %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad hex colour %q: %w", s, err)
	}
	if len(s) == 7 {
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustHex is ParseHex for compile-time constants.
func MustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func mustHexes(ss ...string) []color.NRGBA {
	out := make([]color.NRGBA, len(ss))
	for i, s := range ss {
		out[i] = MustHex(s)
	}
	return out
}
