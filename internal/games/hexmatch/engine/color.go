// Package engine implements the hexmatch rules: tile creation, edge matching,
// scoring, combo timing and the board state machine. It is UI-agnostic and
// deterministic given a seeded RNG and the clock fed through Tick.
package engine

import (
	"fmt"
	"strings"
)

// Color is the color of a single tile edge.
type Color uint8

const (
	ColorPink Color = iota
	ColorBlue
	ColorGreen
	ColorYellow
	ColorPurple
	ColorOrange
	ColorCount // Sentinel value for iteration

	// ColorRainbow is carried only by joker edges and matches every color.
	ColorRainbow Color = 255
)

const (
	minPalette = 4
	maxPalette = int(ColorCount)
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorPink:
		return "pink"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorRainbow:
		return "rainbow"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color. The glyph is
// also what color-blind players read, so every color gets a distinct letter.
func (c Color) Char() rune {
	switch c {
	case ColorPink:
		return 'P'
	case ColorBlue:
		return 'B'
	case ColorGreen:
		return 'G'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'V'
	case ColorOrange:
		return 'O'
	case ColorRainbow:
		return '*'
	default:
		return '?'
	}
}

// ParseColor converts a string to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "pink", "p":
		return ColorPink, true
	case "blue", "b":
		return ColorBlue, true
	case "green", "g":
		return ColorGreen, true
	case "yellow", "y":
		return ColorYellow, true
	case "purple", "v":
		return ColorPurple, true
	case "orange", "o":
		return ColorOrange, true
	case "rainbow", "*":
		return ColorRainbow, true
	default:
		return ColorPink, false
	}
}

// MarshalText encodes the color by name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a color name.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, ok := ParseColor(string(text))
	if !ok {
		return fmt.Errorf("engine: unknown color %q", text)
	}
	*c = parsed
	return nil
}

// Palette returns the first n playable colors, clamped to [4, 6].
func Palette(n int) []Color {
	n = max(minPalette, min(n, maxPalette))
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color(i)
	}
	return colors
}

// colorsMatch reports whether two touching edge colors match. Rainbow on
// either side always matches.
func colorsMatch(a, b Color) bool {
	return a == ColorRainbow || b == ColorRainbow || a == b
}
