package colorEngine

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"
)

// HexToRGB parses a 6-digit hex color. Surrounding whitespace and a single
// leading '#' are ignored, and digits are case-insensitive.
func HexToRGB(s string) (RGB, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(clean) != 6 {
		return RGB{}, &FormatError{Input: s}
	}

	b, err := hex.DecodeString(clean)
	if err != nil {
		return RGB{}, &FormatError{Input: s}
	}

	return RGB{R: int(b[0]), G: int(b[1]), B: int(b[2])}, nil
}

// Normalize returns the canonical lowercase #rrggbb form of a hex color
func Normalize(s string) (string, error) {
	c, err := HexToRGB(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// RGBToHSL converts 8-bit channels to HSL. Achromatic colors get zero hue
// and saturation.
func RGBToHSL(r, g, b int) HSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(math.Max(rf, gf), bf)
	min := math.Min(math.Min(rf, gf), bf)
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}

	return HSL{H: floorMod(h*60, 360), S: s * 100, L: l * 100}
}

// HSLToHex converts HSL to #rrggbb using the sector-based chroma formula.
// Channels are rounded to the nearest integer.
func HSLToHex(h, s, l float64) string {
	s /= 100
	l /= 100

	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return fmt.Sprintf("#%02x%02x%02x", toByte(r+m), toByte(g+m), toByte(b+m))
}

// HexToHSL is HexToRGB followed by RGBToHSL
func HexToHSL(s string) (HSL, error) {
	c, err := HexToRGB(s)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(c.R, c.G, c.B), nil
}

func toByte(v float64) int {
	return int(math.Round(v * 255))
}

// floorMod is a modulo whose result has the sign of n
func floorMod(a, n float64) float64 {
	m := math.Mod(a, n)
	if m < 0 {
		m += n
	}
	return m
}
