package colorEngine

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every hex parsing failure
var ErrFormat = errors.New("malformed hex color")

// FormatError reports a hex string that is not exactly 6 hex digits
// once whitespace and the optional leading '#' are removed.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed hex color %q: expected 6 hex digits", e.Input)
}

// Is lets errors.Is(err, ErrFormat) match a *FormatError
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// RGB is a color with 8-bit channels in [0,255]
type RGB struct {
	R, G, B int
}

// Hex formats the color as lowercase #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HSL is a color with hue in degrees [0,360) and saturation/lightness in
// percent [0,100]
type HSL struct {
	H, S, L float64
}

// Hex converts the color back to #rrggbb
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// Anchors are the three reference colors a gradient passes through
type Anchors struct {
	Start string `json:"start"`
	Mid   string `json:"mid"`
	End   string `json:"end"`
}

// Validate checks that all three anchors parse
func (a Anchors) Validate() error {
	anchors := []struct{ name, hex string }{
		{"start", a.Start},
		{"mid", a.Mid},
		{"end", a.End},
	}
	for _, anchor := range anchors {
		if _, err := HexToRGB(anchor.hex); err != nil {
			return fmt.Errorf("%s anchor: %w", anchor.name, err)
		}
	}
	return nil
}
