package ui

import (
	"swatch-grid/pkg/colorEngine"

	"github.com/veandco/go-sdl2/sdl"
)

// DrawGradientRect draws a vertical gradient through the three anchors,
// one horizontal line per pixel row
func DrawGradientRect(renderer *sdl.Renderer, x, y, width, height int32, anchors colorEngine.Anchors) error {
	for i := int32(0); i < height; i++ {
		hex, err := colorEngine.ColorAt(anchors, int(i), int(height))
		if err != nil {
			return err
		}
		if err := SetDrawHex(renderer, hex); err != nil {
			return err
		}
		renderer.DrawLine(x, y+i, x+width-1, y+i)
	}
	return nil
}

// SetDrawHex sets the renderer draw color from a #rrggbb string
func SetDrawHex(renderer *sdl.Renderer, hex string) error {
	c, err := HexColor(hex)
	if err != nil {
		return err
	}
	return renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

// FillHexRect fills a rectangle with a #rrggbb color
func FillHexRect(renderer *sdl.Renderer, rect *sdl.Rect, hex string) error {
	if err := SetDrawHex(renderer, hex); err != nil {
		return err
	}
	return renderer.FillRect(rect)
}

// HexColor converts #rrggbb to an opaque sdl.Color
func HexColor(hex string) (sdl.Color, error) {
	c, err := colorEngine.HexToRGB(hex)
	if err != nil {
		return sdl.Color{}, err
	}
	return sdl.Color{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}, nil
}
