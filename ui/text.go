package ui

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText renders text at the specified position with the given font and
// #rrggbb color. A nil font draws nothing.
func RenderText(renderer *sdl.Renderer, text string, x, y int32, hex string, font *ttf.Font) error {
	if font == nil || text == "" {
		return nil
	}

	color, err := HexColor(hex)
	if err != nil {
		return err
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	dstRect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	return renderer.Copy(texture, nil, &dstRect)
}

// TextSize measures text in the given font, returning zero without a font
func TextSize(font *ttf.Font, text string) (int32, int32) {
	if font == nil {
		return 0, 0
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}
