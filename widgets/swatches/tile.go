package swatches

import (
	"fmt"

	"swatch-grid/pkg/gridLayout"
	"swatch-grid/pkg/sharedTypes"
	"swatch-grid/ui"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// DrawTile renders a single swatch: its fill, label, and the landmark
// outline and marker when it has them
func DrawTile(renderer *sdl.Renderer, tile sharedTypes.Tile, r gridLayout.Rect, font *ttf.Font) error {
	rect := sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
	if err := ui.FillHexRect(renderer, &rect, tile.Hex); err != nil {
		return err
	}

	if tile.Landmark {
		if err := ui.SetDrawHex(renderer, markerHex); err != nil {
			return err
		}
		for i := 1; i <= borderWidth; i++ {
			d := int32(i)
			renderer.DrawRect(&sdl.Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d})
		}
	}

	if font == nil {
		return nil
	}

	// ordinal on the first line, hex on the second
	ordinal, hex := fmt.Sprintf("%03d", tile.Ordinal), tile.Hex
	_, lineH := ui.TextSize(font, ordinal)
	if err := ui.RenderText(renderer, ordinal, r.X+labelInset, r.Y+labelInset, tile.TextHex, font); err != nil {
		return err
	}
	if err := ui.RenderText(renderer, hex, r.X+labelInset, r.Y+labelInset+lineH, tile.TextHex, font); err != nil {
		return err
	}

	if tile.Landmark {
		w, h := ui.TextSize(font, "*")
		return ui.RenderText(renderer, "*", r.X+r.W-w-labelInset, r.Y+r.H-h-labelInset, tile.TextHex, font)
	}

	return nil
}

// DrawDisclosure draws the category list of a hovered tile just below it
func DrawDisclosure(renderer *sdl.Renderer, tile sharedTypes.Tile, r gridLayout.Rect, font *ttf.Font) error {
	if !tile.HasDisclosure() || font == nil {
		return nil
	}

	var width, lineH int32
	for _, c := range tile.Categories {
		w, h := ui.TextSize(font, c)
		width = max(width, w)
		lineH = max(lineH, h)
	}

	n := int32(len(tile.Categories))
	box := sdl.Rect{
		X: r.X,
		Y: r.Y + r.H + popoverLineGap,
		W: width + 2*popoverPad,
		H: n*lineH + (n-1)*popoverLineGap + 2*popoverPad,
	}
	if err := ui.FillHexRect(renderer, &box, popoverBgHex); err != nil {
		return err
	}

	y := box.Y + popoverPad
	for _, c := range tile.Categories {
		if err := ui.RenderText(renderer, c, box.X+popoverPad, y, popoverFgHex, font); err != nil {
			return err
		}
		y += lineH + popoverLineGap
	}
	return nil
}
