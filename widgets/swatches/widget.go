package swatches

import (
	"fmt"

	"swatch-grid/pkg/gridLayout"
	"swatch-grid/pkg/palette"
	"swatch-grid/pkg/sharedTypes"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Widget manages the swatch grid: layout, hover state and drawing
type Widget struct {
	palette  palette.Palette
	tileSize int32
	layout   gridLayout.Layout
	hovered  int
}

// NewWidget creates a new swatch grid widget
func NewWidget(tileSize int) *Widget {
	return &Widget{
		tileSize: int32(tileSize),
		hovered:  -1,
	}
}

// SetPalette replaces every tile. Layout must be called afterwards.
func (w *Widget) SetPalette(p palette.Palette) {
	w.palette = p
	w.hovered = -1
}

// Palette returns the current palette
func (w *Widget) Palette() palette.Palette {
	return w.palette
}

// Layout places the tiles inside a region starting at (x, y) of the given
// width
func (w *Widget) Layout(x, y, width int32) {
	w.layout = gridLayout.Compute(len(w.palette.Tiles), x, y, width, w.tileSize, tileGap)
}

// Hover updates the hovered tile from the pointer position
func (w *Widget) Hover(x, y int32) {
	w.hovered = w.layout.HitTest(x, y)
}

// Hovered returns the tile under the pointer
func (w *Widget) Hovered() (sharedTypes.Tile, bool) {
	if w.hovered < 0 || w.hovered >= len(w.palette.Tiles) {
		return sharedTypes.Tile{}, false
	}
	return w.palette.Tiles[w.hovered], true
}

// Draw renders every tile, then the disclosure list on top when its tile is
// hovered
func (w *Widget) Draw(renderer *sdl.Renderer, labelFont, listFont *ttf.Font) error {
	if len(w.layout.Rects) != len(w.palette.Tiles) {
		return fmt.Errorf("swatch layout has %d tiles, palette has %d", len(w.layout.Rects), len(w.palette.Tiles))
	}

	for i, tile := range w.palette.Tiles {
		if err := DrawTile(renderer, tile, w.layout.Rects[i], labelFont); err != nil {
			return err
		}
	}

	if tile, ok := w.Hovered(); ok && tile.HasDisclosure() {
		return DrawDisclosure(renderer, tile, w.layout.Rects[tile.Index], listFont)
	}
	return nil
}
