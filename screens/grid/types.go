package grid

import (
	"swatch-grid/pkg/input"
	"swatch-grid/pkg/palette"
	"swatch-grid/screens/detail"
	"swatch-grid/ui"
	"swatch-grid/widgets/swatches"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	margin        = int32(24)
	gridTop       = int32(72)
	backgroundHex = "#0f172a"
	headingHex    = "#e2e8f0"
	hintHex       = "#94a3b8"
)

// GridScreen shows the swatch grid and navigates to the detail view when
// the landmark tile is clicked
type GridScreen struct {
	detail     *detail.DetailScreen
	showDetail bool

	// SDL2 rendering
	window   *sdl.Window
	renderer *sdl.Renderer

	// UI components
	fonts    *ui.Fonts
	swatches *swatches.Widget

	cfg     palette.Config
	newSeed func() uint64

	// Edge detection so a held key or button fires once
	keyTracker   input.PressTracker[sdl.Scancode]
	mouseTracker input.PressTracker[uint32]
}
