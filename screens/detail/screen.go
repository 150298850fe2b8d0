package detail

import (
	"swatch-grid/pkg/colorEngine"
	"swatch-grid/ui"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	margin     = int32(40)
	stripWidth = int32(120)
	anchorSize = int32(160)
	anchorGap  = int32(24)

	backgroundHex = "#0f172a"
	headingHex    = "#e2e8f0"
	hintHex       = "#94a3b8"
)

// DetailScreen is the view the landmark tile navigates to: the gradient
// strip and the three anchors it passes through
type DetailScreen struct {
	title   string
	anchors colorEngine.Anchors
}

// NewDetailScreen creates the detail view for a set of anchors
func NewDetailScreen(title string, anchors colorEngine.Anchors) *DetailScreen {
	return &DetailScreen{title: title, anchors: anchors}
}

// Draw renders the detail view into the full window
func (ds *DetailScreen) Draw(renderer *sdl.Renderer, fonts *ui.Fonts, width, height int32) error {
	if err := ui.FillHexRect(renderer, &sdl.Rect{X: 0, Y: 0, W: width, H: height}, backgroundHex); err != nil {
		return err
	}

	if err := ui.DrawGradientRect(renderer, margin, margin, stripWidth, height-2*margin, ds.anchors); err != nil {
		return err
	}

	x := margin + stripWidth + margin
	if fonts != nil {
		if err := ui.RenderText(renderer, ds.title+" · anchors", x, margin, headingHex, fonts.Heading); err != nil {
			return err
		}
		if err := ui.RenderText(renderer, "Esc: back to the grid", x, height-margin-20, hintHex, fonts.Body); err != nil {
			return err
		}
	}

	anchors := []struct{ name, hex string }{
		{"Start", ds.anchors.Start},
		{"Mid", ds.anchors.Mid},
		{"End", ds.anchors.End},
	}
	y := margin + 60
	for i, a := range anchors {
		hex, err := colorEngine.Normalize(a.hex)
		if err != nil {
			return err
		}
		fg, err := colorEngine.ContrastText(hex)
		if err != nil {
			return err
		}

		ax := x + int32(i)*(anchorSize+anchorGap)
		if err := ui.FillHexRect(renderer, &sdl.Rect{X: ax, Y: y, W: anchorSize, H: anchorSize}, hex); err != nil {
			return err
		}
		if fonts != nil {
			if err := ui.RenderText(renderer, a.name, ax+12, y+12, fg, fonts.Body); err != nil {
				return err
			}
			if err := ui.RenderText(renderer, hex, ax+12, y+anchorSize-32, fg, fonts.Body); err != nil {
				return err
			}
		}
	}

	return nil
}
