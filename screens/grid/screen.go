package grid

import (
	"log"

	"swatch-grid/pkg/input"
	"swatch-grid/pkg/palette"
	"swatch-grid/screens/detail"
	"swatch-grid/ui"
	"swatch-grid/widgets/swatches"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// NewGridScreen creates the grid screen and builds its first palette
func NewGridScreen(window *sdl.Window, renderer *sdl.Renderer, cfg palette.Config, newSeed func() uint64) (*GridScreen, error) {
	gs := &GridScreen{
		detail:       detail.NewDetailScreen(cfg.Title, cfg.Anchors),
		window:       window,
		renderer:     renderer,
		swatches:     swatches.NewWidget(cfg.TileSize),
		cfg:          cfg,
		newSeed:      newSeed,
		keyTracker:   input.NewPressTracker[sdl.Scancode](),
		mouseTracker: input.NewPressTracker[uint32](),
	}

	fonts, err := ui.LoadFonts()
	if err != nil {
		log.Printf("Warning: Failed to initialize fonts: %v", err)
	}
	gs.fonts = fonts

	if err := gs.Rebuild(); err != nil {
		return nil, err
	}
	return gs, nil
}

// Rebuild draws a fresh seed and replaces every tile
func (gs *GridScreen) Rebuild() error {
	seed := gs.newSeed()
	pal, err := palette.Build(gs.cfg, palette.NewRand(seed))
	if err != nil {
		return err
	}

	gs.swatches.SetPalette(pal)
	log.Printf("Palette built | seed=%d | tiles=%d | landmark=%d | interests=%d",
		seed, len(pal.Tiles), pal.MidIndex+1, pal.InterestsIndex+1)
	return nil
}

// Update handles SDL2 input and updates screen state
func (gs *GridScreen) Update() error {
	keyState := sdl.GetKeyboardState()
	mx, my, buttons := sdl.GetMouseState()

	escape := gs.keyTracker.Pressed(sdl.SCANCODE_ESCAPE, input.KeyDown(keyState, int(sdl.SCANCODE_ESCAPE)))
	reshuffle := gs.keyTracker.Pressed(sdl.SCANCODE_R, input.KeyDown(keyState, int(sdl.SCANCODE_R)))
	click := gs.mouseTracker.Pressed(sdl.ButtonLMask(), input.ButtonDown(buttons, sdl.ButtonLMask()))

	if gs.showDetail {
		if escape {
			log.Println("Returning to grid")
			gs.showDetail = false
		}
		return nil
	}

	if reshuffle {
		if err := gs.Rebuild(); err != nil {
			return err
		}
	}

	gs.relayout()
	gs.swatches.Hover(mx, my)

	if click {
		if tile, ok := gs.swatches.Hovered(); ok && tile.Landmark {
			log.Printf("Landmark %s activated, opening %s", tile.Label, tile.Href)
			gs.showDetail = true
		}
	}

	return nil
}

// Draw renders the current view and presents the frame
func (gs *GridScreen) Draw() error {
	width, height := gs.window.GetSize()

	if gs.showDetail {
		if err := gs.detail.Draw(gs.renderer, gs.fonts, width, height); err != nil {
			return err
		}
		gs.renderer.Present()
		return nil
	}

	if err := ui.FillHexRect(gs.renderer, &sdl.Rect{X: 0, Y: 0, W: width, H: height}, backgroundHex); err != nil {
		return err
	}

	var labelFont, listFont *ttf.Font
	if gs.fonts != nil {
		if err := ui.RenderText(gs.renderer, gs.cfg.Title, margin, margin, headingHex, gs.fonts.Heading); err != nil {
			return err
		}
		if err := ui.RenderText(gs.renderer, "Click the marked tile for details · R: reshuffle", margin, height-margin-16, hintHex, gs.fonts.Body); err != nil {
			return err
		}
		labelFont, listFont = gs.fonts.Label, gs.fonts.Body
	}

	gs.relayout()
	if err := gs.swatches.Draw(gs.renderer, labelFont, listFont); err != nil {
		return err
	}

	gs.renderer.Present()
	return nil
}

// Close releases fonts
func (gs *GridScreen) Close() {
	if gs.fonts != nil {
		gs.fonts.Close()
	}
}

func (gs *GridScreen) relayout() {
	width, _ := gs.window.GetSize()
	gs.swatches.Layout(margin, gridTop, width-2*margin)
}
