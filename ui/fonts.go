package ui

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/ttf"
)

var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
	"/System/Library/Fonts/Menlo.ttc",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
}

// Fonts holds the three sizes the viewer draws with
type Fonts struct {
	Heading *ttf.Font // 24px for screen titles
	Body    *ttf.Font // 16px for lists and hints
	Label   *ttf.Font // 12px for tile labels
}

// LoadFonts opens the first available monospace system font at every size.
// Missing fonts leave the field nil; text drawing then becomes a no-op.
func LoadFonts() (*Fonts, error) {
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize TTF: %v", err)
	}

	fonts := &Fonts{
		Heading: openFirst(24),
		Body:    openFirst(16),
		Label:   openFirst(12),
	}
	if fonts.Label == nil {
		log.Printf("Warning: no system font found in %v", fontPaths)
	}
	return fonts, nil
}

func openFirst(size int) *ttf.Font {
	for _, path := range fontPaths {
		if f, err := ttf.OpenFont(path, size); err == nil {
			return f
		}
	}
	return nil
}

// Close cleans up font resources
func (f *Fonts) Close() {
	for _, font := range []*ttf.Font{f.Heading, f.Body, f.Label} {
		if font != nil {
			font.Close()
		}
	}
	ttf.Quit()
}
