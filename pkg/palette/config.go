package palette

import (
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"swatch-grid/pkg/colorEngine"
)

// ErrInvalidConfig is wrapped by every Config validation failure
var ErrInvalidConfig = errors.New("invalid palette config")

// Site paths, relative to the site root. The detail page may not take any
// of them.
const (
	IndexPath       = "index.html"
	PaletteJSONPath = "palette.json"
	QRPath          = "qr.png"
	HealthPath      = "healthz"
)

var reservedPaths = []string{IndexPath, PaletteJSONPath, QRPath, HealthPath}

// Config holds everything a palette build and its renderers need. It is
// passed by value and never mutated.
type Config struct {
	Title      string              `json:"title"`
	Anchors    colorEngine.Anchors `json:"anchors"`
	TileCount  int                 `json:"tileCount"`
	TileSize   int                 `json:"tileSize"`
	Categories []string            `json:"categories"`
	MountID    string              `json:"mountId"`
	DetailPath string              `json:"detailPath"`
}

// DefaultConfig returns the reference configuration: 60 tiles blending
// coral through deep blue to seafoam.
func DefaultConfig() Config {
	return Config{
		Title: "Swatches",
		Anchors: colorEngine.Anchors{
			Start: "#f25f5c",
			Mid:   "#247ba0",
			End:   "#70c1b3",
		},
		TileCount:  60,
		TileSize:   96,
		Categories: []string{"Music", "Film", "Books", "Games", "Travel", "Code"},
		MountID:    "swatch-grid",
		DetailPath: "anchor.html",
	}
}

// Validate checks the fields a build depends on
func (c Config) Validate() error {
	if c.TileCount < 1 {
		return fmt.Errorf("%w: tile count must be at least 1, got %d", ErrInvalidConfig, c.TileCount)
	}
	if c.TileSize < 1 {
		return fmt.Errorf("%w: tile size must be at least 1, got %d", ErrInvalidConfig, c.TileSize)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: the interests tile needs at least one category", ErrInvalidConfig)
	}
	if err := validateDetailPath(c.DetailPath); err != nil {
		return err
	}
	if err := c.Anchors.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// DetailFile returns DetailPath relative to the site root
func (c Config) DetailFile() string {
	return strings.TrimPrefix(c.DetailPath, "/")
}

func validateDetailPath(p string) error {
	rel := strings.TrimPrefix(p, "/")
	switch {
	case rel == "" || strings.HasSuffix(rel, "/"):
		return fmt.Errorf("%w: detail path %q must name a file", ErrInvalidConfig, p)
	case path.Clean(rel) != rel || rel == ".." || strings.HasPrefix(rel, "../"):
		return fmt.Errorf("%w: detail path %q must be a clean path inside the site", ErrInvalidConfig, p)
	case slices.Contains(reservedPaths, rel):
		return fmt.Errorf("%w: detail path %q is reserved", ErrInvalidConfig, p)
	}
	return nil
}
