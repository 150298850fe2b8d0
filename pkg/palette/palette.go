package palette

import (
	"fmt"

	"swatch-grid/pkg/colorEngine"
	"swatch-grid/pkg/sharedTypes"
)

// Palette is the ordered tile list for one grid plus the two reserved
// positions
type Palette struct {
	Tiles          []sharedTypes.Tile `json:"tiles"`
	MidIndex       int                `json:"midIndex"`
	InterestsIndex int                `json:"interestsIndex"`
}

// Landmark returns the tile at the midpoint
func (p Palette) Landmark() sharedTypes.Tile {
	return p.Tiles[p.MidIndex]
}

// Interests returns the tile carrying the category list
func (p Palette) Interests() sharedTypes.Tile {
	return p.Tiles[p.InterestsIndex]
}

// MidIndex returns round((count-1)/2), rounding halves up
func MidIndex(count int) int {
	return count / 2
}

// InterestsIndex draws the disclosure position from rnd, shifting it by one
// when it lands on the midpoint
func InterestsIndex(count int, rnd RandSource) int {
	idx := rnd.IntN(count)
	if idx == MidIndex(count) {
		idx = (idx + 1) % count
	}
	return idx
}

// Build computes the tile list for cfg. It has no side effects; all
// randomness comes from rnd.
func Build(cfg Config, rnd RandSource) (Palette, error) {
	if err := cfg.Validate(); err != nil {
		return Palette{}, err
	}

	count := cfg.TileCount
	mid := MidIndex(count)
	interests := InterestsIndex(count, rnd)

	midHex, err := colorEngine.Normalize(cfg.Anchors.Mid)
	if err != nil {
		return Palette{}, err
	}

	tiles := make([]sharedTypes.Tile, count)
	for i := range tiles {
		hex := midHex
		if i != mid {
			hex, err = colorEngine.ColorAt(cfg.Anchors, i, count)
			if err != nil {
				return Palette{}, fmt.Errorf("tile %d: %w", i+1, err)
			}
		}

		tile, err := newTile(i, hex)
		if err != nil {
			return Palette{}, err
		}

		if i == mid {
			tile.Landmark = true
			tile.Href = cfg.DetailPath
		}
		if i == interests {
			tile.Categories = append([]string(nil), cfg.Categories...)
		}

		tiles[i] = tile
	}

	return Palette{Tiles: tiles, MidIndex: mid, InterestsIndex: interests}, nil
}

func newTile(i int, hex string) (sharedTypes.Tile, error) {
	text, err := colorEngine.ContrastText(hex)
	if err != nil {
		return sharedTypes.Tile{}, err
	}

	return sharedTypes.Tile{
		Index:       i,
		Ordinal:     i + 1,
		Hex:         hex,
		TextHex:     text,
		Label:       Label(i, hex),
		Description: Description(i, hex),
	}, nil
}

// Label is the visible tile caption, e.g. "001 #f25f5c"
func Label(i int, hex string) string {
	return fmt.Sprintf("%03d %s", i+1, hex)
}

// Description is the accessible text for a tile
func Description(i int, hex string) string {
	return fmt.Sprintf("Swatch %03d, color %s", i+1, hex)
}
