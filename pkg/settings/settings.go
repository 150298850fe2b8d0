package settings

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"swatch-grid/pkg/palette"
)

// DefaultPath is used when SWATCH_SETTINGS is unset
const DefaultPath = "swatch-grid.json"

// Load reads the grid configuration from disk. When the file is missing or
// cannot be parsed, the default configuration is returned instead so the
// grid still renders.
func Load(path string) palette.Config {
	defaults := palette.DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		// No existing file – return defaults.
		return defaults
	}
	defer f.Close()

	var c palette.Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		log.Printf("Warning: ignoring malformed settings file %s: %v", path, err)
		return defaults
	}

	// Backfill zero values so partially written files keep working when new
	// fields are introduced.
	if c.Title == "" {
		c.Title = defaults.Title
	}
	if c.Anchors.Start == "" {
		c.Anchors.Start = defaults.Anchors.Start
	}
	if c.Anchors.Mid == "" {
		c.Anchors.Mid = defaults.Anchors.Mid
	}
	if c.Anchors.End == "" {
		c.Anchors.End = defaults.Anchors.End
	}
	if c.TileCount == 0 {
		c.TileCount = defaults.TileCount
	}
	if c.TileSize == 0 {
		c.TileSize = defaults.TileSize
	}
	if c.Categories == nil {
		c.Categories = defaults.Categories
	}
	if c.MountID == "" {
		c.MountID = defaults.MountID
	}
	if c.DetailPath == "" {
		c.DetailPath = defaults.DetailPath
	}

	return c
}

// Save writes the configuration to disk, creating or truncating the file.
func Save(path string, c palette.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// ApplyEnv overrides configuration fields from environment variables.
// getenv is normally os.Getenv.
func ApplyEnv(c palette.Config, getenv func(string) string) (palette.Config, error) {
	if v := getenv("SWATCH_TITLE"); v != "" {
		c.Title = v
	}

	if v := getenv("SWATCH_TILE_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("SWATCH_TILE_COUNT: %w", err)
		}
		c.TileCount = n
	}

	if v := getenv("SWATCH_ANCHOR_START"); v != "" {
		c.Anchors.Start = v
	}
	if v := getenv("SWATCH_ANCHOR_MID"); v != "" {
		c.Anchors.Mid = v
	}
	if v := getenv("SWATCH_ANCHOR_END"); v != "" {
		c.Anchors.End = v
	}

	return c, nil
}

// Seed returns SWATCH_SEED when set. ok is false when the layout should be
// drawn from a fresh seed.
func Seed(getenv func(string) string) (seed uint64, ok bool, err error) {
	v := getenv("SWATCH_SEED")
	if v == "" {
		return 0, false, nil
	}

	seed, err = strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("SWATCH_SEED: %w", err)
	}
	return seed, true, nil
}
