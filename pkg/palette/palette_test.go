package palette

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swatch-grid/pkg/colorEngine"
)

// fixedRand always draws the same value
type fixedRand int

func (f fixedRand) IntN(n int) int {
	return int(f) % n
}

func TestMidIndex(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{59, 29},
		{60, 30},
		{61, 30},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.count), func(t *testing.T) {
			assert.Equal(t, tt.want, MidIndex(tt.count))
		})
	}
}

func TestBuildReferenceGrid(t *testing.T) {
	cfg := DefaultConfig()

	pal, err := Build(cfg, NewRand(42))
	require.NoError(t, err)
	require.Len(t, pal.Tiles, 60)

	seen := map[string]bool{}
	for i, tile := range pal.Tiles {
		assert.Equal(t, i, tile.Index)
		assert.Equal(t, i+1, tile.Ordinal)

		ordinal := fmt.Sprintf("%03d", i+1)
		assert.False(t, seen[ordinal], "duplicate ordinal %s", ordinal)
		seen[ordinal] = true

		assert.Equal(t, ordinal+" "+tile.Hex, tile.Label)
		assert.Equal(t, "Swatch "+ordinal+", color "+tile.Hex, tile.Description)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, tile.Hex)
		assert.Contains(t, []string{"#000000", "#ffffff"}, tile.TextHex)
	}
	assert.True(t, seen["001"])
	assert.True(t, seen["060"])
}

func TestBuildAnchorsAreExact(t *testing.T) {
	cfg := DefaultConfig()

	pal, err := Build(cfg, NewRand(7))
	require.NoError(t, err)

	assert.Equal(t, cfg.Anchors.Start, pal.Tiles[0].Hex)
	assert.Equal(t, cfg.Anchors.End, pal.Tiles[len(pal.Tiles)-1].Hex)
	assert.Equal(t, 30, pal.MidIndex)
	assert.Equal(t, cfg.Anchors.Mid, pal.Landmark().Hex)
}

func TestBuildMidAnchorIsNormalized(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Anchors.Mid = " 247BA0"

	pal, err := Build(cfg, NewRand(1))
	require.NoError(t, err)
	assert.Equal(t, "#247ba0", pal.Landmark().Hex)
}

func TestBuildSpecialTiles(t *testing.T) {
	cfg := DefaultConfig()

	for seed := uint64(0); seed < 50; seed++ {
		pal, err := Build(cfg, NewRand(seed))
		require.NoError(t, err)

		var landmarks, disclosures []int
		for _, tile := range pal.Tiles {
			if tile.Landmark {
				landmarks = append(landmarks, tile.Index)
			}
			if tile.HasDisclosure() {
				disclosures = append(disclosures, tile.Index)
			}
		}

		require.Equal(t, []int{pal.MidIndex}, landmarks)
		require.Equal(t, []int{pal.InterestsIndex}, disclosures)
		require.NotEqual(t, pal.MidIndex, pal.InterestsIndex)
	}
}

func TestBuildLandmarkLinksToDetail(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DetailPath = "about/mid.html"

	pal, err := Build(cfg, NewRand(3))
	require.NoError(t, err)

	assert.Equal(t, "about/mid.html", pal.Landmark().Href)
	for _, tile := range pal.Tiles {
		if !tile.Landmark {
			assert.Empty(t, tile.Href)
		}
	}
}

func TestBuildCategoriesInOrder(t *testing.T) {
	cfg := DefaultConfig()

	pal, err := Build(cfg, NewRand(9))
	require.NoError(t, err)

	if diff := cmp.Diff(cfg.Categories, pal.Interests().Categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}

	// the tile owns its copy
	pal.Tiles[pal.InterestsIndex].Categories[0] = "changed"
	assert.Equal(t, "Music", cfg.Categories[0])
}

func TestBuildSameSeedSameLayout(t *testing.T) {
	cfg := DefaultConfig()

	a, err := Build(cfg, NewRand(1234))
	require.NoError(t, err)
	b, err := Build(cfg, NewRand(1234))
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("builds differ (-first +second):\n%s", diff)
	}
}

func TestBuildCollisionShiftsByOne(t *testing.T) {
	cfg := DefaultConfig()

	pal, err := Build(cfg, fixedRand(30))
	require.NoError(t, err)
	assert.Equal(t, 30, pal.MidIndex)
	assert.Equal(t, 31, pal.InterestsIndex)

	pal, err = Build(cfg, fixedRand(12))
	require.NoError(t, err)
	assert.Equal(t, 12, pal.InterestsIndex)
}

func TestBuildCollisionWraps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TileCount = 2

	pal, err := Build(cfg, fixedRand(1))
	require.NoError(t, err)
	assert.Equal(t, 1, pal.MidIndex)
	assert.Equal(t, 0, pal.InterestsIndex)
}

func TestBuildInterestsTileKeepsGradientColor(t *testing.T) {
	cfg := DefaultConfig()

	pal, err := Build(cfg, fixedRand(12))
	require.NoError(t, err)

	want, err := colorEngine.ColorAt(cfg.Anchors, 12, cfg.TileCount)
	require.NoError(t, err)
	assert.Equal(t, want, pal.Interests().Hex)
}

func TestBuildInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"zero tiles", func(c *Config) { c.TileCount = 0 }, ErrInvalidConfig},
		{"negative tiles", func(c *Config) { c.TileCount = -4 }, ErrInvalidConfig},
		{"zero tile size", func(c *Config) { c.TileSize = 0 }, ErrInvalidConfig},
		{"negative tile size", func(c *Config) { c.TileSize = -8 }, ErrInvalidConfig},
		{"nil categories", func(c *Config) { c.Categories = nil }, ErrInvalidConfig},
		{"empty categories", func(c *Config) { c.Categories = []string{} }, ErrInvalidConfig},
		{"empty detail path", func(c *Config) { c.DetailPath = "" }, ErrInvalidConfig},
		{"root detail path", func(c *Config) { c.DetailPath = "/" }, ErrInvalidConfig},
		{"directory detail path", func(c *Config) { c.DetailPath = "about/" }, ErrInvalidConfig},
		{"detail path outside site", func(c *Config) { c.DetailPath = "../anchor.html" }, ErrInvalidConfig},
		{"unclean detail path", func(c *Config) { c.DetailPath = "about//anchor.html" }, ErrInvalidConfig},
		{"detail path is index", func(c *Config) { c.DetailPath = IndexPath }, ErrInvalidConfig},
		{"detail path is palette json", func(c *Config) { c.DetailPath = "/" + PaletteJSONPath }, ErrInvalidConfig},
		{"detail path is qr code", func(c *Config) { c.DetailPath = QRPath }, ErrInvalidConfig},
		{"detail path is health check", func(c *Config) { c.DetailPath = HealthPath }, ErrInvalidConfig},
		{"bad start", func(c *Config) { c.Anchors.Start = "bad" }, colorEngine.ErrFormat},
		{"bad end", func(c *Config) { c.Anchors.End = "#12345g" }, colorEngine.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			_, err := Build(cfg, NewRand(1))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestValidateAcceptsNestedDetailPath(t *testing.T) {
	for _, p := range []string{"anchor.html", "/anchor.html", "about/anchor.html", "/about/index.html"} {
		cfg := DefaultConfig()
		cfg.DetailPath = p
		assert.NoError(t, cfg.Validate(), p)
	}
}

func TestBuildMarksExactlyOneDisclosureTile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Categories = []string{"Only"}

	pal, err := Build(cfg, NewRand(1))
	require.NoError(t, err)

	var found []int
	for _, tile := range pal.Tiles {
		if tile.HasDisclosure() {
			found = append(found, tile.Index)
		}
	}
	assert.Equal(t, []int{pal.InterestsIndex}, found)
}

func TestNewRandIsDeterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.IntN(60), b.IntN(60))
	}
}
