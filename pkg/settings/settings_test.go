package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swatch-grid/pkg/palette"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "absent.json"))

	if diff := cmp.Diff(palette.DefaultConfig(), got); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	assert.Equal(t, palette.DefaultConfig(), Load(path))
}

func TestLoadBackfillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	body := `{"tileCount": 12, "anchors": {"mid": "#000000"}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	got := Load(path)
	defaults := palette.DefaultConfig()

	assert.Equal(t, 12, got.TileCount)
	assert.Equal(t, "#000000", got.Anchors.Mid)
	assert.Equal(t, defaults.Anchors.Start, got.Anchors.Start)
	assert.Equal(t, defaults.Anchors.End, got.Anchors.End)
	assert.Equal(t, defaults.Categories, got.Categories)
	assert.Equal(t, defaults.MountID, got.MountID)
	assert.Equal(t, defaults.DetailPath, got.DetailPath)
	assert.Equal(t, defaults.TileSize, got.TileSize)
}

func TestLoadKeepsEmptyCategoriesForValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"categories": [], "tileSize": -8}`), 0o600))

	got := Load(path)
	assert.Empty(t, got.Categories)
	assert.ErrorIs(t, got.Validate(), palette.ErrInvalidConfig)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	want := palette.DefaultConfig()
	want.Title = "Sunset"
	want.TileCount = 24
	want.Categories = []string{"A", "B"}

	require.NoError(t, Save(path, want))
	assert.Equal(t, want, Load(path))
}

func TestApplyEnv(t *testing.T) {
	env := envMap(map[string]string{
		"SWATCH_TITLE":        "Env Grid",
		"SWATCH_TILE_COUNT":   "30",
		"SWATCH_ANCHOR_START": "#111111",
		"SWATCH_ANCHOR_END":   "#eeeeee",
	})

	got, err := ApplyEnv(palette.DefaultConfig(), env)
	require.NoError(t, err)

	assert.Equal(t, "Env Grid", got.Title)
	assert.Equal(t, 30, got.TileCount)
	assert.Equal(t, "#111111", got.Anchors.Start)
	assert.Equal(t, palette.DefaultConfig().Anchors.Mid, got.Anchors.Mid)
	assert.Equal(t, "#eeeeee", got.Anchors.End)
}

func TestApplyEnvBadCount(t *testing.T) {
	_, err := ApplyEnv(palette.DefaultConfig(), envMap(map[string]string{"SWATCH_TILE_COUNT": "lots"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SWATCH_TILE_COUNT")
}

func TestSeed(t *testing.T) {
	_, ok, err := Seed(envMap(nil))
	require.NoError(t, err)
	assert.False(t, ok)

	seed, ok, err := Seed(envMap(map[string]string{"SWATCH_SEED": "77"}))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(77), seed)

	_, _, err = Seed(envMap(map[string]string{"SWATCH_SEED": "-1"}))
	assert.Error(t, err)
}
