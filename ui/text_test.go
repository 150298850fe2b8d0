package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"swatch-grid/pkg/colorEngine"
)

func TestRenderTextWithoutFontDrawsNothing(t *testing.T) {
	assert.NoError(t, RenderText(nil, "001", 0, 0, "#ffffff", nil))
	assert.NoError(t, RenderText(nil, "001", 0, 0, "not a color", nil))
}

func TestTextSizeWithoutFont(t *testing.T) {
	w, h := TextSize(nil, "anything")
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestHexColor(t *testing.T) {
	c, err := HexColor("#247ba0")
	require.NoError(t, err)
	assert.Equal(t, sdl.Color{R: 0x24, G: 0x7b, B: 0xa0, A: 255}, c)

	_, err = HexColor("#24")
	assert.ErrorIs(t, err, colorEngine.ErrFormat)
}
