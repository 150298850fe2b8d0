// Package preview prints a palette as a block of colored cells in the
// terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swatch-grid/pkg/palette"
	"swatch-grid/pkg/sharedTypes"
)

const landmarkMark = "*"

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// Cell renders one tile: its ordinal on its own background color
func Cell(t sharedTypes.Tile) string {
	label := fmt.Sprintf("%03d", t.Ordinal)
	if t.Landmark {
		label += landmarkMark
	} else {
		label += " "
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(t.Hex)).
		Foreground(lipgloss.Color(t.TextHex)).
		Padding(0, 1).
		Render(label)
}

// Render lays the palette out in rows of columns cells, followed by a
// legend for the landmark and the disclosure tile
func Render(title string, pal palette.Palette, columns int) string {
	if columns < 1 {
		columns = 1
	}

	var rows []string
	for start := 0; start < len(pal.Tiles); start += columns {
		end := min(start+columns, len(pal.Tiles))

		cells := make([]string, 0, end-start)
		for _, t := range pal.Tiles[start:end] {
			cells = append(cells, Cell(t))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")

	if len(pal.Tiles) == 0 {
		return b.String()
	}

	lm := pal.Landmark()
	b.WriteString(faintStyle.Render(fmt.Sprintf("%s landmark %s -> %s", landmarkMark, lm.Label, lm.Href)))
	b.WriteString("\n")

	in := pal.Interests()
	b.WriteString(faintStyle.Render(fmt.Sprintf("  interests %s: %s", in.Label, strings.Join(in.Categories, ", "))))
	b.WriteString("\n")

	return b.String()
}
