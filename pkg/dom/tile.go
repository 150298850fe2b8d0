package dom

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"swatch-grid/pkg/sharedTypes"
)

const (
	classTile       = "swatch"
	classLandmark   = "swatch--landmark"
	classInterests  = "swatch--interests"
	classLabel      = "swatch-label"
	classMarker     = "swatch-marker"
	classLink       = "swatch-link"
	classDisclosure = "swatch-disclosure"

	landmarkMarker = "★"
)

// TileNode builds the element for a single tile
func TileNode(t sharedTypes.Tile) *html.Node {
	class := classTile
	if t.Landmark {
		class += " " + classLandmark
	}
	if t.HasDisclosure() {
		class += " " + classInterests
	}

	div := element(atom.Div,
		"class", class,
		"role", "listitem",
		"aria-label", t.Description,
		"title", t.Description,
		"data-index", strconv.Itoa(t.Index),
		"style", fmt.Sprintf("background-color:%s;color:%s", t.Hex, t.TextHex),
	)

	// the landmark's whole face is the link target
	body := div
	if t.Landmark {
		body = element(atom.A, "class", classLink, "href", t.Href)
		div.AppendChild(body)
	}

	label := element(atom.Span, "class", classLabel)
	label.AppendChild(text(t.Label))
	body.AppendChild(label)

	if t.Landmark {
		marker := element(atom.Span, "class", classMarker, "aria-hidden", "true")
		marker.AppendChild(text(landmarkMarker))
		body.AppendChild(marker)
	}

	if t.HasDisclosure() {
		list := element(atom.Ul, "class", classDisclosure, "aria-label", "Interests")
		for _, c := range t.Categories {
			li := element(atom.Li)
			li.AppendChild(text(c))
			list.AppendChild(li)
		}
		body.AppendChild(list)
	}

	return div
}
