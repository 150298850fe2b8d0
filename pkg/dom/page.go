package dom

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"swatch-grid/pkg/colorEngine"
	"swatch-grid/pkg/palette"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// IndexPath is the relative path of the grid page, used by the detail
// view's back link
const IndexPath = palette.IndexPath

type pageData struct {
	Title    string
	MountID  string
	TileSize int
}

type detailData struct {
	Title string
	Back  string
}

// RenderPage produces the complete grid document for pal
func RenderPage(cfg palette.Config, pal palette.Palette) ([]byte, error) {
	doc, err := parseTemplate("page.html", pageData{
		Title:    cfg.Title,
		MountID:  cfg.MountID,
		TileSize: cfg.TileSize,
	})
	if err != nil {
		return nil, err
	}

	Mount(doc, cfg.MountID, pal.Tiles)
	return render(doc)
}

// RenderDetail produces the landmark's detail view: the three anchors and
// the gradient between them.
func RenderDetail(cfg palette.Config) ([]byte, error) {
	doc, err := parseTemplate("detail.html", detailData{Title: cfg.Title, Back: backLink(cfg.DetailFile())})
	if err != nil {
		return nil, err
	}

	anchors := []struct{ name, hex string }{
		{"Start", cfg.Anchors.Start},
		{"Mid", cfg.Anchors.Mid},
		{"End", cfg.Anchors.End},
	}
	var cards []*html.Node
	for _, a := range anchors {
		card, err := anchorNode(a.name, a.hex)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	replaceChildren(FindByID(doc, "anchors"), cards...)

	stops := make([]*html.Node, 0, cfg.TileCount)
	for i := 0; i < cfg.TileCount; i++ {
		hex, err := colorEngine.ColorAt(cfg.Anchors, i, cfg.TileCount)
		if err != nil {
			return nil, err
		}
		stops = append(stops, element(atom.Div, "class", "stop", "style", "background-color:"+hex))
	}
	replaceChildren(FindByID(doc, "gradient"), stops...)

	return render(doc)
}

// backLink returns the grid page's path relative to the directory the
// detail page lives in
func backLink(detailFile string) string {
	return strings.Repeat("../", strings.Count(detailFile, "/")) + IndexPath
}

func anchorNode(name, hex string) (*html.Node, error) {
	norm, err := colorEngine.Normalize(hex)
	if err != nil {
		return nil, fmt.Errorf("%s anchor: %w", name, err)
	}
	fg, err := colorEngine.ContrastText(norm)
	if err != nil {
		return nil, err
	}

	n := element(atom.Div,
		"class", "anchor",
		"style", fmt.Sprintf("background-color:%s;color:%s", norm, fg),
	)
	n.AppendChild(text(name + " " + norm))
	return n, nil
}

func parseTemplate(name string, data any) (*html.Node, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to execute %s: %w", name, err)
	}

	doc, err := html.Parse(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return doc, nil
}

func render(doc *html.Node) ([]byte, error) {
	var out bytes.Buffer
	if err := html.Render(&out, doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
