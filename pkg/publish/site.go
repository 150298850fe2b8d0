package publish

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"swatch-grid/pkg/dom"
	"swatch-grid/pkg/palette"
)

// File is one rendered page of the static site
type File struct {
	Name string
	Body []byte
}

// RenderSite renders the grid page and the landmark detail page for a
// single palette build
func RenderSite(cfg palette.Config, seed uint64) ([]File, error) {
	pal, err := palette.Build(cfg, palette.NewRand(seed))
	if err != nil {
		return nil, err
	}

	index, err := dom.RenderPage(cfg, pal)
	if err != nil {
		return nil, err
	}
	detail, err := dom.RenderDetail(cfg)
	if err != nil {
		return nil, err
	}

	return []File{
		{Name: dom.IndexPath, Body: index},
		{Name: cfg.DetailFile(), Body: detail},
	}, nil
}

// WriteDir writes the rendered site into dir, creating it when necessary.
// It returns the paths written.
func WriteDir(dir string, cfg palette.Config, seed uint64) ([]string, error) {
	files, err := RenderSite(cfg, seed)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, f.Body, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	log.Printf("WriteDir completed | dir=%s | files=%d | seed=%d", dir, len(paths), seed)
	return paths, nil
}
