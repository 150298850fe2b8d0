package sharedTypes

// Tile is one swatch in the grid, ready for any renderer
type Tile struct {
	Index       int      `json:"index"`
	Ordinal     int      `json:"ordinal"`
	Hex         string   `json:"hex"`
	TextHex     string   `json:"textHex"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Landmark    bool     `json:"landmark,omitempty"`
	Href        string   `json:"href,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

// HasDisclosure reports whether the tile reveals a category list
func (t Tile) HasDisclosure() bool {
	return len(t.Categories) > 0
}
