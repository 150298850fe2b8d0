package gridserver

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/skip2/go-qrcode"

	"swatch-grid/pkg/dom"
	"swatch-grid/pkg/palette"
)

const qrSize = 256

// handleRoot serves the grid page with a freshly built palette
func (ws *WebServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/"+palette.IndexPath {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pal, ok := ws.buildPalette(w, r)
	if !ok {
		return
	}

	page, err := dom.RenderPage(ws.cfg, pal)
	if err != nil {
		log.Printf("Failed to render grid page: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

// handleDetail serves the landmark tile's detail view
func (ws *WebServer) handleDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page, err := dom.RenderDetail(ws.cfg)
	if err != nil {
		log.Printf("Failed to render detail page: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

// handlePalette returns the tile descriptors as JSON
func (ws *WebServer) handlePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pal, ok := ws.buildPalette(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pal)
}

// handleQR returns a PNG QR code pointing at the grid page
func (ws *WebServer) handleQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	url := fmt.Sprintf("http://%s/", r.Host)
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		log.Printf("Failed to generate QR code for %s: %v", url, err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// StatusResponse is the health check body
type StatusResponse struct {
	Status    string `json:"status"`
	TileCount int    `json:"tile_count"`
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StatusResponse{Status: "ok", TileCount: ws.cfg.TileCount})
}

// buildPalette builds the palette for one page load. It writes the error
// response itself and reports false on failure.
func (ws *WebServer) buildPalette(w http.ResponseWriter, r *http.Request) (palette.Palette, bool) {
	seed := ws.newSeed()
	if v := r.URL.Query().Get("seed"); v != "" {
		s, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			http.Error(w, "Invalid seed", http.StatusBadRequest)
			return palette.Palette{}, false
		}
		seed = s
	}

	pal, err := palette.Build(ws.cfg, palette.NewRand(seed))
	if err != nil {
		log.Printf("Failed to build palette: %v", err)
		http.Error(w, fmt.Sprintf("Failed to build palette: %v", err), http.StatusInternalServerError)
		return palette.Palette{}, false
	}

	return pal, true
}
