package gridserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"swatch-grid/pkg/palette"
)

const shutdownTimeout = 5 * time.Second

// WebServer serves the swatch grid page and its detail view
type WebServer struct {
	addr    string
	cfg     palette.Config
	newSeed func() uint64 // Seed for requests without ?seed=
}

// NewWebServer creates a new web server instance. newSeed is called once
// per page load that does not pin a seed.
func NewWebServer(addr string, cfg palette.Config, newSeed func() uint64) *WebServer {
	return &WebServer{
		addr:    addr,
		cfg:     cfg,
		newSeed: newSeed,
	}
}

// Handler returns the request multiplexer with every route registered.
// cfg must have passed Validate so the detail route cannot collide with
// the fixed ones.
func (ws *WebServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", ws.handleRoot)
	mux.HandleFunc("/"+ws.cfg.DetailFile(), ws.handleDetail)
	mux.HandleFunc("/"+palette.PaletteJSONPath, ws.handlePalette)
	mux.HandleFunc("/"+palette.QRPath, ws.handleQR)
	mux.HandleFunc("/"+palette.HealthPath, ws.handleHealth)

	return mux
}

// Run listens on the configured address and serves until ctx is done
func (ws *WebServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", ws.addr, err)
	}
	return ws.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully. It
// returns nil after a clean shutdown.
func (ws *WebServer) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:      ws.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting swatch grid web server on %s", ln.Addr())
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("web server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown web server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	log.Println("Swatch grid web server stopped")
	return nil
}

// GetURL returns the full URL of the grid page
func (ws *WebServer) GetURL() string {
	host := ws.addr
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}
	return fmt.Sprintf("http://%s/", host)
}
