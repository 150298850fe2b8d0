package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/veandco/go-sdl2/sdl"

	"swatch-grid/pkg/gridserver"
	"swatch-grid/pkg/palette"
	"swatch-grid/pkg/preview"
	"swatch-grid/pkg/publish"
	"swatch-grid/pkg/settings"
	"swatch-grid/screens/grid"
)

const (
	targetFPS      = 60
	fallbackWidth  = 1280
	fallbackHeight = 800

	defaultListenAddr = ":8080"
	defaultOutDir     = "dist"
	previewColumns    = 10
)

const usage = `usage: swatch-grid [window|serve|build|publish|preview]

  window   open the grid in an SDL2 window (default)
  serve    serve the grid page over HTTP on SWATCH_LISTEN_ADDR
  build    write the grid page and detail page to SWATCH_OUT_DIR
  publish  upload the pages to SWATCH_S3_BUCKET under SWATCH_S3_PREFIX
  preview  print the grid to the terminal`

func main() {
	// SDL2 must stay on the main thread
	runtime.LockOSThread()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	mode := "window"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "window":
		err = runWindow(cfg)
	case "serve":
		err = runServe(cfg)
	case "build":
		err = runBuild(cfg)
	case "publish":
		err = runPublish(cfg)
	case "preview":
		err = runPreview(cfg)
	case "-h", "--help", "help":
		fmt.Println(usage)
		return
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%s failed: %v", mode, err)
	}
}

// loadConfig reads the settings file and applies environment overrides
func loadConfig() (palette.Config, error) {
	path := os.Getenv("SWATCH_SETTINGS")
	if path == "" {
		path = settings.DefaultPath
	}

	cfg, err := settings.ApplyEnv(settings.Load(path), os.Getenv)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// seedSource returns the pinned SWATCH_SEED for every build when set, and a
// time-based seed otherwise
func seedSource() (func() uint64, error) {
	seed, ok, err := settings.Seed(os.Getenv)
	if err != nil {
		return nil, err
	}
	if ok {
		log.Printf("Using fixed seed %d", seed)
		return func() uint64 { return seed }, nil
	}
	return func() uint64 { return uint64(time.Now().UnixNano()) }, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runServe(cfg palette.Config) error {
	newSeed, err := seedSource()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := gridserver.NewWebServer(envOr("SWATCH_LISTEN_ADDR", defaultListenAddr), cfg, newSeed)
	log.Printf("Swatch grid available at %s", server.GetURL())
	return server.Run(ctx)
}

func runBuild(cfg palette.Config) error {
	newSeed, err := seedSource()
	if err != nil {
		return err
	}

	paths, err := publish.WriteDir(envOr("SWATCH_OUT_DIR", defaultOutDir), cfg, newSeed())
	if err != nil {
		return err
	}
	for _, p := range paths {
		log.Printf("Wrote %s", p)
	}
	return nil
}

func runPublish(cfg palette.Config) error {
	newSeed, err := seedSource()
	if err != nil {
		return err
	}

	client, err := publish.NewS3Client()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	keys, err := publish.Publish(ctx, client, cfg, os.Getenv("SWATCH_S3_BUCKET"), os.Getenv("SWATCH_S3_PREFIX"), newSeed())
	if err != nil {
		return err
	}
	for _, k := range keys {
		log.Printf("Uploaded s3://%s/%s", os.Getenv("SWATCH_S3_BUCKET"), k)
	}
	return nil
}

func runPreview(cfg palette.Config) error {
	newSeed, err := seedSource()
	if err != nil {
		return err
	}

	pal, err := palette.Build(cfg, palette.NewRand(newSeed()))
	if err != nil {
		return err
	}

	fmt.Print(preview.Render(cfg.Title, pal, previewColumns))
	return nil
}

func runWindow(cfg palette.Config) error {
	newSeed, err := seedSource()
	if err != nil {
		return err
	}

	if err := initializeSDL2(); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}
	defer func() {
		log.Println("Shutting down SDL2...")
		sdl.Quit()
	}()

	width, height := getDisplayDimensions()
	log.Printf("Starting %s | Resolution: %dx%d", cfg.Title, width, height)

	window, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := createRenderer(window)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer renderer.Destroy()

	screen, err := grid.NewGridScreen(window, renderer, cfg, newSeed)
	if err != nil {
		return err
	}
	defer screen.Close()

	return runLoop(screen)
}

// initializeSDL2 initializes SDL2, trying video drivers in order
func initializeSDL2() error {
	videoDrivers := []string{""} // platform default
	if envDriver := os.Getenv("SDL_VIDEODRIVER"); envDriver != "" {
		log.Printf("Using environment SDL_VIDEODRIVER: %s", envDriver)
		videoDrivers = []string{envDriver, ""}
	}
	if runtime.GOOS == "linux" {
		videoDrivers = append(videoDrivers, "x11", "wayland", "kmsdrm")
	}
	videoDrivers = append(videoDrivers, "software")

	for _, driver := range videoDrivers {
		if driver != "" {
			sdl.SetHint(sdl.HINT_VIDEODRIVER, driver)
		}

		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			log.Printf("SDL2 initialization failed with driver %q: %v", driver, err)
			sdl.Quit()
			continue
		}

		name, _ := sdl.GetCurrentVideoDriver()
		log.Printf("SDL2 successfully initialized with %s driver", name)
		return nil
	}

	return fmt.Errorf("all SDL2 video drivers failed")
}

// getDisplayDimensions returns a window size that fits the first display
func getDisplayDimensions() (int32, int32) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		log.Printf("Warning: Failed to get display mode, using fallback: %v", err)
		return fallbackWidth, fallbackHeight
	}

	return min(displayMode.W*3/4, fallbackWidth), min(displayMode.H*3/4, fallbackHeight)
}

// createRenderer creates an accelerated renderer, falling back to software
func createRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		log.Printf("Hardware acceleration failed, trying software: %v", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, err
		}
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	return renderer, nil
}

// runLoop executes the main SDL2 loop until the window is closed
func runLoop(screen *grid.GridScreen) error {
	frameTime := time.Second / targetFPS
	lastTime := time.Now()

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return nil
			}
		}

		if err := screen.Update(); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		if err := screen.Draw(); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		// Frame rate limiting
		elapsed := time.Since(lastTime)
		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
		lastTime = time.Now()
	}
}
