package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/rangoli/internal/app"
	"github.com/ayusman/rangoli/internal/canvas"
	"github.com/ayusman/rangoli/internal/config"
	"github.com/ayusman/rangoli/internal/detector"
	"github.com/ayusman/rangoli/internal/export"
	"github.com/ayusman/rangoli/internal/server"
	"github.com/ayusman/rangoli/internal/store"
)

func main() {
	fmt.Println("Rangoli - Webcam Air Drawing")

	cfg := config.Load()

	dataDir := cfg.DataDir
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}
		dataDir = filepath.Join(homeDir, ".rangoli")
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dataDir, "rangoli.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Persisted settings fill in whatever the environment left unset.
	if stored, err := st.Settings().All(); err == nil {
		cfg.ApplyStored(stored)
	}

	palette := canvas.DefaultPalette()
	if cfg.PaletteSpec != "" {
		p, err := canvas.ParsePalette(cfg.PaletteSpec)
		if err != nil {
			log.Fatalf("Invalid RANGOLI_PALETTE: %v", err)
		}
		palette = p
	}

	exporter, err := export.New(filepath.Join(dataDir, "snapshots"))
	if err != nil {
		log.Fatalf("Failed to create snapshot directory: %v", err)
	}

	tracker, err := detector.NewHandTracker(detector.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to start hand tracking: %v", err)
	}

	var hub *server.Hub
	if cfg.ServerEnabled() {
		hub = server.NewHub()

		webDir := findWebDir()
		if webDir != "" {
			fmt.Printf("Serving static files from: %s\n", webDir)
		}

		srv := server.New(server.Config{
			StaticDir: webDir,
			Store:     st,
			Hub:       hub,
			Palette:   palette,
		})

		go func() {
			fmt.Printf("Viewer listening on %s\n", cfg.Addr)
			if err := srv.ListenAndServe(cfg.Addr); err != nil {
				log.Printf("Viewer server failed: %v", err)
			}
		}()
	}

	application, err := app.New(app.Config{
		Settings: cfg,
		Palette:  palette,
		Detector: tracker,
		Store:    st,
		Hub:      hub,
		Exporter: exporter,
	})
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Close()

	if err := application.Run(); err != nil {
		log.Fatalf("Drawing loop failed: %v", err)
	}
}

// findWebDir searches for the viewer's web directory in common
// locations. It checks "web", "../web", "../../web", and
// ~/.rangoli/web, returning the first existing directory or an empty
// string if none is found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".rangoli", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
