// Package app owns the drawing application: the camera, the canvas, and
// the synchronous frame loop that connects them.
package app

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ayusman/rangoli/internal/canvas"
	"github.com/ayusman/rangoli/internal/capture"
	"github.com/ayusman/rangoli/internal/config"
	"github.com/ayusman/rangoli/internal/detector"
	"github.com/ayusman/rangoli/internal/export"
	"github.com/ayusman/rangoli/internal/router"
	"github.com/ayusman/rangoli/internal/server"
	"github.com/ayusman/rangoli/internal/store"
)

// IdleTimeout is how long the scene must stay still before the loop
// drops back to the idle frame rate. An in-progress stroke counts as
// activity, so a slow, steady hand never starves the loop.
const IdleTimeout = 2 * time.Second

// Config wires an App together. Settings must be non-nil; Detector is
// required before Run. Store, Hub, and Exporter are optional and switch
// off session recording, the viewer feed, and snapshots when nil.
type Config struct {
	Settings *config.Config
	Palette  canvas.Palette
	Detector detector.Detector
	Store    *store.Store
	Hub      *server.Hub
	Exporter *export.Exporter
}

// App holds the application context. Everything here is owned by the
// goroutine that calls Run; nothing is shared except through the Hub
// and the Store, which are safe on their own.
type App struct {
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	canvas     *canvas.Canvas
	router     *router.Router
	compositor *canvas.Compositor
	store      *store.Store
	hub        *server.Hub
	exporter   *export.Exporter
	display    Display

	mirror    bool
	idleFPS   int
	activeFPS int
}

// New creates an App from the given configuration. Zero-valued settings
// fall back to package config defaults; a persisted start color that no
// longer names a palette entry is logged and ignored.
func New(cfg Config) (*App, error) {
	settings := cfg.Settings
	if settings == nil {
		return nil, errors.New("app: Settings must not be nil")
	}

	palette := cfg.Palette
	if len(palette) == 0 {
		palette = canvas.DefaultPalette()
	}

	width := settings.Width
	if width <= 0 {
		width = config.DefaultWidth
	}
	height := settings.Height
	if height <= 0 {
		height = config.DefaultHeight
	}
	strip := settings.StripHeight
	if strip <= 0 {
		strip = config.DefaultStripHeight
	}
	thickness := settings.Thickness
	if thickness <= 0 {
		thickness = config.DefaultThickness
	}

	c, err := canvas.New(canvas.Config{
		Width:       width,
		Height:      height,
		StripHeight: strip,
		Thickness:   thickness,
		Palette:     palette,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create canvas: %w", err)
	}

	if settings.StartColor != "" {
		if err := c.SetColorByName(settings.StartColor); err != nil {
			log.Printf("Ignoring stored color: %v", err)
		}
	}

	threshold := settings.MotionThreshold
	if threshold <= 0 {
		threshold = config.DefaultMotionThreshold
	}
	idleFPS := settings.IdleFPS
	if idleFPS <= 0 {
		idleFPS = config.DefaultIdleFPS
	}
	activeFPS := settings.ActiveFPS
	if activeFPS <= 0 {
		activeFPS = config.DefaultActiveFPS
	}

	return &App{
		camera:     capture.NewCamera(settings.CameraID, width, height),
		motion:     capture.NewMotionDetector(threshold),
		detector:   cfg.Detector,
		canvas:     c,
		router:     router.New(c),
		compositor: canvas.NewCompositor(),
		store:      cfg.Store,
		hub:        cfg.Hub,
		exporter:   cfg.Exporter,
		mirror:     settings.Mirror,
		idleFPS:    idleFPS,
		activeFPS:  activeFPS,
	}, nil
}

// SetDetector replaces the hand detector. Call before Run.
func (a *App) SetDetector(d detector.Detector) {
	a.detector = d
}

// SetCamera replaces the camera. Call before Run.
func (a *App) SetCamera(c capture.Camera) {
	a.camera = c
}

// SetDisplay replaces the display. Call before Run; when unset, Run
// opens a window.
func (a *App) SetDisplay(d Display) {
	a.display = d
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	return a.detector
}

// Canvas returns the drawing surface.
func (a *App) Canvas() *canvas.Canvas {
	return a.canvas
}

// Close releases the camera, detectors, canvas, and display. Call after
// Run has returned.
func (a *App) Close() {
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	a.canvas.Close()

	if a.display != nil {
		if err := a.display.Close(); err != nil {
			log.Printf("Error closing display: %v", err)
		}
	}
}
