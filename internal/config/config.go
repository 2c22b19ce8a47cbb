// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"
)

// Defaults for the drawing surface and pipeline.
const (
	DefaultCameraID        = 0
	DefaultWidth           = 640
	DefaultHeight          = 480
	DefaultStripHeight     = 50
	DefaultThickness       = 5
	DefaultIdleFPS         = 5
	DefaultActiveFPS       = 15
	DefaultMotionThreshold = 1.0
	DefaultAddr            = ":8080"
)

// Config holds all runtime settings for the application.
// Zero values are replaced by defaults in Load.
type Config struct {
	// CameraID is the capture device index passed to OpenCV.
	CameraID int

	// Width and Height are the frame and canvas dimensions in pixels.
	Width  int
	Height int

	// StripHeight is the height of the palette strip band at the top
	// of the display, in pixels.
	StripHeight int

	// Thickness is the stroke thickness in pixels. The erase radius is
	// derived from it (2x).
	Thickness int

	// Mirror flips frames horizontally before processing so the display
	// behaves like a mirror.
	Mirror bool

	// PaletteSpec optionally overrides the built-in palette, formatted
	// as "Name=#rrggbb,Name=#rrggbb,...". Empty means the default palette.
	PaletteSpec string

	// IdleFPS and ActiveFPS are the frame-rate tiers selected by motion
	// detection. Detection still runs on every processed frame.
	IdleFPS   int
	ActiveFPS int

	// MotionThreshold is the percentage of changed pixels that counts
	// as motion.
	MotionThreshold float64

	// Addr is the listen address for the viewer server.
	// The value "off" disables the server.
	Addr string

	// DataDir is where the database and snapshots live.
	// Empty means ~/.rangoli, resolved by the caller.
	DataDir string

	// StartColor names the palette color to activate at startup.
	// Empty means the first palette entry. Set from persisted settings,
	// not from the environment.
	StartColor string
}

// Load builds a Config from the environment, falling back to defaults
// for unset or unparseable values.
func Load() *Config {
	return &Config{
		CameraID:        getEnvInt("RANGOLI_CAMERA_ID", DefaultCameraID),
		Width:           getEnvInt("RANGOLI_WIDTH", DefaultWidth),
		Height:          getEnvInt("RANGOLI_HEIGHT", DefaultHeight),
		StripHeight:     getEnvInt("RANGOLI_STRIP_HEIGHT", DefaultStripHeight),
		Thickness:       getEnvInt("RANGOLI_THICKNESS", DefaultThickness),
		Mirror:          getEnvBool("RANGOLI_MIRROR", true),
		PaletteSpec:     getEnv("RANGOLI_PALETTE", ""),
		IdleFPS:         getEnvInt("RANGOLI_IDLE_FPS", DefaultIdleFPS),
		ActiveFPS:       getEnvInt("RANGOLI_ACTIVE_FPS", DefaultActiveFPS),
		MotionThreshold: getEnvFloat("RANGOLI_MOTION_THRESHOLD", DefaultMotionThreshold),
		Addr:            getEnv("RANGOLI_ADDR", DefaultAddr),
		DataDir:         getEnv("RANGOLI_DATA_DIR", ""),
	}
}

// ServerEnabled reports whether the viewer server should be started.
func (c *Config) ServerEnabled() bool {
	return c.Addr != "" && c.Addr != "off"
}

// ApplyStored overlays persisted settings onto c. The environment wins:
// a stored value is applied only when the corresponding variable is
// unset. Recognized keys are "active_color", "thickness", and "mirror";
// anything else is ignored, as are unparseable values.
func (c *Config) ApplyStored(stored map[string]string) {
	if v, ok := stored["active_color"]; ok && v != "" {
		c.StartColor = v
	}

	if _, set := os.LookupEnv("RANGOLI_THICKNESS"); !set {
		if v, ok := stored["thickness"]; ok {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				c.Thickness = n
			}
		}
	}

	if _, set := os.LookupEnv("RANGOLI_MIRROR"); !set {
		if v, ok := stored["mirror"]; ok {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Mirror = b
			}
		}
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f <= 0 {
		return defaultVal
	}
	return f
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
