// Package canvas owns the persistent drawing surface: the raster buffer,
// the color palette, and the compositing of canvas and camera frames.
package canvas

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// NoPoint is the sentinel for "no previous cursor position". Drawing to or
// from it is a no-op.
var NoPoint = image.Pt(-1, -1)

// Background is the canvas background color. Erase repaints with it.
var Background = color.RGBA{A: 255}

// Config describes the drawing surface.
type Config struct {
	Width       int
	Height      int
	StripHeight int
	Thickness   int
	Palette     Palette
}

// Canvas is the persistent raster the user draws on, plus the current
// color selection. The buffer is mutated in place and never resized.
// It is exclusively owned by the frame loop and takes no locks.
type Canvas struct {
	mat       gocv.Mat
	palette   Palette
	current   int
	thickness int
	width     int
	height    int
	strip     int
}

// New creates a canvas with the buffer initialized to the background color.
func New(cfg Config) (*Canvas, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}
	if len(cfg.Palette) == 0 {
		return nil, fmt.Errorf("palette must not be empty")
	}
	if cfg.Thickness <= 0 {
		return nil, fmt.Errorf("invalid stroke thickness %d", cfg.Thickness)
	}
	if cfg.StripHeight <= 0 || cfg.StripHeight >= cfg.Height {
		return nil, fmt.Errorf("invalid strip height %d for canvas height %d", cfg.StripHeight, cfg.Height)
	}

	return &Canvas{
		mat:       gocv.NewMatWithSize(cfg.Height, cfg.Width, gocv.MatTypeCV8UC3),
		palette:   cfg.Palette,
		current:   0,
		thickness: cfg.Thickness,
		width:     cfg.Width,
		height:    cfg.Height,
		strip:     cfg.StripHeight,
	}, nil
}

// Close releases the raster buffer.
func (c *Canvas) Close() {
	c.mat.Close()
}

// SelectColor maps a horizontal pixel coordinate to a palette entry by
// equal-width strip segments and makes it the current color. Coordinates
// past the last segment are ignored. Reports whether the selection changed.
func (c *Canvas) SelectColor(x int) bool {
	i := c.palette.IndexAt(x, c.width)
	if i < 0 || i == c.current {
		return false
	}
	c.current = i
	return true
}

// SetColorByName selects a palette entry by name. Used to restore a
// persisted selection at startup.
func (c *Canvas) SetColorByName(name string) error {
	i := c.palette.IndexOf(name)
	if i < 0 {
		return fmt.Errorf("unknown palette color %q", name)
	}
	c.current = i
	return nil
}

// DrawSegment rasterizes a straight line of the configured thickness in the
// current color. No-op if either endpoint is the NoPoint sentinel.
func (c *Canvas) DrawSegment(p0, p1 image.Point) {
	if p0 == NoPoint || p1 == NoPoint {
		return
	}
	gocv.Line(&c.mat, p0, p1, c.Color().Color, c.thickness)
}

// Erase rasterizes a filled background circle of radius twice the stroke
// thickness, centered at p. Independent of the current color.
func (c *Canvas) Erase(p image.Point) {
	gocv.Circle(&c.mat, p, c.thickness*2, Background, -1)
}

// Clear repaints the whole buffer to the background color.
func (c *Canvas) Clear() {
	c.mat.SetTo(gocv.NewScalar(
		float64(Background.B), float64(Background.G), float64(Background.R), 0,
	))
}

// Color returns the active swatch.
func (c *Canvas) Color() Swatch {
	return c.palette[c.current]
}

// ColorIndex returns the active palette index.
func (c *Canvas) ColorIndex() int {
	return c.current
}

// Palette returns the ordered palette.
func (c *Canvas) Palette() Palette {
	return c.palette
}

// Thickness returns the stroke thickness in pixels.
func (c *Canvas) Thickness() int {
	return c.thickness
}

// StripHeight returns the height of the palette strip band.
func (c *Canvas) StripHeight() int {
	return c.strip
}

// Width returns the buffer width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the buffer height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Mat exposes the raster buffer for compositing and export.
// Callers must not close or retain it.
func (c *Canvas) Mat() gocv.Mat {
	return c.mat
}
