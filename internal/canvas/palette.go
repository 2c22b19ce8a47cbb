package canvas

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Swatch is one named palette color.
type Swatch struct {
	Name  string     `json:"name"`
	Color color.RGBA `json:"-"`
}

// Hex returns the swatch color as a "#rrggbb" string.
func (sw Swatch) Hex() string {
	c := colorful.Color{
		R: float64(sw.Color.R) / 255.0,
		G: float64(sw.Color.G) / 255.0,
		B: float64(sw.Color.B) / 255.0,
	}
	return c.Hex()
}

// Palette is the ordered list of selectable colors. The order is fixed for
// the process lifetime and determines the strip segment layout.
type Palette []Swatch

// DefaultPalette returns the built-in palette: Green, Red, Blue, Yellow,
// Black, in that order.
func DefaultPalette() Palette {
	return Palette{
		{Name: "Green", Color: color.RGBA{G: 255, A: 255}},
		{Name: "Red", Color: color.RGBA{R: 255, A: 255}},
		{Name: "Blue", Color: color.RGBA{B: 255, A: 255}},
		{Name: "Yellow", Color: color.RGBA{R: 255, G: 255, A: 255}},
		{Name: "Black", Color: color.RGBA{A: 255}},
	}
}

// ParsePalette parses a palette override of the form
// "Name=#rrggbb,Name=#rrggbb,...".
func ParsePalette(spec string) (Palette, error) {
	var p Palette

	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, hex, ok := strings.Cut(entry, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("palette entry %q: want Name=#rrggbb", entry)
		}

		c, err := colorful.Hex(strings.TrimSpace(hex))
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", entry, err)
		}

		r, g, b := c.RGB255()
		p = append(p, Swatch{
			Name:  strings.TrimSpace(name),
			Color: color.RGBA{R: r, G: g, B: b, A: 255},
		})
	}

	if len(p) == 0 {
		return nil, fmt.Errorf("palette spec %q has no entries", spec)
	}

	return p, nil
}

// SegmentWidth returns the width in pixels of one strip segment for a
// surface of the given width, by integer division.
func (p Palette) SegmentWidth(width int) int {
	if len(p) == 0 {
		return 0
	}
	return width / len(p)
}

// IndexAt maps a horizontal pixel coordinate to a palette index.
// Returns -1 for coordinates past the last segment (the integer-division
// remainder) or outside the surface.
func (p Palette) IndexAt(x, width int) int {
	seg := p.SegmentWidth(width)
	if seg <= 0 || x < 0 {
		return -1
	}

	i := x / seg
	if i >= len(p) {
		return -1
	}
	return i
}

// IndexOf returns the index of the named swatch, or -1 if absent.
// Names match case-insensitively.
func (p Palette) IndexOf(name string) int {
	for i, sw := range p {
		if strings.EqualFold(sw.Name, name) {
			return i
		}
	}
	return -1
}
