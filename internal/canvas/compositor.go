package canvas

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

var (
	labelColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// helpText is the one-line key and gesture reference drawn at the bottom
// of the display.
const helpText = "point: draw | peace: color | open hand: erase | s: snapshot | c: clear | q: quit"

// Compositor merges the live camera frame with the canvas and overlays the
// palette strip and help line.
type Compositor struct {
	// FrameWeight and CanvasWeight are the blend weights. Equal weights
	// keep both the camera feed and the drawing readable.
	FrameWeight  float64
	CanvasWeight float64

	// ShowHelp toggles the help line.
	ShowHelp bool
}

// NewCompositor returns a compositor with the standard equal-weight blend.
func NewCompositor() *Compositor {
	return &Compositor{
		FrameWeight:  0.5,
		CanvasWeight: 0.5,
		ShowHelp:     true,
	}
}

// Compose writes the display frame into dst: the blended frame and canvas,
// the palette strip over the top band, and the help line. The strip is
// drawn after blending so its colors stay full strength, and its segment
// layout uses the same integer division as color selection, so the visual
// bands match the hit bands.
func (cp *Compositor) Compose(frame gocv.Mat, c *Canvas, dst *gocv.Mat) {
	gocv.AddWeighted(frame, cp.FrameWeight, c.Mat(), cp.CanvasWeight, 0, dst)

	cp.drawStrip(dst, c)

	if cp.ShowHelp {
		gocv.PutText(dst, helpText, image.Pt(10, c.Height()-10),
			gocv.FontHersheySimplex, 0.5, labelColor, 1)
	}
}

func (cp *Compositor) drawStrip(dst *gocv.Mat, c *Canvas) {
	seg := c.Palette().SegmentWidth(c.Width())
	labelY := c.StripHeight() * 3 / 5

	for i, sw := range c.Palette() {
		x0 := i * seg
		gocv.Rectangle(dst, image.Rect(x0, 0, x0+seg, c.StripHeight()), sw.Color, -1)
		gocv.PutText(dst, sw.Name, image.Pt(x0+10, labelY),
			gocv.FontHersheySimplex, 0.6, labelColor, 2)
	}

	// Outline the active swatch, inset so the border stays inside its segment
	x0 := c.ColorIndex() * seg
	gocv.Rectangle(dst, image.Rect(x0+2, 2, x0+seg-3, c.StripHeight()-3), outlineColor, 2)
}
