package app

import "gocv.io/x/gocv"

// Display shows composed frames and polls for key input. The real
// implementation is an OpenCV window; tests use MockDisplay.
type Display interface {
	// Show presents one frame.
	Show(frame gocv.Mat)

	// WaitKey polls for a pressed key, waiting at most delay
	// milliseconds. Returns -1 when no key was pressed.
	WaitKey(delay int) int

	// Close releases the display.
	Close() error
}

// windowDisplay renders frames into a gocv window.
type windowDisplay struct {
	window *gocv.Window
}

// NewWindowDisplay opens an OpenCV window with the given title.
func NewWindowDisplay(title string) Display {
	return &windowDisplay{window: gocv.NewWindow(title)}
}

func (d *windowDisplay) Show(frame gocv.Mat) {
	d.window.IMShow(frame)
}

func (d *windowDisplay) WaitKey(delay int) int {
	return d.window.WaitKey(delay)
}

func (d *windowDisplay) Close() error {
	return d.window.Close()
}
