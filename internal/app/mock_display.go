package app

import "gocv.io/x/gocv"

// MockDisplay is a test implementation of Display. It counts shown
// frames and plays back a scripted key sequence, one key per WaitKey
// call. After the script runs out it returns the quit key, so a loop
// driven by it always terminates.
type MockDisplay struct {
	keys   []int
	index  int
	shown  int
	closed bool
}

// NewMockDisplay creates a MockDisplay that plays back the given keys.
// Use -1 for frames where no key is pressed.
func NewMockDisplay(keys ...int) *MockDisplay {
	return &MockDisplay{keys: keys}
}

// Show records that a frame was presented.
func (d *MockDisplay) Show(frame gocv.Mat) {
	d.shown++
}

// WaitKey returns the next scripted key.
func (d *MockDisplay) WaitKey(delay int) int {
	if d.index >= len(d.keys) {
		return keyQuit
	}
	k := d.keys[d.index]
	d.index++
	return k
}

// Close marks the display closed.
func (d *MockDisplay) Close() error {
	d.closed = true
	return nil
}

// Shown returns how many frames were presented.
func (d *MockDisplay) Shown() int {
	return d.shown
}

// Closed reports whether Close was called.
func (d *MockDisplay) Closed() bool {
	return d.closed
}
