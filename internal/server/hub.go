package server

import "sync"

// Event is one frame's outcome as published to viewers.
type Event struct {
	SessionID    string `json:"session_id"`
	Gesture      string `json:"gesture"`
	Op           string `json:"op"`
	CursorX      int    `json:"cursor_x"`
	CursorY      int    `json:"cursor_y"`
	Color        string `json:"color"`
	Drawing      bool   `json:"drawing"`
	MotionActive bool   `json:"motion_active"`
	FPS          int    `json:"fps"`
	Frames       int    `json:"frames"`
	Strokes      int    `json:"strokes"`
	Segments     int    `json:"segments"`
	Erases       int    `json:"erases"`
	ColorChanges int    `json:"color_changes"`
	Snapshots    int    `json:"snapshots"`
	Timestamp    int64  `json:"timestamp"`
}

// Hub hands the drawing loop's latest output to HTTP viewers. The loop
// publishes after each frame; any number of handlers read concurrently.
type Hub struct {
	mu    sync.RWMutex
	frame []byte
	event Event
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{}
}

// PublishFrame stores a copy of the composited JPEG frame.
func (h *Hub) PublishFrame(jpeg []byte) {
	buf := make([]byte, len(jpeg))
	copy(buf, jpeg)

	h.mu.Lock()
	h.frame = buf
	h.mu.Unlock()
}

// Frame returns the latest composited JPEG, or nil before the first
// publish. Callers must not modify the returned slice.
func (h *Hub) Frame() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.frame
}

// PublishEvent stores the latest frame outcome.
func (h *Hub) PublishEvent(ev Event) {
	h.mu.Lock()
	h.event = ev
	h.mu.Unlock()
}

// Event returns the latest published event.
func (h *Hub) Event() Event {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.event
}
