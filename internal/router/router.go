// Package router turns classified gestures into canvas actions.
//
// A Router is owned by the capture loop and is not safe for
// concurrent use; the loop is the only writer.
package router

import (
	"image"

	"github.com/ayusman/rangoli/internal/canvas"
	"github.com/ayusman/rangoli/internal/gesture"
)

// Op identifies the action a frame was routed to.
type Op int

const (
	// OpNone means the frame changed nothing on the canvas.
	OpNone Op = iota
	// OpSelect means the active color changed.
	OpSelect
	// OpAnchor means a stroke started; nothing was drawn yet.
	OpAnchor
	// OpDraw means a stroke segment was drawn.
	OpDraw
	// OpErase means an erase circle was stamped.
	OpErase
)

// String returns a stable lower-case name for the op.
func (o Op) String() string {
	switch o {
	case OpSelect:
		return "select"
	case OpAnchor:
		return "anchor"
	case OpDraw:
		return "draw"
	case OpErase:
		return "erase"
	default:
		return "none"
	}
}

// State is the router's stroke state after the last routed frame.
type State struct {
	// Drawing reports whether a stroke is in progress.
	Drawing bool
	// Prev is the last stroke point, or the canvas sentinel when
	// no stroke is in progress.
	Prev image.Point
}

// Router dispatches one gesture per frame onto a canvas.
type Router struct {
	canvas  *canvas.Canvas
	strip   int
	prev    image.Point
	drawing bool
}

// New returns a router bound to c. The palette strip height is
// taken from the canvas.
func New(c *canvas.Canvas) *Router {
	return &Router{
		canvas: c,
		strip:  c.StripHeight(),
		prev:   canvas.NoPoint,
	}
}

// Route applies one frame's gesture at the given cursor position.
//
// Frames without a hand break the stroke. A cursor inside the
// palette strip always selects a color, whatever the gesture. Below
// the strip a peace sign selects by cursor x, an open hand erases,
// and anything else extends the stroke.
func (r *Router) Route(kind gesture.Kind, cursor image.Point) Op {
	if kind == gesture.Unknown {
		r.reset()
		return OpNone
	}

	if cursor.Y < r.strip {
		changed := r.canvas.SelectColor(cursor.X)
		r.reset()
		if changed {
			return OpSelect
		}
		return OpNone
	}

	switch kind {
	case gesture.PeaceSign:
		changed := r.canvas.SelectColor(cursor.X)
		r.reset()
		if changed {
			return OpSelect
		}
		return OpNone

	case gesture.OpenHand:
		r.canvas.Erase(cursor)
		r.reset()
		return OpErase

	default:
		prev := r.prev
		r.canvas.DrawSegment(prev, cursor)
		r.prev = cursor
		r.drawing = true
		if prev == canvas.NoPoint {
			return OpAnchor
		}
		return OpDraw
	}
}

// State returns the current stroke state.
func (r *Router) State() State {
	return State{Drawing: r.drawing, Prev: r.prev}
}

func (r *Router) reset() {
	r.prev = canvas.NoPoint
	r.drawing = false
}
