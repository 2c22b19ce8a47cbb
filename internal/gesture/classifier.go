// Package gesture classifies hand poses into drawing commands.
package gesture

import (
	"image"

	"github.com/ayusman/rangoli/internal/detector"
)

// Kind identifies the recognized hand pose.
type Kind int

const (
	// Unknown means no hand was detected this frame.
	Unknown Kind = iota
	// Point is the drawing pose: any detected hand that is neither a
	// peace sign nor an open hand.
	Point
	// PeaceSign selects a color: index and middle fingertips raised
	// close together.
	PeaceSign
	// OpenHand erases: a relaxed hand with the index fingertip below the
	// middle fingertip and the thumb tip below the index fingertip.
	OpenHand
)

// String returns the wire name of the gesture.
func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case PeaceSign:
		return "peace_sign"
	case OpenHand:
		return "open_hand"
	default:
		return "none"
	}
}

// PeaceGapX is the maximum normalized horizontal distance between the index
// and middle fingertips for a peace sign.
const PeaceGapX = 0.1

// Classify maps one hand's landmarks to a gesture. The checks run as a
// single ordered match: peace sign first, then open hand, else point.
// A peace sign must never be misread as an open hand.
//
// The open-hand rule tests only the vertical order of three points
// (index below middle, thumb below index, y increasing downward). It is
// kept as a literal threshold rule; finger spread is not considered.
func Classify(hand *detector.HandLandmarks) Kind {
	if hand == nil {
		return Unknown
	}

	index := hand.Points[detector.IndexTip]
	middle := hand.Points[detector.MiddleTip]
	thumb := hand.Points[detector.ThumbTip]

	switch {
	case index.Y < middle.Y && abs(index.X-middle.X) < PeaceGapX:
		return PeaceSign
	case index.Y > middle.Y && thumb.Y > index.Y:
		return OpenHand
	default:
		return Point
	}
}

// Cursor returns the index fingertip scaled to pixel coordinates for a
// frame of the given size, clamped to the frame bounds. The same cursor
// drives drawing, erasing, and color selection.
func Cursor(hand *detector.HandLandmarks, width, height int) image.Point {
	tip := hand.Points[detector.IndexTip]

	x := clamp(int(tip.X*float64(width)), 0, width-1)
	y := clamp(int(tip.Y*float64(height)), 0, height-1)

	return image.Pt(x, y)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
