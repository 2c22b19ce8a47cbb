package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It returns either a fixed set of hands or a per-call sequence.
type MockDetector struct {
	hands    []HandLandmarks
	sequence [][]HandLandmarks
	seqIndex int
	err      error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by every Detect call.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
	m.sequence = nil
	m.seqIndex = 0
}

// SetSequence sets per-call detection results. Each Detect call consumes
// one entry; after the sequence is exhausted the last entry repeats.
// An empty entry means "no hand detected" for that frame.
func (m *MockDetector) SetSequence(frames [][]HandLandmarks) {
	m.sequence = frames
	m.seqIndex = 0
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.sequence) > 0 {
		i := m.seqIndex
		if i >= len(m.sequence) {
			i = len(m.sequence) - 1
		} else {
			m.seqIndex++
		}
		return m.sequence[i], nil
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PointingLandmarksAt returns a preset HandLandmarks for a pointing pose
// with the index fingertip at the given normalized position. The index
// finger is extended; the other fingers are curled toward the palm, with
// the middle fingertip well clear of the index horizontally.
func PointingLandmarksAt(x, y float64) HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: x + 0.02, Y: y + 0.45, Z: 0.0}

	// Thumb resting against the curled fingers
	landmarks.Points[ThumbCMC] = Point3D{X: x + 0.09, Y: y + 0.40, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: x + 0.12, Y: y + 0.33, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: x + 0.13, Y: y + 0.28, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: x + 0.13, Y: y + 0.24, Z: 0.0}

	// Index finger extended toward the cursor position
	landmarks.Points[IndexMCP] = Point3D{X: x + 0.01, Y: y + 0.28, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: x + 0.01, Y: y + 0.18, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: x, Y: y + 0.09, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: x, Y: y, Z: 0.0}

	// Middle finger curled, tip offset sideways past the peace-sign gap
	landmarks.Points[MiddleMCP] = Point3D{X: x - 0.04, Y: y + 0.27, Z: -0.02}
	landmarks.Points[MiddlePIP] = Point3D{X: x - 0.05, Y: y + 0.20, Z: -0.05}
	landmarks.Points[MiddleDIP] = Point3D{X: x - 0.08, Y: y + 0.24, Z: -0.04}
	landmarks.Points[MiddleTip] = Point3D{X: x - 0.15, Y: y + 0.20, Z: -0.02}

	// Ring finger curled
	landmarks.Points[RingMCP] = Point3D{X: x - 0.08, Y: y + 0.29, Z: -0.02}
	landmarks.Points[RingPIP] = Point3D{X: x - 0.09, Y: y + 0.23, Z: -0.05}
	landmarks.Points[RingDIP] = Point3D{X: x - 0.11, Y: y + 0.26, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: x - 0.13, Y: y + 0.28, Z: -0.02}

	// Pinky finger curled
	landmarks.Points[PinkyMCP] = Point3D{X: x - 0.12, Y: y + 0.32, Z: -0.02}
	landmarks.Points[PinkyPIP] = Point3D{X: x - 0.13, Y: y + 0.27, Z: -0.05}
	landmarks.Points[PinkyDIP] = Point3D{X: x - 0.14, Y: y + 0.29, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: x - 0.14, Y: y + 0.31, Z: -0.02}

	return landmarks
}

// PeaceSignLandmarksAt returns a preset HandLandmarks for a peace sign with
// the index fingertip at the given normalized position. Index and middle
// fingers are raised close together; the curled thumb sits below the index
// fingertip, so the pose also satisfies the open-hand thumb condition and
// exercises the classifier's precedence order.
func PeaceSignLandmarksAt(x, y float64) HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: x + 0.05, Y: y + 0.45, Z: 0.0}

	// Thumb curled across the palm, below the raised fingers
	landmarks.Points[ThumbCMC] = Point3D{X: x + 0.12, Y: y + 0.40, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: x + 0.14, Y: y + 0.34, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: x + 0.13, Y: y + 0.30, Z: -0.02}
	landmarks.Points[ThumbTip] = Point3D{X: x + 0.11, Y: y + 0.27, Z: -0.02}

	// Index finger raised
	landmarks.Points[IndexMCP] = Point3D{X: x + 0.01, Y: y + 0.27, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: x + 0.01, Y: y + 0.17, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: x, Y: y + 0.08, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: x, Y: y, Z: 0.0}

	// Middle finger raised parallel to the index, slightly lower
	landmarks.Points[MiddleMCP] = Point3D{X: x + 0.06, Y: y + 0.27, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: x + 0.07, Y: y + 0.16, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: x + 0.07, Y: y + 0.08, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: x + 0.07, Y: y + 0.02, Z: 0.0}

	// Ring finger curled
	landmarks.Points[RingMCP] = Point3D{X: x + 0.11, Y: y + 0.28, Z: -0.02}
	landmarks.Points[RingPIP] = Point3D{X: x + 0.10, Y: y + 0.22, Z: -0.05}
	landmarks.Points[RingDIP] = Point3D{X: x + 0.09, Y: y + 0.25, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: x + 0.08, Y: y + 0.28, Z: -0.02}

	// Pinky finger curled
	landmarks.Points[PinkyMCP] = Point3D{X: x + 0.15, Y: y + 0.30, Z: -0.02}
	landmarks.Points[PinkyPIP] = Point3D{X: x + 0.14, Y: y + 0.25, Z: -0.05}
	landmarks.Points[PinkyDIP] = Point3D{X: x + 0.13, Y: y + 0.27, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: x + 0.12, Y: y + 0.30, Z: -0.02}

	return landmarks
}

// OpenHandLandmarksAt returns a preset HandLandmarks for a relaxed open
// hand with the index fingertip at the given normalized position. The hand
// droops: the index fingertip sits below the middle fingertip and the thumb
// tip below the index fingertip, matching the erase-pose heuristic.
func OpenHandLandmarksAt(x, y float64) HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: x + 0.02, Y: y - 0.35, Z: 0.0}

	// Thumb hanging lowest
	landmarks.Points[ThumbCMC] = Point3D{X: x - 0.07, Y: y - 0.30, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: x - 0.10, Y: y - 0.24, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: x - 0.11, Y: y - 0.16, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: x - 0.11, Y: y + 0.06, Z: 0.0}

	// Index finger drooping to the cursor position
	landmarks.Points[IndexMCP] = Point3D{X: x + 0.01, Y: y - 0.22, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: x + 0.01, Y: y - 0.14, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: x, Y: y - 0.07, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: x, Y: y, Z: 0.0}

	// Middle finger drooping slightly less than the index
	landmarks.Points[MiddleMCP] = Point3D{X: x + 0.05, Y: y - 0.23, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: x + 0.05, Y: y - 0.16, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: x + 0.04, Y: y - 0.11, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: x + 0.04, Y: y - 0.06, Z: 0.0}

	// Ring finger relaxed
	landmarks.Points[RingMCP] = Point3D{X: x + 0.09, Y: y - 0.22, Z: 0.0}
	landmarks.Points[RingPIP] = Point3D{X: x + 0.09, Y: y - 0.15, Z: 0.0}
	landmarks.Points[RingDIP] = Point3D{X: x + 0.08, Y: y - 0.10, Z: 0.0}
	landmarks.Points[RingTip] = Point3D{X: x + 0.08, Y: y - 0.05, Z: 0.0}

	// Pinky finger relaxed
	landmarks.Points[PinkyMCP] = Point3D{X: x + 0.13, Y: y - 0.20, Z: 0.0}
	landmarks.Points[PinkyPIP] = Point3D{X: x + 0.13, Y: y - 0.14, Z: 0.0}
	landmarks.Points[PinkyDIP] = Point3D{X: x + 0.12, Y: y - 0.10, Z: 0.0}
	landmarks.Points[PinkyTip] = Point3D{X: x + 0.12, Y: y - 0.06, Z: 0.0}

	return landmarks
}
