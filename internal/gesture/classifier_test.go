package gesture

import (
	"image"
	"testing"

	"github.com/ayusman/rangoli/internal/detector"
)

// handWithTips builds a hand where only the three landmarks the classifier
// reads are meaningful.
func handWithTips(index, middle, thumb detector.Point3D) *detector.HandLandmarks {
	h := &detector.HandLandmarks{Handedness: "Right", Score: 0.9}
	h.Points[detector.IndexTip] = index
	h.Points[detector.MiddleTip] = middle
	h.Points[detector.ThumbTip] = thumb
	return h
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		hand *detector.HandLandmarks
		want Kind
	}{
		{
			name: "no hand",
			hand: nil,
			want: Unknown,
		},
		{
			name: "pointing fixture",
			hand: ptr(detector.PointingLandmarksAt(0.5, 0.4)),
			want: Point,
		},
		{
			name: "peace sign fixture",
			hand: ptr(detector.PeaceSignLandmarksAt(0.5, 0.3)),
			want: PeaceSign,
		},
		{
			name: "open hand fixture",
			hand: ptr(detector.OpenHandLandmarksAt(0.5, 0.6)),
			want: OpenHand,
		},
		{
			name: "index above middle, fingers together",
			hand: handWithTips(
				detector.Point3D{X: 0.50, Y: 0.30},
				detector.Point3D{X: 0.55, Y: 0.35},
				detector.Point3D{X: 0.60, Y: 0.50},
			),
			want: PeaceSign,
		},
		{
			name: "index above middle but fingers apart",
			hand: handWithTips(
				detector.Point3D{X: 0.50, Y: 0.30},
				detector.Point3D{X: 0.65, Y: 0.35},
				detector.Point3D{X: 0.60, Y: 0.50},
			),
			want: Point,
		},
		{
			name: "gap exactly at tolerance is not a peace sign",
			hand: handWithTips(
				detector.Point3D{X: 0.50, Y: 0.30},
				detector.Point3D{X: 0.60, Y: 0.35},
				detector.Point3D{X: 0.55, Y: 0.25},
			),
			want: Point,
		},
		{
			name: "gap just inside tolerance",
			hand: handWithTips(
				detector.Point3D{X: 0.50, Y: 0.30},
				detector.Point3D{X: 0.599, Y: 0.35},
				detector.Point3D{X: 0.55, Y: 0.25},
			),
			want: PeaceSign,
		},
		{
			name: "index below middle with thumb lowest",
			hand: handWithTips(
				detector.Point3D{X: 0.50, Y: 0.40},
				detector.Point3D{X: 0.52, Y: 0.35},
				detector.Point3D{X: 0.45, Y: 0.45},
			),
			want: OpenHand,
		},
		{
			name: "index below middle but thumb raised",
			hand: handWithTips(
				detector.Point3D{X: 0.50, Y: 0.40},
				detector.Point3D{X: 0.52, Y: 0.35},
				detector.Point3D{X: 0.45, Y: 0.20},
			),
			want: Point,
		},
		{
			name: "fingertips level is neither raised nor dropped",
			hand: handWithTips(
				detector.Point3D{X: 0.50, Y: 0.35},
				detector.Point3D{X: 0.52, Y: 0.35},
				detector.Point3D{X: 0.45, Y: 0.50},
			),
			want: Point,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.hand); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_PeaceSignWinsOverOpenHandThumb(t *testing.T) {
	// A peace sign with the curled thumb hanging below the index fingertip
	// satisfies the open-hand thumb condition. The peace check runs first,
	// so the pose must classify as a peace sign.
	hand := detector.PeaceSignLandmarksAt(0.5, 0.3)

	if hand.Points[detector.ThumbTip].Y <= hand.Points[detector.IndexTip].Y {
		t.Fatal("fixture should place the thumb below the index fingertip")
	}

	if got := Classify(&hand); got != PeaceSign {
		t.Errorf("Classify() = %v, want PeaceSign (precedence over open hand)", got)
	}
}

func TestCursor(t *testing.T) {
	tests := []struct {
		name          string
		tip           detector.Point3D
		width, height int
		want          image.Point
	}{
		{
			name:  "center of frame",
			tip:   detector.Point3D{X: 0.5, Y: 0.5},
			width: 640, height: 480,
			want: image.Pt(320, 240),
		},
		{
			name:  "stroke start position",
			tip:   detector.Point3D{X: 100.0 / 640.0, Y: 200.0 / 480.0},
			width: 640, height: 480,
			want: image.Pt(100, 200),
		},
		{
			name:  "negative coordinates clamp to zero",
			tip:   detector.Point3D{X: -0.1, Y: -0.2},
			width: 640, height: 480,
			want: image.Pt(0, 0),
		},
		{
			name:  "coordinates past one clamp to frame edge",
			tip:   detector.Point3D{X: 1.2, Y: 1.0},
			width: 640, height: 480,
			want: image.Pt(639, 479),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &detector.HandLandmarks{}
			h.Points[detector.IndexTip] = tt.tip

			got := Cursor(h, tt.width, tt.height)
			if got != tt.want {
				t.Errorf("Cursor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Unknown, "none"},
		{Point, "point"},
		{PeaceSign, "peace_sign"},
		{OpenHand, "open_hand"},
		{Kind(99), "none"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func ptr(h detector.HandLandmarks) *detector.HandLandmarks {
	return &h
}
