package canvas

import (
	"testing"

	"gocv.io/x/gocv"

	"github.com/ayusman/rangoli/internal/detector"
)

func TestDrawHand(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	// Every landmark at the center except the wrist, so the
	// wrist-to-thumb bone crosses known empty space.
	hand := detector.HandLandmarks{Handedness: "Right", Score: 0.9}
	for i := range hand.Points {
		hand.Points[i] = detector.Point3D{X: 0.5, Y: 0.5}
	}
	hand.Points[detector.Wrist] = detector.Point3D{X: 0.25, Y: 0.75}

	DrawHand(&frame, &hand)

	// Joints are red disks drawn over the bones
	v := frame.GetVecbAt(240, 320)
	if v[2] != 255 || v[1] != 0 {
		t.Errorf("joint pixel = BGR(%d,%d,%d), want pure red", v[0], v[1], v[2])
	}
	v = frame.GetVecbAt(360, 160)
	if v[2] != 255 || v[1] != 0 {
		t.Errorf("wrist pixel = BGR(%d,%d,%d), want pure red", v[0], v[1], v[2])
	}

	// Midpoint of the wrist-to-thumb bone is green
	v = frame.GetVecbAt(300, 240)
	if v[1] != 255 || v[2] != 0 {
		t.Errorf("bone pixel = BGR(%d,%d,%d), want pure green", v[0], v[1], v[2])
	}
}

func TestDrawHand_NilHand(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	DrawHand(&frame, nil)

	if n := coloredPixels(t, frame); n != 0 {
		t.Errorf("nil hand lit %d pixels, want 0", n)
	}
}

func TestDrawHand_ClampsOffscreenPoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	hand := detector.PointingLandmarksAt(0.02, 0.95)
	for i := range hand.Points {
		hand.Points[i].X -= 0.2
		hand.Points[i].Y += 0.2
	}

	DrawHand(&frame, &hand)

	if n := coloredPixels(t, frame); n == 0 {
		t.Error("clamped hand should still draw inside the frame")
	}
}
