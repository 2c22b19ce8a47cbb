package canvas

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/rangoli/internal/detector"
)

var (
	boneColor  = color.RGBA{G: 255, A: 255}
	jointColor = color.RGBA{R: 255, A: 255}
)

// DrawHand renders the detected hand skeleton onto the camera frame:
// green connection lines between landmarks and red joint dots. Called
// before blending so the skeleton appears at half strength beneath the
// strip and stroke overlays.
func DrawHand(frame *gocv.Mat, hand *detector.HandLandmarks) {
	if hand == nil {
		return
	}

	w := frame.Cols()
	h := frame.Rows()

	var pts [detector.NumLandmarks]image.Point
	for i, p := range hand.Points {
		pts[i] = image.Pt(clampPx(int(p.X*float64(w)), w), clampPx(int(p.Y*float64(h)), h))
	}

	for _, conn := range detector.Connections {
		gocv.Line(frame, pts[conn[0]], pts[conn[1]], boneColor, 2)
	}

	for _, p := range pts {
		gocv.Circle(frame, p, 3, jointColor, -1)
	}
}

func clampPx(v, max int) int {
	if v < 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}
