package app

import (
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/ayusman/rangoli/internal/canvas"
	"github.com/ayusman/rangoli/internal/detector"
	"github.com/ayusman/rangoli/internal/gesture"
	"github.com/ayusman/rangoli/internal/router"
	"github.com/ayusman/rangoli/internal/server"
	"github.com/ayusman/rangoli/internal/store"
)

// Keys polled from the display each frame.
const (
	keyQuit     = 'q'
	keySnapshot = 's'
	keyClear    = 'c'
)

// Run opens the camera and drives the frame loop until the quit key is
// pressed. It blocks the calling goroutine; state changes stay inside
// it, so Canvas and Router need no locks.
//
// Each frame: capture, mirror, motion check (frame-rate tier only),
// hand detection, gesture classification, routing onto the canvas,
// composition, publication to the hub, display. A camera failure is
// fatal and ends the loop; detector failures are logged and treated as
// no-hand frames.
func (a *App) Run() error {
	if a.detector == nil {
		return errors.New("app: no detector configured")
	}

	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("failed to open camera: %w", err)
	}
	a.camera.SetFPS(a.idleFPS)

	if a.display == nil {
		a.display = NewWindowDisplay("rangoli")
	}

	sessionID := uuid.New().String()
	var stats store.SessionStats

	if a.store != nil {
		if err := a.store.Sessions().Create(&store.Session{ID: sessionID}); err != nil {
			log.Printf("Failed to record session start: %v", err)
		}
		defer func() {
			if err := a.store.Sessions().Finish(sessionID, stats); err != nil {
				log.Printf("Failed to record session end: %v", err)
			}
		}()
	}

	composed := gocv.NewMat()
	defer composed.Close()

	activeMode := false
	lastMotionTime := time.Now()
	fps := a.idleFPS

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	log.Printf("Drawing loop started (session %s)", sessionID)

	for range ticker.C {
		frame, err := a.camera.ReadFrame()
		if err != nil {
			return fmt.Errorf("failed to read frame: %w", err)
		}

		if a.mirror {
			gocv.Flip(*frame, frame, 1)
		}

		// Motion only paces the loop; detection still runs every frame.
		motionDetected, _ := a.motion.Detect(frame)
		if motionDetected || a.router.State().Drawing {
			lastMotionTime = time.Now()
			if !activeMode {
				activeMode = true
				fps = a.activeFPS
				a.camera.SetFPS(fps)
				ticker.Reset(time.Second / time.Duration(fps))
				log.Println("Switched to active mode")
			}
		} else if activeMode && time.Since(lastMotionTime) > IdleTimeout {
			activeMode = false
			fps = a.idleFPS
			a.camera.SetFPS(fps)
			ticker.Reset(time.Second / time.Duration(fps))
			log.Println("Switched to idle mode")
		}

		hands, err := a.detector.Detect(frame)
		if err != nil {
			log.Printf("Error detecting hands: %v", err)
			hands = nil
		}

		var hand *detector.HandLandmarks
		kind := gesture.Unknown
		var cursor image.Point
		if len(hands) > 0 {
			hand = &hands[0]
			kind = gesture.Classify(hand)
			cursor = gesture.Cursor(hand, a.canvas.Width(), a.canvas.Height())
		}

		op := a.router.Route(kind, cursor)

		stats.Frames++
		switch op {
		case router.OpAnchor:
			stats.Strokes++
		case router.OpDraw:
			stats.Segments++
		case router.OpErase:
			stats.Erases++
		case router.OpSelect:
			stats.ColorChanges++
			a.persistColor()
		}

		canvas.DrawHand(frame, hand)
		a.compositor.Compose(*frame, a.canvas, &composed)
		frame.Close()

		if a.hub != nil {
			a.publish(sessionID, composed, kind, op, cursor, activeMode, fps, stats)
		}

		a.display.Show(composed)

		switch a.display.WaitKey(1) {
		case keyQuit:
			log.Println("Quit key pressed")
			return nil
		case keySnapshot:
			a.recordSnapshot(sessionID, &stats)
		case keyClear:
			a.canvas.Clear()
		}
	}

	return nil
}

// publish pushes the composited frame and the frame's state event to
// the hub for the viewer server.
func (a *App) publish(sessionID string, composed gocv.Mat, kind gesture.Kind, op router.Op, cursor image.Point, active bool, fps int, stats store.SessionStats) {
	buf, err := gocv.IMEncode(".jpg", composed)
	if err != nil {
		log.Printf("Error encoding frame: %v", err)
	} else {
		a.hub.PublishFrame(buf.GetBytes())
		buf.Close()
	}

	a.hub.PublishEvent(server.Event{
		SessionID:    sessionID,
		Gesture:      kind.String(),
		Op:           op.String(),
		CursorX:      cursor.X,
		CursorY:      cursor.Y,
		Color:        a.canvas.Color().Name,
		Drawing:      a.router.State().Drawing,
		MotionActive: active,
		FPS:          fps,
		Frames:       stats.Frames,
		Strokes:      stats.Strokes,
		Segments:     stats.Segments,
		Erases:       stats.Erases,
		ColorChanges: stats.ColorChanges,
		Snapshots:    stats.Snapshots,
		Timestamp:    time.Now().UnixMilli(),
	})
}

// recordSnapshot exports the canvas and records the result. Failures
// are logged; the loop keeps running.
func (a *App) recordSnapshot(sessionID string, stats *store.SessionStats) {
	if a.exporter == nil {
		log.Println("Snapshot key pressed but no exporter configured")
		return
	}

	res, err := a.exporter.Snapshot(a.canvas.Mat())
	if err != nil {
		log.Printf("Error exporting snapshot: %v", err)
		return
	}
	stats.Snapshots++
	log.Printf("Saved snapshot to %s", res.PNGPath)

	if a.store != nil {
		sn := &store.Snapshot{
			SessionID: sessionID,
			PNGPath:   res.PNGPath,
			PDFPath:   res.PDFPath,
			Color:     a.canvas.Color().Name,
		}
		if err := a.store.Snapshots().Create(sn); err != nil {
			log.Printf("Failed to record snapshot: %v", err)
		}
	}
}

// persistColor saves the active color so the next run starts with it.
func (a *App) persistColor() {
	if a.store == nil {
		return
	}
	if err := a.store.Settings().Set(store.SettingActiveColor, a.canvas.Color().Name); err != nil {
		log.Printf("Failed to persist color: %v", err)
	}
}
