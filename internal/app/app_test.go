package app

import (
	"testing"

	"github.com/ayusman/rangoli/internal/config"
)

func TestNew_RequiresSettings(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("New() with nil Settings should return an error")
	}
}

func TestNew_DefaultsZeroSettings(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	a, err := New(Config{Settings: &config.Config{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.canvas.Close()

	if a.canvas.Width() != config.DefaultWidth {
		t.Errorf("canvas width = %d, want %d", a.canvas.Width(), config.DefaultWidth)
	}
	if a.canvas.Height() != config.DefaultHeight {
		t.Errorf("canvas height = %d, want %d", a.canvas.Height(), config.DefaultHeight)
	}
	if a.canvas.Thickness() != config.DefaultThickness {
		t.Errorf("canvas thickness = %d, want %d", a.canvas.Thickness(), config.DefaultThickness)
	}
	if a.idleFPS != config.DefaultIdleFPS {
		t.Errorf("idleFPS = %d, want %d", a.idleFPS, config.DefaultIdleFPS)
	}
	if a.activeFPS != config.DefaultActiveFPS {
		t.Errorf("activeFPS = %d, want %d", a.activeFPS, config.DefaultActiveFPS)
	}
}

func TestNew_RestoresStartColor(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	a, err := New(Config{Settings: &config.Config{StartColor: "Blue"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.canvas.Close()

	if got := a.canvas.Color().Name; got != "Blue" {
		t.Errorf("active color = %q, want Blue", got)
	}
}

func TestNew_IgnoresUnknownStartColor(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	a, err := New(Config{Settings: &config.Config{StartColor: "Chartreuse"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.canvas.Close()

	if got := a.canvas.Color().Name; got != "Green" {
		t.Errorf("active color = %q, want the palette default Green", got)
	}
}

func TestNew_InvalidCanvasConfig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	// Strip height taller than the canvas is rejected by canvas.New.
	_, err := New(Config{Settings: &config.Config{Height: 40, StripHeight: 50}})
	if err == nil {
		t.Error("New() with strip taller than canvas should return an error")
	}
}

func TestMockDisplay_ScriptPlayback(t *testing.T) {
	d := NewMockDisplay(-1, 's', -1, 'q')

	want := []int{-1, 's', -1, 'q', 'q', 'q'}
	for i, w := range want {
		if got := d.WaitKey(1); got != w {
			t.Errorf("WaitKey call %d = %d, want %d", i, got, w)
		}
	}
}

func TestMockDisplay_CountsAndCloses(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	d := NewMockDisplay()

	frame := testFrame(t)
	defer frame.Close()

	d.Show(*frame)
	d.Show(*frame)

	if d.Shown() != 2 {
		t.Errorf("Shown() = %d, want 2", d.Shown())
	}

	if d.Closed() {
		t.Error("Closed() should be false before Close")
	}
	if err := d.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !d.Closed() {
		t.Error("Closed() should be true after Close")
	}
}
