package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Width != DefaultWidth {
		t.Errorf("Width = %d, want %d", cfg.Width, DefaultWidth)
	}
	if cfg.Height != DefaultHeight {
		t.Errorf("Height = %d, want %d", cfg.Height, DefaultHeight)
	}
	if cfg.StripHeight != DefaultStripHeight {
		t.Errorf("StripHeight = %d, want %d", cfg.StripHeight, DefaultStripHeight)
	}
	if cfg.Thickness != DefaultThickness {
		t.Errorf("Thickness = %d, want %d", cfg.Thickness, DefaultThickness)
	}
	if !cfg.Mirror {
		t.Error("Mirror should default to true")
	}
	if cfg.PaletteSpec != "" {
		t.Errorf("PaletteSpec = %q, want empty", cfg.PaletteSpec)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Addr, DefaultAddr)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RANGOLI_WIDTH", "800")
	t.Setenv("RANGOLI_HEIGHT", "600")
	t.Setenv("RANGOLI_THICKNESS", "8")
	t.Setenv("RANGOLI_MIRROR", "false")
	t.Setenv("RANGOLI_PALETTE", "White=#ffffff,Black=#000000")
	t.Setenv("RANGOLI_MOTION_THRESHOLD", "2.5")
	t.Setenv("RANGOLI_ADDR", ":9090")

	cfg := Load()

	if cfg.Width != 800 {
		t.Errorf("Width = %d, want 800", cfg.Width)
	}
	if cfg.Height != 600 {
		t.Errorf("Height = %d, want 600", cfg.Height)
	}
	if cfg.Thickness != 8 {
		t.Errorf("Thickness = %d, want 8", cfg.Thickness)
	}
	if cfg.Mirror {
		t.Error("Mirror should be false")
	}
	if cfg.PaletteSpec != "White=#ffffff,Black=#000000" {
		t.Errorf("PaletteSpec = %q", cfg.PaletteSpec)
	}
	if cfg.MotionThreshold != 2.5 {
		t.Errorf("MotionThreshold = %f, want 2.5", cfg.MotionThreshold)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RANGOLI_WIDTH", "not-a-number")
	t.Setenv("RANGOLI_THICKNESS", "-3")
	t.Setenv("RANGOLI_MIRROR", "maybe")
	t.Setenv("RANGOLI_MOTION_THRESHOLD", "0")

	cfg := Load()

	if cfg.Width != DefaultWidth {
		t.Errorf("Width = %d, want default %d for unparseable value", cfg.Width, DefaultWidth)
	}
	if cfg.Thickness != DefaultThickness {
		t.Errorf("Thickness = %d, want default %d for negative value", cfg.Thickness, DefaultThickness)
	}
	if !cfg.Mirror {
		t.Error("Mirror should fall back to true for unparseable value")
	}
	if cfg.MotionThreshold != DefaultMotionThreshold {
		t.Errorf("MotionThreshold = %f, want default %f", cfg.MotionThreshold, DefaultMotionThreshold)
	}
}

func TestConfig_ApplyStored(t *testing.T) {
	cfg := &Config{Thickness: DefaultThickness, Mirror: true}

	cfg.ApplyStored(map[string]string{
		"active_color": "Blue",
		"thickness":    "9",
		"mirror":       "false",
		"unknown_key":  "whatever",
	})

	if cfg.StartColor != "Blue" {
		t.Errorf("StartColor = %q, want Blue", cfg.StartColor)
	}
	if cfg.Thickness != 9 {
		t.Errorf("Thickness = %d, want 9", cfg.Thickness)
	}
	if cfg.Mirror {
		t.Error("Mirror should be false after ApplyStored")
	}
}

func TestConfig_ApplyStored_EnvWins(t *testing.T) {
	t.Setenv("RANGOLI_THICKNESS", "3")
	t.Setenv("RANGOLI_MIRROR", "true")

	cfg := Load()
	cfg.ApplyStored(map[string]string{
		"thickness": "12",
		"mirror":    "false",
	})

	if cfg.Thickness != 3 {
		t.Errorf("Thickness = %d, want env value 3", cfg.Thickness)
	}
	if !cfg.Mirror {
		t.Error("Mirror should keep env value true")
	}
}

func TestConfig_ApplyStored_BadValues(t *testing.T) {
	cfg := &Config{Thickness: DefaultThickness, Mirror: true}

	cfg.ApplyStored(map[string]string{
		"active_color": "",
		"thickness":    "zero",
		"mirror":       "maybe",
	})

	if cfg.StartColor != "" {
		t.Errorf("StartColor = %q, want empty for empty stored value", cfg.StartColor)
	}
	if cfg.Thickness != DefaultThickness {
		t.Errorf("Thickness = %d, want default %d", cfg.Thickness, DefaultThickness)
	}
	if !cfg.Mirror {
		t.Error("Mirror should stay true for unparseable value")
	}
}

func TestConfig_ServerEnabled(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want bool
	}{
		{name: "default addr", addr: DefaultAddr, want: true},
		{name: "custom addr", addr: "127.0.0.1:9999", want: true},
		{name: "off", addr: "off", want: false},
		{name: "empty", addr: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Addr: tt.addr}
			if got := cfg.ServerEnabled(); got != tt.want {
				t.Errorf("ServerEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}
