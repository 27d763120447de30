package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv isolates a test from the developer's environment
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvConfigPath, EnvWindowWidth, EnvWindowHeight, EnvMaxFrameDelta, EnvPreserve, EnvBanner} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Tuning.PlayerSpeed != 0.1 || cfg.Tuning.GoblinSpeed != 0.4 {
		t.Errorf("speeds = %v/%v, want 0.1/0.4", cfg.Tuning.PlayerSpeed, cfg.Tuning.GoblinSpeed)
	}
	if cfg.Tuning.Margin != 10 {
		t.Errorf("margin = %v, want 10", cfg.Tuning.Margin)
	}
	if cfg.Tuning.MaxFrameDelta != 100*time.Millisecond {
		t.Errorf("max frame delta = %v, want 100ms", cfg.Tuning.MaxFrameDelta)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "goblin.toml", `
banner = "2s"

[window]
title = "Test Lake"
width = 1024
height = 768

[tuning]
player_speed = 0.2
max_frame_delta = "50ms"
preserve_on_resize = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "Test Lake" || cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Tuning.PlayerSpeed != 0.2 {
		t.Errorf("player speed = %v, want 0.2", cfg.Tuning.PlayerSpeed)
	}
	if cfg.Tuning.MaxFrameDelta != 50*time.Millisecond {
		t.Errorf("max frame delta = %v, want 50ms", cfg.Tuning.MaxFrameDelta)
	}
	if cfg.Tuning.PreserveOnResize {
		t.Error("preserve_on_resize not applied")
	}
	if cfg.Banner != 2*time.Second {
		t.Errorf("banner = %v, want 2s", cfg.Banner)
	}

	// Keys absent from the file keep their defaults
	if cfg.Tuning.GoblinSpeed != 0.4 || !cfg.Window.Resizable {
		t.Errorf("defaults lost: goblin speed %v resizable %v", cfg.Tuning.GoblinSpeed, cfg.Window.Resizable)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "goblin.toml", "[window]\nwidth = 1024\n")
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvWindowWidth, "640")
	t.Setenv(EnvWindowHeight, "480")
	t.Setenv(EnvMaxFrameDelta, "250ms")
	t.Setenv(EnvPreserve, "false")
	t.Setenv(EnvBanner, "3s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("window = %dx%d, want 640x480", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Tuning.MaxFrameDelta != 250*time.Millisecond {
		t.Errorf("max frame delta = %v, want 250ms", cfg.Tuning.MaxFrameDelta)
	}
	if cfg.Tuning.PreserveOnResize {
		t.Error("preserve override not applied")
	}
	if cfg.Banner != 3*time.Second {
		t.Errorf("banner = %v, want 3s", cfg.Banner)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("explicit missing file: want error")
	}

	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "missing.toml"))
	if _, err := Load(""); err != nil {
		t.Errorf("missing file from environment: %v", err)
	}
	t.Setenv(EnvConfigPath, "")

	bad := writeFile(t, "bad.toml", "[window\nwidth = ")
	if _, err := Load(bad); err == nil {
		t.Error("malformed TOML: want error")
	}

	t.Setenv(EnvWindowWidth, "wide")
	if _, err := Load(""); err == nil {
		t.Error("non-numeric width: want error")
	}
	t.Setenv(EnvWindowWidth, "")

	t.Setenv(EnvWindowWidth, "18")
	if _, err := Load(""); err == nil {
		t.Error("window too small for the lake: want error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero height", func(c *Config) { c.Window.Height = 0 }},
		{"zero player speed", func(c *Config) { c.Tuning.PlayerSpeed = 0 }},
		{"negative goblin speed", func(c *Config) { c.Tuning.GoblinSpeed = -1 }},
		{"negative margin", func(c *Config) { c.Tuning.Margin = -1 }},
		{"negative frame delta", func(c *Config) { c.Tuning.MaxFrameDelta = -time.Millisecond }},
		{"zero frame interval", func(c *Config) { c.Terminal.FrameInterval = 0 }},
		{"lake within border reach", func(c *Config) { c.Window.Width, c.Window.Height = 21, 21 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate accepted %s", tt.name)
			}
		})
	}
}
