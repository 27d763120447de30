// Package config loads the application configuration: built-in defaults,
// an optional TOML file, then environment overrides (a .env file is honored).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"goblinescape/game"
)

// Environment variables read by Load
const (
	EnvConfigPath    = "GOBLIN_CONFIG"
	EnvWindowWidth   = "GOBLIN_WIDTH"
	EnvWindowHeight  = "GOBLIN_HEIGHT"
	EnvMaxFrameDelta = "GOBLIN_MAX_FRAME_DELTA"
	EnvPreserve      = "GOBLIN_PRESERVE_ON_RESIZE"
	EnvBanner        = "GOBLIN_BANNER"
)

// Window configures the ebiten front end
type Window struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Resizable  bool   `toml:"resizable"`
	Fullscreen bool   `toml:"fullscreen"`
}

// Terminal configures the tcell front end
type Terminal struct {
	// FrameInterval is the time between frames
	FrameInterval time.Duration `toml:"frame_interval"`

	// Margin overrides the lake margin; terminals are far smaller than windows
	Margin float64 `toml:"margin"`
}

// Config holds the whole application configuration
type Config struct {
	Window   Window      `toml:"window"`
	Terminal Terminal    `toml:"terminal"`
	Tuning   game.Tuning `toml:"tuning"`

	// Banner is how long a round result stays on screen before play resumes
	Banner time.Duration `toml:"banner"`
}

// Default returns a default configuration
func Default() Config {
	return Config{
		Window: Window{
			Title:     "Goblin Escape",
			Width:     800,
			Height:    600,
			Resizable: true,
		},
		Terminal: Terminal{
			FrameInterval: 16 * time.Millisecond, // ~60 FPS
			Margin:        2,
		},
		Tuning: game.DefaultTuning(),
		Banner: 1500 * time.Millisecond,
	}
}

// Load builds the configuration. path may be empty, in which case
// GOBLIN_CONFIG is consulted; a missing file is not an error when the path
// did not come from the caller.
func Load(path string) (Config, error) {
	cfg := Default()

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the values the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Tuning.PlayerSpeed <= 0 || c.Tuning.GoblinSpeed <= 0:
		return fmt.Errorf("speeds must be positive, got player=%v goblin=%v", c.Tuning.PlayerSpeed, c.Tuning.GoblinSpeed)
	case c.Tuning.Margin < 0 || c.Terminal.Margin < 0:
		return errors.New("margins must not be negative")
	case c.Tuning.MaxFrameDelta < 0:
		return errors.New("max frame delta must not be negative")
	case c.Terminal.FrameInterval <= 0:
		return errors.New("terminal frame interval must be positive")
	}
	if _, ok := c.Tuning.LakeFor(float64(c.Window.Width), float64(c.Window.Height)); !ok {
		return fmt.Errorf("window %dx%d leaves no room for the lake with margin %v",
			c.Window.Width, c.Window.Height, c.Tuning.Margin)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvWindowWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWindowWidth, err)
		}
		cfg.Window.Width = n
	}
	if v := os.Getenv(EnvWindowHeight); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWindowHeight, err)
		}
		cfg.Window.Height = n
	}
	if v := os.Getenv(EnvMaxFrameDelta); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxFrameDelta, err)
		}
		cfg.Tuning.MaxFrameDelta = d
	}
	if v := os.Getenv(EnvPreserve); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPreserve, err)
		}
		cfg.Tuning.PreserveOnResize = b
	}
	if v := os.Getenv(EnvBanner); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBanner, err)
		}
		cfg.Banner = d
	}
	return nil
}
