// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"time"
)

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Cube     CubeConfig     `yaml:"cube"`
	Handoff  HandoffConfig  `yaml:"handoff"`
	Unfold   UnfoldConfig   `yaml:"unfold"`
	Assets   AssetsConfig   `yaml:"assets"`
	Audio    AudioConfig    `yaml:"audio"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`

	// StartRoute is the route opened at launch. Set from the -route flag only.
	StartRoute string `yaml:"-"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // vertical, degrees
}

// CubeConfig tunes the interactive cube and its transitions.
type CubeConfig struct {
	AnimationDuration time.Duration `yaml:"animation_duration"`
	DoubleClickWindow time.Duration `yaml:"double_click_window"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"`
	DragSensitivity   float32       `yaml:"drag_sensitivity"`  // radians per pixel
	MomentumFriction  float32       `yaml:"momentum_friction"` // per frame
	AutoRotateSpeed   float32       `yaml:"auto_rotate_speed"` // radians per frame
	FillSafety        float32       `yaml:"fill_safety"`
}

// Handoff styles.
const (
	HandoffFade = "fade"
	HandoffZoom = "zoom"
)

// HandoffConfig controls the flattened settle shown after the 3-D cube is released.
type HandoffConfig struct {
	SettleDuration time.Duration `yaml:"settle_duration"`
	Style          string        `yaml:"style"`
}

// UnfoldConfig holds the unfold overview timings.
type UnfoldConfig struct {
	OpenDelay   time.Duration `yaml:"open_delay"`
	CloseDelay  time.Duration `yaml:"close_delay"`
	SwitchDelay time.Duration `yaml:"switch_delay"`
}

// AssetsConfig holds asset locations.
type AssetsConfig struct {
	TextureDir    string `yaml:"texture_dir"`
	SoundDir      string `yaml:"sound_dir"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	Watch         bool   `yaml:"watch"`
}

// AudioConfig holds cue sound settings.
type AudioConfig struct {
	Volume float64 `yaml:"volume"`
	Muted  bool    `yaml:"muted"`
}

// StorageConfig holds persistent state locations.
type StorageConfig struct {
	VisitedPath string `yaml:"visited_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
			FOV:    50,
		},
		Cube: CubeConfig{
			AnimationDuration: 1800 * time.Millisecond,
			DoubleClickWindow: 300 * time.Millisecond,
			IdleTimeout:       3 * time.Second,
			DragSensitivity:   0.006,
			MomentumFriction:  0.95,
			AutoRotateSpeed:   0.001,
			FillSafety:        0.9,
		},
		Handoff: HandoffConfig{
			SettleDuration: 500 * time.Millisecond,
			Style:          HandoffFade,
		},
		Unfold: UnfoldConfig{
			OpenDelay:   900 * time.Millisecond,
			CloseDelay:  500 * time.Millisecond,
			SwitchDelay: 300 * time.Millisecond,
		},
		Assets: AssetsConfig{
			TextureDir:    "assets/textures",
			SoundDir:      "assets/sounds",
			ScreenshotDir: "screenshots",
		},
		Audio: AudioConfig{
			Volume: 0.6,
		},
		Storage: StorageConfig{
			VisitedPath: "",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		StartRoute: "/",
	}
}

// Validate reports settings that would break the cube.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		return fmt.Errorf("graphics: fov %.1f out of range (0, 180)", c.Graphics.FOV)
	}
	if c.Cube.AnimationDuration <= 0 {
		return fmt.Errorf("cube: animation_duration must be positive, got %v", c.Cube.AnimationDuration)
	}
	if c.Cube.MomentumFriction < 0 || c.Cube.MomentumFriction >= 1 {
		return fmt.Errorf("cube: momentum_friction %.3f out of range [0, 1)", c.Cube.MomentumFriction)
	}
	if c.Cube.FillSafety <= 0 || c.Cube.FillSafety > 1 {
		return fmt.Errorf("cube: fill_safety %.2f out of range (0, 1]", c.Cube.FillSafety)
	}
	switch c.Handoff.Style {
	case HandoffFade, HandoffZoom:
	default:
		return fmt.Errorf("handoff: unknown style %q", c.Handoff.Style)
	}
	return nil
}
