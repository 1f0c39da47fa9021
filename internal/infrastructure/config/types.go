package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// EngineConfig is the root config for engine.yaml
type EngineConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Canvas  CanvasConfig  `yaml:"canvas"`
	Loop    LoopConfig    `yaml:"loop"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Scale     int    `yaml:"scale"`
	Resizable bool   `yaml:"resizable"`
}

type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // #rrggbb or #rrggbbaa
}

type LoopConfig struct {
	TPS           int `yaml:"tps"`           // Update calls per second
	UPS           int `yaml:"ups"`           // Fixed updates per second
	MaxFixedSteps int `yaml:"maxFixedSteps"` // Fixed updates allowed per tick
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Prefix string `yaml:"prefix"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

// Defaults returns the configuration used when engine.yaml omits a value.
func Defaults() EngineConfig {
	return EngineConfig{
		Window: WindowConfig{
			Title: "engine2d",
			Scale: 2,
		},
		Canvas: CanvasConfig{
			Width:      640,
			Height:     360,
			Background: "#1a1a2e",
		},
		Loop: LoopConfig{
			TPS:           60,
			UPS:           50,
			MaxFixedSteps: 5,
		},
		Log: LogConfig{
			Level:  "info",
			Prefix: "engine2d",
		},
		Storage: StorageConfig{
			Path: "~/.engine2d/scores.db",
		},
	}
}

// WindowSize returns the window size in screen pixels.
func (c EngineConfig) WindowSize() (int, int) {
	return c.Canvas.Width * c.Window.Scale, c.Canvas.Height * c.Window.Scale
}

// BackgroundColor parses Canvas.Background.
func (c EngineConfig) BackgroundColor() (color.RGBA, error) {
	return ParseColor(c.Canvas.Background)
}

// Validate reports the first invalid value.
func (c EngineConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	case c.Window.Scale <= 0:
		return fmt.Errorf("window scale must be positive, got %d", c.Window.Scale)
	case c.Loop.TPS <= 0:
		return fmt.Errorf("loop tps must be positive, got %d", c.Loop.TPS)
	case c.Loop.UPS <= 0:
		return fmt.Errorf("loop ups must be positive, got %d", c.Loop.UPS)
	case c.Loop.MaxFixedSteps <= 0:
		return fmt.Errorf("loop maxFixedSteps must be positive, got %d", c.Loop.MaxFixedSteps)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("canvas background: %w", err)
	}
	return nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is
// optional.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
