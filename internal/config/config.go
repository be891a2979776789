package config

import (
	"fmt"
	"os"

	"frameinput/internal/input"

	"github.com/kataras/golog"
	"gopkg.in/yaml.v3"
)

// Config holds all demo configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Log     LogConfig     `yaml:"log"`
	Replay  ReplayConfig  `yaml:"replay"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"` // ebiten ticks per second
}

type InputConfig struct {
	// Boundary is "explicit" (end of every Update tick) or "redraw"
	// (a RedrawRequested event closes the step).
	Boundary string `yaml:"boundary"`

	// Auto-repeat timing in ticks, mirroring typical OS defaults at 60 TPS.
	KeyRepeatDelay    int `yaml:"key_repeat_delay"`
	KeyRepeatInterval int `yaml:"key_repeat_interval"`

	// CaptureCursor locks the cursor to the window; cursor deltas are then
	// reported as raw mouse motion.
	CaptureCursor bool `yaml:"capture_cursor"`

	// EventBurstThreshold is the events-per-frame count that raises a HUD alert.
	EventBurstThreshold int `yaml:"event_burst_threshold"`
}

type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	ShowEvents bool   `yaml:"show_events"`
}

type ReplayConfig struct {
	Script string `yaml:"script"`
}

// Default returns the configuration used when a field is left out of the file.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  960,
			ScreenHeight: 540,
			WindowTitle:  "frameinput",
			Resizable:    true,
			TPS:          60,
		},
		Input: InputConfig{
			Boundary:          "explicit",
			KeyRepeatDelay:      30,
			KeyRepeatInterval:   3,
			EventBurstThreshold: 256,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from a YAML file on top of Default.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration on top of Default and validates it.
func ParseConfig(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "disable": true,
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", c.Display.TPS)
	}
	if _, ok := input.ParseBoundary(c.Input.Boundary); !ok {
		return fmt.Errorf("unknown input boundary %q", c.Input.Boundary)
	}
	if c.Input.KeyRepeatDelay < 0 {
		return fmt.Errorf("key_repeat_delay must not be negative, got %d", c.Input.KeyRepeatDelay)
	}
	if c.Input.KeyRepeatInterval <= 0 {
		return fmt.Errorf("key_repeat_interval must be positive, got %d", c.Input.KeyRepeatInterval)
	}
	if c.Input.EventBurstThreshold <= 0 {
		return fmt.Errorf("event_burst_threshold must be positive, got %d", c.Input.EventBurstThreshold)
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetBoundary returns the parsed step boundary; Validate has already
// rejected unknown names.
func (c *Config) GetBoundary() input.Boundary {
	b, _ := input.ParseBoundary(c.Input.Boundary)
	return b
}

// Logger returns the named golog child at the configured level. A child keeps
// the level it was created with, so the level is applied on every call.
func (c *Config) Logger(name string) *golog.Logger {
	return golog.Child(name).SetLevel(c.Log.Level)
}
