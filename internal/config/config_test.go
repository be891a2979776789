package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"frameinput/internal/input"

	"github.com/kataras/golog"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("../../config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.GetScreenWidth() <= 0 || cfg.GetScreenHeight() <= 0 {
		t.Errorf("screen size not loaded: %dx%d", cfg.GetScreenWidth(), cfg.GetScreenHeight())
	}
	if cfg.Display.WindowTitle == "" {
		t.Error("window title should be set")
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("display:\n  window_title: test\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Display.WindowTitle != "test" {
		t.Errorf("WindowTitle = %q", cfg.Display.WindowTitle)
	}
	if cfg.Display.ScreenWidth != 960 || cfg.Input.KeyRepeatInterval != 3 {
		t.Error("defaults should fill fields missing from the file")
	}
	if cfg.GetBoundary() != input.BoundaryExplicit {
		t.Errorf("GetBoundary() = %v", cfg.GetBoundary())
	}
}

func TestParseConfigBoundary(t *testing.T) {
	cfg, err := ParseConfig([]byte("input:\n  boundary: redraw\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.GetBoundary() != input.BoundaryRedraw {
		t.Errorf("GetBoundary() = %v, want redraw", cfg.GetBoundary())
	}
}

func TestParseConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"boundary":        "input:\n  boundary: vsync\n",
		"repeat interval": "input:\n  key_repeat_interval: 0\n",
		"repeat delay":    "input:\n  key_repeat_delay: -1\n",
		"screen":          "display:\n  screen_width: 0\n",
		"log level":       "log:\n  level: loud\n",
		"burst threshold": "input:\n  event_burst_threshold: 0\n",
		"yaml":            "display: [",
	}
	for name, data := range cases {
		if _, err := ParseConfig([]byte(data)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap the not-exist error, got %v", err)
	}
}

func TestLoggerFollowsLogLevel(t *testing.T) {
	golog.Child("[config-test]") // created before the level is known

	cfg, err := ParseConfig([]byte("log:\n  level: debug\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if l := cfg.Logger("[config-test]"); l.Level != golog.DebugLevel {
		t.Errorf("Logger level = %v, want debug", l.Level)
	}

	cfg.Log.Level = "disable"
	if l := cfg.Logger("[config-test]"); l.Level != golog.DisableLevel {
		t.Errorf("Logger level = %v, want disable", l.Level)
	}
}

func TestParseConfigBurstThreshold(t *testing.T) {
	cfg, err := ParseConfig([]byte("input:\n  event_burst_threshold: 32\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Input.EventBurstThreshold != 32 {
		t.Errorf("EventBurstThreshold = %d, want 32", cfg.Input.EventBurstThreshold)
	}
	if Default().Input.EventBurstThreshold != 256 {
		t.Errorf("default threshold = %d, want 256", Default().Input.EventBurstThreshold)
	}
}
