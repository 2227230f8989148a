package willowtree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Seconds() != 0.25 {
		t.Errorf("Seconds = %f, want 0.25", cfg.Seconds())
	}
	if l := cfg.Layout(); l.Width != 960 || l.Height != 500 || l.Gutter != DefaultGutter {
		t.Errorf("Layout = %+v", l)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "width"},
		{"negative height", func(c *Config) { c.Height = -5 }, "height"},
		{"gutter wider than viewport", func(c *Config) { c.Gutter = 2000 }, "gutter"},
		{"negative margin", func(c *Config) { c.Margin = -1 }, "margin"},
		{"zero duration", func(c *Config) { c.Duration = 0 }, "duration"},
		{"sub-millisecond duration", func(c *Config) { c.Duration = time.Microsecond }, "duration"},
		{"unknown easing", func(c *Config) { c.Easing = "wobble" }, "easing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate = nil, want error")
			}
			if !strings.Contains(strings.ToLower(err.Error()), tt.field) {
				t.Errorf("Validate = %v, want mention of %s", err, tt.field)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	data := "width: 1200\nduration: 400ms\neasing: outBounce\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 1200 || cfg.Duration != 400*time.Millisecond || cfg.Easing != "outBounce" {
		t.Errorf("cfg = %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.Height != 500 || cfg.Margin != 50 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "read config") {
		t.Errorf("missing file: err = %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("width: [1, 2"), 0o644)
	if _, err := LoadConfig(bad); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("bad yaml: err = %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("width: 100\ngutter: 100\n"), 0o644)
	if _, err := LoadConfig(invalid); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("invalid values: err = %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("WILLOWTREE_WIDTH", "640")
	t.Setenv("WILLOWTREE_DURATION", "1s")
	t.Setenv("WILLOWTREE_EASING", "linear")
	t.Setenv("WILLOWTREE_DEBUG", "true")

	cfg, err := ConfigFromEnv(DefaultConfig())
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Width != 640 || cfg.Duration != time.Second || cfg.Easing != "linear" || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Height != 500 {
		t.Errorf("Height = %f, want default 500", cfg.Height)
	}
}

func TestConfigFromEnvBadValue(t *testing.T) {
	t.Setenv("WILLOWTREE_HEIGHT", "tall")
	base := DefaultConfig()
	cfg, err := ConfigFromEnv(base)
	if err == nil || !strings.Contains(err.Error(), "WILLOWTREE_HEIGHT") {
		t.Errorf("err = %v, want WILLOWTREE_HEIGHT error", err)
	}
	if cfg != base {
		t.Errorf("cfg = %+v, want base on error", cfg)
	}
}

func TestEasingFunc(t *testing.T) {
	if got := EasingFunc("inCubic")(0.5, 0, 1, 1); got >= 0.5 {
		t.Errorf("inCubic(0.5) = %f, want < 0.5", got)
	}
	if got := EasingFunc("nonsense")(0.5, 0, 1, 1); got != 0.5 {
		t.Errorf("fallback(0.5) = %f, want linear 0.5", got)
	}
	names := EasingNames()
	if len(names) != len(easings) {
		t.Errorf("EasingNames = %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("EasingNames not sorted: %v", names)
		}
	}
}
