package willowtree

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Config holds the viewport and animation settings of a tree diagram.
type Config struct {
	// Width and Height are the viewport size in pixels.
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	// Gutter is the room right of the deepest level reserved for labels.
	Gutter float64 `yaml:"gutter" json:"gutter"`
	// Margin shifts the whole diagram right so the root label fits.
	Margin float64 `yaml:"margin" json:"margin"`
	// Duration is the length of every node and edge transition.
	Duration time.Duration `yaml:"duration" json:"duration"`
	// Easing names a gween easing function, see EasingNames.
	Easing string `yaml:"easing" json:"easing"`
	// Debug enables diagnostics on stderr.
	Debug bool `yaml:"debug" json:"debug"`
}

// DefaultConfig returns the reference settings: a 960x500 viewport, 250ms
// cubic in-out transitions.
func DefaultConfig() Config {
	return Config{
		Width:    960,
		Height:   500,
		Gutter:   DefaultGutter,
		Margin:   50,
		Duration: 250 * time.Millisecond,
		Easing:   "inOutCubic",
	}
}

// Validate checks that the config describes a usable viewport.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Width, validation.Required, validation.Min(1.0)),
		validation.Field(&c.Height, validation.Required, validation.Min(1.0)),
		validation.Field(&c.Gutter, validation.Min(0.0), validation.By(func(any) error {
			if c.Gutter >= c.Width {
				return fmt.Errorf("must be less than width %g", c.Width)
			}
			return nil
		})),
		validation.Field(&c.Margin, validation.Min(0.0)),
		validation.Field(&c.Duration, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.Easing, validation.Required, validation.In(easingChoices()...)),
	)
}

// Layout returns the tidy layout engine for the configured viewport.
func (c Config) Layout() TidyLayout {
	return TidyLayout{Width: c.Width, Height: c.Height, Gutter: c.Gutter}
}

// Seconds returns Duration in the float32 seconds gween works with.
func (c Config) Seconds() float32 {
	return float32(c.Duration.Seconds())
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv overlays WILLOWTREE_* environment variables on base.
// Unparseable values are reported; unset ones are ignored.
func ConfigFromEnv(base Config) (Config, error) {
	cfg := base
	floats := map[string]*float64{
		"WILLOWTREE_WIDTH":  &cfg.Width,
		"WILLOWTREE_HEIGHT": &cfg.Height,
		"WILLOWTREE_GUTTER": &cfg.Gutter,
		"WILLOWTREE_MARGIN": &cfg.Margin,
	}
	for key, dst := range floats {
		if v := os.Getenv(key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return base, fmt.Errorf("%s: %w", key, err)
			}
			*dst = f
		}
	}
	if v := os.Getenv("WILLOWTREE_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return base, fmt.Errorf("WILLOWTREE_DURATION: %w", err)
		}
		cfg.Duration = d
	}
	if v := os.Getenv("WILLOWTREE_EASING"); v != "" {
		cfg.Easing = v
	}
	if v := os.Getenv("WILLOWTREE_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return base, fmt.Errorf("WILLOWTREE_DEBUG: %w", err)
		}
		cfg.Debug = b
	}
	return cfg, nil
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inOutSine":  ease.InOutSine,
	"outBounce":  ease.OutBounce,
	"outElastic": ease.OutElastic,
}

// EasingFunc returns the named easing function, falling back to linear for
// unknown names.
func EasingFunc(name string) ease.TweenFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return ease.Linear
}

// EasingNames returns the accepted easing names, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func easingChoices() []any {
	names := EasingNames()
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}
