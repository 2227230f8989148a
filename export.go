package willowtree

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// SessionStep is one step of a simulated session: toggle a node (if Toggle
// is set), then let Wait elapse. In both YAML and JSON, Wait is written as
// a duration string such as "400ms".
type SessionStep struct {
	Toggle string        `yaml:"toggle,omitempty" json:"toggle,omitempty"`
	Wait   time.Duration `yaml:"wait,omitempty" json:"wait,omitempty"`
}

// UnmarshalJSON accepts wait as a duration string or as integer
// nanoseconds.
func (s *SessionStep) UnmarshalJSON(data []byte) error {
	var raw struct {
		Toggle string          `json:"toggle"`
		Wait   json.RawMessage `json:"wait"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Toggle, s.Wait = raw.Toggle, 0
	if len(raw.Wait) == 0 || string(raw.Wait) == "null" {
		return nil
	}
	var text string
	if err := json.Unmarshal(raw.Wait, &text); err == nil {
		d, err := time.ParseDuration(text)
		if err != nil {
			return fmt.Errorf("wait: %w", err)
		}
		s.Wait = d
		return nil
	}
	var ns int64
	if err := json.Unmarshal(raw.Wait, &ns); err != nil {
		return fmt.Errorf("wait: want a duration string, got %s", raw.Wait)
	}
	s.Wait = time.Duration(ns)
	return nil
}

// MarshalJSON writes wait as a duration string.
func (s SessionStep) MarshalJSON() ([]byte, error) {
	out := struct {
		Toggle string `json:"toggle,omitempty"`
		Wait   string `json:"wait,omitempty"`
	}{Toggle: s.Toggle}
	if s.Wait != 0 {
		out.Wait = s.Wait.String()
	}
	return json.Marshal(out)
}

// LoadSession decodes a list of session steps.
func LoadSession(data []byte, format Format) ([]SessionStep, error) {
	var steps []SessionStep
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &steps)
	default:
		err = yaml.Unmarshal(data, &steps)
	}
	if err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	return steps, nil
}

// LoadSessionFile reads a session from path, picking the decoder by
// extension.
func LoadSessionFile(path string) ([]SessionStep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	steps, err := LoadSession(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return steps, nil
}

// ExportOptions controls ExportFrames.
type ExportOptions struct {
	// Dir receives frame_NNNN.svg and/or frame_NNNN.png files.
	Dir string
	// SVG and PNG select the output formats. If neither is set, SVG is
	// written.
	SVG, PNG bool
	// Step is the fixed simulation timestep. Defaults to 1/60s.
	Step time.Duration
	// Every writes one frame out of Every. Defaults to 1.
	Every int
	// Settle keeps simulating after the last step until the animation
	// stops, for at most this long.
	Settle time.Duration
}

// ExportFrames plays steps against p at a fixed timestep and writes the
// sampled frames to opts.Dir. Simulation is sequential; encoding runs in
// parallel. It returns the written paths in frame order.
func ExportFrames(ctx context.Context, p *Presenter, steps []SessionStep, opts ExportOptions) ([]string, error) {
	if opts.Step <= 0 {
		opts.Step = time.Second / 60
	}
	if opts.Every <= 0 {
		opts.Every = 1
	}
	if !opts.SVG && !opts.PNG {
		opts.SVG = true
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	frames := sampleFrames(p, steps, opts)
	cfg := p.Config()

	var paths []string
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range frames {
		f := f
		if opts.SVG {
			path := framePath(opts.Dir, i, "svg")
			paths = append(paths, path)
			g.Go(func() error { return writeFrame(ctx, path, f, cfg, WriteSVG) })
		}
		if opts.PNG {
			path := framePath(opts.Dir, i, "png")
			paths = append(paths, path)
			g.Go(func() error { return writeFrame(ctx, path, f, cfg, WritePNG) })
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func sampleFrames(p *Presenter, steps []SessionStep, opts ExportOptions) []Frame {
	dt := float32(opts.Step.Seconds())
	var frames []Frame
	tick := 0
	advance := func() {
		p.Update(dt)
		tick++
		if tick%opts.Every == 0 {
			frames = append(frames, p.Frame())
		}
	}

	frames = append(frames, p.Frame())
	for _, st := range steps {
		if st.Toggle != "" {
			p.Controller().Toggle(st.Toggle)
		}
		for elapsed := time.Duration(0); elapsed < st.Wait; elapsed += opts.Step {
			advance()
		}
	}
	for elapsed := time.Duration(0); elapsed < opts.Settle && p.Animating(); elapsed += opts.Step {
		advance()
	}
	return frames
}

func framePath(dir string, i int, ext string) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%04d.%s", i, ext))
}

func writeFrame(ctx context.Context, path string, f Frame, cfg Config,
	encode func(w io.Writer, f Frame, cfg Config) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	if err := encode(out, f, cfg); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}
