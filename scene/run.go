package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit can be returned from RunConfig.Update to end Run cleanly.
var ErrQuit = errors.New("willowtree: quit")

// RunConfig describes the window Run opens.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS adds an FPS widget in the top-left corner.
	ShowFPS bool
	// Debug enables the scene's debug diagnostics.
	Debug bool
	// Update, if set, runs every tick before the scene updates. Returning
	// ErrQuit ends Run without error; any other error is returned by Run.
	Update func() error
	// QuitWhenDone ends Run once an attached TestRunner has finished.
	QuitWhenDone bool
}

// Run opens a window and drives s until the window is closed.
func Run(s *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 500
	}
	if cfg.Debug {
		s.SetDebugMode(true)
	}
	if cfg.ShowFPS {
		s.Root().AddChild(NewFPSWidget())
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	err := ebiten.RunGame(&game{scene: s, cfg: cfg})
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	g.scene.Update()
	// Quit one frame late so the final screenshot has been drawn.
	if g.cfg.QuitWhenDone && g.scene.testRunner != nil && g.scene.testRunner.Done() &&
		len(g.scene.screenshotQueue) == 0 {
		return ErrQuit
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
