package scene

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/willowtree"
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Updater is advanced once per frame by the scene, before node OnUpdate
// callbacks run. TreeView is an Updater.
type Updater interface {
	Update(dt float32)
}

// Scene is the top-level object that owns the node tree, input state,
// per-frame updaters and screenshot queue.
type Scene struct {
	root   *Node
	debug  bool
	logger *slog.Logger
	frame  uint64

	// ClearColor fills the screen before the tree is drawn.
	ClearColor willowtree.Color
	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir string

	updaters []Updater
	trees    []*TreeView

	handlers    []clickHandler
	nextHandler uint32
	pointer     pointerState
	hitBuf      []*Node

	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []shot
	shots           int
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:          root,
		logger:        slog.New(slog.DiscardHandler),
		ClearColor:    willowtree.ColorBackground,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// AddUpdater registers u to be advanced every frame.
func (s *Scene) AddUpdater(u Updater) {
	s.updaters = append(s.updaters, u)
}

// Update runs one fixed tick: scripted steps, input, updaters, then node
// callbacks.
func (s *Scene) Update() {
	s.update(float32(1.0 / float64(ebiten.TPS())))
}

func (s *Scene) update(dt float32) {
	s.frame++
	// Hit testing runs against what was drawn last frame.
	updateWorldTransform(s.root, 0, 0, 1)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	for _, u := range s.updaters {
		u.Update(dt)
	}
	updateNodes(s.root, float64(dt))
}

func updateNodes(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, c := range n.children {
		updateNodes(c, dt)
	}
}

// Toggle toggles the named tree node on every tree view in the scene. It
// reports whether any view applied it.
func (s *Scene) Toggle(name string) bool {
	applied := false
	for _, t := range s.trees {
		if t.presenter.Controller().Toggle(name) {
			applied = true
		}
	}
	return applied
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame draw
// stats and screenshot failures are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	if enabled {
		s.logger = willowtree.NewDebugLogger(os.Stderr).With("subsystem", "scene")
	} else {
		s.logger = slog.New(slog.DiscardHandler)
	}
}

// SetLogger routes the scene's diagnostics to l.
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	s.logger = l
}
