package willowtree

import (
	"io"
	"log/slog"
	"os"
)

// TransitionEvent describes one dispatched action and its outcome.
type TransitionEvent struct {
	Action     Action
	Applied    bool   // false when the action was a no-op
	Generation uint64 // state generation after the action
}

// EventSink is the interface for optional ECS integration. When set on a
// Controller, every dispatched action is forwarded to the sink.
type EventSink interface {
	EmitTransition(event TransitionEvent)
}

// Controller owns the authoritative tree state. It interprets intents and
// completion signals through Reduce and swaps in each resulting snapshot.
//
// Controller is single-threaded: call it from the game loop only.
type Controller struct {
	state  *State
	engine LayoutEngine
	sink   EventSink
	logger *slog.Logger

	subscribers []subscriber
	nextSubID   uint32
}

type subscriber struct {
	id uint32
	fn func(*State)
}

// Option configures a Controller at construction.
type Option func(*Controller)

// WithLogger routes the controller's diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.SetLogger(l) }
}

// WithEventSink forwards every dispatched action to sink.
func WithEventSink(sink EventSink) Option {
	return func(c *Controller) { c.sink = sink }
}

// New validates root, lays it out with engine, and returns a Controller in
// the initial state (everything open and visible).
func New(root *TreeNode, engine LayoutEngine, opts ...Option) (*Controller, error) {
	s, err := NewState(root, engine)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		state:  s,
		engine: engine,
		logger: discardLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// State returns the current snapshot. Snapshots are immutable.
func (c *Controller) State() *State {
	return c.state
}

// Engine returns the layout engine the controller was built with.
func (c *Controller) Engine() LayoutEngine {
	return c.engine
}

// Dispatch reduces a against the current state. If the state changed,
// subscribers are notified with the new snapshot. Returns whether the action
// had any effect.
func (c *Controller) Dispatch(a Action) bool {
	prev := c.state
	next := Reduce(prev, a, c.engine)
	applied := next != prev
	if applied {
		c.state = next
		c.logger.Debug("transition", "action", a.String(), "generation", next.Generation())
	} else {
		c.logger.Debug("ignored", "action", a.String())
	}
	if c.sink != nil {
		c.sink.EmitTransition(TransitionEvent{Action: a, Applied: applied, Generation: c.state.Generation()})
	}
	if applied {
		c.notify()
	}
	return applied
}

// Open dispatches an Open intent for name.
func (c *Controller) Open(name string) bool {
	return c.Dispatch(Open{Name: name})
}

// Close dispatches a Close intent for name.
func (c *Controller) Close(name string) bool {
	return c.Dispatch(Close{Name: name})
}

// Toggle closes name when it is open and opens it otherwise. This is what a
// click on a node does.
func (c *Controller) Toggle(name string) bool {
	v, ok := c.state.Visual(name)
	if !ok {
		return false
	}
	if v.Open {
		return c.Close(name)
	}
	return c.Open(name)
}

// Complete reports that name's animation for generation has finished. A
// hidden node is removed, a visible one is stopped.
func (c *Controller) Complete(name string, generation uint64) bool {
	v, ok := c.state.Visual(name)
	if !ok {
		return false
	}
	if !v.Visible {
		return c.Dispatch(Remove{Name: name, Generation: generation})
	}
	return c.Dispatch(Stop{Name: name, Generation: generation})
}

// Reset discards all state and starts over from root. Generations keep
// counting up from the discarded state, so every surviving node is
// retargeted and animations started before the reset complete as stale.
// On error the current state is kept.
func (c *Controller) Reset(root *TreeNode) error {
	s, err := newState(root, c.engine, c.state.Generation())
	if err != nil {
		c.logger.Warn("reset rejected", "err", err)
		return err
	}
	c.state = s
	c.logger.Debug("reset", "nodes", len(s.Names()), "generation", s.Generation())
	c.notify()
	return nil
}

// SetEngine replaces the layout engine (for example after a viewport
// change) and reinitialises from the current logical tree.
func (c *Controller) SetEngine(engine LayoutEngine) {
	c.engine = engine
	root := c.state.fullTree()
	if err := c.Reset(root); err != nil {
		// The tree was validated when it first entered the controller.
		panic("willowtree: reset with a validated tree failed: " + err.Error())
	}
}

// Subscribe registers fn to be called with every new snapshot. The returned
// function unregisters it.
func (c *Controller) Subscribe(fn func(*State)) (unsubscribe func()) {
	c.nextSubID++
	id := c.nextSubID
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i := range c.subscribers {
			if c.subscribers[i].id == id {
				copy(c.subscribers[i:], c.subscribers[i+1:])
				c.subscribers[len(c.subscribers)-1] = subscriber{}
				c.subscribers = c.subscribers[:len(c.subscribers)-1]
				return
			}
		}
	}
}

func (c *Controller) notify() {
	s := c.state
	for _, sub := range c.subscribers {
		sub.fn(s)
	}
}

// SetEventSink sets the optional ECS bridge.
func (c *Controller) SetEventSink(sink EventSink) {
	c.sink = sink
}

// SetLogger routes the controller's diagnostics to l. A nil logger silences
// them.
func (c *Controller) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	c.logger = l
}

// SetDebugMode enables or disables debug diagnostics. When enabled, every
// dispatched action is logged to stderr.
func (c *Controller) SetDebugMode(enabled bool) {
	if !enabled {
		c.logger = discardLogger
		return
	}
	c.logger = NewDebugLogger(os.Stderr)
}

// NewDebugLogger returns a debug-level text logger tagged with the
// willowtree component.
func NewDebugLogger(w io.Writer) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("component", "willowtree")
}
