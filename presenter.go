package willowtree

import "github.com/tanema/gween/ease"

// Frame is one renderable picture of the diagram in layout coordinates.
// Renderers add Config.Margin on the X axis.
type Frame struct {
	Edges []FrameEdge
	Nodes []FrameNode
}

// FrameNode is a node as it is currently displayed.
type FrameNode struct {
	Name     string
	Position Vec2
	Opacity  float64
	Open     bool
	Visible  bool
	// OnClick toggles the node on the controller the frame came from.
	OnClick func()
}

// FrameEdge is the link from Parent to Child as currently displayed.
type FrameEdge struct {
	Parent string
	Child  string
	From   Vec2
	To     Vec2
}

// Presenter turns controller snapshots into animated frames. Every laid-out
// node gets one point tween and one edge tween; a new generation retargets
// them from wherever they are displayed right now.
//
// Presenter is not safe for concurrent use. Drive it from the same loop as
// its Controller.
type Presenter struct {
	ctrl     *Controller
	cfg      Config
	easing   ease.TweenFunc
	duration float32

	views       map[string]*nodeView
	order       []string
	pending     []completion
	unsubscribe func()
}

type nodeView struct {
	name   string
	parent string

	pos   Vec2
	alpha float64
	gen   uint64
	tween *TweenGroup

	from, to  Vec2
	edgeTween *TweenGroup
}

type completion struct {
	name string
	gen  uint64
}

// NewPresenter subscribes to ctrl and mounts the current layout.
func NewPresenter(ctrl *Controller, cfg Config) *Presenter {
	p := &Presenter{
		ctrl:     ctrl,
		cfg:      cfg,
		easing:   EasingFunc(cfg.Easing),
		duration: cfg.Seconds(),
		views:    make(map[string]*nodeView),
	}
	p.unsubscribe = ctrl.Subscribe(p.sync)
	p.sync(ctrl.State())
	return p
}

// Controller returns the controller the presenter follows.
func (p *Presenter) Controller() *Controller {
	return p.ctrl
}

// Config returns the presenter's configuration.
func (p *Presenter) Config() Config {
	return p.cfg
}

// Close unsubscribes from the controller. The presenter keeps its last
// frame.
func (p *Presenter) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

// Update advances every animation by dt seconds. Finished node animations
// are reported to the controller once all tweens have been advanced.
func (p *Presenter) Update(dt float32) {
	for _, name := range p.order {
		v := p.views[name]
		if v.tween != nil {
			v.tween.Update(dt)
		}
		if v.edgeTween != nil {
			v.edgeTween.Update(dt)
		}
	}
	if len(p.pending) == 0 {
		return
	}
	done := p.pending
	p.pending = nil
	for _, c := range done {
		p.ctrl.Complete(c.name, c.gen)
	}
}

// Animating reports whether any node or edge is still moving.
func (p *Presenter) Animating() bool {
	for _, v := range p.views {
		if (v.tween != nil && !v.tween.Done) || (v.edgeTween != nil && !v.edgeTween.Done) {
			return true
		}
	}
	return len(p.pending) > 0
}

// Frame returns what should be drawn right now. Edges come first so nodes
// are drawn on top of them.
func (p *Presenter) Frame() Frame {
	s := p.ctrl.State()
	f := Frame{Nodes: make([]FrameNode, 0, len(p.order))}
	for _, name := range p.order {
		v := p.views[name]
		vis, _ := s.Visual(name)
		if v.parent != "" {
			f.Edges = append(f.Edges, FrameEdge{Parent: v.parent, Child: name, From: v.from, To: v.to})
		}
		f.Nodes = append(f.Nodes, FrameNode{
			Name:     name,
			Position: v.pos,
			Opacity:  v.alpha,
			Open:     vis.Open,
			Visible:  vis.Visible,
			OnClick:  p.toggler(name),
		})
	}
	return f
}

func (p *Presenter) toggler(name string) func() {
	return func() { p.ctrl.Toggle(name) }
}

// sync mounts, retargets and unmounts views to match s.
func (p *Presenter) sync(s *State) {
	root := s.Layout()
	seen := make(map[string]bool, len(p.views))
	p.order = p.order[:0]
	if root != nil {
		root.walk(func(n *LayoutNode) {
			name := n.Name()
			seen[name] = true
			p.order = append(p.order, name)
			p.syncNode(s, n)
		})
	}
	for name, v := range p.views {
		if !seen[name] {
			v.cancel()
			delete(p.views, name)
		}
	}
}

func (p *Presenter) syncNode(s *State, n *LayoutNode) {
	name := n.Name()
	vis, _ := s.Visual(name)
	v, mounted := p.views[name]
	if !mounted {
		v = &nodeView{name: name, pos: vis.Pos0, from: vis.Pos0, to: vis.Pos0}
		p.views[name] = v
	}
	if n.Parent != nil {
		v.parent = n.Parent.Name()
	} else {
		v.parent = ""
	}
	if mounted && v.gen == vis.Generation {
		return
	}
	v.gen = vis.Generation
	v.cancel()

	target := vis.Pos1
	alpha := 0.0
	if vis.Visible {
		alpha = 1
	}
	gen := vis.Generation
	v.tween = TweenPoint(&v.pos, &v.alpha, target, alpha, p.duration, p.easing)
	v.tween.OnComplete = func() {
		v.pos, v.alpha = target, alpha
		p.pending = append(p.pending, completion{name: name, gen: gen})
	}

	if v.parent == "" {
		return
	}
	from, to := target, target
	if vis.Visible {
		from = n.Parent.Position
	}
	v.edgeTween = TweenSegment(&v.from, &v.to, from, to, p.duration, p.easing)
	v.edgeTween.OnComplete = func() {
		v.from, v.to = from, to
	}
}

func (v *nodeView) cancel() {
	if v.tween != nil {
		v.tween.Cancel()
		v.tween = nil
	}
	if v.edgeTween != nil {
		v.edgeTween.Cancel()
		v.edgeTween = nil
	}
}
