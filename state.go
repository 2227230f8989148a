package willowtree

import "maps"

// NodeVisualState is the per-node visual bookkeeping layered on top of the
// logical tree. It is keyed by node name and survives relayouts and
// Open/Close cycles.
type NodeVisualState struct {
	// Open reports whether the node's subtree is expanded.
	Open bool
	// Visible is false while the node animates out, before its removal.
	Visible bool
	// Pos0 is the previous position: where the next animation starts.
	Pos0 Vec2
	// Pos1 is the target position: where the current animation ends.
	Pos1 Vec2
	// Generation is stamped on every relayout that includes the node.
	// Completion signals carrying an older generation are stale.
	Generation uint64
}

// State is an immutable snapshot of the tree controller: the logical tree
// (with per-node attached or stashed children), the visual state of every
// node, and the layout computed from the attached shape. Transitions never
// modify a State; they build a new one.
type State struct {
	shape   *shape
	stashed map[string]bool
	visual  map[string]NodeVisualState
	layout  *LayoutNode
	index   map[string]*LayoutNode
	gen     uint64
}

// NewState lays out the validated tree and returns the initial snapshot:
// every node attached, open and visible, starting at the root's position and
// targeting its own.
func NewState(root *TreeNode, engine LayoutEngine) (*State, error) {
	return newState(root, engine, 0)
}

// newState is NewState with generations continuing after gen, so that
// views and completion signals of an earlier state read as stale.
func newState(root *TreeNode, engine LayoutEngine, gen uint64) (*State, error) {
	if err := ValidateTree(root); err != nil {
		return nil, err
	}
	s := &State{
		shape:   newShape(root),
		stashed: make(map[string]bool),
		visual:  make(map[string]NodeVisualState),
		gen:     gen,
	}
	s.relayout(engine)
	if s.layout == nil {
		return s, nil
	}
	origin := s.layout.Position
	for _, n := range s.layout.Descendants() {
		s.visual[n.Name()] = NodeVisualState{
			Open:       true,
			Visible:    true,
			Pos0:       origin,
			Pos1:       n.Position,
			Generation: s.gen,
		}
	}
	return s, nil
}

// clone returns a shallow copy that owns its own stash set and visual map.
// The layout is shared until relayout replaces it.
func (s *State) clone() *State {
	return &State{
		shape:   s.shape,
		stashed: maps.Clone(s.stashed),
		visual:  maps.Clone(s.visual),
		layout:  s.layout,
		index:   s.index,
		gen:     s.gen,
	}
}

// relayout rebuilds the attached tree, lays it out, and stamps a new
// generation on every node of the new layout.
func (s *State) relayout(engine LayoutEngine) {
	s.gen++
	s.layout = engine.Layout(s.Tree())
	s.index = make(map[string]*LayoutNode)
	if s.layout == nil {
		return
	}
	s.layout.walk(func(n *LayoutNode) {
		if _, dup := s.index[n.Name()]; !dup {
			s.index[n.Name()] = n
		}
		if v, ok := s.visual[n.Name()]; ok {
			v.Generation = s.gen
			s.visual[n.Name()] = v
		}
	})
}

// Tree returns a fresh TreeNode tree holding only attached children: the
// shape the layout engine sees.
func (s *State) Tree() *TreeNode {
	var build func(name string) *TreeNode
	build = func(name string) *TreeNode {
		n := &TreeNode{Name: name}
		if s.stashed[name] {
			return n
		}
		for _, c := range s.shape.children[name] {
			n.Children = append(n.Children, build(c))
		}
		return n
	}
	return build(s.shape.rootName)
}

// Layout returns the root of the current layout.
func (s *State) Layout() *LayoutNode {
	return s.layout
}

// LayoutNode returns the named node of the current layout, or nil when the
// node is not laid out (unknown, or below a stashed ancestor).
func (s *State) LayoutNode(name string) *LayoutNode {
	return s.index[name]
}

// Visual returns the named node's visual state.
func (s *State) Visual(name string) (NodeVisualState, bool) {
	v, ok := s.visual[name]
	return v, ok
}

// Generation returns the generation stamped by the most recent relayout.
func (s *State) Generation() uint64 {
	return s.gen
}

// Children returns the node's attached children, or nil when they are
// stashed or the node is a leaf. The returned slice MUST NOT be mutated.
func (s *State) Children(name string) []string {
	if s.stashed[name] {
		return nil
	}
	return s.shape.children[name]
}

// StashedChildren returns the children detached from the node on collapse,
// or nil when they are attached. The returned slice MUST NOT be mutated.
func (s *State) StashedChildren(name string) []string {
	if !s.stashed[name] {
		return nil
	}
	return s.shape.children[name]
}

// Parent returns the logical parent of name and whether it has one.
func (s *State) Parent(name string) (string, bool) {
	p, ok := s.shape.parent[name]
	return p, ok
}

// Names returns every node name of the logical tree in pre-order. The
// returned slice MUST NOT be mutated.
func (s *State) Names() []string {
	return s.shape.order
}

// Has reports whether name belongs to the logical tree.
func (s *State) Has(name string) bool {
	return s.shape.has(name)
}

// fullTree rebuilds the logical tree with every child attached.
func (s *State) fullTree() *TreeNode {
	var build func(name string) *TreeNode
	build = func(name string) *TreeNode {
		n := &TreeNode{Name: name}
		for _, c := range s.shape.children[name] {
			n.Children = append(n.Children, build(c))
		}
		return n
	}
	return build(s.shape.rootName)
}
