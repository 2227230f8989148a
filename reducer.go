package willowtree

import "fmt"

// Action is one of the four intents or signals the tree controller
// interprets: Open, Close, Remove or Stop.
type Action interface {
	fmt.Stringer
	// Target returns the name of the node the action applies to.
	Target() string
	isAction()
}

// Open expands a node: stashed children are re-attached and every
// descendant fades in from the node's position.
type Open struct {
	Name string
}

// Close collapses a node: every descendant fades out toward the node's
// position. Children stay attached until a Remove arrives.
type Close struct {
	Name string
}

// Remove is the completion signal of a hidden node's animation. It stashes
// the children of the node's collapsed parent.
type Remove struct {
	Name string
	// Generation is the node generation the finished animation was started
	// for. Zero skips the staleness check.
	Generation uint64
}

// Stop is the completion signal of a visible node's animation. It anchors
// the node's next start point at its parent.
type Stop struct {
	Name       string
	Generation uint64
}

func (Open) isAction() {}
func (Close) isAction() {}
func (Remove) isAction() {}
func (Stop) isAction() {}

func (a Open) Target() string { return a.Name }
func (a Close) Target() string { return a.Name }
func (a Remove) Target() string { return a.Name }
func (a Stop) Target() string { return a.Name }

func (a Open) String() string { return fmt.Sprintf("open(%s)", a.Name) }
func (a Close) String() string { return fmt.Sprintf("close(%s)", a.Name) }
func (a Remove) String() string {
	return fmt.Sprintf("remove(%s@%d)", a.Name, a.Generation)
}
func (a Stop) String() string {
	return fmt.Sprintf("stop(%s@%d)", a.Name, a.Generation)
}

// Reduce applies a to s and returns the resulting snapshot. It never
// modifies s. Actions whose preconditions do not hold (unknown node, Close
// without attached children, Remove under an open parent, stale completion
// signals) return s itself.
func Reduce(s *State, a Action, engine LayoutEngine) *State {
	if s == nil || a == nil {
		return s
	}
	switch a := a.(type) {
	case Open:
		return reduceOpen(s, a, engine)
	case Close:
		return reduceClose(s, a, engine)
	case Remove:
		return reduceRemove(s, a, engine)
	case Stop:
		return reduceStop(s, a)
	}
	return s
}

func reduceOpen(s *State, a Open, engine LayoutEngine) *State {
	node := s.LayoutNode(a.Name)
	if node == nil {
		return s
	}
	from := node.Position

	next := s.clone()
	v := next.visual[a.Name]
	v.Open = true
	next.visual[a.Name] = v
	delete(next.stashed, a.Name)
	next.relayout(engine)

	opened := next.LayoutNode(a.Name)
	if opened == nil {
		return next
	}
	for _, c := range opened.Children {
		c.walk(func(d *LayoutNode) {
			dv := next.visual[d.Name()]
			dv.Visible = true
			dv.Pos0 = from
			next.visual[d.Name()] = dv
		})
	}
	next.retarget()
	return next
}

func reduceClose(s *State, a Close, engine LayoutEngine) *State {
	node := s.LayoutNode(a.Name)
	if node == nil || len(node.Children) == 0 {
		return s
	}
	anchor := node.Position

	next := s.clone()
	v := next.visual[a.Name]
	v.Open = false
	next.visual[a.Name] = v
	for _, c := range node.Children {
		c.walk(func(d *LayoutNode) {
			dv := next.visual[d.Name()]
			dv.Visible = false
			dv.Pos0 = dv.Pos1
			dv.Pos1 = anchor
			next.visual[d.Name()] = dv
		})
	}
	next.relayout(engine)
	return next
}

func reduceRemove(s *State, a Remove, engine LayoutEngine) *State {
	node := s.LayoutNode(a.Name)
	if node == nil || node.Parent == nil || stale(s, a.Name, a.Generation) {
		return s
	}
	parent := node.Parent.Name()
	if s.visual[parent].Open || len(s.Children(parent)) == 0 {
		return s
	}

	next := s.clone()
	next.stashed[parent] = true
	next.relayout(engine)
	next.retarget()
	return next
}

func reduceStop(s *State, a Stop) *State {
	node := s.LayoutNode(a.Name)
	if node == nil || stale(s, a.Name, a.Generation) {
		return s
	}
	v := s.visual[a.Name]
	if node.Parent != nil {
		v.Pos0 = node.Parent.Position
	} else {
		v.Pos0 = v.Pos1
	}
	if v == s.visual[a.Name] {
		return s
	}
	next := s.clone()
	next.visual[a.Name] = v
	return next
}

// retarget points every visible laid-out node at its freshly computed
// position.
func (s *State) retarget() {
	for name, n := range s.index {
		v, ok := s.visual[name]
		if !ok || !v.Visible {
			continue
		}
		v.Pos1 = n.Position
		s.visual[name] = v
	}
}

func stale(s *State, name string, gen uint64) bool {
	return gen != 0 && s.visual[name].Generation != gen
}
