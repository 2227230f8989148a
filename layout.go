package willowtree

// LayoutNode is one node of a computed layout. A layout is regenerated
// wholesale on every relayout and never patched.
type LayoutNode struct {
	Node     *TreeNode
	Position Vec2
	Depth    int
	Parent   *LayoutNode
	Children []*LayoutNode
}

// Name returns the wrapped node's name.
func (n *LayoutNode) Name() string {
	return n.Node.Name
}

// Descendants returns n followed by all of its descendants in pre-order.
func (n *LayoutNode) Descendants() []*LayoutNode {
	var out []*LayoutNode
	n.walk(func(d *LayoutNode) { out = append(out, d) })
	return out
}

func (n *LayoutNode) walk(fn func(*LayoutNode)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

// Find returns the first node named name in pre-order, or nil.
func (n *LayoutNode) Find(name string) *LayoutNode {
	if n == nil {
		return nil
	}
	if n.Node.Name == name {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// LayoutEngine computes a position for every node of a rooted tree. It must
// be a pure function of the tree shape: identical shapes yield identical
// positions. A nil root yields nil.
type LayoutEngine interface {
	Layout(root *TreeNode) *LayoutNode
}

// LayoutFunc adapts a plain function to LayoutEngine.
type LayoutFunc func(root *TreeNode) *LayoutNode

// Layout calls f(root).
func (f LayoutFunc) Layout(root *TreeNode) *LayoutNode {
	return f(root)
}

// DefaultGutter is the horizontal room kept free right of the deepest level
// for labels.
const DefaultGutter = 160

// TidyLayout is a left-to-right tidy tree layout (Buchheim, Jünger and
// Leipert's linear-time Walker algorithm). Siblings are separated by one
// unit, cousins by two. Position.X is the depth axis scaled into
// [0, Width-Gutter] and Position.Y the breadth axis scaled into [0, Height].
type TidyLayout struct {
	Width  float64
	Height float64
	Gutter float64
}

// NewTidyLayout returns a TidyLayout for the given viewport with the
// default gutter.
func NewTidyLayout(width, height float64) TidyLayout {
	return TidyLayout{Width: width, Height: height, Gutter: DefaultGutter}
}

// tidyNode carries the per-node bookkeeping of the Walker algorithm.
type tidyNode struct {
	out      *LayoutNode
	parent   *tidyNode
	children []*tidyNode

	defaultAncestor *tidyNode // A
	ancestor        *tidyNode // a
	prelim          float64   // z
	mod             float64   // m
	change          float64   // c
	shift           float64   // s
	thread          *tidyNode // t
	index           int       // i
}

// Layout implements LayoutEngine.
func (l TidyLayout) Layout(root *TreeNode) *LayoutNode {
	if root == nil {
		return nil
	}

	t := buildTidy(root, nil, nil, 0, 0)
	// A virtual parent lets the root go through the same walks as any node.
	virtual := &tidyNode{children: []*tidyNode{t}}
	virtual.ancestor = virtual
	t.parent = virtual

	postOrder(t, firstWalk)
	virtual.mod = -t.prelim
	preOrder(t, secondWalk)

	// Normalise into the viewport.
	left, right, bottom := t, t, t
	preOrder(t, func(v *tidyNode) {
		if v.out.Position.Y < left.out.Position.Y {
			left = v
		}
		if v.out.Position.Y > right.out.Position.Y {
			right = v
		}
		if v.out.Depth > bottom.out.Depth {
			bottom = v
		}
	})
	s := 1.0
	if left != right {
		s = separation(left, right) / 2
	}
	tx := s - left.out.Position.Y
	kx := l.Height / (right.out.Position.Y + s + tx)
	depth := bottom.out.Depth
	if depth == 0 {
		depth = 1
	}
	ky := (l.Width - l.Gutter) / float64(depth)
	preOrder(t, func(v *tidyNode) {
		v.out.Position = Vec2{
			X: float64(v.out.Depth) * ky,
			Y: (v.out.Position.Y + tx) * kx,
		}
	})
	return t.out
}

func buildTidy(n *TreeNode, parent *tidyNode, parentOut *LayoutNode, index, depth int) *tidyNode {
	out := &LayoutNode{Node: n, Depth: depth, Parent: parentOut}
	v := &tidyNode{out: out, parent: parent, index: index}
	v.ancestor = v
	if len(n.Children) > 0 {
		v.children = make([]*tidyNode, len(n.Children))
		out.Children = make([]*LayoutNode, len(n.Children))
		for i, c := range n.Children {
			v.children[i] = buildTidy(c, v, out, i, depth+1)
			out.Children[i] = v.children[i].out
		}
	}
	return v
}

func preOrder(v *tidyNode, fn func(*tidyNode)) {
	fn(v)
	for _, c := range v.children {
		preOrder(c, fn)
	}
}

func postOrder(v *tidyNode, fn func(*tidyNode)) {
	for _, c := range v.children {
		postOrder(c, fn)
	}
	fn(v)
}

func separation(a, b *tidyNode) float64 {
	if a.parent == b.parent {
		return 1
	}
	return 2
}

func firstWalk(v *tidyNode) {
	siblings := v.parent.children
	var w *tidyNode
	if v.index > 0 {
		w = siblings[v.index-1]
	}
	if len(v.children) > 0 {
		executeShifts(v)
		midpoint := (v.children[0].prelim + v.children[len(v.children)-1].prelim) / 2
		if w != nil {
			v.prelim = w.prelim + separation(v, w)
			v.mod = v.prelim - midpoint
		} else {
			v.prelim = midpoint
		}
	} else if w != nil {
		v.prelim = w.prelim + separation(v, w)
	}
	da := v.parent.defaultAncestor
	if da == nil {
		da = siblings[0]
	}
	v.parent.defaultAncestor = apportion(v, w, da)
}

func secondWalk(v *tidyNode) {
	// Position.Y temporarily holds the breadth coordinate until normalised.
	v.out.Position.Y = v.prelim + v.parent.mod
	v.mod += v.parent.mod
}

func apportion(v, w, ancestor *tidyNode) *tidyNode {
	if w == nil {
		return ancestor
	}
	vip, vop := v, v
	vim := w
	vom := v.parent.children[0]
	sip, sop := vip.mod, vop.mod
	sim, som := vim.mod, vom.mod
	for {
		vim = nextRight(vim)
		vip = nextLeft(vip)
		if vim == nil || vip == nil {
			break
		}
		vom = nextLeft(vom)
		vop = nextRight(vop)
		vop.ancestor = v
		shift := vim.prelim + sim - vip.prelim - sip + separation(vim, vip)
		if shift > 0 {
			moveSubtree(nextAncestor(vim, v, ancestor), v, shift)
			sip += shift
			sop += shift
		}
		sim += vim.mod
		sip += vip.mod
		som += vom.mod
		sop += vop.mod
	}
	if vim != nil && nextRight(vop) == nil {
		vop.thread = vim
		vop.mod += sim - sop
	}
	if vip != nil && nextLeft(vom) == nil {
		vom.thread = vip
		vom.mod += sip - som
		ancestor = v
	}
	return ancestor
}

func nextLeft(v *tidyNode) *tidyNode {
	if len(v.children) > 0 {
		return v.children[0]
	}
	return v.thread
}

func nextRight(v *tidyNode) *tidyNode {
	if len(v.children) > 0 {
		return v.children[len(v.children)-1]
	}
	return v.thread
}

func moveSubtree(wm, wp *tidyNode, shift float64) {
	change := shift / float64(wp.index-wm.index)
	wp.change -= change
	wp.shift += shift
	wm.change += change
	wp.prelim += shift
	wp.mod += shift
}

func executeShifts(v *tidyNode) {
	shift, change := 0.0, 0.0
	for i := len(v.children) - 1; i >= 0; i-- {
		w := v.children[i]
		w.prelim += shift
		w.mod += shift
		change += w.change
		shift += w.shift + change
	}
}

func nextAncestor(vim, v, ancestor *tidyNode) *tidyNode {
	if vim.ancestor.parent == v.parent {
		return vim.ancestor
	}
	return ancestor
}
