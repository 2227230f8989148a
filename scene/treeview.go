package scene

import (
	"github.com/phanxgames/willowtree"
)

// linkSegments is how many straight segments approximate one link curve.
const linkSegments = 16

// TreeView mirrors a Presenter's frames into scene nodes: one path per
// edge under one group per tree node (a circle plus a label). Clicking a
// visible node's circle toggles it.
type TreeView struct {
	presenter *willowtree.Presenter

	node  *Node
	edges *Node
	nodes *Node

	groups map[string]*treeGroup
	links  map[string]*Node
}

type treeGroup struct {
	group  *Node
	circle *Node
	label  *Node
	click  func()
}

// NewTreeView creates a view of p. Add Node() to a scene and register the
// view with AddUpdater, or use Scene.AddTreeView which does both.
func NewTreeView(p *willowtree.Presenter) *TreeView {
	v := &TreeView{
		presenter: p,
		node:      NewContainer("tree"),
		edges:     NewContainer("tree/edges"),
		nodes:     NewContainer("tree/nodes"),
		groups:    make(map[string]*treeGroup),
		links:     make(map[string]*Node),
	}
	v.node.Interactable = true
	v.nodes.Interactable = true
	v.node.X = p.Config().Margin
	v.node.AddChild(v.edges)
	v.node.AddChild(v.nodes)
	v.sync(p.Frame())
	return v
}

// AddTreeView attaches a view of p to the scene root and returns it.
func (s *Scene) AddTreeView(p *willowtree.Presenter) *TreeView {
	v := NewTreeView(p)
	s.root.AddChild(v.node)
	s.AddUpdater(v)
	s.trees = append(s.trees, v)
	return v
}

// Node returns the view's root container.
func (v *TreeView) Node() *Node {
	return v.node
}

// NodeNamed returns the scene group drawn for the named tree node, or nil
// when the node is not mounted.
func (v *TreeView) NodeNamed(name string) *Node {
	if g, ok := v.groups[name]; ok {
		return g.group
	}
	return nil
}

// Presenter returns the presenter the view draws.
func (v *TreeView) Presenter() *willowtree.Presenter {
	return v.presenter
}

// Update advances the presenter by dt and refreshes the scene nodes.
func (v *TreeView) Update(dt float32) {
	v.presenter.Update(dt)
	v.sync(v.presenter.Frame())
}

func (v *TreeView) sync(f willowtree.Frame) {
	seen := make(map[string]bool, len(f.Nodes))
	for _, fn := range f.Nodes {
		seen[fn.Name] = true
		g, ok := v.groups[fn.Name]
		if !ok {
			g = v.mount(fn.Name)
		}
		g.group.SetPosition(fn.Position.X, fn.Position.Y)
		g.group.Alpha = fn.Opacity
		g.circle.Color = willowtree.NodeColor(fn.Open)
		// Fading-out nodes are on their way to removal.
		g.circle.Interactable = fn.Visible
		g.click = fn.OnClick
	}
	for name, g := range v.groups {
		if !seen[name] {
			g.group.RemoveFromParent()
			delete(v.groups, name)
		}
	}

	linked := make(map[string]bool, len(f.Edges))
	for _, e := range f.Edges {
		linked[e.Child] = true
		p, ok := v.links[e.Child]
		if !ok {
			p = NewPath("edge/"+e.Child, nil, 1.5, willowtree.ColorLink)
			v.links[e.Child] = p
			v.edges.AddChild(p)
		}
		p.Points = curvePoints(p.Points[:0], e.From, e.To)
	}
	for child, p := range v.links {
		if !linked[child] {
			p.RemoveFromParent()
			delete(v.links, child)
		}
	}
}

func (v *TreeView) mount(name string) *treeGroup {
	g := &treeGroup{
		group:  NewContainer(name),
		circle: NewCircle(name+"/circle", willowtree.NodeRadius, willowtree.ColorOpenNode),
		label:  NewLabel(name+"/label", name),
	}
	g.group.Interactable = true
	g.label.X = -willowtree.NodeRadius - 2
	g.circle.OnClick = func(ClickContext) {
		if g.click != nil {
			g.click()
		}
	}
	g.group.AddChild(g.circle)
	g.group.AddChild(g.label)
	v.nodes.AddChild(g.group)
	v.groups[name] = g
	return g
}

// curvePoints flattens the link curve from a to b into buf.
func curvePoints(buf []willowtree.Vec2, a, b willowtree.Vec2) []willowtree.Vec2 {
	c1, c2 := willowtree.LinkCurve(a, b)
	for i := 0; i <= linkSegments; i++ {
		t := float64(i) / linkSegments
		u := 1 - t
		buf = append(buf, willowtree.Vec2{
			X: u*u*u*a.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*b.X,
			Y: u*u*u*a.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*b.Y,
		})
	}
	return buf
}
