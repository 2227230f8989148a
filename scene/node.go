package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/willowtree"
)

// HitShape is a custom hit testing region in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// ClickContext carries click event data.
type ClickContext struct {
	Node      *Node
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeCircle                    // filled circle of Radius
	NodeTypeLabel                     // debug-font text, right-aligned at the origin
	NodeTypePath                      // stroked polyline through Points
	NodeTypeImage                     // user-provided image
)

// nodeIDCounter is a plain counter; scenes are single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element. A single flat struct is used for all
// node types.
type Node struct {
	ID   uint32
	Name string
	Type NodeType

	Parent   *Node
	children []*Node

	// Local translation. Children inherit their parent's offset and alpha.
	X, Y float64

	worldX, worldY float64
	worldAlpha     float64

	Alpha        float64
	Visible      bool
	Interactable bool

	Color willowtree.Color

	// NodeTypeCircle
	Radius float64
	// NodeTypeLabel
	Text string
	// NodeTypePath
	Points      []willowtree.Vec2
	StrokeWidth float64
	// NodeTypeImage
	Image *ebiten.Image

	HitShape HitShape

	OnClick  func(ClickContext)
	OnUpdate func(dt float64)

	UserData any
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Color = willowtree.Color{R: 1, G: 1, B: 1, A: 1}
	n.Visible = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewCircle creates a filled circle centered on the node's origin. The
// circle is its own hit shape.
func NewCircle(name string, radius float64, c willowtree.Color) *Node {
	n := &Node{Name: name, Type: NodeTypeCircle, Radius: radius, HitShape: HitCircle{Radius: radius}}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewLabel creates a text node whose right edge sits on the node's origin.
func NewLabel(name, text string) *Node {
	n := &Node{Name: name, Type: NodeTypeLabel, Text: text}
	nodeDefaults(n)
	return n
}

// NewPath creates a stroked polyline through points.
func NewPath(name string, points []willowtree.Vec2, width float64, c willowtree.Color) *Node {
	n := &Node{Name: name, Type: NodeTypePath, Points: points, StrokeWidth: width}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewImage creates a node that draws img with its top-left at the origin.
func NewImage(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Type: NodeTypeImage, Image: img}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("willowtree: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("willowtree: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("willowtree: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Find returns the first node named name in this subtree, depth first.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
