package willowtree

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// TreeNode is the caller-supplied logical tree. Names identify nodes for the
// whole session and must be unique within one tree.
type TreeNode struct {
	Name     string      `json:"name" yaml:"name"`
	Children []*TreeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Validation errors returned (wrapped) by ValidateTree.
var (
	ErrNilTree       = errors.New("willowtree: nil tree")
	ErrEmptyName     = errors.New("willowtree: empty node name")
	ErrDuplicateName = errors.New("willowtree: duplicate node name")
	ErrCycle         = errors.New("willowtree: tree contains a cycle")
)

// ValidateTree checks the caller contract for an input tree: a non-nil root,
// non-empty unique names, and a proper tree shape (no cycles, no subtree
// reachable through two parents).
func ValidateTree(root *TreeNode) error {
	if root == nil {
		return ErrNilTree
	}

	g := simple.NewDirectedGraph()
	ids := make(map[*TreeNode]int64)
	names := make(map[string]*TreeNode)

	var visit func(n *TreeNode) error
	visit = func(n *TreeNode) error {
		if n.Name == "" {
			return ErrEmptyName
		}
		if prev, ok := names[n.Name]; ok && prev != n {
			return fmt.Errorf("%w: %q", ErrDuplicateName, n.Name)
		}
		names[n.Name] = n
		id := ids[n]
		for _, c := range n.Children {
			if c == nil {
				return fmt.Errorf("%w: nil child of %q", ErrNilTree, n.Name)
			}
			if c == n {
				return fmt.Errorf("%w: %q is its own child", ErrCycle, n.Name)
			}
			cid, seen := ids[c]
			if !seen {
				cid = int64(len(ids))
				ids[c] = cid
				g.AddNode(simple.Node(cid))
			}
			g.SetEdge(g.NewEdge(simple.Node(id), simple.Node(cid)))
			if seen {
				// Already walked; only the edge matters for cycle detection.
				continue
			}
			if err := visit(c); err != nil {
				return err
			}
		}
		return nil
	}

	ids[root] = 0
	g.AddNode(simple.Node(0))
	if err := visit(root); err != nil {
		return err
	}

	if _, err := topo.Sort(g); err != nil {
		return fmt.Errorf("%w: %v", ErrCycle, err)
	}
	for n, id := range ids {
		if g.To(id).Len() > 1 {
			return fmt.Errorf("%w: %q has more than one parent", ErrDuplicateName, n.Name)
		}
	}
	return nil
}

// Clone returns a deep copy of the tree. Nil input yields nil.
func (n *TreeNode) Clone() *TreeNode {
	if n == nil {
		return nil
	}
	c := &TreeNode{Name: n.Name}
	if n.Children != nil {
		c.Children = make([]*TreeNode, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Walk calls fn for n and every descendant in depth-first pre-order.
func (n *TreeNode) Walk(fn func(*TreeNode)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Count returns the number of nodes in the tree.
func (n *TreeNode) Count() int {
	count := 0
	n.Walk(func(*TreeNode) { count++ })
	return count
}

// shape is the immutable static structure of a validated input tree,
// shared by every State derived from it.
type shape struct {
	rootName string
	children map[string][]string
	parent   map[string]string
	order    []string // pre-order
}

func newShape(root *TreeNode) *shape {
	s := &shape{
		rootName: root.Name,
		children: make(map[string][]string),
		parent:   make(map[string]string),
	}
	root.Walk(func(n *TreeNode) {
		s.order = append(s.order, n.Name)
		if len(n.Children) == 0 {
			return
		}
		names := make([]string, len(n.Children))
		for i, c := range n.Children {
			names[i] = c.Name
			s.parent[c.Name] = n.Name
		}
		s.children[n.Name] = names
	})
	return s
}

func (s *shape) has(name string) bool {
	if name == s.rootName {
		return true
	}
	_, ok := s.parent[name]
	return ok
}
