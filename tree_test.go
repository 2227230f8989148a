package willowtree

import (
	"errors"
	"testing"
)

// tn builds a TreeNode; a shorthand for test fixtures.
func tn(name string, children ...*TreeNode) *TreeNode {
	return &TreeNode{Name: name, Children: children}
}

func TestValidateTreeAccepts(t *testing.T) {
	root := tn("root", tn("A", tn("C"), tn("D")), tn("B"))
	if err := ValidateTree(root); err != nil {
		t.Fatalf("ValidateTree = %v, want nil", err)
	}
}

func TestValidateTreeRejects(t *testing.T) {
	shared := tn("S")
	loop := tn("L")
	loop.Children = []*TreeNode{tn("M", loop)}
	self := tn("self")
	self.Children = []*TreeNode{self}

	tests := []struct {
		name string
		root *TreeNode
		want error
	}{
		{"nil root", nil, ErrNilTree},
		{"nil child", tn("root", nil), ErrNilTree},
		{"empty root name", tn(""), ErrEmptyName},
		{"empty child name", tn("root", tn("")), ErrEmptyName},
		{"duplicate siblings", tn("root", tn("A"), tn("A")), ErrDuplicateName},
		{"duplicate cousins", tn("root", tn("A", tn("X")), tn("B", tn("X"))), ErrDuplicateName},
		{"shared subtree", tn("root", tn("A", shared), tn("B", shared)), ErrDuplicateName},
		{"cycle", tn("root", loop), ErrCycle},
		{"own child", self, ErrCycle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTree(tt.root)
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateTree = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTreeCloneIsDeep(t *testing.T) {
	root := tn("root", tn("A", tn("C")), tn("B"))
	c := root.Clone()
	c.Children[0].Name = "changed"
	c.Children[0].Children = nil

	if root.Children[0].Name != "A" {
		t.Errorf("original child renamed to %q", root.Children[0].Name)
	}
	if len(root.Children[0].Children) != 1 {
		t.Error("original grandchild detached by clone mutation")
	}
	if (*TreeNode)(nil).Clone() != nil {
		t.Error("nil.Clone() should be nil")
	}
}

func TestTreeWalkPreOrder(t *testing.T) {
	root := tn("root", tn("A", tn("C"), tn("D")), tn("B"))
	var got []string
	root.Walk(func(n *TreeNode) { got = append(got, n.Name) })

	want := []string{"root", "A", "C", "D", "B"}
	if len(got) != len(want) {
		t.Fatalf("walk = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("walk[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if n := root.Count(); n != 5 {
		t.Errorf("Count = %d, want 5", n)
	}
}
