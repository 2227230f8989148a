package scene

import "testing"

func TestWorldTransformAccumulates(t *testing.T) {
	root := NewContainer("root")
	mid := NewContainer("mid")
	leaf := NewContainer("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	root.SetPosition(50, 0)
	mid.SetPosition(100, 20)
	leaf.SetPosition(-10, 5)
	mid.Alpha = 0.5
	leaf.Alpha = 0.5
	updateWorldTransform(root, 0, 0, 1)

	if x, y := leaf.WorldPosition(); x != 140 || y != 25 {
		t.Errorf("leaf world = (%f, %f), want (140, 25)", x, y)
	}
	if a := leaf.WorldAlpha(); a != 0.25 {
		t.Errorf("leaf alpha = %f, want 0.25", a)
	}
}

func TestWorldLocalRoundTrip(t *testing.T) {
	root := NewContainer("root")
	n := NewContainer("n")
	root.AddChild(n)
	root.SetPosition(3, 4)
	n.SetPosition(10, 20)
	updateWorldTransform(root, 0, 0, 1)

	lx, ly := n.WorldToLocal(20, 30)
	if lx != 7 || ly != 6 {
		t.Errorf("WorldToLocal = (%f, %f), want (7, 6)", lx, ly)
	}
	if wx, wy := n.LocalToWorld(lx, ly); wx != 20 || wy != 30 {
		t.Errorf("LocalToWorld = (%f, %f), want (20, 30)", wx, wy)
	}
}
