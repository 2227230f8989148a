package ecs

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestMirrorFollow(t *testing.T) {
	world := donburi.NewWorld()
	ctrl := newController(t)
	m := NewMirror(world)
	stop := m.Follow(ctrl)
	defer stop()

	if m.Len() != 4 {
		t.Fatalf("mirrored %d nodes, want 4", m.Len())
	}
	e, ok := m.Entity("C")
	if !ok {
		t.Fatal("C not mirrored")
	}
	c := NodeComponent.Get(world.Entry(e))
	if c.Parent != "A" || c.Depth != 2 || !c.Visible || !c.Open {
		t.Errorf("C = %+v", *c)
	}
	if c.Target != ctrl.State().LayoutNode("C").Position {
		t.Errorf("C target = %v, want its layout position", c.Target)
	}
}

func TestMirrorTracksTransitions(t *testing.T) {
	world := donburi.NewWorld()
	ctrl := newController(t)
	m := NewMirror(world)
	m.Follow(ctrl)

	ctrl.Close("A")
	e, _ := m.Entity("C")
	if c := NodeComponent.Get(world.Entry(e)); c.Visible {
		t.Error("C still visible after closing A")
	}

	// Removing C takes it out of the layout and out of the world.
	ctrl.Complete("C", ctrl.State().Generation())
	if _, ok := m.Entity("C"); ok {
		t.Error("C still mirrored after removal")
	}
	if world.Valid(e) {
		t.Error("C's entity still alive")
	}

	count := 0
	donburi.NewQuery(filter.Contains(NodeComponent)).Each(world, func(*donburi.Entry) { count++ })
	if count != 3 {
		t.Errorf("query found %d nodes, want 3", count)
	}
}

func TestMirrorStopFollowing(t *testing.T) {
	world := donburi.NewWorld()
	ctrl := newController(t)
	m := NewMirror(world)
	stop := m.Follow(ctrl)
	stop()

	ctrl.Close("A")
	e, _ := m.Entity("C")
	if c := NodeComponent.Get(world.Entry(e)); !c.Visible {
		t.Error("mirror updated after unsubscribing")
	}
}
