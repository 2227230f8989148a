package ecs

import (
	"github.com/phanxgames/willowtree"

	"github.com/yohamta/donburi"
)

// NodeData is the component attached to every mirrored tree node.
type NodeData struct {
	Name       string
	Parent     string
	Depth      int
	Open       bool
	Visible    bool
	Target     willowtree.Vec2 // where the node is animating to
	Generation uint64
}

// NodeComponent holds a mirrored node's NodeData.
var NodeComponent = donburi.NewComponentType[NodeData]()

// Mirror maintains one entity per laid-out tree node. Entities are created
// when a node enters the layout and removed when it leaves.
type Mirror struct {
	world    donburi.World
	entities map[string]donburi.Entity
}

// NewMirror creates an empty mirror writing to world.
func NewMirror(world donburi.World) *Mirror {
	return &Mirror{world: world, entities: make(map[string]donburi.Entity)}
}

// Follow syncs the controller's current state and every state after it.
// The returned function stops following; entities are left in place.
func (m *Mirror) Follow(ctrl *willowtree.Controller) (unsubscribe func()) {
	m.Sync(ctrl.State())
	return ctrl.Subscribe(m.Sync)
}

// Entity returns the entity of the named node.
func (m *Mirror) Entity(name string) (donburi.Entity, bool) {
	e, ok := m.entities[name]
	return e, ok
}

// Len returns the number of mirrored nodes.
func (m *Mirror) Len() int {
	return len(m.entities)
}

// Sync brings the world in line with s.
func (m *Mirror) Sync(s *willowtree.State) {
	seen := make(map[string]bool, len(m.entities))
	if root := s.Layout(); root != nil {
		for _, n := range root.Descendants() {
			name := n.Name()
			seen[name] = true
			v, _ := s.Visual(name)
			data := NodeData{
				Name:       name,
				Depth:      n.Depth,
				Open:       v.Open,
				Visible:    v.Visible,
				Target:     v.Pos1,
				Generation: v.Generation,
			}
			if n.Parent != nil {
				data.Parent = n.Parent.Name()
			}
			e, ok := m.entities[name]
			if !ok || !m.world.Valid(e) {
				e = m.world.Create(NodeComponent)
				m.entities[name] = e
			}
			NodeComponent.SetValue(m.world.Entry(e), data)
		}
	}
	for name, e := range m.entities {
		if !seen[name] {
			if m.world.Valid(e) {
				m.world.Remove(e)
			}
			delete(m.entities, name)
		}
	}
}
