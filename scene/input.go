package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointerState tracks the mouse between frames.
type pointerState struct {
	down    bool
	button  MouseButton
	hitNode *Node
}

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	scene *Scene
}

// Remove unregisters this callback. Safe to call more than once.
func (h CallbackHandle) Remove() {
	if h.scene == nil {
		return
	}
	hs := h.scene.handlers
	for i := range hs {
		if hs[i].id == h.id {
			copy(hs[i:], hs[i+1:])
			hs[len(hs)-1] = clickHandler{}
			h.scene.handlers = hs[:len(hs)-1]
			return
		}
	}
}

// OnClick registers a scene-level callback fired for every click, before
// the clicked node's own OnClick.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	s.nextHandler++
	s.handlers = append(s.handlers, clickHandler{id: s.nextHandler, fn: fn})
	return CallbackHandle{id: s.nextHandler, scene: s}
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order, appending nodes with
// a hit shape to buf. Skips Visible=false or Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (x, y).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(x, y float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(x, y)
		if n.HitShape.Contains(lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput feeds one pointer sample through the click state machine.
// Injected events take precedence over the real mouse.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}
	s.processPointer(float64(mx), float64(my), pressed, button, readModifiers())
}

// processPointer runs the pointer state machine. A click fires when the
// button is released over the node it was pressed on.
func (s *Scene) processPointer(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointer
	target := s.hitTest(x, y)

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.hitNode = target
	case !pressed && ps.down:
		if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, x, y, ps.button, mods)
		}
		ps.down = false
		ps.hitNode = nil
	}
}

func (s *Scene) fireClick(node *Node, x, y float64, button MouseButton, mods KeyModifiers) {
	lx, ly := node.WorldToLocal(x, y)
	ctx := ClickContext{
		Node: node, GlobalX: x, GlobalY: y, LocalX: lx, LocalY: ly,
		Button: button, Modifiers: mods,
	}
	for _, h := range s.handlers {
		h.fn(ctx)
	}
	if node.OnClick != nil {
		node.OnClick(ctx)
	}
}
