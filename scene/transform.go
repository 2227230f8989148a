package scene

// updateWorldTransform recomputes world position and alpha for n and its
// subtree. Scene nodes only translate, so the world transform is the sum of
// the ancestors' offsets.
func updateWorldTransform(n *Node, parentX, parentY, parentAlpha float64) {
	n.worldX = parentX + n.X
	n.worldY = parentY + n.Y
	n.worldAlpha = parentAlpha * n.Alpha
	for _, child := range n.children {
		updateWorldTransform(child, n.worldX, n.worldY, n.worldAlpha)
	}
}

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// WorldPosition returns the node's position as of the last transform pass.
func (n *Node) WorldPosition() (x, y float64) {
	return n.worldX, n.worldY
}

// WorldAlpha returns the node's alpha multiplied by its ancestors'.
func (n *Node) WorldAlpha() float64 {
	return n.worldAlpha
}

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return wx - n.worldX, wy - n.worldY
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return lx + n.worldX, ly + n.worldY
}
