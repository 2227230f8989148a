package willowtree

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector used for positions throughout the API. X grows to the
// right and Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Lerp interpolates linearly between v and o. t=0 returns v, t=1 returns o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Near reports whether v and o differ by at most eps on both axes.
func (v Vec2) Near(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Diagram palette shared by every renderer.
var (
	ColorBackground = Color{0.8, 0.8, 0.8, 1}         // #ccc
	ColorOpenNode   = Color{0.6, 0.6, 0.6, 1}         // #999
	ColorClosedNode = Color{0.533, 0, 0, 1}           // #800
	ColorLink       = Color{0.333, 0.333, 0.333, 0.6} // #555 at 60%
	ColorLabel      = Color{0.13, 0.13, 0.13, 1}      // #222
)

// NodeColor returns the fill used for a node circle.
func NodeColor(open bool) Color {
	if open {
		return ColorOpenNode
	}
	return ColorClosedNode
}

// RGBA8 converts c to 8-bit straight-alpha components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return unit8(c.R), unit8(c.G), unit8(c.B), unit8(c.A)
}

// Hex returns c as a #rrggbb string, ignoring alpha.
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// NodeRadius is the radius of a rendered node circle.
const NodeRadius = 8

// LinkCurve returns the control points of the horizontal cubic Bezier drawn
// from a parent at from to a child at to.
func LinkCurve(from, to Vec2) (c1, c2 Vec2) {
	mid := (from.X + to.X) / 2
	return Vec2{mid, from.Y}, Vec2{mid, to.Y}
}
