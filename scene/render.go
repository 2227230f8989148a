package scene

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/willowtree"
)

// Debug font metrics of ebitenutil.DebugPrint.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// debugStatsInterval is how many frames pass between two stats lines.
const debugStatsInterval = 60

// Draw clears the screen, draws the node tree in painter order and then
// captures any queued screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(nrgba(s.ClearColor, 1))
	updateWorldTransform(s.root, 0, 0, 1)
	draws := drawNode(screen, s.root)

	if s.debug && s.frame%debugStatsInterval == 0 {
		s.logger.Debug("frame",
			"frame", s.frame,
			"draws", draws,
			"elapsed", time.Since(t0),
			"fps", ebiten.ActualFPS())
	}
	s.flushScreenshots(screen)
}

// drawNode draws n and its subtree and returns how many primitives were
// submitted.
func drawNode(dst *ebiten.Image, n *Node) int {
	if !n.Visible || n.worldAlpha <= 0 {
		return 0
	}
	count := 0
	switch n.Type {
	case NodeTypeCircle:
		vector.DrawFilledCircle(dst, float32(n.worldX), float32(n.worldY), float32(n.Radius),
			nrgba(n.Color, n.worldAlpha), true)
		count++
	case NodeTypeLabel:
		x, y := labelOrigin(n)
		ebitenutil.DebugPrintAt(dst, n.Text, x, y)
		count++
	case NodeTypePath:
		clr := nrgba(n.Color, n.worldAlpha)
		w := float32(n.StrokeWidth)
		for i := 1; i < len(n.Points); i++ {
			a, b := n.Points[i-1], n.Points[i]
			vector.StrokeLine(dst,
				float32(n.worldX+a.X), float32(n.worldY+a.Y),
				float32(n.worldX+b.X), float32(n.worldY+b.Y),
				w, clr, true)
			count++
		}
	case NodeTypeImage:
		if n.Image != nil {
			var op ebiten.DrawImageOptions
			op.GeoM.Translate(n.worldX, n.worldY)
			op.ColorScale.ScaleAlpha(float32(n.worldAlpha))
			dst.DrawImage(n.Image, &op)
			count++
		}
	}
	for _, c := range n.children {
		count += drawNode(dst, c)
	}
	return count
}

// labelOrigin returns the top-left corner of a label whose right edge and
// vertical center sit on the node's world position.
func labelOrigin(n *Node) (x, y int) {
	w := glyphWidth * len([]rune(n.Text))
	return int(n.worldX) - w, int(n.worldY) - glyphHeight/2
}

func nrgba(c willowtree.Color, alpha float64) color.NRGBA {
	r, g, b, a := willowtree.Color{R: c.R, G: c.G, B: c.B, A: c.A * alpha}.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
