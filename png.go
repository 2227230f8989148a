package willowtree

import (
	"image"
	"io"
	"math"

	"git.sr.ht/~sbinet/gg"
)

// RenderImage rasterizes f with the same look as WriteSVG.
func RenderImage(f Frame, cfg Config) image.Image {
	return drawFrame(f, cfg).Image()
}

// WritePNG rasterizes f and encodes it as PNG.
func WritePNG(w io.Writer, f Frame, cfg Config) error {
	return drawFrame(f, cfg).EncodePNG(w)
}

func drawFrame(f Frame, cfg Config) *gg.Context {
	dc := gg.NewContext(int(math.Ceil(cfg.Width)), int(math.Ceil(cfg.Height)))
	dc.SetRGBA(ColorBackground.R, ColorBackground.G, ColorBackground.B, ColorBackground.A)
	dc.Clear()
	dc.Translate(cfg.Margin, 0)

	dc.SetLineWidth(1.5)
	dc.SetRGBA(ColorLink.R, ColorLink.G, ColorLink.B, ColorLink.A)
	for _, e := range f.Edges {
		c1, c2 := LinkCurve(e.From, e.To)
		dc.MoveTo(e.From.X, e.From.Y)
		dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, e.To.X, e.To.Y)
		dc.Stroke()
	}

	for _, n := range f.Nodes {
		if n.Opacity <= 0 {
			continue
		}
		c := NodeColor(n.Open)
		dc.SetRGBA(c.R, c.G, c.B, c.A*n.Opacity)
		dc.DrawCircle(n.Position.X, n.Position.Y, NodeRadius)
		dc.Fill()
		dc.SetRGBA(ColorLabel.R, ColorLabel.G, ColorLabel.B, ColorLabel.A*n.Opacity)
		dc.DrawStringAnchored(n.Name, n.Position.X-NodeRadius-2, n.Position.Y, 1, 0.5)
	}
	return dc
}
