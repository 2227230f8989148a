package willowtree

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG renders f as a standalone SVG document: a grey background,
// horizontal link curves, and a circle plus right-aligned label per node.
// The view box is shifted left by cfg.Margin so the root label fits.
func WriteSVG(w io.Writer, f Frame, cfg Config) error {
	width := int(math.Ceil(cfg.Width))
	height := int(math.Ceil(cfg.Height))
	margin := int(math.Round(cfg.Margin))

	sw := &stickyWriter{w: w}
	canvas := svg.New(sw)
	canvas.Startview(width, height, -margin, 0, width, height)
	canvas.Rect(-margin, 0, width, height, "fill:"+ColorBackground.Hex())

	canvas.Group(fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%.2f;stroke-width:1.5",
		ColorLink.Hex(), ColorLink.A))
	for _, e := range f.Edges {
		c1, c2 := LinkCurve(e.From, e.To)
		canvas.Path(fmt.Sprintf("M%.2f,%.2f C%.2f,%.2f %.2f,%.2f %.2f,%.2f",
			e.From.X, e.From.Y, c1.X, c1.Y, c2.X, c2.Y, e.To.X, e.To.Y))
	}
	canvas.Gend()

	canvas.Group("font:10px sans-serif")
	for _, n := range f.Nodes {
		canvas.Group(
			fmt.Sprintf(`transform="translate(%.2f,%.2f)"`, n.Position.X, n.Position.Y),
			fmt.Sprintf(`opacity="%.3f"`, n.Opacity),
		)
		canvas.Circle(0, 0, NodeRadius, "fill:"+NodeColor(n.Open).Hex())
		canvas.Text(-NodeRadius-2, 0, n.Name, `dy=".35em"`, "text-anchor:end;fill:"+ColorLabel.Hex())
		canvas.Gend()
	}
	canvas.Gend()
	canvas.End()
	return sw.err
}

// stickyWriter remembers the first write error; svgo itself ignores them.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (c *stickyWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return len(p), nil
	}
	if _, err := c.w.Write(p); err != nil {
		c.err = err
	}
	return len(p), nil
}
