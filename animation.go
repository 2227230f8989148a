package willowtree

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Call Update(dt)
// each frame; values are written straight into the fields. OnComplete, if
// set, fires exactly once, from the Update call that finishes the group.
//
// There is no global animation manager: the Presenter owns its groups and
// calls Update itself.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool

	OnComplete func()
	fired      bool
}

// NewTweenGroup animates each fields[i] from its current value to to[i]
// over duration seconds. At most four fields are used; extra ones are
// ignored.
func NewTweenGroup(fields []*float64, to []float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	for i := 0; i < len(fields) && i < len(to) && i < len(g.fields); i++ {
		g.tweens[i] = gween.New(float32(*fields[i]), float32(to[i]), duration, fn)
		g.fields[i] = fields[i]
		g.count++
	}
	return g
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.Done && !g.fired {
		g.fired = true
		if g.OnComplete != nil {
			g.OnComplete()
		}
	}
}

// Cancel stops the group without firing OnComplete.
func (g *TweenGroup) Cancel() {
	g.Done = true
	g.fired = true
}

// TweenPoint animates a Vec2 and an opacity together: the node animation of
// the presenter.
func TweenPoint(pos *Vec2, alpha *float64, to Vec2, toAlpha float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(
		[]*float64{&pos.X, &pos.Y, alpha},
		[]float64{to.X, to.Y, toAlpha},
		duration, fn)
}

// TweenSegment animates both endpoints of a line segment: the edge animation
// of the presenter.
func TweenSegment(from, to *Vec2, toFrom, toTo Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	return NewTweenGroup(
		[]*float64{&from.X, &from.Y, &to.X, &to.Y},
		[]float64{toFrom.X, toFrom.Y, toTo.X, toTo.Y},
		duration, fn)
}
