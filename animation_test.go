package willowtree

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPointReachesTarget(t *testing.T) {
	pos := Vec2{10, 20}
	alpha := 0.0

	g := TweenPoint(&pos, &alpha, Vec2{100, 200}, 1, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(pos.X-100) > 0.01 {
		t.Errorf("X = %f, want ~100", pos.X)
	}
	if math.Abs(pos.Y-200) > 0.01 {
		t.Errorf("Y = %f, want ~200", pos.Y)
	}
	if math.Abs(alpha-1) > 0.01 {
		t.Errorf("alpha = %f, want ~1", alpha)
	}
}

func TestTweenPointInterpolates(t *testing.T) {
	pos := Vec2{0, 0}
	alpha := 1.0

	g := TweenPoint(&pos, &alpha, Vec2{100, 50}, 0, 1.0, ease.Linear)

	g.Update(0.5)
	if g.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(pos.X-50) > 0.05 {
		t.Errorf("X = %f, want ~50 at halfway", pos.X)
	}
	if math.Abs(pos.Y-25) > 0.05 {
		t.Errorf("Y = %f, want ~25 at halfway", pos.Y)
	}
	if math.Abs(alpha-0.5) > 0.05 {
		t.Errorf("alpha = %f, want ~0.5 at halfway", alpha)
	}
}

func TestTweenSegmentMovesBothEnds(t *testing.T) {
	from := Vec2{0, 0}
	to := Vec2{0, 0}

	g := TweenSegment(&from, &to, Vec2{10, 20}, Vec2{30, 40}, 0.25, ease.InOutCubic)
	g.Update(0.125)
	g.Update(0.125)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if !from.Near(Vec2{10, 20}, 0.01) {
		t.Errorf("from = %v, want ~(10, 20)", from)
	}
	if !to.Near(Vec2{30, 40}, 0.01) {
		t.Errorf("to = %v, want ~(30, 40)", to)
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	x := 0.0
	g := NewTweenGroup([]*float64{&x}, []float64{1}, 1.0, ease.Linear)

	if g.Done {
		t.Fatal("should not be done before any update")
	}
	g.Update(0.3)
	if g.Done {
		t.Fatal("should not be done at 0.3")
	}
	g.Update(0.7)
	if !g.Done {
		t.Fatal("should be done at 1.0")
	}
}

func TestTweenGroupUpdateAfterDoneIsNoop(t *testing.T) {
	x := 0.0
	g := NewTweenGroup([]*float64{&x}, []float64{100}, 0.5, ease.Linear)
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done")
	}

	x = 999
	g.Update(1.0)
	if x != 999 {
		t.Errorf("x changed to %f after Done, want 999", x)
	}
}

func TestTweenGroupOnCompleteFiresOnce(t *testing.T) {
	x := 0.0
	calls := 0
	g := NewTweenGroup([]*float64{&x}, []float64{1}, 0.5, ease.Linear)
	g.OnComplete = func() { calls++ }

	g.Update(0.25)
	if calls != 0 {
		t.Fatalf("OnComplete fired early: %d calls", calls)
	}
	g.Update(0.25)
	g.Update(0.25)
	g.Update(0.25)
	if calls != 1 {
		t.Errorf("OnComplete calls = %d, want 1", calls)
	}
}

func TestTweenGroupCancelSuppressesOnComplete(t *testing.T) {
	x := 0.0
	calls := 0
	g := NewTweenGroup([]*float64{&x}, []float64{1}, 0.5, ease.Linear)
	g.OnComplete = func() { calls++ }

	g.Update(0.1)
	g.Cancel()
	g.Update(1)
	if calls != 0 {
		t.Errorf("OnComplete calls = %d after Cancel, want 0", calls)
	}
	if !g.Done {
		t.Error("cancelled group should report Done")
	}
}

func TestTweenGroupExtraFieldsIgnored(t *testing.T) {
	var v [6]float64
	fields := []*float64{&v[0], &v[1], &v[2], &v[3], &v[4], &v[5]}
	g := NewTweenGroup(fields, []float64{1, 1, 1, 1, 1, 1}, 0.1, ease.Linear)
	g.Update(0.1)

	for i := 0; i < 4; i++ {
		if math.Abs(v[i]-1) > 0.01 {
			t.Errorf("v[%d] = %f, want ~1", i, v[i])
		}
	}
	if v[4] != 0 || v[5] != 0 {
		t.Errorf("fields past the fourth were animated: %v", v[4:])
	}
}

func TestTweenEasingAffectsMidpoint(t *testing.T) {
	linear, cubic := 0.0, 0.0
	gl := NewTweenGroup([]*float64{&linear}, []float64{100}, 1.0, ease.Linear)
	gc := NewTweenGroup([]*float64{&cubic}, []float64{100}, 1.0, ease.InCubic)

	gl.Update(0.25)
	gc.Update(0.25)

	if cubic >= linear {
		t.Errorf("InCubic at 0.25 = %f, want less than linear %f", cubic, linear)
	}
}
