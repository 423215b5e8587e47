package beam

import (
	"math"
	"testing"
)

func TestSectionProperties(t *testing.T) {
	sec := Section{Width: 0.06, Height: 0.15}

	if math.Abs(sec.Area()-0.009) > 1e-12 {
		t.Errorf("expected area 0.009, got %g", sec.Area())
	}

	expectedI := 0.06 * 0.15 * 0.15 * 0.15 / 12
	if math.Abs(sec.MomentOfInertia()-expectedI) > 1e-15 {
		t.Errorf("expected inertia %g, got %g", expectedI, sec.MomentOfInertia())
	}

	if sec.FiberDistance() != 0.075 {
		t.Errorf("expected fiber distance 0.075, got %g", sec.FiberDistance())
	}
}

func TestDirectionSign(t *testing.T) {
	if Downward.Sign() != 1 {
		t.Error("downward should be +1")
	}
	if Upward.Sign() != -1 {
		t.Error("upward should be -1")
	}
}

func TestPointLoadResolve(t *testing.T) {
	pl := PointLoad{Magnitude: 1000, Position: 0.5, AsFraction: true}
	if pl.Resolve(2.0) != 1.0 {
		t.Errorf("fractional position should resolve to 1.0, got %g", pl.Resolve(2.0))
	}

	pl = PointLoad{Magnitude: 1000, Position: 1.5}
	if pl.Resolve(2.0) != 1.5 {
		t.Errorf("absolute position should pass through, got %g", pl.Resolve(2.0))
	}
}

func TestNormalize_LegacyTipLoad(t *testing.T) {
	p := &Problem{
		Length:  2.0,
		TipLoad: 5000,
	}
	p.Normalize()

	if p.TipLoad != 0 {
		t.Error("tip load should be cleared after normalization")
	}
	if len(p.PointLoads) != 1 {
		t.Fatalf("expected 1 point load, got %d", len(p.PointLoads))
	}
	if p.PointLoads[0].Magnitude != 5000 || p.PointLoads[0].Position != 2.0 {
		t.Errorf("unexpected folded load: %+v", p.PointLoads[0])
	}
	if p.PointLoads[0].Direction != Downward {
		t.Errorf("folded load should be downward, got %s", p.PointLoads[0].Direction)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	p := &Problem{Length: 2.0, TipLoad: 5000}
	p.Normalize()
	p.Normalize()

	if len(p.PointLoads) != 1 {
		t.Errorf("repeated normalization should not duplicate loads, got %d", len(p.PointLoads))
	}
}

func TestNormalize_ExplicitLoadsWin(t *testing.T) {
	p := &Problem{
		Length:     2.0,
		TipLoad:    5000,
		PointLoads: []PointLoad{{Magnitude: 1000, Position: 1.0}},
	}
	p.Normalize()

	if len(p.PointLoads) != 1 || p.PointLoads[0].Magnitude != 1000 {
		t.Errorf("explicit point loads should suppress the legacy tip load: %+v", p.PointLoads)
	}
}

func TestTotalLateralLoad(t *testing.T) {
	p := &Problem{
		Length:            2.0,
		Section:           Section{Width: 0.06, Height: 0.15},
		Material:          Material{E: 200e9, Density: 7850},
		LateralLoad:       6000,
		Orientation:       Horizontal,
		IncludeSelfWeight: true,
		Gravity:           DefaultGravity,
	}

	// horizontal: weight acts along the axis, not laterally
	if p.TotalLateralLoad() != 6000 {
		t.Errorf("horizontal beam should not add self-weight, got %g", p.TotalLateralLoad())
	}

	p.Orientation = Vertical
	expected := 6000 + 0.009*7850*DefaultGravity
	if math.Abs(p.TotalLateralLoad()-expected) > 1e-9 {
		t.Errorf("expected %g, got %g", expected, p.TotalLateralLoad())
	}

	p.IncludeSelfWeight = false
	if p.TotalLateralLoad() != 6000 {
		t.Errorf("excluded self-weight should not contribute, got %g", p.TotalLateralLoad())
	}
}

func TestEndConditionValid(t *testing.T) {
	for _, ec := range EndConditions() {
		if !ec.Valid() {
			t.Errorf("%s should be valid", ec)
		}
	}
	if EndCondition("pinned_roller").Valid() {
		t.Error("unknown condition should be invalid")
	}
}

func TestStateClone(t *testing.T) {
	s := State{1, 2, 3, 4}
	c := s.Clone()
	c[0] = 99

	if s[0] != 1 {
		t.Error("clone should not alias the original")
	}
}

func TestStateIsValid(t *testing.T) {
	if !(State{1, 2, 3, 4}).IsValid() {
		t.Error("finite state should be valid")
	}
	if (State{1, math.NaN(), 3, 4}).IsValid() {
		t.Error("NaN state should be invalid")
	}
	if (State{1, math.Inf(1), 3, 4}).IsValid() {
		t.Error("Inf state should be invalid")
	}
}
