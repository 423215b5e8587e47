package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/aiexplorations/beam-column-simulation/internal/beam"
	"github.com/aiexplorations/beam-column-simulation/internal/stress"
)

func steel() beam.Material {
	return beam.Material{E: 200e9, Density: 7850, PoissonRatio: 0.3}
}

func testProblem(ec beam.EndCondition) *beam.Problem {
	p := &beam.Problem{
		Length:       2.0,
		Section:      beam.Section{Width: 0.06, Height: 0.15},
		Material:     steel(),
		LateralLoad:  6000,
		Orientation:  beam.Horizontal,
		EndCondition: ec,
	}
	p.Normalize()
	return p
}

// Every supported end condition must hold deflection at zero wherever it
// pins the beam. x=0 is pinned by the initial state for all six; x=L is
// reached by shooting for the conditions that constrain it.
func TestBoundaryDeflections(t *testing.T) {
	tests := []struct {
		ec        beam.EndCondition
		zeroAtEnd bool
	}{
		{beam.Cantilever, true},
		{beam.SimplySupported, true},
		{beam.FixedFixed, true},
		{beam.HingedFree, false},
		{beam.FixedHinged, false},
		{beam.HingedFixed, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.ec), func(t *testing.T) {
			p := testProblem(tc.ec)
			sol, err := New(p, nil).Solve(100)
			if err != nil {
				t.Fatalf("solve failed: %v", err)
			}

			if sol.Deflection[0] != 0 {
				t.Errorf("v(0) = %g, want 0", sol.Deflection[0])
			}
			if tc.zeroAtEnd {
				vL := sol.Deflection[sol.Len()-1]
				if math.Abs(vL) > 1e-6 {
					t.Errorf("v(L) = %g, want ~0", vL)
				}
			}
		})
	}
}

// With no lateral load at all, every condition must report an identically
// zero lateral response; an axial load alone cannot bend the beam.
func TestAxialOnly_ZeroDeflection(t *testing.T) {
	for _, ec := range beam.EndConditions() {
		t.Run(string(ec), func(t *testing.T) {
			p := &beam.Problem{
				Length:       2.0,
				Section:      beam.Section{Width: 0.06, Height: 0.15},
				Material:     steel(),
				AxialLoad:    20000,
				Orientation:  beam.Horizontal,
				EndCondition: ec,
			}
			p.Normalize()

			sol, err := New(p, nil).Solve(100)
			if err != nil {
				t.Fatalf("solve failed: %v", err)
			}
			if sol.Approximate {
				t.Error("zero-load solve should not need the fallback")
			}

			for i, v := range sol.Deflection {
				if math.Abs(v) > 1e-9 {
					t.Fatalf("deflection[%d] = %g, want 0", i, v)
				}
			}

			st := stress.Compute(sol, p.Section, p.Material, p.AxialLoad)
			expected := 20000 / p.Section.Area()
			for i, s := range st.Axial {
				if math.Abs(s-expected) > 1e-6 {
					t.Fatalf("axial stress[%d] = %g, want %g", i, s, expected)
				}
			}
		})
	}
}

// A single end load on an otherwise unloaded cantilever has a polynomial
// response that RK4 reproduces exactly, so the solve can be checked
// against the integrated closed form: with v(0)=0 and M(0)=0 the moment
// is P·x and the deflected shape is P·(x³ − L²·x)/(6·E·I).
func TestCantileverEndLoad_ClosedForm(t *testing.T) {
	const load = 1000.0

	p := &beam.Problem{
		Length:   2.0,
		Section:  beam.Section{Width: 0.06, Height: 0.15},
		Material: steel(),
		PointLoads: []beam.PointLoad{
			{Magnitude: load, Position: 0, Direction: beam.Downward},
		},
		Orientation:  beam.Horizontal,
		EndCondition: beam.Cantilever,
	}
	p.Normalize()

	sol, err := New(p, nil).Solve(100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if sol.Approximate {
		t.Fatal("bracketing should converge for an end load")
	}

	length := p.Length
	ei := p.EI()
	for i, x := range sol.X {
		exact := load * (x*x*x - length*length*x) / (6 * ei)
		if math.Abs(sol.Deflection[i]-exact) > 1e-7 {
			t.Errorf("deflection at x=%.3f: got %g, want %g", x, sol.Deflection[i], exact)
		}
	}

	if sol.Deflection[0] != 0 {
		t.Errorf("v(0) = %g, want 0", sol.Deflection[0])
	}

	st := stress.Compute(sol, p.Section, p.Material, 0)
	maxBending := 0.0
	for _, s := range st.Bending {
		if s > maxBending {
			maxBending = s
		}
	}
	expected := load * length * p.Section.FiberDistance() / p.Section.MomentOfInertia()
	if math.Abs(maxBending-expected)/expected > 1e-6 {
		t.Errorf("max bending stress: got %g, want %g", maxBending, expected)
	}
}

// Shear must fall linearly with slope -q between point loads and drop by
// exactly the load magnitude across each load position.
func TestShearJumpAtPointLoad(t *testing.T) {
	const q = 6000.0
	const load = 5000.0

	p := testProblem(beam.Cantilever)
	p.PointLoads = []beam.PointLoad{
		{Magnitude: load, Position: 0.5, AsFraction: true, Direction: beam.Downward},
	}

	sol, err := New(p, nil).Solve(100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	loadPos := 0.5 * p.Length
	for i := 0; i < sol.Len()-1; i++ {
		dx := sol.X[i+1] - sol.X[i]
		drop := sol.Shear[i] - sol.Shear[i+1]

		expected := q * dx
		if sol.X[i] < loadPos && loadPos < sol.X[i+1] {
			expected += load
		}

		if math.Abs(drop-expected) > 1e-6 {
			t.Errorf("shear drop over [%.4f, %.4f]: got %g, want %g",
				sol.X[i], sol.X[i+1], drop, expected)
		}
	}
}

func TestShearJump_UpwardLoad(t *testing.T) {
	p := testProblem(beam.Cantilever)
	p.PointLoads = []beam.PointLoad{
		{Magnitude: 5000, Position: 1.0, Direction: beam.Upward},
	}

	sol, err := New(p, nil).Solve(100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	for i := 0; i < sol.Len()-1; i++ {
		if sol.X[i] < 1.0 && 1.0 < sol.X[i+1] {
			dx := sol.X[i+1] - sol.X[i]
			rise := sol.Shear[i+1] - sol.Shear[i]
			// upward load raises shear by its magnitude, net of the
			// distributed-load drop over the interval
			expected := 5000 - 6000*dx
			if math.Abs(rise-expected) > 1e-6 {
				t.Errorf("shear rise across upward load: got %g, want %g", rise, expected)
			}
			return
		}
	}
	t.Fatal("no interval straddles the load position")
}

func TestSolveIdempotent(t *testing.T) {
	p := testProblem(beam.Cantilever)
	p.PointLoads = []beam.PointLoad{
		{Magnitude: 5000, Position: 0.5, AsFraction: true, Direction: beam.Downward},
	}

	sol1, err := New(p, nil).Solve(100)
	if err != nil {
		t.Fatalf("first solve failed: %v", err)
	}
	sol2, err := New(p, nil).Solve(100)
	if err != nil {
		t.Fatalf("second solve failed: %v", err)
	}

	for i := range sol1.X {
		if sol1.Deflection[i] != sol2.Deflection[i] ||
			sol1.Moment[i] != sol2.Moment[i] ||
			sol1.Shear[i] != sol2.Shear[i] {
			t.Fatalf("solves diverge at sample %d", i)
		}
	}
}

// A downward and an equal upward load at the same position must cancel:
// the response equals the load-free response everywhere.
func TestLoadPairCancels(t *testing.T) {
	base := testProblem(beam.Cantilever)
	solBase, err := New(base, nil).Solve(100)
	if err != nil {
		t.Fatalf("base solve failed: %v", err)
	}

	paired := testProblem(beam.Cantilever)
	paired.PointLoads = []beam.PointLoad{
		{Magnitude: 5000, Position: 0.8, Direction: beam.Downward},
		{Magnitude: 5000, Position: 0.8, Direction: beam.Upward},
	}
	solPair, err := New(paired, nil).Solve(100)
	if err != nil {
		t.Fatalf("paired solve failed: %v", err)
	}

	maxV := maxAbsOf(solBase.Deflection)
	maxM := maxAbsOf(solBase.Moment)
	maxS := maxAbsOf(solBase.Shear)

	for i := range solBase.X {
		if math.Abs(solPair.Deflection[i]-solBase.Deflection[i]) > 1e-9*maxV {
			t.Fatalf("deflection differs at sample %d: %g vs %g",
				i, solPair.Deflection[i], solBase.Deflection[i])
		}
		if math.Abs(solPair.Moment[i]-solBase.Moment[i]) > 1e-9*maxM {
			t.Fatalf("moment differs at sample %d", i)
		}
		if math.Abs(solPair.Shear[i]-solBase.Shear[i]) > 1e-9*maxS {
			t.Fatalf("shear differs at sample %d", i)
		}
	}
}

// Combined scenario: distributed load, mid-span point load and an axial
// load on a cantilever. The returned histories must satisfy the governing
// equations sample to sample.
func TestCombinedLoadScenario(t *testing.T) {
	p := &beam.Problem{
		Length:       2.0,
		Section:      beam.Section{Width: 0.06, Height: 0.15},
		Material:     steel(),
		AxialLoad:    20000,
		LateralLoad:  6000,
		Orientation:  beam.Horizontal,
		EndCondition: beam.Cantilever,
		PointLoads: []beam.PointLoad{
			{Magnitude: 5000, Position: 0.5, AsFraction: true, Direction: beam.Downward},
		},
	}
	p.Normalize()

	sol, err := New(p, nil).Solve(100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if sol.Len() != 100 {
		t.Fatalf("expected 100 samples, got %d", sol.Len())
	}
	if sol.X[0] != 0 || sol.X[99] != 2.0 {
		t.Errorf("grid should span [0, 2], got [%g, %g]", sol.X[0], sol.X[99])
	}
	if sol.Approximate {
		t.Error("shooting should converge for this scenario")
	}

	// dM/dx = V, checked with the trapezoid of shear over each interval
	loadPos := 1.0
	for i := 0; i < sol.Len()-1; i++ {
		if sol.X[i] < loadPos && loadPos < sol.X[i+1] {
			continue // shear is discontinuous inside this interval
		}
		dx := sol.X[i+1] - sol.X[i]
		dM := sol.Moment[i+1] - sol.Moment[i]
		avgV := 0.5 * (sol.Shear[i] + sol.Shear[i+1])
		if math.Abs(dM-avgV*dx) > 1e-3*math.Abs(avgV*dx)+1e-9 {
			t.Errorf("moment slope inconsistent with shear over [%.4f, %.4f]", sol.X[i], sol.X[i+1])
		}
	}

	st := stress.Compute(sol, p.Section, p.Material, p.AxialLoad)
	maxBending := maxAbsOf(st.Bending)
	if maxBending <= 0 {
		t.Error("max bending stress should be strictly positive")
	}
}

func TestUnknownEndCondition(t *testing.T) {
	p := testProblem(beam.EndCondition("pinned_roller"))

	_, err := New(p, nil).Solve(100)
	if err == nil {
		t.Fatal("expected an error for unknown end condition")
	}
	if !errors.Is(err, beam.ErrUnknownEndCondition) {
		t.Errorf("expected ErrUnknownEndCondition, got %v", err)
	}
}

// fixed_hinged shoots on M(L), which does not respond to the guessed
// slope, so a loaded beam finds no sign change and must fall back to the
// approximate solution while still reporting it.
func TestFixedHinged_FallbackIsObservable(t *testing.T) {
	p := testProblem(beam.FixedHinged)

	sol, err := New(p, nil).Solve(100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !sol.Approximate {
		t.Error("loaded fixed_hinged solve should report the fallback")
	}
	if sol.Deflection[0] != 0 {
		t.Errorf("v(0) = %g, want 0", sol.Deflection[0])
	}
}

// hinged_free shoots on v(0), which its initial state already pins, so
// the residual vanishes identically and the initial moment resolves to
// zero without engaging the fallback.
func TestHingedFree_DegenerateResidual(t *testing.T) {
	p := testProblem(beam.HingedFree)

	sol, err := New(p, nil).Solve(100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if sol.Approximate {
		t.Error("degenerate residual should resolve without the fallback")
	}
	if sol.Moment[0] != 0 {
		t.Errorf("M(0) = %g, want 0", sol.Moment[0])
	}
}

// A bracket that cannot straddle the root (flexible beam, heavy load)
// must degrade to the closed-form initial slope and say so.
func TestCantilever_FallbackOnWideRoot(t *testing.T) {
	p := &beam.Problem{
		Length:       2.0,
		Section:      beam.Section{Width: 0.01, Height: 0.01},
		Material:     beam.Material{E: 12e9, Density: 500},
		LateralLoad:  1000,
		Orientation:  beam.Horizontal,
		EndCondition: beam.Cantilever,
	}
	p.Normalize()

	sol, err := New(p, nil).Solve(100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if !sol.Approximate {
		t.Error("out-of-bracket root should trigger the fallback")
	}
	for i, v := range sol.Deflection {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("fallback produced invalid deflection at sample %d", i)
		}
	}
}

func TestSolveDefaultSamples(t *testing.T) {
	p := testProblem(beam.Cantilever)

	sol, err := New(p, nil).Solve(0)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if sol.Len() != DefaultSamples {
		t.Errorf("expected %d samples, got %d", DefaultSamples, sol.Len())
	}
}

func maxAbsOf(xs []float64) float64 {
	m := 0.0
	for _, v := range xs {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
