package solver

import (
	"fmt"

	"github.com/aiexplorations/beam-column-simulation/internal/beam"
	"github.com/aiexplorations/beam-column-simulation/internal/integrators"
)

// DefaultSamples is the sample count used when the caller passes zero.
const DefaultSamples = 100

const (
	rootTol       = 1e-9
	maxRootIter   = 100
	newtonTol     = 1e-10
	maxNewtonIter = 50
)

// Solver solves one beam-column problem. It is a pure function of the
// problem: Solve can be called repeatedly and concurrently from separate
// Solver values with identical results.
type Solver struct {
	problem *beam.Problem
	stepper beam.Stepper
	ode     beamODE
	loads   []resolvedLoad

	length float64
	ei     float64
	q      float64
}

// New builds a Solver for the given problem. A nil stepper selects RK4.
func New(p *beam.Problem, stepper beam.Stepper) *Solver {
	if stepper == nil {
		stepper = integrators.NewRK4()
	}
	q := p.TotalLateralLoad()
	return &Solver{
		problem: p,
		stepper: stepper,
		ode:     beamODE{ei: p.EI(), q: q},
		loads:   resolveLoads(p),
		length:  p.Length,
		ei:      p.EI(),
		q:       q,
	}
}

// Solve computes the beam response sampled at numPoints evenly spaced
// positions over [0, L]. An unrecognized end condition fails before any
// integration is attempted.
func (s *Solver) Solve(numPoints int) (*beam.Solution, error) {
	if numPoints <= 1 {
		numPoints = DefaultSamples
	}
	grid := linspace(0, s.length, numPoints)

	switch s.problem.EndCondition {
	case beam.Cantilever:
		return s.solveCantilever(grid), nil
	case beam.SimplySupported:
		return s.solveSimplySupported(grid), nil
	case beam.FixedFixed:
		return s.solveFixedFixed(grid), nil
	case beam.HingedFree:
		return s.solveHingedFree(grid), nil
	case beam.FixedHinged:
		return s.solveFixedHinged(grid), nil
	case beam.HingedFixed:
		return s.solveHingedFixed(grid), nil
	default:
		return nil, fmt.Errorf("%w: %q", beam.ErrUnknownEndCondition, s.problem.EndCondition)
	}
}

// initialShear is the shear at x=0, fixed by the overall force balance:
// the full distributed load plus every signed point load.
func (s *Solver) initialShear() float64 {
	v := s.q * s.length
	for _, ld := range s.loads {
		v += ld.sign * ld.magnitude
	}
	return v
}

// solveCantilever: free at x=0, fixed at x=L. Unknown initial slope,
// shot so that v(L) = 0.
func (s *Solver) solveCantilever(grid []float64) *beam.Solution {
	v0 := s.initialShear()

	shoot := func(slope float64) float64 {
		states := s.integrateSegmented(beam.State{0, slope, 0, v0}, grid)
		return states[len(states)-1][beam.IdxDeflection]
	}

	approx := false
	slope, err := brent(shoot, -1, 1, rootTol, maxRootIter)
	if err != nil {
		// small-deflection value for the total load lumped at the tip
		total := s.q*s.length + s.problem.TotalPointLoad()
		slope = -total * s.length * s.length * s.length / (3 * s.ei)
		approx = true
	}

	states := s.integrateSegmented(beam.State{0, slope, 0, v0}, grid)
	return s.pack(grid, states, approx)
}

// solveSimplySupported: hinged at both ends. Unknown initial slope with
// M(0) = 0 and V(0) = q·L, shot so that v(L) = 0.
func (s *Solver) solveSimplySupported(grid []float64) *beam.Solution {
	v0 := s.q * s.length

	shoot := func(slope float64) float64 {
		states := s.integrate(beam.State{0, slope, 0, v0}, grid)
		return states[len(states)-1][beam.IdxDeflection]
	}

	approx := false
	slope, err := brent(shoot, -0.5, 0.5, rootTol, maxRootIter)
	if err != nil {
		slope = s.q * s.length * s.length * s.length / (24 * s.ei)
		approx = true
	}

	states := s.integrate(beam.State{0, slope, 0, v0}, grid)
	return s.pack(grid, states, approx)
}

// solveFixedFixed: fixed at both ends. Unknown initial slope and moment,
// solved so that v(L) = 0 and θ(L) = 0.
func (s *Solver) solveFixedFixed(grid []float64) *beam.Solution {
	v0 := s.q * s.length

	residuals := func(slope, moment float64) (float64, float64) {
		states := s.integrate(beam.State{0, slope, moment, v0}, grid)
		last := states[len(states)-1]
		return last[beam.IdxDeflection], last[beam.IdxSlope]
	}

	approx := false
	slope, moment, err := newton2(residuals, 0, 0, newtonTol, maxNewtonIter)
	if err != nil {
		moment = -s.q * s.length * s.length / 12
		slope = 0
		approx = true
	}

	states := s.integrate(beam.State{0, slope, moment, v0}, grid)
	return s.pack(grid, states, approx)
}

// solveHingedFree: hinged at x=0, free at x=L. The shooting residual is
// v(0), which the initial state already pins to zero, so the search sees
// an identically vanishing function and resolves to the bracket midpoint.
func (s *Solver) solveHingedFree(grid []float64) *beam.Solution {
	v0 := s.initialShear()

	shoot := func(moment float64) float64 {
		states := s.integrateSegmented(beam.State{0, 0, moment, v0}, grid)
		return states[0][beam.IdxDeflection]
	}

	approx := false
	moment, err := brent(shoot, -1, 1, rootTol, maxRootIter)
	if err != nil {
		moment = 0
		approx = true
	}

	states := s.integrateSegmented(beam.State{0, 0, moment, v0}, grid)
	return s.pack(grid, states, approx)
}

// solveFixedHinged: fixed at x=0, hinged at x=L. Unknown initial slope,
// shot so that M(L) = 0. The moment profile does not depend on the
// slope, so the bracket rarely straddles a sign change and the zero-slope
// fallback is the usual outcome.
func (s *Solver) solveFixedHinged(grid []float64) *beam.Solution {
	v0 := s.initialShear()

	shoot := func(slope float64) float64 {
		states := s.integrateSegmented(beam.State{0, slope, 0, v0}, grid)
		return states[len(states)-1][beam.IdxMoment]
	}

	approx := false
	slope, err := brent(shoot, -1, 1, rootTol, maxRootIter)
	if err != nil {
		slope = 0
		approx = true
	}

	states := s.integrateSegmented(beam.State{0, slope, 0, v0}, grid)
	return s.pack(grid, states, approx)
}

// solveHingedFixed: hinged at x=0, fixed at x=L. Unknown initial slope
// and moment, solved so that M(0) = 0 and v(L) = 0. The first residual
// equals the guessed moment itself, which pins M(0) while the slope
// drives the far-end deflection to zero.
func (s *Solver) solveHingedFixed(grid []float64) *beam.Solution {
	v0 := s.initialShear()

	residuals := func(slope, moment float64) (float64, float64) {
		states := s.integrateSegmented(beam.State{0, slope, moment, v0}, grid)
		return states[0][beam.IdxMoment], states[len(states)-1][beam.IdxDeflection]
	}

	approx := false
	slope, moment, err := newton2(residuals, 0, 0, newtonTol, maxNewtonIter)
	if err != nil {
		slope = 0
		moment = 0
		approx = true
	}

	states := s.integrateSegmented(beam.State{0, slope, moment, v0}, grid)
	return s.pack(grid, states, approx)
}

func (s *Solver) pack(grid []float64, states []beam.State, approx bool) *beam.Solution {
	n := len(grid)
	sol := &beam.Solution{
		X:           make([]float64, n),
		Deflection:  make([]float64, n),
		Moment:      make([]float64, n),
		Shear:       make([]float64, n),
		Approximate: approx,
	}
	copy(sol.X, grid)
	for i, st := range states {
		sol.Deflection[i] = st[beam.IdxDeflection]
		sol.Moment[i] = st[beam.IdxMoment]
		sol.Shear[i] = st[beam.IdxShear]
	}
	return sol
}
