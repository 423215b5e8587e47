// Package stress converts the solved moment history and the axial load
// into stresses and strains. Every function is a pure elementwise map.
package stress

import (
	"math"

	"github.com/aiexplorations/beam-column-simulation/internal/beam"
)

// Result holds the derived stress and strain sequences, aligned with the
// solution's position grid.
type Result struct {
	Bending  []float64 // extreme-fiber bending stress magnitude (Pa)
	Axial    []float64 // axial stress, constant along the beam (Pa)
	Combined []float64 // root-sum-square of bending and axial (Pa)

	BendingStrain []float64
	AxialStrain   []float64
}

// Compute derives bending, axial and combined stress plus the matching
// strains from a solution's moment history.
//
// Bending stress is the extreme-fiber magnitude |M|·c/I; the side of the
// neutral axis is not tracked. The combined value is a conservative
// magnitude estimate, not a signed superposition.
func Compute(sol *beam.Solution, sec beam.Section, mat beam.Material, axialLoad float64) *Result {
	n := sol.Len()
	r := &Result{
		Bending:       make([]float64, n),
		Axial:         make([]float64, n),
		Combined:      make([]float64, n),
		BendingStrain: make([]float64, n),
		AxialStrain:   make([]float64, n),
	}

	c := sec.FiberDistance()
	inertia := sec.MomentOfInertia()
	sigmaAxial := axialLoad / sec.Area()

	for i := 0; i < n; i++ {
		sigmaBending := math.Abs(sol.Moment[i]) * c / inertia
		r.Bending[i] = sigmaBending
		r.Axial[i] = sigmaAxial
		r.Combined[i] = math.Sqrt(sigmaBending*sigmaBending + sigmaAxial*sigmaAxial)
		r.BendingStrain[i] = sigmaBending / mat.E
		r.AxialStrain[i] = sigmaAxial / mat.E
	}

	return r
}
