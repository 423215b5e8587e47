// Package metrics reduces solved beam responses to scalar summary values.
package metrics

import (
	"math"

	"github.com/aiexplorations/beam-column-simulation/internal/beam"
	"github.com/aiexplorations/beam-column-simulation/internal/stress"
)

// Summary holds the scalar reductions reported for a solve.
type Summary struct {
	MaxDeflection    float64 `json:"max_deflection"`     // max |v| (m)
	MaxMoment        float64 `json:"max_moment"`         // max |M| (N·m)
	MaxShear         float64 `json:"max_shear"`          // max |V| (N)
	MaxBendingStress float64 `json:"max_bending_stress"` // Pa
	MaxAxialStress   float64 `json:"max_axial_stress"`   // Pa
	StrainEnergy     float64 `json:"strain_energy"`      // bending strain energy (J)
	CriticalLoad     float64 `json:"critical_load"`      // Euler buckling load (N)
	Utilization      float64 `json:"utilization"`        // axial load / critical load
}

// Summarize reduces a solution and its stress maps to summary scalars.
func Summarize(p *beam.Problem, sol *beam.Solution, st *stress.Result) Summary {
	s := Summary{
		MaxDeflection:    maxAbs(sol.Deflection),
		MaxMoment:        maxAbs(sol.Moment),
		MaxShear:         maxAbs(sol.Shear),
		MaxBendingStress: maxAbs(st.Bending),
		MaxAxialStress:   maxAbs(st.Axial),
		StrainEnergy:     StrainEnergy(sol.X, sol.Moment, p.EI()),
		CriticalLoad:     EulerCriticalLoad(p),
	}
	if s.CriticalLoad > 0 {
		s.Utilization = p.AxialLoad / s.CriticalLoad
	}
	return s
}

// StrainEnergy integrates M²/(2·EI) over x by the trapezoidal rule.
func StrainEnergy(x, moment []float64, ei float64) float64 {
	if len(x) < 2 || ei == 0 {
		return 0
	}
	energy := 0.0
	for i := 1; i < len(x); i++ {
		f0 := moment[i-1] * moment[i-1] / (2 * ei)
		f1 := moment[i] * moment[i] / (2 * ei)
		energy += 0.5 * (f0 + f1) * (x[i] - x[i-1])
	}
	return energy
}

// EulerCriticalLoad returns the elastic buckling load E·π²·I/L² for the
// problem's section and length.
func EulerCriticalLoad(p *beam.Problem) float64 {
	l := p.Length
	return p.Material.E * math.Pi * math.Pi * p.Section.MomentOfInertia() / (l * l)
}

func maxAbs(xs []float64) float64 {
	m := 0.0
	for _, v := range xs {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
