package solver

import "github.com/aiexplorations/beam-column-simulation/internal/beam"

// beamODE is the governing system over y = [v, θ, M, V]:
//
//	dv/dx = θ
//	dθ/dx = M / EI
//	dM/dx = V
//	dV/dx = -q
//
// q is the total distributed load, constant between point-load
// discontinuities. The axial load does not enter the curvature; it is
// applied downstream in the stress maps.
type beamODE struct {
	ei float64
	q  float64
}

func (o beamODE) Dim() int {
	return beam.StateDim
}

func (o beamODE) Derive(y beam.State, x float64) beam.State {
	return beam.State{
		y[beam.IdxSlope],
		y[beam.IdxMoment] / o.ei,
		y[beam.IdxShear],
		-o.q,
	}
}
