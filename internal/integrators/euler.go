package integrators

import "github.com/aiexplorations/beam-column-simulation/internal/beam"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys beam.System, y beam.State, x, h float64) beam.State {
	dy := sys.Derive(y, x)
	result := make(beam.State, len(y))
	for i := range y {
		result[i] = y[i] + h*dy[i]
	}
	return result
}
