package integrators

import (
	"testing"

	"github.com/aiexplorations/beam-column-simulation/internal/beam"
)

type benchSystem struct{}

func (b *benchSystem) Dim() int { return 2 }
func (b *benchSystem) Derive(y beam.State, x float64) beam.State {
	return beam.State{y[1], -y[0]}
}

func BenchmarkEuler(b *testing.B) {
	integ := NewEuler()
	sys := &benchSystem{}
	y := beam.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y = integ.Step(sys, y, 0, 0.01)
	}
}

func BenchmarkRK4(b *testing.B) {
	integ := NewRK4()
	sys := &benchSystem{}
	y := beam.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y = integ.Step(sys, y, 0, 0.01)
	}
}

func BenchmarkRK45(b *testing.B) {
	integ := NewRK45()
	sys := &benchSystem{}
	y := beam.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y = integ.Step(sys, y, 0, 0.01)
	}
}
