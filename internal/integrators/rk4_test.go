package integrators

import (
	"math"
	"testing"

	"github.com/aiexplorations/beam-column-simulation/internal/beam"
)

type oscillator struct{}

func (o *oscillator) Derive(y beam.State, x float64) beam.State {
	return beam.State{y[1], -y[0]}
}

func (o *oscillator) Dim() int { return 2 }

func TestRK4Accuracy(t *testing.T) {
	sys := &oscillator{}
	integ := NewRK4()

	y := beam.State{1.0, 0.0}
	h := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		y = integ.Step(sys, y, float64(i)*h, h)
	}

	expectedPos := math.Cos(float64(steps) * h)
	expectedVel := -math.Sin(float64(steps) * h)

	if math.Abs(y[0]-expectedPos) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", y[0], expectedPos)
	}
	if math.Abs(y[1]-expectedVel) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", y[1], expectedVel)
	}
}

func TestRK4DoesNotMutateInput(t *testing.T) {
	sys := &oscillator{}
	integ := NewRK4()

	y := beam.State{1.0, 0.0}
	_ = integ.Step(sys, y, 0, 0.01)

	if y[0] != 1.0 || y[1] != 0.0 {
		t.Errorf("input state was mutated: %v", y)
	}
}

func TestEulerAccuracy(t *testing.T) {
	sys := &oscillator{}
	integ := NewEuler()

	y := beam.State{1.0, 0.0}
	h := 0.001
	steps := 1000

	for i := 0; i < steps; i++ {
		y = integ.Step(sys, y, float64(i)*h, h)
	}

	expectedPos := math.Cos(float64(steps) * h)

	// first-order method, loose tolerance
	if math.Abs(y[0]-expectedPos) > 0.01 {
		t.Errorf("position error too large: got %.6f, expected %.6f", y[0], expectedPos)
	}
}
