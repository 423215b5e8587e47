package solver

import (
	"errors"
	"math"
	"testing"
)

func TestBrent_Linear(t *testing.T) {
	f := func(x float64) float64 { return x - 0.3 }

	root, err := brent(f, 0, 1, 1e-9, 100)
	if err != nil {
		t.Fatalf("brent failed: %v", err)
	}
	if math.Abs(root-0.3) > 1e-8 {
		t.Errorf("expected root 0.3, got %g", root)
	}
}

func TestBrent_Cubic(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x - 5 }

	root, err := brent(f, 2, 3, 1e-12, 100)
	if err != nil {
		t.Fatalf("brent failed: %v", err)
	}
	if math.Abs(f(root)) > 1e-9 {
		t.Errorf("residual at root too large: f(%g) = %g", root, f(root))
	}
}

func TestBrent_RootAtEndpoint(t *testing.T) {
	f := func(x float64) float64 { return x }

	root, err := brent(f, 0, 1, 1e-9, 100)
	if err != nil {
		t.Fatalf("brent failed: %v", err)
	}
	if root != 0 {
		t.Errorf("expected endpoint root 0, got %g", root)
	}
}

func TestBrent_NoSignChange(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	_, err := brent(f, -1, 1, 1e-9, 100)
	if !errors.Is(err, errNoSignChange) {
		t.Errorf("expected errNoSignChange, got %v", err)
	}
}

func TestBrent_DegenerateResidual(t *testing.T) {
	f := func(x float64) float64 { return 0 }

	root, err := brent(f, -1, 1, 1e-9, 100)
	if err != nil {
		t.Fatalf("brent failed: %v", err)
	}
	if root != 0 {
		t.Errorf("identically zero residual should resolve to the midpoint, got %g", root)
	}
}

func TestNewton2_LinearSystem(t *testing.T) {
	f := func(a, b float64) (float64, float64) {
		return a + b - 3, a - b - 1
	}

	a, b, err := newton2(f, 0, 0, 1e-10, 50)
	if err != nil {
		t.Fatalf("newton2 failed: %v", err)
	}
	if math.Abs(a-2) > 1e-8 || math.Abs(b-1) > 1e-8 {
		t.Errorf("expected (2, 1), got (%g, %g)", a, b)
	}
}

func TestNewton2_Nonlinear(t *testing.T) {
	f := func(a, b float64) (float64, float64) {
		return a*a + b*b - 4, a - b
	}

	a, b, err := newton2(f, 1, 1, 1e-10, 50)
	if err != nil {
		t.Fatalf("newton2 failed: %v", err)
	}
	expected := math.Sqrt2
	if math.Abs(a-expected) > 1e-6 || math.Abs(b-expected) > 1e-6 {
		t.Errorf("expected (√2, √2), got (%g, %g)", a, b)
	}
}

func TestNewton2_SingularJacobian(t *testing.T) {
	f := func(a, b float64) (float64, float64) {
		return 1.0, 1.0
	}

	_, _, err := newton2(f, 0, 0, 1e-10, 50)
	if !errors.Is(err, errNoConvergence) {
		t.Errorf("expected errNoConvergence, got %v", err)
	}
}
