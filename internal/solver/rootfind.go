package solver

import (
	"errors"
	"math"
)

var (
	errNoSignChange  = errors.New("solver: no sign change over bracket")
	errNoConvergence = errors.New("solver: root finder did not converge")
)

const machEps = 2.220446049250313e-16

// brent finds a root of f in [a, b] by Brent's method (bisection, secant
// and inverse quadratic interpolation). The bracket must straddle a sign
// change; an endpoint where f vanishes is returned as the root.
func brent(f func(float64) float64, a, b, xtol float64, maxIter int) (float64, error) {
	fa := f(a)
	fb := f(b)
	// a residual vanishing at both ends is degenerate (it does not depend
	// on the unknown); resolve to the bracket midpoint
	if fa == 0 && fb == 0 {
		return 0.5 * (a + b), nil
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, errNoSignChange
	}

	c, fc := a, fa
	d := b - a
	e := d

	for i := 0; i < maxIter; i++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2*machEps*math.Abs(b) + 0.5*xtol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// interpolation step
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				// interpolation rejected, bisect
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)

		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}

	return b, errNoConvergence
}

// newton2 solves the two-equation system f(a, b) = (0, 0) by Newton
// iteration with a forward-difference Jacobian.
func newton2(f func(a, b float64) (float64, float64), a0, b0, tol float64, maxIter int) (float64, float64, error) {
	a, b := a0, b0

	for i := 0; i < maxIter; i++ {
		f1, f2 := f(a, b)
		if math.Abs(f1)+math.Abs(f2) < tol {
			return a, b, nil
		}

		ha := 1e-7 * (1 + math.Abs(a))
		hb := 1e-7 * (1 + math.Abs(b))

		f1a, f2a := f(a+ha, b)
		f1b, f2b := f(a, b+hb)

		j11 := (f1a - f1) / ha
		j21 := (f2a - f2) / ha
		j12 := (f1b - f1) / hb
		j22 := (f2b - f2) / hb

		det := j11*j22 - j12*j21
		if math.Abs(det) < 1e-300 {
			return a, b, errNoConvergence
		}

		a -= (f1*j22 - f2*j12) / det
		b -= (f2*j11 - f1*j21) / det
	}

	f1, f2 := f(a, b)
	if math.Abs(f1)+math.Abs(f2) < tol {
		return a, b, nil
	}
	return a, b, errNoConvergence
}
