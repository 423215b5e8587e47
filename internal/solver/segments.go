package solver

import (
	"math"
	"sort"

	"github.com/aiexplorations/beam-column-simulation/internal/beam"
)

// matchTol is the tolerance for snapping a point-load position onto a
// segment boundary or grid sample.
const matchTol = 1e-9

// substeps is the number of integrator steps taken between consecutive
// grid samples.
const substeps = 8

// resolvedLoad is a point load with its position resolved to absolute
// coordinates and its direction reduced to a sign (+1 down, -1 up).
type resolvedLoad struct {
	pos       float64
	magnitude float64
	sign      float64
}

func resolveLoads(p *beam.Problem) []resolvedLoad {
	loads := make([]resolvedLoad, 0, len(p.PointLoads))
	for _, pl := range p.PointLoads {
		loads = append(loads, resolvedLoad{
			pos:       pl.Resolve(p.Length),
			magnitude: pl.Magnitude,
			sign:      pl.Sign(),
		})
	}
	sort.Slice(loads, func(i, j int) bool { return loads[i].pos < loads[j].pos })
	return loads
}

// segmentBoundaries returns 0, the deduplicated interior load positions,
// and L, sorted ascending.
func (s *Solver) segmentBoundaries() []float64 {
	bs := []float64{0}
	for _, ld := range s.loads {
		if ld.pos > 0 && ld.pos < s.length {
			dup := false
			for _, b := range bs {
				if math.Abs(b-ld.pos) < matchTol {
					dup = true
					break
				}
			}
			if !dup {
				bs = append(bs, ld.pos)
			}
		}
	}
	bs = append(bs, s.length)
	sort.Float64s(bs)
	return bs
}

// advance marches the state from x0 to x1 with fixed substeps.
func (s *Solver) advance(y beam.State, x0, x1 float64) beam.State {
	if x1 <= x0 {
		return y.Clone()
	}
	h := (x1 - x0) / substeps
	cur := y
	for i := 0; i < substeps; i++ {
		cur = s.stepper.Step(s.ode, cur, x0+float64(i)*h, h)
	}
	return cur
}

// integrate samples the state at every grid position, ignoring point-load
// discontinuities.
func (s *Solver) integrate(y0 beam.State, grid []float64) []beam.State {
	out := make([]beam.State, len(grid))
	out[0] = y0.Clone()
	cur := y0
	for i := 1; i < len(grid); i++ {
		cur = s.advance(cur, grid[i-1], grid[i])
		out[i] = cur.Clone()
	}
	return out
}

// integrateSegmented integrates segment by segment between point-load
// positions, subtracting sign·magnitude from the shear state at each
// interior boundary. A grid sample coinciding with a boundary receives
// the pre-jump state. If the per-segment samples fail to reconcile with
// the grid, the whole domain is integrated in one pass instead; that
// result ignores the shear jumps and is only a degraded fallback.
func (s *Solver) integrateSegmented(y0 beam.State, grid []float64) []beam.State {
	boundaries := s.segmentBoundaries()
	if len(boundaries) == 2 {
		return s.integrate(y0, grid)
	}

	out := make([]beam.State, 0, len(grid))
	cur := y0.Clone()
	curX := 0.0
	out = append(out, cur.Clone())
	gi := 1

	for i := 1; i < len(boundaries); i++ {
		bEnd := boundaries[i]

		for gi < len(grid) && grid[gi] <= bEnd+matchTol {
			cur = s.advance(cur, curX, grid[gi])
			curX = grid[gi]
			out = append(out, cur.Clone())
			gi++
		}

		if bEnd > curX {
			cur = s.advance(cur, curX, bEnd)
			curX = bEnd
		}

		// interior boundary: the point load drops the shear carried
		// into the next segment
		if i < len(boundaries)-1 {
			for _, ld := range s.loads {
				if math.Abs(ld.pos-bEnd) < matchTol {
					cur[beam.IdxShear] -= ld.sign * ld.magnitude
				}
			}
		}
	}

	if len(out) != len(grid) {
		return s.integrate(y0, grid)
	}
	return out
}

func linspace(start, stop float64, n int) []float64 {
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = start
		return xs
	}
	step := (stop - start) / float64(n-1)
	for i := range xs {
		xs[i] = start + float64(i)*step
	}
	xs[n-1] = stop
	return xs
}
