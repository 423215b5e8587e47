// Package solver computes the static response of a beam-column by
// shooting: the unknown initial conditions at x=0 are found by root
// finding so that the prescribed conditions at x=L hold, then the state
// is integrated once more over the full sample grid.
//
// Point loads make the shear force discontinuous, so integration runs
// segment by segment between load positions, applying the shear jump at
// each interior boundary.
//
// A Solver holds no mutable state across Solve calls; distinct Solver
// values may run concurrently.
package solver
