// Package beam defines the core value types for beam-column analysis.
//
// The package holds the problem definition and its building blocks:
//
//   - [Section]: rectangular cross-section with derived geometric properties
//   - [Material]: linear-elastic material constants
//   - [PointLoad]: concentrated lateral load with position and direction
//   - [Problem]: complete problem definition including the end condition
//   - [Solution]: sampled deflection, moment and shear along the beam
//
// The state vector convention is y = [v, θ, M, V]: lateral deflection,
// slope, bending moment, shear force. Position x runs from 0 to L, with
// x=0 the first-named end of the boundary condition (e.g. the free end of
// a cantilever) and x=L the second-named end.
//
// All types are plain values; nothing in this package performs I/O or
// holds state across calls, so Problem values may be solved concurrently.
package beam
