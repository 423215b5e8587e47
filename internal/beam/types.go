package beam

import "math"

// Indices into the state vector y = [v, θ, M, V].
const (
	IdxDeflection = 0
	IdxSlope      = 1
	IdxMoment     = 2
	IdxShear      = 3
)

// StateDim is the dimension of the beam state vector.
const StateDim = 4

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is a first-order ODE system y' = f(y, x) over beam position x.
type System interface {
	Derive(y State, x float64) State
	Dim() int
}

// Stepper advances a state from x to x+h through a System.
type Stepper interface {
	Step(sys System, y State, x, h float64) State
}

// Section is a rectangular cross-section. Dimensions are in meters.
type Section struct {
	Width  float64
	Height float64
}

// Area returns the cross-sectional area.
func (s Section) Area() float64 {
	return s.Width * s.Height
}

// MomentOfInertia returns the second moment of area about the neutral axis.
func (s Section) MomentOfInertia() float64 {
	return s.Width * s.Height * s.Height * s.Height / 12
}

// FiberDistance returns the distance from the neutral axis to the extreme fiber.
func (s Section) FiberDistance() float64 {
	return s.Height / 2
}

// Material holds linear-elastic material constants in SI units.
type Material struct {
	E            float64 // Young's modulus (Pa)
	Density      float64 // kg/m³
	PoissonRatio float64 // informational; unused by the solver
}

// Direction is the sense of a lateral point load relative to the
// distributed-load convention.
type Direction string

const (
	Downward Direction = "downward"
	Upward   Direction = "upward"
)

// Sign returns +1 for downward loads and -1 for upward loads.
func (d Direction) Sign() float64 {
	if d == Upward {
		return -1
	}
	return 1
}

// PointLoad is a concentrated lateral force. Position is an absolute
// coordinate in [0, L], or a fraction in [0, 1] when AsFraction is set.
type PointLoad struct {
	Magnitude  float64
	Position   float64
	AsFraction bool
	Direction  Direction
}

// Resolve returns the absolute position of the load on a beam of the
// given length.
func (pl PointLoad) Resolve(length float64) float64 {
	if pl.AsFraction {
		return pl.Position * length
	}
	return pl.Position
}

// Sign returns the direction sign of the load.
func (pl PointLoad) Sign() float64 {
	return pl.Direction.Sign()
}

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// EndCondition selects one of the six supported boundary configurations.
// The first-named end is at x=0, the second at x=L.
type EndCondition string

const (
	Cantilever      EndCondition = "cantilever"       // free at x=0, fixed at x=L
	SimplySupported EndCondition = "simply_supported" // hinged at both ends
	FixedFixed      EndCondition = "fixed_fixed"      // fixed at both ends
	HingedFree      EndCondition = "hinged_free"      // hinged at x=0, free at x=L
	FixedHinged     EndCondition = "fixed_hinged"     // fixed at x=0, hinged at x=L
	HingedFixed     EndCondition = "hinged_fixed"     // hinged at x=0, fixed at x=L
)

// EndConditions lists the supported boundary configurations.
func EndConditions() []EndCondition {
	return []EndCondition{
		Cantilever, SimplySupported, FixedFixed,
		HingedFree, FixedHinged, HingedFixed,
	}
}

func (ec EndCondition) Valid() bool {
	switch ec {
	case Cantilever, SimplySupported, FixedFixed, HingedFree, FixedHinged, HingedFixed:
		return true
	}
	return false
}

// DefaultGravity is the gravitational acceleration in m/s².
const DefaultGravity = 9.81

// Problem is a complete beam-column problem definition. Values are SI:
// meters, newtons, newtons per meter, pascals.
type Problem struct {
	Length   float64
	Section  Section
	Material Material

	AxialLoad   float64 // compression-positive (N)
	LateralLoad float64 // distributed lateral load (N/m)

	// TipLoad is a single concentrated load applied at x = L.
	//
	// Deprecated: use PointLoads. Normalize folds it into PointLoads.
	TipLoad float64

	PointLoads []PointLoad

	Orientation       Orientation
	IncludeSelfWeight bool
	Gravity           float64

	EndCondition EndCondition
}

// NewProblem builds a Problem with the conventional defaults: horizontal
// orientation, self-weight included, standard gravity, cantilever ends.
// The legacy tip load, if any, is normalized into the point-load list.
func NewProblem(length float64, sec Section, mat Material) *Problem {
	p := &Problem{
		Length:            length,
		Section:           sec,
		Material:          mat,
		Orientation:       Horizontal,
		IncludeSelfWeight: true,
		Gravity:           DefaultGravity,
		EndCondition:      Cantilever,
	}
	p.Normalize()
	return p
}

// Normalize folds the deprecated TipLoad field into the point-load list,
// placed at x = L. After normalization the list is the single source of
// truth; Normalize is idempotent.
func (p *Problem) Normalize() {
	if p.PointLoads == nil {
		p.PointLoads = []PointLoad{}
		if p.TipLoad != 0 {
			p.PointLoads = append(p.PointLoads, PointLoad{
				Magnitude: p.TipLoad,
				Position:  p.Length,
				Direction: Downward,
			})
		}
	}
	p.TipLoad = 0
	if p.Gravity == 0 {
		p.Gravity = DefaultGravity
	}
}

// SelfWeightLoad returns the beam's own weight as a distributed load in
// N/m, or zero when self-weight is excluded.
func (p *Problem) SelfWeightLoad() float64 {
	if !p.IncludeSelfWeight {
		return 0
	}
	return p.Section.Area() * p.Material.Density * p.Gravity
}

// TotalLateralLoad returns the distributed load the solver integrates
// against. Self-weight contributes only when the beam is vertical: a
// horizontal beam's weight acts along its axis, not laterally.
func (p *Problem) TotalLateralLoad() float64 {
	total := p.LateralLoad
	if p.Orientation == Vertical && p.IncludeSelfWeight {
		total += p.SelfWeightLoad()
	}
	return total
}

// TotalPointLoad returns the sum of point-load magnitudes.
func (p *Problem) TotalPointLoad() float64 {
	sum := 0.0
	for _, pl := range p.PointLoads {
		sum += pl.Magnitude
	}
	return sum
}

// EI returns the flexural rigidity E·I.
func (p *Problem) EI() float64 {
	return p.Material.E * p.Section.MomentOfInertia()
}

// Solution holds the beam response sampled over a position grid.
// All four slices have the same length. A Solution is never mutated
// after the solver returns it.
type Solution struct {
	X          []float64
	Deflection []float64
	Moment     []float64
	Shear      []float64

	// Approximate is set when root finding failed to converge and a
	// closed-form small-deflection fallback supplied the initial
	// conditions instead.
	Approximate bool
}

func (s *Solution) Len() int {
	return len(s.X)
}
