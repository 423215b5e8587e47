package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aiexplorations/beam-column-simulation/internal/beam"
	"github.com/aiexplorations/beam-column-simulation/internal/materials"
)

const (
	DefaultLength      = 2.0
	DefaultWidth       = 0.06
	DefaultHeight      = 0.15
	DefaultAxialLoad   = 20000.0
	DefaultLateralLoad = 6000.0
	DefaultSamples     = 100
)

// Config describes a beam-column problem in file form. The config layer
// owns input validation; the solver assumes a validated problem.
type Config struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Material names a built-in material, or "custom" to use the
	// explicit constants below.
	Material     string  `yaml:"material"`
	E            float64 `yaml:"e"`
	Density      float64 `yaml:"density"`
	PoissonRatio float64 `yaml:"poisson_ratio"`

	Orientation  string `yaml:"orientation"`
	EndCondition string `yaml:"end_condition"`

	AxialLoad   float64 `yaml:"axial_load"`
	LateralLoad float64 `yaml:"lateral_load"`

	// TipLoad is the legacy single concentrated load at x = L.
	TipLoad    float64           `yaml:"tip_load"`
	PointLoads []PointLoadConfig `yaml:"point_loads"`

	IncludeSelfWeight bool    `yaml:"include_self_weight"`
	Gravity           float64 `yaml:"gravity"`

	Samples    int    `yaml:"samples"`
	Integrator string `yaml:"integrator"`
}

type PointLoadConfig struct {
	Magnitude  float64 `yaml:"magnitude"`
	Position   float64 `yaml:"position"`
	AsFraction bool    `yaml:"as_fraction"`
	Direction  string  `yaml:"direction"`
}

func DefaultConfig() *Config {
	return &Config{
		Length:            DefaultLength,
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		Material:          "steel",
		Orientation:       string(beam.Horizontal),
		EndCondition:      string(beam.Cantilever),
		AxialLoad:         DefaultAxialLoad,
		LateralLoad:       DefaultLateralLoad,
		IncludeSelfWeight: true,
		Gravity:           beam.DefaultGravity,
		Samples:           DefaultSamples,
		Integrator:        "rk4",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field the solver assumes valid.
func (c *Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %f", beam.ErrInvalidProblem, c.Length)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: section dimensions must be positive, got %fx%f", beam.ErrInvalidProblem, c.Width, c.Height)
	}
	if _, err := c.material(); err != nil {
		return err
	}
	if c.AxialLoad < 0 {
		return fmt.Errorf("%w: axial load must be non-negative, got %f", beam.ErrInvalidProblem, c.AxialLoad)
	}
	switch beam.Orientation(c.Orientation) {
	case beam.Horizontal, beam.Vertical:
	default:
		return fmt.Errorf("%w: unknown orientation %q", beam.ErrInvalidProblem, c.Orientation)
	}
	if !beam.EndCondition(c.EndCondition).Valid() {
		return fmt.Errorf("%w: %q", beam.ErrUnknownEndCondition, c.EndCondition)
	}
	if c.TipLoad < 0 {
		return fmt.Errorf("%w: tip load must be non-negative, got %f", beam.ErrInvalidProblem, c.TipLoad)
	}
	for i, pl := range c.PointLoads {
		if pl.Magnitude <= 0 {
			return fmt.Errorf("%w: point load %d magnitude must be positive, got %f", beam.ErrInvalidProblem, i, pl.Magnitude)
		}
		limit := c.Length
		if pl.AsFraction {
			limit = 1
		}
		if pl.Position < 0 || pl.Position > limit {
			return fmt.Errorf("%w: point load %d position %f outside [0, %g]", beam.ErrInvalidProblem, i, pl.Position, limit)
		}
		switch beam.Direction(pl.Direction) {
		case beam.Downward, beam.Upward:
		default:
			return fmt.Errorf("%w: point load %d has unknown direction %q", beam.ErrInvalidProblem, i, pl.Direction)
		}
	}
	return nil
}

func (c *Config) material() (beam.Material, error) {
	if c.Material == "custom" {
		if c.E <= 0 {
			return beam.Material{}, fmt.Errorf("%w: custom material needs a positive Young's modulus", beam.ErrInvalidProblem)
		}
		if c.Density < 0 {
			return beam.Material{}, fmt.Errorf("%w: density must be non-negative, got %f", beam.ErrInvalidProblem, c.Density)
		}
		return beam.Material{E: c.E, Density: c.Density, PoissonRatio: c.PoissonRatio}, nil
	}
	m, ok := materials.Get(c.Material)
	if !ok {
		return beam.Material{}, fmt.Errorf("%w: unknown material %q (available: %v)", beam.ErrInvalidProblem, c.Material, materials.Names())
	}
	return m, nil
}

// ToProblem validates the config and builds the normalized Problem.
func (c *Config) ToProblem() (*beam.Problem, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	mat, err := c.material()
	if err != nil {
		return nil, err
	}

	p := &beam.Problem{
		Length:            c.Length,
		Section:           beam.Section{Width: c.Width, Height: c.Height},
		Material:          mat,
		AxialLoad:         c.AxialLoad,
		LateralLoad:       c.LateralLoad,
		TipLoad:           c.TipLoad,
		Orientation:       beam.Orientation(c.Orientation),
		IncludeSelfWeight: c.IncludeSelfWeight,
		Gravity:           c.Gravity,
		EndCondition:      beam.EndCondition(c.EndCondition),
	}
	if len(c.PointLoads) > 0 {
		p.PointLoads = make([]beam.PointLoad, 0, len(c.PointLoads))
		for _, pl := range c.PointLoads {
			p.PointLoads = append(p.PointLoads, beam.PointLoad{
				Magnitude:  pl.Magnitude,
				Position:   pl.Position,
				AsFraction: pl.AsFraction,
				Direction:  beam.Direction(pl.Direction),
			})
		}
	}
	p.Normalize()
	return p, nil
}
