package config

// Presets are ready-made problem configurations for common setups.
var Presets = map[string]*Config{
	"steel-cantilever": {
		Length: 2.0, Width: 0.06, Height: 0.15, Material: "steel",
		Orientation: "horizontal", EndCondition: "cantilever",
		AxialLoad: 20000, LateralLoad: 6000,
		PointLoads: []PointLoadConfig{
			{Magnitude: 5000, Position: 0.5, AsFraction: true, Direction: "downward"},
		},
		Samples: 100, Integrator: "rk4", Gravity: 9.81,
	},
	"steel-simply-supported": {
		Length: 4.0, Width: 0.1, Height: 0.2, Material: "steel",
		Orientation: "horizontal", EndCondition: "simply_supported",
		LateralLoad: 10000, IncludeSelfWeight: true,
		Samples: 100, Integrator: "rk4", Gravity: 9.81,
	},
	"steel-fixed-fixed": {
		Length: 3.0, Width: 0.08, Height: 0.16, Material: "steel",
		Orientation: "horizontal", EndCondition: "fixed_fixed",
		LateralLoad: 12000, IncludeSelfWeight: true,
		Samples: 100, Integrator: "rk4", Gravity: 9.81,
	},
	"aluminum-propped": {
		Length: 2.5, Width: 0.05, Height: 0.12, Material: "aluminum",
		Orientation: "horizontal", EndCondition: "fixed_hinged",
		LateralLoad: 3000,
		Samples:     100, Integrator: "rk4", Gravity: 9.81,
	},
	"concrete-column": {
		Length: 3.0, Width: 0.25, Height: 0.25, Material: "concrete",
		Orientation: "vertical", EndCondition: "fixed_fixed",
		AxialLoad: 200000, LateralLoad: 1000, IncludeSelfWeight: true,
		Samples: 100, Integrator: "rk4", Gravity: 9.81,
	},
	"wood-joist": {
		Length: 3.5, Width: 0.04, Height: 0.18, Material: "wood",
		Orientation: "horizontal", EndCondition: "simply_supported",
		LateralLoad: 1500, IncludeSelfWeight: true,
		Samples: 100, Integrator: "rk4", Gravity: 9.81,
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
