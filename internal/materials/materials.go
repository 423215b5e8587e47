// Package materials provides the built-in engineering material table.
package materials

import (
	"sort"

	"github.com/aiexplorations/beam-column-simulation/internal/beam"
)

// Common engineering materials, SI units.
var (
	Steel = beam.Material{E: 200e9, Density: 7850, PoissonRatio: 0.3}

	Aluminum = beam.Material{E: 69e9, Density: 2700, PoissonRatio: 0.33}

	// typical softwood
	Wood = beam.Material{E: 12e9, Density: 500, PoissonRatio: 0.3}

	Concrete = beam.Material{E: 30e9, Density: 2400, PoissonRatio: 0.2}
)

var table = map[string]beam.Material{
	"steel":    Steel,
	"aluminum": Aluminum,
	"wood":     Wood,
	"concrete": Concrete,
}

// Get looks up a named material. Names are case-sensitive, lower-case.
func Get(name string) (beam.Material, bool) {
	m, ok := table[name]
	return m, ok
}

// Names lists the available material names in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
