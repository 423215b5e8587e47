// Package viz renders solution diagrams and summaries for the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/aiexplorations/beam-column-simulation/internal/beam"
	"github.com/aiexplorations/beam-column-simulation/internal/metrics"
	"github.com/aiexplorations/beam-column-simulation/internal/stress"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

// Series identifies one plottable response curve.
type Series struct {
	Name string
	Unit string
	Data []float64
}

// SeriesList assembles the plottable curves of a solved run, converted
// to presentation units: mm, kNm, kN, MPa.
func SeriesList(sol *beam.Solution, st *stress.Result) []Series {
	return []Series{
		{Name: "deflection", Unit: "mm", Data: scale(sol.Deflection, 1000)},
		{Name: "bending moment", Unit: "kNm", Data: scale(sol.Moment, 1e-3)},
		{Name: "shear force", Unit: "kN", Data: scale(sol.Shear, 1e-3)},
		{Name: "bending stress", Unit: "MPa", Data: scale(st.Bending, 1e-6)},
		{Name: "combined stress", Unit: "MPa", Data: scale(st.Combined, 1e-6)},
	}
}

// Plot renders one series as an ASCII graph over the beam length.
func Plot(s Series, width, height int) string {
	graph := asciigraph.Plot(s.Data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s (%s) along beam", s.Name, s.Unit)),
	)
	return graph
}

// Diagrams renders every series of a solved run.
func Diagrams(sol *beam.Solution, st *stress.Result) string {
	var sb strings.Builder
	for _, s := range SeriesList(sol, st) {
		sb.WriteString(Plot(s, 80, 10))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// RenderSummary formats the scalar results as a styled block.
func RenderSummary(sum metrics.Summary, approximate bool) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("results"))
	sb.WriteString("\n")

	row := func(label, value string) {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-22s", label)),
			valueStyle.Render(value)))
	}

	row("max deflection", fmt.Sprintf("%.4f mm", sum.MaxDeflection*1000))
	row("max bending moment", fmt.Sprintf("%.4f kNm", sum.MaxMoment/1000))
	row("max shear force", fmt.Sprintf("%.4f kN", sum.MaxShear/1000))
	row("max bending stress", fmt.Sprintf("%.4f MPa", sum.MaxBendingStress/1e6))
	row("max axial stress", fmt.Sprintf("%.4f MPa", sum.MaxAxialStress/1e6))
	row("strain energy", fmt.Sprintf("%.6f J", sum.StrainEnergy))
	row("critical buckling load", fmt.Sprintf("%.2f kN", sum.CriticalLoad/1000))

	utilization := fmt.Sprintf("%.1f %%", sum.Utilization*100)
	switch {
	case sum.Utilization >= 1:
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-22s", "buckling utilization")),
			dangerStyle.Render(utilization+"  exceeds Euler critical load")))
	case sum.Utilization >= 0.5:
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-22s", "buckling utilization")),
			warnStyle.Render(utilization)))
	default:
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-22s", "buckling utilization")),
			okStyle.Render(utilization)))
	}

	if approximate {
		sb.WriteString(warnStyle.Render("  shooting search did not converge; closed-form fallback used"))
		sb.WriteString("\n")
	}

	return sb.String()
}

func scale(xs []float64, factor float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = v * factor
	}
	return out
}
