// Package report renders a one-page PDF calculation sheet for a solved
// run.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/aiexplorations/beam-column-simulation/internal/storage"
)

// Write renders the calculation sheet to path.
func Write(path string, run *storage.Run) error {
	cfg := run.Meta.Problem
	sum := run.Meta.Summary

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Beam-Column Analysis Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Run: %s", run.Meta.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Problem")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Length: %.3f m", cfg.Length),
		fmt.Sprintf("Section: %.0f x %.0f mm", cfg.Width*1000, cfg.Height*1000),
		fmt.Sprintf("Material: %s", cfg.Material),
		fmt.Sprintf("End condition: %s", cfg.EndCondition),
		fmt.Sprintf("Orientation: %s", cfg.Orientation),
		fmt.Sprintf("Axial load: %.2f kN", cfg.AxialLoad/1000),
		fmt.Sprintf("Distributed lateral load: %.2f kN/m", cfg.LateralLoad/1000),
		fmt.Sprintf("Point loads: %d", len(cfg.PointLoads)),
		fmt.Sprintf("Self-weight included: %v", cfg.IncludeSelfWeight),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	for i, pl := range cfg.PointLoads {
		pos := "absolute"
		if pl.AsFraction {
			pos = "fraction"
		}
		pdf.Cell(0, 6, fmt.Sprintf("  load %d: %.2f kN %s at %.3f (%s)",
			i+1, pl.Magnitude/1000, pl.Direction, pl.Position, pos))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	results := []string{
		fmt.Sprintf("Max deflection: %.3f mm", sum.MaxDeflection*1000),
		fmt.Sprintf("Max bending moment: %.3f kNm", sum.MaxMoment/1000),
		fmt.Sprintf("Max shear force: %.3f kN", sum.MaxShear/1000),
		fmt.Sprintf("Max bending stress: %.3f MPa", sum.MaxBendingStress/1e6),
		fmt.Sprintf("Max axial stress: %.3f MPa", sum.MaxAxialStress/1e6),
		fmt.Sprintf("Bending strain energy: %.6f J", sum.StrainEnergy),
		fmt.Sprintf("Euler critical buckling load: %.3f kN", sum.CriticalLoad/1000),
		fmt.Sprintf("Buckling utilization: %.1f %%", sum.Utilization*100),
	}
	for _, line := range results {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}

	if run.Meta.Approximate {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, "Note: the shooting search did not converge for this run; "+
			"initial conditions were taken from the closed-form small-deflection "+
			"approximation.", "", "L", false)
	}

	return pdf.OutputFileAndClose(path)
}
