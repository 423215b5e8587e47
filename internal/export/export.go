// Package export writes solved runs to JSON, CSV and XLSX files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/aiexplorations/beam-column-simulation/internal/storage"
)

// Data is the flat export payload assembled from a stored run.
type Data struct {
	ID          string               `json:"id"`
	Problem     any                  `json:"problem"`
	Approximate bool                 `json:"approximate"`
	Summary     any                  `json:"summary"`
	X           []float64            `json:"x"`
	Deflection  []float64            `json:"deflection"`
	Moment      []float64            `json:"moment"`
	Shear       []float64            `json:"shear"`
	Stresses    map[string][]float64 `json:"stresses"`
	Strains     map[string][]float64 `json:"strains"`
}

func FromRun(run *storage.Run) *Data {
	return &Data{
		ID:          run.Meta.ID,
		Problem:     run.Meta.Problem,
		Approximate: run.Meta.Approximate,
		Summary:     run.Meta.Summary,
		X:           run.Solution.X,
		Deflection:  run.Solution.Deflection,
		Moment:      run.Solution.Moment,
		Shear:       run.Solution.Shear,
		Stresses: map[string][]float64{
			"bending":  run.Stress.Bending,
			"axial":    run.Stress.Axial,
			"combined": run.Stress.Combined,
		},
		Strains: map[string][]float64{
			"bending": run.Stress.BendingStrain,
			"axial":   run.Stress.AxialStrain,
		},
	}
}

func JSON(w io.Writer, run *storage.Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(FromRun(run))
}

func JSONFile(path string, run *storage.Run) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return JSON(file, run)
}

var csvHeader = []string{
	"x", "deflection", "moment", "shear",
	"bending_stress", "axial_stress", "combined_stress",
	"bending_strain", "axial_strain",
}

func CSV(w io.Writer, run *storage.Run) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	sol, st := run.Solution, run.Stress
	for i := range sol.X {
		row := make([]string, 0, len(csvHeader))
		for _, v := range []float64{
			sol.X[i], sol.Deflection[i], sol.Moment[i], sol.Shear[i],
			st.Bending[i], st.Axial[i], st.Combined[i],
			st.BendingStrain[i], st.AxialStrain[i],
		} {
			row = append(row, strconv.FormatFloat(v, 'e', 12, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

func CSVFile(path string, run *storage.Run) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return CSV(file, run)
}

// XLSX writes the run to a spreadsheet with a Solution sheet of the
// sampled series and a Summary sheet of the scalar results.
func XLSX(path string, run *storage.Run) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Solution"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for c, name := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	sol, st := run.Solution, run.Stress
	for i := range sol.X {
		values := []float64{
			sol.X[i], sol.Deflection[i], sol.Moment[i], sol.Shear[i],
			st.Bending[i], st.Axial[i], st.Combined[i],
			st.BendingStrain[i], st.AxialStrain[i],
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if _, err := f.NewSheet("Summary"); err != nil {
		return err
	}
	sum := run.Meta.Summary
	rows := [][2]any{
		{"run", run.Meta.ID},
		{"end_condition", run.Meta.Problem.EndCondition},
		{"approximate", run.Meta.Approximate},
		{"max_deflection_m", sum.MaxDeflection},
		{"max_moment_nm", sum.MaxMoment},
		{"max_shear_n", sum.MaxShear},
		{"max_bending_stress_pa", sum.MaxBendingStress},
		{"max_axial_stress_pa", sum.MaxAxialStress},
		{"strain_energy_j", sum.StrainEnergy},
		{"critical_load_n", sum.CriticalLoad},
	}
	for i, kv := range rows {
		keyCell := fmt.Sprintf("A%d", i+1)
		valCell := fmt.Sprintf("B%d", i+1)
		if err := f.SetCellValue("Summary", keyCell, kv[0]); err != nil {
			return err
		}
		if err := f.SetCellValue("Summary", valCell, kv[1]); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
