// Package storage persists solved runs under a data directory, one
// subdirectory per run holding metadata and the sampled solution.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/aiexplorations/beam-column-simulation/internal/beam"
	"github.com/aiexplorations/beam-column-simulation/internal/config"
	"github.com/aiexplorations/beam-column-simulation/internal/metrics"
	"github.com/aiexplorations/beam-column-simulation/internal/stress"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Problem     *config.Config  `json:"problem"`
	Approximate bool            `json:"approximate"`
	Summary     metrics.Summary `json:"summary"`
}

// Columns of solution.csv, in order.
var columns = []string{
	"x", "deflection", "moment", "shear",
	"bending_stress", "axial_stress", "combined_stress",
	"bending_strain", "axial_strain",
}

// Run is a fully loaded stored run: the metadata plus the solution and
// stress series parsed back from disk.
type Run struct {
	Meta     RunMetadata
	Solution *beam.Solution
	Stress   *stress.Result
}

func (s *Store) Save(cfg *config.Config, sol *beam.Solution, st *stress.Result, sum metrics.Summary) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.EndCondition, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Problem:     cfg,
		Approximate: sol.Approximate,
		Summary:     sum,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "solution.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(columns); err != nil {
		return "", err
	}

	for i := 0; i < sol.Len(); i++ {
		row := make([]string, 0, len(columns))
		for _, v := range []float64{
			sol.X[i], sol.Deflection[i], sol.Moment[i], sol.Shear[i],
			st.Bending[i], st.Axial[i], st.Combined[i],
			st.BendingStrain[i], st.AxialStrain[i],
		} {
			row = append(row, strconv.FormatFloat(v, 'e', 12, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) LoadMeta(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) Load(runID string) (*Run, error) {
	meta, err := s.LoadMeta(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "solution.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("storage: run %s has no samples", runID)
	}

	n := len(records) - 1
	series := make([][]float64, len(columns))
	for c := range series {
		series[c] = make([]float64, n)
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != len(columns) {
			return nil, fmt.Errorf("storage: run %s row %d has %d columns, want %d", runID, i, len(record), len(columns))
		}
		for c, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: run %s row %d: %w", runID, i, err)
			}
			series[c][i-1] = v
		}
	}

	return &Run{
		Meta: *meta,
		Solution: &beam.Solution{
			X:           series[0],
			Deflection:  series[1],
			Moment:      series[2],
			Shear:       series[3],
			Approximate: meta.Approximate,
		},
		Stress: &stress.Result{
			Bending:       series[4],
			Axial:         series[5],
			Combined:      series[6],
			BendingStrain: series[7],
			AxialStrain:   series[8],
		},
	}, nil
}
