package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/aiexplorations/beam-column-simulation/internal/beam"
	"github.com/aiexplorations/beam-column-simulation/internal/config"
	"github.com/aiexplorations/beam-column-simulation/internal/export"
	"github.com/aiexplorations/beam-column-simulation/internal/integrators"
	"github.com/aiexplorations/beam-column-simulation/internal/materials"
	"github.com/aiexplorations/beam-column-simulation/internal/metrics"
	"github.com/aiexplorations/beam-column-simulation/internal/report"
	"github.com/aiexplorations/beam-column-simulation/internal/solver"
	"github.com/aiexplorations/beam-column-simulation/internal/storage"
	"github.com/aiexplorations/beam-column-simulation/internal/stress"
	"github.com/aiexplorations/beam-column-simulation/internal/tui"
	"github.com/aiexplorations/beam-column-simulation/internal/viz"
)

var (
	dataDir string

	length       float64
	width        float64
	height       float64
	materialName string
	orientation  string
	endCondition string
	axialLoad    float64
	lateralLoad  float64
	tipLoad      float64
	pointLoads   []string
	selfWeight   bool
	samples      int
	integrator   string

	configFile string
	preset     string

	outPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "beamsim",
		Short: "beam-column deflection and stress solver",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".beamsim", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve a beam-column problem",
		RunE:  runSolve,
	}
	solveCmd.Flags().Float64Var(&length, "length", config.DefaultLength, "beam length (m)")
	solveCmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "section width (m)")
	solveCmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "section height (m)")
	solveCmd.Flags().StringVar(&materialName, "material", "steel", "material name")
	solveCmd.Flags().StringVar(&orientation, "orientation", "horizontal", "horizontal or vertical")
	solveCmd.Flags().StringVar(&endCondition, "end", "cantilever", "end condition")
	solveCmd.Flags().Float64Var(&axialLoad, "axial", config.DefaultAxialLoad, "axial load (N, compression positive)")
	solveCmd.Flags().Float64Var(&lateralLoad, "lateral", config.DefaultLateralLoad, "distributed lateral load (N/m)")
	solveCmd.Flags().Float64Var(&tipLoad, "tip-load", 0, "legacy point load at x=L (N)")
	solveCmd.Flags().StringArrayVar(&pointLoads, "point-load", nil,
		"point load as MAG@POS, e.g. 5000@0.5f (f = position is a length fraction, suffix :up for upward)")
	solveCmd.Flags().BoolVar(&selfWeight, "self-weight", true, "include beam self-weight")
	solveCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sample count")
	solveCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (euler, rk4, rk45)")
	solveCmd.Flags().StringVar(&configFile, "config", "", "problem config file (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list built-in materials",
		RunE:  listMaterials,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run diagrams",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "browse run diagrams interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  viewRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outPath, "out", "", "output file (default <run_id>.csv)")

	exportXLSXCmd := &cobra.Command{
		Use:   "export-xlsx [run_id]",
		Short: "export run data to a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE:  exportXLSX,
	}
	exportXLSXCmd.Flags().StringVar(&outPath, "out", "", "output file (default <run_id>.xlsx)")

	reportCmd := &cobra.Command{
		Use:   "report [run_id]",
		Short: "write a PDF calculation report",
		Args:  cobra.ExactArgs(1),
		RunE:  writeReport,
	}
	reportCmd.Flags().StringVar(&outPath, "out", "", "output file (default <run_id>.pdf)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(solveCmd, materialsCmd, listCmd, plotCmd, viewCmd,
		exportCmd, exportCSVCmd, exportXLSXCmd, reportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config file
	if cmd.Flags().Changed("length") {
		cfg.Length = length
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("material") {
		cfg.Material = materialName
	}
	if cmd.Flags().Changed("orientation") {
		cfg.Orientation = orientation
	}
	if cmd.Flags().Changed("end") {
		cfg.EndCondition = endCondition
	}
	if cmd.Flags().Changed("axial") {
		cfg.AxialLoad = axialLoad
	}
	if cmd.Flags().Changed("lateral") {
		cfg.LateralLoad = lateralLoad
	}
	if cmd.Flags().Changed("tip-load") {
		cfg.TipLoad = tipLoad
	}
	if cmd.Flags().Changed("self-weight") {
		cfg.IncludeSelfWeight = selfWeight
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("point-load") {
		cfg.PointLoads = nil
		for _, spec := range pointLoads {
			pl, err := parsePointLoad(spec)
			if err != nil {
				return nil, err
			}
			cfg.PointLoads = append(cfg.PointLoads, pl)
		}
	}

	return cfg, nil
}

// parsePointLoad parses MAG@POS with an optional trailing f on the
// position (length fraction) and an optional :up or :down suffix.
func parsePointLoad(spec string) (config.PointLoadConfig, error) {
	pl := config.PointLoadConfig{Direction: string(beam.Downward)}

	rest := spec
	if i := strings.LastIndex(rest, ":"); i >= 0 {
		switch rest[i+1:] {
		case "up":
			pl.Direction = string(beam.Upward)
		case "down":
			pl.Direction = string(beam.Downward)
		default:
			return pl, fmt.Errorf("invalid point load direction in %q", spec)
		}
		rest = rest[:i]
	}

	mag, pos, ok := strings.Cut(rest, "@")
	if !ok {
		return pl, fmt.Errorf("invalid point load %q, want MAG@POS", spec)
	}

	if strings.HasSuffix(pos, "f") {
		pl.AsFraction = true
		pos = strings.TrimSuffix(pos, "f")
	}

	m, err := strconv.ParseFloat(mag, 64)
	if err != nil {
		return pl, fmt.Errorf("invalid point load magnitude in %q: %w", spec, err)
	}
	p, err := strconv.ParseFloat(pos, 64)
	if err != nil {
		return pl, fmt.Errorf("invalid point load position in %q: %w", spec, err)
	}

	pl.Magnitude = m
	pl.Position = p
	return pl, nil
}

func newStepper(name string) (beam.Stepper, error) {
	switch name {
	case "euler":
		return integrators.NewEuler(), nil
	case "rk4", "":
		return integrators.NewRK4(), nil
	case "rk45":
		return integrators.NewRK45(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	problem, err := cfg.ToProblem()
	if err != nil {
		return err
	}

	stepper, err := newStepper(cfg.Integrator)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("solving %s beam...\n", cfg.EndCondition)
	start := time.Now()

	sol, err := solver.New(problem, stepper).Solve(cfg.Samples)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	stresses := stress.Compute(sol, problem.Section, problem.Material, problem.AxialLoad)
	sum := metrics.Summarize(problem, sol, stresses)

	runID, err := st.Save(cfg, sol, stresses, sum)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n\n", runID)
	fmt.Print(viz.RenderSummary(sum, sol.Approximate))

	return nil
}

func listMaterials(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tE (GPa)\tDENSITY (kg/m³)\tPOISSON")
	for _, name := range materials.Names() {
		m, _ := materials.Get(name)
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.2f\n", name, m.E/1e9, m.Density, m.PoissonRatio)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tEND\tMATERIAL\tL (m)\tMAX DEFL (mm)\tMAX σ_b (MPa)")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.3f\t%.2f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Problem.EndCondition,
			run.Problem.Material,
			run.Problem.Length,
			run.Summary.MaxDeflection*1000,
			run.Summary.MaxBendingStress/1e6,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	run, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", run.Meta.ID)
	fmt.Printf("end condition: %s\n", run.Meta.Problem.EndCondition)
	fmt.Printf("samples: %d\n\n", run.Solution.Len())

	fmt.Print(viz.Diagrams(run.Solution, run.Stress))
	fmt.Print(viz.RenderSummary(run.Meta.Summary, run.Meta.Approximate))
	return nil
}

func viewRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	run, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return tui.Browse(run)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	run, err := st.Load(args[0])
	if err != nil {
		return err
	}
	if outPath == "" {
		return export.JSON(os.Stdout, run)
	}
	if err := export.JSONFile(outPath, run); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	run, err := st.Load(args[0])
	if err != nil {
		return err
	}
	path := outPath
	if path == "" {
		path = args[0] + ".csv"
	}
	if err := export.CSVFile(path, run); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportXLSX(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	run, err := st.Load(args[0])
	if err != nil {
		return err
	}
	path := outPath
	if path == "" {
		path = args[0] + ".xlsx"
	}
	if err := export.XLSX(path, run); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func writeReport(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	run, err := st.Load(args[0])
	if err != nil {
		return err
	}
	path := outPath
	if path == "" {
		path = args[0] + ".pdf"
	}
	if err := report.Write(path, run); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
