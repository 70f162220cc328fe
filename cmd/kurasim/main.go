package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/kurasim/internal/analysis"
	"github.com/san-kum/kurasim/internal/config"
	"github.com/san-kum/kurasim/internal/export"
	"github.com/san-kum/kurasim/internal/metrics"
	"github.com/san-kum/kurasim/internal/sim"
	"github.com/san-kum/kurasim/internal/storage"
	"github.com/san-kum/kurasim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	count    int
	coupling float64
	dt       float64
	freqMin  float64
	freqMax  float64
	speed    float64
	seed     int64
	steps    int
	runs     int
	// Sweep shape
	maxK    float64
	points  int
	burn    int
	measure int
	// Config file
	configFile string
	// Preset name
	preset string
	// SVG output path
	svgOut string
)

// main is the entry point for the kurasim CLI; it registers commands and
// flags and launches the interactive TUI when no subcommand is provided.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "kurasim",
		Short: "kuramoto oscillator synchronization lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := resolveParams(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(params)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".kurasim", "data directory")
	addParamFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and record it",
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "simulation steps")
	runCmd.Flags().IntVar(&runs, "runs", config.DefaultRuns, "ensemble size")
	runCmd.Flags().StringVar(&svgOut, "snapshot", "", "write final phase configuration as SVG")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "sweep coupling strength across the synchronization transition",
		RunE:  scanCoupling,
	}
	addParamFlags(scanCmd)
	scanCmd.Flags().Float64Var(&maxK, "max-k", 4.0, "sweep upper bound for coupling")
	scanCmd.Flags().IntVar(&points, "points", 20, "coupling values to test")
	scanCmd.Flags().IntVar(&burn, "burn", 500, "transient steps discarded per point")
	scanCmd.Flags().IntVar(&measure, "measure", 500, "steps averaged per point")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the resonance trace of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(args[0], "")
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the resonance trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export the resonance trace to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (stdout when empty)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-12s N=%d K=%.2f dt=%.3f freq=[%.1f, %.1f]\n",
					name, p.Count, p.Coupling, p.Dt, p.FreqMin, p.FreqMax)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, scanCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&count, "count", sim.DefaultCount, "number of oscillators")
	cmd.Flags().Float64Var(&coupling, "k", sim.DefaultCoupling, "coupling strength")
	cmd.Flags().Float64Var(&dt, "dt", sim.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&freqMin, "freq-min", sim.DefaultFreqMin, "natural frequency lower bound")
	cmd.Flags().Float64Var(&freqMax, "freq-max", sim.DefaultFreqMax, "natural frequency upper bound")
	cmd.Flags().Float64Var(&speed, "speed", sim.DefaultSpeed, "animation speed multiplier")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveParams layers preset, config file, and flags: preset values load
// first, a config file overrides them, and explicitly set CLI flags win.
func resolveParams(cmd *cobra.Command) (sim.Parameters, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return sim.Parameters{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return sim.Parameters{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if !cmd.Flags().Changed("count") {
		count = cfg.Count
	}
	if !cmd.Flags().Changed("k") {
		coupling = cfg.Coupling
	}
	if !cmd.Flags().Changed("dt") {
		dt = cfg.Dt
	}
	if !cmd.Flags().Changed("freq-min") {
		freqMin = cfg.FreqMin
	}
	if !cmd.Flags().Changed("freq-max") {
		freqMax = cfg.FreqMax
	}
	if !cmd.Flags().Changed("speed") {
		speed = cfg.Speed
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}
	if f := cmd.Flags().Lookup("steps"); f != nil && !f.Changed {
		steps = cfg.Steps
	}
	if f := cmd.Flags().Lookup("runs"); f != nil && !f.Changed {
		runs = cfg.Runs
	}

	p := sim.Parameters{
		Count:    count,
		Coupling: coupling,
		Dt:       dt,
		FreqMin:  freqMin,
		FreqMax:  freqMax,
		Speed:    speed,
		Seed:     seed,
	}
	return p, p.Validate()
}

func runSimulation(cmd *cobra.Command, args []string) error {
	params, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	if steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	if runs > 1 {
		return runEnsemble(params)
	}

	if params.Seed == 0 {
		params.Seed = time.Now().UnixNano()
	}

	session, err := sim.NewSession(params)
	if err != nil {
		return err
	}

	observers := []metrics.Metric{
		metrics.NewMeanResonance(),
		metrics.NewLockTime(0.95),
		metrics.NewPhaseSpread(),
	}

	fmt.Printf("running %d oscillators for %d steps (K=%.2f, dt=%.3f)...\n",
		params.Count, steps, params.Coupling, params.Dt)
	start := time.Now()

	for i := 0; i < steps; i++ {
		if err := session.Tick(); err != nil {
			return err
		}
		phases := session.Phases()
		for _, m := range observers {
			m.Observe(phases, session.Resonance(), session.Time())
		}
	}

	elapsed := time.Since(start)

	results := make(map[string]float64, len(observers))
	for _, m := range observers {
		results[m.Name()] = m.Value()
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(params, session.History(), results)
	if err != nil {
		return err
	}

	if svgOut != "" {
		svg := export.PhaseSVG(session.Phases(), 400, "#00d7af")
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("final resonance: %.4f\n", session.Resonance())
	fmt.Println("\nmetrics:")
	for name, val := range results {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runEnsemble(params sim.Parameters) error {
	seedBase := params.Seed
	if seedBase == 0 {
		seedBase = time.Now().UnixNano()
	}

	fmt.Printf("running ensemble of %d realizations (%d steps each)...\n", runs, steps)
	start := time.Now()

	trace, err := sim.NewEnsemble(params, runs, seedBase).Run(context.Background(), steps)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("ensemble-mean final resonance: %.4f\n\n", trace[len(trace)-1])

	graph := asciigraph.Plot(trace,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("ensemble-mean resonance (%d runs)", runs)),
	)
	fmt.Println(graph)
	return nil
}

func scanCoupling(cmd *cobra.Command, args []string) error {
	params, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	if params.Seed == 0 {
		params.Seed = time.Now().UnixNano()
	}

	fmt.Printf("sweeping K over [0, %.2f] with %d oscillators...\n\n", maxK, params.Count)

	pointsOut, err := analysis.CouplingSweep(context.Background(), analysis.SweepConfig{
		Params:  params,
		MaxK:    maxK,
		Points:  points,
		Burn:    burn,
		Measure: measure,
	})
	if err != nil {
		return err
	}

	fmt.Println(analysis.RenderSweep(pointsOut, 76, 12))
	fmt.Println()

	if kc, ok := analysis.CriticalCoupling(pointsOut, 0.5); ok {
		fmt.Printf("estimated critical coupling: K ≈ %.3f\n\n", kc)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "K\tRESONANCE")
	for _, p := range pointsOut {
		fmt.Fprintf(w, "%.3f\t%.4f\n", p.Coupling, p.Resonance)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	list, err := st.List()
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tN\tK\tDT\tSTEPS\tMEAN_R")

	for _, run := range list {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.3f\t%d\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Count,
			run.Coupling,
			run.Dt,
			run.Steps,
			run.Metrics["mean_resonance"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("oscillators: %d, K=%.2f, dt=%.3f\n", meta.Count, meta.Coupling, meta.Dt)
	fmt.Printf("samples: %d\n\n", len(samples))

	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = s.R
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("resonance index vs time"),
	)
	fmt.Println(graph)

	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	samples, err := storage.New(dataDir).LoadSeries(args[0])
	if err != nil {
		return err
	}

	svg := export.TraceSVG(samples, 800, 400, "#00d7af")
	if svg == "" {
		return fmt.Errorf("no data to export")
	}

	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	samples, err := storage.New(dataDir).LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "resonance"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.Time, 'f', 6, 64),
			strconv.FormatFloat(s.R, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
