package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/dispatchbench/internal/config"
	"github.com/san-kum/dispatchbench/internal/experiment"
	"github.com/san-kum/dispatchbench/internal/live"
	"github.com/san-kum/dispatchbench/internal/report"
	"github.com/san-kum/dispatchbench/internal/storage"
)

var (
	dataDir     string
	iterations  int
	minTime     float64
	repetitions int
	filter      string
	unit        string
	configFile  string
	preset      string
	save        bool
	jsonOut     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dispatchbench",
		Short: "compile-time vs runtime dispatch benchmark lab",
		RunE:  runBenchmarks,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	runCmd := &cobra.Command{
		Use:   "run [benchmark]",
		Short: "run benchmarks",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBenchmarks,
	}
	addBenchFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&save, "save", false, "persist results to the data directory")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "print results as json")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list registered benchmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range experiment.NewRegistry().List() {
				fmt.Println(name)
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run both dispatch strategies and report the speedup",
		RunE:  compareBenchmarks,
	}
	addBenchFlags(compareCmd)
	compareCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run benchmarks with a live progress view",
		RunE:  runLive,
	}
	addBenchFlags(liveCmd)
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listRunsCmd := &cobra.Command{
		Use:   "list-runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's repetition times",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, compareCmd, liveCmd, listRunsCmd, plotCmd, exportJSONCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBenchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&iterations, "iterations", 0, "exact iteration count (0 uses config/preset)")
	cmd.Flags().Float64Var(&minTime, "min-time", 0, "minimum wall time in seconds")
	cmd.Flags().IntVar(&repetitions, "repetitions", 0, "repetitions per benchmark")
	cmd.Flags().StringVar(&filter, "filter", "", "benchmark name filter (regexp)")
	cmd.Flags().StringVar(&unit, "unit", "", "display unit: ms, us, s")
}

// buildConfig layers preset, config file, and changed CLI flags over the
// defaults, in that order.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = iterations
	}
	if cmd.Flags().Changed("min-time") {
		cfg.MinTime = minTime
	}
	if cmd.Flags().Changed("repetitions") {
		cfg.Repetitions = repetitions
	}
	if cmd.Flags().Changed("filter") {
		cfg.Filter = filter
	}
	if cmd.Flags().Changed("unit") {
		cfg.Unit = unit
	}
	if len(args) > 0 {
		cfg.Filter = "^" + args[0] + "$"
	}

	return cfg, nil
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	benchCfg, err := cfg.BenchConfig()
	if err != nil {
		return err
	}

	runner := experiment.NewRegistry().BuildRunner(benchCfg)

	fmt.Println(report.Banner())
	start := time.Now()

	results, err := runner.Run(context.Background(), cfg.Filter)
	if err != nil {
		return err
	}

	if jsonOut {
		meta := &storage.RunMetadata{Timestamp: time.Now()}
		for _, r := range results {
			meta.Results = append(meta.Results, storage.ToRecord(r))
		}
		if err := storage.ExportJSON(os.Stdout, meta); err != nil {
			return err
		}
	} else {
		if err := report.Table(os.Stdout, results); err != nil {
			return err
		}
		fmt.Printf("\ncompleted in %v\n", time.Since(start).Round(time.Millisecond))
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(results)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return nil
}

func compareBenchmarks(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg.Filter = ""
	cfg.Repetitions = 1
	benchCfg, err := cfg.BenchConfig()
	if err != nil {
		return err
	}

	runner := experiment.NewRegistry().BuildRunner(benchCfg)

	fmt.Println(report.Banner())
	results, err := runner.Run(context.Background(), "")
	if err != nil {
		return err
	}
	if len(results) != 2 {
		return fmt.Errorf("expected 2 results, got %d", len(results))
	}

	fmt.Println()
	report.Comparison(os.Stdout, results[0], results[1])
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	benchCfg, err := cfg.BenchConfig()
	if err != nil {
		return err
	}

	runner := experiment.NewRegistry().BuildRunner(benchCfg)

	results, err := live.Run(context.Background(), runner, cfg.Filter)
	if err != nil && err != context.Canceled {
		return err
	}
	if len(results) > 0 {
		return report.Table(os.Stdout, results)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}
	for _, run := range runs {
		fmt.Printf("%s  %s  %d results\n", run.ID, run.Timestamp.Format(time.RFC3339), len(run.Results))
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	for _, name := range experiment.NewRegistry().List() {
		series, ok := samples[name]
		if !ok {
			continue
		}
		if chart := report.Chart(name, series); chart != "" {
			fmt.Println(chart)
			fmt.Println()
		} else {
			fmt.Printf("%s: %d sample(s), need at least 2 to plot\n", name, len(series))
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, meta)
}
