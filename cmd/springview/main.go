package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/springview/internal/config"
	"github.com/san-kum/springview/internal/anim"
	"github.com/san-kum/springview/internal/dynamo"
	"github.com/san-kum/springview/internal/export"
	"github.com/san-kum/springview/internal/metrics"
	"github.com/san-kum/springview/internal/sim"
	"github.com/san-kum/springview/internal/storage"
	"github.com/san-kum/springview/internal/tui"
	"github.com/san-kum/springview/internal/viz"
	"github.com/san-kum/springview/internal/widget"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	verbose bool

	springiness  float64
	dampingRatio float64
	start        float64
	target       float64
	velocity     float64
	stepMs       int64
	maxMs        int64
	configFile   string
	preset       string
	noSave       bool

	outFile string
	theme   string
	seed    int64
	phase   bool
	atMs    int64
	size    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "springview",
		Short: "spring-damper motion lab",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: runDemo,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".springview", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addDemoFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run [name]",
		Short: "simulate one spring and save the trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot position and velocity of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().BoolVar(&phase, "phase", false, "plot velocity against position")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run trace as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run trace as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	chartCmd := &cobra.Command{
		Use:   "chart [value] [value] ...",
		Short: "render a pie chart snapshot mid-animation as SVG",
		Args:  cobra.MinimumNArgs(1),
		RunE:  chartSnapshot,
	}
	chartCmd.Flags().Int64Var(&atMs, "at", 0, "snapshot time in ms (0 renders the settled chart)")
	chartCmd.Flags().IntVar(&size, "size", 240, "pie diameter")
	chartCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list spring presets",
		RunE:  listPresets,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [step_ms] [step_ms] ...",
		Short: "compare frame steps against the analytic spring",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareSteps,
	}
	addScenarioFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [ratio] [ratio] ...",
		Short: "run one scenario across damping ratios",
		Args:  cobra.MinimumNArgs(1),
		RunE:  sweepRatios,
	}
	addScenarioFlags(sweepCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark value set updates",
		RunE:  benchSets,
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "interactive chart and tab chooser",
		RunE:  runDemo,
	}
	addDemoFlags(demoCmd)

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd,
		exportSVGCmd, chartCmd, presetsCmd, compareCmd, sweepCmd, benchCmd, demoCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().Float64VarP(&springiness, "springiness", "k", def.Springiness, "spring constant")
	cmd.Flags().Float64VarP(&dampingRatio, "ratio", "z", def.DampingRatio, "damping ratio")
	cmd.Flags().Float64Var(&start, "start", def.Start, "initial position")
	cmd.Flags().Float64Var(&target, "target", def.Target, "target position")
	cmd.Flags().Float64Var(&velocity, "velocity", def.Velocity, "initial velocity")
	cmd.Flags().Int64Var(&stepMs, "step", def.StepMs, "frame step in ms")
	cmd.Flags().Int64Var(&maxMs, "max", def.MaxMs, "maximum run length in ms")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addDemoFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&theme, "theme", tui.ThemeHolo.Name, fmt.Sprintf("color theme %v", tui.ThemeNames()))
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed for demo data")
}

// resolveConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("springiness") {
		cfg.Springiness = springiness
	}
	if flags.Changed("ratio") {
		cfg.DampingRatio = dampingRatio
	}
	if flags.Changed("start") {
		cfg.Start = start
	}
	if flags.Changed("target") {
		cfg.Target = target
	}
	if flags.Changed("velocity") {
		cfg.Velocity = velocity
	}
	if flags.Changed("step") {
		cfg.StepMs = stepMs
	}
	if flags.Changed("max") {
		cfg.MaxMs = maxMs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debug("scenario", "k", cfg.Springiness, "ratio", cfg.DampingRatio, "step_ms", cfg.StepMs)
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	name := cfg.Name
	if len(args) > 0 {
		name = args[0]
	}

	sc := cfg.Scenario()
	s := sim.New()
	for _, m := range metrics.Defaults(sc) {
		s.AddMetric(m)
	}

	result, err := s.Run(cmd.Context(), sc)
	if err != nil {
		return err
	}

	fmt.Printf("%s: k=%.1f ratio=%.2f damping=%.3f\n", name, sc.Springiness, sc.DampingRatio,
		sc.DampingRatio*2*math.Sqrt(sc.Springiness))
	if result.Rested() {
		fmt.Printf("at rest after %d steps (%dms)\n", result.Steps, result.RestAt)
	} else {
		fmt.Printf("still moving after %d steps (%dms)\n", result.Steps, sc.MaxMs)
	}
	printMetrics(result.Metrics)

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(name, sc, result)
	if err != nil {
		return err
	}
	fmt.Printf("saved: %s\n", runID)
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%.4f\n", name, m[name])
	}
	w.Flush()
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
	fmt.Fprintln(w, "ID\tNAME\tTIME\tK\tRATIO\tSTEP\tREST")

	for _, run := range runs {
		rest := "-"
		if run.RestAt >= 0 {
			rest = fmt.Sprintf("%dms", run.RestAt)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.2f\t%dms\t%s\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Springiness,
			run.DampingRatio,
			run.StepMs,
			rest,
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
	samples, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("run %s has no samples", runID)
	}

	pos := make([]float64, len(samples))
	vel := make([]float64, len(samples))
	for i, s := range samples {
		pos[i] = s.Position
		vel[i] = s.Velocity
	}

	fmt.Printf("%s  k=%.1f ratio=%.2f step=%dms\n\n", meta.Name, meta.Springiness, meta.DampingRatio, meta.StepMs)
	if phase {
		fmt.Print(viz.Phase(samples, 60, 15).String())
		fmt.Println("velocity against position")
		return nil
	}
	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{pos, "position"},
		{vel, "velocity"},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func openOut() (*os.File, func(), error) {
	if outFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	samples, err := storage.New(dataDir).LoadTrace(args[0])
	if err != nil {
		return err
	}

	if outFile != "" {
		return storage.ExportCSV(outFile, &sim.Result{Samples: samples})
	}
	return storage.WriteTrace(os.Stdout, samples)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	sc := sim.Scenario{
		Springiness:  meta.Springiness,
		DampingRatio: meta.DampingRatio,
		Start:        meta.Start,
		Target:       meta.Target,
		StepMs:       meta.StepMs,
		MaxMs:        meta.MaxMs,
	}
	result := &sim.Result{Samples: samples, RestAt: meta.RestAt, Steps: meta.Steps, Metrics: meta.Metrics}

	if outFile != "" {
		return storage.ExportJSON(outFile, meta.Name, sc, result)
	}
	return storage.EncodeJSON(os.Stdout, meta.Name, sc, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	samples, err := storage.New(dataDir).LoadTrace(args[0])
	if err != nil {
		return err
	}
	svg := export.TraceSVG(samples, 800, 300, string(tui.ThemeHolo.Primary))
	if svg == "" {
		return fmt.Errorf("run %s has too few samples", args[0])
	}

	out, done, err := openOut()
	if err != nil {
		return err
	}
	defer done()
	_, err = fmt.Fprintln(out, svg)
	return err
}

func chartSnapshot(cmd *cobra.Command, args []string) error {
	values := make([]int, len(args))
	labels := make([]string, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values[i] = v
		labels[i] = strconv.Itoa(i + 1)
	}

	chart := widget.NewChart("")
	clock := anim.NewManualClock(0)
	f, err := chart.SetData(values, labels, clock.NowMillis())
	if err != nil {
		return err
	}

	limit := 0
	if atMs > 0 {
		limit = int(atMs / int64(widget.ChartFrameDelay/time.Millisecond))
	}
	frames := anim.RunFrames(chart, clock, f, limit)
	log.Debug("chart snapshot", "frames", frames, "t", clock.NowMillis())

	out, done, err := openOut()
	if err != nil {
		return err
	}
	defer done()
	_, err = fmt.Fprintln(out, export.ChartSVG(chart, size, 0))
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tK\tRATIO\tSTART\tTARGET\tSTEP\tRETARGETS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.0f\t%.2f\t%.0f\t%.0f\t%dms\t%d\n",
			name, p.Springiness, p.DampingRatio, p.Start, p.Target, p.StepMs, len(p.Retargets))
	}
	return w.Flush()
}

func compareSteps(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("comparing frame steps (k=%.1f, ratio=%.2f)\n\n", cfg.Springiness, cfg.DampingRatio)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tSTEPS\tREST\tOVERSHOOT\tDEVIATION\tTIME")

	for _, arg := range args {
		step, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid step %q: %w", arg, err)
		}
		sc := cfg.Scenario()
		sc.StepMs = step

		s := sim.New()
		for _, m := range metrics.Defaults(sc) {
			s.AddMetric(m)
		}

		began := time.Now()
		result, err := s.Run(cmd.Context(), sc)
		elapsed := time.Since(began)
		if err != nil {
			fmt.Fprintf(w, "%dms\terror: %v\n", step, err)
			continue
		}

		rest := "-"
		if result.Rested() {
			rest = fmt.Sprintf("%dms", result.RestAt)
		}
		fmt.Fprintf(w, "%dms\t%d\t%s\t%.2f%%\t%.4f\t%s\n",
			step, result.Steps, rest,
			result.Metrics["overshoot"]*100,
			result.Metrics["reference_deviation"],
			elapsed.Round(time.Microsecond))
	}
	return w.Flush()
}

func sweepRatios(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ratios := make([]float64, len(args))
	for i, arg := range args {
		r, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid ratio %q: %w", arg, err)
		}
		ratios[i] = r
	}

	sc := cfg.Scenario()
	sw := sim.NewSweep(sc, func() []sim.Metric { return metrics.Defaults(sc) })
	results, err := sw.Run(cmd.Context(), ratios)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RATIO\tSETTLE\tOVERSHOOT\tDEVIATION")
	for i, r := range results {
		settle := "-"
		if v := r.Metrics["settle_ms"]; v >= 0 {
			settle = fmt.Sprintf("%.0fms", v)
		}
		fmt.Fprintf(w, "%.2f\t%s\t%.2f%%\t%.4f\n", ratios[i], settle,
			r.Metrics["overshoot"]*100, r.Metrics["reference_deviation"])
	}
	return w.Flush()
}

func benchSets(cmd *cobra.Command, args []string) error {
	const frames = 10000

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUES\tFRAMES\tTIME\tFRAMES/SEC")

	for _, n := range []int{1, 12, 100, 1000} {
		set, err := dynamo.NewSet(80, 0.8)
		if err != nil {
			return err
		}
		values := make([]float64, n)
		for i := range values {
			values[i] = float64(i + 1)
		}
		set.Init(values, 0)

		began := time.Now()
		for f := 1; f <= frames; f++ {
			if f%100 == 0 {
				for i := range values {
					values[i] = float64((i + f) % 97)
				}
				set.Init(values, int64(f*16))
			}
			set.UpdateAll(int64(f * 16))
		}
		elapsed := time.Since(began)

		fmt.Fprintf(w, "%d\t%d\t%s\t%.0f\n", n, frames, elapsed.Round(time.Microsecond),
			float64(frames)/elapsed.Seconds())
	}
	return w.Flush()
}

func runDemo(cmd *cobra.Command, args []string) error {
	if verbose {
		f, err := os.OpenFile("springview.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	}
	return tui.Run(theme, seed)
}
