package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/san-kum/normdist/internal/config"
	"github.com/san-kum/normdist/internal/export"
	"github.com/san-kum/normdist/internal/metrics"
	"github.com/san-kum/normdist/internal/server"
	"github.com/san-kum/normdist/internal/view"
	"github.com/san-kum/normdist/internal/viz"
	"github.com/spf13/cobra"
)

var (
	mean       float64
	sigma      string
	samples    int
	configFile string
	preset     string
	theme      string
	outFile    string
	exportDir  string
	readouts   bool
	httpAddr   string
	logLevel   string
)

var logger log.Logger

// main registers the commands and runs the terminal UI when no subcommand
// is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "normdist",
		Short: "interactive normal distribution curve",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = newLogger(logLevel)
			return nil
		},
		RunE: runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&mean, "mean", config.DefaultMean, "mean μ (clamped to [-2, 2])")
	pf.StringVar(&sigma, "sigma", "", "standard deviation σ (clamped to [0.5, 2.5], invalid input falls back to 0.5)")
	pf.IntVar(&samples, "samples", config.DefaultSamples, "number of sampling intervals")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset parameters")
	pf.StringVar(&theme, "theme", "", "colour theme (light, dark)")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal view",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&exportDir, "export-dir", ".", "directory for SVG snapshots")
	rootCmd.Flags().AddFlagSet(tuiCmd.Flags())

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render the curve as SVG",
		RunE:  renderSVG,
	}
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	svgCmd.Flags().BoolVar(&readouts, "readouts", false, "print μ and σ above the plot")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the density in the terminal",
		RunE:  plotCurve,
	}

	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "export samples as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newView(cmd)
			if err != nil {
				return err
			}
			return export.WriteCSV(os.Stdout, v.Frame().Samples)
		},
	}

	jsonCmd := &cobra.Command{
		Use:   "json",
		Short: "export the render frame as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newView(cmd)
			if err != nil {
				return err
			}
			return export.WriteJSON(os.Stdout, v.Frame())
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "summarise the sampled curve",
		RunE:  curveStats,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the curve over HTTP",
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&httpAddr, "addr", ":8080", "HTTP listen address")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMEAN\tSIGMA")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.1f\t%.1f\n", name, p.Mean, p.StdDev)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(tuiCmd, svgCmd, plotCmd, csvCmd, jsonCmd, statsCmd, serveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(lvl string) log.Logger {
	var l log.Logger
	l = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	l = level.NewFilter(l, level.Allow(level.ParseDefault(lvl, level.InfoValue())))
	l = log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return l
}

// loadConfig applies preset, then config file, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p.Apply(cfg)
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newView builds a view and applies --mean/--sigma on top of the defaults.
func newView(cmd *cobra.Command) (*view.View, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	v, err := view.New(cfg)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("mean") {
		if err := v.SetMean(mean); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("sigma") {
		if err := v.SetStdDevInput(sigma); err != nil {
			return nil, err
		}
	}
	p := v.Params()
	level.Debug(logger).Log("msg", "view ready", "mean", p.Mean, "sigma", p.StdDev, "samples", cfg.Samples)
	return v, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	v, err := newView(cmd)
	if err != nil {
		return err
	}
	return viz.Run(v, v.Config().Theme, exportDir)
}

func renderSVG(cmd *cobra.Command, args []string) error {
	v, err := newView(cmd)
	if err != nil {
		return err
	}
	opts := export.Options{
		Theme:      export.GetTheme(v.Config().Theme),
		Readouts:   readouts,
		Standalone: true,
	}

	if outFile == "" {
		return export.WriteSVG(os.Stdout, v.Frame(), opts)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer f.Close()
	if err := export.WriteSVG(f, v.Frame(), opts); err != nil {
		return err
	}
	level.Info(logger).Log("msg", "wrote svg", "path", outFile, "mean", v.Frame().MeanReadout, "sigma", v.Frame().StdDevReadout)
	return nil
}

func plotCurve(cmd *cobra.Command, args []string) error {
	v, err := newView(cmd)
	if err != nil {
		return err
	}
	f := v.Frame()

	ys := make([]float64, len(f.Samples))
	for i, s := range f.Samples {
		ys[i] = s.Y
	}

	graph := asciigraph.Plot(ys,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.LowerBound(0),
		asciigraph.Caption(fmt.Sprintf("density  μ = %s, σ = %s  x ∈ [%g, %g]",
			f.MeanReadout, f.StdDevReadout, v.Config().Domain.Min, v.Config().Domain.Max)),
	)
	fmt.Println(graph)
	return nil
}

func curveStats(cmd *cobra.Command, args []string) error {
	v, err := newView(cmd)
	if err != nil {
		return err
	}
	f := v.Frame()
	vals := metrics.Evaluate(f.Samples, metrics.Defaults(f.Params, v.Config().Domain)...)
	vals["max_density"] = f.MaxDensity

	names := make([]string, 0, len(vals))
	for name := range vals {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("μ = %s, σ = %s, samples = %d\n\n", f.MeanReadout, f.StdDevReadout, len(f.Samples))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6f\n", name, vals[name])
	}
	return w.Flush()
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	httpLogger := log.With(logger, "component", "http")
	handler := server.NewHandler(cfg, httpLogger, prometheus.NewRegistry())

	errs := make(chan error, 2)
	go func() {
		level.Info(httpLogger).Log("transport", "http", "address", httpAddr, "msg", "listening")
		errs <- http.ListenAndServe(httpAddr, handler)
	}()
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	level.Info(logger).Log("terminated", <-errs)
	return nil
}
