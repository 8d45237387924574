package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-smooth/internal/demo"
)

type options struct {
	configPath string
	csvPath    string
	logLevel   string
	noPlot     bool
	width      int
	height     int
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "smoothdemo",
		Short:         "Compare EMA, RMS and asymmetric smoothing on a step signal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(opts.logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return run(cmd, opts, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (defaults are used when empty)")
	flags.StringVar(&opts.csvPath, "csv", "", "write the result table to this CSV file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.noPlot, "no-plot", false, "skip the terminal chart")
	flags.IntVar(&opts.width, "width", 0, "chart width in columns (overrides config)")
	flags.IntVar(&opts.height, "height", 0, "chart height in rows (overrides config)")

	cmd.AddCommand(newFiltersCommand())

	return cmd
}

func newFiltersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the compared filters and their default coefficients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printFilters(cmd.OutOrStdout())
		},
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

func run(cmd *cobra.Command, opts options, logger *zap.Logger) error {
	cfg := demo.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := demo.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("loaded config", zap.String("path", opts.configPath))
	}

	if opts.width > 0 {
		cfg.Plot.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Plot.Height = opts.height
	}

	engine, err := demo.NewEngine(cfg, logger)
	if err != nil {
		return err
	}

	table, err := engine.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if !opts.noPlot {
		plot := engine.Config().Plot
		chart := demo.Chart{Width: plot.Width, Height: plot.Height}
		if _, err := io.WriteString(out, chart.Render(table)+"\n"); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
	}

	if err := demo.WriteSummary(out, demo.Summarize(table)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if opts.csvPath != "" {
		if err := writeCSV(opts.csvPath, table); err != nil {
			return err
		}
		logger.Info("wrote table", zap.String("path", opts.csvPath), zap.Int("rows", table.Len()))
	}

	return nil
}

func writeCSV(path string, table *demo.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close csv: %w", cerr)
		}
	}()

	return table.WriteCSV(f)
}

func printFilters(w io.Writer) error {
	cfg := demo.DefaultConfig()
	defaults := map[string]string{
		"EMA":        fmt.Sprintf("alpha=%g", cfg.Filters.EMAAlpha),
		"RMS":        fmt.Sprintf("alpha=%g", cfg.Filters.RMSAlpha),
		"Asymmetric": fmt.Sprintf("up=%g down=%g", cfg.Filters.AsymAlphaUp, cfg.Filters.AsymAlphaDown),
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Name\tConfig\tDefault\tDescription\n"); err != nil {
		return err
	}
	for _, spec := range demo.Filters() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", spec.Name, spec.Key, defaults[spec.Name], spec.Description); err != nil {
			return err
		}
	}

	return tw.Flush()
}
