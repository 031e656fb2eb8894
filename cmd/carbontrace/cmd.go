package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"carbontrace/internal/app"
	"carbontrace/internal/config"
	"carbontrace/internal/logger"
	"carbontrace/internal/models"
	"carbontrace/internal/pipeline"
	"carbontrace/internal/trace"
)

var (
	configPath string
	logLevel   string
)

// NewCommand builds the carbontrace command tree. The bare command
// starts the GUI; `trace` digitizes headlessly.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "carbontrace",
		Short:        "carbontrace digitizes data series out of plotted chart images",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			application, err := app.NewApplication(cfg, log)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&configPath, "config", "c", "", "path to config file (default carbontrace.yaml in the working directory)")
	globalFlags.StringVarP(&logLevel, "log-level", "l", "", "log level (debug, info, warn, error); overrides config")

	cmd.AddCommand(
		NewTraceCommand(),
		NewVersionCommand(),
	)

	return cmd
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("%s\n", app.AppVersion)
		},
	}
}

type traceOptions struct {
	imagePath string
	outPath   string

	xMinPixel float64
	xMaxPixel float64
	yMinPixel float64
	yMaxPixel float64

	xMinValue float64
	xMaxValue float64
	yMinValue float64
	yMaxValue float64

	xLog bool
	yLog bool

	red       int
	green     int
	blue      int
	tolerance float64
}

// NewTraceCommand digitizes a chart without the GUI: calibration comes
// from flags, points from the color scan, output goes to a CSV file.
func NewTraceCommand() *cobra.Command {
	opts := &traceOptions{}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Digitize a chart image headlessly using color auto-trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.imagePath, "image", "i", "", "chart image to digitize (png, jpeg, bmp)")
	flags.StringVarP(&opts.outPath, "out", "o", "", "output CSV path")

	flags.Float64Var(&opts.xMinPixel, "x-min-px", 0, "pixel column of the X Min anchor")
	flags.Float64Var(&opts.xMaxPixel, "x-max-px", 0, "pixel column of the X Max anchor")
	flags.Float64Var(&opts.yMinPixel, "y-min-px", 0, "pixel row of the Y Min anchor")
	flags.Float64Var(&opts.yMaxPixel, "y-max-px", 0, "pixel row of the Y Max anchor")

	flags.Float64Var(&opts.xMinValue, "x-min", 0, "real value at the X Min anchor")
	flags.Float64Var(&opts.xMaxValue, "x-max", 0, "real value at the X Max anchor")
	flags.Float64Var(&opts.yMinValue, "y-min", 0, "real value at the Y Min anchor")
	flags.Float64Var(&opts.yMaxValue, "y-max", 0, "real value at the Y Max anchor")

	flags.BoolVar(&opts.xLog, "x-log", false, "treat the X axis as logarithmic")
	flags.BoolVar(&opts.yLog, "y-log", false, "treat the Y axis as logarithmic")

	flags.IntVar(&opts.red, "red", 0, "target color red component (0-255)")
	flags.IntVar(&opts.green, "green", 0, "target color green component (0-255)")
	flags.IntVar(&opts.blue, "blue", 0, "target color blue component (0-255)")
	flags.Float64Var(&opts.tolerance, "tolerance", 10, "color tolerance in percent")

	for _, required := range []string{"image", "out", "x-min-px", "x-max-px", "y-min-px", "y-max-px", "x-min", "x-max", "y-min", "y-max"} {
		_ = cmd.MarkFlagRequired(required)
	}

	return cmd
}

func runTrace(cmd *cobra.Command, opts *traceOptions) error {
	_, log, err := loadConfig()
	if err != nil {
		return err
	}

	coordinator := pipeline.NewCoordinator(log)

	loaded, err := coordinator.LoadImageFromFile(opts.imagePath)
	if err != nil {
		return err
	}
	cmd.Printf("loaded %s (%dx%d)\n", opts.imagePath, loaded.Width, loaded.Height)

	anchors := []struct {
		axis  models.Axis
		id    models.AnchorID
		pixel float64
		value float64
	}{
		{models.AxisX, models.AnchorMin, opts.xMinPixel, opts.xMinValue},
		{models.AxisX, models.AnchorMax, opts.xMaxPixel, opts.xMaxValue},
		{models.AxisY, models.AnchorMin, opts.yMinPixel, opts.yMinValue},
		{models.AxisY, models.AnchorMax, opts.yMaxPixel, opts.yMaxValue},
	}
	for _, anchor := range anchors {
		coordinator.SetAnchorPixel(anchor.axis, anchor.id, anchor.pixel)
		if err := coordinator.SetAnchorValue(anchor.axis, anchor.id, anchor.value); err != nil {
			return err
		}
	}
	if opts.xLog {
		coordinator.SetScale(models.AxisX, models.ScaleLogarithmic)
	}
	if opts.yLog {
		coordinator.SetScale(models.AxisY, models.ScaleLogarithmic)
	}

	count, err := coordinator.ExtractByColor(trace.ColorTarget{R: opts.red, G: opts.green, B: opts.blue}, opts.tolerance)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("no pixels matched the target color within tolerance")
	}
	cmd.Printf("auto-traced %d points\n", count)

	if err := coordinator.ExportToPath(opts.outPath); err != nil {
		return err
	}
	cmd.Printf("exported %s\n", opts.outPath)
	return nil
}

func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	return cfg, logger.NewConsoleLogger(logger.ParseLevel(level)), nil
}
