// Package main provides the hrdash CLI for working with the HR dataset offline.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"hr-dashboard/internal/config"
	"hr-dashboard/internal/database"
	"hr-dashboard/internal/features/chart"
	"hr-dashboard/internal/features/dataset"
	"hr-dashboard/internal/features/render"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	datasetPath string
	chartType   string
	xColumn     string
	yColumn     string
	outputPath  string
	pretty      bool
	verbose     bool
	width       int
	height      int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:          "hrdash",
		Short:        "Build and render HR dashboard charts from the command line",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&o.datasetPath, "dataset", "d", "Hr_cleaned_dataset.csv", "Dataset file (CSV or XLSX)")
	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Log loader activity")

	axesCmd := &cobra.Command{
		Use:   "axes [chart-type]",
		Short: "List the X and Y columns allowed for each chart type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAxes(cmd.OutOrStdout(), args)
		},
	}

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Print the chart model as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := o.build(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), model, o.pretty)
		},
	}
	buildCmd.Flags().BoolVar(&o.pretty, "pretty", false, "Pretty-print JSON output")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart as a standalone HTML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := o.build(cmd.Context())
			if err != nil {
				return err
			}
			markup, err := (&render.Renderer{Width: o.width, Height: o.height}).Render(model)
			if err != nil {
				return err
			}
			if o.outputPath == "" {
				_, err = cmd.OutOrStdout().Write(markup)
				return err
			}
			if err := os.WriteFile(o.outputPath, markup, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", o.outputPath, model.Title)
			return nil
		},
	}
	renderCmd.Flags().StringVarP(&o.outputPath, "output", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().IntVar(&o.width, "width", 700, "Chart width in pixels")
	renderCmd.Flags().IntVar(&o.height, "height", 400, "Chart height in pixels")

	for _, c := range []*cobra.Command{buildCmd, renderCmd} {
		c.Flags().StringVarP(&o.chartType, "type", "t", string(chart.ChartTypeBar), "Chart type: Bar, Pie, Line, Scatter, Area")
		c.Flags().StringVarP(&o.xColumn, "x", "x", "", "X column (default: first allowed)")
		c.Flags().StringVarP(&o.yColumn, "y", "y", "", "Y column (default: first allowed)")
	}

	rootCmd.AddCommand(axesCmd, buildCmd, renderCmd)
	return rootCmd
}

func runAxes(w io.Writer, args []string) error {
	types := chart.ChartTypes
	if len(args) == 1 {
		t, err := chart.ParseChartType(args[0])
		if err != nil {
			return err
		}
		types = []chart.ChartType{t}
	}

	for _, t := range types {
		opts, err := chart.AllowedAxes(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-8s x: %s\n", t, strings.Join(opts.X, ", "))
		fmt.Fprintf(w, "%-8s y: %s\n", "", strings.Join(opts.Y, ", "))
	}
	return nil
}

// build loads the dataset and builds the requested chart. Empty axes take the
// first allowed option; explicit axes must be in the option set.
func (o *options) build(ctx context.Context) (*chart.ChartModel, error) {
	t, err := chart.ParseChartType(o.chartType)
	if err != nil {
		return nil, err
	}

	req := chart.ChartRequest{ChartType: t, XColumn: o.xColumn, YColumn: o.yColumn}
	defaults := chart.Normalize(chart.ChartRequest{ChartType: t})
	if req.XColumn == "" {
		req.XColumn = defaults.XColumn
	}
	if req.YColumn == "" {
		req.YColumn = defaults.YColumn
	}
	if req, err = chart.Validate(req); err != nil {
		return nil, err
	}

	log := zap.NewNop()
	if o.verbose {
		if log, err = zap.NewDevelopment(); err != nil {
			return nil, err
		}
	}

	loader := dataset.NewLoader(&database.MongodbDB{}, log)
	svc := dataset.NewDatasetService(loader, &config.Config{
		DatasetSource: config.DatasetSourceFile,
		DatasetPath:   o.datasetPath,
	})
	if ctx == nil {
		ctx = context.Background()
	}
	ds, err := svc.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	return chart.Build(ds, req.ChartType, req.XColumn, req.YColumn)
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
