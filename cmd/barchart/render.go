package main

import (
	"bytes"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tinywasm/barchart"
	"github.com/tinywasm/barchart/env"
	"github.com/tinywasm/barchart/surface"
	"github.com/tinywasm/barchart/surface/pdf"
	"github.com/tinywasm/barchart/surface/raster"
)

// renderOptions holds options for the render command.
type renderOptions struct {
	dataPath string
	outPath  string
	format   string
	width    float64
	height   float64
	seed     uint64
	logLevel string
}

const container = "chart"

func (a *App) newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a data file as a bar chart",
		Long: `Render a YAML or JSON list of {label, value} items as a bar chart.

Examples:
  # PNG, format taken from the output extension
  barchart render -d sales.yaml -o sales.png

  # PDF page of 600 x 300 points with reproducible bar colors
  barchart render -d sales.json -o sales.pdf -W 600 -H 300 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dataPath, "data", "d", "", "Path to the data file (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "chart.png", "Output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: png or pdf (default from --out extension)")
	cmd.Flags().Float64VarP(&opts.width, "width", "W", 600, "Chart width in pixels")
	cmd.Flags().Float64VarP(&opts.height, "height", "H", 300, "Chart height in pixels")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for bar colors (0 draws random colors)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}

func (a *App) render(opts *renderOptions) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
	}
	a.log.SetLevel(level)

	if opts.dataPath == "" {
		return fmt.Errorf("data file path is required (-d flag)")
	}
	format, err := outputFormat(opts.format, opts.outPath)
	if err != nil {
		return err
	}

	raw, err := env.ReadResource(opts.dataPath)
	if err != nil {
		return fmt.Errorf("reading data: %w", err)
	}
	items, err := barchart.DecodeItems(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("reading data: %w", err)
	}
	a.log.Debugf("Loaded %d items from %s", len(items), opts.dataPath)

	var colors barchart.ColorSource
	if opts.seed != 0 {
		colors = barchart.SeededColors(opts.seed)
	}

	var (
		host   surface.Host
		output func(*bytes.Buffer) error
	)
	switch format {
	case "png":
		h := raster.NewHost(container)
		h.Background = color.White
		h.Logger = a.log.Warn
		host = h
		output = func(buf *bytes.Buffer) error { return h.EncodePNG(container, buf) }
	case "pdf":
		h := pdf.NewHost(container)
		h.Logger = a.log.Warn
		host = h
		output = func(buf *bytes.Buffer) error { return h.Output(container, buf) }
	}

	options := []any{host, barchart.LoggerFunc(a.log.Debug)}
	if colors != nil {
		options = append(options, colors)
	}
	if _, err := barchart.New(container, opts.width, opts.height, items, options...); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}

	var buf bytes.Buffer
	if err := output(&buf); err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	if err := env.FileWriter(opts.outPath, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", opts.outPath, err)
	}

	a.log.Infof("Wrote %s (%d bytes)", opts.outPath, buf.Len())
	return nil
}

func outputFormat(flag, outPath string) (string, error) {
	format := strings.ToLower(flag)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(outPath)), ".")
	}
	switch format {
	case "png", "pdf":
		return format, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want png or pdf)", format)
}
