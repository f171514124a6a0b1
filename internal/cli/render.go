package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/growplan/pkg/layout"
	"github.com/matzehuels/growplan/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command beyond the
// shared parameter surface.
type renderOpts struct {
	output string // output file path (single format) or base path (multiple)
	labels bool   // draw dimension labels and bed numbers in the SVG
	scale  float64
}

// newRenderCmd creates the render command for exporting floor plans.
// It supports multiple output formats (SVG, PNG, CSV, XLSX, JSON) in one run.
//
// Default settings:
//   - format: svg
//   - labels: true (bed numbers and axis captions in the SVG)
//   - output: derived from the plan file name, or "layout" without one
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{labels: true}

	cmd := &cobra.Command{
		Use:   "render [plan.toml]",
		Short: "Export a floor plan as SVG, PNG, CSV, XLSX, or JSON",
		Args:  cobra.MaximumNArgs(1),
	}
	planFlags := addPlanFlags(cmd)

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, csv, xlsx, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw dimension labels and bed numbers (svg)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "SVG pixels per meter (0 = default)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		params, err := planFlags.resolve(cmd, args)
		if err != nil {
			return err
		}
		formats := parseFormats(formatsStr)
		if err := pipeline.ValidateFormats(formats); err != nil {
			return err
		}
		input := ""
		if len(args) > 0 {
			input = args[0]
		}
		return runRender(cmd.Context(), params, formats, input, &opts)
	}

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input, falling back to
// "layout" when there is no input file either. If output has a format
// extension (.svg, .csv, etc.), it strips that extension. This is used when
// generating multiple files (e.g., plan.svg, plan.csv).
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return "layout"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender computes the plan once and writes every requested format.
// With a single format and an explicit --output, the file is written exactly
// there; otherwise file names are base.format.
func runRender(ctx context.Context, params layout.Params, formats []string, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Params:  params,
		Formats: formats,
		Labels:  opts.labels,
		Scale:   opts.scale,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	printSuccess("Computed layout: %d beds, %d rectangles",
		result.Stats.Beds, result.Stats.Rects)

	base := basePath(opts.output, input)
	for _, format := range formats {
		path := base + "." + format
		if len(formats) == 1 && opts.output != "" {
			path = opts.output
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Debugf("Generated %s: %d bytes", path, len(result.Artifacts[format]))
		printFile(path)
	}

	prog.done(fmt.Sprintf("Rendered %d file(s)", len(formats)))
	return nil
}
