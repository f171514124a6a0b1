package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/growplan/pkg/layout"
	"github.com/matzehuels/growplan/pkg/observability"
	"github.com/matzehuels/growplan/pkg/render"
)

// Runner executes the layout → render pipeline.
//
// The Runner is stateless except for its logger - it doesn't store pipeline
// results, and nothing is cached between executions. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plan is the computed floor plan.
	Plan layout.Plan

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Beds       int
	Rects      int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Layout validates opts and runs only the layout stage, skipping rendering.
// Callers that consume the plan directly (the HTTP layout endpoint) use this
// to avoid producing artifacts nobody reads.
func (r *Runner) Layout(ctx context.Context, opts Options) (layout.Plan, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Plan{}, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	p, _ := r.layoutStage(ctx, opts, logger)
	return p, ctx.Err()
}

// layoutStage computes the plan with hooks and logging around it.
func (r *Runner) layoutStage(ctx context.Context, opts Options, logger *log.Logger) (layout.Plan, time.Duration) {
	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.Params)
	p := layout.Build(opts.Params)
	elapsed := time.Since(start)
	observability.Pipeline().OnLayoutComplete(ctx, p.Metrics.Beds, elapsed)

	logger.Info("computed layout",
		"beds", p.Metrics.Beds,
		"rects", len(p.Rects),
		"duration", elapsed)
	return p, elapsed
}

// Execute runs the complete layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	result := &Result{
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}

	// Stage 1: Layout
	result.Plan, result.Stats.LayoutTime = r.layoutStage(ctx, opts, logger)
	result.Stats.Beds = result.Plan.Metrics.Beds
	result.Stats.Rects = len(result.Plan.Rects)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	for _, format := range opts.Formats {
		data, err := r.RenderFormat(result.Plan, format, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[format] = data
	}
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderFormat renders a single format for an already computed plan.
func (r *Runner) RenderFormat(p layout.Plan, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		svgOpts := make([]render.SVGOption, 0, 2)
		if opts.Labels {
			svgOpts = append(svgOpts, render.WithSVGLabels())
		}
		if opts.Scale > 0 {
			svgOpts = append(svgOpts, render.WithSVGScale(opts.Scale))
		}
		return render.RenderSVG(p, svgOpts...), nil
	case FormatPNG:
		return render.RenderPNG(p)
	case FormatCSV:
		return render.RenderCSV(p)
	case FormatXLSX:
		return render.RenderXLSX(p)
	case FormatJSON:
		return render.RenderJSON(p)
	default:
		return nil, ValidateFormat(format)
	}
}
