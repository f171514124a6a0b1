package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/growplan/pkg/layout"
	"github.com/matzehuels/growplan/pkg/pipeline"
)

// newLayoutCmd creates the layout command. It computes a floor plan from a
// plan file or parameter flags and prints the key metrics; with --output the
// full layout document is also written as JSON.
func newLayoutCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "layout [plan.toml]",
		Short: "Compute a floor plan and print its metrics",
		Args:  cobra.MaximumNArgs(1),
	}
	opts := addPlanFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the layout document as JSON")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		params, err := opts.resolve(cmd, args)
		if err != nil {
			return err
		}
		return runLayout(cmd.Context(), params, output)
	}

	return cmd
}

// runLayout computes the plan, prints a metric summary, and optionally writes
// the JSON layout document.
func runLayout(ctx context.Context, params layout.Params, output string) error {
	logger := loggerFromContext(ctx)

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Params:  params,
		Formats: []string{pipeline.FormatJSON},
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	p := result.Plan

	fmt.Println(StyleTitle.Render(fmt.Sprintf("Layout: %s · %s",
		p.Params.Mode.Display(), p.Params.Orientation.Display())))
	printNewline()
	printMetrics(p.Metrics)

	if p.Metrics.Beds == 0 {
		printNewline()
		printWarning("no beds fit; widen the plot or narrow the beds and aisles")
	}

	if output != "" {
		if err := os.WriteFile(output, result.Artifacts[pipeline.FormatJSON], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printNewline()
		printFile(output)
	}

	printNewline()
	printNextStep("Render the plan", appName+" render --format svg,png")
	return nil
}
