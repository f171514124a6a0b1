package pipeline

import (
	"context"
	"strings"
	"testing"

	gperrors "github.com/matzehuels/growplan/pkg/errors"
	"github.com/matzehuels/growplan/pkg/layout"
)

func TestValidateFormat(t *testing.T) {
	for f := range ValidFormats {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) error: %v", f, err)
		}
		if _, ok := ContentTypes[f]; !ok {
			t.Errorf("no content type registered for %q", f)
		}
	}
	err := ValidateFormat("pdf")
	if err == nil {
		t.Fatal("ValidateFormat(\"pdf\") expected error")
	}
	if !gperrors.Is(err, gperrors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want %v", gperrors.GetCode(err), gperrors.ErrCodeInvalidFormat)
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{Params: layout.DefaultParams()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want default [svg]", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger not defaulted")
	}

	// Idempotent.
	before := opts.Formats
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second ValidateAndSetDefaults() error: %v", err)
	}
	if &before[0] != &opts.Formats[0] {
		t.Error("second validation modified options")
	}
}

func TestOptionsValidateRejectsBadEnums(t *testing.T) {
	opts := Options{Params: layout.Params{Orientation: "diagonal"}}
	if err := opts.ValidateAndSetDefaults(); !gperrors.Is(err, gperrors.ErrCodeInvalidOrientation) {
		t.Errorf("error = %v, want orientation error", err)
	}

	opts = Options{Params: layout.Params{Mode: "hydroponic"}}
	if err := opts.ValidateAndSetDefaults(); !gperrors.Is(err, gperrors.ErrCodeInvalidMode) {
		t.Errorf("error = %v, want mode error", err)
	}
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(nil)

	result, err := runner.Execute(context.Background(), Options{
		Params:  layout.DefaultParams(),
		Formats: []string{FormatSVG, FormatCSV, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Stats.Beds != 5 {
		t.Errorf("beds = %d, want 5", result.Stats.Beds)
	}
	if result.Stats.Rects != 10 {
		t.Errorf("rects = %d, want 10", result.Stats.Rects)
	}
	for _, f := range []string{FormatSVG, FormatCSV, FormatJSON} {
		if len(result.Artifacts[f]) == 0 {
			t.Errorf("artifact %q is empty", f)
		}
	}
	if !strings.HasPrefix(string(result.Artifacts[FormatSVG]), "<svg") {
		t.Error("svg artifact does not look like SVG")
	}
}

func TestRunnerLayout(t *testing.T) {
	runner := NewRunner(nil)

	p, err := runner.Layout(context.Background(), Options{Params: layout.DefaultParams()})
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if p.Metrics.Beds != 5 {
		t.Errorf("beds = %d, want 5", p.Metrics.Beds)
	}
	if len(p.Rects) != 10 {
		t.Errorf("rects = %d, want 10", len(p.Rects))
	}
}

func TestRunnerLayoutRejectsBadEnums(t *testing.T) {
	runner := NewRunner(nil)

	_, err := runner.Layout(context.Background(), Options{
		Params: layout.Params{Orientation: "diagonal"},
	})
	if !gperrors.Is(err, gperrors.ErrCodeInvalidOrientation) {
		t.Errorf("error = %v, want orientation error", err)
	}
}

func TestRunnerExecuteInvalidFormat(t *testing.T) {
	runner := NewRunner(nil)
	_, err := runner.Execute(context.Background(), Options{
		Params:  layout.DefaultParams(),
		Formats: []string{"pdf"},
	})
	if !gperrors.Is(err, gperrors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want invalid format", err)
	}
}

func TestRunnerExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(nil)
	if _, err := runner.Execute(ctx, Options{Params: layout.DefaultParams()}); err == nil {
		t.Error("Execute() with cancelled context expected error")
	}
}

// Degenerate parameters flow through the pipeline as an empty plan, never as
// an error.
func TestRunnerExecuteDegenerateGeometry(t *testing.T) {
	p := layout.DefaultParams()
	p.BedWidth = 0

	runner := NewRunner(nil)
	result, err := runner.Execute(context.Background(), Options{Params: p, Formats: []string{FormatCSV}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Stats.Beds != 0 {
		t.Errorf("beds = %d, want 0", result.Stats.Beds)
	}
}
