// Package pipeline provides the core compute → render pipeline for growplan.
//
// This package implements the layout and export pipeline that is shared by
// the CLI, the interactive designer, and the HTTP API. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Compute the rectangle plan from the parameter set
//  2. Render: Generate output in various formats (SVG, PNG, CSV, XLSX, JSON)
//
// Both stages are pure: every execution recomputes the full plan from the raw
// parameters with no shared state and nothing cached between runs. A Runner
// can therefore serve concurrent requests safely.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Params:  layout.DefaultParams(),
//	    Formats: []string{"svg", "csv"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	gperrors "github.com/matzehuels/growplan/pkg/errors"
	"github.com/matzehuels/growplan/pkg/layout"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatCSV:  true,
	FormatXLSX: true,
	FormatJSON: true,
}

// ContentTypes maps each format to its MIME type for HTTP responses.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatCSV:  "text/csv",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatJSON: "application/json",
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return gperrors.New(gperrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, csv, xlsx, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for one pipeline execution.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Params is the full greenhouse parameter surface. Numeric fields are
	// clamped by the layout package; enum fields are validated here.
	Params layout.Params `json:"params"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Labels  bool     `json:"labels,omitempty"` // title, bed indices, axis captions on SVG
	Scale   float64  `json:"scale,omitempty"`  // SVG pixels per meter

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks enum fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Params.Orientation != "" {
		if _, err := layout.ParseOrientation(string(o.Params.Orientation)); err != nil {
			return gperrors.Wrap(gperrors.ErrCodeInvalidOrientation, err, "options")
		}
	}
	if o.Params.Mode != "" {
		if _, err := layout.ParseMode(string(o.Params.Mode)); err != nil {
			return gperrors.Wrap(gperrors.ErrCodeInvalidMode, err, "options")
		}
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}
