// Package pkg provides the core libraries for growplan greenhouse planning.
//
// # Overview
//
// Growplan turns a handful of greenhouse parameters into a complete interior
// floor plan: repeating bed or bench stripes, the aisles between them, and an
// optional headhouse at the entrance. The pkg directory is organized into
// four main areas:
//
//  1. [layout] - Domain logic (stripe packing, rectangle placement, metrics)
//  2. [geometry] - Shared rectangle and attribute types
//  3. [render] - Export sinks (SVG, PNG, CSV, XLSX, JSON)
//  4. [pipeline] - Orchestration (parameters → layout → render)
//
// Supporting packages: [plan] reads and writes TOML plan files, [errors]
// carries structured error codes across API boundaries, [observability]
// provides pluggable instrumentation hooks, and [buildinfo] exposes
// build-time version information.
//
// # Architecture
//
// The typical data flow through growplan:
//
//	Plan file / flags / API request
//	         ↓
//	    [layout] package (pack stripes, place rectangles)
//	         ↓
//	    [render] package (export sinks)
//	         ↓
//	    SVG/PNG/CSV/XLSX/JSON output
//
// # Quick Start
//
// Compute a plan and render it directly:
//
//	p := layout.Build(layout.DefaultParams())
//	svg := render.RenderSVG(p, render.WithSVGLabels())
//
// Or run the whole pipeline in one call:
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Params:  layout.DefaultParams(),
//	    Formats: []string{"svg", "csv"},
//	})
//
// # Main Packages
//
// [layout] - The closed-form stripe packer and the rectangle placement pass.
// Degenerate parameter combinations never error; they pack zero beds.
//
// [geometry] - The Rect type shared by every export, with per-kind attribute
// variants (bed index, aisle neighbors, headhouse label).
//
// [render] - One sink per export format. SVG and PNG draw the plan to scale;
// CSV and XLSX list the rectangles; JSON is the interchange document the
// HTTP API returns.
//
// [pipeline] - A stateless Runner that validates options, computes the
// layout, and renders every requested format. Shared by the CLI, the
// interactive designer, and the HTTP API.
package pkg
