// Package layout computes greenhouse floor plans.
//
// The package is the computational core of growplan: a single deterministic
// pass from a parameter set to an ordered list of placed rectangles plus
// derived area metrics. There is no state between calls; every invocation of
// [Build] recomputes the full plan from scratch.
//
// # Model
//
// The interior is a W×L meter plot with the origin at the bottom-left. An
// optional headhouse block occupies the full width at y = 0. A uniform
// perimeter buffer is subtracted from the remaining interior, and the growing
// region is tiled with repeating bed stripes separated by aisle gaps along
// one axis, selected by [Orientation].
//
// # Degenerate inputs
//
// Invalid geometry is never an error. A non-positive span, stripe, or a
// negative gap packs zero stripes, which degrades naturally into a plan with
// no beds and zero cultivable area. Callers that need hard validation do it
// at their own boundary.
package layout
