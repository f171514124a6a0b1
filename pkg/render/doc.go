// Package render turns computed floor plans into export artifacts.
//
// Every sink is a pure function over a [layout.Plan]; rendering never mutates
// the plan and carries no state between calls, so all sinks are safe to call
// concurrently.
//
// # Formats
//
//   - [RenderSVG]: vector drawing of the plan, frame plus colored rectangles
//   - [RenderPNG]: raster version drawn with fogleman/gg at the plan's DPI
//   - [RenderCSV]: one delimited row per rectangle
//   - [RenderXLSX]: spreadsheet with a rectangle sheet and a summary sheet
//   - [RenderJSON]: interchange document with params, metrics, and rectangles
//
// [layout.Plan]: github.com/matzehuels/growplan/pkg/layout
package render
