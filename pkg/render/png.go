package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/matzehuels/growplan/pkg/layout"
)

// figureWidthInches fixes the physical width of the raster figure; the DPI
// parameter then scales pixel density the way the original designer's export
// slider did.
const figureWidthInches = 8.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	dpi int
}

// WithDPI overrides the plan's export DPI. Values outside [layout.MinDPI,
// layout.MaxDPI] are clamped.
func WithDPI(dpi int) PNGOption {
	return func(r *pngRenderer) { r.dpi = dpi }
}

// RenderPNG rasterizes the plan. The figure is a fixed 8 inches wide; the
// resolution comes from the plan's ExportDPI unless overridden with [WithDPI].
func RenderPNG(p layout.Plan, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{dpi: p.Params.ExportDPI}
	for _, opt := range opts {
		opt(&r)
	}
	if r.dpi < layout.MinDPI {
		r.dpi = layout.MinDPI
	}
	if r.dpi > layout.MaxDPI {
		r.dpi = layout.MaxDPI
	}

	W, L := p.Params.Width, p.Params.Length
	pxW := figureWidthInches * float64(r.dpi)
	scale := pxW / (W + 2*frameMargin)
	pxH := (L + 2*frameMargin) * scale

	dc := gg.NewContext(int(pxW), int(pxH))
	dc.SetHexColor("#ffffff")
	dc.Clear()

	px := func(x float64) float64 { return (frameMargin + x) * scale }
	py := func(y float64) float64 { return (frameMargin + L - y) * scale }

	for _, rect := range p.Rects {
		if rect.W <= 0 || rect.H <= 0 {
			continue
		}
		dc.DrawRectangle(px(rect.X), py(rect.Y+rect.H), rect.W*scale, rect.H*scale)
		dc.SetHexColor(fillColor(rect.Kind))
		dc.FillPreserve()
		dc.SetHexColor("#000000")
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	// Outer frame.
	dc.DrawRectangle(px(0), py(L), W*scale, L*scale)
	dc.SetHexColor(colorFrame)
	dc.SetLineWidth(2)
	dc.Stroke()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
