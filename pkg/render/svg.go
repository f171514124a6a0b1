package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/growplan/pkg/geometry"
	"github.com/matzehuels/growplan/pkg/layout"
)

// Fill colors by rectangle kind, shared by the SVG and PNG sinks.
const (
	colorBed       = "#7cd992"
	colorAisle     = "#e5e7eb"
	colorHeadhouse = "#fbcfe8"
	colorFrame     = "#111827"
	colorText      = "#374151"
)

const (
	// defaultScale is the vector scale in pixels per meter.
	defaultScale = 40.0

	// frameMargin is the padding around the plot frame, in meters.
	frameMargin = 0.6
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale  float64
	labels bool
}

// WithSVGScale sets the vector scale in pixels per meter (default 40).
func WithSVGScale(pxPerMeter float64) SVGOption {
	return func(r *svgRenderer) {
		if pxPerMeter > 0 {
			r.scale = pxPerMeter
		}
	}
}

// WithSVGLabels enables the title line, bed index labels, and axis captions.
func WithSVGLabels() SVGOption {
	return func(r *svgRenderer) { r.labels = true }
}

// RenderSVG renders the plan as a standalone SVG document. The plot frame is
// drawn unfilled at W×L meters with every rectangle colored by kind; y grows
// north, so the document flips the plan's coordinates into screen space.
func RenderSVG(p layout.Plan, opts ...SVGOption) []byte {
	r := svgRenderer{scale: defaultScale}
	for _, opt := range opts {
		opt(&r)
	}

	W, L := p.Params.Width, p.Params.Length
	docW := (W + 2*frameMargin) * r.scale
	docH := (L + 2*frameMargin) * r.scale

	// Plan-space to screen-space: shift by the margin, flip y.
	px := func(x float64) float64 { return (frameMargin + x) * r.scale }
	py := func(y float64) float64 { return (frameMargin + L - y) * r.scale }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		docW, docH, docW, docH)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n", docW, docH)

	for _, rect := range p.Rects {
		renderSVGRect(&buf, rect, px, py, r.scale)
	}

	// Outer frame on top of the fills.
	fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="2"/>`+"\n",
		px(0), py(L), W*r.scale, L*r.scale, colorFrame)

	if r.labels {
		renderSVGLabels(&buf, p, px, py, r.scale)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderSVGRect(buf *bytes.Buffer, rect geometry.Rect, px, py func(float64) float64, scale float64) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="0.7" stroke="#000000" stroke-width="1"/>`+"\n",
		px(rect.X), py(rect.Y+rect.H), rect.W*scale, rect.H*scale, fillColor(rect.Kind))
}

func renderSVGLabels(buf *bytes.Buffer, p layout.Plan, px, py func(float64) float64, scale float64) {
	fontPx := 0.35 * scale

	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f" fill="%s">Layout: %s · %s</text>`+"\n",
		px(0), py(p.Params.Length)-0.2*scale, fontPx, colorText,
		p.Params.Mode.Display(), p.Params.Orientation.Display())

	for _, rect := range p.Rects {
		attrs, ok := rect.Attrs.(geometry.BedAttrs)
		if !ok || rect.W <= 0 || rect.H <= 0 {
			continue
		}
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f" fill="%s" text-anchor="middle">%d</text>`+"\n",
			px(rect.X+rect.W/2), py(rect.Y+rect.H/2)+fontPx/3, fontPx, colorText, attrs.Index)
	}

	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f" fill="%s" text-anchor="middle">Width (m)</text>`+"\n",
		px(p.Params.Width/2), py(0)+0.45*scale, fontPx, colorText)
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f" fill="%s" text-anchor="middle" transform="rotate(-90 %.2f %.2f)">Length (m)</text>`+"\n",
		px(0)-0.3*scale, py(p.Params.Length/2), fontPx, colorText,
		px(0)-0.3*scale, py(p.Params.Length/2))
}

func fillColor(k geometry.Kind) string {
	switch k {
	case geometry.KindBed:
		return colorBed
	case geometry.KindAisle:
		return colorAisle
	case geometry.KindHeadhouse:
		return colorHeadhouse
	}
	return "#dddddd"
}
