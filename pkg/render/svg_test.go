package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/growplan/pkg/layout"
)

func TestRenderSVG(t *testing.T) {
	plan := layout.Build(layout.DefaultParams())
	svg := string(RenderSVG(plan))

	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Fatalf("output does not start with an svg element: %.60q", svg)
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("output is not closed")
	}

	for _, color := range []string{colorBed, colorAisle, colorHeadhouse} {
		if !strings.Contains(svg, color) {
			t.Errorf("missing fill color %s", color)
		}
	}

	// 1 background + 1 headhouse + 5 beds + 4 aisles + 1 frame.
	if got := strings.Count(svg, "<rect"); got != 12 {
		t.Errorf("rect count = %d, want 12", got)
	}

	// Labels are off by default.
	if strings.Contains(svg, "<text") {
		t.Error("unexpected text elements without WithSVGLabels")
	}
}

func TestRenderSVGLabels(t *testing.T) {
	plan := layout.Build(layout.DefaultParams())
	svg := string(RenderSVG(plan, WithSVGLabels()))

	if !strings.Contains(svg, "Layout: Soil Beds · North–South (along length)") {
		t.Error("missing title line")
	}
	if !strings.Contains(svg, "Width (m)") || !strings.Contains(svg, "Length (m)") {
		t.Error("missing axis captions")
	}
	// One index label per bed.
	for i := 1; i <= 5; i++ {
		if !strings.Contains(svg, fmt.Sprintf(">%d</text>", i)) {
			t.Errorf("missing index label for bed %d", i)
		}
	}
}

func TestRenderSVGScale(t *testing.T) {
	plan := layout.Build(layout.DefaultParams())

	small := RenderSVG(plan, WithSVGScale(10))
	big := RenderSVG(plan, WithSVGScale(80))

	if bytes.Equal(small, big) {
		t.Error("scale option has no effect")
	}
	// 9 m wide plot with 0.6 m margins at 10 px/m.
	if !bytes.Contains(small, []byte(`viewBox="0 0 102.0 252.0"`)) {
		t.Errorf("unexpected viewBox in %.120s", small)
	}
}

func TestRenderSVGSkipsDegenerateRects(t *testing.T) {
	p := layout.DefaultParams()
	p.Buffer = 0
	p.HeadhouseDepth = 24 // growing length collapses to zero
	plan := layout.Build(p)

	svg := string(RenderSVG(plan))
	// Background, headhouse, frame; the zero-length beds draw nothing.
	if got := strings.Count(svg, "<rect"); got != 3 {
		t.Errorf("rect count = %d, want 3", got)
	}
}
