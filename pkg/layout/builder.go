package layout

import (
	"math"

	"github.com/matzehuels/growplan/pkg/geometry"
)

// Plan is the result of one layout pass: the clamped parameters that produced
// it, the placed rectangles in insertion order (headhouse first, then beds,
// then aisles), and the derived area metrics.
type Plan struct {
	Params  Params
	Rects   []geometry.Rect
	Metrics Metrics
}

// Metrics aggregates the areas of a plan. Areas are square meters.
type Metrics struct {
	Beds               int     `json:"beds"`
	BedArea            float64 `json:"bed_area"`
	AisleArea          float64 `json:"aisle_area"`
	HeadhouseArea      float64 `json:"headhouse_area"`
	TotalArea          float64 `json:"total_area"`
	CultivableFraction float64 `json:"cultivable_fraction"`
}

// axis selects which plot axis the stripes are packed across.
type axis int

const (
	// alongLength places beds running the length of the plot, advancing the
	// packing position along x.
	alongLength axis = iota

	// alongWidth places beds running the width of the plot, advancing the
	// packing position along y.
	alongWidth
)

// Build computes the full plan for p in one deterministic pass. It never
// fails: degenerate geometry produces a plan with zero beds rather than an
// error. Calling Build twice with equal parameters yields identical plans.
func Build(p Params) Plan {
	p = p.Clamped()

	growL := math.Max(0, p.Length-p.HeadhouseDepth-2*p.Buffer)
	growW := math.Max(0, p.Width-2*p.Buffer)

	span, stripeLen, ax := growW, growL, alongLength
	if p.Orientation == OrientationEW {
		span, stripeLen, ax = growL, growW, alongWidth
	}
	count := PackStripes(span, p.BedWidth, p.AisleWidth)

	rects := make([]geometry.Rect, 0, 2*count)
	if p.HeadhouseDepth > 0 {
		rects = append(rects, geometry.Rect{
			Kind:  geometry.KindHeadhouse,
			W:     p.Width,
			H:     p.HeadhouseDepth,
			Attrs: geometry.HeadhouseAttrs{Label: "Headhouse"},
		})
	}

	startX, startY := p.Buffer, p.HeadhouseDepth+p.Buffer
	beds, aisles := placeStripes(startX, startY, stripeLen, p.BedWidth, p.AisleWidth, count, ax)
	rects = append(rects, beds...)
	rects = append(rects, aisles...)

	return Plan{
		Params:  p,
		Rects:   rects,
		Metrics: computeMetrics(p, rects),
	}
}

// placeStripes lays out count beds separated by count-1 aisles, starting at
// (startX, startY) and advancing along the packed axis. The last bed gets no
// trailing aisle, matching the derivation in [PackStripes]. Both orientations
// go through the same routine; ax transposes the rectangle.
func placeStripes(startX, startY, length, stripeW, gapW float64, count int, ax axis) (beds, aisles []geometry.Rect) {
	// u advances along the packed axis, v is the fixed cross-axis offset.
	u, v := startX, startY
	if ax == alongWidth {
		u, v = startY, startX
	}

	beds = make([]geometry.Rect, 0, count)
	if count > 1 {
		aisles = make([]geometry.Rect, 0, count-1)
	}
	for i := 0; i < count; i++ {
		beds = append(beds, stripeRect(ax, geometry.KindBed, u, v, stripeW, length,
			geometry.BedAttrs{Index: i + 1}))
		if i < count-1 {
			aisles = append(aisles, stripeRect(ax, geometry.KindAisle, u+stripeW, v, gapW, length,
				geometry.AisleAttrs{From: i + 1, To: i + 2}))
			u += stripeW + gapW
		}
	}
	return beds, aisles
}

// stripeRect builds one rectangle from packed-axis coordinates: u is the
// offset along the packed axis, v the cross-axis offset, du the extent along
// the packed axis, and dv the stripe length.
func stripeRect(ax axis, kind geometry.Kind, u, v, du, dv float64, attrs geometry.Attrs) geometry.Rect {
	if ax == alongLength {
		return geometry.Rect{Kind: kind, X: u, Y: v, W: du, H: dv, Attrs: attrs}
	}
	return geometry.Rect{Kind: kind, X: v, Y: u, W: dv, H: du, Attrs: attrs}
}

func computeMetrics(p Params, rects []geometry.Rect) Metrics {
	m := Metrics{
		HeadhouseArea: p.HeadhouseDepth * p.Width,
		TotalArea:     p.Width * p.Length,
	}
	for _, r := range rects {
		switch r.Kind {
		case geometry.KindBed:
			m.Beds++
			m.BedArea += r.Area()
		case geometry.KindAisle:
			m.AisleArea += r.Area()
		}
	}
	if m.TotalArea > 0 {
		m.CultivableFraction = m.BedArea / m.TotalArea
	}
	return m
}
