package render

import (
	"encoding/json"

	"github.com/matzehuels/growplan/pkg/geometry"
	"github.com/matzehuels/growplan/pkg/layout"
)

// Document is the JSON interchange shape of a plan. It echoes the clamped
// parameters so a consumer can re-run the exact computation, and flattens
// each rectangle via [geometry.Rect.MarshalJSON].
type Document struct {
	Width   float64         `json:"width"`
	Length  float64         `json:"length"`
	Params  layout.Params   `json:"params"`
	Metrics layout.Metrics  `json:"metrics"`
	Rects   []geometry.Rect `json:"rects"`
}

// NewDocument builds the interchange document for p.
func NewDocument(p layout.Plan) Document {
	rects := p.Rects
	if rects == nil {
		rects = []geometry.Rect{}
	}
	return Document{
		Width:   p.Params.Width,
		Length:  p.Params.Length,
		Params:  p.Params,
		Metrics: p.Metrics,
		Rects:   rects,
	}
}

// RenderJSON renders the plan as a pretty-printed JSON document.
func RenderJSON(p layout.Plan) ([]byte, error) {
	return json.MarshalIndent(NewDocument(p), "", "  ")
}
