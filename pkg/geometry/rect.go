// Package geometry defines the placed-rectangle model shared by the layout
// builder, the render sinks, and the HTTP API.
//
// A floor plan is an insertion-ordered sequence of [Rect] values drawn into a
// single coordinate space: meters from the plot origin at the bottom-left,
// x growing east and y growing north. Rectangles are plain values with no
// cross-references; once produced by a layout pass they are never mutated.
package geometry

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates what a placed rectangle represents.
type Kind string

// Rectangle kinds produced by a layout pass.
const (
	KindBed       Kind = "bed"
	KindAisle     Kind = "aisle"
	KindHeadhouse Kind = "headhouse"
)

// Valid reports whether k is one of the known rectangle kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindBed, KindAisle, KindHeadhouse:
		return true
	}
	return false
}

// Rect is a single placed rectangle. Position and dimensions are in meters.
// Attrs carries kind-specific data as a tagged variant rather than an open
// map, so a bed can never accidentally carry aisle attributes.
type Rect struct {
	Kind Kind
	X    float64
	Y    float64
	W    float64
	H    float64

	Attrs Attrs
}

// Area returns W*H in square meters.
func (r Rect) Area() float64 { return r.W * r.H }

// Right returns the east edge coordinate.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the north edge coordinate.
func (r Rect) Top() float64 { return r.Y + r.H }

// Attrs is the kind-specific attribute payload of a [Rect]. It is a sealed
// interface: the only implementations are [BedAttrs], [AisleAttrs], and
// [HeadhouseAttrs].
type Attrs interface {
	isAttrs()
}

// BedAttrs annotates a bed rectangle with its 1-based position along the
// packed axis.
type BedAttrs struct {
	Index int
}

// AisleAttrs annotates an aisle rectangle with the 1-based indices of the two
// beds it separates. The indices are a label, not a structural reference.
type AisleAttrs struct {
	From int
	To   int
}

// HeadhouseAttrs annotates the headhouse rectangle.
type HeadhouseAttrs struct {
	Label string
}

func (BedAttrs) isAttrs()       {}
func (AisleAttrs) isAttrs()     {}
func (HeadhouseAttrs) isAttrs() {}

// Between renders the separator label in the "from-to" form used by the
// tabular exports.
func (a AisleAttrs) Between() string { return fmt.Sprintf("%d-%d", a.From, a.To) }

type jsonRect struct {
	Kind    Kind    `json:"kind"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Index   int     `json:"index,omitempty"`
	Between string  `json:"between,omitempty"`
	Label   string  `json:"label,omitempty"`
}

// MarshalJSON flattens the rectangle and its attributes into a single object
// so API consumers see {kind, x, y, width, height, index|between|label}.
func (r Rect) MarshalJSON() ([]byte, error) {
	out := jsonRect{
		Kind:   r.Kind,
		X:      r.X,
		Y:      r.Y,
		Width:  r.W,
		Height: r.H,
	}
	switch a := r.Attrs.(type) {
	case BedAttrs:
		out.Index = a.Index
	case AisleAttrs:
		out.Between = a.Between()
	case HeadhouseAttrs:
		out.Label = a.Label
	}
	return json.Marshal(out)
}
