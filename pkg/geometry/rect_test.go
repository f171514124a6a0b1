package geometry

import (
	"encoding/json"
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRectAccessors(t *testing.T) {
	r := Rect{Kind: KindBed, X: 0.3, Y: 2.3, W: 1.2, H: 21.4, Attrs: BedAttrs{Index: 1}}

	// The accessors multiply and add already-rounded float64 values, so the
	// expectations are met only up to a tolerance.
	if got, want := r.Area(), 25.68; !approxEqual(got, want) {
		t.Errorf("Area() = %v, want %v", got, want)
	}
	if got, want := r.Right(), 1.5; !approxEqual(got, want) {
		t.Errorf("Right() = %v, want %v", got, want)
	}
	if got, want := r.Top(), 23.7; !approxEqual(got, want) {
		t.Errorf("Top() = %v, want %v", got, want)
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{KindBed, KindAisle, KindHeadhouse} {
		if !k.Valid() {
			t.Errorf("Kind(%q).Valid() = false, want true", k)
		}
	}
	if Kind("bench").Valid() {
		t.Error(`Kind("bench").Valid() = true, want false`)
	}
}

func TestAisleBetween(t *testing.T) {
	a := AisleAttrs{From: 2, To: 3}
	if got := a.Between(); got != "2-3" {
		t.Errorf("Between() = %q, want %q", got, "2-3")
	}
}

func TestRectMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want map[string]any
	}{
		{
			name: "bed carries index",
			rect: Rect{Kind: KindBed, X: 1, Y: 2, W: 3, H: 4, Attrs: BedAttrs{Index: 2}},
			want: map[string]any{"kind": "bed", "x": 1.0, "y": 2.0, "width": 3.0, "height": 4.0, "index": 2.0},
		},
		{
			name: "aisle carries between label",
			rect: Rect{Kind: KindAisle, X: 4, Y: 2, W: 0.5, H: 4, Attrs: AisleAttrs{From: 1, To: 2}},
			want: map[string]any{"kind": "aisle", "x": 4.0, "y": 2.0, "width": 0.5, "height": 4.0, "between": "1-2"},
		},
		{
			name: "headhouse carries label",
			rect: Rect{Kind: KindHeadhouse, W: 9, H: 2, Attrs: HeadhouseAttrs{Label: "Headhouse"}},
			want: map[string]any{"kind": "headhouse", "x": 0.0, "y": 0.0, "width": 9.0, "height": 2.0, "label": "Headhouse"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.rect)
			if err != nil {
				t.Fatalf("json.Marshal() error: %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("json.Unmarshal() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Errorf("marshaled keys = %v, want %v", got, tt.want)
			}
			for k, want := range tt.want {
				if got[k] != want {
					t.Errorf("field %q = %v, want %v", k, got[k], want)
				}
			}
		})
	}
}
