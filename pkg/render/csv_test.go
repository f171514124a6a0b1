package render

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/matzehuels/growplan/pkg/layout"
)

func TestRenderCSV(t *testing.T) {
	plan := layout.Build(layout.DefaultParams())

	data, err := RenderCSV(plan)
	if err != nil {
		t.Fatalf("RenderCSV() error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll() error: %v", err)
	}

	// Header + headhouse + 5 beds + 4 aisles.
	if len(rows) != 11 {
		t.Fatalf("row count = %d, want 11", len(rows))
	}
	if !reflect.DeepEqual(rows[0], csvHeader) {
		t.Errorf("header = %v, want %v", rows[0], csvHeader)
	}

	headhouse := rows[1]
	if headhouse[0] != "headhouse" || headhouse[7] != "Headhouse" {
		t.Errorf("headhouse row = %v", headhouse)
	}

	firstBed := rows[2]
	if firstBed[0] != "bed" || firstBed[1] != "0.3" || firstBed[2] != "2.3" || firstBed[5] != "1" {
		t.Errorf("first bed row = %v", firstBed)
	}
	if firstBed[6] != "" || firstBed[7] != "" {
		t.Errorf("bed row has non-bed attributes: %v", firstBed)
	}

	firstAisle := rows[7]
	if firstAisle[0] != "aisle" || firstAisle[6] != "1-2" {
		t.Errorf("first aisle row = %v", firstAisle)
	}
}

func TestRenderCSVEmptyPlan(t *testing.T) {
	p := layout.DefaultParams()
	p.BedWidth = 0
	p.HeadhouseDepth = 0
	plan := layout.Build(p)

	data, err := RenderCSV(plan)
	if err != nil {
		t.Fatalf("RenderCSV() error: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll() error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("row count = %d, want header only", len(rows))
	}
}
