package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/growplan/pkg/geometry"
	"github.com/matzehuels/growplan/pkg/layout"
)

const (
	sheetRects   = "Rectangles"
	sheetSummary = "Summary"
)

// RenderXLSX renders the plan as a spreadsheet: a Rectangles sheet mirroring
// the CSV export and a Summary sheet with the parameters and area metrics.
func RenderXLSX(p layout.Plan) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetRects); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetRects, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range p.Rects {
		row := []any{string(r.Kind), r.X, r.Y, r.W, r.H, nil, nil, nil}
		switch a := r.Attrs.(type) {
		case geometry.BedAttrs:
			row[5] = a.Index
		case geometry.AisleAttrs:
			row[6] = a.Between()
		case geometry.HeadhouseAttrs:
			row[7] = a.Label
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetRects, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if err := writeSummarySheet(f, p); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, p layout.Plan) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	m := p.Metrics
	rows := [][]any{
		{"interior width (m)", p.Params.Width},
		{"interior length (m)", p.Params.Length},
		{"perimeter buffer (m)", p.Params.Buffer},
		{"headhouse depth (m)", p.Params.HeadhouseDepth},
		{"orientation", p.Params.Orientation.Display()},
		{"mode", p.Params.Mode.Display()},
		{"bed width (m)", p.Params.BedWidth},
		{"aisle width (m)", p.Params.AisleWidth},
		{"beds", m.Beds},
		{"bed area (m2)", m.BedArea},
		{"aisle area (m2)", m.AisleArea},
		{"headhouse area (m2)", m.HeadhouseArea},
		{"total area (m2)", m.TotalArea},
		{"cultivable fraction", m.CultivableFraction},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return fmt.Errorf("write summary row %d: %w", i, err)
		}
	}
	return nil
}
