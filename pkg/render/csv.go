package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/matzehuels/growplan/pkg/geometry"
	"github.com/matzehuels/growplan/pkg/layout"
)

// csvHeader is the fixed column order of the tabular export: the geometric
// columns first, then one column per attribute variant.
var csvHeader = []string{"type", "x", "y", "width", "height", "index", "between", "label"}

// RenderCSV renders one row per rectangle in insertion order. Attribute
// columns that do not apply to a rectangle's kind are left empty.
func RenderCSV(p layout.Plan) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range p.Rects {
		row := []string{
			string(r.Kind),
			formatMeters(r.X),
			formatMeters(r.Y),
			formatMeters(r.W),
			formatMeters(r.H),
			"", "", "",
		}
		switch a := r.Attrs.(type) {
		case geometry.BedAttrs:
			row[5] = strconv.Itoa(a.Index)
		case geometry.AisleAttrs:
			row[6] = a.Between()
		case geometry.HeadhouseAttrs:
			row[7] = a.Label
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// formatMeters renders a coordinate with enough precision to round-trip while
// keeping clean values short (0.3 stays "0.3").
func formatMeters(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
