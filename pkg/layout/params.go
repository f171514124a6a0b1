package layout

import "fmt"

// Orientation selects which interior axis the repeating bed stripes follow.
type Orientation string

const (
	// OrientationNS runs beds north–south along the length, packing stripes
	// across the width.
	OrientationNS Orientation = "ns"

	// OrientationEW runs beds east–west along the width, packing stripes
	// along the length.
	OrientationEW Orientation = "ew"
)

// ParseOrientation converts a user-supplied string into an [Orientation].
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case OrientationNS, OrientationEW:
		return Orientation(s), nil
	}
	return "", fmt.Errorf("invalid orientation: %q (must be 'ns' or 'ew')", s)
}

// Mode selects the growing system, which only affects the default stripe and
// gap widths. Soil beds are wider with narrow walking aisles; ebb-flow
// benches are narrower with wider service aisles.
type Mode string

const (
	ModeBeds    Mode = "beds"
	ModeBenches Mode = "benches"
)

// Display returns the long form used in titles and the designer UI.
func (o Orientation) Display() string {
	if o == OrientationEW {
		return "East–West (along width)"
	}
	return "North–South (along length)"
}

// ParseMode converts a user-supplied string into a [Mode].
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBeds, ModeBenches:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid mode: %q (must be 'beds' or 'benches')", s)
}

// Display returns the long form used in titles and the designer UI.
func (m Mode) Display() string {
	if m == ModeBenches {
		return "Benches (ebb-flow)"
	}
	return "Soil Beds"
}

// Default parameter values, matching the original designer defaults.
const (
	DefaultWidth          = 9.0
	DefaultLength         = 24.0
	DefaultBuffer         = 0.3
	DefaultHeadhouseDepth = 2.0
	DefaultServiceWidth   = 0.8
	DefaultBedWidth       = 1.2
	DefaultAisleWidth     = 0.5
	DefaultBenchWidth     = 1.0
	DefaultBenchAisle     = 0.6
	DefaultExportDPI      = 160
)

// Hard floors for the plot dimensions and the raster export resolution.
const (
	MinWidth  = 2.0
	MinLength = 3.0
	MinDPI    = 100
	MaxDPI    = 300
)

// Params is the full parameter surface of a plan. All distances are meters.
//
// IncludeService and ServiceWidth describe a center service aisle. They are
// accepted, persisted, and echoed through every export so plans round-trip,
// but the placement pass does not consume them yet.
type Params struct {
	Width          float64     `json:"width" toml:"width"`
	Length         float64     `json:"length" toml:"length"`
	Buffer         float64     `json:"buffer" toml:"buffer"`
	HeadhouseDepth float64     `json:"headhouse_depth" toml:"headhouse_depth"`
	Orientation    Orientation `json:"orientation" toml:"orientation"`
	Mode           Mode        `json:"mode" toml:"mode"`
	BedWidth       float64     `json:"bed_width" toml:"bed_width"`
	AisleWidth     float64     `json:"aisle_width" toml:"aisle_width"`
	IncludeService bool        `json:"include_service" toml:"include_service"`
	ServiceWidth   float64     `json:"service_width" toml:"service_width"`
	ExportDPI      int         `json:"export_dpi" toml:"export_dpi"`
}

// DefaultParams returns the soil-bed defaults: a 9×24 m house with a 0.3 m
// buffer, a 2 m headhouse, and north–south beds.
func DefaultParams() Params {
	return Params{
		Width:          DefaultWidth,
		Length:         DefaultLength,
		Buffer:         DefaultBuffer,
		HeadhouseDepth: DefaultHeadhouseDepth,
		Orientation:    OrientationNS,
		Mode:           ModeBeds,
		BedWidth:       DefaultBedWidth,
		AisleWidth:     DefaultAisleWidth,
		IncludeService: true,
		ServiceWidth:   DefaultServiceWidth,
		ExportDPI:      DefaultExportDPI,
	}
}

// StripeDefaults returns the default stripe and gap widths for m.
func StripeDefaults(m Mode) (bed, aisle float64) {
	if m == ModeBenches {
		return DefaultBenchWidth, DefaultBenchAisle
	}
	return DefaultBedWidth, DefaultAisleWidth
}

// Clamped returns a copy of p with every field forced into its valid range:
// plot dimensions at least their floors, all other distances non-negative,
// the DPI inside [MinDPI, MaxDPI], and empty enums replaced by defaults.
// Clamping never rejects; degenerate combinations simply pack zero beds.
func (p Params) Clamped() Params {
	c := p
	c.Width = maxf(c.Width, MinWidth)
	c.Length = maxf(c.Length, MinLength)
	c.Buffer = maxf(c.Buffer, 0)
	c.HeadhouseDepth = maxf(c.HeadhouseDepth, 0)
	c.BedWidth = maxf(c.BedWidth, 0)
	c.AisleWidth = maxf(c.AisleWidth, 0)
	c.ServiceWidth = maxf(c.ServiceWidth, 0)

	if c.Orientation == "" {
		c.Orientation = OrientationNS
	}
	if c.Mode == "" {
		c.Mode = ModeBeds
	}

	if c.ExportDPI == 0 {
		c.ExportDPI = DefaultExportDPI
	}
	if c.ExportDPI < MinDPI {
		c.ExportDPI = MinDPI
	}
	if c.ExportDPI > MaxDPI {
		c.ExportDPI = MaxDPI
	}
	return c
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
