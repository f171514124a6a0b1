package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/growplan/pkg/layout"
	"github.com/matzehuels/growplan/pkg/plan"
)

// planOpts holds the parameter flags shared by the layout, render, and design
// commands. Values start from the soil-bed defaults; a plan file argument
// replaces them, and explicitly set flags override the file.
type planOpts struct {
	width       float64 // plot width (m)
	length      float64 // plot length (m)
	buffer      float64 // clearance between stripes and walls (m)
	headhouse   float64 // headhouse depth at the entrance (m)
	orientation string  // stripe direction: "ns" or "ew"
	mode        string  // growing system: "beds" or "benches"
	bedWidth    float64 // stripe width (m)
	aisleWidth  float64 // gap between stripes (m)
	service     bool    // reserve a center service aisle
	serviceWid  float64 // service aisle width (m)
	dpi         int     // PNG export resolution
}

// addPlanFlags registers the shared parameter flags on cmd and returns the
// bound options.
func addPlanFlags(cmd *cobra.Command) *planOpts {
	d := layout.DefaultParams()
	o := &planOpts{
		width:       d.Width,
		length:      d.Length,
		buffer:      d.Buffer,
		headhouse:   d.HeadhouseDepth,
		orientation: string(d.Orientation),
		mode:        string(d.Mode),
		bedWidth:    d.BedWidth,
		aisleWidth:  d.AisleWidth,
		service:     d.IncludeService,
		serviceWid:  d.ServiceWidth,
		dpi:         d.ExportDPI,
	}

	f := cmd.Flags()
	f.Float64Var(&o.width, "width", o.width, "plot width in meters")
	f.Float64Var(&o.length, "length", o.length, "plot length in meters")
	f.Float64Var(&o.buffer, "buffer", o.buffer, "wall clearance in meters")
	f.Float64Var(&o.headhouse, "headhouse", o.headhouse, "headhouse depth in meters (0 to omit)")
	f.StringVar(&o.orientation, "orientation", o.orientation, "bed direction: ns (along length), ew (along width)")
	f.StringVar(&o.mode, "mode", o.mode, "growing system: beds, benches")
	f.Float64Var(&o.bedWidth, "bed-width", o.bedWidth, "bed or bench width in meters")
	f.Float64Var(&o.aisleWidth, "aisle-width", o.aisleWidth, "aisle width in meters")
	f.BoolVar(&o.service, "service", o.service, "reserve a center service aisle")
	f.Float64Var(&o.serviceWid, "service-width", o.serviceWid, "service aisle width in meters")
	f.IntVar(&o.dpi, "dpi", o.dpi, "PNG export resolution (100-300)")

	return o
}

// resolve builds the final parameter set. With a plan file argument the file
// supplies the base values and only flags the user actually set override
// them; without one the flag values are used as-is. Enum flags are validated
// here so a typo fails before any work happens.
func (o *planOpts) resolve(cmd *cobra.Command, args []string) (layout.Params, error) {
	var p layout.Params
	if len(args) > 0 {
		loaded, err := plan.Read(args[0])
		if err != nil {
			return layout.Params{}, err
		}
		p = loaded
	} else {
		p = o.params()
	}

	f := cmd.Flags()
	if f.Changed("width") {
		p.Width = o.width
	}
	if f.Changed("length") {
		p.Length = o.length
	}
	if f.Changed("buffer") {
		p.Buffer = o.buffer
	}
	if f.Changed("headhouse") {
		p.HeadhouseDepth = o.headhouse
	}
	if f.Changed("orientation") {
		p.Orientation = layout.Orientation(o.orientation)
	}
	if f.Changed("mode") {
		p.Mode = layout.Mode(o.mode)
		// Switching the growing system pulls in its stripe defaults unless
		// the user pinned them.
		if !f.Changed("bed-width") && !f.Changed("aisle-width") {
			p.BedWidth, p.AisleWidth = layout.StripeDefaults(p.Mode)
		}
	}
	if f.Changed("bed-width") {
		p.BedWidth = o.bedWidth
	}
	if f.Changed("aisle-width") {
		p.AisleWidth = o.aisleWidth
	}
	if f.Changed("service") {
		p.IncludeService = o.service
	}
	if f.Changed("service-width") {
		p.ServiceWidth = o.serviceWid
	}
	if f.Changed("dpi") {
		p.ExportDPI = o.dpi
	}

	if _, err := layout.ParseOrientation(string(p.Orientation)); err != nil {
		return layout.Params{}, err
	}
	if _, err := layout.ParseMode(string(p.Mode)); err != nil {
		return layout.Params{}, err
	}
	return p, nil
}

// params converts the flag values into a parameter struct without validation.
func (o *planOpts) params() layout.Params {
	return layout.Params{
		Width:          o.width,
		Length:         o.length,
		Buffer:         o.buffer,
		HeadhouseDepth: o.headhouse,
		Orientation:    layout.Orientation(o.orientation),
		Mode:           layout.Mode(o.mode),
		BedWidth:       o.bedWidth,
		AisleWidth:     o.aisleWidth,
		IncludeService: o.service,
		ServiceWidth:   o.serviceWid,
		ExportDPI:      o.dpi,
	}
}
