package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/growplan/pkg/layout"
	"github.com/matzehuels/growplan/pkg/pipeline"
	"github.com/matzehuels/growplan/pkg/plan"
)

// newDesignCmd creates the design command: an interactive terminal designer
// with a live metric preview. Every keystroke recomputes the full plan, so
// the numbers on screen always match the current parameters.
func newDesignCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "design [plan.toml]",
		Short: "Design a floor plan interactively",
		Args:  cobra.MaximumNArgs(1),
	}
	planFlags := addPlanFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", defaultPlanPath, "plan file written on save")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		params, err := planFlags.resolve(cmd, args)
		if err != nil {
			return err
		}
		path := output
		if len(args) > 0 && !cmd.Flags().Changed("output") {
			path = args[0]
		}

		final, err := tea.NewProgram(NewDesignModel(params, path)).Run()
		if err != nil {
			return err
		}

		m, ok := final.(DesignModel)
		if !ok || !m.Export {
			return nil
		}
		return runRender(cmd.Context(), m.Params, []string{
			pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatCSV,
		}, path, &renderOpts{labels: true})
	}

	return cmd
}

// =============================================================================
// DesignModel - Interactive plan designer
// =============================================================================

// designField identifies one editable parameter row.
type designField int

const (
	fieldWidth designField = iota
	fieldLength
	fieldBuffer
	fieldHeadhouse
	fieldOrientation
	fieldMode
	fieldBedWidth
	fieldAisleWidth
	fieldService
	fieldServiceWidth
	fieldDPI
	fieldCount
)

// fieldLabels are the row labels, indexed by designField.
var fieldLabels = [fieldCount]string{
	"Width (m)",
	"Length (m)",
	"Wall buffer (m)",
	"Headhouse depth (m)",
	"Orientation",
	"Growing system",
	"Bed width (m)",
	"Aisle width (m)",
	"Service aisle",
	"Service width (m)",
	"Export DPI",
}

// fieldSteps are the left/right adjustment increments for numeric rows.
var fieldSteps = [fieldCount]float64{
	fieldWidth:        0.5,
	fieldLength:       0.5,
	fieldBuffer:       0.1,
	fieldHeadhouse:    0.5,
	fieldBedWidth:     0.1,
	fieldAisleWidth:   0.1,
	fieldServiceWidth: 0.1,
	fieldDPI:          20,
}

var (
	designSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	designNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	designDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	designEditStyle     = lipgloss.NewStyle().Foreground(colorYellow)
)

// DesignModel is the bubbletea model for the interactive designer.
type DesignModel struct {
	Params layout.Params
	Plan   layout.Plan

	Cursor   designField
	Editing  bool   // inline numeric entry active
	Input    string // entry buffer while editing
	PlanPath string
	Status   string // transient message after save
	Export   bool   // render exports after quitting
}

// NewDesignModel creates a designer seeded with params, saving to planPath.
func NewDesignModel(params layout.Params, planPath string) DesignModel {
	return DesignModel{
		Params:   params,
		Plan:     layout.Build(params),
		PlanPath: planPath,
	}
}

func (m DesignModel) Init() tea.Cmd {
	return nil
}

func (m DesignModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.Editing {
		return m.updateEditing(key)
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < fieldCount-1 {
			m.Cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(+1)
	case "enter":
		switch m.Cursor {
		case fieldOrientation, fieldMode, fieldService:
			m.adjust(+1)
		default:
			m.Editing = true
			m.Input = ""
		}
	case "s":
		if err := plan.Write(m.PlanPath, "", m.Params); err != nil {
			m.Status = StyleWarning.Render("save failed: " + err.Error())
		} else {
			m.Status = StyleSuccess.Render("saved " + m.PlanPath)
		}
	case "x":
		m.Export = true
		return m, tea.Quit
	}
	return m, nil
}

// updateEditing handles keys while an inline numeric entry is open.
func (m DesignModel) updateEditing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.Editing = false
		m.Input = ""
	case "enter":
		m.commitInput()
		m.Editing = false
		m.Input = ""
	case "backspace":
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
		}
	default:
		s := key.String()
		if len(s) == 1 && (s[0] == '.' || (s[0] >= '0' && s[0] <= '9')) {
			m.Input += s
		}
	}
	return m, nil
}

// commitInput parses the entry buffer into the current field. Unparseable
// input is dropped silently; the old value stays.
func (m *DesignModel) commitInput() {
	v, err := strconv.ParseFloat(m.Input, 64)
	if err != nil {
		return
	}
	if m.Cursor == fieldDPI {
		m.Params.ExportDPI = int(v)
	} else if f := m.numericField(); f != nil {
		*f = v
	}
	m.recompute()
}

// adjust moves the current field by dir steps: numeric fields by their
// increment, enums and toggles by cycling.
func (m *DesignModel) adjust(dir int) {
	switch m.Cursor {
	case fieldOrientation:
		if m.Params.Orientation == layout.OrientationNS {
			m.Params.Orientation = layout.OrientationEW
		} else {
			m.Params.Orientation = layout.OrientationNS
		}
	case fieldMode:
		if m.Params.Mode == layout.ModeBeds {
			m.Params.Mode = layout.ModeBenches
		} else {
			m.Params.Mode = layout.ModeBeds
		}
		// Switching the system pulls in its stripe defaults.
		m.Params.BedWidth, m.Params.AisleWidth = layout.StripeDefaults(m.Params.Mode)
	case fieldService:
		m.Params.IncludeService = !m.Params.IncludeService
	case fieldDPI:
		m.Params.ExportDPI += dir * int(fieldSteps[fieldDPI])
		if m.Params.ExportDPI < layout.MinDPI {
			m.Params.ExportDPI = layout.MinDPI
		}
		if m.Params.ExportDPI > layout.MaxDPI {
			m.Params.ExportDPI = layout.MaxDPI
		}
	default:
		f := m.numericField()
		if f == nil {
			return
		}
		*f += float64(dir) * fieldSteps[m.Cursor]
		if *f < 0 {
			*f = 0
		}
	}
	m.recompute()
}

// numericField returns a pointer to the float behind the current row, or nil
// for enum, toggle, and DPI rows.
func (m *DesignModel) numericField() *float64 {
	switch m.Cursor {
	case fieldWidth:
		return &m.Params.Width
	case fieldLength:
		return &m.Params.Length
	case fieldBuffer:
		return &m.Params.Buffer
	case fieldHeadhouse:
		return &m.Params.HeadhouseDepth
	case fieldBedWidth:
		return &m.Params.BedWidth
	case fieldAisleWidth:
		return &m.Params.AisleWidth
	case fieldServiceWidth:
		return &m.Params.ServiceWidth
	}
	return nil
}

// recompute rebuilds the plan and clears any stale status line.
func (m *DesignModel) recompute() {
	m.Plan = layout.Build(m.Params)
	m.Status = ""
}

// fieldValue formats the display value of field f.
func (m DesignModel) fieldValue(f designField) string {
	switch f {
	case fieldWidth:
		return fmt.Sprintf("%.1f", m.Params.Width)
	case fieldLength:
		return fmt.Sprintf("%.1f", m.Params.Length)
	case fieldBuffer:
		return fmt.Sprintf("%.1f", m.Params.Buffer)
	case fieldHeadhouse:
		return fmt.Sprintf("%.1f", m.Params.HeadhouseDepth)
	case fieldOrientation:
		return m.Params.Orientation.Display()
	case fieldMode:
		return m.Params.Mode.Display()
	case fieldBedWidth:
		return fmt.Sprintf("%.1f", m.Params.BedWidth)
	case fieldAisleWidth:
		return fmt.Sprintf("%.1f", m.Params.AisleWidth)
	case fieldService:
		if m.Params.IncludeService {
			return "yes"
		}
		return "no"
	case fieldServiceWidth:
		return fmt.Sprintf("%.1f", m.Params.ServiceWidth)
	case fieldDPI:
		return strconv.Itoa(m.Params.ExportDPI)
	}
	return ""
}

func (m DesignModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Greenhouse Designer"))
	b.WriteString("\n")
	b.WriteString(designDimStyle.Render("↑/↓ select  ←/→ adjust  ⏎ edit/cycle  s save  x export  q quit"))
	b.WriteString("\n\n")

	for f := designField(0); f < fieldCount; f++ {
		cursor := "  "
		if f == m.Cursor {
			cursor = "▸ "
		}

		value := m.fieldValue(f)
		if f == m.Cursor && m.Editing {
			value = designEditStyle.Render(m.Input + "▏")
		}

		line := fmt.Sprintf("%s%-22s %s", cursor, fieldLabels[f], value)
		if f == m.Cursor {
			b.WriteString(designSelectedStyle.Render(line))
		} else {
			b.WriteString(designNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(designDimStyle.Render(strings.Repeat("─", 44)))
	b.WriteString("\n")

	met := m.Plan.Metrics
	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
		designDimStyle.Render("beds"), StyleNumber.Render(strconv.Itoa(met.Beds)),
		designDimStyle.Render("bed area"), StyleNumber.Render(fmt.Sprintf("%.1f m²", met.BedArea)),
		designDimStyle.Render("cultivable"), StyleNumber.Render(fmt.Sprintf("%.1f %%", met.CultivableFraction*100))))
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n",
		designDimStyle.Render("total"), StyleValue.Render(fmt.Sprintf("%.1f m²", met.TotalArea)),
		designDimStyle.Render("headhouse"), StyleValue.Render(fmt.Sprintf("%.1f m²", met.HeadhouseArea))))

	if met.Beds == 0 {
		b.WriteString("\n  " + StyleWarning.Render("no beds fit; widen the plot or narrow the stripes") + "\n")
	}
	if m.Status != "" {
		b.WriteString("\n  " + m.Status + "\n")
	}

	return b.String()
}
