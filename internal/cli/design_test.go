package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/growplan/pkg/layout"
)

func pressKey(t *testing.T, m DesignModel, msg tea.KeyMsg) DesignModel {
	t.Helper()
	next, _ := m.Update(msg)
	dm, ok := next.(DesignModel)
	if !ok {
		t.Fatalf("Update() returned %T, want DesignModel", next)
	}
	return dm
}

func pressRune(t *testing.T, m DesignModel, r rune) DesignModel {
	t.Helper()
	return pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestDesignModelSeedsPlan(t *testing.T) {
	m := NewDesignModel(layout.DefaultParams(), "plan.toml")
	if m.Plan.Metrics.Beds != 5 {
		t.Errorf("beds = %d, want 5", m.Plan.Metrics.Beds)
	}
}

func TestDesignModelAdjustRecomputes(t *testing.T) {
	m := NewDesignModel(layout.DefaultParams(), "plan.toml")

	// Cursor starts on width; one step right adds 0.5 m.
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Params.Width != 9.5 {
		t.Errorf("width = %v, want 9.5", m.Params.Width)
	}
	if m.Plan.Params.Width != 9.5 {
		t.Error("plan not recomputed after adjust")
	}
}

func TestDesignModelAdjustFloorsAtZero(t *testing.T) {
	p := layout.DefaultParams()
	p.Buffer = 0.1
	m := NewDesignModel(p, "plan.toml")
	m.Cursor = fieldBuffer

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Params.Buffer != 0 {
		t.Errorf("buffer = %v, want floor at 0", m.Params.Buffer)
	}
}

func TestDesignModelModeCyclePullsStripeDefaults(t *testing.T) {
	m := NewDesignModel(layout.DefaultParams(), "plan.toml")
	m.Cursor = fieldMode

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Params.Mode != layout.ModeBenches {
		t.Fatalf("mode = %v, want benches", m.Params.Mode)
	}
	if m.Params.BedWidth != layout.DefaultBenchWidth || m.Params.AisleWidth != layout.DefaultBenchAisle {
		t.Errorf("stripe = %v/%v, want bench defaults", m.Params.BedWidth, m.Params.AisleWidth)
	}
}

func TestDesignModelInlineEdit(t *testing.T) {
	m := NewDesignModel(layout.DefaultParams(), "plan.toml")

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Editing {
		t.Fatal("enter on a numeric row should open inline editing")
	}

	m = pressRune(t, m, '1')
	m = pressRune(t, m, '2')
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Editing {
		t.Error("enter should commit and close editing")
	}
	if m.Params.Width != 12 {
		t.Errorf("width = %v, want 12", m.Params.Width)
	}
}

func TestDesignModelEditEscapeKeepsValue(t *testing.T) {
	m := NewDesignModel(layout.DefaultParams(), "plan.toml")

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pressRune(t, m, '7')
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	if m.Editing {
		t.Error("escape should close editing")
	}
	if m.Params.Width != layout.DefaultWidth {
		t.Errorf("width = %v, want unchanged default", m.Params.Width)
	}
}

func TestDesignModelDPIClamps(t *testing.T) {
	p := layout.DefaultParams()
	p.ExportDPI = layout.MaxDPI
	m := NewDesignModel(p, "plan.toml")
	m.Cursor = fieldDPI

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Params.ExportDPI != layout.MaxDPI {
		t.Errorf("dpi = %d, want clamped at %d", m.Params.ExportDPI, layout.MaxDPI)
	}
}

func TestDesignModelExportQuits(t *testing.T) {
	m := NewDesignModel(layout.DefaultParams(), "plan.toml")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	dm := next.(DesignModel)
	if !dm.Export {
		t.Error("x should request an export")
	}
	if cmd == nil {
		t.Error("x should quit the program")
	}
}

func TestDesignModelViewShowsMetrics(t *testing.T) {
	m := NewDesignModel(layout.DefaultParams(), "plan.toml")
	view := m.View()

	for _, want := range []string{"Greenhouse Designer", "Width (m)", "beds", "5"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDesignModelViewWarnsOnZeroBeds(t *testing.T) {
	p := layout.DefaultParams()
	p.BedWidth = 0
	m := NewDesignModel(p, "plan.toml")

	if !strings.Contains(m.View(), "no beds fit") {
		t.Error("view should warn when no beds fit")
	}
}
