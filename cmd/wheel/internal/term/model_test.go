package term

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/wheel/cmd/wheel/internal/config"
	"github.com/go-drift/wheel/pkg/datepicker"
	wheeltest "github.com/go-drift/wheel/pkg/testing"
)

var today = time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

func newModel(t *testing.T) (Model, *wheeltest.FakeClock) {
	t.Helper()
	clk := wheeltest.UseFakeClock(t)
	m, err := New(config.Default(), today)
	if err != nil {
		t.Fatal(err)
	}
	return m, clk
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

func TestView(t *testing.T) {
	m, _ := newModel(t)
	view := m.View()
	for _, want := range []string{"Select date", "2022", "2024", "2026", "5", "15", "enter OK", "esc Cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "2027") {
		t.Errorf("view shows more than %d rows:\n%s", VisibleRows, view)
	}
}

func TestViewBoundedEdge(t *testing.T) {
	wheeltest.UseFakeClock(t)
	cfg := config.Default()
	cfg.Picker.Min = "2024-01-01"
	m, err := New(cfg, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if view := m.View(); strings.Contains(view, "2023") || !strings.Contains(view, "2025") {
		t.Errorf("unexpected rows around the lower bound:\n%s", view)
	}
}

func TestKeysMoveFocusedColumn(t *testing.T) {
	m, clk := newModel(t)
	m, _ = press(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyTab},
	)
	if err := wheeltest.PumpAndSettle(clk, 2*time.Second); err != nil {
		t.Fatal(err)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if err := wheeltest.PumpAndSettle(clk, 2*time.Second); err != nil {
		t.Fatal(err)
	}
	if m.Scene().Focus() != 1 {
		t.Errorf("focus = %d, want 1", m.Scene().Focus())
	}
	if got := m.Scene().Picker.SelectedDate(); got != (datepicker.Date{Year: 2025, Month: 4, Day: 15}) {
		t.Errorf("SelectedDate() = %v, want 2025-04-15", got)
	}
}

func TestEnterConfirms(t *testing.T) {
	m, _ := newModel(t)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("enter should quit")
	}
	if r := m.Result(); r == nil || *r != (datepicker.Date{Year: 2024, Month: 5, Day: 15}) {
		t.Errorf("Result() = %v", r)
	}
	if m.View() != "" {
		t.Error("view should be empty once done")
	}
}

func TestEscapeCancels(t *testing.T) {
	m, _ := newModel(t)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if m.Result() != nil {
		t.Errorf("Result() = %v, want nil", m.Result())
	}
}

func TestTickStepsAnimations(t *testing.T) {
	m, clk := newModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	for i := 0; i < 40; i++ {
		clk.Advance(FrameInterval)
		next, cmd := m.Update(tickMsg(clk.Now()))
		m = next.(Model)
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
	}
	if got := m.Scene().Picker.SelectedDate().Year; got != 2025 {
		t.Errorf("year = %d, want 2025", got)
	}
}
