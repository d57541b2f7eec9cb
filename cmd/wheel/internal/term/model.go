// Package term hosts the date picker dialog in a terminal.
package term

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/wheel/cmd/wheel/internal/config"
	"github.com/go-drift/wheel/cmd/wheel/internal/scene"
	"github.com/go-drift/wheel/pkg/animation"
	"github.com/go-drift/wheel/pkg/datepicker"
	"github.com/go-drift/wheel/pkg/wheel"
)

// FrameInterval is how often running animations are stepped.
const FrameInterval = 16 * time.Millisecond

// VisibleRows is the number of rows shown per column. It is odd so the
// selected row sits in the middle.
const VisibleRows = 5

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Styles holds the lipgloss styles used by View.
type Styles struct {
	Title    lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Column   lipgloss.Style
	Focused  lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles derives styles from the scene's wheel colors.
func DefaultStyles(s *scene.Scene) Styles {
	st := s.Columns()[0].Wheel.Style()
	accent := lipgloss.Color(s.AccentColor.Hex())
	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.DividerColor.Hex())).
		Padding(0, 1).
		Width(8).
		Align(lipgloss.Center)
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(s.TitleColor.Hex())).MarginBottom(1),
		Row:      lipgloss.NewStyle().Foreground(lipgloss.Color(st.TextColor.Hex())),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(st.SelectedTextColor.Hex())),
		Column:   column,
		Focused:  column.BorderForeground(accent),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color(st.TextColor.Hex())).MarginTop(1),
	}
}

// Model is a bubbletea model around a scene.
type Model struct {
	scene  *scene.Scene
	styles Styles
	result *datepicker.Date
	done   bool
}

// New builds the dialog for cfg.
func New(cfg *config.Config, today time.Time) (Model, error) {
	s, err := scene.New(cfg, today, nil)
	if err != nil {
		return Model{}, err
	}
	return Model{scene: s, styles: DefaultStyles(s)}, nil
}

// Scene returns the hosted scene.
func (m Model) Scene() *scene.Scene { return m.scene }

// Result returns the confirmed date, or nil if the dialog was cancelled or
// is still open.
func (m Model) Result() *datepicker.Date { return m.result }

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		animation.StepTickers()
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.scene.Step(m.scene.Focus(), -1)
		case "down", "j":
			m.scene.Step(m.scene.Focus(), 1)
		case "left", "h", "shift+tab":
			m.scene.MoveFocus(-1)
		case "right", "l", "tab":
			m.scene.MoveFocus(1)
		case "enter":
			d := m.scene.Picker.Confirm()
			m.result = &d
			m.done = true
			return m, tea.Quit
		case "esc", "q", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scene.Step(m.scene.Focus(), -1)
		case tea.MouseButtonWheelDown:
			m.scene.Step(m.scene.Focus(), 1)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	cfg := m.scene.Config()
	var cols []string
	for i, c := range m.scene.Columns() {
		style := m.styles.Column
		if i == m.scene.Focus() {
			style = m.styles.Focused
		}
		cols = append(cols, style.Render(m.column(c.Wheel)))
	}
	var b strings.Builder
	if cfg.ShowTitle {
		b.WriteString(m.styles.Title.Render(cfg.Title))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ scroll • ←/→ column • enter " + cfg.ConfirmText + " • esc " + cfg.CancelText))
	return b.String()
}

// column renders the rows around the selected index of w.
func (m Model) column(w *wheel.Wheel) string {
	entries := w.Entries()
	current := w.CurrentIndex()
	half := VisibleRows / 2
	lines := make([]string, 0, VisibleRows)
	for i := current - half; i <= current+half; i++ {
		text, ok := wheel.EntryAt(entries, i, w.Cyclic())
		switch {
		case !ok:
			lines = append(lines, "")
		case i == current:
			lines = append(lines, m.styles.Selected.Render(text))
		default:
			lines = append(lines, m.styles.Row.Render(text))
		}
	}
	return strings.Join(lines, "\n")
}

// Run shows the dialog on the terminal's alternate screen and blocks until
// it is confirmed or cancelled.
func Run(cfg *config.Config) (*datepicker.Date, error) {
	m, err := New(cfg, time.Now())
	if err != nil {
		return nil, err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return nil, err
	}
	return final.(Model).Result(), nil
}
