// Package tui implements fintrack's interactive menu mode: the numbered
// menu of the classic CLI rendered as a small bubbletea state machine
// (menu → prompt fields → show result).
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fintrack-cli/fintrack/internal/ledger"
)

// State represents the current state of the menu TUI.
type State int

const (
	StateMenu State = iota
	StateForm
	StateResult
)

// Config wires the menu to its collaborators.
type Config struct {
	Ledger *ledger.Ledger
	Symbol string
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36C5F0"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36C5F0"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E01E5A"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	dividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#333333"))
	menuItemStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// Model holds the menu TUI state.
type Model struct {
	cfg      Config
	action   *action
	output   string
	inputs   []textinput.Model
	actions  []action
	cursor   int
	field    int
	state    State
	quitting bool
}

// newModel creates the menu model with all actions registered.
func newModel(cfg Config) Model {
	return Model{
		cfg:     cfg,
		state:   StateMenu,
		actions: menuActions(),
	}
}

// Run starts the interactive menu and blocks until the user exits.
func Run(cfg Config) error {
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case StateMenu:
		return m.updateMenu(keyMsg)
	case StateForm:
		return m.updateForm(keyMsg)
	case StateResult:
		// Any key returns to the menu.
		m.state = StateMenu
		m.output = ""
		return m, nil
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "0", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.actions)-1 {
			m.cursor++
		}
	case "enter":
		return m.startAction(m.cursor)
	default:
		// Digit shortcuts mirror the classic numbered menu.
		if idx := digitIndex(msg.String()); idx >= 0 && idx < len(m.actions) {
			return m.startAction(idx)
		}
	}
	return m, nil
}

func (m Model) startAction(idx int) (tea.Model, tea.Cmd) {
	m.cursor = idx
	m.action = &m.actions[idx]

	if len(m.action.fields) == 0 {
		return m.runAction(nil)
	}

	m.inputs = make([]textinput.Model, len(m.action.fields))
	for i, f := range m.action.fields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.CharLimit = 100
		m.inputs[i] = ti
	}
	m.field = 0
	m.inputs[0].Focus()
	m.state = StateForm
	return m, textinput.Blink
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateMenu
		m.inputs = nil
		return m, nil
	case tea.KeyEnter:
		if m.field < len(m.inputs)-1 {
			m.inputs[m.field].Blur()
			m.field++
			m.inputs[m.field].Focus()
			return m, textinput.Blink
		}

		values := make([]string, len(m.inputs))
		for i := range m.inputs {
			values[i] = strings.TrimSpace(m.inputs[i].Value())
		}
		return m.runAction(values)
	default:
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	return m, cmd
}

func (m Model) runAction(values []string) (tea.Model, tea.Cmd) {
	output, err := m.action.run(m.cfg, values)
	if err != nil {
		output = errorStyle.Render("Error: " + err.Error())
	}
	m.output = output
	m.inputs = nil
	m.state = StateResult
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Thank you for using fintrack. Goodbye!\n"
	}

	switch m.state {
	case StateForm:
		return m.viewForm()
	case StateResult:
		return m.viewResult()
	default:
		return m.viewMenu()
	}
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("fintrack – Personal Finance Manager"))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", 42)))
	b.WriteString("\n")

	for i, a := range m.actions {
		cursor := "  "
		line := menuItemStyle.Render(a.name)
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
			line = cursorStyle.Render(a.name)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString(dividerStyle.Render(strings.Repeat("─", 42)))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("↑/↓ or digits to choose · enter to select · q to quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.action.name))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(m.action.fields[i].label))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("enter to continue · esc to cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewResult() string {
	var b strings.Builder
	b.WriteString(m.output)
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("press any key to return to the menu"))
	b.WriteString("\n")
	return b.String()
}

// digitIndex maps "1".."9" onto menu indexes 0..8, -1 otherwise.
func digitIndex(s string) int {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '1')
}
