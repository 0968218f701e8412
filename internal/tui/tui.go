// Package tui provides the terminal implementations of the prompt and
// confirmation dialogs.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okanri/fman/internal/dialog"
)

// --- Styles ---
var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	cancelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	activeStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Terminal implements dialog.Prompter and dialog.Confirmer with bubbletea
// programs running in the invoking terminal.
type Terminal struct{}

// Input runs a single-line text prompt.
func (Terminal) Input(opts dialog.InputOptions) (string, bool, error) {
	m := newPromptModel(opts)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", false, fmt.Errorf("failed to run input prompt: %w", err)
	}
	pm := final.(promptModel)
	if pm.cancelled || pm.input.Value() == "" {
		return "", false, nil
	}
	return pm.input.Value(), true, nil
}

// Confirm runs a modal yes/no choice with a single affirmative action.
func (Terminal) Confirm(message, action string) (bool, error) {
	m := confirmModel{message: message, action: action}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, fmt.Errorf("failed to run confirm dialog: %w", err)
	}
	return final.(confirmModel).confirmed, nil
}

// --- Prompt model ---

type promptModel struct {
	label     string
	input     textinput.Model
	cancelled bool
	done      bool
}

func newPromptModel(opts dialog.InputOptions) promptModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50
	if opts.Default != "" {
		ti.SetValue(opts.Default)
		ti.CursorEnd()
	}
	return promptModel{label: opts.Prompt, input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(promptStyle.Render(m.label))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("enter: accept • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// --- Confirm model ---

type confirmModel struct {
	message   string
	action    string
	cursor    int // 0 = action, 1 = cancel
	confirmed bool
	done      bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "right", "tab", "h", "l":
		m.cursor = 1 - m.cursor
	case "y":
		m.confirmed = true
		m.done = true
		return m, tea.Quit
	case "n", "esc", "ctrl+c", "q":
		m.done = true
		return m, tea.Quit
	case "enter":
		m.confirmed = m.cursor == 0
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	action := actionStyle.Render(m.action)
	cancel := cancelStyle.Render("Cancel")
	if m.cursor == 0 {
		action = activeStyle.Render(action)
	} else {
		cancel = activeStyle.Render(cancel)
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(m.message))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  [ %s ]   [ %s ]\n", action, cancel))
	b.WriteString(faintStyle.Render("enter: select • y/n: shortcut • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}
