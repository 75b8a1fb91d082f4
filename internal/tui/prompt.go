// Package tui is the single-line quick roll prompt
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/quickroll-bot/internal/quickroll"
)

const maxInputLength = 100

// Evaluator parses and dispatches one line of input
type Evaluator interface {
	Evaluate(ctx context.Context, input string) *quickroll.Outcome
}

// Model is the Bubble Tea model for the quick roll prompt
type Model struct {
	ctx       context.Context
	evaluator Evaluator
	input     textinput.Model
	warning   string
	submitted string
	closed    bool
}

// NewModel creates a focused prompt
func NewModel(ctx context.Context, evaluator Evaluator) Model {
	ti := textinput.New()
	ti.Placeholder = "2d6+4 fir | perc 11 | raise a shield"
	ti.CharLimit = maxInputLength
	ti.Width = 40
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		ctx:       ctx,
		evaluator: evaluator,
		input:     ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.closed = true
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit closes on empty input or a dispatched command; rejections keep the prompt open
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.closed = true
		return m, tea.Quit
	}

	outcome := m.evaluator.Evaluate(m.ctx, value)
	if !outcome.OK() {
		m.warning = outcome.Reason()
		return m, nil
	}

	m.warning = ""
	m.submitted = value
	m.closed = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.closed {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("🎲 Quick Roll"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.warning != "" {
		b.WriteString(warningStyle.Render("⚠ " + m.warning))
		b.WriteString("\n")
	}
	b.WriteString(hotkeysStyle.Render("enter roll • esc close"))
	b.WriteString("\n")
	return b.String()
}

// Submitted returns the input that was dispatched, if any
func (m Model) Submitted() string {
	return m.submitted
}

// Warning returns the last rejection shown inline
func (m Model) Warning() string {
	return m.warning
}

// Closed reports whether the prompt is done
func (m Model) Closed() bool {
	return m.closed
}

// Run shows the prompt until it closes and returns the dispatched input
func Run(ctx context.Context, evaluator Evaluator) (string, error) {
	p := tea.NewProgram(NewModel(ctx, evaluator), tea.WithContext(ctx))
	result, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("TUI error: %w", err)
	}

	return result.(Model).Submitted(), nil
}
