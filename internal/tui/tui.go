// Package tui is the interactive hand calculator.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/niuniu/internal/deck"
	"github.com/lox/niuniu/internal/display"
	"github.com/lox/niuniu/niuniu"
)

const helpText = "Enter 5 cards (1-10, A, J, Q, K) • Enter to evaluate • 'quit' or Ctrl+C to exit"

// Model is the Bubble Tea model for the calculator. Each submitted line is
// evaluated independently; the scroll-back only lives for the session.
type Model struct {
	logger *log.Logger

	input    textinput.Model
	viewport viewport.Model
	entries  []string

	width    int
	height   int
	quitting bool
}

// New creates a calculator model
func New(logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. K 5 5 Q J"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

	vp := viewport.New(10, 5)

	return &Model{
		logger:   logger.WithPrefix("tui"),
		input:    ti,
		viewport: vp,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-2, 1)
		m.viewport.Height = max(msg.Height-6, 1)
		m.logger.Debug("Resized", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if m.Submit(line) {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Submit evaluates one line of input and records the outcome. It returns
// true when the line asks to quit.
func (m *Model) Submit(line string) (quit bool) {
	switch strings.ToLower(line) {
	case "":
		return false
	case "quit", "exit", "q":
		return true
	}

	h, err := deck.ParseHand(line)
	if err != nil {
		m.logger.Debug("Rejected input", "input", line, "error", err)
		m.addEntry(display.ErrorStyle.Render(err.Error()))
		return false
	}

	r := niuniu.EvaluateHand(h)
	m.logger.Debug("Evaluated hand", "hand", display.FormatHand(h), "result", display.Summary(r))
	m.addEntry(display.RenderResult(h, r))
	return false
}

func (m *Model) addEntry(s string) {
	m.entries = append(m.entries, strings.TrimRight(s, "\n"))
	m.viewport.SetContent(strings.Join(m.entries, "\n\n"))
	m.viewport.GotoBottom()
}

// Entries returns the rendered results so far
func (m *Model) Entries() []string {
	return m.entries
}

// View renders the calculator
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(display.TitleStyle.Render("Niu Niu Calculator · 3 ↔ 6 interchangeable"))
	b.WriteString("\n\n")
	if len(m.entries) > 0 {
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(display.InfoStyle.Render(helpText))
	return b.String()
}

// Run starts the calculator on the terminal and blocks until it exits
func Run(logger *log.Logger) error {
	_, err := tea.NewProgram(New(logger), tea.WithAltScreen()).Run()
	return err
}
