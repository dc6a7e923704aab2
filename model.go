package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// keyMap holds the TUI key bindings.
type keyMap struct {
	Run  key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Run: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("⏎", "run"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// simDoneMsg carries the outcome of a background simulation run.
type simDoneMsg struct {
	result *Result
	err    error
}

// runSimulation runs the gate sequence off the UI goroutine.
func runSimulation(sim *Simulator, input string) tea.Cmd {
	return func() tea.Msg {
		res, err := sim.Run(input, nil)
		return simDoneMsg{result: res, err: err}
	}
}

// Model represents the TUI application state.
type Model struct {
	sim       *Simulator
	input     textinput.Model
	bar       progress.Model
	help      help.Model
	keys      keyMap
	result    *Result // last successful run
	lastErr   error
	running   bool
	runs      int
	width     int
	statusMsg string // transient status line (unknown gates, errors)
}

func initialModel(sim *Simulator, preset string) Model {
	ti := textinput.New()
	ti.Placeholder = "h0,h1"
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.SetValue(preset)
	ti.Focus()

	return Model{
		sim:   sim,
		input: ti,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barW),
			progress.WithoutPercentage(),
		),
		help: help.New(),
		keys: defaultKeys,
	}
}

// LastResult returns the most recent successful run, if any.
func (m Model) LastResult() *Result {
	return m.result
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case simDoneMsg:
		m.running = false
		if msg.err != nil {
			m.lastErr = msg.err
			m.statusMsg = "Error: " + msg.err.Error()
			return m, nil
		}
		m.result = msg.result
		m.lastErr = nil
		m.runs++
		if len(msg.result.Unknown) > 0 {
			quoted := make([]string, len(msg.result.Unknown))
			for i, tok := range msg.result.Unknown {
				quoted[i] = fmt.Sprintf("'%s'", tok)
			}
			m.statusMsg = "Skipped unknown gates: " + strings.Join(quoted, ", ")
		} else {
			m.statusMsg = fmt.Sprintf("Run %d: %d gates, %d shots", m.runs, len(msg.result.Tokens), msg.result.Shots)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Run):
			if m.running {
				return m, nil
			}
			m.running = true
			m.statusMsg = "Calculating the state vector..."
			return m, runSimulation(m.sim, m.input.Value())
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	promptPanel := m.renderPromptPanel()
	referencePanel := m.renderGateReference()
	resultsPanel := m.renderResultsPanel()

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, promptPanel, referencePanel)
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Quantum Simulator"),
		topRow,
		resultsPanel,
		m.help.View(m.keys),
	)
}
