package main

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	symbolW  = 5  // width of the gate symbol column
	tokenW   = 4  // width of the gate token column
	nameW    = 13 // width of the gate name column
	barW     = 28 // width of each outcome bar
	promptW  = 40 // width of the prompt panel
	labelGap = 2  // spaces between an outcome label and its bar
)

// Lipgloss styles used across the TUI.
var (
	promptPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#7aa2f7")).
				Padding(1).
				Width(promptW)

	referencePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#bb9af7")).
				Padding(0, 1)

	resultsPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#9ece6a")).
				Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	outcomeLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7dcfff"))

	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	unknownGateStyle = lipgloss.NewStyle().
				Strikethrough(true).
				Foreground(lipgloss.Color("#f7768e"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f7768e"))
)
