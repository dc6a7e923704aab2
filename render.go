package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given visual width.
func padCenter(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	total := width - w
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// renderTokens colours each token of the pending input: known gates in the
// gate colour, unknown ones struck through.
func renderTokens(input string) string {
	if strings.TrimSpace(input) == "" {
		return dimStyle.Render("(no gates)")
	}
	tokens := ParseGateSequence(input)
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		if _, ok := lookupGate(tok); ok {
			parts[i] = gateStyle.Render(tok)
		} else {
			shown := tok
			if shown == "" {
				shown = "∅"
			}
			parts[i] = unknownGateStyle.Render(shown)
		}
	}
	return strings.Join(parts, dimStyle.Render(" → "))
}

// ──────────────────────────── Panels ────────────────────────────

// renderPromptPanel renders the gate sequence input with a token preview.
func (m Model) renderPromptPanel() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Enter gate seq"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(gateTokenList()))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(renderTokens(m.input.Value()))

	if m.statusMsg != "" {
		sb.WriteString("\n\n")
		if m.lastErr != nil {
			sb.WriteString(errorStyle.Render(m.statusMsg))
		} else {
			sb.WriteString(statusStyle.Render(m.statusMsg))
		}
	}
	return promptPanelStyle.Render(sb.String())
}

// renderGateReference renders the fixed gate table.
func (m Model) renderGateReference() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Gates"))
	sb.WriteString("\n")
	for i, g := range gateTable {
		sb.WriteString(gateStyle.Render(padCenter(g.symbol, symbolW)))
		sb.WriteString(" ")
		sb.WriteString(fmt.Sprintf("%-*s", tokenW, g.token))
		sb.WriteString(fmt.Sprintf("%-*s", nameW, g.name))
		sb.WriteString(dimStyle.Render(g.description))
		if i < len(gateTable)-1 {
			sb.WriteString("\n")
		}
	}
	return referencePanelStyle.Render(sb.String())
}

// renderResultsPanel renders the labelled counts with one bar per outcome.
func (m Model) renderResultsPanel() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Results"))
	sb.WriteString("\n")

	res := m.result
	if res == nil {
		sb.WriteString(dimStyle.Render("Press ⏎ to run the sequence."))
		return resultsPanelStyle.Render(sb.String())
	}

	sb.WriteString(dimStyle.Render(fmt.Sprintf("Running %d iterations... seed %d", res.Shots, res.Seed)))
	sb.WriteString("\n")
	for _, b := range displayOrder {
		frac := float64(res.Counts[b]) / float64(res.Shots)
		sb.WriteString(outcomeLabelStyle.Render(b.Label() + ":"))
		sb.WriteString(strings.Repeat(" ", labelGap))
		sb.WriteString(m.bar.ViewAs(frac))
		sb.WriteString(" ")
		sb.WriteString(countStyle.Render(fmt.Sprintf("[%d]", res.Counts[b])))
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  p=%.4f", res.Probabilities[b])))
		sb.WriteString("\n")
	}
	if dropped := res.Dropped(); dropped > 0 {
		sb.WriteString(errorStyle.Render(fmt.Sprintf("%d shots fell outside every bucket", dropped)))
		sb.WriteString("\n")
	}
	return resultsPanelStyle.Render(strings.TrimSuffix(sb.String(), "\n"))
}
