package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// TerminalNotifier renders loop steps as styled panels on the terminal.
type TerminalNotifier struct {
	w io.Writer

	plan    lipgloss.Style
	observe lipgloss.Style
	answer  lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{
		w:       w,
		plan:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		observe: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		answer:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("13")).Padding(0, 1),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (n *TerminalNotifier) Plan(content string) {
	fmt.Fprintln(n.w, n.plan.Render("📌 Plan: "+content))
}

func (n *TerminalNotifier) Observation(content string) {
	fmt.Fprintln(n.w, n.observe.Render("📡 Observation: "+content))
}

func (n *TerminalNotifier) Answer(content string) {
	fmt.Fprintln(n.w, n.answer.Render("🤖 Final Answer:\n"+content))
}

func (n *TerminalNotifier) ParseError(raw string) {
	fmt.Fprintln(n.w, n.failure.Render("⚠️ LLM response was not in expected JSON format."))
	fmt.Fprintln(n.w, raw)
}

func (n *TerminalNotifier) Warning(message string) {
	fmt.Fprintln(n.w, n.warning.Render(message))
}
