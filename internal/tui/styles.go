package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	prompt lipgloss.Style
	info   lipgloss.Style
	warn   lipgloss.Style
	err    lipgloss.Style
	title  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		prompt: r.NewStyle().Bold(true),
		info:   r.NewStyle().Faint(true),
		warn:   r.NewStyle().Foreground(lipgloss.Color("3")),
		err:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		title:  r.NewStyle().Bold(true),
	}
}
