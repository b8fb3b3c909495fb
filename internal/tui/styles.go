package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles of the calculator screen.
type Styles struct {
	Title      lipgloss.Style
	Group      lipgloss.Style
	GroupTitle lipgloss.Style
	Label      lipgloss.Style
	Focused    lipgloss.Style
	Result     lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),
		Group: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(36),
		GroupTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Label: lipgloss.NewStyle().
			Width(10),
		Focused: lipgloss.NewStyle().
			Width(10).
			Foreground(lipgloss.Color("39")),
		Result: lipgloss.NewStyle().
			Bold(true).
			Width(34).
			Align(lipgloss.Center),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}
