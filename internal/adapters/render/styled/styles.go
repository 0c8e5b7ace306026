package styled

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	track      lipgloss.Style
	session    lipgloss.Style
	clock      lipgloss.Style
	talk       lipgloss.Style
	label      lipgloss.Style
	lightning  lipgloss.Style
	event      lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		track:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		session:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		clock:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		talk:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		lightning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		event:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("159")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
