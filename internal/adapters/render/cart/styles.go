package cart

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	item     lipgloss.Style
	quantity lipgloss.Style
	price    lipgloss.Style
	total    lipgloss.Style
	empty    lipgloss.Style
	section  lipgloss.Style
	status   lipgloss.Style
	warning  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		item:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		quantity: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		price:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		total:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		empty:    lipgloss.NewStyle().Faint(true),
		section:  lipgloss.NewStyle().MarginTop(1),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
