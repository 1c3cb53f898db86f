package catalog

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	name    lipgloss.Style
	price   lipgloss.Style
	detail  lipgloss.Style
	meta    lipgloss.Style
	empty   lipgloss.Style
	section lipgloss.Style
	badge   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		price:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:   lipgloss.NewStyle().Faint(true),
		section: lipgloss.NewStyle().MarginTop(1),
		badge:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
