// ABOUTME: Lipgloss styles shared by the UI models
// ABOUTME: Built once at startup; Styles() returns the palette

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// UIStyles holds the lipgloss styles used across the UI.
type UIStyles struct {
	Bold      lipgloss.Style
	Dim       lipgloss.Style
	Selection lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style

	StatusTitle  lipgloss.Style
	StatusURL    lipgloss.Style
	StatusDetail lipgloss.Style
	StatusNotice lipgloss.Style

	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	Prompt        lipgloss.Style
	Cursor        lipgloss.Style
}

var styles = buildStyles()

// Styles returns the UI style palette.
func Styles() UIStyles {
	return styles
}

func buildStyles() UIStyles {
	return UIStyles{
		Bold:      lipgloss.NewStyle().Bold(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Selection: lipgloss.NewStyle().Reverse(true),

		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),

		StatusTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		StatusURL:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		StatusDetail: lipgloss.NewStyle().Faint(true),
		StatusNotice: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

		OverlayBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		OverlayTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}
