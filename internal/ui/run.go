// ABOUTME: Entry point for the Bubble Tea UI
// ABOUTME: Creates the tea.Program with alt-screen and mouse tracking, blocks until exit

package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the UI and blocks until the user quits. The browser in deps
// must already be launched and pointed at the start URL.
func Run(deps AppDeps) error {
	m := NewAppModel(deps)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
