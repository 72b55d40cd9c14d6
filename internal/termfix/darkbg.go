// ABOUTME: Pre-sets lipgloss dark background before Bubble Tea's init() sends OSC queries
// ABOUTME: Must be imported (with _) before any package that imports bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// Setting the background up front stops lipgloss from emitting
	// OSC 10/11 background queries. Their async responses would arrive
	// mid-stream and end up spliced into the half-block frame output.
	//
	// This package must not import bubbletea, directly or transitively,
	// so init order guarantees this runs before its init() asks
	// lipgloss.HasDarkBackground().
	lipgloss.SetHasDarkBackground(true)
}
