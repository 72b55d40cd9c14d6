// ABOUTME: PaletteModel is a fuzzy-filterable overlay listing palette commands
// ABOUTME: Typing filters, arrows navigate with wraparound, enter dispatches

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lukasmoellerch/trome/pkg/fuzzy"
	"github.com/lukasmoellerch/trome/pkg/termwidth"
)

const maxPaletteVisible = 10

// PaletteEntry describes one command for the palette list.
type PaletteEntry struct {
	Name        string
	Description string
	Shortcut    string
}

// PaletteSelectMsg is sent when the user presses enter on a command.
type PaletteSelectMsg struct{ Name string }

// PaletteModel is the command palette overlay. Value semantics.
type PaletteModel struct {
	entries  []PaletteEntry
	visible  []PaletteEntry
	selected int
	filter   string
	width    int
}

// NewPaletteModel creates a palette over the given entries.
func NewPaletteModel(entries []PaletteEntry, width int) PaletteModel {
	m := PaletteModel{entries: entries, width: width}
	m.applyFilter()
	return m
}

// Init returns nil; no startup commands needed.
func (m PaletteModel) Init() tea.Cmd { return nil }

// Update handles filtering and navigation keys.
func (m PaletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissOverlayMsg{} }
		case "enter":
			if name := m.Selected(); name != "" {
				return m, func() tea.Msg { return PaletteSelectMsg{Name: name} }
			}
			return m, nil
		case "up", "ctrl+p":
			m.moveUp()
			return m, nil
		case "down", "ctrl+n", "tab":
			m.moveDown()
			return m, nil
		case "backspace":
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.selected = 0
				m.applyFilter()
			}
			return m, nil
		}
		if msg.Type == tea.KeyRunes {
			m.filter += string(msg.Runes)
			m.selected = 0
			m.applyFilter()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// Selected returns the name of the highlighted command, or "".
func (m PaletteModel) Selected() string {
	if len(m.visible) == 0 {
		return ""
	}
	return m.visible[m.selected].Name
}

// View renders the filter line plus the visible window of matches.
func (m PaletteModel) View() string {
	s := Styles()

	boxWidth := 56
	if m.width > 0 && boxWidth > m.width-4 {
		boxWidth = max(m.width-4, 30)
	}
	innerWidth := boxWidth - 2
	contentWidth := boxWidth - 4

	var b strings.Builder
	writeBoxTop(&b, s, " Commands ", innerWidth)
	writeBoxLine(&b, s, s.Prompt.Render("> ")+m.filter+s.Cursor.Render(" "), contentWidth)

	if len(m.visible) == 0 {
		writeBoxLine(&b, s, s.Dim.Render("no matching command"), contentWidth)
		writeBoxBottom(&b, s, innerWidth)
		return b.String()
	}

	start, end := m.window()
	for i := start; i < end; i++ {
		entry := m.visible[i]
		line := fmt.Sprintf("%-18s", entry.Name)
		if entry.Shortcut != "" {
			line += s.Dim.Render(fmt.Sprintf("%-12s", entry.Shortcut))
		} else {
			line += strings.Repeat(" ", 12)
		}
		line += entry.Description
		line = termwidth.Truncate(line, contentWidth)
		if i == m.selected {
			line = s.Selection.Render(termwidth.Pad(line, contentWidth))
		}
		writeBoxLine(&b, s, line, contentWidth)
	}
	writeBoxBottom(&b, s, innerWidth)
	return b.String()
}

// window computes the visible slice bounds around the selection.
func (m PaletteModel) window() (int, int) {
	total := len(m.visible)
	if total <= maxPaletteVisible {
		return 0, total
	}
	start := m.selected - maxPaletteVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxPaletteVisible
	if end > total {
		end = total
		start = end - maxPaletteVisible
	}
	return start, end
}

func (m *PaletteModel) moveDown() {
	if len(m.visible) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.visible)
}

func (m *PaletteModel) moveUp() {
	if len(m.visible) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.visible)) % len(m.visible)
}

func (m *PaletteModel) applyFilter() {
	if m.filter == "" {
		m.visible = make([]PaletteEntry, len(m.entries))
		copy(m.visible, m.entries)
		return
	}

	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.Name
	}
	matches := fuzzy.Filter(m.filter, names)
	m.visible = make([]PaletteEntry, 0, len(matches))
	for _, match := range matches {
		m.visible = append(m.visible, m.entries[match.Index])
	}
}
