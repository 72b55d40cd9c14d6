// ABOUTME: URLInputModel is a single-line text input overlay for entering a URL
// ABOUTME: Enter submits the raw text; editing keys work on a rune buffer

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lukasmoellerch/trome/pkg/termwidth"
)

// URLSubmitMsg carries the raw text entered when the user pressed enter.
type URLSubmitMsg struct{ Raw string }

// URLInputModel is the go-to-URL dialog. It owns a rune buffer and cursor;
// value semantics like the other overlays.
type URLInputModel struct {
	runes  []rune
	cursor int
	width  int
}

// NewURLInputModel creates the dialog prefilled with initial, cursor at the
// end.
func NewURLInputModel(initial string, width int) URLInputModel {
	r := []rune(initial)
	return URLInputModel{runes: r, cursor: len(r), width: width}
}

// Init returns nil; no startup commands needed.
func (m URLInputModel) Init() tea.Cmd { return nil }

// Update handles editing keys, submit, and dismiss.
func (m URLInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m URLInputModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := strings.TrimSpace(string(m.runes))
		if raw == "" {
			return m, func() tea.Msg { return DismissOverlayMsg{} }
		}
		return m, func() tea.Msg { return URLSubmitMsg{Raw: raw} }
	case "esc":
		return m, func() tea.Msg { return DismissOverlayMsg{} }
	case "backspace":
		if m.cursor > 0 {
			m.runes = append(m.runes[:m.cursor-1], m.runes[m.cursor:]...)
			m.cursor--
		}
	case "delete":
		if m.cursor < len(m.runes) {
			m.runes = append(m.runes[:m.cursor], m.runes[m.cursor+1:]...)
		}
	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right":
		if m.cursor < len(m.runes) {
			m.cursor++
		}
	case "home", "ctrl+a":
		m.cursor = 0
	case "end", "ctrl+e":
		m.cursor = len(m.runes)
	case "ctrl+u":
		m.runes = m.runes[:0]
		m.cursor = 0
	default:
		if msg.Type == tea.KeyRunes {
			m.runes = append(m.runes[:m.cursor], append(append([]rune{}, msg.Runes...), m.runes[m.cursor:]...)...)
			m.cursor += len(msg.Runes)
		}
	}
	return m, nil
}

// Value returns the current input text.
func (m URLInputModel) Value() string {
	return string(m.runes)
}

// View renders the dialog box with a block cursor at the edit position.
func (m URLInputModel) View() string {
	s := Styles()

	boxWidth := 64
	if m.width > 0 && boxWidth > m.width-4 {
		boxWidth = max(m.width-4, 24)
	}
	innerWidth := boxWidth - 2
	fieldWidth := boxWidth - 4

	var field strings.Builder
	field.WriteString(s.Prompt.Render("> "))
	before := string(m.runes[:m.cursor])
	after := ""
	cursorCh := " "
	if m.cursor < len(m.runes) {
		cursorCh = string(m.runes[m.cursor])
		after = string(m.runes[m.cursor+1:])
	}
	field.WriteString(before)
	field.WriteString(s.Cursor.Render(cursorCh))
	field.WriteString(after)

	var b strings.Builder
	writeBoxTop(&b, s, " Open URL ", innerWidth)
	writeBoxLine(&b, s, termwidth.Truncate(field.String(), fieldWidth), fieldWidth)
	writeBoxLine(&b, s, s.Dim.Render("enter: go   esc: cancel"), fieldWidth)
	writeBoxBottom(&b, s, innerWidth)
	return b.String()
}
