// ABOUTME: HelpModel renders the key bindings and command list as an overlay
// ABOUTME: Markdown source styled through glamour; esc or q closes it

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/lukasmoellerch/trome/internal/commands"
	"github.com/lukasmoellerch/trome/internal/keymap"
)

// HelpModel is the help overlay. The markdown is rendered once at
// construction; the model just displays it.
type HelpModel struct {
	rendered string
}

// NewHelpModel builds the help text from the keymap and command registry
// and renders it for the given terminal width.
func NewHelpModel(km *keymap.Manager, reg *commands.Registry, version string, width int) HelpModel {
	md := buildHelpMarkdown(km, reg, version)

	wrap := 72
	if width > 0 && wrap > width-4 {
		wrap = max(width-4, 40)
	}

	return HelpModel{rendered: renderMarkdown(md, wrap)}
}

// Init returns nil; no startup commands needed.
func (m HelpModel) Init() tea.Cmd { return nil }

// Update closes the overlay on esc, q, or enter.
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "enter", "f1":
			return m, func() tea.Msg { return DismissOverlayMsg{} }
		}
	}
	return m, nil
}

// View returns the pre-rendered help text.
func (m HelpModel) View() string {
	return m.rendered
}

func buildHelpMarkdown(km *keymap.Manager, reg *commands.Registry, version string) string {
	var b strings.Builder
	b.WriteString("# Help\n\n")
	if version != "" {
		fmt.Fprintf(&b, "trome %s\n\n", version)
	}
	if km != nil {
		b.WriteString(km.FormatAll())
		b.WriteString("\n")
	}
	if reg != nil {
		b.WriteString("## Commands\n\n")
		for _, cmd := range reg.List() {
			if cmd.Shortcut != "" {
				fmt.Fprintf(&b, "- **%s** (`%s`): %s\n", cmd.Name, cmd.Shortcut, cmd.Description)
			} else {
				fmt.Fprintf(&b, "- **%s**: %s\n", cmd.Name, cmd.Description)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("Keys that are not bound above go to the page.\n")
	return b.String()
}

// renderMarkdown styles markdown for the terminal, falling back to the raw
// text when glamour fails.
func renderMarkdown(md string, wrap int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n ")
}
