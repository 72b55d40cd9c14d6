// ABOUTME: Keymap manager with O(1) key-to-action lookup
// ABOUTME: Merges user overrides over defaults and formats the cheat sheet

package keymap

import (
	"fmt"
	"strings"

	"github.com/lukasmoellerch/trome/internal/config"
)

// ConflictInfo describes a binding conflict where multiple actions share a key.
type ConflictInfo struct {
	Key     string
	Actions []config.KeyAction
}

// Manager resolves key chords to actions. Chord strings use Bubble Tea's
// spelling ("ctrl+l", "alt+left", "f1"), so a KeyMsg's String() is the
// lookup key directly.
type Manager struct {
	bindings *config.Keybindings
	lookup   map[string]config.KeyAction
}

// New builds a Manager from the default bindings plus the overrides in
// settings, if any.
func New(settings *config.Settings) *Manager {
	kb := config.NewKeybindings()
	if settings != nil && len(settings.Keybindings) > 0 {
		kb.Merge(settings.Keybindings)
	}
	m := &Manager{bindings: kb}
	m.buildLookup()
	return m
}

// NewFromBindings creates a Manager from an existing Keybindings instance.
func NewFromBindings(kb *config.Keybindings) *Manager {
	m := &Manager{bindings: kb}
	m.buildLookup()
	return m
}

// ActionForKey returns the action bound to the chord, or "" if unbound.
func (m *Manager) ActionForKey(chord string) config.KeyAction {
	return m.lookup[chord]
}

// BindingsFor returns the chords bound to an action.
func (m *Manager) BindingsFor(action config.KeyAction) []string {
	return m.bindings.GetBindings(action)
}

// PrimaryBinding returns the first chord for an action, for display next
// to command names.
func (m *Manager) PrimaryBinding(action config.KeyAction) string {
	keys := m.bindings.GetBindings(action)
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// Conflicts detects chords bound to multiple actions.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]config.KeyAction)
	for action, keys := range m.bindings.Bindings {
		for _, k := range keys {
			keyActions[k] = append(keyActions[k], action)
		}
	}

	var conflicts []ConflictInfo
	for k, actions := range keyActions {
		if len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	return conflicts
}

// FormatAll renders every binding as a markdown table grouped by category,
// which the help overlay feeds through its markdown renderer.
func (m *Manager) FormatAll() string {
	var b strings.Builder

	categories := []struct {
		name    string
		actions []config.KeyAction
	}{
		{"Chrome", []config.KeyAction{
			config.ActionOpenURL, config.ActionOpenPalette,
			config.ActionHelp, config.ActionQuit,
		}},
		{"Navigation", []config.KeyAction{
			config.ActionBack, config.ActionForward, config.ActionReload,
		}},
		{"View", []config.KeyAction{
			config.ActionZoomIn, config.ActionZoomOut, config.ActionZoomReset,
			config.ActionScreenshot,
		}},
		{"Session", []config.KeyAction{
			config.ActionClearCookies,
		}},
	}

	for _, cat := range categories {
		fmt.Fprintf(&b, "## %s\n\n", cat.name)
		for _, action := range cat.actions {
			keys := m.bindings.GetBindings(action)
			if len(keys) == 0 {
				continue
			}
			fmt.Fprintf(&b, "- `%s`: %s\n", strings.Join(keys, "`, `"), action)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Manager) buildLookup() {
	m.lookup = make(map[string]config.KeyAction, len(m.bindings.Bindings)*2)
	for action, keys := range m.bindings.Bindings {
		for _, k := range keys {
			m.lookup[k] = action
		}
	}
}
