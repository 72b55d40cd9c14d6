// ABOUTME: Keybinding actions and default chords for the browser UI
// ABOUTME: User overrides arrive via the keybindings map in settings.json

package config

// KeyAction represents a UI action that can be bound to keys. Keys the
// page itself consumes (arrows, typing, PageUp/PageDown) are not actions;
// only chrome-level controls live here.
type KeyAction string

const (
	ActionOpenURL      KeyAction = "openUrl"
	ActionOpenPalette  KeyAction = "openPalette"
	ActionHelp         KeyAction = "help"
	ActionQuit         KeyAction = "quit"
	ActionBack         KeyAction = "back"
	ActionForward      KeyAction = "forward"
	ActionReload       KeyAction = "reload"
	ActionScreenshot   KeyAction = "screenshot"
	ActionZoomIn       KeyAction = "zoomIn"
	ActionZoomOut      KeyAction = "zoomOut"
	ActionZoomReset    KeyAction = "zoomReset"
	ActionClearCookies KeyAction = "clearCookies"
)

// Keybindings maps actions to the key chords that trigger them.
type Keybindings struct {
	Bindings map[KeyAction][]string
}

// NewKeybindings creates Keybindings with the default chords.
func NewKeybindings() *Keybindings {
	kb := &Keybindings{
		Bindings: make(map[KeyAction][]string),
	}
	kb.setDefaultBindings()
	return kb
}

func (kb *Keybindings) setDefaultBindings() {
	kb.Bindings[ActionOpenURL] = []string{"ctrl+l"}
	kb.Bindings[ActionOpenPalette] = []string{"ctrl+k"}
	kb.Bindings[ActionHelp] = []string{"f1"}
	kb.Bindings[ActionQuit] = []string{"ctrl+q", "ctrl+c"}
	kb.Bindings[ActionBack] = []string{"alt+left"}
	kb.Bindings[ActionForward] = []string{"alt+right"}
	kb.Bindings[ActionReload] = []string{"ctrl+r"}
	kb.Bindings[ActionScreenshot] = []string{"ctrl+s"}
	kb.Bindings[ActionZoomIn] = []string{"alt++", "alt+="}
	kb.Bindings[ActionZoomOut] = []string{"alt+-"}
	kb.Bindings[ActionZoomReset] = []string{"alt+0"}
	kb.Bindings[ActionClearCookies] = nil // palette only by default
}

// Merge applies user overrides for known actions. Unknown action names
// are ignored so stale config files do not break startup.
func (kb *Keybindings) Merge(overrides map[string][]string) {
	for actionName, keys := range overrides {
		action := KeyAction(actionName)
		if _, ok := kb.Bindings[action]; ok {
			kb.Bindings[action] = keys
		}
	}
}

// GetBindings returns the chords for an action.
func (kb *Keybindings) GetBindings(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}
