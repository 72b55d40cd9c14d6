// ABOUTME: Pure translation from terminal key/mouse events to page input intents
// ABOUTME: Named keys map to DOM names, single printables are typed, the rest drop

package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lukasmoellerch/trome/internal/render"
)

// pageKeys maps terminal key chords to the DOM key names the page receives.
// Chords absent from this table and not a single printable rune are dropped.
var pageKeys = map[string]string{
	"enter":     "Enter",
	"backspace": "Backspace",
	"delete":    "Delete",
	"tab":       "Tab",
	"up":        "ArrowUp",
	"down":      "ArrowDown",
	"left":      "ArrowLeft",
	"right":     "ArrowRight",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PageUp",
	"pgdown":    "PageDown",
	" ":         "Space",
}

// keyIntent is a translated keyboard event. Exactly one of press or text
// is set.
type keyIntent struct {
	press string // DOM key name
	text  string // literal character to type
}

// translateKey converts a terminal key event into a page input intent.
// The second return is false when the event should be dropped.
func translateKey(msg tea.KeyMsg) (keyIntent, bool) {
	if name, ok := pageKeys[msg.String()]; ok {
		return keyIntent{press: name}, true
	}
	if msg.Type == tea.KeyRunes && !msg.Alt && !msg.Paste && len(msg.Runes) == 1 {
		return keyIntent{text: string(msg.Runes)}, true
	}
	return keyIntent{}, false
}

type mouseKind int

const (
	mouseMove mouseKind = iota
	mousePress
	mouseRelease
	mouseWheel
)

// mouseIntent is a translated mouse event. For wheel events dx/dy hold the
// tick direction; for the rest x/y hold page coordinates.
type mouseIntent struct {
	kind   mouseKind
	x, y   float64
	dx, dy int
}

// translateMouse converts a terminal mouse event into a page input intent.
// cols and rows bound the page area of the terminal; events on rows below
// it (the status bar) are dropped. srcW and srcH are the emulated viewport
// dimensions the cell coordinates scale to.
func translateMouse(msg tea.MouseMsg, cols, rows, srcW, srcH int) (mouseIntent, bool) {
	if cols <= 0 || rows <= 0 {
		return mouseIntent{}, false
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return mouseIntent{kind: mouseWheel, dy: -1}, true
	case tea.MouseButtonWheelDown:
		return mouseIntent{kind: mouseWheel, dy: 1}, true
	case tea.MouseButtonWheelLeft:
		return mouseIntent{kind: mouseWheel, dx: -1}, true
	case tea.MouseButtonWheelRight:
		return mouseIntent{kind: mouseWheel, dx: 1}, true
	}

	if msg.Y >= rows || msg.X >= cols {
		return mouseIntent{}, false
	}
	x, y := render.MapToSource(float64(msg.X), float64(msg.Y), cols, rows, srcW, srcH)

	switch msg.Action {
	case tea.MouseActionMotion:
		return mouseIntent{kind: mouseMove, x: x, y: y}, true
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return mouseIntent{kind: mousePress, x: x, y: y}, true
		}
	case tea.MouseActionRelease:
		return mouseIntent{kind: mouseRelease, x: x, y: y}, true
	}
	return mouseIntent{}, false
}
