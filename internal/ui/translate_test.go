// ABOUTME: Tests for the key and mouse event translation layer
// ABOUTME: Verifies the named-key table, printable pass-through, and drop rules

package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTranslateKeyNamed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, "Enter"},
		{tea.KeyMsg{Type: tea.KeyBackspace}, "Backspace"},
		{tea.KeyMsg{Type: tea.KeyDelete}, "Delete"},
		{tea.KeyMsg{Type: tea.KeyTab}, "Tab"},
		{tea.KeyMsg{Type: tea.KeyUp}, "ArrowUp"},
		{tea.KeyMsg{Type: tea.KeyDown}, "ArrowDown"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "ArrowLeft"},
		{tea.KeyMsg{Type: tea.KeyRight}, "ArrowRight"},
		{tea.KeyMsg{Type: tea.KeyHome}, "Home"},
		{tea.KeyMsg{Type: tea.KeyEnd}, "End"},
		{tea.KeyMsg{Type: tea.KeyPgUp}, "PageUp"},
		{tea.KeyMsg{Type: tea.KeyPgDown}, "PageDown"},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, "Space"},
	}
	for _, tt := range tests {
		intent, ok := translateKey(tt.msg)
		if !ok {
			t.Errorf("translateKey(%s) dropped, want press %q", tt.msg.String(), tt.want)
			continue
		}
		if intent.press != tt.want {
			t.Errorf("translateKey(%s) press = %q, want %q", tt.msg.String(), intent.press, tt.want)
		}
		if intent.text != "" {
			t.Errorf("translateKey(%s) also set text %q", tt.msg.String(), intent.text)
		}
	}
}

func TestTranslateKeyPrintable(t *testing.T) {
	t.Parallel()
	for _, r := range []rune{'a', 'Z', '7', '/', 'é', '好'} {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		intent, ok := translateKey(msg)
		if !ok {
			t.Errorf("printable %q dropped", r)
			continue
		}
		if intent.text != string(r) {
			t.Errorf("printable %q gave text %q", r, intent.text)
		}
	}
}

func TestTranslateKeyDropped(t *testing.T) {
	t.Parallel()
	dropped := []tea.KeyMsg{
		{Type: tea.KeyCtrlX},
		{Type: tea.KeyEsc},
		{Type: tea.KeyF5},
		{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
		{Type: tea.KeyRunes, Runes: []rune("pasted text"), Paste: true},
		{Type: tea.KeyRunes, Runes: []rune("ab")},
	}
	for _, msg := range dropped {
		if intent, ok := translateKey(msg); ok {
			t.Errorf("translateKey(%s) = %+v, want drop", msg.String(), intent)
		}
	}
}

func TestTranslateMouseWheel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		button tea.MouseButton
		dx, dy int
	}{
		{tea.MouseButtonWheelUp, 0, -1},
		{tea.MouseButtonWheelDown, 0, 1},
		{tea.MouseButtonWheelLeft, -1, 0},
		{tea.MouseButtonWheelRight, 1, 0},
	}
	for _, tt := range tests {
		msg := tea.MouseMsg{Action: tea.MouseActionPress, Button: tt.button}
		intent, ok := translateMouse(msg, 80, 24, 640, 384)
		if !ok || intent.kind != mouseWheel {
			t.Errorf("wheel %v not translated: %+v ok=%v", tt.button, intent, ok)
			continue
		}
		if intent.dx != tt.dx || intent.dy != tt.dy {
			t.Errorf("wheel %v = (%d, %d), want (%d, %d)", tt.button, intent.dx, intent.dy, tt.dx, tt.dy)
		}
	}
}

func TestTranslateMouseCoordinates(t *testing.T) {
	t.Parallel()
	// 4x4 cell page area scaled to a 16x32 viewport: each cell is 4x8 px.
	msg := tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionMotion}
	intent, ok := translateMouse(msg, 4, 4, 16, 32)
	if !ok || intent.kind != mouseMove {
		t.Fatalf("motion not translated: %+v ok=%v", intent, ok)
	}
	if intent.x != 8 || intent.y != 24 {
		t.Errorf("mapped to (%v, %v), want (8, 24)", intent.x, intent.y)
	}
}

func TestTranslateMousePressRelease(t *testing.T) {
	t.Parallel()
	press := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	intent, ok := translateMouse(press, 4, 4, 16, 32)
	if !ok || intent.kind != mousePress {
		t.Errorf("left press = %+v ok=%v", intent, ok)
	}

	release := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease}
	intent, ok = translateMouse(release, 4, 4, 16, 32)
	if !ok || intent.kind != mouseRelease {
		t.Errorf("release = %+v ok=%v", intent, ok)
	}

	right := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if intent, ok := translateMouse(right, 4, 4, 16, 32); ok {
		t.Errorf("right press translated: %+v", intent)
	}
}

func TestTranslateMouseOutsidePageArea(t *testing.T) {
	t.Parallel()
	// Row 4 is below a 4-row page area (the status bar line).
	statusRow := tea.MouseMsg{X: 1, Y: 4, Action: tea.MouseActionMotion}
	if intent, ok := translateMouse(statusRow, 4, 4, 16, 32); ok {
		t.Errorf("status bar motion translated: %+v", intent)
	}
	if _, ok := translateMouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion}, 0, 0, 16, 32); ok {
		t.Error("zero-size page area should drop events")
	}
}
