// ABOUTME: Tests for the URL input dialog overlay
// ABOUTME: Covers editing keys, prefill, submit, and dismiss behavior

package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(t *testing.T, m URLInputModel, text string) URLInputModel {
	t.Helper()
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(URLInputModel)
	}
	return m
}

func TestURLInputTypeAndSubmit(t *testing.T) {
	t.Parallel()
	m := NewURLInputModel("", 80)
	m = typeInto(t, m, "example.com")

	if m.Value() != "example.com" {
		t.Fatalf("value = %q", m.Value())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	msg, ok := cmd().(URLSubmitMsg)
	if !ok || msg.Raw != "example.com" {
		t.Errorf("submit sent %+v, want URLSubmitMsg{example.com}", msg)
	}
}

func TestURLInputPrefill(t *testing.T) {
	t.Parallel()
	m := NewURLInputModel("https://example.com/", 80)
	if m.Value() != "https://example.com/" {
		t.Fatalf("prefill = %q", m.Value())
	}
	// Cursor starts at the end, so typing appends.
	m = typeInto(t, m, "x")
	if m.Value() != "https://example.com/x" {
		t.Errorf("after typing, value = %q", m.Value())
	}
}

func TestURLInputEditingKeys(t *testing.T) {
	t.Parallel()
	m := NewURLInputModel("abc", 80)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updated.(URLInputModel)
	if m.Value() != "ab" {
		t.Fatalf("backspace gave %q", m.Value())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m = updated.(URLInputModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	m = updated.(URLInputModel)
	if m.Value() != "b" {
		t.Fatalf("home+delete gave %q", m.Value())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(URLInputModel)
	m = typeInto(t, m, "z")
	if m.Value() != "bz" {
		t.Errorf("right+type gave %q", m.Value())
	}
}

func TestURLInputCtrlUClears(t *testing.T) {
	t.Parallel()
	m := NewURLInputModel("https://example.com/", 80)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	m = updated.(URLInputModel)
	if m.Value() != "" {
		t.Errorf("ctrl+u left %q", m.Value())
	}
}

func TestURLInputEmptySubmitDismisses(t *testing.T) {
	t.Parallel()
	m := NewURLInputModel("", 80)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on empty input produced no command")
	}
	if _, ok := cmd().(DismissOverlayMsg); !ok {
		t.Error("enter on empty input should dismiss, not submit")
	}
}

func TestURLInputEscDismisses(t *testing.T) {
	t.Parallel()
	m := NewURLInputModel("typed", 80)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc produced no command")
	}
	if _, ok := cmd().(DismissOverlayMsg); !ok {
		t.Error("esc did not send DismissOverlayMsg")
	}
}
