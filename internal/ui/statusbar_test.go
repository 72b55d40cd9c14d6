// ABOUTME: Tests for the status bar line rendering
// ABOUTME: Covers builder setters, width clamping, and conditional segments

package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lukasmoellerch/trome/pkg/termwidth"
)

func testStatusBar(width int) StatusBarModel {
	m := NewStatusBarModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: 24})
	return updated.(StatusBarModel)
}

func TestStatusBarShowsPageAndViewport(t *testing.T) {
	t.Parallel()
	m := testStatusBar(120).
		WithPage("Example Domain", "https://example.com").
		WithViewport(80, 24, 640, 384)

	view := m.View()
	for _, want := range []string{"Example Domain", "https://example.com", "80x24 640x384"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q: %q", want, view)
		}
	}
}

func TestStatusBarExactWidth(t *testing.T) {
	t.Parallel()
	m := testStatusBar(60).
		WithPage("Example", "https://example.com").
		WithViewport(80, 24, 640, 384)

	if got := termwidth.Visible(m.View()); got != 60 {
		t.Errorf("view width = %d, want 60", got)
	}
}

func TestStatusBarTruncatesLongTitle(t *testing.T) {
	t.Parallel()
	m := testStatusBar(40).
		WithPage(strings.Repeat("long title ", 20), "https://example.com/deeply/nested/path").
		WithViewport(80, 24, 640, 384)

	if got := termwidth.Visible(m.View()); got > 40 {
		t.Errorf("view width = %d, want <= 40", got)
	}
}

func TestStatusBarZoomShownOnlyWhenChanged(t *testing.T) {
	t.Parallel()
	m := testStatusBar(80).WithPage("t", "u")

	if strings.Contains(m.View(), "100%") {
		t.Error("default zoom rendered")
	}
	if view := m.WithZoom(1.2).View(); !strings.Contains(view, "120%") {
		t.Errorf("changed zoom missing: %q", view)
	}
}

func TestStatusBarNotice(t *testing.T) {
	t.Parallel()
	m := testStatusBar(80).WithNotice("Saved screenshot.png")
	if !strings.Contains(m.View(), "Saved screenshot.png") {
		t.Error("notice missing from view")
	}
	if strings.Contains(m.WithNotice("").View(), "Saved") {
		t.Error("cleared notice still rendered")
	}
}

func TestStatusBarLoadingIndicator(t *testing.T) {
	t.Parallel()
	m := testStatusBar(80).WithPage("t", "u")
	if strings.Contains(m.View(), "~") {
		t.Error("loading marker shown while idle")
	}
	if !strings.Contains(m.WithLoading(true).View(), "~") {
		t.Error("loading marker missing")
	}
}
