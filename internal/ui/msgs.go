// ABOUTME: All custom tea.Msg types for the terminal browser UI
// ABOUTME: Capture loop results, browser operation outcomes, and overlay control

package ui

import (
	"github.com/lukasmoellerch/trome/internal/render"
)

// --- Capture loop (sent by capture commands) ---

// tickMsg fires on every frame interval while the app runs.
type tickMsg struct{}

// frameMsg carries one captured and encoded frame plus the page location
// observed in the same cycle.
type frameMsg struct {
	grid  render.Grid
	url   string
	title string
}

// captureErrMsg reports a failed capture cycle. The loop logs it and waits
// for the next tick.
type captureErrMsg struct{ err error }

// --- Browser operations ---

// viewportDoneMsg reports the result of resizing the emulated viewport.
type viewportDoneMsg struct{ err error }

// navDoneMsg reports the result of a navigation started from the URL dialog.
type navDoneMsg struct {
	url string
	err error
}

// inputErrMsg reports a failed input injection. Input is fire-and-forget;
// errors are logged, never surfaced as modal state.
type inputErrMsg struct {
	op  string
	err error
}

// browserClosedMsg signals that the browser shut down during the quit
// sequence. The app exits after receiving it.
type browserClosedMsg struct{ err error }

// --- Commands ---

// cmdEffects records UI surface requests made by command callbacks while a
// command ran on its goroutine. The update loop applies them afterwards.
type cmdEffects struct {
	openURL  bool
	openHelp bool
	quit     bool
}

// commandDoneMsg carries a finished palette command's notice, error, and
// captured side effects.
type commandDoneMsg struct {
	name    string
	notice  string
	err     error
	effects cmdEffects
}

// --- Overlay control ---

// DismissOverlayMsg closes the active overlay without further action.
type DismissOverlayMsg struct{}

// --- Status bar ---

// noticeExpireMsg clears the status bar notice whose id matches.
type noticeExpireMsg struct{ id int }
