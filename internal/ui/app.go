// ABOUTME: Root AppModel wiring the capture loop, input routing, and overlays
// ABOUTME: Handles frame ticks, key/mouse dispatch, command execution, and quit

package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lukasmoellerch/trome/internal/browser"
	"github.com/lukasmoellerch/trome/internal/commands"
	"github.com/lukasmoellerch/trome/internal/config"
	"github.com/lukasmoellerch/trome/internal/keymap"
	"github.com/lukasmoellerch/trome/internal/log"
	"github.com/lukasmoellerch/trome/internal/render"
	"github.com/lukasmoellerch/trome/pkg/termwidth"
)

// noticeDuration is how long a status bar notice stays visible.
const noticeDuration = 4 * time.Second

// actionCommands maps key actions to the palette command they trigger.
// Actions absent here open surfaces instead and are handled directly.
var actionCommands = map[config.KeyAction]string{
	config.ActionBack:         "back",
	config.ActionForward:      "forward",
	config.ActionReload:       "reload",
	config.ActionScreenshot:   "screenshot",
	config.ActionZoomIn:       "zoom in",
	config.ActionZoomOut:      "zoom out",
	config.ActionZoomReset:    "zoom reset",
	config.ActionClearCookies: "clear cookies",
}

// shared holds state that must survive AppModel value copies. Bubble Tea
// copies the model on each Update; pointer fields are shared across copies.
// The update loop is single-threaded, and command goroutines only reach
// back in through messages.
type shared struct {
	browser    *browser.Browser
	page       *commands.PageState
	registry   *commands.Registry
	keymap     *keymap.Manager
	scriptKeys map[string]string
	settings   *config.Settings
	saveDir    string
	version    string
	ctx        context.Context
	cancel     context.CancelFunc
}

// AppDeps provides the external dependencies the app runs against.
type AppDeps struct {
	Browser    *browser.Browser
	Settings   *config.Settings
	Keymap     *keymap.Manager
	Registry   *commands.Registry
	ScriptKeys map[string]string
	StartURL   string
	SaveDir    string // directory full-page screenshots are written to
	Version    string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	sh *shared // survives value copies

	// Layout
	width, height int
	vp            render.Viewport

	// Frame state
	grid      render.Grid
	haveFrame bool
	busy      bool // a capture cycle is in flight
	quitting  bool

	// Page display copies, refreshed from sh.page after each cycle
	pageURL   string
	pageTitle string

	// Sub-models
	status StatusBarModel

	// Overlay (nil = no overlay)
	overlay tea.Model

	// Notices
	notice   string
	noticeID int

	tickEvery time.Duration
}

// NewAppModel creates an AppModel wired with the given dependencies.
func NewAppModel(deps AppDeps) AppModel {
	ctx, cancel := context.WithCancel(context.Background())

	fps := deps.Settings.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	return AppModel{
		sh: &shared{
			browser:    deps.Browser,
			page:       commands.NewPageState(deps.StartURL),
			registry:   deps.Registry,
			keymap:     deps.Keymap,
			scriptKeys: deps.ScriptKeys,
			settings:   deps.Settings,
			saveDir:    deps.SaveDir,
			version:    deps.Version,
			ctx:        ctx,
			cancel:     cancel,
		},
		pageURL:   deps.StartURL,
		status:    NewStatusBarModel().WithPage("", deps.StartURL).WithLoading(true),
		tickEvery: time.Second / time.Duration(fps),
	}
}

// Init arms the frame timer.
func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.tickEvery)
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// --- Layout ---
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	// --- Capture loop ---
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		rearm := tickCmd(m.tickEvery)
		if m.busy || m.vp.Cols <= 0 || m.vp.Rows <= 0 {
			return m, rearm
		}
		m.busy = true
		return m, tea.Batch(captureCmd(m.sh, m.vp.Cols, m.vp.Rows), rearm)

	case frameMsg:
		m.busy = false
		m.grid = msg.grid
		m.haveFrame = true
		if msg.url != "" {
			m.pageURL = msg.url
			m.sh.page.SetURL(msg.url)
		}
		m.pageTitle = msg.title
		m.sh.page.SetTitle(msg.title)
		m.status = m.status.WithPage(m.pageTitle, m.pageURL).WithLoading(false)
		return m, nil

	case captureErrMsg:
		m.busy = false
		if !m.quitting {
			log.Debug("capture cycle failed: %v", msg.err)
		}
		return m, nil

	// --- Browser operations ---
	case viewportDoneMsg:
		if msg.err != nil {
			log.Error("viewport resize: %v", msg.err)
			return m, nil
		}
		return m.maybeCapture()

	case navDoneMsg:
		if msg.err != nil {
			log.Error("navigation to %s: %v", msg.url, msg.err)
			return m.setNotice("Error: " + msg.err.Error())
		}
		m.pageURL = msg.url
		m.sh.page.SetURL(msg.url)
		m.status = m.status.WithPage(m.pageTitle, m.pageURL)
		return m.maybeCapture()

	case inputErrMsg:
		log.Debug("%s: %v", msg.op, msg.err)
		return m, nil

	case browserClosedMsg:
		if msg.err != nil {
			log.Error("browser shutdown: %v", msg.err)
		}
		return m, tea.Quit

	// --- Commands ---
	case commandDoneMsg:
		return m.handleCommandDone(msg)

	// --- Overlay lifecycle ---
	case DismissOverlayMsg:
		m.overlay = nil
		return m, nil

	case URLSubmitMsg:
		m.overlay = nil
		return m.navigateTo(msg.Raw)

	case PaletteSelectMsg:
		m.overlay = nil
		return m, runCommandCmd(m.sh, msg.Name)

	// --- Status bar ---
	case noticeExpireMsg:
		if msg.id == m.noticeID {
			m.notice = ""
			m.status = m.status.WithNotice("")
		}
		return m, nil

	// --- Input ---
	case tea.MouseMsg:
		if m.overlay != nil || m.quitting {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.quitting {
			return m, nil
		}
		if m.overlay != nil {
			return m.updateOverlay(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// View renders the page grid with the status bar below and any overlay
// composited on top.
func (m AppModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	main := m.renderPage() + "\n" + m.status.View()
	if m.overlay != nil {
		return overlayCompose(main, m.overlay.View(), m.width, m.height)
	}
	return main
}

// --- Layout ---

func (m AppModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	updated, _ := m.status.Update(msg)
	m.status = updated.(StatusBarModel)
	if m.overlay != nil {
		m.overlay, _ = m.overlay.Update(msg)
	}

	vp := render.Viewport{Cols: msg.Width, Rows: msg.Height - 1, Scale: m.sh.settings.Scale}
	if vp == m.vp || vp.Cols <= 0 || vp.Rows <= 0 {
		return m, nil
	}
	m.vp = vp
	srcW, srcH := vp.SourceSize()
	m.status = m.status.WithViewport(vp.Cols, vp.Rows, srcW, srcH)
	return m, syncViewportCmd(m.sh, srcW, srcH)
}

// --- Key handling ---

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	chord := msg.String()

	if action := m.sh.keymap.ActionForKey(chord); action != "" {
		return m.dispatchAction(action)
	}
	if name, ok := m.sh.scriptKeys[chord]; ok {
		return m, runCommandCmd(m.sh, name)
	}

	intent, ok := translateKey(msg)
	if !ok {
		return m, nil
	}
	sh := m.sh
	if intent.press != "" {
		return m, inputCmd(sh, "key press", func(ctx context.Context) error {
			return sh.browser.Press(ctx, intent.press)
		})
	}
	return m, inputCmd(sh, "typing", func(ctx context.Context) error {
		return sh.browser.Type(ctx, intent.text)
	})
}

func (m AppModel) dispatchAction(action config.KeyAction) (tea.Model, tea.Cmd) {
	switch action {
	case config.ActionOpenURL:
		m.overlay = NewURLInputModel(m.pageURL, m.width)
		return m, nil
	case config.ActionOpenPalette:
		m.overlay = m.buildPalette()
		return m, nil
	case config.ActionHelp:
		m.overlay = NewHelpModel(m.sh.keymap, m.sh.registry, m.sh.version, m.width)
		return m, nil
	case config.ActionQuit:
		return m.beginQuit()
	}
	if name, ok := actionCommands[action]; ok {
		return m, runCommandCmd(m.sh, name)
	}
	return m, nil
}

// --- Mouse handling ---

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	srcW, srcH := m.vp.SourceSize()
	intent, ok := translateMouse(msg, m.vp.Cols, m.vp.Rows, srcW, srcH)
	if !ok {
		return m, nil
	}

	sh := m.sh
	switch intent.kind {
	case mouseMove:
		return m, inputCmd(sh, "mouse move", func(ctx context.Context) error {
			return sh.browser.MouseMove(ctx, intent.x, intent.y)
		})
	case mousePress:
		return m, inputCmd(sh, "mouse down", func(ctx context.Context) error {
			return sh.browser.MouseDown(ctx, intent.x, intent.y)
		})
	case mouseRelease:
		return m, inputCmd(sh, "mouse up", func(ctx context.Context) error {
			return sh.browser.MouseUp(ctx, intent.x, intent.y)
		})
	case mouseWheel:
		px := m.sh.settings.ScrollPixels
		dx, dy := intent.dx*px, intent.dy*px
		if dx == 0 && dy == 0 {
			return m, nil
		}
		return m, inputCmd(sh, "scroll", func(ctx context.Context) error {
			return sh.browser.ScrollBy(ctx, dx, dy)
		})
	}
	return m, nil
}

// --- Commands ---

func (m AppModel) handleCommandDone(msg commandDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Error("command %s: %v", msg.name, msg.err)
		return m.setNotice("Error: " + msg.err.Error())
	}

	if msg.effects.quit {
		return m.beginQuit()
	}
	if msg.effects.openURL {
		m.overlay = NewURLInputModel(m.pageURL, m.width)
	}
	if msg.effects.openHelp {
		m.overlay = NewHelpModel(m.sh.keymap, m.sh.registry, m.sh.version, m.width)
	}

	m.pageURL = m.sh.page.URL()
	m.pageTitle = m.sh.page.Title()
	m.status = m.status.WithPage(m.pageTitle, m.pageURL).WithZoom(m.sh.page.Zoom())

	var cmds []tea.Cmd
	if msg.notice != "" {
		var noticeCmd tea.Cmd
		m, noticeCmd = m.setNotice(msg.notice)
		cmds = append(cmds, noticeCmd)
	}
	var capture tea.Cmd
	m, capture = m.maybeCapture()
	if capture != nil {
		cmds = append(cmds, capture)
	}
	return m, tea.Batch(cmds...)
}

// navigateTo normalizes raw input from the URL dialog and starts the
// navigation on a goroutine.
func (m AppModel) navigateTo(raw string) (tea.Model, tea.Cmd) {
	url := browser.NormalizeURL(raw)
	if url == "" {
		return m, nil
	}
	m.status = m.status.WithLoading(true)
	sh := m.sh
	return m, func() tea.Msg {
		return navDoneMsg{url: url, err: sh.browser.Navigate(sh.ctx, url)}
	}
}

func (m AppModel) buildPalette() PaletteModel {
	list := m.sh.registry.List()
	entries := make([]PaletteEntry, len(list))
	for i, c := range list {
		entries[i] = PaletteEntry{Name: c.Name, Description: c.Description, Shortcut: c.Shortcut}
	}
	return NewPaletteModel(entries, m.width)
}

// --- Quit sequence ---

// beginQuit stops the frame timer, aborts in-flight browser work, and
// closes the browser. tea.Quit is issued once the browser reports closed.
func (m AppModel) beginQuit() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.quitting = true
	m.overlay = nil
	m.sh.cancel()
	sh := m.sh
	return m, func() tea.Msg {
		sh.browser.Close()
		return browserClosedMsg{}
	}
}

// --- Internal helpers ---

func (m AppModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.overlay.Update(msg)
	m.overlay = updated
	return m, cmd
}

// maybeCapture starts an out-of-band capture cycle unless one is running.
func (m AppModel) maybeCapture() (AppModel, tea.Cmd) {
	if m.busy || m.quitting || m.vp.Cols <= 0 || m.vp.Rows <= 0 {
		return m, nil
	}
	m.busy = true
	return m, captureCmd(m.sh, m.vp.Cols, m.vp.Rows)
}

func (m AppModel) setNotice(text string) (AppModel, tea.Cmd) {
	m.notice = text
	m.noticeID++
	m.status = m.status.WithNotice(text)
	id := m.noticeID
	return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpireMsg{id: id}
	})
}

// renderPage renders the captured grid padded to the page area height.
func (m AppModel) renderPage() string {
	rows := m.height - 1
	if rows < 1 {
		rows = 1
	}

	if !m.haveFrame {
		return m.renderPlaceholder(rows)
	}

	lines := m.grid.Lines()
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m AppModel) renderPlaceholder(rows int) string {
	s := Styles()
	text := s.Dim.Render("Connecting to " + m.pageURL + " ...")
	pad := strings.Repeat(" ", max((m.width-termwidth.Visible(text))/2, 0))

	lines := make([]string, rows)
	lines[rows/2] = pad + text
	return strings.Join(lines, "\n")
}

// --- Async commands ---

func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(time.Time) tea.Msg { return tickMsg{} })
}

// captureCmd runs one full capture cycle off the update loop: screenshot,
// decode, downsample, encode, plus the current location and title.
func captureCmd(sh *shared, cols, rows int) tea.Cmd {
	return func() tea.Msg {
		buf, err := sh.browser.CaptureViewport(sh.ctx)
		if err != nil {
			return captureErrMsg{err: err}
		}
		img, err := render.Decode(buf)
		if err != nil {
			return captureErrMsg{err: err}
		}
		frame := render.Downsample(img, cols, rows)
		grid := render.Encode(frame, cols, rows)

		url, _ := sh.browser.Location(sh.ctx)
		title, _ := sh.browser.Title(sh.ctx)
		return frameMsg{grid: grid, url: url, title: title}
	}
}

func syncViewportCmd(sh *shared, w, h int) tea.Cmd {
	return func() tea.Msg {
		return viewportDoneMsg{err: sh.browser.SetViewportSize(sh.ctx, w, h)}
	}
}

// inputCmd runs one fire-and-forget input injection.
func inputCmd(sh *shared, op string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(sh.ctx); err != nil {
			return inputErrMsg{op: op, err: err}
		}
		return nil
	}
}

// runCommandCmd executes a palette command on a goroutine, capturing UI
// side effects requested by its callbacks.
func runCommandCmd(sh *shared, name string) tea.Cmd {
	return func() tea.Msg {
		cmd, ok := sh.registry.Get(name)
		if !ok {
			return commandDoneMsg{name: name, err: fmt.Errorf("unknown command %q", name)}
		}

		effects := &cmdEffects{}
		cctx := &commands.CommandContext{
			Ctx:      sh.ctx,
			Browser:  sh.browser,
			Page:     sh.page,
			SaveDir:  sh.saveDir,
			Homepage: sh.settings.Homepage,
			OpenURLDialog: func() {
				effects.openURL = true
			},
			OpenHelp: func() {
				effects.openHelp = true
			},
			Quit: func() {
				effects.quit = true
			},
		}
		notice, err := cmd.Execute(cctx)
		return commandDoneMsg{name: name, notice: notice, err: err, effects: *effects}
	}
}
