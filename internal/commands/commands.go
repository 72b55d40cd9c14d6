// ABOUTME: Command registry for the palette: name, description, shortcut, handler
// ABOUTME: Handlers receive an explicit CommandContext instead of closing over state

package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lukasmoellerch/trome/internal/browser"
	"github.com/lukasmoellerch/trome/internal/config"
	"github.com/lukasmoellerch/trome/internal/keymap"
)

// Zoom bounds for the zoom in/out commands.
const (
	zoomStep = 1.2
	zoomMin  = 0.2
	zoomMax  = 5.0
)

// Driver is the subset of browser operations command handlers invoke.
// *browser.Browser satisfies it; tests substitute a fake.
type Driver interface {
	Navigate(ctx context.Context, url string) error
	Back(ctx context.Context) error
	Forward(ctx context.Context) error
	Reload(ctx context.Context) error
	ClearCookies(ctx context.Context) error
	CaptureFullPage(ctx context.Context) ([]byte, error)
	SetZoom(ctx context.Context, level float64) error
	Eval(ctx context.Context, js string) error
	Location(ctx context.Context) (string, error)
	Title(ctx context.Context) (string, error)
}

// CommandContext carries everything a handler may touch. Callback fields
// are nil when the surface is not available; handlers report that instead
// of panicking.
type CommandContext struct {
	Ctx     context.Context
	Browser Driver
	Page    *PageState

	// Directory screenshots are written to. Empty means current directory.
	SaveDir string

	// Homepage for the "home" command, from settings. May be empty.
	Homepage string

	// UI callbacks, nil when not available.
	OpenURLDialog func()
	OpenHelp      func()
	Quit          func()
}

// Command is a single palette entry.
type Command struct {
	Name        string
	Description string
	// Shortcut is the primary key chord bound to this command, or empty.
	Shortcut string
	Execute  func(ctx *CommandContext) (string, error)
}

// Registry holds all registered commands.
type Registry struct {
	commands map[string]*Command
}

// NewRegistry creates a registry with the built-in commands. Shortcuts are
// filled in from km when a command has a bound action.
func NewRegistry(km *keymap.Manager) *Registry {
	r := &Registry{commands: make(map[string]*Command)}
	r.registerCoreCommands(km)
	return r
}

// Register adds a command. Later registrations win on name collision so
// user scripts can shadow built-ins.
func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
}

// Get returns the command with the given name.
func (r *Registry) Get(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all commands sorted by name for deterministic output.
func (r *Registry) List() []*Command {
	names := r.Names()
	out := make([]*Command, 0, len(names))
	for _, name := range names {
		out = append(out, r.commands[name])
	}
	return out
}

// Names returns the registered command names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func shortcutFor(km *keymap.Manager, action config.KeyAction) string {
	if km == nil {
		return ""
	}
	return km.PrimaryBinding(action)
}

func (r *Registry) registerCoreCommands(km *keymap.Manager) {
	r.Register(&Command{
		Name:        "open",
		Description: "Open a URL",
		Shortcut:    shortcutFor(km, config.ActionOpenURL),
		Execute: func(ctx *CommandContext) (string, error) {
			if ctx.OpenURLDialog == nil {
				return "URL dialog not available", nil
			}
			ctx.OpenURLDialog()
			return "", nil
		},
	})

	r.Register(&Command{
		Name:        "back",
		Description: "Go back in history",
		Shortcut:    shortcutFor(km, config.ActionBack),
		Execute: func(ctx *CommandContext) (string, error) {
			if err := ctx.Browser.Back(ctx.Ctx); err != nil {
				return "", err
			}
			syncLocation(ctx)
			return "", nil
		},
	})

	r.Register(&Command{
		Name:        "forward",
		Description: "Go forward in history",
		Shortcut:    shortcutFor(km, config.ActionForward),
		Execute: func(ctx *CommandContext) (string, error) {
			if err := ctx.Browser.Forward(ctx.Ctx); err != nil {
				return "", err
			}
			syncLocation(ctx)
			return "", nil
		},
	})

	r.Register(&Command{
		Name:        "home",
		Description: "Go to the configured home page",
		Execute: func(ctx *CommandContext) (string, error) {
			if strings.TrimSpace(ctx.Homepage) == "" {
				return "No home page configured", nil
			}
			url := browser.NormalizeURL(ctx.Homepage)
			if err := ctx.Browser.Navigate(ctx.Ctx, url); err != nil {
				return "", err
			}
			ctx.Page.SetURL(url)
			syncLocation(ctx)
			return "", nil
		},
	})

	r.Register(&Command{
		Name:        "reload",
		Description: "Reload the current page",
		Shortcut:    shortcutFor(km, config.ActionReload),
		Execute: func(ctx *CommandContext) (string, error) {
			if err := ctx.Browser.Reload(ctx.Ctx); err != nil {
				return "", err
			}
			return "Reloaded", nil
		},
	})

	r.Register(&Command{
		Name:        "screenshot",
		Description: "Save a full-page screenshot",
		Shortcut:    shortcutFor(km, config.ActionScreenshot),
		Execute: func(ctx *CommandContext) (string, error) {
			buf, err := ctx.Browser.CaptureFullPage(ctx.Ctx)
			if err != nil {
				return "", err
			}
			name := browser.ScreenshotFilename(time.Now())
			path := filepath.Join(ctx.SaveDir, name)
			if err := os.WriteFile(path, buf, 0o644); err != nil {
				return "", fmt.Errorf("writing screenshot: %w", err)
			}
			return "Saved " + name, nil
		},
	})

	r.Register(&Command{
		Name:        "zoom in",
		Description: "Increase page zoom",
		Shortcut:    shortcutFor(km, config.ActionZoomIn),
		Execute: func(ctx *CommandContext) (string, error) {
			return applyZoom(ctx, ctx.Page.Zoom()*zoomStep)
		},
	})

	r.Register(&Command{
		Name:        "zoom out",
		Description: "Decrease page zoom",
		Shortcut:    shortcutFor(km, config.ActionZoomOut),
		Execute: func(ctx *CommandContext) (string, error) {
			return applyZoom(ctx, ctx.Page.Zoom()/zoomStep)
		},
	})

	r.Register(&Command{
		Name:        "zoom reset",
		Description: "Reset page zoom to 100%",
		Shortcut:    shortcutFor(km, config.ActionZoomReset),
		Execute: func(ctx *CommandContext) (string, error) {
			return applyZoom(ctx, 1.0)
		},
	})

	r.Register(&Command{
		Name:        "clear cookies",
		Description: "Clear all browser cookies",
		Shortcut:    shortcutFor(km, config.ActionClearCookies),
		Execute: func(ctx *CommandContext) (string, error) {
			if err := ctx.Browser.ClearCookies(ctx.Ctx); err != nil {
				return "", err
			}
			return "Cookies cleared", nil
		},
	})

	r.Register(&Command{
		Name:        "help",
		Description: "Show keyboard shortcuts",
		Shortcut:    shortcutFor(km, config.ActionHelp),
		Execute: func(ctx *CommandContext) (string, error) {
			if ctx.OpenHelp == nil {
				return "Help not available", nil
			}
			ctx.OpenHelp()
			return "", nil
		},
	})

	r.Register(&Command{
		Name:        "quit",
		Description: "Quit",
		Shortcut:    shortcutFor(km, config.ActionQuit),
		Execute: func(ctx *CommandContext) (string, error) {
			if ctx.Quit == nil {
				return "Quit not available", nil
			}
			ctx.Quit()
			return "", nil
		},
	})
}

// applyZoom clamps level, applies it to the page, and records it.
func applyZoom(ctx *CommandContext, level float64) (string, error) {
	if level < zoomMin {
		level = zoomMin
	}
	if level > zoomMax {
		level = zoomMax
	}
	if err := ctx.Browser.SetZoom(ctx.Ctx, level); err != nil {
		return "", err
	}
	ctx.Page.SetZoom(level)
	return fmt.Sprintf("Zoom %d%%", int(level*100+0.5)), nil
}

// syncLocation refreshes the recorded URL and title after a navigation
// command. Failures are ignored; the next capture cycle observes them.
func syncLocation(ctx *CommandContext) {
	if url, err := ctx.Browser.Location(ctx.Ctx); err == nil && strings.TrimSpace(url) != "" {
		ctx.Page.SetURL(url)
	}
	if title, err := ctx.Browser.Title(ctx.Ctx); err == nil {
		ctx.Page.SetTitle(title)
	}
}
