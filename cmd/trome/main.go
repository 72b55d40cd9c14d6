// ABOUTME: CLI entry point for trome
// ABOUTME: Parses flags, loads config, ensures a browser exists, starts the TUI

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	// It sets lipgloss.SetHasDarkBackground(true) in its init(), preventing
	// Bubble Tea's tea_init.go from sending OSC 10/11 terminal queries whose
	// async responses leak garbage into the frame stream.
	_ "github.com/lukasmoellerch/trome/internal/termfix"

	"golang.org/x/term"

	"github.com/lukasmoellerch/trome/internal/browser"
	"github.com/lukasmoellerch/trome/internal/commands"
	"github.com/lukasmoellerch/trome/internal/config"
	"github.com/lukasmoellerch/trome/internal/keymap"
	"github.com/lukasmoellerch/trome/internal/log"
	"github.com/lukasmoellerch/trome/internal/ui"
	"github.com/lukasmoellerch/trome/internal/userscript"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errMissingURL aborts startup when neither an argument nor a configured
// homepage provides a page to open.
var errMissingURL = errors.New("no url to open")

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("trome %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		if errors.Is(err, errMissingURL) {
			usage()
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full startup sequence: config, browser, userscripts, TUI.
func run(args cliArgs) error {
	if args.debug {
		log.SetLevel(log.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, args)
	cfg.ApplyDefaults()

	rawURL := args.url()
	if rawURL == "" {
		rawURL = cfg.Homepage
	}
	if rawURL == "" {
		return errMissingURL
	}
	startURL := browser.NormalizeURL(rawURL)

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("trome needs an interactive terminal")
	}

	opts := browser.DefaultOptions()
	if cfg.ChromePath != "" {
		opts.ExecPath = cfg.ChromePath
	}
	if cfg.UserAgent != "" {
		opts.UserAgent = cfg.UserAgent
	}

	ctx := context.Background()
	b, err := launchOrInstall(ctx, opts)
	if err != nil {
		return err
	}
	defer b.Close()

	if err := b.Navigate(ctx, startURL); err != nil {
		return err
	}

	km := keymap.New(cfg)
	for _, c := range km.Conflicts() {
		log.Warn("key %s bound to multiple actions: %v", c.Key, c.Actions)
	}

	registry := commands.NewRegistry(km)
	scripts := userscript.Load(config.ScriptDirs(cwd))
	userscript.Register(registry, scripts)

	// Log lines must not reach the terminal while the TUI owns it.
	restore := redirectLogs()
	defer restore()

	return ui.Run(ui.AppDeps{
		Browser:    b,
		Settings:   cfg,
		Keymap:     km,
		Registry:   registry,
		ScriptKeys: userscript.Shortcuts(scripts),
		StartURL:   startURL,
		SaveDir:    cwd,
		Version:    version,
	})
}

// launchOrInstall starts the browser, running the interactive install flow
// when the launch failure means no binary exists.
func launchOrInstall(ctx context.Context, opts browser.Options) (*browser.Browser, error) {
	b, err := browser.Launch(ctx, opts)
	if err == nil {
		return b, nil
	}
	if !browser.NotInstalled(err) {
		return nil, err
	}

	path, err := browser.InstallFlow(ctx, os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}
	opts.ExecPath = path
	return browser.Launch(ctx, opts)
}

// redirectLogs sends log output to the debug log file for the duration of
// the TUI session and returns a func restoring the previous writer.
func redirectLogs() func() {
	f, err := openDebugLog()
	if err != nil {
		prev := log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }
	}
	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		f.Close()
	}
}

func openDebugLog() (*os.File, error) {
	if err := os.MkdirAll(config.GlobalDir(), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(config.DebugLogFile(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// applyFlagOverrides copies set CLI flags over the loaded settings.
func applyFlagOverrides(cfg *config.Settings, args cliArgs) {
	if args.scale > 0 {
		cfg.Scale = args.scale
	}
	if args.fps > 0 {
		cfg.FPS = args.fps
	}
	if args.chrome != "" {
		cfg.ChromePath = args.chrome
	}
}
