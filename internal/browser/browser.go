// ABOUTME: Headless Chrome session wrapper over chromedp
// ABOUTME: One tab, serialized access; navigation, history, and cookie operations

package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

const (
	launchTimeout = 20 * time.Second
	navTimeout    = 30 * time.Second
	opTimeout     = 10 * time.Second
)

// Options configures the browser session.
type Options struct {
	ExecPath  string // browser binary (empty = auto-detect)
	UserAgent string
	Width     int // initial viewport width in pixels
	Height    int // initial viewport height in pixels
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		Width:     1280,
		Height:    720,
	}
}

// Browser is a live headless Chrome session with a single page. The page is
// a shared sequential resource: every operation takes an internal lock, so
// at most one capture, navigation, or input call runs at a time.
type Browser struct {
	mu          sync.Mutex
	ctx         context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// userDataDir returns a persistent profile directory so cookies and local
// storage survive between sessions.
func userDataDir() string {
	dir, _ := os.UserCacheDir()
	return filepath.Join(dir, "trome-chrome-profile")
}

func allocatorOptions(opts Options) []chromedp.ExecAllocatorOption {
	allocOpts := []chromedp.ExecAllocatorOption{
		chromedp.NoDefaultBrowserCheck,
		chromedp.NoFirstRun,
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("mute-audio", true),
		chromedp.UserAgent(opts.UserAgent),
		chromedp.WindowSize(opts.Width, opts.Height),
		chromedp.UserDataDir(userDataDir()),
	}
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}
	return allocOpts
}

// Launch starts the browser process and opens its page. The session lives
// until Close; ctx only bounds the launch itself.
func Launch(ctx context.Context, opts Options) (*Browser, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), allocatorOptions(opts)...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	b := &Browser{
		ctx:         tabCtx,
		cancelTab:   cancelTab,
		cancelAlloc: cancelAlloc,
	}

	// An empty Run starts the process and attaches to the first page.
	if err := b.run(ctx, launchTimeout); err != nil {
		b.Close()
		return nil, fmt.Errorf("launching browser: %w", err)
	}
	return b, nil
}

// Close tears the session down. Safe to call more than once; operations
// issued after Close fail with a canceled context.
func (b *Browser) Close() {
	b.cancelTab()
	b.cancelAlloc()
}

// run executes actions against the page under the session lock. timeout
// bounds the work; ctx additionally propagates caller cancellation.
func (b *Browser) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	rctx, cancel := context.WithTimeout(b.ctx, timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(rctx, actions...)
}

// Navigate loads url and waits for the document body to be ready.
func (b *Browser) Navigate(ctx context.Context, url string) error {
	err := b.run(ctx, navTimeout,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	return nil
}

// Location returns the page's current URL.
func (b *Browser) Location(ctx context.Context) (string, error) {
	var loc string
	if err := b.run(ctx, opTimeout, chromedp.Location(&loc)); err != nil {
		return "", fmt.Errorf("reading location: %w", err)
	}
	return loc, nil
}

// Title returns the page's current title.
func (b *Browser) Title(ctx context.Context) (string, error) {
	var title string
	if err := b.run(ctx, opTimeout, chromedp.Title(&title)); err != nil {
		return "", fmt.Errorf("reading title: %w", err)
	}
	return title, nil
}

// Back navigates one step back in the page history.
func (b *Browser) Back(ctx context.Context) error {
	if err := b.run(ctx, navTimeout, chromedp.NavigateBack()); err != nil {
		return fmt.Errorf("history back: %w", err)
	}
	return nil
}

// Forward navigates one step forward in the page history.
func (b *Browser) Forward(ctx context.Context) error {
	if err := b.run(ctx, navTimeout, chromedp.NavigateForward()); err != nil {
		return fmt.Errorf("history forward: %w", err)
	}
	return nil
}

// Reload reloads the current page.
func (b *Browser) Reload(ctx context.Context) error {
	if err := b.run(ctx, navTimeout, chromedp.Reload()); err != nil {
		return fmt.Errorf("reloading: %w", err)
	}
	return nil
}

// ClearCookies drops every cookie in the browser profile.
func (b *Browser) ClearCookies(ctx context.Context) error {
	if err := b.run(ctx, opTimeout, network.ClearBrowserCookies()); err != nil {
		return fmt.Errorf("clearing cookies: %w", err)
	}
	return nil
}
