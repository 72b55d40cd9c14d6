// ABOUTME: Viewport and full-page screenshot capture plus viewport sizing
// ABOUTME: Timestamped filenames for captures saved on explicit command

package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// CaptureViewport screenshots the visible viewport and returns PNG bytes.
func (b *Browser) CaptureViewport(ctx context.Context) ([]byte, error) {
	var buf []byte
	if err := b.run(ctx, opTimeout, chromedp.CaptureScreenshot(&buf)); err != nil {
		return nil, fmt.Errorf("capturing viewport: %w", err)
	}
	return buf, nil
}

// CaptureFullPage screenshots the entire page height and returns PNG bytes.
func (b *Browser) CaptureFullPage(ctx context.Context) ([]byte, error) {
	var buf []byte
	if err := b.run(ctx, navTimeout, chromedp.FullScreenshot(&buf, 100)); err != nil {
		return nil, fmt.Errorf("capturing full page: %w", err)
	}
	return buf, nil
}

// SetViewportSize resizes the emulated viewport to w x h pixels.
func (b *Browser) SetViewportSize(ctx context.Context, w, h int) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("viewport %dx%d out of range", w, h)
	}
	if err := b.run(ctx, opTimeout, chromedp.EmulateViewport(int64(w), int64(h))); err != nil {
		return fmt.Errorf("resizing viewport to %dx%d: %w", w, h, err)
	}
	return nil
}

// ScreenshotFilename names a saved capture after its timestamp. Colons and
// dots are replaced so the name is safe on every filesystem we care about.
func ScreenshotFilename(t time.Time) string {
	stamp := t.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return "screenshot-" + stamp + ".png"
}
