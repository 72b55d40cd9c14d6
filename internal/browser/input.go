// ABOUTME: Synthetic input injection: mouse events, key presses, typed text
// ABOUTME: Raw CDP input dispatch plus evaluate-based scrolling and zoom

package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

// domKeys maps DOM key names to the special runes chromedp's keyboard
// layer understands.
var domKeys = map[string]string{
	"Enter":      kb.Enter,
	"Backspace":  kb.Backspace,
	"Delete":     kb.Delete,
	"Tab":        kb.Tab,
	"ArrowUp":    kb.ArrowUp,
	"ArrowDown":  kb.ArrowDown,
	"ArrowLeft":  kb.ArrowLeft,
	"ArrowRight": kb.ArrowRight,
	"Home":       kb.Home,
	"End":        kb.End,
	"PageUp":     kb.PageUp,
	"PageDown":   kb.PageDown,
	"Space":      " ",
}

// MouseMove moves the virtual pointer to page coordinates (x, y).
func (b *Browser) MouseMove(ctx context.Context, x, y float64) error {
	err := b.run(ctx, opTimeout, chromedp.ActionFunc(func(ctx context.Context) error {
		return input.DispatchMouseEvent(input.MouseMoved, x, y).Do(ctx)
	}))
	if err != nil {
		return fmt.Errorf("mouse move: %w", err)
	}
	return nil
}

// MouseDown presses the left button at (x, y). The pointer is moved there
// first so the page sees a coherent move-then-press sequence.
func (b *Browser) MouseDown(ctx context.Context, x, y float64) error {
	err := b.run(ctx, opTimeout,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return input.DispatchMouseEvent(input.MouseMoved, x, y).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			return input.DispatchMouseEvent(input.MousePressed, x, y).
				WithButton(input.Left).
				WithClickCount(1).
				Do(ctx)
		}),
	)
	if err != nil {
		return fmt.Errorf("mouse down: %w", err)
	}
	return nil
}

// MouseUp releases the left button at (x, y), moving the pointer first.
func (b *Browser) MouseUp(ctx context.Context, x, y float64) error {
	err := b.run(ctx, opTimeout,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return input.DispatchMouseEvent(input.MouseMoved, x, y).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			return input.DispatchMouseEvent(input.MouseReleased, x, y).
				WithButton(input.Left).
				WithClickCount(1).
				Do(ctx)
		}),
	)
	if err != nil {
		return fmt.Errorf("mouse up: %w", err)
	}
	return nil
}

// Press sends a named key (DOM name, e.g. "ArrowLeft") to the page.
// Unknown names are an error; callers filter against the named-key table
// before reaching here.
func (b *Browser) Press(ctx context.Context, name string) error {
	seq, ok := domKeys[name]
	if !ok {
		return fmt.Errorf("unknown key name %q", name)
	}
	if err := b.run(ctx, opTimeout, chromedp.KeyEvent(seq)); err != nil {
		return fmt.Errorf("pressing %s: %w", name, err)
	}
	return nil
}

// Type sends literal text to the page, character by character.
func (b *Browser) Type(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	if err := b.run(ctx, opTimeout, chromedp.KeyEvent(text)); err != nil {
		return fmt.Errorf("typing text: %w", err)
	}
	return nil
}

// ScrollBy scrolls the page by (dx, dy) pixels.
func (b *Browser) ScrollBy(ctx context.Context, dx, dy int) error {
	js := fmt.Sprintf("window.scrollBy(%d, %d)", dx, dy)
	if err := b.run(ctx, opTimeout, chromedp.Evaluate(js, nil)); err != nil {
		return fmt.Errorf("scrolling: %w", err)
	}
	return nil
}

// SetZoom applies a CSS zoom level to the document (1.0 = 100%).
func (b *Browser) SetZoom(ctx context.Context, level float64) error {
	js := fmt.Sprintf(`document.body && (document.body.style.zoom = "%.2f")`, level)
	if err := b.run(ctx, opTimeout, chromedp.Evaluate(js, nil)); err != nil {
		return fmt.Errorf("setting zoom: %w", err)
	}
	return nil
}

// Eval runs a JavaScript expression in the page, discarding its result.
// Userscript commands go through here.
func (b *Browser) Eval(ctx context.Context, js string) error {
	if err := b.run(ctx, opTimeout, chromedp.Evaluate(js, nil)); err != nil {
		return fmt.Errorf("evaluating script: %w", err)
	}
	return nil
}
