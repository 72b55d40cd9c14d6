// ABOUTME: Shared mutable page state passed to command handlers explicitly
// ABOUTME: Guards URL, title, and zoom behind a mutex; no ambient globals

package commands

import "sync"

// PageState holds the page facts the UI and command handlers share: the
// URL and title as last observed, and the current zoom level. Handlers
// run on goroutines, so access is serialized here.
type PageState struct {
	mu    sync.Mutex
	url   string
	title string
	zoom  float64
}

// NewPageState creates a PageState starting at url with zoom 1.0.
func NewPageState(url string) *PageState {
	return &PageState{url: url, zoom: 1.0}
}

// URL returns the last observed page URL.
func (p *PageState) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}

// SetURL records a new page URL.
func (p *PageState) SetURL(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.url = url
}

// Title returns the last observed page title.
func (p *PageState) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title
}

// SetTitle records a new page title.
func (p *PageState) SetTitle(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.title = title
}

// Zoom returns the current zoom level.
func (p *PageState) Zoom() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.zoom
}

// SetZoom records a new zoom level.
func (p *PageState) SetZoom(z float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.zoom = z
}
