// Package rod renders saved pages in headless Chrome and exposes the live
// DOM to the extractor.
package rod

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/hnlist"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the default number of renders before the browser is
// replaced with a fresh instance.
const DefaultMaxPages = 75

// Ensure Renderer implements hnlist.Renderer at compile time.
var _ hnlist.Renderer = (*Renderer)(nil)

// Renderer loads HTML strings into headless Chrome pages. Pages are created
// from markup with no navigation, so nothing is fetched over the network
// except resources the markup itself references.
//
// Chrome's memory use grows over its lifetime, so the browser is relaunched
// once the render budget is spent and no render is in flight. Renderer is
// safe for concurrent use.
type Renderer struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	renders  int
	inflight int
	maxPages int
	closed   bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithMaxPages sets the number of renders before the browser is relaunched.
func WithMaxPages(n int) RendererOption {
	return func(r *Renderer) {
		r.maxPages = n
	}
}

// NewRenderer launches a headless Chrome browser.
// Close must be called when the Renderer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	r := &Renderer{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(r)
	}

	browser, l, err := launch()
	if err != nil {
		return nil, err
	}
	r.browser, r.launcher = browser, l
	return r, nil
}

// Render loads html into a new page, waits for it to settle, and calls fn
// with the rendered document. The page is closed when fn returns.
func (r *Renderer) Render(ctx context.Context, html string, fn func(hnlist.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	browser, err := r.acquire()
	if err != nil {
		return err
	}
	defer r.release()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetDocumentContent(html); err != nil {
		return fmt.Errorf("loading document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("waiting for document: %w", err)
	}

	return fn(NewDocument(page))
}

// acquire returns the browser for the next render, relaunching it first
// when the render budget is spent.
func (r *Renderer) acquire() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, hnlist.Errorf(hnlist.EINVALID, "renderer is closed")
	}

	if r.maxPages > 0 && r.renders >= r.maxPages && r.inflight == 0 {
		r.relaunch()
	}
	r.renders++
	r.inflight++
	return r.browser, nil
}

func (r *Renderer) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inflight--
}

// relaunch swaps in a fresh browser. If launching fails the current browser
// keeps serving. Must be called with mu held.
func (r *Renderer) relaunch() {
	browser, l, err := launch()
	if err != nil {
		return
	}
	_ = r.browser.Close()
	r.launcher.Kill()
	r.browser, r.launcher = browser, l
	r.renders = 0
}

// Close releases browser resources. Close is safe to call multiple times.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	err := r.browser.Close()
	r.launcher.Kill()
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (r *Renderer) LauncherPID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0
	}
	return r.launcher.PID()
}

// launch starts a headless browser with stability flags.
func launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, l, nil
}
