// Package rod drives a headless Chrome session against the card sites.
package rod

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/uwdocs"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultTimeout bounds each navigation, selector wait and page turn.
const DefaultTimeout = 30 * time.Second

// pollInterval is how often a page turn checks the pagination indicator.
const pollInterval = 100 * time.Millisecond

// Browser owns a launched headless Chrome process.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration

	mu     sync.Mutex
	closed bool
}

// Option configures a Browser.
type Option func(*Browser)

// WithTimeout sets the per-step timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(b *Browser) {
		b.timeout = d
	}
}

// NewBrowser launches a headless Chrome browser.
// Close must be called when the Browser is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...Option) (*Browser, error) {
	b := &Browser{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(b)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	b.browser = browser
	b.launcher = l
	return b, nil
}

// Open creates a tab, navigates to url and waits for selector to appear.
// The returned Page must be closed by the caller.
func (b *Browser) Open(ctx context.Context, url, selector string) (*Page, error) {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return nil, uwdocs.Errorf(uwdocs.EINVALID, "browser is closed")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}

	p := &Page{page: page, ctx: ctx, timeout: b.timeout}
	if err := p.Navigate(url); err != nil {
		_ = page.Close()
		return nil, err
	}
	if err := p.WaitForSelector(selector); err != nil {
		_ = page.Close()
		return nil, err
	}
	return p, nil
}

// Close shuts down the browser and its launcher. Close is safe to call
// multiple times.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	err := b.browser.Close()
	b.launcher.Kill()
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (b *Browser) LauncherPID() int {
	return b.launcher.PID()
}

// Page is one browser tab. Every call is bounded by the browser timeout and
// the context the page was opened with.
type Page struct {
	page    *rod.Page
	ctx     context.Context
	timeout time.Duration
}

func (p *Page) bounded() (*rod.Page, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	return p.page.Context(ctx), cancel
}

// Navigate loads url and waits for the load event.
func (p *Page) Navigate(url string) error {
	page, cancel := p.bounded()
	defer cancel()

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("loading %s: %w", url, err)
	}
	return nil
}

// WaitForSelector blocks until an element matching selector exists.
func (p *Page) WaitForSelector(selector string) error {
	page, cancel := p.bounded()
	defer cancel()

	if _, err := page.Element(selector); err != nil {
		return fmt.Errorf("waiting for %q: %w", selector, err)
	}
	return nil
}

// Click clicks the first element matching selector.
func (p *Page) Click(selector string) error {
	page, cancel := p.bounded()
	defer cancel()

	el, err := page.Element(selector)
	if err != nil {
		return fmt.Errorf("finding %q: %w", selector, err)
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("clicking %q: %w", selector, err)
	}
	return nil
}

// Text returns the trimmed text of the first element matching selector.
func (p *Page) Text(selector string) (string, error) {
	page, cancel := p.bounded()
	defer cancel()

	el, err := page.Element(selector)
	if err != nil {
		return "", fmt.Errorf("finding %q: %w", selector, err)
	}
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", selector, err)
	}
	return strings.TrimSpace(text), nil
}

// Int parses the text of the first element matching selector as a number.
func (p *Page) Int(selector string) (int, error) {
	text, err := p.Text(selector)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, uwdocs.Errorf(uwdocs.EINVALID, "selector %q: %q is not a number", selector, text)
	}
	return n, nil
}

// WaitForInt polls the number shown by selector until it equals want.
func (p *Page) WaitForInt(selector string, want int) error {
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()

	for {
		got, err := p.Int(selector)
		if err == nil && got == want {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %q to show %d (last %d): %w", selector, want, got, ctx.Err())
		case <-time.After(pollInterval):
		}
	}
}

// HTML returns the rendered document.
func (p *Page) HTML() (string, error) {
	page, cancel := p.bounded()
	defer cancel()

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("reading HTML: %w", err)
	}
	return html, nil
}

// Close closes the tab.
func (p *Page) Close() error {
	return p.page.Close()
}
