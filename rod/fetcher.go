// Package rod acquires rendered HTML through Chrome browser automation.
// The classification engine only ever sees the returned document; all
// browser concerns stay inside this package.
package rod

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/kattlog/kattlog"
)

// DefaultMaxPages is the default number of pages before browser recycling.
// Chrome accumulates memory over time and the baseline never returns to
// initial levels even with proper page cleanup, so the browser is
// periodically replaced.
const DefaultMaxPages = 75

// Ensure Fetcher implements kattlog.Fetcher at compile time.
var _ kattlog.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation, recycling the browser after maxPages pages.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	maxPages  int64
	closed    bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxPages sets the maximum number of pages before the browser is
// recycled. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a Fetcher backed by a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.launchBrowser(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML. Page-level
// navigation failures come back in the result; the returned error covers
// context cancellation and browser infrastructure failures.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*kattlog.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := f.acquireBrowser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return &kattlog.FetchResult{Method: "browser", Error: err.Error()}, nil
	}
	if err := page.WaitLoad(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return &kattlog.FetchResult{Method: "browser", Error: err.Error()}, nil
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.pageCount++
	f.mu.Unlock()

	return &kattlog.FetchResult{Success: true, HTML: html, Method: "browser"}, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	return f.closeBrowser()
}

// acquireBrowser returns the current browser, recycling it when the page
// count has reached maxPages.
func (f *Fetcher) acquireBrowser() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, kattlog.Errorf(kattlog.EINTERNAL, "fetcher is closed")
	}
	if f.pageCount >= f.maxPages {
		f.recycleBrowser()
	}
	return f.browser, nil
}

// launchBrowser starts a new browser instance with stability flags.
func (f *Fetcher) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = lnchr
	return nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (f *Fetcher) closeBrowser() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one.
// If launching the new browser fails, the old browser is kept.
// Must be called with mu held.
func (f *Fetcher) recycleBrowser() {
	oldBrowser := f.browser
	oldLauncher := f.launcher
	f.browser = nil
	f.launcher = nil

	if err := f.launchBrowser(); err != nil {
		f.browser = oldBrowser
		f.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	f.pageCount = 0
}
