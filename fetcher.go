package kattlog

import "context"

// FetchResult reports the outcome of an HTML acquisition attempt.
type FetchResult struct {
	// Success is false when the page could not be acquired. On failure
	// Error carries a human-readable reason.
	Success bool `json:"success"`

	// HTML is the raw, already-rendered document. The classification
	// engine is agnostic to how it was obtained.
	HTML string `json:"html,omitempty"`

	// Error describes a page-level failure.
	Error string `json:"error,omitempty"`

	// Method records how the page was acquired ("browser", "http").
	Method string `json:"method"`
}

// Fetcher retrieves rendered HTML from URLs. It is the HTML-acquisition
// collaborator: the engine itself never performs network calls.
type Fetcher interface {
	// Fetch navigates to the URL and returns the rendered HTML. The
	// returned error covers infrastructure failures (context cancellation,
	// browser crash); page-level failures are reported in the result.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases any underlying resources (e.g. a browser).
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter rate-limits requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}

// Converter transforms HTML content into Markdown. Used to compact the
// nav-HTML selection before prompting the category namer.
type Converter interface {
	Convert(html string) (string, error)
}
