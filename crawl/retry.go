package crawl

import (
	"context"
	"time"

	"github.com/kattlog/kattlog"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry attempts to fetch a URL with exponential backoff retry
// logic. It retries up to 3 times (4 total attempts) with delays of 1s,
// 2s, 4s. The logger function, if provided, is called for each retry.
func FetchWithRetry(ctx context.Context, url string, fetcher kattlog.Fetcher, logger LogFunc) (*kattlog.FetchResult, error) {
	return FetchWithRetryDelays(ctx, url, fetcher, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is like FetchWithRetry but allows configurable
// delays. This is useful for testing without waiting for real delays.
//
// A fetch is retried both on an infrastructure error and on a page-level
// failure (result.Success false); after the last attempt the page-level
// failure is promoted to an EUNAVAILABLE error.
func FetchWithRetryDelays(ctx context.Context, url string, fetcher kattlog.Fetcher, logger LogFunc, delays []time.Duration) (*kattlog.FetchResult, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := fetcher.Fetch(ctx, url)
		if err == nil && result.Success {
			return result, nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = kattlog.Errorf(kattlog.EUNAVAILABLE, "fetch %s: %s", url, result.Error)
		}

		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, lastErr)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
