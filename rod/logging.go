package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/kattlog/kattlog"
)

// Ensure LoggingFetcher implements kattlog.Fetcher.
var _ kattlog.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   kattlog.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next kattlog.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (result *kattlog.FetchResult, err error) {
	defer func(begin time.Time) {
		bytes := 0
		success := false
		if result != nil {
			bytes = len(result.HTML)
			success = result.Success
		}
		f.logger.Info("fetch",
			"url", url,
			"success", success,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
