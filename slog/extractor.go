// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/kattlog/kattlog"
)

// Ensure LoggingProductExtractor implements kattlog.ProductExtractor.
var _ kattlog.ProductExtractor = (*LoggingProductExtractor)(nil)

// LoggingProductExtractor wraps a ProductExtractor with debug logging.
type LoggingProductExtractor struct {
	next   kattlog.ProductExtractor
	logger *slog.Logger
}

// NewLoggingProductExtractor creates a new LoggingProductExtractor.
func NewLoggingProductExtractor(next kattlog.ProductExtractor, logger *slog.Logger) *LoggingProductExtractor {
	return &LoggingProductExtractor{next: next, logger: logger}
}

// ExtractProducts logs the extraction outcome and delegates to the
// wrapped extractor.
func (e *LoggingProductExtractor) ExtractProducts(html string, baseURL string) (candidates []kattlog.ProductCandidate, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract products",
			"base_url", baseURL,
			"bytes", len(html),
			"candidates", len(candidates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractProducts(html, baseURL)
}
