package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/kattlog/kattlog"
)

// Ensure LoggingCategoryExtractor implements kattlog.CategoryExtractor.
var _ kattlog.CategoryExtractor = (*LoggingCategoryExtractor)(nil)

// LoggingCategoryExtractor wraps a CategoryExtractor with debug logging.
type LoggingCategoryExtractor struct {
	next   kattlog.CategoryExtractor
	logger *slog.Logger
}

// NewLoggingCategoryExtractor creates a new LoggingCategoryExtractor.
func NewLoggingCategoryExtractor(next kattlog.CategoryExtractor, logger *slog.Logger) *LoggingCategoryExtractor {
	return &LoggingCategoryExtractor{next: next, logger: logger}
}

// ExtractNavigation logs the nav pass outcome and delegates.
func (e *LoggingCategoryExtractor) ExtractNavigation(html string, baseURL string) (categories []kattlog.Category, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract navigation categories",
			"base_url", baseURL,
			"categories", len(categories),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractNavigation(html, baseURL)
}

// ExtractContentCategories logs the content pass outcome and delegates.
func (e *LoggingCategoryExtractor) ExtractContentCategories(html string, baseURL string) (categories []kattlog.Category, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract content categories",
			"base_url", baseURL,
			"categories", len(categories),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractContentCategories(html, baseURL)
}

// Ensure LoggingCategoryNamer implements kattlog.CategoryNamer.
var _ kattlog.CategoryNamer = (*LoggingCategoryNamer)(nil)

// LoggingCategoryNamer wraps a CategoryNamer with debug logging.
type LoggingCategoryNamer struct {
	next   kattlog.CategoryNamer
	logger *slog.Logger
}

// NewLoggingCategoryNamer creates a new LoggingCategoryNamer.
func NewLoggingCategoryNamer(next kattlog.CategoryNamer, logger *slog.Logger) *LoggingCategoryNamer {
	return &LoggingCategoryNamer{next: next, logger: logger}
}

// NameCategories logs the namer call and delegates.
func (n *LoggingCategoryNamer) NameCategories(ctx context.Context, navHTML string, baseURL string) (categories []kattlog.Category, err error) {
	defer func(begin time.Time) {
		n.logger.Info("name categories",
			"base_url", baseURL,
			"nav_bytes", len(navHTML),
			"categories", len(categories),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return n.next.NameCategories(ctx, navHTML, baseURL)
}
