// Package crawl orchestrates batch classification runs: it fetches a set
// of pages through a rate-limited, retrying fetcher and runs the product
// and category extractors over each rendered document.
package crawl

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/kattlog/kattlog"
	"golang.org/x/sync/errgroup"
)

// Runner coordinates fetching and classification for a batch of URLs.
// Fetcher, Products and Categories are required; the remaining
// collaborators are optional enrichments.
type Runner struct {
	Fetcher     kattlog.Fetcher
	Products    kattlog.ProductExtractor
	Categories  kattlog.CategoryExtractor
	NavHTML     kattlog.NavHTMLSelector
	Namer       kattlog.CategoryNamer
	RateLimiter kattlog.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// PageResult holds the classification outcome for one page.
type PageResult struct {
	URL        string
	Method     string
	Products   []kattlog.ProductCandidate
	Categories []kattlog.Category
	Err        error
}

// Result aggregates a batch run.
type Result struct {
	Pages      []PageResult
	Failed     int
	Products   int
	Categories int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run fetches and classifies every URL. Pages are processed concurrently
// up to Concurrency, results come back in input order, and one bad page
// never aborts the batch: its PageResult carries the error instead.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	pages := make([]PageResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, pageURL := range urls {
		g.Go(func() error {
			pages[i] = r.processURL(gctx, pageURL)

			done := int(completed.Add(1))
			if progress == nil {
				return nil
			}
			if pages[i].Err != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: done,
					Total:     total,
					URL:       pageURL,
					Error:     pages[i].Err,
				})
			} else {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: done,
					Total:     total,
					URL:       pageURL,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Pages: pages}
	for _, page := range pages {
		if page.Err != nil {
			result.Failed++
			continue
		}
		result.Products += len(page.Products)
		result.Categories += len(page.Categories)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return result, nil
}

// processURL fetches and classifies a single page.
func (r *Runner) processURL(ctx context.Context, pageURL string) PageResult {
	page := PageResult{URL: pageURL}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		page.Err = kattlog.Errorf(kattlog.EINVALID, "invalid url %q: %v", pageURL, err)
		return page
	}

	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			page.Err = err
			return page
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetched, err := FetchWithRetryDelays(ctx, pageURL, r.Fetcher, nil, delays)
	if err != nil {
		page.Err = err
		return page
	}
	page.Method = fetched.Method

	products, err := r.Products.ExtractProducts(fetched.HTML, pageURL)
	if err != nil {
		page.Err = err
		return page
	}
	page.Products = products

	categories, err := r.classifyCategories(ctx, fetched.HTML, pageURL)
	if err != nil {
		page.Err = err
		return page
	}
	page.Categories = categories

	return page
}

// classifyCategories runs the rule-based category passes and, when the
// naming collaborator is configured, lets its results take precedence.
// Namer failures degrade to the rule-based result.
func (r *Runner) classifyCategories(ctx context.Context, html string, pageURL string) ([]kattlog.Category, error) {
	if r.Namer != nil && r.NavHTML != nil {
		if navHTML, err := r.NavHTML.SelectNavHTML(html, pageURL); err == nil && navHTML != "" {
			if named, err := r.Namer.NameCategories(ctx, navHTML, pageURL); err == nil && len(named) > 0 {
				return named, nil
			}
		}
	}

	nav, err := r.Categories.ExtractNavigation(html, pageURL)
	if err != nil {
		return nil, err
	}
	content, err := r.Categories.ExtractContentCategories(html, pageURL)
	if err != nil {
		return nil, err
	}
	return mergeCategories(nav, content), nil
}

// mergeCategories concatenates the two passes, dropping duplicate URLs.
// Navigation results come first so a link found by both passes keeps its
// text classification.
func mergeCategories(nav, content []kattlog.Category) []kattlog.Category {
	merged := make([]kattlog.Category, 0, len(nav)+len(content))
	seen := make(map[string]bool, len(nav)+len(content))
	for _, pass := range [][]kattlog.Category{nav, content} {
		for _, c := range pass {
			if c.URL != "" && seen[c.URL] {
				continue
			}
			seen[c.URL] = true
			merged = append(merged, c)
		}
	}
	return merged
}
