package crawl_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/crawl"
	"github.com/kattlog/kattlog/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okFetcher(html string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*kattlog.FetchResult, error) {
			return &kattlog.FetchResult{Success: true, HTML: html, Method: "browser"}, nil
		},
	}
}

func staticProducts(products ...kattlog.ProductCandidate) *mock.ProductExtractor {
	return &mock.ProductExtractor{
		ExtractProductsFn: func(html string, baseURL string) ([]kattlog.ProductCandidate, error) {
			return products, nil
		},
	}
}

func staticCategories(nav, content []kattlog.Category) *mock.CategoryExtractor {
	return &mock.CategoryExtractor{
		ExtractNavigationFn: func(html string, baseURL string) ([]kattlog.Category, error) {
			return nav, nil
		},
		ExtractContentCategoriesFn: func(html string, baseURL string) ([]kattlog.Category, error) {
			return content, nil
		},
	}
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("classifies every page and keeps input order", func(t *testing.T) {
		t.Parallel()

		runner := &crawl.Runner{
			Fetcher: okFetcher("<html></html>"),
			Products: staticProducts(kattlog.ProductCandidate{
				Title:      "Mesa de centro",
				Price:      "129,00 €",
				ImageURL:   "https://cdn.example.com/mesa.jpg",
				ProductURL: "https://example.com/producto/mesa",
			}),
			Categories:  staticCategories([]kattlog.Category{{Name: "Sofás", URL: "https://example.com/sofas", Type: kattlog.CategoryText}}, nil),
			RetryDelays: []time.Duration{0},
		}

		urls := []string{"https://example.com/a", "https://example.com/b", "https://example.com/c"}
		result, err := runner.Run(context.Background(), urls, nil)
		require.NoError(t, err)

		require.Len(t, result.Pages, 3)
		for i, page := range result.Pages {
			assert.Equal(t, urls[i], page.URL)
			assert.Equal(t, "browser", page.Method)
			require.NoError(t, page.Err)
			assert.Len(t, page.Products, 1)
			assert.Len(t, page.Categories, 1)
		}
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, 3, result.Products)
		assert.Equal(t, 3, result.Categories)
	})

	t.Run("one bad page does not abort the batch", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*kattlog.FetchResult, error) {
				if url == "https://example.com/broken" {
					return &kattlog.FetchResult{Success: false, Error: "net::ERR_TIMED_OUT", Method: "browser"}, nil
				}
				return &kattlog.FetchResult{Success: true, HTML: "<html></html>", Method: "browser"}, nil
			},
		}

		runner := &crawl.Runner{
			Fetcher:     fetcher,
			Products:    staticProducts(),
			Categories:  staticCategories(nil, nil),
			RetryDelays: []time.Duration{0},
		}

		result, err := runner.Run(context.Background(), []string{
			"https://example.com/ok",
			"https://example.com/broken",
		}, nil)
		require.NoError(t, err)

		assert.NoError(t, result.Pages[0].Err)
		require.Error(t, result.Pages[1].Err)
		assert.Equal(t, kattlog.EUNAVAILABLE, kattlog.ErrorCode(result.Pages[1].Err))
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		runner := &crawl.Runner{
			Fetcher:     okFetcher("<html></html>"),
			Products:    staticProducts(),
			Categories:  staticCategories(nil, nil),
			Concurrency: 1,
			RetryDelays: []time.Duration{0},
		}

		var mu sync.Mutex
		var types []crawl.ProgressType
		progress := func(event crawl.ProgressEvent) {
			mu.Lock()
			types = append(types, event.Type)
			mu.Unlock()
		}

		_, err := runner.Run(context.Background(), []string{"https://example.com/a", "https://example.com/b"}, progress)
		require.NoError(t, err)

		require.Len(t, types, 4)
		assert.Equal(t, crawl.ProgressStarted, types[0])
		assert.Equal(t, crawl.ProgressCompleted, types[1])
		assert.Equal(t, crawl.ProgressCompleted, types[2])
		assert.Equal(t, crawl.ProgressFinished, types[3])
	})

	t.Run("rate limiter is consulted per page host", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var domains []string
		limiter := &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, domain string) error {
				mu.Lock()
				domains = append(domains, domain)
				mu.Unlock()
				return nil
			},
		}

		runner := &crawl.Runner{
			Fetcher:     okFetcher("<html></html>"),
			Products:    staticProducts(),
			Categories:  staticCategories(nil, nil),
			RateLimiter: limiter,
			Concurrency: 1,
			RetryDelays: []time.Duration{0},
		}

		_, err := runner.Run(context.Background(), []string{"https://shop-a.example.com/", "https://shop-b.example.com/"}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"shop-a.example.com", "shop-b.example.com"}, domains)
	})

	t.Run("namer results take precedence over rule-based passes", func(t *testing.T) {
		t.Parallel()

		runner := &crawl.Runner{
			Fetcher:    okFetcher("<html></html>"),
			Products:   staticProducts(),
			Categories: staticCategories([]kattlog.Category{{Name: "menu item", Type: kattlog.CategoryText}}, nil),
			NavHTML: &mock.NavHTMLSelector{
				SelectNavHTMLFn: func(html string, baseURL string) (string, error) {
					return "<nav><a href='/sofas'>Sofás</a></nav>", nil
				},
			},
			Namer: &mock.CategoryNamer{
				NameCategoriesFn: func(ctx context.Context, navHTML string, baseURL string) ([]kattlog.Category, error) {
					return []kattlog.Category{{Name: "Sofás", URL: "https://example.com/sofas", Type: kattlog.CategoryText}}, nil
				},
			},
			RetryDelays: []time.Duration{0},
		}

		result, err := runner.Run(context.Background(), []string{"https://example.com/"}, nil)
		require.NoError(t, err)

		require.Len(t, result.Pages[0].Categories, 1)
		assert.Equal(t, "Sofás", result.Pages[0].Categories[0].Name)
	})

	t.Run("namer failure degrades to the rule-based passes", func(t *testing.T) {
		t.Parallel()

		runner := &crawl.Runner{
			Fetcher:  okFetcher("<html></html>"),
			Products: staticProducts(),
			Categories: staticCategories(
				[]kattlog.Category{{Name: "Sofás", URL: "https://example.com/sofas", Type: kattlog.CategoryText}},
				[]kattlog.Category{
					{Name: "Sofás", URL: "https://example.com/sofas", Type: kattlog.CategoryCard},
					{Name: "Mesas", URL: "https://example.com/mesas", Type: kattlog.CategoryCard},
				},
			),
			NavHTML: &mock.NavHTMLSelector{
				SelectNavHTMLFn: func(html string, baseURL string) (string, error) {
					return "<nav></nav>", nil
				},
			},
			Namer: &mock.CategoryNamer{
				NameCategoriesFn: func(ctx context.Context, navHTML string, baseURL string) ([]kattlog.Category, error) {
					return nil, kattlog.Errorf(kattlog.EUNAVAILABLE, "quota exceeded")
				},
			},
			RetryDelays: []time.Duration{0},
		}

		result, err := runner.Run(context.Background(), []string{"https://example.com/"}, nil)
		require.NoError(t, err)

		// The duplicate URL from the content pass is dropped; the nav
		// pass keeps its text classification.
		categories := result.Pages[0].Categories
		require.Len(t, categories, 2)
		assert.Equal(t, kattlog.CategoryText, categories[0].Type)
		assert.Equal(t, "Mesas", categories[1].Name)
	})

	t.Run("invalid URL fails that page only", func(t *testing.T) {
		t.Parallel()

		runner := &crawl.Runner{
			Fetcher:     okFetcher("<html></html>"),
			Products:    staticProducts(),
			Categories:  staticCategories(nil, nil),
			RetryDelays: []time.Duration{0},
		}

		result, err := runner.Run(context.Background(), []string{"https://example.com/ok", "ht tp://bad"}, nil)
		require.NoError(t, err)
		assert.NoError(t, result.Pages[0].Err)
		require.Error(t, result.Pages[1].Err)
		assert.Equal(t, kattlog.EINVALID, kattlog.ErrorCode(result.Pages[1].Err))
	})
}
