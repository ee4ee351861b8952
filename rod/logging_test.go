package rod_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/mock"
	"github.com/kattlog/kattlog/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs the fetch outcome", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*kattlog.FetchResult, error) {
				return &kattlog.FetchResult{Success: true, HTML: "<html></html>", Method: "browser"}, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		f := rod.NewLoggingFetcher(next, logger)
		result, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Contains(t, buf.String(), "url=https://example.com")
		assert.Contains(t, buf.String(), "success=true")
	})

	t.Run("logs errors without masking them", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*kattlog.FetchResult, error) {
				return nil, kattlog.Errorf(kattlog.EINTERNAL, "browser crashed")
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		f := rod.NewLoggingFetcher(next, logger)
		_, err := f.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "browser crashed")
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*kattlog.FetchResult, error) { return nil, nil },
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		f := rod.NewLoggingFetcher(next, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
