//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements kattlog.Fetcher.
var _ kattlog.Fetcher = (*rod.Fetcher)(nil)

func TestFetcher_Fetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Don't respond - let context timeout
		select {}
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err = fetcher.Fetch(ctx, srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_Fetch_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	// Serve a page that renders its product grid with JavaScript, the
	// case the browser fetcher exists for.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Catálogo</title></head>
<body>
<div id="grid">Loading...</div>
<script>
document.getElementById('grid').innerHTML =
  '<div class="product-card"><img src="/mesa.jpg"><h3>Mesa de centro</h3><span class="price">129,00 €</span></div>';
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	result, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "browser", result.Method)
	assert.Contains(t, result.HTML, "Mesa de centro")
	assert.NotContains(t, result.HTML, "Loading...")
}

func TestFetcher_Fetch_NavigationFailureIsPageLevel(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	result, err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1/unreachable")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, "browser", result.Method)
}
