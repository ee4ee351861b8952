package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kattlog/kattlog"
	main "github.com/kattlog/kattlog/cmd/kattlog"
	"github.com/kattlog/kattlog/crawl"
	"github.com/kattlog/kattlog/goquery"
	"github.com/kattlog/kattlog/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingHTML = `<html><body>
<nav><ul>
<li><a href="/sofas">Sofás</a></li>
<li><a href="/mesas">Mesas</a></li>
<li><a href="/sillas">Sillas</a></li>
<li><a href="/dormitorio">Dormitorio</a></li>
</ul></nav>
<main>
<div class="product-card"><a href="/producto/mesa"><img src="/img/mesa.jpg" alt="Mesa de centro"></a><h3>Mesa de centro</h3><span class="price">129,00 €</span></div>
<div class="product-card"><a href="/producto/silla"><img src="/img/silla.jpg" alt="Silla nórdica"></a><h3>Silla nórdica</h3><span class="price">59,00 €</span></div>
<div class="product-card"><a href="/producto/sofa"><img src="/img/sofa.jpg" alt="Sofá gris"></a><h3>Sofá gris</h3><span class="price">499,00 €</span></div>
</main>
</body></html>`

func testDeps(t *testing.T, html string) (*main.Dependencies, *bytes.Buffer) {
	t.Helper()

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (*kattlog.FetchResult, error) {
			return &kattlog.FetchResult{Success: true, HTML: html, Method: "http"}, nil
		},
	}

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:        context.Background(),
		Stdout:     stdout,
		Stderr:     &bytes.Buffer{},
		Products:   goquery.NewExtractor(),
		Categories: goquery.NewCategoryExtractor(),
		NavHTML:    goquery.NewNavHTMLSelector(),
	}
	deps.Runner = &crawl.Runner{
		Fetcher:     fetcher,
		Products:    deps.Products,
		Categories:  deps.Categories,
		RetryDelays: []time.Duration{0},
	}
	return deps, stdout
}

func TestProductsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints products per page", func(t *testing.T) {
		t.Parallel()

		deps, stdout := testDeps(t, listingHTML)
		cmd := &main.ProductsCmd{URLs: []string{"https://example.com/catalogo"}}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Mesa de centro")
		assert.Contains(t, output, "129,00 €")
		assert.Contains(t, output, "3 products from 1 pages")
	})

	t.Run("JSON output round-trips", func(t *testing.T) {
		t.Parallel()

		deps, stdout := testDeps(t, listingHTML)
		cmd := &main.ProductsCmd{URLs: []string{"https://example.com/catalogo"}, JSON: true}

		require.NoError(t, cmd.Run(deps))

		var candidates []kattlog.ProductCandidate
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &candidates))
		require.Len(t, candidates, 3)
		assert.Equal(t, "https://example.com/producto/mesa", candidates[0].ProductURL)
	})

	t.Run("all pages failing is an error", func(t *testing.T) {
		t.Parallel()

		deps, _ := testDeps(t, listingHTML)
		deps.Runner.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*kattlog.FetchResult, error) {
				return &kattlog.FetchResult{Success: false, Error: "blocked", Method: "http"}, nil
			},
		}
		cmd := &main.ProductsCmd{URLs: []string{"https://example.com/catalogo"}}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, kattlog.EUNAVAILABLE, kattlog.ErrorCode(err))
	})
}

func TestRun_FileSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalogo.html")
	require.NoError(t, os.WriteFile(path, []byte(listingHTML), 0o644))

	stdout := &bytes.Buffer{}
	args := []string{"--file", path, "products", "--json", "https://example.com/catalogo"}
	require.NoError(t, main.Run(context.Background(), args, stdout, &bytes.Buffer{}))

	var candidates []kattlog.ProductCandidate
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &candidates))
	require.Len(t, candidates, 3)
	assert.Equal(t, "https://example.com/producto/mesa", candidates[0].ProductURL)
}

func TestCategoriesCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout := testDeps(t, listingHTML)
	cmd := &main.CategoriesCmd{URL: "https://example.com/"}

	require.NoError(t, cmd.Run(deps))

	output := stdout.String()
	assert.Contains(t, output, "Sofás")
	assert.Contains(t, output, "https://example.com/sofas")
	assert.Contains(t, output, "text")
}

func TestNavCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout := testDeps(t, listingHTML)
	cmd := &main.NavCmd{URL: "https://example.com/"}

	require.NoError(t, cmd.Run(deps))

	output := stdout.String()
	assert.True(t, strings.Contains(output, "<ul>") || strings.Contains(output, "<nav>"),
		"nav selection should emit container HTML, got: %s", output)
	assert.Contains(t, output, "Sofás")
}
