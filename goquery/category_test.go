package goquery_test

import (
	"testing"

	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryExtractor_ExtractNavigation(t *testing.T) {
	t.Parallel()

	t.Run("extracts valid categories from semantic nav", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html><html><body>
<nav>
	<a href="/sofas">Sofás</a>
	<a href="/jardin">Muebles de Jardín</a>
	<a href="/mesas-centro">Mesas de centro</a>
	<a href="/cuenta">Mi cuenta</a>
	<a href="/black-friday-2026">Black Friday 2026</a>
	<a href="https://otherhost.com/sofas">Sofás externos</a>
</nav>
<main><a href="/producto/1">Cama en Madera Deleyna</a></main>
</body></html>`

		e := goquery.NewCategoryExtractor()
		categories, err := e.ExtractNavigation(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, "Sofás", categories[0].Name)
		assert.Equal(t, "https://example.com/sofas", categories[0].URL)
		assert.Equal(t, kattlog.CategoryText, categories[0].Type)
	})

	t.Run("falls back to all anchors when no nav container", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html><html><body>
<div><a href="/sofas">Sofás</a> <a href="/alfombras">Alfombras</a></div>
</body></html>`

		e := goquery.NewCategoryExtractor()
		categories, err := e.ExtractNavigation(html, "https://example.com")

		require.NoError(t, err)
		assert.Len(t, categories, 2)
	})

	t.Run("scans footer when too few categories found", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html><html><body>
<nav><a href="/sofas">Sofás</a></nav>
<footer>
	<a href="/iluminacion">Iluminación</a>
	<a href="/alfombras">Alfombras</a>
	<a href="/privacidad">Privacidad</a>
</footer>
</body></html>`

		e := goquery.NewCategoryExtractor()
		categories, err := e.ExtractNavigation(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, categories, 3)
		assert.Equal(t, "Iluminación", categories[1].Name)
	})

	t.Run("skips the current page and media links", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html><html><body>
<nav>
	<a href="https://example.com/catalogo">Catálogo</a>
	<a href="/catalogo/mapa.pdf">Alfombras</a>
	<a href="/sofas">Sofás</a>
</nav>
</body></html>`

		e := goquery.NewCategoryExtractor()
		categories, err := e.ExtractNavigation(html, "https://example.com/catalogo")

		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, "Sofás", categories[0].Name)
	})
}

func TestCategoryExtractor_ExtractContentCategories(t *testing.T) {
	t.Parallel()

	t.Run("keeps priceless image cards and drops priced ones", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html><html><body><main>
<div class="hub-card">
	<a href="/sofas"><img src="https://cdn.example.com/categories/sofas.jpg" alt="Sofás">Sofás</a>
</div>
<div class="hub-card">
	<a href="/alfombras"><img src="https://cdn.example.com/categories/alfombras.jpg" alt="Alfombras">Alfombras</a>
</div>
<div class="hub-card">
	<a href="/producto/mesa-rustica"><img src="https://cdn.example.com/products/mesa.jpg" alt="Mesa">Mesas</a>
	<span class="price">199 €</span>
</div>
</main></body></html>`

		e := goquery.NewCategoryExtractor()
		categories, err := e.ExtractContentCategories(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Sofás", categories[0].Name)
		assert.Equal(t, kattlog.CategoryCard, categories[0].Type)
		assert.Equal(t, "https://example.com/sofas", categories[0].URL)
	})

	t.Run("product-shaped URLs disqualify even without a visible price", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html><html><body><main>
<div class="hub-card">
	<a href="/producto/cama"><img src="https://cdn.example.com/products/cama.jpg" alt="Camas">Camas</a>
</div>
</main></body></html>`

		e := goquery.NewCategoryExtractor()
		categories, err := e.ExtractContentCategories(html, "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, categories)
	})
}
