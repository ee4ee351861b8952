package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/parse"
)

// Ensure CategoryExtractor implements kattlog.CategoryExtractor.
var _ kattlog.CategoryExtractor = (*CategoryExtractor)(nil)

// navContainerSelector matches semantic navigation containers, scanned
// before falling back to all page anchors.
const navContainerSelector = "nav, header, [role='navigation'], .menu, .nav, .navbar, .navigation, .main-menu"

// mainContentSelector locates the content region for the category-card pass.
const mainContentSelector = "main, #main, .main, #content, .content"

// CategoryExtractor finds category name/URL pairs on hub pages. Both
// passes share the same primitive: walk a container, collect anchors, keep
// those whose cleaned text passes the category-name filter and whose
// resolved URL stays on the page's host.
type CategoryExtractor struct{}

// NewCategoryExtractor creates a new CategoryExtractor.
func NewCategoryExtractor() *CategoryExtractor {
	return &CategoryExtractor{}
}

// ExtractNavigation scans semantic navigation containers for plain-link
// categories, falling back to all page anchors when no container matches,
// and additionally scanning footers when too few categories were found.
func (e *CategoryExtractor) ExtractNavigation(html string, baseURL string) ([]kattlog.Category, error) {
	base, doc, err := parseDocument(html, baseURL)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var categories []kattlog.Category

	collect := func(scope *goquery.Selection) {
		scope.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			if cat, ok := categoryFromAnchor(a, base); ok && !seen[cat.URL+"|"+cat.Name] {
				seen[cat.URL+"|"+cat.Name] = true
				categories = append(categories, cat)
			}
		})
	}

	containers := doc.Find(navContainerSelector)
	if containers.Length() > 0 {
		containers.Each(func(_ int, c *goquery.Selection) { collect(c) })
	} else {
		collect(doc.Selection)
	}

	if len(categories) < kattlog.MinNavCategories {
		doc.Find("footer, .footer").Each(func(_ int, c *goquery.Selection) { collect(c) })
	}

	return categories, nil
}

// ExtractContentCategories scans the main content region for image+link
// elements that explicitly lack price signals. A priced card is a product,
// not a category, so a price match, a price class, or a product-shaped URL
// each disqualify an element.
func (e *CategoryExtractor) ExtractContentCategories(html string, baseURL string) ([]kattlog.Category, error) {
	base, doc, err := parseDocument(html, baseURL)
	if err != nil {
		return nil, err
	}

	region := doc.Find(mainContentSelector).First()
	if region.Length() == 0 {
		region = doc.Find("body").First()
	}

	seen := make(map[string]bool)
	var categories []kattlog.Category

	region.Find("div, article, li, section").Each(func(_ int, sel *goquery.Selection) {
		if sel.Find("img").Length() == 0 {
			return
		}
		a := sel.Find("a[href]").First()
		if a.Length() == 0 {
			return
		}
		if hasPriceSignal(sel) {
			return
		}

		name := cleanText(a.Text())
		if name == "" {
			name = strings.TrimSpace(sel.Find("img").First().AttrOr("alt", ""))
		}
		if name == "" {
			name = cleanText(sel.Find("h1, h2, h3, h4, [class*='title']").First().Text())
		}
		if !parse.ValidCategoryName(name) {
			return
		}

		resolved := resolveURL(base, a.AttrOr("href", ""))
		if resolved == "" || !isSameHost(base, resolved) || samePage(base, resolved) || isMediaURL(resolved) {
			return
		}
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		categories = append(categories, kattlog.Category{
			Name: name,
			URL:  resolved,
			Type: kattlog.CategoryCard,
		})
	})

	return categories, nil
}

// categoryFromAnchor applies the shared anchor filter of both passes.
func categoryFromAnchor(a *goquery.Selection, base *url.URL) (kattlog.Category, bool) {
	href := a.AttrOr("href", "")
	if isNonHTTPLink(href) {
		return kattlog.Category{}, false
	}

	name := cleanText(a.Text())
	if !parse.ValidCategoryName(name) {
		return kattlog.Category{}, false
	}

	resolved := resolveURL(base, href)
	if resolved == "" || !isSameHost(base, resolved) || samePage(base, resolved) || isMediaURL(resolved) {
		return kattlog.Category{}, false
	}

	return kattlog.Category{Name: name, URL: resolved, Type: kattlog.CategoryText}, true
}

// hasPriceSignal reports whether an element carries any price signal:
// price-shaped text, a price class, or a product-detail URL.
func hasPriceSignal(sel *goquery.Selection) bool {
	if parse.LooksLikePrice(cleanText(sel.Text())) {
		return true
	}
	if sel.Find("[class*='price'], [class*='precio']").Length() > 0 {
		return true
	}
	return hasProductURL(sel)
}
