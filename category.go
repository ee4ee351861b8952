package kattlog

import "context"

// CategoryType records which extraction strategy produced a category, for
// downstream disambiguation.
type CategoryType string

// Category origin markers.
const (
	// CategoryCard means the category was found as a visual card
	// (image + link) in the content region.
	CategoryCard CategoryType = "card"

	// CategoryText means the category was found as a plain navigation link.
	CategoryText CategoryType = "text"
)

// Category is a category name/URL pair extracted from a hub page.
type Category struct {
	Name string       `json:"name"`
	URL  string       `json:"url,omitempty"`
	Type CategoryType `json:"type"`
}

// CategoryExtractor finds category links on pages that act as hubs rather
// than product listings. Both passes are rule-based and must remain
// independently correct when the AI naming collaborator is unavailable.
type CategoryExtractor interface {
	// ExtractNavigation walks semantic navigation containers (nav, header,
	// menus) and returns plain-link categories. Falls back to scanning all
	// page anchors when no container matches, and additionally scans footer
	// containers when fewer than three categories were found.
	ExtractNavigation(html string, baseURL string) ([]Category, error)

	// ExtractContentCategories scans the main content region for
	// image+link elements that explicitly lack price signals. A priced
	// card is a product, not a category.
	ExtractContentCategories(html string, baseURL string) ([]Category, error)
}

// NavHTMLSelector scores whole containers by link-validity ratio and
// returns the top non-nested containers' HTML concatenated. Its output is
// what gets handed to the optional AI-based category namer.
type NavHTMLSelector interface {
	SelectNavHTML(html string, baseURL string) (string, error)
}

// CategoryNamer is the optional AI enrichment collaborator. Results take
// precedence over the rule-based passes when available, but the engine
// must degrade gracefully when the namer errors or returns nothing.
type CategoryNamer interface {
	// NameCategories derives named categories from the nav-HTML selection
	// output. The baseURL is used to resolve relative URLs in the result.
	NameCategories(ctx context.Context, navHTML string, baseURL string) ([]Category, error)
}
