package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/parse"
)

// productURLTokens mark hrefs that follow common product-detail URL
// conventions.
var productURLTokens = []string{"/product", "/producto", "/p/", "/item", "/dp/"}

// extractCard builds a candidate record from one DOM element believed to
// be a product card, using an ordered fallback chain per field. Returns
// nil when the element has no usable image at all.
func extractCard(sel *goquery.Selection, base *url.URL) *kattlog.ProductCandidate {
	c := &kattlog.ProductCandidate{}

	// Image: first <img> only. Multi-image cards are assumed to be
	// carousels; only the first is trusted as the primary photo.
	img := sel.Find("img").First()
	alt := ""
	if img.Length() > 0 {
		alt = strings.TrimSpace(img.AttrOr("alt", ""))
		src := firstAttr(img, "src", "data-src", "data-lazy-src", "data-original")
		if src == "" {
			// First srcset entry is "url [descriptor]"; a srcset that is
			// all whitespace or comma-led yields no fields at all.
			if entry := strings.Split(img.AttrOr("srcset", ""), ",")[0]; entry != "" {
				if parts := strings.Fields(entry); len(parts) > 0 {
					src = parts[0]
				}
			}
		}
		if resolved := resolveURL(base, src); parse.ValidImageURL(resolved, alt) {
			c.ImageURL = resolved
		}
	}

	// Link: first anchor with a navigable href.
	sel.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href := a.AttrOr("href", "")
		if isNonHTTPLink(href) {
			return true
		}
		c.ProductURL = resolveURL(base, href)
		return false
	})

	c.Title = extractTitle(sel, alt)
	c.Price = extractPrice(sel)

	// Long titles are misclassified descriptions: truncate, and keep the
	// original text as the description when none was found elsewhere.
	if desc := extractDescription(sel); desc != "" {
		c.Description = desc
	}
	if len([]rune(c.Title)) > kattlog.TitleMaxLen {
		full := c.Title
		runes := []rune(full)
		c.Title = strings.TrimSpace(string(runes[:kattlog.TitleTruncateLen])) + "…"
		if c.Description == "" {
			c.Description = full
		}
	}

	c.Dimensions = parse.Dimensions(cleanText(sel.Text()), c.Title)

	if html, err := goquery.OuterHtml(sel); err == nil {
		if len(html) > kattlog.HTMLBlockSampleLen {
			html = html[:kattlog.HTMLBlockSampleLen]
		}
		c.HTMLBlock = html
	}

	return c
}

// extractTitle resolves the candidate title through the ordered fallback
// chain: image alt, anchor title attribute, heading or title-class text,
// first anchor text.
func extractTitle(sel *goquery.Selection, alt string) string {
	if alt != "" {
		return alt
	}

	if title := strings.TrimSpace(sel.Find("a[title]").First().AttrOr("title", "")); title != "" {
		if n := len([]rune(title)); n >= kattlog.AnchorTitleMinLen && n <= kattlog.AnchorTitleMaxLen {
			return title
		}
	}

	heading := sel.Find("h1, h2, h3, h4, h5, h6, [class*='title'], [class*='name']").First()
	if text := cleanText(heading.Text()); text != "" {
		return text
	}

	return cleanText(sel.Find("a").First().Text())
}

// extractPrice reads the card's dedicated price element, falling back to
// the whole card's text when the element yields nothing usable (empty,
// over the length cap, or no digit).
func extractPrice(sel *goquery.Selection) string {
	elText := sel.Find("[class*='price'], [class*='precio'], .amount").First().Text()
	elText = strings.TrimSpace(elText)

	// Line breaks commonly carry was/now prices; the last numeric line is
	// assumed to be the current one.
	if strings.ContainsAny(elText, "\n\r") {
		elText = parse.LastPriceLine(elText)
	}

	usable := elText != "" &&
		len([]rune(elText)) <= kattlog.PriceElementMaxLen &&
		strings.ContainsAny(elText, "0123456789")
	if usable {
		if price := parse.Price(elText); price != "" {
			return price
		}
	}

	return parse.Price(cleanText(sel.Text()))
}

// extractDescription looks for an explicit description element inside the
// card.
func extractDescription(sel *goquery.Selection) string {
	desc := sel.Find("[class*='desc'], [class*='summary']").First()
	return cleanText(desc.Text())
}

// validCandidate applies the candidate invariant: a non-empty,
// non-placeholder title, a resolvable image URL, and either a plausible
// price or a title/URL that does not look like a category.
func validCandidate(c *kattlog.ProductCandidate) bool {
	if c == nil || c.ImageURL == "" {
		return false
	}
	title := strings.ToLower(strings.TrimSpace(c.Title))
	if len(title) < 3 {
		return false
	}
	switch title {
	case "producto", "product", "untitled", "sin título", "imagen", "image":
		return false
	}

	if parse.LooksLikePrice(c.Price) {
		return true
	}

	// No price: only keep it if it clearly is not a category in disguise.
	if parse.ValidCategoryName(c.Title) {
		return false
	}
	if looksLikeCategoryURL(c.ProductURL) {
		return false
	}
	return true
}

// looksLikeCategoryURL reports whether a URL follows category-listing
// conventions rather than product-detail ones.
func looksLikeCategoryURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}
	lower := strings.ToLower(rawURL)
	for _, token := range productURLTokens {
		if strings.Contains(lower, token) {
			return false
		}
	}
	for _, token := range []string{"/category", "/categoria", "/collections/", "/c/", "/catalogo"} {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// hasProductURL reports whether the selection links somewhere that follows
// product-detail URL conventions.
func hasProductURL(sel *goquery.Selection) bool {
	found := false
	sel.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href := strings.ToLower(a.AttrOr("href", ""))
		for _, token := range productURLTokens {
			if strings.Contains(href, token) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}
