package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isSameHost checks if the resolved URL has the same host as the base URL.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink reports whether an href is a javascript:, mailto:, tel:
// or fragment-only link.
func isNonHTTPLink(href string) bool {
	href = strings.TrimSpace(strings.ToLower(href))
	return href == "" || href == "#" ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:")
}

// cleanText collapses internal whitespace and trims the result.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// classTokens splits a class attribute into its tokens.
func classTokens(class string) []string {
	return strings.Fields(class)
}

// hasClassMatch reports whether any class token of the selection contains
// any of the given substrings.
func hasClassMatch(sel *goquery.Selection, substrings ...string) bool {
	class, _ := sel.Attr("class")
	lower := strings.ToLower(class)
	for _, sub := range substrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// firstAttr returns the first non-empty value among the named attributes.
func firstAttr(sel *goquery.Selection, names ...string) string {
	for _, name := range names {
		if v, ok := sel.Attr(name); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// isMediaURL reports whether a URL points at an image or PDF rather than
// a navigable page.
func isMediaURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".pdf"} {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// samePage reports whether a resolved URL points at the page itself,
// ignoring fragments and trailing slashes.
func samePage(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	norm := func(u *url.URL) string {
		return u.Host + strings.TrimSuffix(u.Path, "/")
	}
	return norm(u) == norm(base)
}
