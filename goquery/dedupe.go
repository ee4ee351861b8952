package goquery

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/kattlog/kattlog"
)

// dedupe collapses duplicate candidates, keeping the first occurrence.
// Candidates with a product URL are keyed by it; the rest by a composite
// hash of normalized title, digits-only price, and the image URL stripped
// of its query string.
func dedupe(candidates []kattlog.ProductCandidate) []kattlog.ProductCandidate {
	seen := make(map[string]bool, len(candidates))
	out := make([]kattlog.ProductCandidate, 0, len(candidates))
	for _, c := range candidates {
		key := dedupeKey(&c)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// dedupeKey derives the deduplication key for a candidate.
func dedupeKey(c *kattlog.ProductCandidate) string {
	if c.ProductURL != "" {
		return "url:" + c.ProductURL
	}
	composite := normalizeTitle(c.Title) + "|" + digitsOnly(c.Price) + "|" + stripQuery(c.ImageURL)
	return fmt.Sprintf("cmp:%x", xxhash.Sum64String(composite))
}

// normalizeTitle lowercases and collapses whitespace.
func normalizeTitle(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}

// digitsOnly keeps only the digit runes of s.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripQuery removes the query string and fragment from a URL.
func stripQuery(rawURL string) string {
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}
