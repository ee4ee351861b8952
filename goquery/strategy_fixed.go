package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/kattlog/kattlog"
)

// fixedSelectors is the hand-curated list of common card markers, tried in
// order. It gives fast, precise results for well-known templates; the
// token strategy covers everything else.
var fixedSelectors = []string{
	".product-card",
	".product-item",
	".product-tile",
	".o-card",
	".card-product",
	"li.product",
	"article.product-miniature",
	"article[class*='product']",
	"div[class*='product-card']",
	".grid-item",
	"[data-product-id]",
	"article",
}

// FixedStrategy enumerates candidate cards with a curated selector list.
type FixedStrategy struct{}

// NewFixedStrategy creates a new FixedStrategy.
func NewFixedStrategy() *FixedStrategy {
	return &FixedStrategy{}
}

// Name returns the strategy's identifier.
func (s *FixedStrategy) Name() string {
	return "fixed"
}

// Extract tries each curated selector in order. A selector is only
// trusted when it matches more than kattlog.MinSelectorMatches elements;
// among trusted selectors the one yielding the most valid candidates wins.
func (s *FixedStrategy) Extract(doc *goquery.Document, base *url.URL) []kattlog.ProductCandidate {
	var best []kattlog.ProductCandidate
	for _, selector := range fixedSelectors {
		matches := doc.Find(selector)
		if matches.Length() <= kattlog.MinSelectorMatches {
			continue
		}

		var candidates []kattlog.ProductCandidate
		matches.Each(func(_ int, sel *goquery.Selection) {
			if c := extractCard(sel, base); validCandidate(c) {
				candidates = append(candidates, *c)
			}
		})
		if len(candidates) > len(best) {
			best = candidates
		}
	}
	return best
}
