// Package goquery provides the goquery-backed implementations of the
// batch classification interfaces: product extraction as a tournament of
// enumeration strategies, and the navigation/category extraction passes.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kattlog/kattlog"
)

// Ensure Extractor implements kattlog.ProductExtractor at compile time.
var _ kattlog.ProductExtractor = (*Extractor)(nil)

// Extractor finds product cards by running independent enumeration
// strategies over the document and selecting the one that yields the most
// valid candidates. No single selector list survives contact with
// arbitrary markup; the token-frequency strategy is the generic fallback
// for unfamiliar class naming conventions.
//
// Extractor is pure and stateless; concurrent invocations are independent.
type Extractor struct {
	strategies []Strategy
}

// NewExtractor creates an Extractor with the default strategy tournament.
func NewExtractor() *Extractor {
	return &Extractor{
		strategies: []Strategy{
			NewFixedStrategy(),
			NewTokenStrategy(),
		},
	}
}

// NewExtractorWithStrategies creates an Extractor with a custom strategy set.
func NewExtractorWithStrategies(strategies ...Strategy) *Extractor {
	return &Extractor{strategies: strategies}
}

// ExtractProducts parses HTML, runs the strategy tournament, and returns
// the winner's candidates deduplicated and capped at kattlog.MaxCandidates.
// Ties go to the first strategy in registration order. An empty result is
// not an error.
func (e *Extractor) ExtractProducts(html string, baseURL string) ([]kattlog.ProductCandidate, error) {
	base, doc, err := parseDocument(html, baseURL)
	if err != nil {
		return nil, err
	}

	var best []kattlog.ProductCandidate
	for _, strategy := range e.strategies {
		candidates := strategy.Extract(doc, base)
		if len(candidates) > len(best) {
			best = candidates
		}
	}

	best = dedupe(best)
	if len(best) > kattlog.MaxCandidates {
		best = best[:kattlog.MaxCandidates]
	}
	return best, nil
}

// parseDocument parses the base URL and document once for all passes.
func parseDocument(html string, baseURL string) (*url.URL, *goquery.Document, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, nil, kattlog.Errorf(kattlog.EINVALID, "invalid base URL: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, kattlog.Errorf(kattlog.EINVALID, "failed to parse HTML: %v", err)
	}
	return base, doc, nil
}
