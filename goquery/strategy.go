package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/kattlog/kattlog"
)

// Strategy enumerates candidate card elements one way and extracts a
// candidate per element. Strategies are independent classifiers; the
// extractor runs them all and keeps whichever produced the most valid
// candidates.
type Strategy interface {
	// Name returns the strategy's identifier (e.g., "fixed", "token").
	Name() string

	// Extract enumerates candidate elements and returns the candidates
	// that pass the validity invariant, in document order.
	Extract(doc *goquery.Document, base *url.URL) []kattlog.ProductCandidate
}
