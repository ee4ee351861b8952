package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kattlog/kattlog"
)

// TokenStrategy is the generic fallback for sites with unfamiliar class
// naming: it finds the CSS class token shared by the largest number of
// card-shaped elements and treats that token as the site's de facto card
// marker.
type TokenStrategy struct{}

// NewTokenStrategy creates a new TokenStrategy.
func NewTokenStrategy() *TokenStrategy {
	return &TokenStrategy{}
}

// Name returns the strategy's identifier.
func (s *TokenStrategy) Name() string {
	return "token"
}

// Extract runs a class-token frequency census over card-shaped elements
// and extracts candidates from exactly the elements carrying the most
// frequent token. Returns nothing when no token recurs often enough.
func (s *TokenStrategy) Extract(doc *goquery.Document, base *url.URL) []kattlog.ProductCandidate {
	type tokenStat struct {
		count int
		first int // document-order index of first occurrence, for deterministic ties
	}
	stats := make(map[string]*tokenStat)
	var shaped []*goquery.Selection

	doc.Find("div, article, li").Each(func(i int, sel *goquery.Selection) {
		if !cardShaped(sel) {
			return
		}
		shaped = append(shaped, sel)
		for _, token := range classTokens(sel.AttrOr("class", "")) {
			if len(token) < 3 {
				continue
			}
			if st, ok := stats[token]; ok {
				st.count++
			} else {
				stats[token] = &tokenStat{count: 1, first: i}
			}
		}
	})

	// Pick the most frequent token occurring on more than the minimum
	// number of elements. Ties resolve to the earliest-seen token so the
	// result is deterministic for identical input.
	var bestToken string
	var bestStat *tokenStat
	for token, st := range stats {
		if st.count <= kattlog.MinSelectorMatches {
			continue
		}
		if bestStat == nil || st.count > bestStat.count ||
			(st.count == bestStat.count && st.first < bestStat.first) ||
			(st.count == bestStat.count && st.first == bestStat.first && token < bestToken) {
			bestToken, bestStat = token, st
		}
	}
	if bestToken == "" {
		return nil
	}

	var candidates []kattlog.ProductCandidate
	for _, sel := range shaped {
		if !hasClassToken(sel, bestToken) {
			continue
		}
		if c := extractCard(sel, base); validCandidate(c) {
			candidates = append(candidates, *c)
		}
	}
	return candidates
}

// cardShaped reports whether an element looks like a product card: it
// contains an image and a link, its serialized size is within bounds, and
// it does not sit inside footer/header/payment chrome.
func cardShaped(sel *goquery.Selection) bool {
	if sel.Find("img").Length() == 0 || sel.Find("a[href]").Length() == 0 {
		return false
	}
	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return false
	}
	if len(html) < kattlog.MinCardHTMLLen || len(html) > kattlog.MaxCardHTMLLen {
		return false
	}
	return !insideChrome(sel)
}

// insideChrome reports whether the element or any ancestor is page chrome
// (header, footer, nav, or payment/cookie containers).
func insideChrome(sel *goquery.Selection) bool {
	for p := sel; p.Length() > 0; p = p.Parent() {
		switch goquery.NodeName(p) {
		case "footer", "header", "nav", "aside":
			return true
		case "body", "html":
			return false
		}
		if hasClassMatch(p, "footer", "header", "payment", "cookie", "newsletter") {
			return true
		}
	}
	return false
}

// hasClassToken reports whether the selection carries the exact class token.
func hasClassToken(sel *goquery.Selection, token string) bool {
	for _, t := range classTokens(sel.AttrOr("class", "")) {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}
