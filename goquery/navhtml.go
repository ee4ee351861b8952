package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kattlog/kattlog"
)

// Ensure NavHTMLSelector implements kattlog.NavHTMLSelector.
var _ kattlog.NavHTMLSelector = (*NavHTMLSelector)(nil)

// catalogKeywords mark anchors that enter the catalog section of a site.
// A container adjacent to one of these is very likely the category menu.
var catalogKeywords = []string{
	"productos", "producto", "shop", "tienda", "catálogo", "catalogo",
	"categorías", "categorias", "collections", "comprar", "muebles",
}

// NavHTMLSelector scores whole containers by link quality and returns the
// top non-nested ones concatenated. Its output is handed to the optional
// AI-based category namer; the rule-based passes stay correct without it.
type NavHTMLSelector struct{}

// NewNavHTMLSelector creates a new NavHTMLSelector.
func NewNavHTMLSelector() *NavHTMLSelector {
	return &NavHTMLSelector{}
}

type scoredContainer struct {
	sel   *goquery.Selection
	score float64
	order int
}

// SelectNavHTML scores every anchor-bearing container by
// valid-link-ratio × link-count, boosts containers adjacent to a
// catalog-entry anchor, and returns the HTML of the top non-nested
// containers concatenated.
func (s *NavHTMLSelector) SelectNavHTML(html string, baseURL string) (string, error) {
	base, doc, err := parseDocument(html, baseURL)
	if err != nil {
		return "", err
	}

	var containers []scoredContainer
	doc.Find("nav, ul, div").Each(func(i int, sel *goquery.Selection) {
		anchors := sel.Find("a[href]")
		total := anchors.Length()
		if total < kattlog.MinNavCategories {
			return
		}

		valid := 0
		anchors.Each(func(_ int, a *goquery.Selection) {
			if _, ok := categoryFromAnchor(a, base); ok {
				valid++
			}
		})
		if valid == 0 {
			return
		}

		score := float64(valid) / float64(total) * float64(total)
		if adjacentToCatalogAnchor(sel) {
			score *= kattlog.NavCatalogBoost
		}
		containers = append(containers, scoredContainer{sel: sel, score: score, order: i})
	})

	sort.SliceStable(containers, func(i, j int) bool {
		return containers[i].score > containers[j].score
	})

	// Keep the top containers, skipping any that nest inside (or contain)
	// an already-selected one.
	var picked []scoredContainer
	for _, c := range containers {
		if len(picked) >= kattlog.NavMaxContainers {
			break
		}
		nested := false
		for _, p := range picked {
			if contains(p.sel, c.sel) || contains(c.sel, p.sel) {
				nested = true
				break
			}
		}
		if !nested {
			picked = append(picked, c)
		}
	}

	var b strings.Builder
	for _, c := range picked {
		if h, err := goquery.OuterHtml(c.sel); err == nil {
			b.WriteString(h)
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// adjacentToCatalogAnchor reports whether the container sits next to an
// anchor whose text matches catalog-entry keywords: as a preceding
// sibling, or as an anchor on the parent level.
func adjacentToCatalogAnchor(sel *goquery.Selection) bool {
	check := func(s *goquery.Selection) bool {
		found := false
		s.EachWithBreak(func(_ int, n *goquery.Selection) bool {
			text := strings.ToLower(cleanText(n.Text()))
			for _, kw := range catalogKeywords {
				if strings.Contains(text, kw) {
					found = true
					return false
				}
			}
			return true
		})
		return found
	}

	if check(sel.Prev().Filter("a")) || check(sel.Prev().Find("a")) {
		return true
	}
	parent := sel.Parent()
	if parent.Length() > 0 && check(parent.ChildrenFiltered("a")) {
		return true
	}
	return false
}

// contains reports whether outer contains inner.
func contains(outer, inner *goquery.Selection) bool {
	if outer.Length() == 0 || inner.Length() == 0 {
		return false
	}
	in := inner.Nodes[0]
	found := false
	outer.Find("*").EachWithBreak(func(_ int, d *goquery.Selection) bool {
		if d.Nodes[0] == in {
			found = true
			return false
		}
		return true
	})
	return found
}
