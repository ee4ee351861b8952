package interactive

import (
	"strings"

	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/parse"
)

// ScoredElement pairs an element with its heuristic score. It lives only
// for the duration of a single pointer-move/click cycle.
type ScoredElement struct {
	Element *Element
	Score   int
}

// chromeTags are structural page chrome; anything inside them can never be
// a product card.
var chromeTags = map[string]bool{
	"header": true, "footer": true, "nav": true, "aside": true,
}

// semanticTags are the container tags eligible for the semantic-class
// signal.
var semanticTags = map[string]bool{
	"article": true, "li": true, "div": true,
}

// semanticClassTokens mark product-card containers by class or id.
var semanticClassTokens = []string{"product", "item", "card", "listing", "grid-item"}

// titleClassTokens mark title-bearing descendants.
var titleClassTokens = []string{"title", "name", "product-name"}

// ctaVocabulary is the add-to-cart/buy wording that marks a purchasable
// card.
var ctaVocabulary = []string{
	"add to cart", "add to bag", "añadir al carrito", "añadir a la cesta",
	"añadir", "comprar", "buy now", "buy", "shop now", "al carrito",
}

// Scorer computes the weighted heuristic score of a single element. It is
// stateless; all weights live in the kattlog policy constants.
type Scorer struct {
	Layout Layout
}

// NewScorer creates a Scorer over the given layout.
func NewScorer(layout Layout) *Scorer {
	return &Scorer{Layout: layout}
}

// Score computes the element's weighted score. Structural exclusion is
// absolute: an element inside page chrome scores the exclusion penalty
// regardless of every other signal.
func (s *Scorer) Score(el *Element) int {
	if s.insideChrome(el) {
		return kattlog.ScoreStructuralExclusion
	}

	score := 0

	if w := s.Layout.ElementBox(el).Width; w > s.Layout.ViewportWidth()*kattlog.OversizedViewportRatio {
		score += kattlog.ScoreOversized
	}

	text := el.Text()
	if parse.LooksLikePrice(text) || parse.HasCurrencySymbol(text) {
		score += kattlog.ScorePriceText
	}

	if s.hasTitle(el) {
		score += kattlog.ScoreTitlePresent
	}

	if img := s.qualifyingImage(el); img != nil {
		score += kattlog.ScoreImagePresent
		if s.Layout.ElementBox(img).Width >= kattlog.LargeImageWidth {
			score += kattlog.ScoreLargeImage
		}
	}

	if semanticTags[el.TagName()] && containsAny(el.ClassID(), semanticClassTokens) {
		score += kattlog.ScoreSemanticClass
	}

	if s.hasCallToAction(el) {
		score += kattlog.ScoreCallToAction
	}

	return score
}

// BestAncestor walks from the element up to kattlog.AncestorWalkDepth
// levels (stopping at body) and returns the maximum-scoring element, or
// nil when the maximum does not clear the highlight threshold. The element
// under the cursor is usually an image or text leaf, not the card
// boundary, so the walk looks upward for the best-scoring container.
func (s *Scorer) BestAncestor(el *Element) *ScoredElement {
	var best *ScoredElement

	cur := el
	for depth := 0; depth <= kattlog.AncestorWalkDepth && cur != nil; depth++ {
		tag := cur.TagName()
		if tag == "body" || tag == "html" {
			break
		}
		if tag != "" {
			score := s.Score(cur)
			if best == nil || score > best.Score {
				best = &ScoredElement{Element: cur, Score: score}
			}
		}
		cur = cur.Parent()
	}

	if best == nil || best.Score < kattlog.ScoreThreshold {
		return nil
	}
	return best
}

// insideChrome reports whether the element is, or sits inside, structural
// page chrome or a cookie banner.
func (s *Scorer) insideChrome(el *Element) bool {
	return el.Closest(func(c *Element) bool {
		if chromeTags[c.TagName()] {
			return true
		}
		return containsAny(c.ClassID(), []string{"cookie", "consent-banner"})
	}) != nil
}

// hasTitle reports whether the element contains a heading tag or a
// title-class descendant.
func (s *Scorer) hasTitle(el *Element) bool {
	return el.Find(func(c *Element) bool {
		switch c.TagName() {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			return true
		}
		return containsAny(c.ClassID(), titleClassTokens)
	}) != nil
}

// qualifyingImage returns the first descendant image meeting the minimum
// size, or nil.
func (s *Scorer) qualifyingImage(el *Element) *Element {
	for _, img := range el.Descendants("img") {
		box := s.Layout.ElementBox(img)
		if box.Width >= kattlog.MinScoreImageSize && box.Height >= kattlog.MinScoreImageSize {
			return img
		}
	}
	return nil
}

// hasCallToAction reports whether the element contains a button or link
// whose text matches the add-to-cart/buy vocabulary.
func (s *Scorer) hasCallToAction(el *Element) bool {
	check := func(c *Element) bool {
		tag := c.TagName()
		if tag != "button" && tag != "a" {
			return false
		}
		text := strings.ToLower(c.Text())
		for _, kw := range ctaVocabulary {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
	return el.Find(check) != nil
}

// containsAny reports whether the haystack contains any of the needles.
func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
