package interactive

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/parse"
)

// CaptureResolver turns a confirmed container selection into an
// InteractiveCapture: the best representative image, the best canonical
// product link, and a text snippet.
type CaptureResolver struct {
	Layout Layout

	// now is swappable for tests.
	now func() time.Time
}

// NewCaptureResolver creates a CaptureResolver over the given layout.
func NewCaptureResolver(layout Layout) *CaptureResolver {
	return &CaptureResolver{Layout: layout, now: time.Now}
}

// Resolve builds the capture record for a confirmed container. The
// pageURL is the URL of the page the container lives in; relative links
// resolve against it.
func (r *CaptureResolver) Resolve(container *Element, pageURL string) *kattlog.InteractiveCapture {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = &url.URL{}
	}

	bestImg := r.bestImage(container)

	previewImage := ""
	if bestImg != nil {
		previewImage = resolveRef(base, bestImg.Attr("src"))
	}

	productURL := r.canonicalLink(container, bestImg, base)
	productURL = unwrapProxyURL(productURL)

	snippet := container.Text()
	if runes := []rune(snippet); len(runes) > kattlog.TextSnippetMaxLen {
		snippet = strings.TrimSpace(string(runes[:kattlog.TextSnippetMaxLen]))
	}

	return &kattlog.InteractiveCapture{
		ID:           uuid.NewString(),
		HTML:         container.OuterHTML(),
		URL:          pageURL,
		ProductURL:   productURL,
		TagName:      container.TagName(),
		PreviewImage: previewImage,
		TextSnippet:  snippet,
		Timestamp:    r.now(),
	}
}

// bestImage returns the image inside the container maximizing
// size − penalties + position bonus. Tiny images are disqualified
// outright; filename/alt markers for logos, badges and ratings are
// heavily penalized; images near the container's top edge get a bonus;
// extreme aspect ratios lose points.
func (r *CaptureResolver) bestImage(container *Element) *Element {
	containerBox := r.Layout.ElementBox(container)

	var best *Element
	bestScore := 0.0
	for _, img := range container.Descendants("img") {
		box := r.Layout.ElementBox(img)
		score := r.scoreImage(img, box, containerBox)
		if score <= 0 {
			continue
		}
		if best == nil || score > bestScore {
			best, bestScore = img, score
		}
	}
	return best
}

// scoreImage computes one image's capture score.
func (r *CaptureResolver) scoreImage(img *Element, box Box, containerBox Box) float64 {
	area := box.Area()
	if area < kattlog.MinCaptureImageArea {
		return -100
	}

	// Size term saturates so one huge hero image cannot outweigh every
	// penalty by area alone.
	score := area / 1000
	if score > 500 {
		score = 500
	}

	score += float64(parse.ImageTokenPenalty(img.Attr("src"), img.Attr("alt")))

	if box.Y-containerBox.Y >= 0 && box.Y-containerBox.Y <= kattlog.CaptureTopEdgeProximity {
		score += 50
	}

	if box.Height > 0 {
		ratio := box.Width / box.Height
		if ratio > kattlog.CaptureAspectRatioLimit || ratio < 1/kattlog.CaptureAspectRatioLimit {
			score -= 50
		}
	}

	return score
}

// canonicalLink resolves the container's best product link through the
// ordered fallback chain: the anchor wrapping the best image, the anchor
// wrapping the first heading/title element, the first non-trivial anchor,
// and finally the container itself if it is an anchor.
func (r *CaptureResolver) canonicalLink(container *Element, bestImg *Element, base *url.URL) string {
	isAnchor := func(e *Element) bool { return e.TagName() == "a" && !trivialHref(e.Attr("href")) }

	if bestImg != nil {
		if a := bestImg.Closest(isAnchor); a != nil {
			return resolveRef(base, a.Attr("href"))
		}
	}

	heading := container.Find(func(c *Element) bool {
		switch c.TagName() {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			return true
		}
		return containsAny(c.ClassID(), titleClassTokens)
	})
	if heading != nil {
		if a := heading.Closest(isAnchor); a != nil {
			return resolveRef(base, a.Attr("href"))
		}
		if a := heading.Find(isAnchor); a != nil {
			return resolveRef(base, a.Attr("href"))
		}
	}

	if a := container.Find(isAnchor); a != nil {
		return resolveRef(base, a.Attr("href"))
	}

	if isAnchor(container) {
		return resolveRef(base, container.Attr("href"))
	}

	return ""
}

// trivialHref reports whether an href carries no navigable target.
func trivialHref(href string) bool {
	href = strings.TrimSpace(strings.ToLower(href))
	return href == "" || href == "#" ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:")
}

// resolveRef resolves href against base, returning "" on parse failure.
func resolveRef(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// unwrapProxyURL recovers the original target from a same-origin
// rewriting proxy URL, detected by the fixed query-parameter marker.
// Unwrap failure falls back to the unmodified URL so a bad proxy link
// degrades instead of erroring; proxy-internal URLs must never leak
// further than this function.
func unwrapProxyURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	// Query() already URL-decodes the parameter value.
	target := u.Query().Get(kattlog.ProxyTargetParam)
	if target == "" {
		return rawURL
	}
	if _, err := url.ParseRequestURI(target); err != nil {
		return rawURL
	}
	return target
}
