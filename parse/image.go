package parse

import (
	"strings"

	"github.com/kattlog/kattlog"
)

// imageDenylist tokens mark non-product imagery. This is a
// precision-over-recall filter: missing a real photo is preferred over
// mistaking a badge for one.
var imageDenylist = []string{
	"logo", "icon", "avatar", "hover", "spinner", "placeholder",
	"banner", "slideshow", "badge", "fsc", "rating", "swatch", "texture",
}

// ValidImageURL reports whether a URL plausibly points at a product photo.
// data: URIs, very short URLs, and URLs (or alt text) carrying any
// denylist token are rejected.
func ValidImageURL(rawURL string, alt string) bool {
	if rawURL == "" {
		return false
	}
	if strings.HasPrefix(rawURL, "data:") {
		return false
	}
	if len(rawURL) < kattlog.MinImageURLLen {
		return false
	}
	haystack := strings.ToLower(rawURL + " " + alt)
	for _, token := range imageDenylist {
		if strings.Contains(haystack, token) {
			return false
		}
	}
	return true
}

// ImageTokenPenalty returns the capture-scoring penalty for non-product
// markers in an image's src or alt. Zero means no marker found.
func ImageTokenPenalty(src string, alt string) int {
	haystack := strings.ToLower(src + " " + alt)
	penalties := []struct {
		token   string
		penalty int
	}{
		{"logo", -1000},
		{"icon", -800},
		{"fsc", -600},
		{"badge", -500},
		{"rating", -300},
		{"stars", -200},
	}
	for _, p := range penalties {
		if strings.Contains(haystack, p.token) {
			return p.penalty
		}
	}
	return 0
}
