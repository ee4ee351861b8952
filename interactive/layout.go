package interactive

import (
	"regexp"
	"strconv"
	"strings"
)

// Box is an element's bounding box in page coordinates.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Area returns the box surface in square pixels.
func (b Box) Area() float64 { return b.Width * b.Height }

// Layout supplies the geometry the scorer and capture resolver need. In a
// live page this is backed by real layout information; AttrLayout derives
// it from markup so the heuristics stay deterministic in tests and
// snapshots.
type Layout interface {
	// ViewportWidth returns the page viewport width in pixels.
	ViewportWidth() float64

	// ElementBox returns the element's bounding box. A zero box means the
	// geometry is unknown.
	ElementBox(el *Element) Box
}

// DefaultViewportWidth approximates a desktop viewport when the layout
// source does not know better.
const DefaultViewportWidth = 1280

// Ensure AttrLayout implements Layout at compile time.
var _ Layout = (*AttrLayout)(nil)

// AttrLayout reads geometry from width/height attributes and inline
// styles. It is the layout of record for static HTML snapshots, where no
// real layout engine ran.
type AttrLayout struct {
	// Viewport overrides DefaultViewportWidth when positive.
	Viewport float64
}

// ViewportWidth returns the configured or default viewport width.
func (l *AttrLayout) ViewportWidth() float64 {
	if l.Viewport > 0 {
		return l.Viewport
	}
	return DefaultViewportWidth
}

// ElementBox derives the box from width/height attributes and the
// element's inline style (width, height, top, left pixel values).
func (l *AttrLayout) ElementBox(el *Element) Box {
	box := Box{
		Width:  attrPixels(el.Attr("width")),
		Height: attrPixels(el.Attr("height")),
	}

	style := el.Attr("style")
	if v, ok := stylePixels(style, "width"); ok {
		box.Width = v
	}
	if v, ok := stylePixels(style, "height"); ok {
		box.Height = v
	}
	if v, ok := stylePixels(style, "left"); ok {
		box.X = v
	}
	if v, ok := stylePixels(style, "top"); ok {
		box.Y = v
	}
	return box
}

// attrPixels parses a bare numeric attribute value.
func attrPixels(v string) float64 {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

var stylePixelsRE = regexp.MustCompile(`(?i)(?:^|[;\s])([a-z-]+)\s*:\s*(-?\d+(?:\.\d+)?)px`)

// stylePixels extracts a pixel value for a property from an inline style.
func stylePixels(style string, property string) (float64, bool) {
	for _, m := range stylePixelsRE.FindAllStringSubmatch(style, -1) {
		if strings.EqualFold(m[1], property) {
			f, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				return 0, false
			}
			return f, true
		}
	}
	return 0, false
}
