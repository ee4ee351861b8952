package parse

import (
	"regexp"
	"strings"

	"github.com/kattlog/kattlog"
)

// The four dimension patterns in precedence order. The first to match
// wins; later patterns are not consulted once one succeeds.
var (
	// 1. Generic WxH(xD): "120x80 cm", "120 x 80 x 40cm", "75.5×30 cm".
	// Per-axis units are optional; the trailing unit is required.
	dimAxesRE = regexp.MustCompile(
		`(?i)\d+(?:[.,]\d+)?\s*(?:cm|mm|m)?\s*[x×]\s*\d+(?:[.,]\d+)?\s*(?:cm|mm|m)?(?:\s*[x×]\s*\d+(?:[.,]\d+)?)?\s*(?:cm|mm|m)\b`)

	// 2. Labeled measurement: "Medidas: 120 cm", "Alto: 70 cm".
	dimLabelRE = regexp.MustCompile(
		`(?i)(?:medidas|dimensiones|dimensions|alto|ancho|fondo|largo|profundidad|altura|anchura|diámetro|diametro)\s*[:\s]\s*\d`)

	// 3. Parenthesized single measurement, consulted in the title only.
	dimParenRE = regexp.MustCompile(`\((\d+(?:[.,]\d+)?\s*(?:cm|mm|m))\)`)

	// 4. Bare NxN with a single trailing unit.
	dimBareRE = regexp.MustCompile(`(?i)\d+\s*[x×]\s*\d+\s*(?:cm|mm|m)\b`)

	// Boundaries that terminate a labeled-dimension window.
	dimWindowStopRE = regexp.MustCompile(`[.;!?\n]`)
)

// Dimensions extracts a dimension substring from a card's text and title.
// Four ordered patterns are tried with fixed precedence; text is consulted
// for patterns 1, 2 and 4, the title only for pattern 3.
func Dimensions(text string, title string) string {
	if m := dimAxesRE.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	if loc := dimLabelRE.FindStringIndex(text); loc != nil {
		return labelWindow(text, loc[0])
	}
	if m := dimParenRE.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := dimBareRE.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	return ""
}

// labelWindow returns a window of text starting at a dimension label,
// truncated at the next sentence boundary. Commas are kept so multi-axis
// strings like "Alto: 70 cm, Ancho: 50 cm" survive intact, but the window
// never exceeds kattlog.DimensionWindowLen runes beyond the label.
func labelWindow(text string, start int) string {
	window := text[start:]
	if stop := dimWindowStopRE.FindStringIndex(window); stop != nil {
		window = window[:stop[0]]
	}
	runes := []rune(window)
	if len(runes) > kattlog.DimensionWindowLen {
		runes = runes[:kattlog.DimensionWindowLen]
	}
	return strings.TrimSpace(string(runes))
}
