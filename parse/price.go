package parse

import (
	"regexp"
	"strings"

	"github.com/kattlog/kattlog"
)

// amountPattern matches a numeric amount in mixed locale formats:
// ".", "," or space (including NBSP) as group separators, 0-2 decimals.
// Covers "1.234,56", "1 234,56", "299.99", "1234".
const amountPattern = `\d+(?:[ \x{00A0}.,]\d{3})*(?:[.,]\d{1,2})?`

// symbolPattern matches the currency markers we care about.
const symbolPattern = `(?:[€$£¥]|EUR|USD|GBP)`

// priceRE matches amount-plus-symbol in either order. The symbol is
// optional after the amount so bare numbers still count as price-shaped.
var priceRE = regexp.MustCompile(
	symbolPattern + `\s*` + amountPattern + `|` + amountPattern + `\s*` + symbolPattern + `?`,
)

// Price extracts a raw price substring from a text blob that may contain
// zero, one, or many currency-shaped substrings. When multiple matches
// exist the one selected by kattlog.PricePick wins: sites render the
// struck-through original before the discounted price, so the last match
// is assumed current. Returns "" when nothing price-shaped is present.
func Price(text string) string {
	matches := priceRE.FindAllString(text, -1)
	if len(matches) == 0 {
		return ""
	}
	m := matches[0]
	if kattlog.PricePick == kattlog.PickLast {
		m = matches[len(matches)-1]
	}
	return strings.TrimSpace(m)
}

// LastPriceLine splits text on line breaks and returns the last line that
// contains a price-shaped substring. Markup commonly renders "was/now"
// prices on separate lines; the last numeric line is assumed to be the
// discounted/current price.
func LastPriceLine(text string) string {
	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	last := ""
	for _, line := range lines {
		if Price(line) != "" {
			last = strings.TrimSpace(line)
		}
	}
	return last
}

// LooksLikePrice reports whether s contains a price-shaped substring with
// at least one digit.
func LooksLikePrice(s string) bool {
	m := priceRE.FindString(s)
	return strings.ContainsAny(m, "0123456789")
}

// HasCurrencySymbol reports whether s contains an explicit currency marker.
func HasCurrencySymbol(s string) bool {
	return strings.ContainsAny(s, "€$£¥") ||
		strings.Contains(s, "EUR") || strings.Contains(s, "USD") || strings.Contains(s, "GBP")
}
