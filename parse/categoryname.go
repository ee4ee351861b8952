package parse

import (
	"regexp"
	"strings"
)

// categoryAllowlist accepts known generic multi-word categories that would
// otherwise trip the specific-product markers below.
var categoryAllowlist = map[string]bool{
	"mesas de centro":         true,
	"mesas de comedor":        true,
	"mesitas de noche":        true,
	"muebles de jardín":       true,
	"muebles de jardin":       true,
	"muebles de salón":        true,
	"muebles de salon":        true,
	"ropa de cama":            true,
	"sillas de oficina":       true,
	"lámparas de techo":       true,
	"lámparas de mesa":        true,
	"accesorios de baño":      true,
	"artículos de decoración": true,
}

// categoryDenylist rejects navigation chrome, legal/account links, and
// country/language names. Matched on the cleaned, lowercased name.
var categoryDenylist = map[string]bool{
	// navigation chrome
	"inicio": true, "home": true, "menu": true, "menú": true,
	"ver todo": true, "ver más": true, "ver mas": true, "see all": true,
	"shop all": true, "más": true, "more": true, "novedades destacadas": true,
	"buscar": true, "search": true, "filtrar": true, "ordenar": true,
	// account / commerce chrome
	"login": true, "log in": true, "sign in": true, "mi cuenta": true,
	"account": true, "cuenta": true, "registro": true, "register": true,
	"carrito": true, "cart": true, "cesta": true, "checkout": true,
	"wishlist": true, "favoritos": true, "comparar": true,
	// legal / utility
	"aviso legal": true, "privacidad": true, "privacy policy": true,
	"cookies": true, "política de cookies": true, "terms": true,
	"condiciones": true, "contacto": true, "contact": true, "ayuda": true,
	"help": true, "faq": true, "blog": true, "newsletter": true,
	"envíos": true, "envios": true, "devoluciones": true, "returns": true,
	"sobre nosotros": true, "about us": true, "about": true,
	"trabaja con nosotros": true, "tiendas": true, "stores": true,
	"gift card": true, "tarjeta regalo": true,
	// countries / languages
	"españa": true, "spain": true, "france": true, "francia": true,
	"germany": true, "deutschland": true, "alemania": true, "italia": true,
	"italy": true, "portugal": true, "united kingdom": true, "reino unido": true,
	"nederland": true, "belgique": true, "méxico": true, "mexico": true,
	"argentina": true, "chile": true, "colombia": true, "usa": true,
	"united states": true, "europe": true, "europa": true,
	"english": true, "español": true, "français": true, "deutsch": true,
	"italiano": true, "português": true,
}

// Regex rejectors for promotional, year-stamped, and priced strings.
var (
	categoryYearRE      = regexp.MustCompile(`\b202\d\b`)
	categorySeasonRE    = regexp.MustCompile(`\b(?:AW|SS|FW|PV|OI)\s?\d{2}\b`)
	categoryPercentRE   = regexp.MustCompile(`\d+\s*%|%\s*(?:off|dto|descuento)`)
	categoryLeadDigitRE = regexp.MustCompile(`^\d+\s+\pL`)
	categoryUnitRE      = regexp.MustCompile(`(?i)\b\d+(?:[.,]\d+)?\s*(?:cm|mm|m|kg|g|ml|l)\b`)
)

// productMarkers flag strings that look like a specific product name
// rather than a category: material nouns and prepositional connectors.
var productMarkers = []string{
	" con ", " para ", " de ", " en ",
	"madera", "roble", "nogal", "pino", "haya", "bambú", "bambu",
	"metal", "acero", "hierro", "aluminio", "latón", "laton",
	"mármol", "marmol", "cristal", "vidrio", "cerámica", "ceramica",
	"terciopelo", "algodón", "algodon", "lino", "ratán", "ratan",
	"mimbre", "cuero", "piel", "velvet", "oak", "walnut", "cotton",
	"linen", "rattan", "marble", "steel", "wooden",
}

// ValidCategoryName reports whether a cleaned link text plausibly names a
// product category. This is the single most important precision filter of
// the navigation extractor: nav menus mix real categories with dozens of
// irrelevant links.
func ValidCategoryName(name string) bool {
	cleaned := strings.Join(strings.Fields(name), " ")
	if n := len([]rune(cleaned)); n < 2 || n > 50 {
		return false
	}

	lower := strings.ToLower(cleaned)
	if categoryAllowlist[lower] {
		return true
	}
	if categoryDenylist[lower] {
		return false
	}

	if categoryYearRE.MatchString(cleaned) ||
		categorySeasonRE.MatchString(cleaned) ||
		categoryPercentRE.MatchString(cleaned) ||
		categoryLeadDigitRE.MatchString(cleaned) ||
		categoryUnitRE.MatchString(cleaned) {
		return false
	}
	if HasCurrencySymbol(cleaned) {
		return false
	}

	if len(strings.Fields(cleaned)) > 4 {
		return false
	}

	// Connectors carry their surrounding spaces so "Comedores" is not
	// rejected for containing "de".
	padded := " " + lower + " "
	for _, marker := range productMarkers {
		if strings.Contains(padded, marker) {
			return false
		}
	}

	return true
}
