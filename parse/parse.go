// Package parse contains the locale-agnostic primitive parsers the
// classification engine is built on: price-substring extraction,
// dimension-substring extraction, image-URL validity filtering, and
// category-name validity filtering.
//
// Everything here is a pure function over a text or attribute string; no
// DOM dependency. Malformed input never errors, it simply yields an empty
// result.
package parse
