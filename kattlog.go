// Package kattlog provides a heuristic content-classification engine that
// turns arbitrary, uncontrolled e-commerce HTML into structured product and
// category records without site-specific configuration. It relies on
// statistical and structural signals only (tag names, class-name tokens,
// price-shaped text, image geometry, link topology) and is best-effort by
// contract: absence of a signal degrades the output, it never aborts.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, gemini/).
package kattlog
