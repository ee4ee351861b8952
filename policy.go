package kattlog

import "time"

// MatchPolicy selects which of several equally-shaped matches to keep when
// a heuristic finds more than one.
type MatchPolicy int

// Match selection policies.
const (
	PickFirst MatchPolicy = iota
	PickLast
)

// Site-rendering conventions. These encode undocumented assumptions about
// how e-commerce templates order their markup; they are named here so they
// can be tuned per market without touching extraction logic.
const (
	// PricePick assumes a struck-through original price renders before
	// the discounted one, so the last price-shaped match is current.
	PricePick = PickLast

	// ImagePick assumes multi-image cards are carousels with the primary
	// photo first, so only the first <img> is trusted.
	ImagePick = PickFirst
)

// Batch extraction tunables.
const (
	// MaxCandidates caps the deduplicated result of one extraction call.
	MaxCandidates = 200

	// MinSelectorMatches is the minimum number of elements a selector or
	// class token must match before it is trusted as a card marker.
	MinSelectorMatches = 2

	// MinCardHTMLLen and MaxCardHTMLLen bound the serialized size of a
	// card-shaped element considered by the token-frequency heuristic.
	MinCardHTMLLen = 150
	MaxCardHTMLLen = 5000

	// PriceElementMaxLen is the longest text a dedicated price element may
	// carry before the extractor falls back to scanning the whole card.
	PriceElementMaxLen = 30

	// TitleMaxLen is the length past which a title is treated as a
	// misclassified description and truncated to TitleTruncateLen.
	TitleMaxLen      = 100
	TitleTruncateLen = 80

	// AnchorTitleMinLen and AnchorTitleMaxLen bound an anchor's title
	// attribute for use as a candidate title.
	AnchorTitleMinLen = 3
	AnchorTitleMaxLen = 150

	// MinImageURLLen rejects obviously truncated or tracking-pixel URLs.
	MinImageURLLen = 15

	// HTMLBlockSampleLen caps the raw-HTML sample stored per candidate.
	HTMLBlockSampleLen = 2000

	// DimensionWindowLen is the size of the text window returned by the
	// labeled dimension pattern.
	DimensionWindowLen = 30
)

// Interactive scorer weights and thresholds.
const (
	// ScoreStructuralExclusion is absolute: an element inside page chrome
	// scores this regardless of any other signal.
	ScoreStructuralExclusion = -100

	ScoreOversized     = -50
	ScorePriceText     = 35
	ScoreTitlePresent  = 25
	ScoreImagePresent  = 20
	ScoreLargeImage    = 10
	ScoreSemanticClass = 10
	ScoreCallToAction  = 10

	// ScoreThreshold is the minimum ancestor-walk maximum required before
	// a candidate is highlighted at all.
	ScoreThreshold = 50

	// AncestorWalkDepth bounds the upward walk from the hovered element.
	AncestorWalkDepth = 6

	// OversizedViewportRatio flags elements wider than this share of the
	// viewport as non-cards.
	OversizedViewportRatio = 0.95

	// MinScoreImageSize is the minimum width and height for an <img> to
	// count as a qualifying image signal.
	MinScoreImageSize = 50

	// LargeImageWidth earns the large-image bonus.
	LargeImageWidth = 200
)

// Capture resolution tunables.
const (
	// MinCaptureImageArea disqualifies thumbnails and sprites outright.
	MinCaptureImageArea = 2500

	// CaptureTopEdgeProximity is the distance from the container's top
	// edge within which an image earns the position bonus.
	CaptureTopEdgeProximity = 50

	// CaptureAspectRatioLimit penalizes extreme aspect ratios (banners,
	// dividers) on either axis.
	CaptureAspectRatioLimit = 3.0

	// TextSnippetMaxLen caps the snippet attached to a capture.
	TextSnippetMaxLen = 200

	// ProxyTargetParam is the query-parameter marker of the same-origin
	// rewriting proxy. When present, the original target URL is recovered
	// by decoding this parameter so proxy-internal URLs never leak.
	ProxyTargetParam = "kattlog_target"
)

// HeartbeatInterval is how often the interactive component re-announces
// readiness across the frame boundary. A resilience measure against a lost
// initial handshake, not a correctness requirement.
const HeartbeatInterval = 5 * time.Second

// NavHTML selection tunables.
const (
	// NavCatalogBoost multiplies a container's score when it sits next to
	// an anchor whose text matches catalog-entry keywords.
	NavCatalogBoost = 2.5

	// NavMaxContainers is how many top non-nested containers are returned.
	NavMaxContainers = 3

	// MinNavCategories is the count below which the navigation pass also
	// scans footer containers.
	MinNavCategories = 3
)
