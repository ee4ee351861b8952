package kattlog

// ProductCandidate is the structured record extracted from a single product
// card, prior to validation. Candidates are created fresh per extraction
// call and have no identity beyond that call; persistence belongs to a
// downstream collaborator.
type ProductCandidate struct {
	Title       string `json:"title"`
	Price       string `json:"price"` // raw substring; numeric normalization is a collaborator's job
	ImageURL    string `json:"image_url,omitempty"`
	ProductURL  string `json:"product_url,omitempty"`
	Description string `json:"description,omitempty"`
	Dimensions  string `json:"dimensions,omitempty"`
	HTMLBlock   string `json:"html_block"`
}

// Validate returns an error if the candidate is missing required fields.
// The full validity check (placeholder titles, image plausibility, the
// price-or-not-a-category rule) is heuristic and lives with the extractor;
// this only enforces the structural minimum.
func (c *ProductCandidate) Validate() error {
	if c.Title == "" {
		return Errorf(EINVALID, "candidate title required")
	}
	if c.ImageURL == "" {
		return Errorf(EINVALID, "candidate image URL required")
	}
	return nil
}

// ProductExtractor finds all product cards in a rendered HTML document.
//
// Implementations are pure with respect to their inputs: the same HTML and
// base URL always yield the same candidates, and concurrent invocations
// share no state. An empty result is not an error; callers interpret it as
// "try the next detection strategy".
type ProductExtractor interface {
	// ExtractProducts parses HTML and returns valid, deduplicated product
	// candidates. The baseURL is used to resolve relative URLs.
	ExtractProducts(html string, baseURL string) ([]ProductCandidate, error)
}
