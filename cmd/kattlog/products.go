package main

import (
	"encoding/json"
	"fmt"

	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/crawl"
)

// Run executes the products command.
func (c *ProductsCmd) Run(deps *Dependencies) error {
	progress := func(event crawl.ProgressEvent) {
		if event.Type == crawl.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "failed %s: %s\n", crawl.TruncateURL(event.URL, 60), kattlog.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Runner.Run(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kattlog.ErrorMessage(err))
		return err
	}

	if c.JSON {
		candidates := make([]kattlog.ProductCandidate, 0, result.Products)
		for _, page := range result.Pages {
			candidates = append(candidates, page.Products...)
		}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	}

	for _, page := range result.Pages {
		if page.Err != nil {
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  (%d products, via %s)\n", page.URL, len(page.Products), page.Method)
		for _, p := range page.Products {
			fmt.Fprintf(deps.Stdout, "  %-40.40s  %-12s  %s\n", p.Title, p.Price, p.ProductURL)
		}
	}
	fmt.Fprintf(deps.Stdout, "%d products from %d pages (%d failed)\n", result.Products, len(result.Pages), result.Failed)

	if result.Failed == len(result.Pages) && len(result.Pages) > 0 {
		return kattlog.Errorf(kattlog.EUNAVAILABLE, "all %d pages failed", result.Failed)
	}
	return nil
}
