package main

import (
	"encoding/json"
	"fmt"

	"github.com/kattlog/kattlog"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	result, err := deps.Runner.Run(deps.Ctx, []string{c.URL}, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kattlog.ErrorMessage(err))
		return err
	}

	page := result.Pages[0]
	if page.Err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kattlog.ErrorMessage(page.Err))
		return page.Err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(page.Categories)
	}

	if len(page.Categories) == 0 {
		fmt.Fprintln(deps.Stdout, "No categories found.")
		return nil
	}

	for _, cat := range page.Categories {
		fmt.Fprintf(deps.Stdout, "%-6s  %-30.30s  %s\n", cat.Type, cat.Name, cat.URL)
	}
	return nil
}
