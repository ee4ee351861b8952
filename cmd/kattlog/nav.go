package main

import (
	"fmt"

	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/crawl"
)

// Run executes the nav command.
func (c *NavCmd) Run(deps *Dependencies) error {
	fetched, err := crawl.FetchWithRetry(deps.Ctx, c.URL, deps.Runner.Fetcher, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kattlog.ErrorMessage(err))
		return err
	}

	navHTML, err := deps.NavHTML.SelectNavHTML(fetched.HTML, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kattlog.ErrorMessage(err))
		return err
	}
	if navHTML == "" {
		fmt.Fprintln(deps.Stdout, "No navigation containers scored above zero.")
		return nil
	}

	if c.Markdown {
		markdown, err := deps.Converter.Convert(navHTML)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, markdown)
		return nil
	}

	fmt.Fprintln(deps.Stdout, navHTML)
	return nil
}
