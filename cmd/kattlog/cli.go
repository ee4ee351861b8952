package main

import (
	"context"
	"io"

	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Runner     *crawl.Runner
	Products   kattlog.ProductExtractor
	Categories kattlog.CategoryExtractor
	NavHTML    kattlog.NavHTMLSelector
	Namer      kattlog.CategoryNamer
	Converter  kattlog.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Products   ProductsCmd   `cmd:"" help:"Extract product candidates from listing pages"`
	Categories CategoriesCmd `cmd:"" help:"Extract categories from a hub page"`
	Nav        NavCmd        `cmd:"" help:"Show the scored navigation HTML selection for a page"`

	Static      bool    `help:"Fetch over plain HTTP instead of a headless browser"`
	File        string  `help:"Read HTML from a local snapshot file instead of fetching" type:"existingfile"`
	Verbose     bool    `short:"v" help:"Log extraction steps to stderr"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64 `default:"1.0" help:"Requests per second per domain"`
}

// ProductsCmd is the "products" subcommand.
type ProductsCmd struct {
	URLs []string `arg:"" help:"Listing page URLs"`
	JSON bool     `help:"Output candidates as JSON"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct {
	URL  string `arg:"" help:"Hub page URL"`
	AI   bool   `help:"Name categories with Gemini (requires GEMINI_API_KEY)"`
	JSON bool   `help:"Output categories as JSON"`
}

// NavCmd is the "nav" subcommand.
type NavCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Markdown bool   `help:"Convert the selection to markdown"`
}
