// Command kattlog classifies e-commerce pages from the terminal: product
// candidate extraction, category extraction, and nav-HTML selection.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/crawl"
	"github.com/kattlog/kattlog/fs"
	"github.com/kattlog/kattlog/gemini"
	"github.com/kattlog/kattlog/goquery"
	"github.com/kattlog/kattlog/htmltomarkdown"
	katthttp "github.com/kattlog/kattlog/http"
	"github.com/kattlog/kattlog/rod"
	kattslog "github.com/kattlog/kattlog/slog"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	if err := Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kattlog"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kattlog --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	fetcher, err := newFetcher(cli, logger)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	deps.Products = kattslog.NewLoggingProductExtractor(goquery.NewExtractor(), logger)
	deps.Categories = kattslog.NewLoggingCategoryExtractor(goquery.NewCategoryExtractor(), logger)
	deps.NavHTML = goquery.NewNavHTMLSelector()
	deps.Converter = htmltomarkdown.NewConverter()

	if cmd == "categories" && cli.Categories.AI {
		namer, err := newNamer(ctx, deps.Converter, stderr)
		if err != nil {
			return err
		}
		deps.Namer = kattslog.NewLoggingCategoryNamer(namer, logger)
	}

	deps.Runner = &crawl.Runner{
		Fetcher:     fetcher,
		Products:    deps.Products,
		Categories:  deps.Categories,
		NavHTML:     deps.NavHTML,
		Namer:       deps.Namer,
		RateLimiter: crawl.NewDomainLimiter(cli.Rate),
		Concurrency: cli.Concurrency,
	}

	return kongCtx.Run(deps)
}

// newFetcher picks the HTML acquisition method: a headless browser by
// default, plain HTTP with --static, a local snapshot with --file.
func newFetcher(cli *CLI, logger *slog.Logger) (kattlog.Fetcher, error) {
	if cli.File != "" {
		return rod.NewLoggingFetcher(fs.NewFetcher(cli.File), logger), nil
	}
	if cli.Static {
		return rod.NewLoggingFetcher(katthttp.NewFetcher(), logger), nil
	}

	fetcher, err := rod.NewFetcher()
	if err != nil {
		return nil, fmt.Errorf("failed to start browser (hint: Chrome or Chromium must be installed, or use --static): %w", err)
	}
	return rod.NewLoggingFetcher(fetcher, logger), nil
}

// newNamer builds the Gemini category namer.
func newNamer(ctx context.Context, converter kattlog.Converter, stderr io.Writer) (kattlog.CategoryNamer, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	return gemini.NewNamer(client, converter), nil
}
