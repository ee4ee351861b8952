// Package gemini implements the optional AI category-naming collaborator
// using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/kattlog/kattlog"
	"github.com/kattlog/kattlog/parse"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Namer implements kattlog.CategoryNamer at compile time.
var _ kattlog.CategoryNamer = (*Namer)(nil)

// Namer implements kattlog.CategoryNamer using Google Gemini. The nav-HTML
// selection is compacted to markdown before prompting so the model sees
// link text and targets without markup noise.
type Namer struct {
	client    *genai.Client
	converter kattlog.Converter
}

// NewNamer creates a new Namer.
func NewNamer(client *genai.Client, converter kattlog.Converter) *Namer {
	return &Namer{client: client, converter: converter}
}

// NameCategories derives named categories from the nav-HTML selection.
func (n *Namer) NameCategories(ctx context.Context, navHTML string, baseURL string) ([]kattlog.Category, error) {
	if navHTML == "" {
		return nil, kattlog.Errorf(kattlog.EINVALID, "nav HTML required")
	}

	markdown, err := n.converter.Convert(navHTML)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(markdown)
	config := BuildConfig()

	result, err := n.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, kattlog.Errorf(kattlog.EINTERNAL, "gemini returned nil result")
	}

	return ParseCategories(result.Text(), baseURL), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are labeling the navigation menu of an e-commerce storefront. " +
					"Given the menu as markdown, list the product category links it contains. " +
					"Output one category per line as: Name | URL. " +
					"Skip account, cart, help, legal and other non-category links. " +
					"Output nothing else.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt builds the user prompt containing the navigation markdown.
func BuildPrompt(markdown string) string {
	var sb strings.Builder
	sb.WriteString("<navigation>\n")
	sb.WriteString(markdown)
	sb.WriteString("\n</navigation>\n\n")
	fmt.Fprintf(&sb, "List the product categories.")
	return sb.String()
}

// ParseCategories parses the model's line-based "Name | URL" response.
// Malformed lines are skipped, names are re-checked against the
// rule-based category filter, and relative URLs resolve against baseURL.
func ParseCategories(text string, baseURL string) []kattlog.Category {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = &url.URL{}
	}

	var categories []kattlog.Category
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		if line == "" {
			continue
		}

		name, rawURL, found := strings.Cut(line, "|")
		name = strings.TrimSpace(name)
		if name == "" || !parse.ValidCategoryName(name) {
			continue
		}

		resolved := ""
		if found {
			if ref, err := url.Parse(strings.TrimSpace(rawURL)); err == nil && ref.String() != "" {
				resolved = base.ResolveReference(ref).String()
			}
		}

		categories = append(categories, kattlog.Category{
			Name: name,
			URL:  resolved,
			Type: kattlog.CategoryText,
		})
	}
	return categories
}
