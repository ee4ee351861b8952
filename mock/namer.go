package mock

import (
	"context"

	"github.com/kattlog/kattlog"
)

var _ kattlog.CategoryNamer = (*CategoryNamer)(nil)

// CategoryNamer is a mock implementation of kattlog.CategoryNamer.
type CategoryNamer struct {
	NameCategoriesFn func(ctx context.Context, navHTML string, baseURL string) ([]kattlog.Category, error)
}

func (n *CategoryNamer) NameCategories(ctx context.Context, navHTML string, baseURL string) ([]kattlog.Category, error) {
	return n.NameCategoriesFn(ctx, navHTML, baseURL)
}

var _ kattlog.Converter = (*Converter)(nil)

// Converter is a mock implementation of kattlog.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
