package mock

import "github.com/kattlog/kattlog"

var _ kattlog.ProductExtractor = (*ProductExtractor)(nil)

// ProductExtractor is a mock implementation of kattlog.ProductExtractor.
type ProductExtractor struct {
	ExtractProductsFn func(html string, baseURL string) ([]kattlog.ProductCandidate, error)
}

func (e *ProductExtractor) ExtractProducts(html string, baseURL string) ([]kattlog.ProductCandidate, error) {
	return e.ExtractProductsFn(html, baseURL)
}

var _ kattlog.CategoryExtractor = (*CategoryExtractor)(nil)

// CategoryExtractor is a mock implementation of kattlog.CategoryExtractor.
type CategoryExtractor struct {
	ExtractNavigationFn        func(html string, baseURL string) ([]kattlog.Category, error)
	ExtractContentCategoriesFn func(html string, baseURL string) ([]kattlog.Category, error)
}

func (e *CategoryExtractor) ExtractNavigation(html string, baseURL string) ([]kattlog.Category, error) {
	return e.ExtractNavigationFn(html, baseURL)
}

func (e *CategoryExtractor) ExtractContentCategories(html string, baseURL string) ([]kattlog.Category, error) {
	return e.ExtractContentCategoriesFn(html, baseURL)
}

var _ kattlog.NavHTMLSelector = (*NavHTMLSelector)(nil)

// NavHTMLSelector is a mock implementation of kattlog.NavHTMLSelector.
type NavHTMLSelector struct {
	SelectNavHTMLFn func(html string, baseURL string) (string, error)
}

func (s *NavHTMLSelector) SelectNavHTML(html string, baseURL string) (string, error) {
	return s.SelectNavHTMLFn(html, baseURL)
}
