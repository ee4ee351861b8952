// Package mock provides function-field mock implementations of the
// domain interfaces for use in tests.
package mock

import (
	"context"

	"github.com/kattlog/kattlog"
)

var _ kattlog.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of kattlog.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*kattlog.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*kattlog.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ kattlog.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of kattlog.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
