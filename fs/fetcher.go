// Package fs provides a file-backed implementation of kattlog.Fetcher for
// classifying HTML snapshots saved to disk, with no network involved.
package fs

import (
	"context"
	"os"

	"github.com/kattlog/kattlog"
)

// Ensure Fetcher implements kattlog.Fetcher at compile time.
var _ kattlog.Fetcher = (*Fetcher)(nil)

// Fetcher serves one HTML snapshot from the local filesystem. Every
// requested URL returns the same document; the URL only supplies the base
// for resolving the snapshot's relative links.
type Fetcher struct {
	path string
}

// NewFetcher creates a Fetcher over the snapshot at path.
func NewFetcher(path string) *Fetcher {
	return &Fetcher{path: path}
}

// Fetch reads the snapshot. An unreadable file is a page-level failure,
// matching how the network fetchers report unreachable pages.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*kattlog.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	html, err := os.ReadFile(f.path)
	if err != nil {
		return &kattlog.FetchResult{Method: "file", Error: err.Error()}, nil
	}

	return &kattlog.FetchResult{Success: true, HTML: string(html), Method: "file"}, nil
}

// Close is a no-op; the file is opened per fetch.
func (f *Fetcher) Close() error {
	return nil
}
