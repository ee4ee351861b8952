package crawl

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/kattlog/kattlog"
	"golang.org/x/time/rate"
)

var _ kattlog.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces requests per storefront host with token buckets.
// Hosts are normalized before bucket lookup so that "www.example.com",
// "EXAMPLE.COM" and "example.com:443" all drain the same bucket, matching
// how listing pages link across those spellings of one shop.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host, with a burst of 1 so requests are evenly spaced.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the host's bucket allows another request, or the
// context is canceled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	host := normalizeHost(domain)

	d.mu.Lock()
	limiter, ok := d.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[host] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// normalizeHost lowercases the host and strips an explicit port and a
// leading "www." so spellings of the same shop share a bucket.
func normalizeHost(domain string) string {
	host := strings.ToLower(strings.TrimSpace(domain))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimPrefix(host, "www.")
}
