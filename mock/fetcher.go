package mock

import (
	"context"

	"github.com/fwojciec/vitae"
)

var _ vitae.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of vitae.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ vitae.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of vitae.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
