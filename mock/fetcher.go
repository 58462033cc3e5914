package mock

import (
	"context"

	"github.com/fwojciec/nicobar"
)

var _ nicobar.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of nicobar.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, cfg nicobar.RequestConfig) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string, cfg nicobar.RequestConfig) (string, error) {
	return f.FetchFn(ctx, url, cfg)
}
