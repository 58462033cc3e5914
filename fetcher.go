package nicobar

import (
	"context"
	"errors"
)

// RequestConfig describes an outbound request. A zero value is a plain GET.
type RequestConfig struct {
	Method string
	Header map[string]string
	Body   string
}

// Fetcher retrieves the body of a URL as UTF-8 text.
type Fetcher interface {
	// Fetch performs the request once. HTTP status codes >= 400 and
	// transport failures are reported as APIError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string, cfg RequestConfig) (body string, err error)
}

// FetchAndMap fetches url and maps the body with mapper. Errors that are
// already tagged pass through unchanged; any other mapper error becomes a
// MappingError.
func FetchAndMap[T any](ctx context.Context, f Fetcher, url string, cfg RequestConfig, mapper func(body string) (T, error)) (T, error) {
	var zero T
	body, err := f.Fetch(ctx, url, cfg)
	if err != nil {
		return zero, err
	}
	v, err := mapper(body)
	if err != nil {
		var k Kinded
		if errors.As(err, &k) {
			return zero, err
		}
		return zero, &MappingError{Message: err.Error()}
	}
	return v, nil
}
