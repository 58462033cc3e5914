package nicobar_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/fwojciec/nicobar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher verifies Fetcher can be implemented.
type stubFetcher struct {
	FetchFn func(ctx context.Context, url string, cfg nicobar.RequestConfig) (string, error)
}

func (s *stubFetcher) Fetch(ctx context.Context, url string, cfg nicobar.RequestConfig) (string, error) {
	return s.FetchFn(ctx, url, cfg)
}

var _ nicobar.Fetcher = (*stubFetcher)(nil)

func TestFetchAndMap(t *testing.T) {
	t.Parallel()

	t.Run("maps fetched body", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		f := &stubFetcher{FetchFn: func(_ context.Context, url string, _ nicobar.RequestConfig) (string, error) {
			gotURL = url
			return "42", nil
		}}

		n, err := nicobar.FetchAndMap(context.Background(), f, "https://example.com/n", nicobar.RequestConfig{}, strconv.Atoi)

		require.NoError(t, err)
		assert.Equal(t, 42, n)
		assert.Equal(t, "https://example.com/n", gotURL)
	})

	t.Run("passes fetch errors through", func(t *testing.T) {
		t.Parallel()

		apiErr := &nicobar.APIError{Code: "404", Message: "Not Found"}
		f := &stubFetcher{FetchFn: func(context.Context, string, nicobar.RequestConfig) (string, error) {
			return "", apiErr
		}}
		mapperCalled := false

		_, err := nicobar.FetchAndMap(context.Background(), f, "https://example.com", nicobar.RequestConfig{},
			func(string) (int, error) {
				mapperCalled = true
				return 0, nil
			})

		assert.Same(t, apiErr, err)
		assert.False(t, mapperCalled)
	})

	t.Run("wraps untagged mapper errors", func(t *testing.T) {
		t.Parallel()

		f := &stubFetcher{FetchFn: func(context.Context, string, nicobar.RequestConfig) (string, error) {
			return "not a number", nil
		}}

		_, err := nicobar.FetchAndMap(context.Background(), f, "https://example.com", nicobar.RequestConfig{}, strconv.Atoi)

		var mappingErr *nicobar.MappingError
		require.ErrorAs(t, err, &mappingErr)
		assert.Contains(t, mappingErr.Message, "invalid syntax")
	})

	t.Run("keeps tagged mapper errors", func(t *testing.T) {
		t.Parallel()

		f := &stubFetcher{FetchFn: func(context.Context, string, nicobar.RequestConfig) (string, error) {
			return "<html></html>", nil
		}}

		_, err := nicobar.FetchAndMap(context.Background(), f, "https://example.com", nicobar.RequestConfig{},
			func(string) (int, error) {
				return 0, &nicobar.DOMParseError{Provider: "tcbscans", Message: "no pages"}
			})

		var domErr *nicobar.DOMParseError
		require.True(t, errors.As(err, &domErr))
		assert.Equal(t, "tcbscans", domErr.Provider)
	})
}
