package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/nicobar"
	"github.com/fwojciec/nicobar/mock"
	nslog "github.com/fwojciec/nicobar/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string, cfg nicobar.RequestConfig) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := nslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/docs", nicobar.RequestConfig{})

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "method=GET")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("passes request config through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var got nicobar.RequestConfig
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string, cfg nicobar.RequestConfig) (string, error) {
				got = cfg
				return "{}", nil
			},
		}

		cfg := nicobar.RequestConfig{Method: "POST", Body: `{"a":1}`}
		_, err := nslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://example.com/api", cfg)

		require.NoError(t, err)
		assert.Equal(t, cfg, got)
		assert.Contains(t, buf.String(), "method=POST")
	})

	t.Run("logs error and kind on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string, cfg nicobar.RequestConfig) (string, error) {
				return "", &nicobar.APIError{Code: "503", Message: "Service Unavailable"}
			},
		}

		fetcher := nslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/docs", nicobar.RequestConfig{})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "kind=api_error")
		assert.Contains(t, output, "err=")
	})

	t.Run("omits kind for untagged errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string, cfg nicobar.RequestConfig) (string, error) {
				return "", errors.New("network error")
			},
		}

		_, err := nslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://example.com/docs", nicobar.RequestConfig{})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "err=\"network error\"")
		assert.NotContains(t, output, "kind=")
	})
}
