package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nicobar"
)

// Ensure LoggingFetcher implements nicobar.Fetcher.
var _ nicobar.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   nicobar.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next nicobar.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the URL, method and body size.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string, cfg nicobar.RequestConfig) (body string, err error) {
	defer func(begin time.Time) {
		method := cfg.Method
		if method == "" {
			method = "GET"
		}
		logResult(f.logger, "fetch", begin, err,
			"url", url,
			"method", method,
			"bytes", len(body),
		)
	}(time.Now())

	return f.next.Fetch(ctx, url, cfg)
}
