// Package http provides an HTTP-based implementation of nicobar.Fetcher.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/nicobar"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client to providers.
const DefaultUserAgent = "nicobar/1.0 (+https://github.com/fwojciec/nicobar)"

// Ensure Fetcher implements nicobar.Fetcher at compile time.
var _ nicobar.Fetcher = (*Fetcher)(nil)

// Fetcher performs single-shot HTTP requests and returns bodies decoded to
// UTF-8. It never retries.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *HostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent when the request does not set one.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit spaces requests to the same host by at most rps per second.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = NewHostLimiter(rps)
		} else {
			f.limiter = nil
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs the request described by cfg and returns the body.
// Status codes >= 400 are reported as an APIError carrying the status code;
// failures before a response arrives use code "0".
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, cfg nicobar.RequestConfig) (string, error) {
	method := cfg.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if cfg.Body != "" {
		body = strings.NewReader(cfg.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return "", transportError(err)
	}
	for k, v := range cfg.Header {
		req.Header.Set(k, v)
	}
	if req.Header.Get("User-Agent") == "" && f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, req.URL.Host); err != nil {
			return "", transportError(err)
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg := http.StatusText(resp.StatusCode)
		if msg == "" {
			msg = resp.Status
		}
		return "", &nicobar.APIError{Code: strconv.Itoa(resp.StatusCode), Message: msg}
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", transportError(err)
	}
	text, err := io.ReadAll(reader)
	if err != nil {
		return "", transportError(err)
	}

	return string(text), nil
}

// transportError reports a request that produced no response.
func transportError(err error) error {
	msg := err.Error()
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		msg = urlErr.Err.Error()
	}
	return &nicobar.APIError{Code: "0", Message: msg}
}
