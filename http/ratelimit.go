package http

import (
	"context"
	"net"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter spaces requests per provider host with token buckets of
// burst 1. Host keys are case-insensitive and ignore default ports.
type HostLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	every   rate.Limit
}

// NewHostLimiter returns a HostLimiter allowing rps requests per second to each host.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		buckets: make(map[string]*rate.Limiter),
		every:   rate.Limit(rps),
	}
}

// Wait blocks until a request to host may proceed or ctx is done.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.bucket(hostKey(host)).Wait(ctx)
}

// Hosts returns how many hosts have been seen.
func (l *HostLimiter) Hosts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *HostLimiter) bucket(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[key]
	if !ok {
		b = rate.NewLimiter(l.every, 1)
		l.buckets[key] = b
	}
	return b
}

func hostKey(host string) string {
	host = strings.ToLower(host)
	if h, port, err := net.SplitHostPort(host); err == nil && (port == "80" || port == "443") {
		return h
	}
	return host
}
