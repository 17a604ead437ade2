package ratelimit

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Limiter counts requests per client identity inside a fixed time window.
// One counter is created lazily per client on first sight; the counter's TTL
// is the window, so exhausted windows reset themselves and idle clients are
// purged by the cache janitor instead of accumulating forever.
//
// There is no queuing: a request that does not fit in the current window is
// rejected immediately.
type Limiter struct {
	limit   int
	windows *cache.Cache
}

func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		windows: cache.New(window, 2*window),
	}
}

// Allow records one request for the client and reports whether it fits in
// the current window. Creation is idempotent and cheap, so racing a
// check-then-insert for a brand new client is harmless.
func (l *Limiter) Allow(client string) bool {
	if err := l.windows.Add(client, int64(1), cache.DefaultExpiration); err == nil {
		return l.limit >= 1
	}

	n, err := l.windows.IncrementInt64(client, 1)
	if err != nil {
		// Window expired between Add and Increment; start a fresh one.
		l.windows.Set(client, int64(1), cache.DefaultExpiration)
		return l.limit >= 1
	}
	return n <= int64(l.limit)
}

// Limit returns the configured per-window request budget.
func (l *Limiter) Limit() int {
	return l.limit
}
