package auth

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// RateLimiter enforces a sliding-window cap per caller key: timestamps
// older than the window are discarded on every check, then the remainder
// is counted against the max. Buckets expire from the cache one window
// after their last hit. State is process-lifetime only.
type RateLimiter struct {
	max     int
	window  time.Duration
	buckets *cache.Cache
	mu      sync.Mutex
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		max:     max,
		window:  window,
		buckets: cache.New(window, 10*time.Minute),
	}
}

// Allow records a hit for key and reports whether it fits the budget.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	var stamps []time.Time
	if v, ok := l.buckets.Get(key); ok {
		stamps = v.([]time.Time)
	}

	kept := stamps[:0]
	for _, t := range stamps {
		if now.Sub(t) < l.window {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.max {
		l.buckets.Set(key, kept, cache.DefaultExpiration)
		return false
	}

	kept = append(kept, now)
	l.buckets.Set(key, kept, cache.DefaultExpiration)
	return true
}
