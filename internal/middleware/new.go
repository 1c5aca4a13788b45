package middleware

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"novacart-support/pkg/log"
)

const limiterCacheSize = 8192

// Middleware bundles the cross-cutting HTTP concerns.
type Middleware struct {
	l        log.Logger
	rps      rate.Limit
	burst    int
	limiters *lru.Cache[string, *rate.Limiter]
}

// New creates the middleware set. rps and burst bound how fast a single
// client may send chat requests.
func New(l log.Logger, rps float64, burst int) (Middleware, error) {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 5
	}
	limiters, err := lru.New[string, *rate.Limiter](limiterCacheSize)
	if err != nil {
		return Middleware{}, fmt.Errorf("failed to create limiter cache: %w", err)
	}
	return Middleware{
		l:        l,
		rps:      rate.Limit(rps),
		burst:    burst,
		limiters: limiters,
	}, nil
}
