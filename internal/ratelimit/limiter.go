// Package ratelimit paces requests to the external hosts the generator
// pulls from.
package ratelimit

import (
	"context"
	"os"
	"sync"

	"golang.org/x/time/rate"
)

// Source identifies an external host we fetch from
type Source string

const (
	// SourceGitHubRaw is raw.githubusercontent.com, which serves the
	// SLIP-0044 markdown
	SourceGitHubRaw Source = "github_raw"
)

// Limiter manages rate limits per external source
type Limiter struct {
	limiters map[Source]*rate.Limiter
	mu       sync.RWMutex
}

var (
	instance *Limiter
	once     sync.Once
)

// GetLimiter returns the singleton rate limiter instance
func GetLimiter() *Limiter {
	once.Do(func() {
		instance = &Limiter{
			limiters: make(map[Source]*rate.Limiter),
		}
		instance.initLimiters()
	})
	return instance
}

// initLimiters sets conservative per-source limits. Under `go test` the
// limits are lifted so retry-heavy tests don't stall.
func (l *Limiter) initLimiters() {
	if os.Getenv("GO_TESTING") == "1" || isTestMode() {
		l.limiters[SourceGitHubRaw] = rate.NewLimiter(rate.Inf, 1)
		return
	}

	// raw.githubusercontent.com is generous, but one run needs exactly one
	// request; 1 req/s keeps retries polite.
	l.limiters[SourceGitHubRaw] = rate.NewLimiter(rate.Limit(1), 1)
}

// isTestMode checks if we're running under the test binary
func isTestMode() bool {
	for _, arg := range os.Args {
		if len(arg) > 6 && arg[:6] == "-test." {
			return true
		}
	}
	return false
}

// Wait blocks until the limiter permits a request to the given source.
// It returns an error if the context is canceled first.
func (l *Limiter) Wait(ctx context.Context, source Source) error {
	l.mu.RLock()
	limiter, exists := l.limiters[source]
	l.mu.RUnlock()

	if !exists {
		// No limiter configured for this source; allow the request
		return nil
	}

	return limiter.Wait(ctx)
}

// Allow reports whether a request to the given source may happen now
func (l *Limiter) Allow(source Source) bool {
	l.mu.RLock()
	limiter, exists := l.limiters[source]
	l.mu.RUnlock()

	if !exists {
		return true
	}

	return limiter.Allow()
}
