package meteo

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/agroclim/eto-service/internal/observability"
)

// Fetcher retrieves a raw document for a target URL.
type Fetcher interface {
	Fetch(ctx context.Context, target string) (string, error)
}

// CachedFetcher wraps a Fetcher with a time-boxed snapshot cache keyed by
// target. A hit returns the previously retrieved text verbatim; entries
// expire only by the time window elapsing. Concurrent population of the
// same target is last-write-wins.
type CachedFetcher struct {
	inner   Fetcher
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics

	mu      sync.Mutex
	entries map[string]snapshot
}

type snapshot struct {
	body      string
	fetchedAt time.Time
}

// NewCachedFetcher creates a cache decorator around a fetcher. Pass a nil
// clock for real time; tests inject a fake to drive expiry.
func NewCachedFetcher(inner Fetcher, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedFetcher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CachedFetcher{
		inner:   inner,
		ttl:     ttl,
		clock:   clock,
		metrics: metrics,
		entries: make(map[string]snapshot),
	}
}

func (c *CachedFetcher) Fetch(ctx context.Context, target string) (string, error) {
	if body, ok := c.lookup(target); ok {
		c.metrics.FetchCache.WithLabelValues("hit").Inc()
		return body, nil
	}
	c.metrics.FetchCache.WithLabelValues("miss").Inc()

	body, err := c.inner.Fetch(ctx, target)
	if err != nil {
		// Only successes are cached, so a failed target can be retried
		// by the next interaction.
		return "", err
	}

	c.mu.Lock()
	c.entries[target] = snapshot{body: body, fetchedAt: c.clock.Now()}
	c.mu.Unlock()

	return body, nil
}

func (c *CachedFetcher) lookup(target string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[target]
	if !ok {
		return "", false
	}
	if c.clock.Since(e.fetchedAt) >= c.ttl {
		delete(c.entries, target)
		return "", false
	}
	return e.body, true
}
