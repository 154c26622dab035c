package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mainhusharm/windsurf/internal/domain"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() domain.Clock { return systemClock{} }

type entry struct {
	quote     domain.Quote
	fetchedAt time.Time
}

// QuoteCache wraps a QuoteProvider with a per-symbol TTL cache. Only one
// goroutine refreshes a given symbol at a time; concurrent readers either
// get the cached value or wait on the in-flight fetch. When a refresh fails
// and a stale entry exists, the stale entry is served instead of the error.
type QuoteCache struct {
	provider domain.QuoteProvider
	clock    domain.Clock
	ttl      time.Duration

	mu       sync.Mutex
	entries  map[string]entry
	inflight map[string]chan struct{}
}

func NewQuoteCache(provider domain.QuoteProvider, clock domain.Clock, ttl time.Duration) (*QuoteCache, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider is required")
	}
	if clock == nil {
		clock = SystemClock()
	}
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &QuoteCache{
		provider: provider,
		clock:    clock,
		ttl:      ttl,
		entries:  make(map[string]entry),
		inflight: make(map[string]chan struct{}),
	}, nil
}

func (c *QuoteCache) FetchQuote(ctx context.Context, pair string) (domain.Quote, error) {
	for {
		c.mu.Lock()

		if cached, ok := c.entries[pair]; ok && c.clock.Now().Sub(cached.fetchedAt) < c.ttl {
			c.mu.Unlock()
			return cached.quote, nil
		}

		if done, ok := c.inflight[pair]; ok {
			c.mu.Unlock()
			select {
			case <-done:
			case <-ctx.Done():
				return domain.Quote{}, ctx.Err()
			}
			continue
		}

		done := make(chan struct{})
		c.inflight[pair] = done
		c.mu.Unlock()

		quote, err := c.provider.FetchQuote(ctx, pair)

		c.mu.Lock()
		delete(c.inflight, pair)
		close(done)

		if err != nil {
			stale, ok := c.entries[pair]
			c.mu.Unlock()
			if ok {
				return stale.quote, nil
			}
			return domain.Quote{}, err
		}

		c.entries[pair] = entry{quote: quote, fetchedAt: c.clock.Now()}
		c.mu.Unlock()
		return quote, nil
	}
}

func (c *QuoteCache) FetchQuotes(ctx context.Context, pairs []string) (map[string]domain.Quote, error) {
	quotes := make(map[string]domain.Quote, len(pairs))
	for _, pair := range pairs {
		quote, err := c.FetchQuote(ctx, pair)
		if err != nil {
			continue
		}
		quotes[pair] = quote
	}

	if len(quotes) == 0 && len(pairs) > 0 {
		return nil, fmt.Errorf("no quotes available for %d pairs", len(pairs))
	}

	return quotes, nil
}

// FetchCandles passes through to the provider. Candle queries carry explicit
// windows and do not benefit from the quote TTL.
func (c *QuoteCache) FetchCandles(ctx context.Context, query domain.CandleQuery) ([]domain.Candle, error) {
	return c.provider.FetchCandles(ctx, query)
}

// Refresh re-fetches every symbol currently in the cache, replacing entries
// whose fetch succeeds. Used by the background scheduler to keep hot symbols
// warm.
func (c *QuoteCache) Refresh(ctx context.Context) int {
	c.mu.Lock()
	pairs := make([]string, 0, len(c.entries))
	for pair := range c.entries {
		pairs = append(pairs, pair)
	}
	c.mu.Unlock()

	refreshed := 0
	for _, pair := range pairs {
		quote, err := c.provider.FetchQuote(ctx, pair)
		if err != nil {
			continue
		}

		c.mu.Lock()
		c.entries[pair] = entry{quote: quote, fetchedAt: c.clock.Now()}
		c.mu.Unlock()
		refreshed++
	}

	return refreshed
}
