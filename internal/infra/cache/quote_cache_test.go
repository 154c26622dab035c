package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mainhusharm/windsurf/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type scriptedProvider struct {
	calls  int
	quotes []domain.Quote
	errs   []error
}

func (p *scriptedProvider) FetchQuote(_ context.Context, pair string) (domain.Quote, error) {
	idx := p.calls
	p.calls++
	if idx < len(p.errs) && p.errs[idx] != nil {
		return domain.Quote{}, p.errs[idx]
	}
	if idx < len(p.quotes) {
		q := p.quotes[idx]
		q.Pair = pair
		return q, nil
	}
	return domain.Quote{Pair: pair, Price: 1}, nil
}

func (p *scriptedProvider) FetchQuotes(ctx context.Context, pairs []string) (map[string]domain.Quote, error) {
	out := make(map[string]domain.Quote, len(pairs))
	for _, pair := range pairs {
		q, err := p.FetchQuote(ctx, pair)
		if err != nil {
			return nil, err
		}
		out[pair] = q
	}
	return out, nil
}

func (p *scriptedProvider) FetchCandles(context.Context, domain.CandleQuery) ([]domain.Candle, error) {
	return nil, nil
}

func TestQuoteCacheServesCachedWithinTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	provider := &scriptedProvider{quotes: []domain.Quote{{Price: 1.1000}, {Price: 1.2000}}}

	cache, err := NewQuoteCache(provider, clock, time.Minute)
	if err != nil {
		t.Fatalf("NewQuoteCache: %v", err)
	}

	ctx := context.Background()
	first, err := cache.FetchQuote(ctx, "EURUSD")
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}

	clock.advance(30 * time.Second)
	second, err := cache.FetchQuote(ctx, "EURUSD")
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}

	if provider.calls != 1 {
		t.Fatalf("provider called %d times, want 1", provider.calls)
	}
	if first.Price != second.Price {
		t.Fatalf("cached price changed: %v -> %v", first.Price, second.Price)
	}
}

func TestQuoteCacheRefetchesAfterTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	provider := &scriptedProvider{quotes: []domain.Quote{{Price: 1.1000}, {Price: 1.2000}}}

	cache, _ := NewQuoteCache(provider, clock, time.Minute)
	ctx := context.Background()

	if _, err := cache.FetchQuote(ctx, "EURUSD"); err != nil {
		t.Fatalf("first fetch: %v", err)
	}

	clock.advance(61 * time.Second)
	quote, err := cache.FetchQuote(ctx, "EURUSD")
	if err != nil {
		t.Fatalf("refetch: %v", err)
	}

	if provider.calls != 2 {
		t.Fatalf("provider called %d times, want 2", provider.calls)
	}
	if quote.Price != 1.2000 {
		t.Fatalf("price = %v, want refreshed 1.2", quote.Price)
	}
}

func TestQuoteCacheServesStaleOnFailure(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	provider := &scriptedProvider{
		quotes: []domain.Quote{{Price: 1.1000}},
		errs:   []error{nil, errors.New("upstream down")},
	}

	cache, _ := NewQuoteCache(provider, clock, time.Minute)
	ctx := context.Background()

	if _, err := cache.FetchQuote(ctx, "EURUSD"); err != nil {
		t.Fatalf("first fetch: %v", err)
	}

	clock.advance(2 * time.Minute)
	quote, err := cache.FetchQuote(ctx, "EURUSD")
	if err != nil {
		t.Fatalf("expected stale quote, got error: %v", err)
	}
	if quote.Price != 1.1000 {
		t.Fatalf("stale price = %v, want 1.1", quote.Price)
	}
}

func TestQuoteCacheErrorsWithoutStaleEntry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	provider := &scriptedProvider{errs: []error{errors.New("upstream down")}}

	cache, _ := NewQuoteCache(provider, clock, time.Minute)
	if _, err := cache.FetchQuote(context.Background(), "EURUSD"); err == nil {
		t.Fatal("expected error with no cached fallback")
	}
}

func TestQuoteCacheRefresh(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	provider := &scriptedProvider{quotes: []domain.Quote{{Price: 1.1000}, {Price: 1.3000}}}

	cache, _ := NewQuoteCache(provider, clock, time.Minute)
	ctx := context.Background()

	if _, err := cache.FetchQuote(ctx, "EURUSD"); err != nil {
		t.Fatalf("seed fetch: %v", err)
	}

	if n := cache.Refresh(ctx); n != 1 {
		t.Fatalf("Refresh = %d, want 1", n)
	}

	quote, err := cache.FetchQuote(ctx, "EURUSD")
	if err != nil {
		t.Fatalf("fetch after refresh: %v", err)
	}
	if quote.Price != 1.3000 {
		t.Fatalf("price = %v, want refreshed 1.3", quote.Price)
	}
}
