package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mainhusharm/windsurf/internal/domain"
)

// MarketService fronts the quote provider for the journal's price views.
type MarketService struct {
	provider domain.QuoteProvider
}

func NewMarketService(provider domain.QuoteProvider) (*MarketService, error) {
	if provider == nil {
		return nil, errors.New("quote provider required")
	}
	return &MarketService{provider: provider}, nil
}

func (s *MarketService) GetQuote(ctx context.Context, pair string) (domain.Quote, error) {
	pair = strings.TrimSpace(pair)
	if pair == "" {
		return domain.Quote{}, fmt.Errorf("%w: pair is required", ErrValidation)
	}
	return s.provider.FetchQuote(ctx, pair)
}

func (s *MarketService) GetQuotes(ctx context.Context, pairs []string) (map[string]domain.Quote, error) {
	cleaned := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair != "" {
			cleaned = append(cleaned, pair)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: at least one pair is required", ErrValidation)
	}
	return s.provider.FetchQuotes(ctx, cleaned)
}

func (s *MarketService) GetCandles(ctx context.Context, query domain.CandleQuery) ([]domain.Candle, error) {
	if strings.TrimSpace(query.Pair) == "" {
		return nil, fmt.Errorf("%w: pair is required", ErrValidation)
	}
	if query.Timeframe == "" {
		query.Timeframe = "1d"
	}
	return s.provider.FetchCandles(ctx, query)
}
