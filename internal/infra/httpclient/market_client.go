package httpclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mainhusharm/windsurf/internal/domain"
)

// indexSymbols maps journal display names to the provider's index tickers.
var indexSymbols = map[string]string{
	"US30":    "^DJI",
	"SPX500":  "^GSPC",
	"NAS100":  "^IXIC",
	"XAU/USD": "GC=F",
	"XAG/USD": "SI=F",
	"USOIL":   "CL=F",
}

// intervalByTimeframe maps journal timeframes to provider chart intervals.
// The second value is the range queried for that resolution.
var intervalByTimeframe = map[string][2]string{
	"1m":  {"1m", "1d"},
	"5m":  {"5m", "5d"},
	"15m": {"15m", "5d"},
	"30m": {"30m", "1mo"},
	"1h":  {"60m", "1mo"},
	"4h":  {"60m", "3mo"},
	"1d":  {"1d", "1y"},
	"1w":  {"1wk", "5y"},
}

type YahooMarketClient struct {
	client  *resty.Client
	baseURL string
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				Symbol             string  `json:"symbol"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func NewYahooMarketClient(baseURL string, opts ...func(*resty.Client)) (*YahooMarketClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("baseURL is required")
	}

	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "Mozilla/5.0").
		SetTimeout(15 * time.Second)

	for _, opt := range opts {
		opt(client)
	}

	return &YahooMarketClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// FormatSymbol converts a journal pair name into the provider's ticker.
// Indexes and metals use explicit mappings, crypto pairs quoted in USDT are
// restated against USD, and anything shaped like a six-letter forex pair
// gets the =X suffix.
func FormatSymbol(pair string) string {
	pair = strings.TrimSpace(pair)
	if mapped, ok := indexSymbols[strings.ToUpper(pair)]; ok {
		return mapped
	}

	upper := strings.ToUpper(pair)
	if strings.HasSuffix(upper, "USDT") {
		return strings.TrimSuffix(upper, "USDT") + "-USD"
	}
	if strings.Contains(upper, "/") {
		upper = strings.ReplaceAll(upper, "/", "")
	}
	if len(upper) == 6 && isAlpha(upper) {
		return upper + "=X"
	}

	return upper
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// FormatTimeframe returns the provider interval and range for a journal
// timeframe, falling back to daily candles over one year.
func FormatTimeframe(timeframe string) (interval, rng string) {
	if mapped, ok := intervalByTimeframe[strings.ToLower(timeframe)]; ok {
		return mapped[0], mapped[1]
	}
	return "1d", "1y"
}

func (c *YahooMarketClient) FetchQuote(ctx context.Context, pair string) (domain.Quote, error) {
	payload, err := c.fetchChart(ctx, pair, map[string]string{
		"interval": "1m",
		"range":    "1d",
	})
	if err != nil {
		return domain.Quote{}, err
	}

	result := payload.Chart.Result[0]
	if result.Meta.RegularMarketPrice == 0 {
		return domain.Quote{}, fmt.Errorf("no price for %s", pair)
	}

	return domain.Quote{
		Pair:      pair,
		Price:     result.Meta.RegularMarketPrice,
		FetchedAt: time.Now().UTC(),
	}, nil
}

func (c *YahooMarketClient) FetchQuotes(ctx context.Context, pairs []string) (map[string]domain.Quote, error) {
	quotes := make(map[string]domain.Quote, len(pairs))
	for _, pair := range pairs {
		quote, err := c.FetchQuote(ctx, pair)
		if err != nil {
			// Partial results are better than none for a batch fetch.
			continue
		}
		quotes[pair] = quote
	}

	if len(quotes) == 0 && len(pairs) > 0 {
		return nil, fmt.Errorf("no quotes fetched for %d pairs", len(pairs))
	}

	return quotes, nil
}

func (c *YahooMarketClient) FetchCandles(ctx context.Context, query domain.CandleQuery) ([]domain.Candle, error) {
	interval, rng := FormatTimeframe(query.Timeframe)
	params := map[string]string{
		"interval": interval,
		"range":    rng,
	}
	if query.From != nil && query.To != nil {
		delete(params, "range")
		params["period1"] = fmt.Sprintf("%d", query.From.Unix())
		params["period2"] = fmt.Sprintf("%d", query.To.Unix())
	}

	payload, err := c.fetchChart(ctx, query.Pair, params)
	if err != nil {
		return nil, err
	}

	result := payload.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no candle data for %s", query.Pair)
	}

	bars := result.Indicators.Quote[0]
	candles := make([]domain.Candle, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(bars.Close) || bars.Close[i] == nil {
			continue
		}

		candle := domain.Candle{
			Time:  time.Unix(ts, 0).UTC(),
			Close: *bars.Close[i],
		}
		if i < len(bars.Open) && bars.Open[i] != nil {
			candle.Open = *bars.Open[i]
		}
		if i < len(bars.High) && bars.High[i] != nil {
			candle.High = *bars.High[i]
		}
		if i < len(bars.Low) && bars.Low[i] != nil {
			candle.Low = *bars.Low[i]
		}
		if i < len(bars.Volume) && bars.Volume[i] != nil {
			candle.Volume = *bars.Volume[i]
		}

		candles = append(candles, candle)
	}

	return candles, nil
}

func (c *YahooMarketClient) fetchChart(ctx context.Context, pair string, params map[string]string) (*chartResponse, error) {
	symbol := FormatSymbol(pair)
	url := fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, symbol)

	var payload chartResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&payload).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch chart for %s: %w", symbol, err)
	}

	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("provider responded with status %d for %s", resp.StatusCode(), symbol)
	}
	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("provider error for %s: %s", symbol, payload.Chart.Error.Description)
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("empty chart result for %s", symbol)
	}

	return &payload, nil
}
