package domain

import "time"

// Quote is the latest traded price for a symbol as reported by the
// market-data provider.
type Quote struct {
	Pair      string    `json:"pair"`
	Price     float64   `json:"price"`
	FetchedAt time.Time `json:"fetched_at"`
}

type Candle struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

type CandleQuery struct {
	Pair      string
	Timeframe string
	From      *time.Time
	To        *time.Time
}
