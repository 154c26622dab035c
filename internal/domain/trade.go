package domain

import (
	"strings"
	"time"
)

type TradeDirection string

const (
	TradeDirectionBuy  TradeDirection = "buy"
	TradeDirectionSell TradeDirection = "sell"
)

type TradeOutcome string

const (
	TradeOutcomePending TradeOutcome = "pending"
	TradeOutcomeWin     TradeOutcome = "win"
	TradeOutcomeLoss    TradeOutcome = "loss"
	TradeOutcomeSkipped TradeOutcome = "skipped"
)

type TradeStatus string

const (
	TradeStatusActive  TradeStatus = "active"
	TradeStatusTaken   TradeStatus = "taken"
	TradeStatusSkipped TradeStatus = "skipped"
)

type Trade struct {
	ID            int64
	SignalID      *int64
	UserID        int64
	AccountID     *int64
	Date          time.Time
	Asset         string
	Direction     TradeDirection
	EntryPrice    float64
	ExitPrice     float64
	StopLoss      float64
	TakeProfit    float64
	LotSize       float64
	TradeDuration string
	Notes         string
	Outcome       TradeOutcome
	Status        TradeStatus
	StrategyTag   string
	ScreenshotURL string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TradeResult carries the figures derived from a closed trade.
type TradeResult struct {
	Pips            float64
	Profit          float64
	RealizedRiskRwd float64
}

// PipSize returns the pip increment for a symbol. JPY-quoted pairs tick in
// hundredths, everything else in ten-thousandths.
func PipSize(asset string) float64 {
	if strings.Contains(strings.ToLower(asset), "jpy") {
		return 0.01
	}
	return 0.0001
}

// Result derives pips, profit and the realized reward:risk ratio. Pending
// trades have no result yet.
func (t Trade) Result() TradeResult {
	if t.Outcome == TradeOutcomePending {
		return TradeResult{}
	}

	pipSize := PipSize(t.Asset)

	var pips float64
	if t.Direction == TradeDirectionBuy {
		pips = (t.ExitPrice - t.EntryPrice) / pipSize
	} else {
		pips = (t.EntryPrice - t.ExitPrice) / pipSize
	}

	profit := pips * t.LotSize

	var rr float64
	if t.StopLoss != 0 && t.TakeProfit != 0 {
		risk := abs(t.EntryPrice - t.StopLoss)
		reward := abs(t.TakeProfit - t.EntryPrice)
		if risk > 0 {
			rr = reward / risk
		}
	}

	return TradeResult{
		Pips:            round2(pips),
		Profit:          round2(profit),
		RealizedRiskRwd: round2(rr),
	}
}

// DashboardStats summarizes a user's journal for the dashboard view.
type DashboardStats struct {
	WinRate            float64
	AverageRiskReward  float64
	TotalTrades        int
	WinningTrades      int
	LosingTrades       int
	SkippedTrades      int
	TotalPnL           float64
	MostUsedStrategy   string
	MostProfitablePair string
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func round2(v float64) float64 {
	if v < 0 {
		return -round2(-v)
	}
	return float64(int64(v*100+0.5)) / 100
}
