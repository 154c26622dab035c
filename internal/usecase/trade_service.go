package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mainhusharm/windsurf/internal/domain"
)

// TradeWithResult pairs a journal entry with its derived figures.
type TradeWithResult struct {
	Trade  domain.Trade
	Result domain.TradeResult
}

type TradeService struct {
	trades domain.TradeRepository
}

func NewTradeService(trades domain.TradeRepository) (*TradeService, error) {
	if trades == nil {
		return nil, errors.New("trade repository required")
	}
	return &TradeService{trades: trades}, nil
}

func (s *TradeService) AddTrade(ctx context.Context, trade domain.Trade) (domain.Trade, error) {
	if trade.UserID == 0 {
		return domain.Trade{}, fmt.Errorf("%w: user id required", ErrValidation)
	}
	if strings.TrimSpace(trade.Asset) == "" {
		return domain.Trade{}, fmt.Errorf("%w: asset is required", ErrValidation)
	}
	if trade.Direction != domain.TradeDirectionBuy && trade.Direction != domain.TradeDirectionSell {
		return domain.Trade{}, fmt.Errorf("%w: direction must be buy or sell", ErrValidation)
	}

	if trade.Date.IsZero() {
		trade.Date = time.Now().UTC()
	}
	if trade.Outcome == "" {
		trade.Outcome = domain.TradeOutcomePending
	}
	if trade.Status == "" {
		trade.Status = domain.TradeStatusActive
	}

	return s.trades.AddTrade(ctx, trade)
}

func (s *TradeService) ListTrades(ctx context.Context, userID int64) ([]TradeWithResult, error) {
	trades, err := s.trades.ListTrades(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]TradeWithResult, 0, len(trades))
	for _, trade := range trades {
		out = append(out, TradeWithResult{
			Trade:  trade,
			Result: trade.Result(),
		})
	}
	return out, nil
}

func (s *TradeService) DeleteTradeBySignal(ctx context.Context, userID, signalID int64) error {
	if err := s.trades.DeleteTradeBySignal(ctx, userID, signalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ExportCSV renders a user's journal as CSV, one row per trade with the
// derived pips and profit included.
func (s *TradeService) ExportCSV(ctx context.Context, userID int64) ([]byte, error) {
	trades, err := s.ListTrades(ctx, userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"date", "asset", "direction", "entry_price", "exit_price",
		"stop_loss", "take_profit", "lot_size", "outcome", "status",
		"strategy", "pips", "profit", "realized_rr", "notes",
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, item := range trades {
		t := item.Trade
		r := item.Result
		row := []string{
			t.Date.Format("2006-01-02"),
			t.Asset,
			string(t.Direction),
			formatFloat(t.EntryPrice),
			formatFloat(t.ExitPrice),
			formatFloat(t.StopLoss),
			formatFloat(t.TakeProfit),
			formatFloat(t.LotSize),
			string(t.Outcome),
			string(t.Status),
			t.StrategyTag,
			formatFloat(r.Pips),
			formatFloat(r.Profit),
			formatFloat(r.RealizedRiskRwd),
			t.Notes,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// DashboardStats aggregates a user's journal. Skipped trades count toward
// the totals but not toward the win rate denominator.
func (s *TradeService) DashboardStats(ctx context.Context, userID int64) (domain.DashboardStats, error) {
	trades, err := s.trades.ListTrades(ctx, userID)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	var stats domain.DashboardStats
	var sumRR float64
	var rrCount int
	strategyCounts := make(map[string]int)
	pairProfits := make(map[string]float64)

	for _, trade := range trades {
		stats.TotalTrades++

		switch trade.Outcome {
		case domain.TradeOutcomeWin:
			stats.WinningTrades++
		case domain.TradeOutcomeLoss:
			stats.LosingTrades++
		case domain.TradeOutcomeSkipped:
			stats.SkippedTrades++
		}

		if trade.Outcome == domain.TradeOutcomeWin || trade.Outcome == domain.TradeOutcomeLoss {
			result := trade.Result()
			stats.TotalPnL += result.Profit
			pairProfits[trade.Asset] += result.Profit
			if result.RealizedRiskRwd > 0 {
				sumRR += result.RealizedRiskRwd
				rrCount++
			}
		}

		if trade.StrategyTag != "" {
			strategyCounts[trade.StrategyTag]++
		}
	}

	decided := stats.WinningTrades + stats.LosingTrades
	if decided > 0 {
		stats.WinRate = roundPct(float64(stats.WinningTrades) / float64(decided))
	}
	if rrCount > 0 {
		stats.AverageRiskReward = roundHundredth(sumRR / float64(rrCount))
	}
	stats.TotalPnL = roundHundredth(stats.TotalPnL)
	stats.MostUsedStrategy = maxCountKey(strategyCounts)
	stats.MostProfitablePair = maxValueKey(pairProfits)

	return stats, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func roundPct(ratio float64) float64 {
	return roundHundredth(ratio * 100)
}

func roundHundredth(v float64) float64 {
	if v < 0 {
		return -roundHundredth(-v)
	}
	return float64(int64(v*100+0.5)) / 100
}

func maxCountKey(counts map[string]int) string {
	best := ""
	bestCount := 0
	for key, count := range counts {
		if count > bestCount || (count == bestCount && key < best) {
			best = key
			bestCount = count
		}
	}
	return best
}

func maxValueKey(values map[string]float64) string {
	best := ""
	first := true
	var bestValue float64
	for key, value := range values {
		if first || value > bestValue || (value == bestValue && key < best) {
			best = key
			bestValue = value
			first = false
		}
	}
	return best
}
