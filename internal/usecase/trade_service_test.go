package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/mainhusharm/windsurf/internal/domain"
)

type memoryTradeRepo struct {
	nextID int64
	trades []domain.Trade
}

func newMemoryTradeRepo() *memoryTradeRepo {
	return &memoryTradeRepo{nextID: 1}
}

func (r *memoryTradeRepo) AddTrade(_ context.Context, trade domain.Trade) (domain.Trade, error) {
	trade.ID = r.nextID
	r.nextID++
	r.trades = append(r.trades, trade)
	return trade, nil
}

func (r *memoryTradeRepo) ListTrades(_ context.Context, userID int64) ([]domain.Trade, error) {
	var out []domain.Trade
	for _, trade := range r.trades {
		if trade.UserID == userID {
			out = append(out, trade)
		}
	}
	return out, nil
}

func (r *memoryTradeRepo) DeleteTradeBySignal(_ context.Context, userID, signalID int64) error {
	for i, trade := range r.trades {
		if trade.UserID == userID && trade.SignalID != nil && *trade.SignalID == signalID {
			r.trades = append(r.trades[:i], r.trades[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func seedTrade(asset string, direction domain.TradeDirection, entry, exit, sl, tp, lot float64, outcome domain.TradeOutcome, strategy string) domain.Trade {
	return domain.Trade{
		UserID:      7,
		Date:        time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		Asset:       asset,
		Direction:   direction,
		EntryPrice:  entry,
		ExitPrice:   exit,
		StopLoss:    sl,
		TakeProfit:  tp,
		LotSize:     lot,
		Outcome:     outcome,
		Status:      domain.TradeStatusTaken,
		StrategyTag: strategy,
	}
}

func TestAddTradeDefaults(t *testing.T) {
	repo := newMemoryTradeRepo()
	service, err := NewTradeService(repo)
	if err != nil {
		t.Fatalf("NewTradeService: %v", err)
	}

	trade, err := service.AddTrade(context.Background(), domain.Trade{
		UserID:    7,
		Asset:     "EURUSD",
		Direction: domain.TradeDirectionBuy,
	})
	if err != nil {
		t.Fatalf("AddTrade: %v", err)
	}

	if trade.Outcome != domain.TradeOutcomePending {
		t.Errorf("outcome = %q, want pending", trade.Outcome)
	}
	if trade.Status != domain.TradeStatusActive {
		t.Errorf("status = %q, want active", trade.Status)
	}
	if trade.Date.IsZero() {
		t.Error("date not defaulted")
	}
}

func TestAddTradeValidation(t *testing.T) {
	service, _ := NewTradeService(newMemoryTradeRepo())

	cases := []domain.Trade{
		{Asset: "EURUSD", Direction: domain.TradeDirectionBuy},
		{UserID: 7, Direction: domain.TradeDirectionBuy},
		{UserID: 7, Asset: "EURUSD", Direction: "sideways"},
	}
	for i, trade := range cases {
		if _, err := service.AddTrade(context.Background(), trade); !errors.Is(err, ErrValidation) {
			t.Errorf("case %d: err = %v, want ErrValidation", i, err)
		}
	}
}

func TestDashboardStats(t *testing.T) {
	repo := newMemoryTradeRepo()
	service, _ := NewTradeService(repo)
	ctx := context.Background()

	// Two wins, one loss, one skip. Buy EURUSD 1.1000 -> 1.1050 is +50
	// pips, one lot gives +50 profit.
	for _, trade := range []domain.Trade{
		seedTrade("EURUSD", domain.TradeDirectionBuy, 1.1000, 1.1050, 1.0950, 1.1100, 1, domain.TradeOutcomeWin, "breakout"),
		seedTrade("EURUSD", domain.TradeDirectionBuy, 1.1000, 1.1100, 1.0950, 1.1100, 1, domain.TradeOutcomeWin, "breakout"),
		seedTrade("GBPUSD", domain.TradeDirectionSell, 1.2500, 1.2550, 1.2550, 1.2400, 1, domain.TradeOutcomeLoss, "reversal"),
		seedTrade("USDJPY", domain.TradeDirectionBuy, 150.00, 0, 0, 0, 1, domain.TradeOutcomeSkipped, ""),
	} {
		if _, err := repo.AddTrade(ctx, trade); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	stats, err := service.DashboardStats(ctx, 7)
	if err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}

	if stats.TotalTrades != 4 {
		t.Errorf("TotalTrades = %d, want 4", stats.TotalTrades)
	}
	if stats.WinningTrades != 2 || stats.LosingTrades != 1 || stats.SkippedTrades != 1 {
		t.Errorf("W/L/S = %d/%d/%d, want 2/1/1", stats.WinningTrades, stats.LosingTrades, stats.SkippedTrades)
	}
	// Win rate excludes the skipped trade: 2 of 3 decided.
	if stats.WinRate != 66.67 {
		t.Errorf("WinRate = %v, want 66.67", stats.WinRate)
	}
	// +50 +100 -50 pips at one lot each.
	if stats.TotalPnL != 100 {
		t.Errorf("TotalPnL = %v, want 100", stats.TotalPnL)
	}
	if stats.MostUsedStrategy != "breakout" {
		t.Errorf("MostUsedStrategy = %q, want breakout", stats.MostUsedStrategy)
	}
	if stats.MostProfitablePair != "EURUSD" {
		t.Errorf("MostProfitablePair = %q, want EURUSD", stats.MostProfitablePair)
	}
}

func TestDeleteTradeBySignal(t *testing.T) {
	repo := newMemoryTradeRepo()
	service, _ := NewTradeService(repo)
	ctx := context.Background()

	signalID := int64(99)
	trade := seedTrade("EURUSD", domain.TradeDirectionBuy, 1.1, 1.2, 0, 0, 1, domain.TradeOutcomeWin, "")
	trade.SignalID = &signalID
	if _, err := repo.AddTrade(ctx, trade); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := service.DeleteTradeBySignal(ctx, 7, 99); err != nil {
		t.Fatalf("DeleteTradeBySignal: %v", err)
	}
	if err := service.DeleteTradeBySignal(ctx, 7, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTradeBySignalScopedToOwner(t *testing.T) {
	repo := newMemoryTradeRepo()
	service, _ := NewTradeService(repo)
	ctx := context.Background()

	signalID := int64(99)
	trade := seedTrade("EURUSD", domain.TradeDirectionBuy, 1.1, 1.2, 0, 0, 1, domain.TradeOutcomeWin, "")
	trade.SignalID = &signalID
	if _, err := repo.AddTrade(ctx, trade); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// A different user must not be able to delete user 7's trade.
	if err := service.DeleteTradeBySignal(ctx, 8, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user delete err = %v, want ErrNotFound", err)
	}

	trades, err := repo.ListTrades(ctx, 7)
	if err != nil {
		t.Fatalf("ListTrades: %v", err)
	}
	if len(trades) != 1 {
		t.Fatalf("owner's trade was removed by another user")
	}

	if err := service.DeleteTradeBySignal(ctx, 7, 99); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestExportCSV(t *testing.T) {
	repo := newMemoryTradeRepo()
	service, _ := NewTradeService(repo)
	ctx := context.Background()

	if _, err := repo.AddTrade(ctx, seedTrade("EURUSD", domain.TradeDirectionBuy, 1.1000, 1.1050, 1.0950, 1.1100, 1, domain.TradeOutcomeWin, "breakout")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	data, err := service.ExportCSV(ctx, 7)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv has %d lines, want header plus one row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "date,asset,direction") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "EURUSD") || !strings.Contains(lines[1], "breakout") {
		t.Errorf("row missing fields: %s", lines[1])
	}
}
