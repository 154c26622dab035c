package http

import (
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/mainhusharm/windsurf/internal/domain"
)

type TradeRequest struct {
	SignalID      *int64  `json:"signal_id"`
	AccountID     *int64  `json:"account_id"`
	Date          string  `json:"date"`
	Asset         string  `json:"asset"`
	Direction     string  `json:"direction"`
	EntryPrice    float64 `json:"entry_price"`
	ExitPrice     float64 `json:"exit_price"`
	StopLoss      float64 `json:"stop_loss"`
	TakeProfit    float64 `json:"take_profit"`
	LotSize       float64 `json:"lot_size"`
	TradeDuration string  `json:"trade_duration"`
	Notes         string  `json:"notes"`
	Outcome       string  `json:"outcome"`
	Status        string  `json:"status"`
	StrategyTag   string  `json:"strategy_tag"`
	ScreenshotURL string  `json:"screenshot_url"`
}

type TradeResponse struct {
	ID            int64   `json:"id"`
	SignalID      *int64  `json:"signal_id,omitempty"`
	AccountID     *int64  `json:"account_id,omitempty"`
	Date          string  `json:"date"`
	Asset         string  `json:"asset"`
	Direction     string  `json:"direction"`
	EntryPrice    float64 `json:"entry_price"`
	ExitPrice     float64 `json:"exit_price"`
	StopLoss      float64 `json:"stop_loss"`
	TakeProfit    float64 `json:"take_profit"`
	LotSize       float64 `json:"lot_size"`
	TradeDuration string  `json:"trade_duration,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	Outcome       string  `json:"outcome"`
	Status        string  `json:"status"`
	StrategyTag   string  `json:"strategy_tag,omitempty"`
	ScreenshotURL string  `json:"screenshot_url,omitempty"`
	Pips          float64 `json:"pips"`
	Profit        float64 `json:"profit"`
	RealizedRR    float64 `json:"realized_rr"`
}

// addTrade godoc
// @Summary Record a journal trade
// @Tags trades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TradeRequest true "Trade payload"
// @Success 201 {object} TradeResponse
// @Failure 400 {object} map[string]string
// @Router /api/trades [post]
func (r *Router) addTrade(c *fiber.Ctx) error {
	if r.trades == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "trade service unavailable")
	}

	var req TradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	trade := domain.Trade{
		SignalID:      req.SignalID,
		UserID:        currentUserID(c),
		AccountID:     req.AccountID,
		Date:          parseDate(req.Date),
		Asset:         req.Asset,
		Direction:     domain.TradeDirection(req.Direction),
		EntryPrice:    req.EntryPrice,
		ExitPrice:     req.ExitPrice,
		StopLoss:      req.StopLoss,
		TakeProfit:    req.TakeProfit,
		LotSize:       req.LotSize,
		TradeDuration: req.TradeDuration,
		Notes:         req.Notes,
		Outcome:       domain.TradeOutcome(req.Outcome),
		Status:        domain.TradeStatus(req.Status),
		StrategyTag:   req.StrategyTag,
		ScreenshotURL: req.ScreenshotURL,
	}

	ctx, cancel := timeoutContext(c, 10*time.Second)
	defer cancel()

	created, err := r.trades.AddTrade(ctx, trade)
	if err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(toTradeResponse(created, created.Result()))
}

// listTrades godoc
// @Summary List the authenticated user's trades
// @Tags trades
// @Produce json
// @Security BearerAuth
// @Success 200 {array} TradeResponse
// @Failure 401 {object} map[string]string
// @Router /api/trades [get]
func (r *Router) listTrades(c *fiber.Ctx) error {
	if r.trades == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "trade service unavailable")
	}

	ctx, cancel := timeoutContext(c, 10*time.Second)
	defer cancel()

	trades, err := r.trades.ListTrades(ctx, currentUserID(c))
	if err != nil {
		return serviceError(err)
	}

	out := make([]TradeResponse, 0, len(trades))
	for _, item := range trades {
		out = append(out, toTradeResponse(item.Trade, item.Result))
	}
	return c.JSON(out)
}

// deleteTrade godoc
// @Summary Delete a trade by its signal id
// @Tags trades
// @Produce json
// @Security BearerAuth
// @Param signal_id path int true "Signal ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/trades/{signal_id} [delete]
func (r *Router) deleteTrade(c *fiber.Ctx) error {
	if r.trades == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "trade service unavailable")
	}

	signalID, err := strconv.ParseInt(c.Params("signal_id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid signal id")
	}

	ctx, cancel := timeoutContext(c, 10*time.Second)
	defer cancel()

	if err := r.trades.DeleteTradeBySignal(ctx, currentUserID(c), signalID); err != nil {
		return serviceError(err)
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}

// exportTrades godoc
// @Summary Export the authenticated user's journal as CSV
// @Tags trades
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string
// @Failure 401 {object} map[string]string
// @Router /api/trades/export [get]
func (r *Router) exportTrades(c *fiber.Ctx) error {
	if r.trades == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "trade service unavailable")
	}

	ctx, cancel := timeoutContext(c, 30*time.Second)
	defer cancel()

	data, err := r.trades.ExportCSV(ctx, currentUserID(c))
	if err != nil {
		return serviceError(err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="trades.csv"`)
	return c.Send(data)
}

// getDashboard godoc
// @Summary Load the dashboard payload
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} usecase.DashboardData
// @Failure 401 {object} map[string]string
// @Router /api/dashboard [get]
func (r *Router) getDashboard(c *fiber.Ctx) error {
	if r.dashboard == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "dashboard unavailable")
	}

	ctx, cancel := timeoutContext(c, 15*time.Second)
	defer cancel()

	data, err := r.dashboard.Load(ctx, currentUserID(c))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(data)
}

func toTradeResponse(trade domain.Trade, result domain.TradeResult) TradeResponse {
	return TradeResponse{
		ID:            trade.ID,
		SignalID:      trade.SignalID,
		AccountID:     trade.AccountID,
		Date:          trade.Date.Format("2006-01-02"),
		Asset:         trade.Asset,
		Direction:     string(trade.Direction),
		EntryPrice:    trade.EntryPrice,
		ExitPrice:     trade.ExitPrice,
		StopLoss:      trade.StopLoss,
		TakeProfit:    trade.TakeProfit,
		LotSize:       trade.LotSize,
		TradeDuration: trade.TradeDuration,
		Notes:         trade.Notes,
		Outcome:       string(trade.Outcome),
		Status:        string(trade.Status),
		StrategyTag:   trade.StrategyTag,
		ScreenshotURL: trade.ScreenshotURL,
		Pips:          result.Pips,
		Profit:        result.Profit,
		RealizedRR:    result.RealizedRiskRwd,
	}
}

func parseDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
