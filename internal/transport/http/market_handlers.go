package http

import (
	"strings"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/mainhusharm/windsurf/internal/domain"
)

// getPrice godoc
// @Summary Get the latest price for one symbol
// @Tags market
// @Produce json
// @Param pair query string true "Symbol, e.g. EURUSD or BTCUSDT"
// @Success 200 {object} domain.Quote
// @Failure 400 {object} map[string]string
// @Router /api/market/price [get]
func (r *Router) getPrice(c *fiber.Ctx) error {
	if r.market == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "market service unavailable")
	}

	ctx, cancel := timeoutContext(c, 15*time.Second)
	defer cancel()

	quote, err := r.market.GetQuote(ctx, c.Query("pair"))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(quote)
}

// getPrices godoc
// @Summary Get latest prices for several symbols
// @Tags market
// @Produce json
// @Param pairs query string true "Comma-separated symbols"
// @Success 200 {object} map[string]domain.Quote
// @Failure 400 {object} map[string]string
// @Router /api/market/prices [get]
func (r *Router) getPrices(c *fiber.Ctx) error {
	if r.market == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "market service unavailable")
	}

	pairs := strings.Split(c.Query("pairs"), ",")

	ctx, cancel := timeoutContext(c, 30*time.Second)
	defer cancel()

	quotes, err := r.market.GetQuotes(ctx, pairs)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(quotes)
}

// getCandles godoc
// @Summary Get OHLC candles for a symbol
// @Tags market
// @Produce json
// @Param pair query string true "Symbol"
// @Param timeframe query string false "Timeframe, e.g. 1h or 1d"
// @Param from query string false "Window start, ISO8601"
// @Param to query string false "Window end, ISO8601"
// @Success 200 {array} domain.Candle
// @Failure 400 {object} map[string]string
// @Router /api/market/candles [get]
func (r *Router) getCandles(c *fiber.Ctx) error {
	if r.market == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "market service unavailable")
	}

	query := domain.CandleQuery{
		Pair:      c.Query("pair"),
		Timeframe: c.Query("timeframe"),
	}

	if v := c.Query("from"); v != "" {
		from := parseDate(v)
		if from.IsZero() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid from")
		}
		query.From = &from
	}
	if v := c.Query("to"); v != "" {
		to := parseDate(v)
		if to.IsZero() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid to")
		}
		query.To = &to
	}

	ctx, cancel := timeoutContext(c, 30*time.Second)
	defer cancel()

	candles, err := r.market.GetCandles(ctx, query)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(candles)
}
