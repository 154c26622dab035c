package http

import (
	"context"
	"errors"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"github.com/mainhusharm/windsurf/internal/domain"
	"github.com/mainhusharm/windsurf/internal/usecase"
)

type AuthService interface {
	Register(ctx context.Context, input usecase.RegisterInput) (domain.User, error)
	Login(ctx context.Context, email, password string) (usecase.AuthResult, error)
	Profile(ctx context.Context, userID int64) (domain.User, error)
	ValidateSession(ctx context.Context, userID int64, sessionID string) error
	UpdatePlan(ctx context.Context, userID int64, planType string) (domain.User, error)
}

type TradeService interface {
	AddTrade(ctx context.Context, trade domain.Trade) (domain.Trade, error)
	ListTrades(ctx context.Context, userID int64) ([]usecase.TradeWithResult, error)
	DeleteTradeBySignal(ctx context.Context, userID, signalID int64) error
	ExportCSV(ctx context.Context, userID int64) ([]byte, error)
}

type PlanService interface {
	GeneratePreview(q domain.Questionnaire) domain.RiskPlan
	GenerateForUser(ctx context.Context, userID int64, q domain.Questionnaire) (domain.RiskPlan, error)
	GetPlan(ctx context.Context, userID int64) (domain.StoredRiskPlan, error)
}

type DashboardService interface {
	Load(ctx context.Context, userID int64) (usecase.DashboardData, error)
}

type AccountService interface {
	CreateAccount(ctx context.Context, account domain.Account) (domain.Account, error)
	ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error)
	CreatePropFirm(ctx context.Context, firm domain.PropFirm) (domain.PropFirm, error)
	ListPropFirms(ctx context.Context) ([]domain.PropFirm, error)
	ListPerformance(ctx context.Context, userID, accountID int64) ([]domain.PerformanceRecord, error)
}

type MarketService interface {
	GetQuote(ctx context.Context, pair string) (domain.Quote, error)
	GetQuotes(ctx context.Context, pairs []string) (map[string]domain.Quote, error)
	GetCandles(ctx context.Context, query domain.CandleQuery) ([]domain.Candle, error)
}

type Router struct {
	app       *fiber.App
	auth      AuthService
	trades    TradeService
	plans     PlanService
	dashboard DashboardService
	accounts  AccountService
	market    MarketService
	tokens    tokenParser
}

type Deps struct {
	Auth      AuthService
	Trades    TradeService
	Plans     PlanService
	Dashboard DashboardService
	Accounts  AccountService
	Market    MarketService
	Tokens    tokenParser
}

func New(deps Deps) *Router {
	app := fiber.New()

	r := &Router{
		app:       app,
		auth:      deps.Auth,
		trades:    deps.Trades,
		plans:     deps.Plans,
		dashboard: deps.Dashboard,
		accounts:  deps.Accounts,
		market:    deps.Market,
		tokens:    deps.Tokens,
	}

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", r.register)
	authGroup.Post("/login", r.login)
	authGroup.Get("/profile", r.requireAuth, r.profile)

	api.Post("/user/plan", r.requireAuth, r.updatePlan)

	api.Post("/trades", r.requireAuth, r.addTrade)
	api.Get("/trades", r.requireAuth, r.listTrades)
	api.Get("/trades/export", r.requireAuth, r.exportTrades)
	api.Delete("/trades/:signal_id", r.requireAuth, r.deleteTrade)

	api.Get("/dashboard", r.requireAuth, r.getDashboard)

	// Stateless preview for the onboarding flow; no account needed.
	api.Post("/generate-plan", r.generatePlanPreview)
	api.Post("/risk-plan", r.requireAuth, r.generateRiskPlan)
	api.Get("/risk-plan", r.requireAuth, r.getRiskPlan)

	api.Post("/accounts", r.requireAuth, r.createAccount)
	api.Get("/accounts", r.requireAuth, r.listAccounts)
	api.Post("/propfirms", r.requireAuth, r.createPropFirm)
	api.Get("/propfirms", r.listPropFirms)
	api.Get("/performance", r.requireAuth, r.listPerformance)

	market := api.Group("/market")
	market.Get("/price", r.getPrice)
	market.Get("/prices", r.getPrices)
	market.Get("/candles", r.getCandles)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return r
}

func (r *Router) App() *fiber.App {
	return r.app
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func timeoutContext(c *fiber.Ctx, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(userContext(c), d)
}

// serviceError translates usecase sentinel errors into HTTP statuses.
func serviceError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, usecase.ErrPlanRequired):
		return fiber.NewError(fiber.StatusPaymentRequired, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrEmailTaken):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
