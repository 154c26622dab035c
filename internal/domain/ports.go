package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user User) (User, error)
	GetUser(ctx context.Context, userID int64) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	UpdateSession(ctx context.Context, userID int64, sessionID string) error
	UpdatePlanType(ctx context.Context, userID int64, plan PlanType) error
}

type TradeRepository interface {
	AddTrade(ctx context.Context, trade Trade) (Trade, error)
	ListTrades(ctx context.Context, userID int64) ([]Trade, error)
	DeleteTradeBySignal(ctx context.Context, userID, signalID int64) error
}

type AccountRepository interface {
	CreateAccount(ctx context.Context, account Account) (Account, error)
	ListAccounts(ctx context.Context, userID int64) ([]Account, error)
}

type PropFirmRepository interface {
	CreatePropFirm(ctx context.Context, firm PropFirm) (PropFirm, error)
	ListPropFirms(ctx context.Context) ([]PropFirm, error)
}

type PerformanceRepository interface {
	ListPerformance(ctx context.Context, userID, accountID int64) ([]PerformanceRecord, error)
}

// RiskPlanRepository is the persistence gateway for generated plans. Save
// replaces any prior plan for the user in one statement; concurrent
// regenerations resolve last-write-wins.
type RiskPlanRepository interface {
	Save(ctx context.Context, plan StoredRiskPlan) error
	LoadLatest(ctx context.Context, userID int64) (StoredRiskPlan, error)
}

// RuleSource resolves a prop firm rulebook. The second return reports
// whether the exact (firm, account type) pair was found; callers fall back
// to Default when it was not.
type RuleSource interface {
	Resolve(firmName, accountType string) (PropFirmRuleSet, bool)
	Default() PropFirmRuleSet
}

// QuoteProvider fetches market data from the upstream provider.
type QuoteProvider interface {
	FetchQuote(ctx context.Context, pair string) (Quote, error)
	FetchQuotes(ctx context.Context, pairs []string) (map[string]Quote, error)
	FetchCandles(ctx context.Context, query CandleQuery) ([]Candle, error)
}

// Clock abstracts time for components that expire cached data.
type Clock interface {
	Now() time.Time
}
