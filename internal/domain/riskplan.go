package domain

import "time"

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

type NewsTradingPolicy string

const (
	NewsTradingAllowed    NewsTradingPolicy = "allowed"
	NewsTradingRestricted NewsTradingPolicy = "restricted"
	NewsTradingForbidden  NewsTradingPolicy = "forbidden"
)

type WeekendHoldingPolicy string

const (
	WeekendHoldingAllowed         WeekendHoldingPolicy = "allowed"
	WeekendHoldingAllowedWithFees WeekendHoldingPolicy = "allowed_with_fees"
	WeekendHoldingNotAllowed      WeekendHoldingPolicy = "not_allowed"
)

// Questionnaire is the raw onboarding submission a risk plan is generated
// from. Fields arrive untrusted; the generator coerces rather than rejects.
type Questionnaire struct {
	TradesPerDay   string   `json:"trades_per_day"`
	TradingSession string   `json:"trading_session"`
	CryptoAssets   []string `json:"crypto_assets"`
	ForexAssets    []string `json:"forex_assets"`
	HasAccount     string   `json:"has_account"`
	AccountEquity  any      `json:"account_equity"`
	AccountSize    any      `json:"account_size"`
	RiskPercentage any      `json:"risk_percentage"`
	PropFirm       string   `json:"prop_firm"`
	AccountType    string   `json:"account_type"`
	Experience     string   `json:"trading_experience"`
}

// PropFirmRuleSet is the static rulebook for one (firm, account type) pair.
type PropFirmRuleSet struct {
	FirmName           string               `json:"firm_name"`
	AccountType        string               `json:"account_type"`
	DailyLossLimit     float64              `json:"daily_loss_limit"`
	MaxDrawdown        float64              `json:"max_drawdown"`
	ProfitTargetPhase1 float64              `json:"profit_target_phase1"`
	ProfitTargetPhase2 float64              `json:"profit_target_phase2"`
	MinTradingDays     int                  `json:"min_trading_days"`
	ConsistencyRule    float64              `json:"consistency_rule"`
	Leverage           map[string]int       `json:"leverage"`
	NewsTrading        NewsTradingPolicy    `json:"news_trading"`
	WeekendHolding     WeekendHoldingPolicy `json:"weekend_holding"`
}

type AssetClass string

const (
	AssetClassCrypto AssetClass = "crypto"
	AssetClassForex  AssetClass = "forex"
)

type TradeAllocation struct {
	Label           string     `json:"trade"`
	Asset           string     `json:"asset"`
	AssetClass      AssetClass `json:"asset_class"`
	RiskAmount      float64    `json:"risk_amount"`
	ProfitTarget    float64    `json:"profit_target"`
	RiskRewardRatio float64    `json:"risk_reward_ratio"`
}

type ComplianceStatus string

const (
	ComplianceCompliant       ComplianceStatus = "COMPLIANT"
	ComplianceNeedsAdjustment ComplianceStatus = "NEEDS_ADJUSTMENT"
)

// RiskPlan is the canonical generated plan document. Regeneration replaces
// the whole plan; it is never patched field by field.
type RiskPlan struct {
	UserProfile    PlanUserProfile   `json:"user_profile"`
	PropFirm       PlanFirmAnalysis  `json:"prop_firm_analysis"`
	RiskParameters PlanRiskParams    `json:"risk_parameters"`
	Projections    PlanProjections   `json:"projections"`
	Trades         []TradeAllocation `json:"trades"`
	Compliance     PlanCompliance    `json:"compliance"`
	GeneratedAt    time.Time         `json:"generated_at,omitempty"`
}

type PlanUserProfile struct {
	AccountEquity  float64    `json:"account_equity"`
	AccountSize    float64    `json:"account_size"`
	WorkingCapital float64    `json:"working_capital"`
	TradesPerDay   string     `json:"trades_per_day"`
	TradingSession string     `json:"trading_session"`
	CryptoAssets   []string   `json:"crypto_assets"`
	ForexAssets    []string   `json:"forex_assets"`
	HasAccount     bool       `json:"has_account"`
	Experience     Experience `json:"experience"`
}

type PlanFirmAnalysis struct {
	FirmName        string          `json:"firm_name"`
	AccountType     string          `json:"account_type"`
	Rules           PropFirmRuleSet `json:"rules"`
	UsedDefaultRule bool            `json:"used_default_rules"`
}

// PlanRiskParams carries the headline risk numbers. RiskPerTrade is the
// per-trade base before asset volatility multipliers; the amounts in the
// trade allocations carry the multiplied (and, when the daily cap forces
// it, scaled-down) figures and can sit below this base.
type PlanRiskParams struct {
	MaxDailyRisk    float64 `json:"max_daily_risk"`
	MaxDailyRiskPct float64 `json:"max_daily_risk_pct"`
	RiskPerTrade    float64 `json:"risk_per_trade"`
	RiskPerTradePct float64 `json:"risk_per_trade_pct"`
	MinRiskReward   float64 `json:"min_risk_reward"`
	TotalDailyRisk  float64 `json:"total_daily_risk"`
	SafetyMargin    float64 `json:"safety_margin"`
	MaxDrawdown     float64 `json:"max_drawdown"`
}

type PlanProjections struct {
	WinRateAssumption    float64 `json:"win_rate_assumption"`
	DailyProfitPotential float64 `json:"daily_profit_potential"`
	DailyRiskExposure    float64 `json:"daily_risk_exposure"`
	ExpectedDailyPnL     float64 `json:"expected_daily_pnl"`
	ProfitTargetPhase1   float64 `json:"profit_target_phase1"`
	ProfitTargetPhase2   float64 `json:"profit_target_phase2"`
	DaysToPassPhase1     int     `json:"days_to_pass_phase1"`
	DaysToPassPhase2     int     `json:"days_to_pass_phase2"`
}

type PlanCompliance struct {
	DailyRiskCompliant bool             `json:"daily_risk_compliant"`
	OverallStatus      ComplianceStatus `json:"overall_status"`
}

// StoredRiskPlan is the persisted at-most-one-per-user plan row: the
// questionnaire that produced it plus the generated document.
type StoredRiskPlan struct {
	UserID    int64
	Submitted Questionnaire
	Plan      RiskPlan
	CreatedAt time.Time
	UpdatedAt time.Time
}
