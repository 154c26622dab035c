package repository

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/mainhusharm/windsurf/internal/domain"
)

type UserModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Username        string    `gorm:"column:username;not null"`
	Email           string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash    string    `gorm:"column:password_hash"`
	ActiveSessionID *string   `gorm:"column:active_session_id;uniqueIndex"`
	PlanType        string    `gorm:"column:plan_type;not null;default:free"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func toUserModel(user domain.User) UserModel {
	return UserModel{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		PasswordHash:    user.PasswordHash,
		ActiveSessionID: stringPointerOrNil(user.ActiveSessionID),
		PlanType:        string(user.PlanType),
	}
}

func (m UserModel) toDomain() domain.User {
	return domain.User{
		ID:              m.ID,
		Username:        m.Username,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		ActiveSessionID: stringValueOrEmpty(m.ActiveSessionID),
		PlanType:        domain.PlanType(m.PlanType),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

type TradeModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	SignalID      *int64    `gorm:"column:signal_id;uniqueIndex"`
	UserID        int64     `gorm:"column:user_id;index;not null"`
	AccountID     *int64    `gorm:"column:account_id"`
	Date          time.Time `gorm:"column:date;not null"`
	Asset         string    `gorm:"column:asset;not null"`
	Direction     string    `gorm:"column:direction;not null"`
	EntryPrice    float64   `gorm:"column:entry_price;not null"`
	ExitPrice     float64   `gorm:"column:exit_price"`
	StopLoss      float64   `gorm:"column:stop_loss"`
	TakeProfit    float64   `gorm:"column:take_profit"`
	LotSize       float64   `gorm:"column:lot_size"`
	TradeDuration *string   `gorm:"column:trade_duration"`
	Notes         *string   `gorm:"column:notes"`
	Outcome       string    `gorm:"column:outcome;not null"`
	Status        string    `gorm:"column:status;not null;default:active"`
	StrategyTag   *string   `gorm:"column:strategy_tag"`
	ScreenshotURL *string   `gorm:"column:screenshot_url"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (TradeModel) TableName() string {
	return "trades"
}

func toTradeModel(trade domain.Trade) TradeModel {
	return TradeModel{
		ID:            trade.ID,
		SignalID:      trade.SignalID,
		UserID:        trade.UserID,
		AccountID:     trade.AccountID,
		Date:          trade.Date,
		Asset:         trade.Asset,
		Direction:     string(trade.Direction),
		EntryPrice:    trade.EntryPrice,
		ExitPrice:     trade.ExitPrice,
		StopLoss:      trade.StopLoss,
		TakeProfit:    trade.TakeProfit,
		LotSize:       trade.LotSize,
		TradeDuration: stringPointerOrNil(trade.TradeDuration),
		Notes:         stringPointerOrNil(trade.Notes),
		Outcome:       string(trade.Outcome),
		Status:        string(trade.Status),
		StrategyTag:   stringPointerOrNil(trade.StrategyTag),
		ScreenshotURL: stringPointerOrNil(trade.ScreenshotURL),
	}
}

func (m TradeModel) toDomain() domain.Trade {
	return domain.Trade{
		ID:            m.ID,
		SignalID:      m.SignalID,
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		Date:          m.Date,
		Asset:         m.Asset,
		Direction:     domain.TradeDirection(m.Direction),
		EntryPrice:    m.EntryPrice,
		ExitPrice:     m.ExitPrice,
		StopLoss:      m.StopLoss,
		TakeProfit:    m.TakeProfit,
		LotSize:       m.LotSize,
		TradeDuration: stringValueOrEmpty(m.TradeDuration),
		Notes:         stringValueOrEmpty(m.Notes),
		Outcome:       domain.TradeOutcome(m.Outcome),
		Status:        domain.TradeStatus(m.Status),
		StrategyTag:   stringValueOrEmpty(m.StrategyTag),
		ScreenshotURL: stringValueOrEmpty(m.ScreenshotURL),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type AccountModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id;index;not null"`
	PropFirmID  *int64    `gorm:"column:prop_firm_id"`
	AccountName string    `gorm:"column:account_name;not null"`
	AccountType string    `gorm:"column:account_type;not null"`
	Balance     float64   `gorm:"column:balance;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

func toAccountModel(account domain.Account) AccountModel {
	return AccountModel{
		ID:          account.ID,
		UserID:      account.UserID,
		PropFirmID:  account.PropFirmID,
		AccountName: account.AccountName,
		AccountType: account.AccountType,
		Balance:     account.Balance,
	}
}

func (m AccountModel) toDomain() domain.Account {
	return domain.Account{
		ID:          m.ID,
		UserID:      m.UserID,
		PropFirmID:  m.PropFirmID,
		AccountName: m.AccountName,
		AccountType: m.AccountType,
		Balance:     m.Balance,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type PropFirmModel struct {
	ID      int64   `gorm:"column:id;primaryKey"`
	Name    string  `gorm:"column:name;uniqueIndex;not null"`
	Website *string `gorm:"column:website"`
}

func (PropFirmModel) TableName() string {
	return "prop_firms"
}

func toPropFirmModel(firm domain.PropFirm) PropFirmModel {
	return PropFirmModel{
		ID:      firm.ID,
		Name:    firm.Name,
		Website: stringPointerOrNil(firm.Website),
	}
}

func (m PropFirmModel) toDomain() domain.PropFirm {
	return domain.PropFirm{
		ID:      m.ID,
		Name:    m.Name,
		Website: stringValueOrEmpty(m.Website),
	}
}

type PerformanceModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;index;not null"`
	AccountID     int64     `gorm:"column:account_id;index;not null"`
	Date          time.Time `gorm:"column:date;not null"`
	TotalTrades   int       `gorm:"column:total_trades;not null;default:0"`
	WinningTrades int       `gorm:"column:winning_trades;not null;default:0"`
	LosingTrades  int       `gorm:"column:losing_trades;not null;default:0"`
	SkippedTrades int       `gorm:"column:skipped_trades;not null;default:0"`
	WinRate       float64   `gorm:"column:win_rate;not null;default:0"`
	TotalPnL      float64   `gorm:"column:total_pnl;not null;default:0"`
}

func (PerformanceModel) TableName() string {
	return "performance"
}

func (m PerformanceModel) toDomain() domain.PerformanceRecord {
	return domain.PerformanceRecord{
		ID:            m.ID,
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		Date:          m.Date,
		TotalTrades:   m.TotalTrades,
		WinningTrades: m.WinningTrades,
		LosingTrades:  m.LosingTrades,
		SkippedTrades: m.SkippedTrades,
		WinRate:       m.WinRate,
		TotalPnL:      m.TotalPnL,
	}
}

type RiskPlanModel struct {
	ID            int64          `gorm:"column:id;primaryKey"`
	UserID        int64          `gorm:"column:user_id;uniqueIndex;not null"`
	PropFirm      *string        `gorm:"column:prop_firm"`
	AccountType   *string        `gorm:"column:account_type"`
	TradesPerDay  *string        `gorm:"column:trades_per_day"`
	Experience    *string        `gorm:"column:experience"`
	MaxDailyRisk  float64        `gorm:"column:max_daily_risk"`
	MinRiskReward float64        `gorm:"column:min_risk_reward"`
	Questionnaire datatypes.JSON `gorm:"column:questionnaire;type:jsonb"`
	Plan          datatypes.JSON `gorm:"column:plan;type:jsonb"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}

func (RiskPlanModel) TableName() string {
	return "risk_plans"
}

func toRiskPlanModel(stored domain.StoredRiskPlan) (RiskPlanModel, error) {
	submitted, err := json.Marshal(stored.Submitted)
	if err != nil {
		return RiskPlanModel{}, err
	}
	plan, err := json.Marshal(stored.Plan)
	if err != nil {
		return RiskPlanModel{}, err
	}

	return RiskPlanModel{
		UserID:        stored.UserID,
		PropFirm:      stringPointerOrNil(stored.Plan.PropFirm.FirmName),
		AccountType:   stringPointerOrNil(stored.Plan.PropFirm.AccountType),
		TradesPerDay:  stringPointerOrNil(stored.Plan.UserProfile.TradesPerDay),
		Experience:    stringPointerOrNil(string(stored.Plan.UserProfile.Experience)),
		MaxDailyRisk:  stored.Plan.RiskParameters.MaxDailyRisk,
		MinRiskReward: stored.Plan.RiskParameters.MinRiskReward,
		Questionnaire: datatypes.JSON(submitted),
		Plan:          datatypes.JSON(plan),
	}, nil
}

func (m RiskPlanModel) toDomain() (domain.StoredRiskPlan, error) {
	stored := domain.StoredRiskPlan{
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if len(m.Questionnaire) > 0 {
		if err := json.Unmarshal(m.Questionnaire, &stored.Submitted); err != nil {
			return domain.StoredRiskPlan{}, err
		}
	}
	if len(m.Plan) > 0 {
		if err := json.Unmarshal(m.Plan, &stored.Plan); err != nil {
			return domain.StoredRiskPlan{}, err
		}
	}

	return stored, nil
}

func stringPointerOrNil(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func stringValueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
