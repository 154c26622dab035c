package domain

import "time"

type PlanType string

const (
	PlanFree       PlanType = "free"
	PlanPremium    PlanType = "premium"
	PlanEnterprise PlanType = "enterprise"
)

type User struct {
	ID              int64
	Username        string
	Email           string
	PasswordHash    string
	ActiveSessionID string
	PlanType        PlanType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Account struct {
	ID          int64
	UserID      int64
	PropFirmID  *int64
	AccountName string
	AccountType string
	Balance     float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PropFirm struct {
	ID      int64
	Name    string
	Website string
}

// PerformanceRecord is a per-day rollup of a user's trading on one account.
type PerformanceRecord struct {
	ID            int64
	UserID        int64
	AccountID     int64
	Date          time.Time
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	SkippedTrades int
	WinRate       float64
	TotalPnL      float64
}
