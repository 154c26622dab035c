package usecase

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mainhusharm/windsurf/internal/domain"
)

// PlanService generates prop-firm risk plans from questionnaire submissions
// and persists at most one plan per user.
type PlanService struct {
	plans domain.RiskPlanRepository
	rules domain.RuleSource
	clock domain.Clock
}

func NewPlanService(plans domain.RiskPlanRepository, rules domain.RuleSource, clock domain.Clock) (*PlanService, error) {
	if rules == nil {
		return nil, errors.New("rule source required")
	}
	if clock == nil {
		return nil, errors.New("clock required")
	}
	return &PlanService{plans: plans, rules: rules, clock: clock}, nil
}

// GeneratePreview produces a plan without persisting it. Anonymous
// questionnaire submissions use this path.
func (s *PlanService) GeneratePreview(q domain.Questionnaire) domain.RiskPlan {
	rules, found := s.rules.Resolve(q.PropFirm, q.AccountType)
	plan := GeneratePlan(q, rules, !found)
	plan.GeneratedAt = s.clock.Now().UTC()
	return plan
}

// GenerateForUser produces a plan and stores it, replacing any earlier plan
// for the user.
func (s *PlanService) GenerateForUser(ctx context.Context, userID int64, q domain.Questionnaire) (domain.RiskPlan, error) {
	if s.plans == nil {
		return domain.RiskPlan{}, errors.New("risk plan repository required")
	}

	plan := s.GeneratePreview(q)

	stored := domain.StoredRiskPlan{
		UserID:    userID,
		Submitted: q,
		Plan:      plan,
		UpdatedAt: plan.GeneratedAt,
	}
	if err := s.plans.Save(ctx, stored); err != nil {
		return domain.RiskPlan{}, err
	}

	return plan, nil
}

func (s *PlanService) GetPlan(ctx context.Context, userID int64) (domain.StoredRiskPlan, error) {
	if s.plans == nil {
		return domain.StoredRiskPlan{}, errors.New("risk plan repository required")
	}

	stored, err := s.plans.LoadLatest(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.StoredRiskPlan{}, ErrNotFound
		}
		return domain.StoredRiskPlan{}, err
	}
	return stored, nil
}

// DashboardData is the combined payload the dashboard view loads in one
// request.
type DashboardData struct {
	User  domain.User           `json:"user"`
	Stats domain.DashboardStats `json:"stats"`
	Plan  *domain.RiskPlan      `json:"risk_plan,omitempty"`
	AsOf  time.Time             `json:"as_of"`
}

type DashboardService struct {
	users  domain.UserRepository
	trades *TradeService
	plans  *PlanService
	clock  domain.Clock
}

func NewDashboardService(users domain.UserRepository, trades *TradeService, plans *PlanService, clock domain.Clock) (*DashboardService, error) {
	if users == nil {
		return nil, errors.New("user repository required")
	}
	if trades == nil {
		return nil, errors.New("trade service required")
	}
	if plans == nil {
		return nil, errors.New("plan service required")
	}
	if clock == nil {
		return nil, errors.New("clock required")
	}
	return &DashboardService{users: users, trades: trades, plans: plans, clock: clock}, nil
}

func (s *DashboardService) Load(ctx context.Context, userID int64) (DashboardData, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DashboardData{}, ErrNotFound
		}
		return DashboardData{}, err
	}
	user.PasswordHash = ""

	stats, err := s.trades.DashboardStats(ctx, userID)
	if err != nil {
		return DashboardData{}, err
	}

	data := DashboardData{
		User:  user,
		Stats: stats,
		AsOf:  s.clock.Now().UTC(),
	}

	stored, err := s.plans.GetPlan(ctx, userID)
	switch {
	case err == nil:
		plan := stored.Plan
		data.Plan = &plan
	case errors.Is(err, ErrNotFound):
		// No plan yet is a valid dashboard state.
	default:
		return DashboardData{}, err
	}

	return data, nil
}
