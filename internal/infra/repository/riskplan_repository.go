package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mainhusharm/windsurf/internal/domain"
)

type GormRiskPlanRepository struct {
	db *gorm.DB
}

func NewGormRiskPlanRepository(db *gorm.DB) (*GormRiskPlanRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &GormRiskPlanRepository{db: db}, nil
}

// Save replaces the user's plan in a single upsert so concurrent
// regenerations resolve last-write-wins without partial rows.
func (r *GormRiskPlanRepository) Save(ctx context.Context, stored domain.StoredRiskPlan) error {
	model, err := toRiskPlanModel(stored)
	if err != nil {
		return fmt.Errorf("encode risk plan: %w", err)
	}

	assignments := clause.Assignments(map[string]interface{}{
		"prop_firm":       gorm.Expr("EXCLUDED.prop_firm"),
		"account_type":    gorm.Expr("EXCLUDED.account_type"),
		"trades_per_day":  gorm.Expr("EXCLUDED.trades_per_day"),
		"experience":      gorm.Expr("EXCLUDED.experience"),
		"max_daily_risk":  gorm.Expr("EXCLUDED.max_daily_risk"),
		"min_risk_reward": gorm.Expr("EXCLUDED.min_risk_reward"),
		"questionnaire":   gorm.Expr("EXCLUDED.questionnaire"),
		"plan":            gorm.Expr("EXCLUDED.plan"),
		"updated_at":      gorm.Expr("CURRENT_TIMESTAMP"),
	})

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: assignments,
		}).
		Create(&model).Error
}

func (r *GormRiskPlanRepository) LoadLatest(ctx context.Context, userID int64) (domain.StoredRiskPlan, error) {
	var model RiskPlanModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		return domain.StoredRiskPlan{}, err
	}

	stored, err := model.toDomain()
	if err != nil {
		return domain.StoredRiskPlan{}, fmt.Errorf("decode risk plan: %w", err)
	}
	return stored, nil
}
