package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mainhusharm/windsurf/internal/infra/repository"
)

func ApplyMigrations(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&repository.UserModel{},
		&repository.TradeModel{},
		&repository.AccountModel{},
		&repository.PropFirmModel{},
		&repository.PerformanceModel{},
		&repository.RiskPlanModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}
