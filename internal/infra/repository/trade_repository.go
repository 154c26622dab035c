package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mainhusharm/windsurf/internal/domain"
)

type GormTradeRepository struct {
	db *gorm.DB
}

func NewGormTradeRepository(db *gorm.DB) (*GormTradeRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &GormTradeRepository{db: db}, nil
}

func (r *GormTradeRepository) AddTrade(ctx context.Context, trade domain.Trade) (domain.Trade, error) {
	model := toTradeModel(trade)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Trade{}, err
	}
	return model.toDomain(), nil
}

func (r *GormTradeRepository) ListTrades(ctx context.Context, userID int64) ([]domain.Trade, error) {
	var models []TradeModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	trades := make([]domain.Trade, len(models))
	for i, model := range models {
		trades[i] = model.toDomain()
	}
	return trades, nil
}

// DeleteTradeBySignal removes the caller's trade only; another user's trade
// with the same signal id is left untouched and reported as not found.
func (r *GormTradeRepository) DeleteTradeBySignal(ctx context.Context, userID, signalID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND signal_id = ?", userID, signalID).
		Delete(&TradeModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
