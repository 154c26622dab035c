package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mainhusharm/windsurf/internal/domain"
)

type GormAccountRepository struct {
	db *gorm.DB
}

func NewGormAccountRepository(db *gorm.DB) (*GormAccountRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &GormAccountRepository{db: db}, nil
}

func (r *GormAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (domain.Account, error) {
	model := toAccountModel(account)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Account{}, err
	}
	return model.toDomain(), nil
}

func (r *GormAccountRepository) ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	var models []AccountModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, len(models))
	for i, model := range models {
		accounts[i] = model.toDomain()
	}
	return accounts, nil
}

type GormPropFirmRepository struct {
	db *gorm.DB
}

func NewGormPropFirmRepository(db *gorm.DB) (*GormPropFirmRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &GormPropFirmRepository{db: db}, nil
}

func (r *GormPropFirmRepository) CreatePropFirm(ctx context.Context, firm domain.PropFirm) (domain.PropFirm, error) {
	model := toPropFirmModel(firm)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.PropFirm{}, err
	}
	return model.toDomain(), nil
}

func (r *GormPropFirmRepository) ListPropFirms(ctx context.Context) ([]domain.PropFirm, error) {
	var models []PropFirmModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	firms := make([]domain.PropFirm, len(models))
	for i, model := range models {
		firms[i] = model.toDomain()
	}
	return firms, nil
}

type GormPerformanceRepository struct {
	db *gorm.DB
}

func NewGormPerformanceRepository(db *gorm.DB) (*GormPerformanceRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &GormPerformanceRepository{db: db}, nil
}

func (r *GormPerformanceRepository) ListPerformance(ctx context.Context, userID, accountID int64) ([]domain.PerformanceRecord, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if accountID != 0 {
		query = query.Where("account_id = ?", accountID)
	}

	var models []PerformanceModel
	if err := query.Order("date ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]domain.PerformanceRecord, len(models))
	for i, model := range models {
		records[i] = model.toDomain()
	}
	return records, nil
}
