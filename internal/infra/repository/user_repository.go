package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mainhusharm/windsurf/internal/domain"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) (*GormUserRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &GormUserRepository{db: db}, nil
}

func (r *GormUserRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	model := toUserModel(user)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.User{}, err
	}
	return model.toDomain(), nil
}

func (r *GormUserRepository) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&model).Error; err != nil {
		return domain.User{}, err
	}
	return model.toDomain(), nil
}

func (r *GormUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&model).Error; err != nil {
		return domain.User{}, err
	}
	return model.toDomain(), nil
}

func (r *GormUserRepository) UpdateSession(ctx context.Context, userID int64, sessionID string) error {
	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", userID).
		Update("active_session_id", stringPointerOrNil(sessionID))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormUserRepository) UpdatePlanType(ctx context.Context, userID int64, plan domain.PlanType) error {
	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", userID).
		Update("plan_type", string(plan))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
