package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mainhusharm/windsurf/internal/domain"
)

type AccountService struct {
	accounts    domain.AccountRepository
	propFirms   domain.PropFirmRepository
	performance domain.PerformanceRepository
}

func NewAccountService(accounts domain.AccountRepository, propFirms domain.PropFirmRepository, performance domain.PerformanceRepository) (*AccountService, error) {
	if accounts == nil {
		return nil, errors.New("account repository required")
	}
	if propFirms == nil {
		return nil, errors.New("prop firm repository required")
	}
	if performance == nil {
		return nil, errors.New("performance repository required")
	}
	return &AccountService{
		accounts:    accounts,
		propFirms:   propFirms,
		performance: performance,
	}, nil
}

func (s *AccountService) CreateAccount(ctx context.Context, account domain.Account) (domain.Account, error) {
	if account.UserID == 0 {
		return domain.Account{}, fmt.Errorf("%w: user id required", ErrValidation)
	}
	if strings.TrimSpace(account.AccountName) == "" {
		return domain.Account{}, fmt.Errorf("%w: account name is required", ErrValidation)
	}
	if account.Balance < 0 {
		return domain.Account{}, fmt.Errorf("%w: balance cannot be negative", ErrValidation)
	}
	return s.accounts.CreateAccount(ctx, account)
}

func (s *AccountService) ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	return s.accounts.ListAccounts(ctx, userID)
}

func (s *AccountService) CreatePropFirm(ctx context.Context, firm domain.PropFirm) (domain.PropFirm, error) {
	if strings.TrimSpace(firm.Name) == "" {
		return domain.PropFirm{}, fmt.Errorf("%w: firm name is required", ErrValidation)
	}
	return s.propFirms.CreatePropFirm(ctx, firm)
}

func (s *AccountService) ListPropFirms(ctx context.Context) ([]domain.PropFirm, error) {
	return s.propFirms.ListPropFirms(ctx)
}

func (s *AccountService) ListPerformance(ctx context.Context, userID, accountID int64) ([]domain.PerformanceRecord, error) {
	return s.performance.ListPerformance(ctx, userID, accountID)
}
