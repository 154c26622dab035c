package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mainhusharm/windsurf/internal/domain"
	"github.com/mainhusharm/windsurf/internal/infra/auth"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	PlanType string
}

type AuthResult struct {
	Token string
	User  domain.User
}

// AuthService registers accounts, signs users in and rotates their
// session. Login is gated by plan: free accounts are refused until they
// upgrade.
type AuthService struct {
	users  domain.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users domain.UserRepository, tokens *auth.TokenManager) (*AuthService, error) {
	if users == nil {
		return nil, errors.New("user repository required")
	}
	if tokens == nil {
		return nil, errors.New("token manager required")
	}
	return &AuthService{users: users, tokens: tokens}, nil
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if username == "" {
		return domain.User{}, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return domain.User{}, fmt.Errorf("%w: valid email is required", ErrValidation)
	}
	if len(input.Password) < 8 {
		return domain.User{}, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	plan := normalizePlan(input.PlanType)

	user, err := s.users.CreateUser(ctx, domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		PlanType:     plan,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	if user.PlanType == domain.PlanFree {
		return AuthResult{}, ErrPlanRequired
	}

	sessionID := uuid.NewString()
	if err := s.users.UpdateSession(ctx, user.ID, sessionID); err != nil {
		return AuthResult{}, fmt.Errorf("rotate session: %w", err)
	}
	user.ActiveSessionID = sessionID

	token, err := s.tokens.Issue(user.ID, user.Username, string(user.PlanType), sessionID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	return AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// ValidateSession reports whether the session id inside a token still
// matches the user's active session. A login elsewhere invalidates it.
func (s *AuthService) ValidateSession(ctx context.Context, userID int64, sessionID string) error {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if user.ActiveSessionID != sessionID {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *AuthService) UpdatePlan(ctx context.Context, userID int64, planType string) (domain.User, error) {
	plan := normalizePlan(planType)
	if plan == domain.PlanFree && planType != string(domain.PlanFree) {
		return domain.User{}, fmt.Errorf("%w: unknown plan type %q", ErrValidation, planType)
	}

	if err := s.users.UpdatePlanType(ctx, userID, plan); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}

	return s.Profile(ctx, userID)
}

func normalizePlan(planType string) domain.PlanType {
	switch domain.PlanType(strings.ToLower(strings.TrimSpace(planType))) {
	case domain.PlanPremium:
		return domain.PlanPremium
	case domain.PlanEnterprise:
		return domain.PlanEnterprise
	default:
		return domain.PlanFree
	}
}
