package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/mainhusharm/windsurf/internal/domain"
	"github.com/mainhusharm/windsurf/internal/infra/auth"
)

type memoryUserRepo struct {
	nextID int64
	users  map[int64]domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{nextID: 1, users: make(map[int64]domain.User)}
}

func (r *memoryUserRepo) CreateUser(_ context.Context, user domain.User) (domain.User, error) {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return user, nil
}

func (r *memoryUserRepo) GetUser(_ context.Context, userID int64) (domain.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return domain.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *memoryUserRepo) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, gorm.ErrRecordNotFound
}

func (r *memoryUserRepo) UpdateSession(_ context.Context, userID int64, sessionID string) error {
	user, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.ActiveSessionID = sessionID
	r.users[userID] = user
	return nil
}

func (r *memoryUserRepo) UpdatePlanType(_ context.Context, userID int64, plan domain.PlanType) error {
	user, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.PlanType = plan
	r.users[userID] = user
	return nil
}

func newAuthService(t *testing.T) (*AuthService, *memoryUserRepo) {
	t.Helper()

	repo := newMemoryUserRepo()
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	service, err := NewAuthService(repo, tokens)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return service, repo
}

func TestRegisterAndLogin(t *testing.T) {
	service, _ := newAuthService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, RegisterInput{
		Username: "trader",
		Email:    "Trader@Example.com",
		Password: "correct horse",
		PlanType: "premium",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "trader@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "correct horse" || user.PasswordHash == "" {
		t.Error("password stored without hashing")
	}

	result, err := service.Login(ctx, "trader@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a token")
	}
	if result.User.ActiveSessionID == "" {
		t.Error("expected a session id after login")
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "trader",
		Email:    "t@example.com",
		Password: "short",
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service, _ := newAuthService(t)
	ctx := context.Background()

	input := RegisterInput{Username: "trader", Email: "t@example.com", Password: "longenough", PlanType: "premium"}
	if _, err := service.Register(ctx, input); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	if _, err := service.Register(ctx, input); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginRefusesFreePlan(t *testing.T) {
	service, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, RegisterInput{
		Username: "trader",
		Email:    "free@example.com",
		Password: "longenough",
		PlanType: "free",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := service.Login(ctx, "free@example.com", "longenough"); !errors.Is(err, ErrPlanRequired) {
		t.Fatalf("err = %v, want ErrPlanRequired", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	service, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, RegisterInput{
		Username: "trader",
		Email:    "t@example.com",
		Password: "longenough",
		PlanType: "premium",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := service.Login(ctx, "t@example.com", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRotatesSession(t *testing.T) {
	service, repo := newAuthService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, RegisterInput{
		Username: "trader",
		Email:    "t@example.com",
		Password: "longenough",
		PlanType: "premium",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	first, err := service.Login(ctx, "t@example.com", "longenough")
	if err != nil {
		t.Fatalf("first Login: %v", err)
	}
	second, err := service.Login(ctx, "t@example.com", "longenough")
	if err != nil {
		t.Fatalf("second Login: %v", err)
	}

	if first.User.ActiveSessionID == second.User.ActiveSessionID {
		t.Fatal("session id not rotated between logins")
	}

	if err := service.ValidateSession(ctx, user.ID, first.User.ActiveSessionID); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("stale session err = %v, want ErrInvalidCredentials", err)
	}
	if err := service.ValidateSession(ctx, user.ID, second.User.ActiveSessionID); err != nil {
		t.Fatalf("current session rejected: %v", err)
	}

	stored := repo.users[user.ID]
	if stored.ActiveSessionID != second.User.ActiveSessionID {
		t.Fatal("repository session does not match latest login")
	}
}

func TestUpdatePlanRejectsUnknown(t *testing.T) {
	service, _ := newAuthService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, RegisterInput{
		Username: "trader",
		Email:    "t@example.com",
		Password: "longenough",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := service.UpdatePlan(ctx, user.ID, "platinum"); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	updated, err := service.UpdatePlan(ctx, user.ID, "enterprise")
	if err != nil {
		t.Fatalf("UpdatePlan: %v", err)
	}
	if updated.PlanType != domain.PlanEnterprise {
		t.Fatalf("plan = %q, want enterprise", updated.PlanType)
	}
}
