package http

import (
	"strings"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/mainhusharm/windsurf/internal/infra/auth"
)

const (
	localsUserID    = "user_id"
	localsUsername  = "username"
	localsPlanType  = "plan_type"
	localsSessionID = "session_id"
)

// tokenParser verifies bearer tokens. Satisfied by auth.TokenManager.
type tokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// requireAuth validates the bearer token and checks that its session id is
// still the user's active one. Tokens from earlier logins stop working as
// soon as the user signs in again.
func (r *Router) requireAuth(c *fiber.Ctx) error {
	if r.tokens == nil || r.auth == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "auth unavailable")
	}

	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "authorization header required")
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" || token == header {
		return fiber.NewError(fiber.StatusUnauthorized, "bearer token required")
	}

	claims, err := r.tokens.Parse(token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
	}

	ctx, cancel := timeoutContext(c, 5*time.Second)
	defer cancel()

	if err := r.auth.ValidateSession(ctx, claims.UserID, claims.SessionID); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "session expired")
	}

	c.Locals(localsUserID, claims.UserID)
	c.Locals(localsUsername, claims.Username)
	c.Locals(localsPlanType, claims.PlanType)
	c.Locals(localsSessionID, claims.SessionID)

	return c.Next()
}

func currentUserID(c *fiber.Ctx) int64 {
	if id, ok := c.Locals(localsUserID).(int64); ok {
		return id
	}
	return 0
}
