package http

import (
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/mainhusharm/windsurf/internal/domain"
	"github.com/mainhusharm/windsurf/internal/usecase"
)

func toUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		PlanType: string(user.PlanType),
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PlanType string `json:"plan_type"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	PlanType string `json:"plan_type"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UpdatePlanRequest struct {
	PlanType string `json:"plan_type"`
}

// register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/auth/register [post]
func (r *Router) register(c *fiber.Ctx) error {
	if r.auth == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "auth service unavailable")
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	ctx, cancel := timeoutContext(c, 10*time.Second)
	defer cancel()

	user, err := r.auth.Register(ctx, usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		PlanType: req.PlanType,
	})
	if err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(toUserResponse(user))
}

// login godoc
// @Summary Sign in and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Router /api/auth/login [post]
func (r *Router) login(c *fiber.Ctx) error {
	if r.auth == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "auth service unavailable")
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	ctx, cancel := timeoutContext(c, 10*time.Second)
	defer cancel()

	result, err := r.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(LoginResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// profile godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string
// @Router /api/auth/profile [get]
func (r *Router) profile(c *fiber.Ctx) error {
	ctx, cancel := timeoutContext(c, 5*time.Second)
	defer cancel()

	user, err := r.auth.Profile(ctx, currentUserID(c))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(toUserResponse(user))
}

// updatePlan godoc
// @Summary Change the authenticated user's subscription plan
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdatePlanRequest true "New plan"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string
// @Router /api/user/plan [post]
func (r *Router) updatePlan(c *fiber.Ctx) error {
	var req UpdatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	ctx, cancel := timeoutContext(c, 10*time.Second)
	defer cancel()

	user, err := r.auth.UpdatePlan(ctx, currentUserID(c), req.PlanType)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(toUserResponse(user))
}
