package http

import (
	"strings"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/mainhusharm/windsurf/internal/domain"
)

// validateQuestionnaire rejects submissions missing the answers the
// generator cannot default sensibly. Remaining fields coerce downstream.
func validateQuestionnaire(q domain.Questionnaire) error {
	var missing []string
	if strings.TrimSpace(q.TradesPerDay) == "" {
		missing = append(missing, "trades_per_day")
	}
	if strings.TrimSpace(q.TradingSession) == "" {
		missing = append(missing, "trading_session")
	}
	if strings.TrimSpace(q.PropFirm) == "" {
		missing = append(missing, "prop_firm")
	}
	if strings.TrimSpace(q.AccountType) == "" {
		missing = append(missing, "account_type")
	}
	if q.AccountSize == nil {
		missing = append(missing, "account_size")
	}

	if len(missing) > 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "missing required fields: "+strings.Join(missing, ", "))
	}
	return nil
}

// generatePlanPreview godoc
// @Summary Generate a risk plan preview from a questionnaire
// @Tags risk-plan
// @Accept json
// @Produce json
// @Param request body domain.Questionnaire true "Questionnaire answers"
// @Success 200 {object} domain.RiskPlan
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/generate-plan [post]
func (r *Router) generatePlanPreview(c *fiber.Ctx) error {
	if r.plans == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "plan service unavailable")
	}

	var q domain.Questionnaire
	if err := c.BodyParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validateQuestionnaire(q); err != nil {
		return err
	}

	return c.JSON(r.plans.GeneratePreview(q))
}

// generateRiskPlan godoc
// @Summary Generate and store the authenticated user's risk plan
// @Tags risk-plan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.Questionnaire true "Questionnaire answers"
// @Success 200 {object} domain.RiskPlan
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/risk-plan [post]
func (r *Router) generateRiskPlan(c *fiber.Ctx) error {
	if r.plans == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "plan service unavailable")
	}

	var q domain.Questionnaire
	if err := c.BodyParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validateQuestionnaire(q); err != nil {
		return err
	}

	ctx, cancel := timeoutContext(c, 10*time.Second)
	defer cancel()

	plan, err := r.plans.GenerateForUser(ctx, currentUserID(c), q)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(plan)
}

// getRiskPlan godoc
// @Summary Fetch the authenticated user's stored risk plan
// @Tags risk-plan
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.RiskPlan
// @Failure 404 {object} map[string]string
// @Router /api/risk-plan [get]
func (r *Router) getRiskPlan(c *fiber.Ctx) error {
	if r.plans == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "plan service unavailable")
	}

	ctx, cancel := timeoutContext(c, 10*time.Second)
	defer cancel()

	stored, err := r.plans.GetPlan(ctx, currentUserID(c))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(stored.Plan)
}
