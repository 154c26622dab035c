package http

import (
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/mainhusharm/windsurf/internal/domain"
)

type AccountRequest struct {
	PropFirmID  *int64  `json:"prop_firm_id"`
	AccountName string  `json:"account_name"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
}

type PropFirmRequest struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

// createAccount godoc
// @Summary Create a trading account
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AccountRequest true "Account payload"
// @Success 201 {object} domain.Account
// @Failure 400 {object} map[string]string
// @Router /api/accounts [post]
func (r *Router) createAccount(c *fiber.Ctx) error {
	if r.accounts == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "account service unavailable")
	}

	var req AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	ctx, cancel := timeoutContext(c, 10*time.Second)
	defer cancel()

	account, err := r.accounts.CreateAccount(ctx, domain.Account{
		UserID:      currentUserID(c),
		PropFirmID:  req.PropFirmID,
		AccountName: req.AccountName,
		AccountType: req.AccountType,
		Balance:     req.Balance,
	})
	if err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

// listAccounts godoc
// @Summary List the authenticated user's accounts
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Account
// @Router /api/accounts [get]
func (r *Router) listAccounts(c *fiber.Ctx) error {
	if r.accounts == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "account service unavailable")
	}

	ctx, cancel := timeoutContext(c, 10*time.Second)
	defer cancel()

	accounts, err := r.accounts.ListAccounts(ctx, currentUserID(c))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(accounts)
}

// createPropFirm godoc
// @Summary Register a prop firm
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PropFirmRequest true "Prop firm payload"
// @Success 201 {object} domain.PropFirm
// @Failure 400 {object} map[string]string
// @Router /api/propfirms [post]
func (r *Router) createPropFirm(c *fiber.Ctx) error {
	if r.accounts == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "account service unavailable")
	}

	var req PropFirmRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	ctx, cancel := timeoutContext(c, 10*time.Second)
	defer cancel()

	firm, err := r.accounts.CreatePropFirm(ctx, domain.PropFirm{
		Name:    req.Name,
		Website: req.Website,
	})
	if err != nil {
		return serviceError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(firm)
}

// listPropFirms godoc
// @Summary List known prop firms
// @Tags accounts
// @Produce json
// @Success 200 {array} domain.PropFirm
// @Router /api/propfirms [get]
func (r *Router) listPropFirms(c *fiber.Ctx) error {
	if r.accounts == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "account service unavailable")
	}

	ctx, cancel := timeoutContext(c, 10*time.Second)
	defer cancel()

	firms, err := r.accounts.ListPropFirms(ctx)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(firms)
}

// listPerformance godoc
// @Summary List daily performance rollups for an account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param account_id query int false "Account ID filter"
// @Success 200 {array} domain.PerformanceRecord
// @Router /api/performance [get]
func (r *Router) listPerformance(c *fiber.Ctx) error {
	if r.accounts == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "account service unavailable")
	}

	var accountID int64
	if v := c.Query("account_id"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid account id")
		}
		accountID = parsed
	}

	ctx, cancel := timeoutContext(c, 10*time.Second)
	defer cancel()

	records, err := r.accounts.ListPerformance(ctx, currentUserID(c), accountID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(records)
}
