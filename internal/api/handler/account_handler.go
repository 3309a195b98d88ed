package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/subscribely/admin-dashboard/internal/api/metrics"
	"github.com/subscribely/admin-dashboard/internal/core/ports"
)

// AccountHandler handles HTTP requests for the Accounts management page.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// List handles GET /v1/accounts.
//
// @Summary      List accounts as a sorted, filtered, paginated table
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        sort    query  string  false  "Sort column (name|user_count)"
// @Param        dir     query  string  false  "Sort direction (asc|desc)"
// @Param        filter  query  string  false  "Substring filter on name"
// @Param        page    query  int     false  "1-based page number"
// @Success      200  {object}  tableview.Page[domain.Account]
// @Failure      401  {object}  map[string]string
// @Router       /v1/accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), bindListQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /v1/accounts/:id.
//
// @Summary      Get an account by id
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Account id (e.g. acc_2)"
// @Success      200  {object}  domain.Account
// @Failure      404  {object}  map[string]string
// @Router       /v1/accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	account, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Create handles POST /v1/accounts.
//
// @Summary      Create an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  accountRequest  true  "Account fields"
// @Success      201  {object}  domain.Account
// @Failure      422  {object}  map[string]string
// @Router       /v1/accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.RecordMutations.WithLabelValues("account", "create").Inc()
	return c.JSON(http.StatusCreated, account)
}

// Update handles PUT /v1/accounts/:id.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string          true  "Account id"
// @Param        body  body  accountRequest  true  "Account fields"
// @Success      200  {object}  domain.Account
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/accounts/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.RecordMutations.WithLabelValues("account", "update").Inc()
	return c.JSON(http.StatusOK, account)
}

// Delete handles DELETE /v1/accounts/:id.
//
// @Summary      Delete an account
// @Tags         accounts
// @Security     BearerAuth
// @Param        id  path  string  true  "Account id"
// @Success      204  "deleted"
// @Router       /v1/accounts/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.RecordMutations.WithLabelValues("account", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
