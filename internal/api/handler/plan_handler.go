package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/subscribely/admin-dashboard/internal/api/metrics"
	"github.com/subscribely/admin-dashboard/internal/core/ports"
)

// PlanHandler handles HTTP requests for the shared Subscriptions page.
// Admins see the management table and can mutate plans; regular users get a
// read-only view of the active plans.
type PlanHandler struct {
	service ports.PlanService
}

func NewPlanHandler(service ports.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// List handles GET /v1/plans. The response shape depends on the caller's
// role: the full management table for admins, active plan summaries for
// everyone else.
//
// @Summary      List subscription plans
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        sort    query  string  false  "Sort column (name|price), admin only"
// @Param        dir     query  string  false  "Sort direction (asc|desc), admin only"
// @Param        filter  query  string  false  "Substring filter on name, admin only"
// @Param        page    query  int     false  "1-based page number, admin only"
// @Success      200  {object}  tableview.Page[domain.SubscriptionPlan]
// @Failure      401  {object}  map[string]string
// @Router       /v1/plans [get]
func (h *PlanHandler) List(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if !isAdmin(role) {
		summaries, err := h.service.ActiveSummaries(c.Request().Context())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]any{"plans": summaries})
	}

	page, err := h.service.List(c.Request().Context(), bindListQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /v1/plans/:id.
//
// @Summary      Get a plan by id
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Plan id (e.g. plan_1)"
// @Success      200  {object}  domain.SubscriptionPlan
// @Failure      404  {object}  map[string]string
// @Router       /v1/plans/{id} [get]
func (h *PlanHandler) Get(c echo.Context) error {
	plan, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// Create handles POST /v1/plans.
//
// @Summary      Create a plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  planRequest  true  "Plan fields"
// @Success      201  {object}  domain.SubscriptionPlan
// @Failure      422  {object}  map[string]string
// @Router       /v1/plans [post]
func (h *PlanHandler) Create(c echo.Context) error {
	var req planRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	plan, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.RecordMutations.WithLabelValues("plan", "create").Inc()
	return c.JSON(http.StatusCreated, plan)
}

// Update handles PUT /v1/plans/:id.
//
// @Summary      Update a plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string       true  "Plan id"
// @Param        body  body  planRequest  true  "Plan fields"
// @Success      200  {object}  domain.SubscriptionPlan
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/plans/{id} [put]
func (h *PlanHandler) Update(c echo.Context) error {
	var req planRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	plan, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.RecordMutations.WithLabelValues("plan", "update").Inc()
	return c.JSON(http.StatusOK, plan)
}

// Delete handles DELETE /v1/plans/:id.
//
// @Summary      Delete a plan
// @Tags         plans
// @Security     BearerAuth
// @Param        id  path  string  true  "Plan id"
// @Success      204  "deleted"
// @Router       /v1/plans/{id} [delete]
func (h *PlanHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.RecordMutations.WithLabelValues("plan", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
