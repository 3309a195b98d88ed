package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/subscribely/admin-dashboard/internal/core/ports"
)

// DashboardHandler serves the landing-page stat cards.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

type dashboardResponse struct {
	Cards []ports.StatCard `json:"cards"`
}

// Stats handles GET /v1/dashboard. Admins get system-wide totals; regular
// users get a summary of their own subscription.
//
// @Summary      Dashboard stat cards for the current user
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	cards, err := h.service.Stats(c.Request().Context(), userID, isAdmin(role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{Cards: cards})
}
