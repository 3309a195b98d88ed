package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/subscribely/admin-dashboard/internal/core/ports"
)

// HealthHandler handles GET /health, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthStoresHandler handles GET /health/ready, the readiness probe.
// The service is ready once every in-memory store holds its seed data.
type HealthStoresHandler struct {
	users    ports.UserRepository
	accounts ports.AccountRepository
	plans    ports.PlanRepository
}

func NewHealthStoresHandler(users ports.UserRepository, accounts ports.AccountRepository, plans ports.PlanRepository) *HealthStoresHandler {
	return &HealthStoresHandler{users: users, accounts: accounts, plans: plans}
}

type storeStatus struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
	Error   string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status string                 `json:"status"`
	Stores map[string]storeStatus `json:"stores"`
}

func (h *HealthStoresHandler) Readiness(c echo.Context) error {
	ctx := c.Request().Context()

	stores := make(map[string]storeStatus)
	healthy := true

	check := func(name string, count int, err error) {
		if err != nil {
			stores[name] = storeStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			return
		}
		if count == 0 {
			stores[name] = storeStatus{Status: "empty"}
			healthy = false
			return
		}
		stores[name] = storeStatus{Status: "ok", Records: count}
	}

	users, err := h.users.List(ctx)
	check("users", len(users), err)

	accounts, err := h.accounts.List(ctx)
	check("accounts", len(accounts), err)

	plans, err := h.plans.List(ctx)
	check("plans", len(plans), err)

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status: status,
		Stores: stores,
	})
}
