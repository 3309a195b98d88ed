package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
	"github.com/subscribely/admin-dashboard/internal/core/ports"
)

type stubDashboardService struct {
	statsFn func(ctx context.Context, userID string, isAdmin bool) ([]ports.StatCard, error)
}

func (s *stubDashboardService) Stats(ctx context.Context, userID string, isAdmin bool) ([]ports.StatCard, error) {
	return s.statsFn(ctx, userID, isAdmin)
}

func TestDashboardHandler_Stats_AdminFlag(t *testing.T) {
	stub := &stubDashboardService{
		statsFn: func(ctx context.Context, userID string, isAdmin bool) ([]ports.StatCard, error) {
			if userID != "user_1" || !isAdmin {
				t.Fatalf("unexpected args: %s admin=%v", userID, isAdmin)
			}
			return []ports.StatCard{
				{Title: "Total Users", Value: "5"},
				{Title: "Active Subscriptions", Value: "310"},
				{Title: "Accounts Managed", Value: "4"},
			}, nil
		},
	}
	h := NewDashboardHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/dashboard", "")
	withClaims(c, "user_1", domain.RoleAdmin)

	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp dashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(resp.Cards))
	}
}

func TestDashboardHandler_Stats_RegularUser(t *testing.T) {
	stub := &stubDashboardService{
		statsFn: func(ctx context.Context, userID string, isAdmin bool) ([]ports.StatCard, error) {
			if isAdmin {
				t.Fatal("regular users must not get the admin rollup")
			}
			return []ports.StatCard{{Title: "My Subscription", Value: "Professional"}}, nil
		},
	}
	h := NewDashboardHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/dashboard", "")
	withClaims(c, "user_2", domain.RoleUser)

	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDashboardHandler_Stats_Unauthenticated(t *testing.T) {
	h := NewDashboardHandler(&stubDashboardService{})

	c, _ := newTestContext(http.MethodGet, "/v1/dashboard", "")

	err := h.Stats(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
