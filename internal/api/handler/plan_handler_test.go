package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
	"github.com/subscribely/admin-dashboard/internal/core/ports"
	"github.com/subscribely/admin-dashboard/internal/core/tableview"
)

type stubPlanService struct {
	listFn      func(ctx context.Context, q ports.ListQuery) (tableview.Page[domain.SubscriptionPlan], error)
	summariesFn func(ctx context.Context) ([]ports.PlanSummary, error)
}

func (s *stubPlanService) List(ctx context.Context, q ports.ListQuery) (tableview.Page[domain.SubscriptionPlan], error) {
	return s.listFn(ctx, q)
}
func (s *stubPlanService) Get(ctx context.Context, id string) (domain.SubscriptionPlan, error) {
	return domain.SubscriptionPlan{}, domain.ErrPlanNotFound
}
func (s *stubPlanService) Create(ctx context.Context, in ports.PlanInput) (domain.SubscriptionPlan, error) {
	return domain.SubscriptionPlan{}, nil
}
func (s *stubPlanService) Update(ctx context.Context, id string, in ports.PlanInput) (domain.SubscriptionPlan, error) {
	return domain.SubscriptionPlan{}, nil
}
func (s *stubPlanService) Delete(ctx context.Context, id string) error { return nil }
func (s *stubPlanService) ActiveSummaries(ctx context.Context) ([]ports.PlanSummary, error) {
	return s.summariesFn(ctx)
}

func withClaims(c echo.Context, userID, role string) {
	c.Set("user_id", userID)
	c.Set("role", role)
}

func TestPlanHandler_List_AdminGetsManagementTable(t *testing.T) {
	stub := &stubPlanService{
		listFn: func(ctx context.Context, q ports.ListQuery) (tableview.Page[domain.SubscriptionPlan], error) {
			return tableview.Page[domain.SubscriptionPlan]{
				Items: []domain.SubscriptionPlan{{ID: "plan_1", Name: "Starter"}},
				Total: 4, Page: 1, PageSize: 10, TotalPages: 1,
			}, nil
		},
		summariesFn: func(ctx context.Context) ([]ports.PlanSummary, error) {
			t.Fatal("admins must get the management table, not summaries")
			return nil, nil
		},
	}
	h := NewPlanHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/plans", "")
	withClaims(c, "user_1", domain.RoleAdmin)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["items"]; !ok {
		t.Fatalf("expected table envelope, got %+v", resp)
	}
}

func TestPlanHandler_List_RegularUserGetsActiveSummaries(t *testing.T) {
	stub := &stubPlanService{
		listFn: func(ctx context.Context, q ports.ListQuery) (tableview.Page[domain.SubscriptionPlan], error) {
			t.Fatal("regular users must never see the management table")
			return tableview.Page[domain.SubscriptionPlan]{}, nil
		},
		summariesFn: func(ctx context.Context) ([]ports.PlanSummary, error) {
			return []ports.PlanSummary{
				{Name: "Professional", Price: 79.99, BillingCycle: "monthly", IsPopular: true},
			}, nil
		},
	}
	h := NewPlanHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/plans", "")
	withClaims(c, "user_2", domain.RoleUser)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	plans, ok := resp["plans"].([]any)
	if !ok || len(plans) != 1 {
		t.Fatalf("expected plans list, got %+v", resp)
	}
}

func TestPlanHandler_List_MissingClaims(t *testing.T) {
	h := NewPlanHandler(&stubPlanService{})

	c, _ := newTestContext(http.MethodGet, "/v1/plans", "")

	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
