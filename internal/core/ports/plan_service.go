package ports

import (
	"context"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
	"github.com/subscribely/admin-dashboard/internal/core/tableview"
)

// PlanInput carries the editable fields of a subscription plan.
type PlanInput struct {
	Name         string
	Description  string
	Price        float64
	BillingCycle string
	Features     []string
	IsPopular    bool
	Status       string
}

// PlanSummary is the read-only view of an active plan shown to regular users
// on the shared subscriptions page.
type PlanSummary struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	BillingCycle string   `json:"billing_cycle"`
	Features     []string `json:"features"`
	IsPopular    bool     `json:"is_popular"`
}

// PlanService defines use-case operations for the Subscriptions page.
// List/Create/Update/Delete back the admin management table; ActiveSummaries
// backs the read-only view rendered for regular users.
type PlanService interface {
	List(ctx context.Context, q ListQuery) (tableview.Page[domain.SubscriptionPlan], error)
	Get(ctx context.Context, id string) (domain.SubscriptionPlan, error)
	Create(ctx context.Context, in PlanInput) (domain.SubscriptionPlan, error)
	Update(ctx context.Context, id string, in PlanInput) (domain.SubscriptionPlan, error)
	Delete(ctx context.Context, id string) error
	ActiveSummaries(ctx context.Context) ([]PlanSummary, error)
}
