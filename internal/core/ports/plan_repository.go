package ports

import (
	"context"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

// PlanRepository defines the in-memory collection operations for
// subscription plans.
type PlanRepository interface {
	List(ctx context.Context) ([]domain.SubscriptionPlan, error)
	FindByID(ctx context.Context, id string) (domain.SubscriptionPlan, error)
	Create(ctx context.Context, plan domain.SubscriptionPlan) (domain.SubscriptionPlan, error)
	Update(ctx context.Context, plan domain.SubscriptionPlan) (domain.SubscriptionPlan, error)
	Delete(ctx context.Context, id string) error
}
