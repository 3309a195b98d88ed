package ports

import (
	"context"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
	"github.com/subscribely/admin-dashboard/internal/core/tableview"
)

// AccountInput carries the editable fields of an account record.
type AccountInput struct {
	Name             string
	Industry         string
	SubscriptionPlan string
	Status           string
	UserCount        int
}

// AccountService defines use-case operations for the Accounts page.
type AccountService interface {
	List(ctx context.Context, q ListQuery) (tableview.Page[domain.Account], error)
	Get(ctx context.Context, id string) (domain.Account, error)
	Create(ctx context.Context, in AccountInput) (domain.Account, error)
	Update(ctx context.Context, id string, in AccountInput) (domain.Account, error)
	Delete(ctx context.Context, id string) error
}
