package ports

import (
	"context"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

// AccountRepository defines the in-memory collection operations for accounts.
type AccountRepository interface {
	List(ctx context.Context) ([]domain.Account, error)
	FindByID(ctx context.Context, id string) (domain.Account, error)
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	Update(ctx context.Context, account domain.Account) (domain.Account, error)
	Delete(ctx context.Context, id string) error
}
