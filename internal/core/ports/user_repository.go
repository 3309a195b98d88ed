package ports

import (
	"context"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

// UserRepository defines the in-memory collection operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	// Create assigns a fresh id and stores the record.
	Create(ctx context.Context, user domain.User) (domain.User, error)
	// Update replaces the record with the matching id.
	Update(ctx context.Context, user domain.User) (domain.User, error)
	// Delete removes the record with the given id; deleting an unknown id is
	// a no-op.
	Delete(ctx context.Context, id string) error
}
