package ports

import (
	"context"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
	"github.com/subscribely/admin-dashboard/internal/core/tableview"
)

// UserInput carries the editable fields of a user record, the dialog form
// payload. Identity fields (id, created_at) are never supplied by callers:
// they are synthesized on create and preserved on edit.
type UserInput struct {
	Name        string
	Email       string
	Role        string
	AccountID   string
	AccountName string
	Status      string
}

// UserService defines use-case operations for the Users page.
type UserService interface {
	List(ctx context.Context, q ListQuery) (tableview.Page[domain.User], error)
	Get(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, in UserInput) (domain.User, error)
	Update(ctx context.Context, id string, in UserInput) (domain.User, error)
	Delete(ctx context.Context, id string) error
}
