package ports

import (
	"context"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

// AuthService authenticates dashboard users against the seeded user list.
// Login returns a signed token carrying the user's identity and role.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, domain.User, error)
}
