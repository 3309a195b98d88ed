// Package memory holds the in-memory record stores backing every dashboard
// collection. All data lives for the process lifetime only: a restart resets
// each store to its seed fixtures. Mutating operations guard the backing
// slice with a mutex because the HTTP server handles requests concurrently.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

// UserRepository is the in-memory user collection.
type UserRepository struct {
	mu     sync.RWMutex
	users  []domain.User
	nextID int
}

// NewUserRepository seeds the collection. Ids are handed out by a counter
// that never decreases, so deleting and re-adding records cannot produce a
// duplicate id.
func NewUserRepository(seed []domain.User) *UserRepository {
	users := make([]domain.User, len(seed))
	copy(users, seed)
	return &UserRepository{users: users, nextID: len(seed) + 1}
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *UserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = fmt.Sprintf("user_%d", r.nextID)
	r.nextID++
	r.users = append(r.users, user)
	return user, nil
}

func (r *UserRepository) Update(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	// Unknown ids are a no-op, matching the source UI's silent filter.
	return nil
}
