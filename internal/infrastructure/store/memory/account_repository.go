package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

// AccountRepository is the in-memory account collection.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []domain.Account
	nextID   int
}

func NewAccountRepository(seed []domain.Account) *AccountRepository {
	accounts := make([]domain.Account, len(seed))
	copy(accounts, seed)
	return &AccountRepository{accounts: accounts, nextID: len(seed) + 1}
}

func (r *AccountRepository) List(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *AccountRepository) FindByID(_ context.Context, id string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Account{}, domain.ErrAccountNotFound
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account.ID = fmt.Sprintf("acc_%d", r.nextID)
	r.nextID++
	r.accounts = append(r.accounts, account)
	return account, nil
}

func (r *AccountRepository) Update(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.accounts {
		if a.ID == account.ID {
			r.accounts[i] = account
			return account, nil
		}
	}
	return domain.Account{}, domain.ErrAccountNotFound
}

func (r *AccountRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return nil
		}
	}
	return nil
}
