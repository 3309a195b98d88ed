package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
	"github.com/subscribely/admin-dashboard/internal/core/ports"
)

type stubAccountRepo struct {
	accounts []domain.Account
	nextID   int
}

func newStubAccountRepo(seed ...domain.Account) *stubAccountRepo {
	return &stubAccountRepo{accounts: seed, nextID: len(seed) + 1}
}

func (r *stubAccountRepo) List(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (domain.Account, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Account{}, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	account.ID = fmt.Sprintf("acc_%d", r.nextID)
	r.nextID++
	r.accounts = append(r.accounts, account)
	return account, nil
}

func (r *stubAccountRepo) Update(_ context.Context, account domain.Account) (domain.Account, error) {
	for i, a := range r.accounts {
		if a.ID == account.ID {
			r.accounts[i] = account
			return account, nil
		}
	}
	return domain.Account{}, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return nil
		}
	}
	return nil
}

func seedAccounts() []domain.Account {
	return []domain.Account{
		{ID: "acc_1", Name: "Acme Inc", Industry: "Technology", SubscriptionPlan: "Enterprise", Status: domain.AccountActive, UserCount: 25, CreatedAt: "2023-01-01"},
		{ID: "acc_2", Name: "Globex Corp", Industry: "Manufacturing", SubscriptionPlan: "Pro", Status: domain.AccountActive, UserCount: 12, CreatedAt: "2023-02-15"},
		{ID: "acc_3", Name: "Initech", Industry: "Finance", SubscriptionPlan: "Basic", Status: domain.AccountTrial, UserCount: 5, CreatedAt: "2023-03-10"},
	}
}

func TestAccountService_Create_AppendsWithFreshIdentity(t *testing.T) {
	repo := newStubAccountRepo(seedAccounts()...)
	svc := NewAccountService(repo, discardLogger)
	svc.now = fixedClock("2024-07-15")

	created, err := svc.Create(context.Background(), ports.AccountInput{
		Name: "Umbrella Corp", Industry: "Healthcare", SubscriptionPlan: "Enterprise",
		Status: string(domain.AccountInactive), UserCount: 0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID != "acc_4" || created.CreatedAt != "2024-07-15" {
		t.Errorf("identity fields wrong: %+v", created)
	}
}

func TestAccountService_Update_ReplacesByID(t *testing.T) {
	repo := newStubAccountRepo(seedAccounts()...)
	svc := NewAccountService(repo, discardLogger)

	updated, err := svc.Update(context.Background(), "acc_3", ports.AccountInput{
		Name: "Initech", Industry: "Finance", SubscriptionPlan: "Pro",
		Status: string(domain.AccountActive), UserCount: 8,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Status != domain.AccountActive || updated.UserCount != 8 {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.CreatedAt != "2023-03-10" {
		t.Errorf("createdAt must be preserved, got %q", updated.CreatedAt)
	}
}

func TestAccountService_Get_Unknown(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(seedAccounts()...), discardLogger)

	if _, err := svc.Get(context.Background(), "acc_99"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountService_List_SortsByUserCountDescending(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(seedAccounts()...), discardLogger)

	page, err := svc.List(context.Background(), ports.ListQuery{Sort: "user_count", Dir: "desc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.Items[0].Name != "Acme Inc" || page.Items[2].Name != "Initech" {
		t.Errorf("numeric sort wrong: %+v", page.Items)
	}
}
