package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

// PlanRepository is the in-memory subscription plan catalog.
type PlanRepository struct {
	mu     sync.RWMutex
	plans  []domain.SubscriptionPlan
	nextID int
}

func NewPlanRepository(seed []domain.SubscriptionPlan) *PlanRepository {
	plans := make([]domain.SubscriptionPlan, len(seed))
	copy(plans, seed)
	return &PlanRepository{plans: plans, nextID: len(seed) + 1}
}

func (r *PlanRepository) List(_ context.Context) ([]domain.SubscriptionPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SubscriptionPlan, len(r.plans))
	copy(out, r.plans)
	return out, nil
}

func (r *PlanRepository) FindByID(_ context.Context, id string) (domain.SubscriptionPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.SubscriptionPlan{}, domain.ErrPlanNotFound
}

func (r *PlanRepository) Create(_ context.Context, plan domain.SubscriptionPlan) (domain.SubscriptionPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	plan.ID = fmt.Sprintf("plan_%d", r.nextID)
	r.nextID++
	r.plans = append(r.plans, plan)
	return plan, nil
}

func (r *PlanRepository) Update(_ context.Context, plan domain.SubscriptionPlan) (domain.SubscriptionPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.plans {
		if p.ID == plan.ID {
			r.plans[i] = plan
			return plan, nil
		}
	}
	return domain.SubscriptionPlan{}, domain.ErrPlanNotFound
}

func (r *PlanRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.plans {
		if p.ID == id {
			r.plans = append(r.plans[:i], r.plans[i+1:]...)
			return nil
		}
	}
	return nil
}
