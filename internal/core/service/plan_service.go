package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
	"github.com/subscribely/admin-dashboard/internal/core/ports"
	"github.com/subscribely/admin-dashboard/internal/core/tableview"
)

// PlanService implements the Subscriptions page use cases. Admins manage the
// full catalog; regular users only see summaries of active plans.
type PlanService struct {
	repo   ports.PlanRepository
	table  *tableview.Table[domain.SubscriptionPlan]
	logger zerolog.Logger
	now    func() time.Time
}

func NewPlanService(repo ports.PlanRepository, logger zerolog.Logger) *PlanService {
	return &PlanService{
		repo: repo,
		table: tableview.New("name",
			tableview.Column[domain.SubscriptionPlan]{Name: "name", Value: func(p domain.SubscriptionPlan) any { return p.Name }, Sortable: true},
			tableview.Column[domain.SubscriptionPlan]{Name: "price", Value: func(p domain.SubscriptionPlan) any { return p.Price }, Sortable: true},
			tableview.Column[domain.SubscriptionPlan]{Name: "billing_cycle", Value: func(p domain.SubscriptionPlan) any { return string(p.BillingCycle) }},
			tableview.Column[domain.SubscriptionPlan]{Name: "status", Value: func(p domain.SubscriptionPlan) any { return string(p.Status) }},
		),
		logger: logger,
		now:    time.Now,
	}
}

func (s *PlanService) List(ctx context.Context, q ports.ListQuery) (tableview.Page[domain.SubscriptionPlan], error) {
	plans, err := s.repo.List(ctx)
	if err != nil {
		return tableview.Page[domain.SubscriptionPlan]{}, err
	}
	return s.table.Apply(plans, tableview.Query{
		Sort:   q.Sort,
		Dir:    tableview.ParseDirection(q.Dir),
		Filter: q.Filter,
		Page:   q.Page,
	}), nil
}

func (s *PlanService) Get(ctx context.Context, id string) (domain.SubscriptionPlan, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PlanService) Create(ctx context.Context, in ports.PlanInput) (domain.SubscriptionPlan, error) {
	plan := domain.SubscriptionPlan{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		BillingCycle: domain.BillingCycle(in.BillingCycle),
		Features:     in.Features,
		IsPopular:    in.IsPopular,
		Status:       domain.PlanStatus(in.Status),
		CreatedAt:    s.now().UTC().Format(dateLayout),
	}

	created, err := s.repo.Create(ctx, plan)
	if err != nil {
		return domain.SubscriptionPlan{}, err
	}

	s.logger.Info().Str("plan_id", created.ID).Str("name", created.Name).Msg("plan created")
	return created, nil
}

func (s *PlanService) Update(ctx context.Context, id string, in ports.PlanInput) (domain.SubscriptionPlan, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.SubscriptionPlan{}, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Price = in.Price
	existing.BillingCycle = domain.BillingCycle(in.BillingCycle)
	existing.Features = in.Features
	existing.IsPopular = in.IsPopular
	existing.Status = domain.PlanStatus(in.Status)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.SubscriptionPlan{}, err
	}

	s.logger.Info().Str("plan_id", id).Msg("plan updated")
	return updated, nil
}

func (s *PlanService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("plan_id", id).Msg("plan deleted")
	return nil
}

// ActiveSummaries returns read-only cards for every active plan, in catalog
// order. Draft and archived plans are not shown to regular users.
func (s *PlanService) ActiveSummaries(ctx context.Context) ([]ports.PlanSummary, error) {
	plans, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.PlanSummary, 0, len(plans))
	for _, p := range plans {
		if p.Status != domain.PlanActive {
			continue
		}
		summaries = append(summaries, ports.PlanSummary{
			Name:         p.Name,
			Description:  p.Description,
			Price:        p.Price,
			BillingCycle: string(p.BillingCycle),
			Features:     p.Features,
			IsPopular:    p.IsPopular,
		})
	}
	return summaries, nil
}
