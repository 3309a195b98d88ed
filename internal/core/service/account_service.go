package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
	"github.com/subscribely/admin-dashboard/internal/core/ports"
	"github.com/subscribely/admin-dashboard/internal/core/tableview"
)

// AccountService implements the Accounts page use cases.
type AccountService struct {
	repo   ports.AccountRepository
	table  *tableview.Table[domain.Account]
	logger zerolog.Logger
	now    func() time.Time
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{
		repo: repo,
		table: tableview.New("name",
			tableview.Column[domain.Account]{Name: "name", Value: func(a domain.Account) any { return a.Name }, Sortable: true},
			tableview.Column[domain.Account]{Name: "industry", Value: func(a domain.Account) any { return a.Industry }},
			tableview.Column[domain.Account]{Name: "subscription_plan", Value: func(a domain.Account) any { return a.SubscriptionPlan }},
			tableview.Column[domain.Account]{Name: "status", Value: func(a domain.Account) any { return string(a.Status) }},
			tableview.Column[domain.Account]{Name: "user_count", Value: func(a domain.Account) any { return a.UserCount }, Sortable: true},
		),
		logger: logger,
		now:    time.Now,
	}
}

func (s *AccountService) List(ctx context.Context, q ports.ListQuery) (tableview.Page[domain.Account], error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return tableview.Page[domain.Account]{}, err
	}
	return s.table.Apply(accounts, tableview.Query{
		Sort:   q.Sort,
		Dir:    tableview.ParseDirection(q.Dir),
		Filter: q.Filter,
		Page:   q.Page,
	}), nil
}

func (s *AccountService) Get(ctx context.Context, id string) (domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AccountService) Create(ctx context.Context, in ports.AccountInput) (domain.Account, error) {
	account := domain.Account{
		Name:             in.Name,
		Industry:         in.Industry,
		SubscriptionPlan: in.SubscriptionPlan,
		Status:           domain.AccountStatus(in.Status),
		UserCount:        in.UserCount,
		CreatedAt:        s.now().UTC().Format(dateLayout),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return domain.Account{}, err
	}

	s.logger.Info().Str("account_id", created.ID).Str("name", created.Name).Msg("account created")
	return created, nil
}

func (s *AccountService) Update(ctx context.Context, id string, in ports.AccountInput) (domain.Account, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	existing.Name = in.Name
	existing.Industry = in.Industry
	existing.SubscriptionPlan = in.SubscriptionPlan
	existing.Status = domain.AccountStatus(in.Status)
	existing.UserCount = in.UserCount

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.Account{}, err
	}

	s.logger.Info().Str("account_id", id).Msg("account updated")
	return updated, nil
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("account_id", id).Msg("account deleted")
	return nil
}
