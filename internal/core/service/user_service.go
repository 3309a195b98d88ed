package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
	"github.com/subscribely/admin-dashboard/internal/core/ports"
	"github.com/subscribely/admin-dashboard/internal/core/tableview"
)

const dateLayout = "2006-01-02"

// UserService implements the Users page use cases: table views plus the
// dialog's save semantics (synthesize identity on create, preserve on edit).
type UserService struct {
	repo   ports.UserRepository
	table  *tableview.Table[domain.User]
	logger zerolog.Logger
	now    func() time.Time
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		repo: repo,
		table: tableview.New("name",
			tableview.Column[domain.User]{Name: "name", Value: func(u domain.User) any { return u.Name }, Sortable: true},
			tableview.Column[domain.User]{Name: "email", Value: func(u domain.User) any { return u.Email }},
			tableview.Column[domain.User]{Name: "account_name", Value: func(u domain.User) any { return u.AccountName }},
			tableview.Column[domain.User]{Name: "role", Value: func(u domain.User) any { return u.Role }},
			tableview.Column[domain.User]{Name: "status", Value: func(u domain.User) any { return string(u.Status) }},
		),
		logger: logger,
		now:    time.Now,
	}
}

func (s *UserService) List(ctx context.Context, q ports.ListQuery) (tableview.Page[domain.User], error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return tableview.Page[domain.User]{}, err
	}
	return s.table.Apply(users, tableview.Query{
		Sort:   q.Sort,
		Dir:    tableview.ParseDirection(q.Dir),
		Filter: q.Filter,
		Page:   q.Page,
	}), nil
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in ports.UserInput) (domain.User, error) {
	user := domain.User{
		Name:        in.Name,
		Email:       in.Email,
		Role:        in.Role,
		AccountID:   in.AccountID,
		AccountName: in.AccountName,
		Status:      domain.UserStatus(in.Status),
		CreatedAt:   s.now().UTC().Format(dateLayout),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UserInput) (domain.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	existing.Name = in.Name
	existing.Email = in.Email
	existing.Role = in.Role
	existing.AccountID = in.AccountID
	existing.AccountName = in.AccountName
	existing.Status = domain.UserStatus(in.Status)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.User{}, err
	}

	s.logger.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
