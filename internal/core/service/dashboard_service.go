package service

import (
	"context"
	"fmt"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
	"github.com/subscribely/admin-dashboard/internal/core/ports"
)

// DashboardService computes the landing-page stat cards from the live
// collections rather than hardcoded values.
type DashboardService struct {
	users    ports.UserRepository
	accounts ports.AccountRepository
	reports  ports.ReportRepository
}

func NewDashboardService(users ports.UserRepository, accounts ports.AccountRepository, reports ports.ReportRepository) *DashboardService {
	return &DashboardService{users: users, accounts: accounts, reports: reports}
}

// Stats returns system-wide totals for admins and the viewer's own
// subscription card for regular users.
func (s *DashboardService) Stats(ctx context.Context, userID string, isAdmin bool) ([]ports.StatCard, error) {
	if isAdmin {
		return s.adminStats(ctx)
	}
	return s.userStats(ctx, userID)
}

func (s *DashboardService) adminStats(ctx context.Context) ([]ports.StatCard, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	months, err := s.reports.MonthlyMetrics(ctx)
	if err != nil {
		return nil, err
	}

	activeSubscriptions := 0
	if len(months) > 0 {
		activeSubscriptions = months[len(months)-1].TotalActive
	}

	return []ports.StatCard{
		{
			Title:       "Total Users",
			Value:       fmt.Sprintf("%d", len(users)),
			Description: "Active users in the system",
		},
		{
			Title:       "Active Subscriptions",
			Value:       fmt.Sprintf("%d", activeSubscriptions),
			Description: "Currently active subscriptions",
		},
		{
			Title:       "Accounts Managed",
			Value:       fmt.Sprintf("%d", len(accounts)),
			Description: "Total accounts under management",
		},
	}, nil
}

func (s *DashboardService) userStats(ctx context.Context, userID string) ([]ports.StatCard, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan := "No Plan"
	status := "Inactive"
	if user.AccountID != "" {
		account, err := s.accounts.FindByID(ctx, user.AccountID)
		if err == nil {
			plan = account.SubscriptionPlan
			status = string(account.Status)
		} else if err != domain.ErrAccountNotFound {
			return nil, err
		}
	}

	return []ports.StatCard{
		{
			Title:       "My Subscription",
			Value:       plan,
			Description: "Status: " + status,
		},
	}, nil
}
