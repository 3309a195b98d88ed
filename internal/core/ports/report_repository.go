package ports

import (
	"context"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

// ReportRepository exposes the fixed analytics series the Reports view
// aggregates over. The underlying data never mutates.
type ReportRepository interface {
	MonthlyMetrics(ctx context.Context) ([]domain.SubscriptionMetric, error)
	ChurnedUsers(ctx context.Context) ([]domain.ChurnedUser, error)
}
