package memory

import (
	"context"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

// ReportRepository serves the fixed analytics series. The data is immutable,
// so reads need no locking.
type ReportRepository struct {
	metrics []domain.SubscriptionMetric
	churned []domain.ChurnedUser
}

func NewReportRepository(metrics []domain.SubscriptionMetric, churned []domain.ChurnedUser) *ReportRepository {
	return &ReportRepository{metrics: metrics, churned: churned}
}

func (r *ReportRepository) MonthlyMetrics(_ context.Context) ([]domain.SubscriptionMetric, error) {
	out := make([]domain.SubscriptionMetric, len(r.metrics))
	copy(out, r.metrics)
	return out, nil
}

func (r *ReportRepository) ChurnedUsers(_ context.Context) ([]domain.ChurnedUser, error) {
	out := make([]domain.ChurnedUser, len(r.churned))
	copy(out, r.churned)
	return out, nil
}
