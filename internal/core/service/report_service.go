package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
	"github.com/subscribely/admin-dashboard/internal/core/ports"
	"github.com/subscribely/admin-dashboard/internal/core/report"
	"github.com/subscribely/admin-dashboard/internal/core/tableview"
)

// ReportService assembles the Reports view from the fixed series: the
// aggregates are recomputed on every request, never cached.
type ReportService struct {
	repo     ports.ReportRepository
	exporter ports.ReportExporter
	table    *tableview.Table[domain.ChurnedUser]
	logger   zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, exporter ports.ReportExporter, logger zerolog.Logger) *ReportService {
	return &ReportService{
		repo:     repo,
		exporter: exporter,
		table: tableview.New("name",
			tableview.Column[domain.ChurnedUser]{Name: "name", Value: func(u domain.ChurnedUser) any { return u.Name }, Sortable: true},
			tableview.Column[domain.ChurnedUser]{Name: "account_name", Value: func(u domain.ChurnedUser) any { return u.AccountName }},
			tableview.Column[domain.ChurnedUser]{Name: "subscription_plan", Value: func(u domain.ChurnedUser) any { return u.SubscriptionPlan }},
			tableview.Column[domain.ChurnedUser]{Name: "churn_date", Value: func(u domain.ChurnedUser) any { return u.ChurnDate }, Sortable: true},
			tableview.Column[domain.ChurnedUser]{Name: "churn_reason", Value: func(u domain.ChurnedUser) any { return u.ChurnReason }},
			tableview.Column[domain.ChurnedUser]{Name: "total_revenue", Value: func(u domain.ChurnedUser) any { return u.TotalRevenue }, Sortable: true},
		),
		logger: logger,
	}
}

func (s *ReportService) Revenue(ctx context.Context) (*ports.RevenueReport, error) {
	months, err := s.repo.MonthlyMetrics(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.RevenueReport{
		Trend:     report.RevenueTrend(months),
		Quarterly: report.QuarterlyRollup(months),
		Yearly:    report.YearlyRollup(months),
		Monthly:   months,
	}, nil
}

func (s *ReportService) Churn(ctx context.Context, q ports.ListQuery) (*ports.ChurnReport, error) {
	churned, err := s.repo.ChurnedUsers(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.ChurnReport{
		Summary: report.ChurnRollup(churned),
		Events: s.table.Apply(churned, tableview.Query{
			Sort:   q.Sort,
			Dir:    tableview.ParseDirection(q.Dir),
			Filter: q.Filter,
			Page:   q.Page,
		}),
	}, nil
}

func (s *ReportService) ExportWorkbook(ctx context.Context) ([]byte, error) {
	months, err := s.repo.MonthlyMetrics(ctx)
	if err != nil {
		return nil, err
	}
	churned, err := s.repo.ChurnedUsers(ctx)
	if err != nil {
		return nil, err
	}

	wb, err := s.exporter.Workbook(months, churned)
	if err != nil {
		s.logger.Error().Err(err).Msg("report export failed")
		return nil, err
	}

	s.logger.Info().Int("bytes", len(wb)).Msg("report workbook exported")
	return wb, nil
}
