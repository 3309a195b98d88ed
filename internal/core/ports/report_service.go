package ports

import (
	"context"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
	"github.com/subscribely/admin-dashboard/internal/core/report"
	"github.com/subscribely/admin-dashboard/internal/core/tableview"
)

// RevenueReport is the Reports view's revenue section: the trailing trend
// window plus the quarterly and yearly rollups.
type RevenueReport struct {
	Trend     []report.TrendPoint         `json:"trend"`
	Quarterly []report.QuarterSummary     `json:"quarterly"`
	Yearly    report.YearSummary          `json:"yearly"`
	Monthly   []domain.SubscriptionMetric `json:"monthly"`
}

// ChurnReport is the churn section: the rollup summary plus the churned-user
// list rendered through the table engine.
type ChurnReport struct {
	Summary report.ChurnSummary                `json:"summary"`
	Events  tableview.Page[domain.ChurnedUser] `json:"events"`
}

// ReportService derives the Reports view from the fixed series.
type ReportService interface {
	Revenue(ctx context.Context) (*RevenueReport, error)
	Churn(ctx context.Context, q ListQuery) (*ChurnReport, error)
	// ExportWorkbook renders the full report as an XLSX workbook.
	ExportWorkbook(ctx context.Context) ([]byte, error)
}

// ReportExporter renders report data into a downloadable workbook.
type ReportExporter interface {
	Workbook(metrics []domain.SubscriptionMetric, churned []domain.ChurnedUser) ([]byte, error)
}
