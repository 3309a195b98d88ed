// Package export renders report data into downloadable XLSX workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

const (
	metricsSheet = "Monthly Metrics"
	churnSheet   = "Churned Users"
)

// ExcelExporter writes the monthly series and churn list into a two-sheet
// workbook.
type ExcelExporter struct{}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (e *ExcelExporter) Workbook(metrics []domain.SubscriptionMetric, churned []domain.ChurnedUser) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// Rename the default sheet instead of leaving an empty "Sheet1" behind.
	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, metricsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := e.writeMetrics(f, metrics); err != nil {
		return nil, err
	}
	if err := e.writeChurn(f, churned); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *ExcelExporter) writeMetrics(f *excelize.File, metrics []domain.SubscriptionMetric) error {
	header := []interface{}{"Month", "New Subscriptions", "Canceled Subscriptions", "Total Active", "Revenue"}
	if err := f.SetSheetRow(metricsSheet, "A1", &header); err != nil {
		return fmt.Errorf("metrics header: %w", err)
	}

	for i, m := range metrics {
		row := []interface{}{m.Month, m.NewSubscriptions, m.CanceledSubscriptions, m.TotalActive, m.Revenue}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(metricsSheet, cell, &row); err != nil {
			return fmt.Errorf("metrics row %d: %w", i+2, err)
		}
	}
	return nil
}

func (e *ExcelExporter) writeChurn(f *excelize.File, churned []domain.ChurnedUser) error {
	if _, err := f.NewSheet(churnSheet); err != nil {
		return fmt.Errorf("churn sheet: %w", err)
	}

	header := []interface{}{"Name", "Email", "Account", "Plan", "Churn Date", "Reason", "Last Login", "Lost Revenue"}
	if err := f.SetSheetRow(churnSheet, "A1", &header); err != nil {
		return fmt.Errorf("churn header: %w", err)
	}

	for i, u := range churned {
		row := []interface{}{u.Name, u.Email, u.AccountName, u.SubscriptionPlan, u.ChurnDate, u.ChurnReason, u.LastLoginDate, u.TotalRevenue}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(churnSheet, cell, &row); err != nil {
			return fmt.Errorf("churn row %d: %w", i+2, err)
		}
	}
	return nil
}
