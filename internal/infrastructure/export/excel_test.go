package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

func TestExcelExporter_Workbook(t *testing.T) {
	exporter := NewExcelExporter()

	wb, err := exporter.Workbook(
		[]domain.SubscriptionMetric{
			{Month: "2024-01", NewSubscriptions: 45, CanceledSubscriptions: 8, TotalActive: 234, Revenue: 12450},
			{Month: "2024-02", NewSubscriptions: 52, CanceledSubscriptions: 12, TotalActive: 274, Revenue: 14680},
		},
		[]domain.ChurnedUser{
			{Name: "John Smith", Email: "john.smith@example.com", AccountName: "Tech Solutions Inc", SubscriptionPlan: "Pro", ChurnDate: "2024-12-15", ChurnReason: "Price too high", LastLoginDate: "2024-12-10", TotalRevenue: 359.88},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(wb) == 0 {
		t.Fatal("workbook is empty")
	}

	f, err := excelize.OpenReader(bytes.NewReader(wb))
	if err != nil {
		t.Fatalf("workbook does not parse: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Monthly Metrics" || sheets[1] != "Churned Users" {
		t.Errorf("sheets = %v", sheets)
	}

	month, err := f.GetCellValue("Monthly Metrics", "A2")
	if err != nil || month != "2024-01" {
		t.Errorf("metrics A2 = %q (err %v), want 2024-01", month, err)
	}
	reason, err := f.GetCellValue("Churned Users", "F2")
	if err != nil || reason != "Price too high" {
		t.Errorf("churn F2 = %q (err %v), want Price too high", reason, err)
	}
}

func TestExcelExporter_EmptyInput(t *testing.T) {
	wb, err := NewExcelExporter().Workbook(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(wb) == 0 {
		t.Fatal("expected a workbook with headers only")
	}
}
