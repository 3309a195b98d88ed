package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/subscribely/admin-dashboard/internal/api/metrics"
	"github.com/subscribely/admin-dashboard/internal/core/ports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles HTTP requests for the Reports view.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Revenue handles GET /v1/reports/revenue.
//
// @Summary      Revenue report: trend window, quarterly and yearly rollups
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.RevenueReport
// @Failure      401  {object}  map[string]string
// @Router       /v1/reports/revenue [get]
func (h *ReportHandler) Revenue(c echo.Context) error {
	rep, err := h.service.Revenue(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.ReportRequests.WithLabelValues("revenue").Inc()
	return c.JSON(http.StatusOK, rep)
}

// Churn handles GET /v1/reports/churn.
//
// @Summary      Churn report: rollup summary plus churned-user table
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        sort    query  string  false  "Sort column (name|churn_date|total_revenue)"
// @Param        dir     query  string  false  "Sort direction (asc|desc)"
// @Param        filter  query  string  false  "Substring filter on name"
// @Param        page    query  int     false  "1-based page number"
// @Success      200  {object}  ports.ChurnReport
// @Failure      401  {object}  map[string]string
// @Router       /v1/reports/churn [get]
func (h *ReportHandler) Churn(c echo.Context) error {
	rep, err := h.service.Churn(c.Request().Context(), bindListQuery(c))
	if err != nil {
		return err
	}

	metrics.ReportRequests.WithLabelValues("churn").Inc()
	return c.JSON(http.StatusOK, rep)
}

// Export handles GET /v1/reports/export. Streams the full report as an XLSX
// workbook download.
//
// @Summary      Export the full report as an XLSX workbook
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      401  {object}  map[string]string
// @Router       /v1/reports/export [get]
func (h *ReportHandler) Export(c echo.Context) error {
	data, err := h.service.ExportWorkbook(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.ReportRequests.WithLabelValues("export").Inc()

	filename := fmt.Sprintf("subscription-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}
