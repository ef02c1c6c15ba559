package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atmavision/booking-system/internal/core/ports"
)

// ReportHandler serves the manager dashboard: the revenue summary and the
// optional AI business analysis.
type ReportHandler struct {
	reports  ports.ReportService
	analysis ports.AnalysisService
}

func NewReportHandler(reports ports.ReportService, analysis ports.AnalysisService) *ReportHandler {
	return &ReportHandler{reports: reports, analysis: analysis}
}

type analysisResponse struct {
	Summary string `json:"summary"`
}

// Summary handles GET /v1/reports/summary (manager only).
//
// @Summary      Revenue report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ReportData
// @Router       /v1/reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	report, err := h.reports.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Analyze handles POST /v1/reports/analysis (manager only). The response is
// always 200: missing configuration and upstream faults degrade to fixed
// apology strings rather than errors.
//
// @Summary      AI business analysis
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  analysisResponse
// @Router       /v1/reports/analysis [post]
func (h *ReportHandler) Analyze(c echo.Context) error {
	summary := h.analysis.Analyze(c.Request().Context())
	return c.JSON(http.StatusOK, analysisResponse{Summary: summary})
}
