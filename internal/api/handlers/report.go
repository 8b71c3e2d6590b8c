package handlers

import (
	"net/http"
	"strings"

	"eduman-backend/internal/database/models"
	"eduman-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler serves the reports and dashboard pages
type ReportHandler struct {
	reports   service.ReportServiceInterface
	dashboard service.DashboardServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports service.ReportServiceInterface, dashboard service.DashboardServiceInterface) *ReportHandler {
	return &ReportHandler{reports: reports, dashboard: dashboard}
}

// GetSummary handles GET /api/reports/summary
// @Summary License usage and per-institution summary
// @Description start and end narrow the license totals only; dates are YYYY-MM-DD
// @Tags reports
// @Produce json
// @Param institutionId query string false "Institution ID (UUID)"
// @Param start query string false "Earliest license start date"
// @Param end query string false "Latest license end date"
// @Success 200 {object} service.ReportSummary "Summary"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /api/reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	var filter service.ReportFilter

	if raw := strings.TrimSpace(c.Query("institutionId")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondBadRequest(c, "invalid institutionId: invalid UUID format", nil)
			return
		}
		filter.InstitutionID = &id
	}

	var ok bool
	if filter.Start, ok = parseDateQuery(c, "start"); !ok {
		return
	}
	if filter.End, ok = parseDateQuery(c, "end"); !ok {
		return
	}

	summary, err := h.reports.GetSummary(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Download handles GET /api/reports/download
// @Summary Download the report
// @Description Not available yet; always answers 204
// @Tags reports
// @Success 204 "No content"
// @Security BearerAuth
// @Router /api/reports/download [get]
func (h *ReportHandler) Download(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Overview handles GET /api/dashboard/overview
// @Summary Entity counts for the dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardOverview "Counts"
// @Security BearerAuth
// @Router /api/dashboard/overview [get]
func (h *ReportHandler) Overview(c *gin.Context) {
	overview, err := h.dashboard.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// parseDateQuery reads an optional YYYY-MM-DD query value, writing a 400 when malformed
func parseDateQuery(c *gin.Context, name string) (*models.Date, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		respondBadRequest(c, "invalid "+name, err)
		return nil, false
	}
	return &d, true
}
