package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/dayflow-go-api/internal/service"
	"github.com/noah-isme/dayflow-go-api/pkg/response"
)

// AnalyticsHandler wires dashboard and export endpoints.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	exports   *service.ExportService
}

// NewAnalyticsHandler creates a new handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService, exports *service.ExportService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, exports: exports}
}

// Dashboard godoc
// @Summary Productivity dashboard
// @Description Combined work log, mood, skill and activity aggregates for the caller's scope
// @Tags Analytics
// @Produce json
// @Param days query int false "Window in days, defaults to 30"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	dashboard, err := h.analytics.Dashboard(c.Request.Context(), actor, c.Query("days"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, dashboard, nil)
}

// ExportWorkLogs godoc
// @Summary Export work logs
// @Description Download all visible work logs as CSV or PDF
// @Tags Analytics
// @Produce text/csv
// @Param format query string false "csv or pdf, defaults to csv"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /analytics/export/work-logs [get]
func (h *AnalyticsHandler) ExportWorkLogs(c *gin.Context) {
	h.export(c, service.ExportWorkLogs)
}

// ExportSkills godoc
// @Summary Export skill entries
// @Description Download all visible skill entries as CSV or PDF
// @Tags Analytics
// @Produce text/csv
// @Param format query string false "csv or pdf, defaults to csv"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /analytics/export/skills [get]
func (h *AnalyticsHandler) ExportSkills(c *gin.Context) {
	h.export(c, service.ExportSkills)
}

// ExportMoods godoc
// @Summary Export mood entries
// @Description Download all visible mood entries as CSV or PDF
// @Tags Analytics
// @Produce text/csv
// @Param format query string false "csv or pdf, defaults to csv"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /analytics/export/moods [get]
func (h *AnalyticsHandler) ExportMoods(c *gin.Context) {
	h.export(c, service.ExportMoods)
}

func (h *AnalyticsHandler) export(c *gin.Context, entity string) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	file, err := h.exports.Export(c.Request.Context(), actor, entity, c.DefaultQuery("format", service.FormatCSV))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
