package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/dayflow-go-api/internal/models"
	"github.com/noah-isme/dayflow-go-api/internal/service"
	appErrors "github.com/noah-isme/dayflow-go-api/pkg/errors"
	"github.com/noah-isme/dayflow-go-api/pkg/response"
)

// WorkLogHandler wires HTTP endpoints to the work log service.
type WorkLogHandler struct {
	service *service.WorkLogService
}

// NewWorkLogHandler creates a new handler.
func NewWorkLogHandler(svc *service.WorkLogService) *WorkLogHandler {
	return &WorkLogHandler{service: svc}
}

// List godoc
// @Summary List work logs
// @Description List work logs visible to the caller with filters and pagination
// @Tags WorkLogs
// @Produce json
// @Param startDate query string false "Start date YYYY-MM-DD"
// @Param endDate query string false "End date YYYY-MM-DD"
// @Param status query string false "Status filter"
// @Param search query string false "Search term"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /work-logs [get]
func (h *WorkLogHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	startDate, err := dateQuery(c, "startDate")
	if err != nil {
		response.Error(c, err)
		return
	}
	endDate, err := dateQuery(c, "endDate")
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := models.WorkLogFilter{
		StartDate: startDate,
		EndDate:   endDate,
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	logs, meta, err := h.service.List(c.Request.Context(), actor, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, logs, &meta)
}

// Get godoc
// @Summary Get one work log
// @Tags WorkLogs
// @Produce json
// @Param id path string true "Work log ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /work-logs/{id} [get]
func (h *WorkLogHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, detail, nil)
}

// Create godoc
// @Summary Create work log
// @Tags WorkLogs
// @Accept json
// @Produce json
// @Param payload body service.CreateWorkLogRequest true "Work log payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /work-logs [post]
func (h *WorkLogHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid work log payload"))
		return
	}

	log, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, log)
}

// Update godoc
// @Summary Update work log
// @Tags WorkLogs
// @Accept json
// @Produce json
// @Param id path string true "Work log ID"
// @Param payload body service.UpdateWorkLogRequest true "Partial update"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /work-logs/{id} [put]
func (h *WorkLogHandler) Update(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.UpdateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid work log payload"))
		return
	}

	log, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, log, nil)
}

// Delete godoc
// @Summary Delete work log
// @Tags WorkLogs
// @Produce json
// @Param id path string true "Work log ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /work-logs/{id} [delete]
func (h *WorkLogHandler) Delete(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
