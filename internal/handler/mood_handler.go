package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/dayflow-go-api/internal/models"
	"github.com/noah-isme/dayflow-go-api/internal/service"
	appErrors "github.com/noah-isme/dayflow-go-api/pkg/errors"
	"github.com/noah-isme/dayflow-go-api/pkg/response"
)

// MoodHandler wires HTTP endpoints to the mood service.
type MoodHandler struct {
	service *service.MoodService
}

// NewMoodHandler creates a new handler.
func NewMoodHandler(svc *service.MoodService) *MoodHandler {
	return &MoodHandler{service: svc}
}

// List godoc
// @Summary List mood entries
// @Description List mood feedback entries visible to the caller
// @Tags Moods
// @Produce json
// @Param startDate query string false "Start date YYYY-MM-DD"
// @Param endDate query string false "End date YYYY-MM-DD"
// @Param mood query string false "Mood filter"
// @Param search query string false "Search term"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /moods [get]
func (h *MoodHandler) List(c *gin.Context) {
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

	filter := models.MoodFilter{
		StartDate: startDate,
		EndDate:   endDate,
		Mood:      c.Query("mood"),
		Search:    c.Query("search"),
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	entries, meta, err := h.service.List(c.Request.Context(), actor, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, entries, &meta)
}

// Get godoc
// @Summary Get one mood entry
// @Tags Moods
// @Produce json
// @Param id path string true "Mood entry ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /moods/{id} [get]
func (h *MoodHandler) Get(c *gin.Context) {
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
// @Summary Create mood entry
// @Tags Moods
// @Accept json
// @Produce json
// @Param payload body service.CreateMoodRequest true "Mood payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /moods [post]
func (h *MoodHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid mood payload"))
		return
	}

	entry, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, entry)
}

// Update godoc
// @Summary Update mood entry
// @Tags Moods
// @Accept json
// @Produce json
// @Param id path string true "Mood entry ID"
// @Param payload body service.UpdateMoodRequest true "Partial update"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /moods/{id} [put]
func (h *MoodHandler) Update(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.UpdateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid mood payload"))
		return
	}

	entry, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, entry, nil)
}

// Delete godoc
// @Summary Delete mood entry
// @Tags Moods
// @Produce json
// @Param id path string true "Mood entry ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /moods/{id} [delete]
func (h *MoodHandler) Delete(c *gin.Context) {
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
