package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/dayflow-go-api/internal/models"
	"github.com/noah-isme/dayflow-go-api/internal/service"
	appErrors "github.com/noah-isme/dayflow-go-api/pkg/errors"
	"github.com/noah-isme/dayflow-go-api/pkg/response"
)

// SkillHandler wires HTTP endpoints to the skill service.
type SkillHandler struct {
	service *service.SkillService
}

// NewSkillHandler creates a new handler.
func NewSkillHandler(svc *service.SkillService) *SkillHandler {
	return &SkillHandler{service: svc}
}

// List godoc
// @Summary List skill entries
// @Description List skill development entries visible to the caller
// @Tags Skills
// @Produce json
// @Param startDate query string false "Start date YYYY-MM-DD"
// @Param endDate query string false "End date YYYY-MM-DD"
// @Param search query string false "Search term"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
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

	filter := models.SkillFilter{
		StartDate: startDate,
		EndDate:   endDate,
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
// @Summary Get one skill entry
// @Tags Skills
// @Produce json
// @Param id path string true "Skill entry ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /skills/{id} [get]
func (h *SkillHandler) Get(c *gin.Context) {
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
// @Summary Create skill entry
// @Tags Skills
// @Accept json
// @Produce json
// @Param payload body service.CreateSkillRequest true "Skill payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /skills [post]
func (h *SkillHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid skill payload"))
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
// @Summary Update skill entry
// @Tags Skills
// @Accept json
// @Produce json
// @Param id path string true "Skill entry ID"
// @Param payload body service.UpdateSkillRequest true "Partial update"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /skills/{id} [put]
func (h *SkillHandler) Update(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid skill payload"))
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
// @Summary Delete skill entry
// @Tags Skills
// @Produce json
// @Param id path string true "Skill entry ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /skills/{id} [delete]
func (h *SkillHandler) Delete(c *gin.Context) {
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
