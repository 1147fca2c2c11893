package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hmjf-dev/hmjf-cms-api/internal/service"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/response"
)

// TimelineHandler handles organization history endpoints.
type TimelineHandler struct {
	service *service.TimelineService
}

// NewTimelineHandler constructs a timeline handler.
func NewTimelineHandler(svc *service.TimelineService) *TimelineHandler {
	return &TimelineHandler{service: svc}
}

// List godoc
// @Summary List history milestones
// @Tags Timeline
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timeline [get]
func (h *TimelineHandler) List(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get a milestone by id
// @Tags Timeline
// @Produce json
// @Param id path string true "Milestone ID"
// @Success 200 {object} response.Envelope
// @Router /timeline/{id} [get]
func (h *TimelineHandler) Get(c *gin.Context) {
	item, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Create a milestone
// @Tags Timeline
// @Accept json
// @Produce json
// @Param payload body service.TimelineItemRequest true "Milestone payload"
// @Success 201 {object} response.Envelope
// @Router /timeline [post]
func (h *TimelineHandler) Create(c *gin.Context) {
	var req service.TimelineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update a milestone
// @Tags Timeline
// @Accept json
// @Produce json
// @Param id path string true "Milestone ID"
// @Param payload body service.TimelineItemRequest true "Milestone payload"
// @Success 200 {object} response.Envelope
// @Router /timeline/{id} [put]
func (h *TimelineHandler) Update(c *gin.Context) {
	var req service.TimelineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	item, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete a milestone
// @Tags Timeline
// @Param id path string true "Milestone ID"
// @Success 204 "No Content"
// @Router /timeline/{id} [delete]
func (h *TimelineHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
