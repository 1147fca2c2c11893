package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hmjf-dev/hmjf-cms-api/internal/middleware"
	"github.com/hmjf-dev/hmjf-cms-api/internal/service"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/response"
)

// EventHandler handles event endpoints.
type EventHandler struct {
	service *service.EventService
	metrics *service.MetricsService
}

// NewEventHandler constructs an event handler.
func NewEventHandler(svc *service.EventService, metrics *service.MetricsService) *EventHandler {
	return &EventHandler{service: svc, metrics: metrics}
}

// List godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	page := intQuery(c, "page", defaultPage)
	limit := intQuery(c, "limit", defaultLimit)
	result, err := h.service.GetPaginated(c.Request.Context(), page, limit, c.Query("category"), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, middleware.ExtractMeta(c))
}

// Upcoming godoc
// @Summary List upcoming events
// @Tags Events
// @Produce json
// @Param limit query int false "Maximum items"
// @Success 200 {object} response.Envelope
// @Router /events/upcoming [get]
func (h *EventHandler) Upcoming(c *gin.Context) {
	limit := intQuery(c, "limit", 0)
	items, cacheHit, err := h.service.GetUpcoming(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	h.metrics.RecordCacheLookup(cacheHit)
	response.JSON(c, http.StatusOK, items, middleware.ExtractMeta(c))
}

// Featured godoc
// @Summary List featured events
// @Tags Events
// @Produce json
// @Param limit query int false "Maximum items"
// @Success 200 {object} response.Envelope
// @Router /events/featured [get]
func (h *EventHandler) Featured(c *gin.Context) {
	items, err := h.service.GetFeatured(c.Request.Context(), intQuery(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Recent godoc
// @Summary List recently added events
// @Tags Events
// @Produce json
// @Param limit query int false "Maximum items"
// @Success 200 {object} response.Envelope
// @Router /events/recent [get]
func (h *EventHandler) Recent(c *gin.Context) {
	items, err := h.service.GetRecent(c.Request.Context(), intQuery(c, "limit", 5))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Calendar godoc
// @Summary List events within a date range
// @Tags Events
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /events/calendar [get]
func (h *EventHandler) Calendar(c *gin.Context) {
	start, err := time.Parse(time.DateOnly, c.Query("start"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid start date, expected YYYY-MM-DD"))
		return
	}
	end, err := time.Parse(time.DateOnly, c.Query("end"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid end date, expected YYYY-MM-DD"))
		return
	}
	items, err := h.service.GetByDateRange(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// GetBySlug godoc
// @Summary Get an event by slug
// @Tags Events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} response.Envelope
// @Router /events/{slug} [get]
func (h *EventHandler) GetBySlug(c *gin.Context) {
	event, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}

// Create godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body service.CreateEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Update godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body service.UpdateEventRequest true "Event payload"
// @Success 200 {object} response.Envelope
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	event, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags Events
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
