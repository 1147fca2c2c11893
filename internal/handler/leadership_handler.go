package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hmjf-dev/hmjf-cms-api/internal/service"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/response"
)

// LeadershipHandler handles board roster endpoints.
type LeadershipHandler struct {
	service *service.LeadershipService
}

// NewLeadershipHandler constructs a leadership handler.
func NewLeadershipHandler(svc *service.LeadershipService) *LeadershipHandler {
	return &LeadershipHandler{service: svc}
}

// List godoc
// @Summary List board members
// @Tags Leadership
// @Produce json
// @Param division query string false "Filter by division"
// @Param position query string false "Filter by position"
// @Param period query string false "Filter by period, e.g. 2024-2025"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /leadership [get]
func (h *LeadershipHandler) List(c *gin.Context) {
	page := intQuery(c, "page", defaultPage)
	limit := intQuery(c, "limit", defaultLimit)
	result, err := h.service.GetPaginated(c.Request.Context(), page, limit,
		c.Query("division"), c.Query("position"), c.Query("period"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Current godoc
// @Summary List the active-period board
// @Tags Leadership
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /leadership/current [get]
func (h *LeadershipHandler) Current(c *gin.Context) {
	items, err := h.service.GetCurrent(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Core godoc
// @Summary List the executive board
// @Tags Leadership
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /leadership/core [get]
func (h *LeadershipHandler) Core(c *gin.Context) {
	items, err := h.service.GetCore(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get a board member by id
// @Tags Leadership
// @Produce json
// @Param id path string true "Leadership ID"
// @Success 200 {object} response.Envelope
// @Router /leadership/{id} [get]
func (h *LeadershipHandler) Get(c *gin.Context) {
	record, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// Create godoc
// @Summary Create a board member
// @Tags Leadership
// @Accept json
// @Produce json
// @Param payload body service.CreateLeadershipRequest true "Leadership payload"
// @Success 201 {object} response.Envelope
// @Router /leadership [post]
func (h *LeadershipHandler) Create(c *gin.Context) {
	var req service.CreateLeadershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// Update godoc
// @Summary Update a board member
// @Tags Leadership
// @Accept json
// @Produce json
// @Param id path string true "Leadership ID"
// @Param payload body service.UpdateLeadershipRequest true "Leadership payload"
// @Success 200 {object} response.Envelope
// @Router /leadership/{id} [put]
func (h *LeadershipHandler) Update(c *gin.Context) {
	var req service.UpdateLeadershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	record, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// Delete godoc
// @Summary Delete a board member
// @Tags Leadership
// @Param id path string true "Leadership ID"
// @Success 204 "No Content"
// @Router /leadership/{id} [delete]
func (h *LeadershipHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
