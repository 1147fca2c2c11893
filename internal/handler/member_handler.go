package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hmjf-dev/hmjf-cms-api/internal/service"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/response"
)

// MemberHandler handles member roster endpoints.
type MemberHandler struct {
	service *service.MemberService
}

// NewMemberHandler constructs a member handler.
func NewMemberHandler(svc *service.MemberService) *MemberHandler {
	return &MemberHandler{service: svc}
}

// List godoc
// @Summary List members
// @Tags Members
// @Produce json
// @Param status query string false "Filter by status"
// @Param batch query string false "Filter by cohort year"
// @Param division query string false "Filter by division"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /members [get]
func (h *MemberHandler) List(c *gin.Context) {
	page := intQuery(c, "page", defaultPage)
	limit := intQuery(c, "limit", defaultLimit)
	result, err := h.service.GetPaginated(c.Request.Context(), page, limit,
		c.Query("status"), c.Query("batch"), c.Query("division"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Search godoc
// @Summary Search members by name or NIM
// @Tags Members
// @Produce json
// @Param q query string true "Search keyword"
// @Success 200 {object} response.Envelope
// @Router /members/search [get]
func (h *MemberHandler) Search(c *gin.Context) {
	items, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get a member by id
// @Tags Members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} response.Envelope
// @Router /members/{id} [get]
func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, member)
}

// Create godoc
// @Summary Register a member
// @Tags Members
// @Accept json
// @Produce json
// @Param payload body service.CreateMemberRequest true "Member payload"
// @Success 201 {object} response.Envelope
// @Router /members [post]
func (h *MemberHandler) Create(c *gin.Context) {
	var req service.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	member, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, member)
}

// Update godoc
// @Summary Update a member
// @Tags Members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param payload body service.UpdateMemberRequest true "Member payload"
// @Success 200 {object} response.Envelope
// @Router /members/{id} [put]
func (h *MemberHandler) Update(c *gin.Context) {
	var req service.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	member, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, member)
}

// Delete godoc
// @Summary Delete a member
// @Tags Members
// @Param id path string true "Member ID"
// @Success 204 "No Content"
// @Router /members/{id} [delete]
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
