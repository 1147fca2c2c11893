package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hmjf-dev/hmjf-cms-api/internal/middleware"
	"github.com/hmjf-dev/hmjf-cms-api/internal/service"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/response"
)

const (
	defaultPage  = 1
	defaultLimit = 12
)

// ArticleHandler handles article endpoints.
type ArticleHandler struct {
	service *service.ArticleService
	metrics *service.MetricsService
}

// NewArticleHandler constructs an article handler.
func NewArticleHandler(svc *service.ArticleService, metrics *service.MetricsService) *ArticleHandler {
	return &ArticleHandler{service: svc, metrics: metrics}
}

// List godoc
// @Summary List published articles
// @Tags Articles
// @Produce json
// @Param category query string false "Filter by category"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /articles [get]
func (h *ArticleHandler) List(c *gin.Context) {
	page := intQuery(c, "page", defaultPage)
	limit := intQuery(c, "limit", defaultLimit)
	result, err := h.service.GetPaginated(c.Request.Context(), page, limit, c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, middleware.ExtractMeta(c))
}

// Featured godoc
// @Summary List featured articles
// @Tags Articles
// @Produce json
// @Param limit query int false "Maximum items"
// @Success 200 {object} response.Envelope
// @Router /articles/featured [get]
func (h *ArticleHandler) Featured(c *gin.Context) {
	limit := intQuery(c, "limit", 0)
	items, cacheHit, err := h.service.GetFeatured(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	h.metrics.RecordCacheLookup(cacheHit)
	response.JSON(c, http.StatusOK, items, middleware.ExtractMeta(c))
}

// Recent godoc
// @Summary List most recent articles
// @Tags Articles
// @Produce json
// @Param limit query int false "Maximum items"
// @Success 200 {object} response.Envelope
// @Router /articles/recent [get]
func (h *ArticleHandler) Recent(c *gin.Context) {
	limit := intQuery(c, "limit", 5)
	items, cacheHit, err := h.service.GetRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	h.metrics.RecordCacheLookup(cacheHit)
	response.JSON(c, http.StatusOK, items, middleware.ExtractMeta(c))
}

// Search godoc
// @Summary Search articles by title
// @Tags Articles
// @Produce json
// @Param q query string true "Search keyword"
// @Success 200 {object} response.Envelope
// @Router /articles/search [get]
func (h *ArticleHandler) Search(c *gin.Context) {
	items, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// GetBySlug godoc
// @Summary Get an article by slug
// @Tags Articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} response.Envelope
// @Router /articles/{slug} [get]
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, article)
}

// Create godoc
// @Summary Create an article
// @Tags Articles
// @Accept json
// @Produce json
// @Param payload body service.CreateArticleRequest true "Article payload"
// @Success 201 {object} response.Envelope
// @Router /articles [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	var req service.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	article, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, article)
}

// Update godoc
// @Summary Update an article
// @Tags Articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param payload body service.UpdateArticleRequest true "Article payload"
// @Success 200 {object} response.Envelope
// @Router /articles/{id} [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	var req service.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	article, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, article)
}

// Delete godoc
// @Summary Delete an article
// @Tags Articles
// @Param id path string true "Article ID"
// @Success 204 "No Content"
// @Router /articles/{id} [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
