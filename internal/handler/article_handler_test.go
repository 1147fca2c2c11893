package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
	"github.com/hmjf-dev/hmjf-cms-api/internal/service"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/response"
)

type articleRepoStub struct {
	items []models.ArticleListItem
	total int
}

func (s *articleRepoStub) List(ctx context.Context) ([]models.ArticleListItem, error) {
	return s.items, nil
}

func (s *articleRepoStub) ListByCategory(ctx context.Context, category models.ArticleCategory) ([]models.ArticleListItem, error) {
	return s.items, nil
}

func (s *articleRepoStub) ListPaginated(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleListItem, int, error) {
	return s.items, s.total, nil
}

func (s *articleRepoStub) ListFeatured(ctx context.Context, limit int) ([]models.ArticleListItem, error) {
	return s.items, nil
}

func (s *articleRepoStub) ListRecent(ctx context.Context, limit int) ([]models.ArticleListItem, error) {
	return s.items, nil
}

func (s *articleRepoStub) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return nil, sql.ErrNoRows
}

func (s *articleRepoStub) FindByID(ctx context.Context, id string) (*models.Article, error) {
	return nil, sql.ErrNoRows
}

func (s *articleRepoStub) Search(ctx context.Context, query string) ([]models.ArticleListItem, error) {
	return s.items, nil
}

func (s *articleRepoStub) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	return false, nil
}

func (s *articleRepoStub) Create(ctx context.Context, article *models.Article) error { return nil }
func (s *articleRepoStub) Update(ctx context.Context, article *models.Article) error { return nil }
func (s *articleRepoStub) Delete(ctx context.Context, id string) error               { return nil }

type cacheStub struct{}

func (cacheStub) Get(ctx context.Context, key string, dest interface{}) error {
	return appErrors.ErrCacheMiss
}

func (cacheStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (cacheStub) DeleteByPattern(ctx context.Context, pattern string) error { return nil }

func newArticleHandler(repo *articleRepoStub) *ArticleHandler {
	svc := service.NewArticleService(repo, cacheStub{}, time.Minute, zap.NewNop())
	return NewArticleHandler(svc, service.NewMetricsService())
}

func TestArticleHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newArticleHandler(&articleRepoStub{
		items: []models.ArticleListItem{{ID: "a1", Title: "Judul", Category: models.ArticleCategoryPost}},
		total: 1,
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/articles?page=1&limit=12", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data models.PaginatedResult[models.ArticleListItem] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.TotalCount)
	assert.Equal(t, 1, envelope.Data.TotalPages)
	assert.Len(t, envelope.Data.Items, 1)
}

func TestArticleHandlerListInvalidCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newArticleHandler(&articleRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/articles?category=gossip", nil)

	handler.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrValidation.Code, envelope.Error.Code)
}

func TestArticleHandlerGetBySlugNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newArticleHandler(&articleRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/articles/missing", nil)
	c.Params = gin.Params{{Key: "slug", Value: "missing"}}

	handler.GetBySlug(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArticleHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newArticleHandler(&articleRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/articles", bytes.NewReader([]byte(`invalid`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
