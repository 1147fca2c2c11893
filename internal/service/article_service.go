package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
	"github.com/hmjf-dev/hmjf-cms-api/internal/repository"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
)

type articleRepository interface {
	List(ctx context.Context) ([]models.ArticleListItem, error)
	ListByCategory(ctx context.Context, category models.ArticleCategory) ([]models.ArticleListItem, error)
	ListPaginated(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleListItem, int, error)
	ListFeatured(ctx context.Context, limit int) ([]models.ArticleListItem, error)
	ListRecent(ctx context.Context, limit int) ([]models.ArticleListItem, error)
	FindBySlug(ctx context.Context, slug string) (*models.Article, error)
	FindByID(ctx context.Context, id string) (*models.Article, error)
	Search(ctx context.Context, query string) ([]models.ArticleListItem, error)
	ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error)
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
}

// CreateArticleRequest carries the writable fields of an article.
type CreateArticleRequest struct {
	Title        string     `json:"title" validate:"required"`
	Slug         string     `json:"slug" validate:"required"`
	Excerpt      string     `json:"excerpt" validate:"required"`
	Content      string     `json:"content" validate:"required"`
	Category     string     `json:"category" validate:"required"`
	CoverImage   string     `json:"coverImage" validate:"required"`
	AuthorName   string     `json:"authorName" validate:"required"`
	AuthorRole   string     `json:"authorRole" validate:"required"`
	AuthorAvatar *string    `json:"authorAvatar,omitempty"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	Featured     bool       `json:"featured"`
}

// UpdateArticleRequest is a full replacement of the writable fields.
type UpdateArticleRequest struct {
	CreateArticleRequest
}

type ArticleService struct {
	repo     articleRepository
	cache    listingCache
	cacheTTL time.Duration
	validate *validator.Validate
	logger   *zap.Logger
}

func NewArticleService(repo articleRepository, cache listingCache, cacheTTL time.Duration, logger *zap.Logger) *ArticleService {
	return &ArticleService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *ArticleService) GetAll(ctx context.Context) ([]models.ArticleListItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *ArticleService) GetByCategory(ctx context.Context, category string) ([]models.ArticleListItem, error) {
	cat := models.ArticleCategory(category)
	if !cat.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid article category: "+category)
	}
	items, err := s.repo.ListByCategory(ctx, cat)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *ArticleService) GetPaginated(ctx context.Context, page, limit int, category string) (*models.PaginatedResult[models.ArticleListItem], error) {
	if err := validatePagination(page, limit); err != nil {
		return nil, err
	}
	filter := models.ArticleFilter{Page: page, Limit: limit}
	if category != "" {
		cat := models.ArticleCategory(category)
		if !cat.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid article category: "+category)
		}
		filter.Category = cat
	}
	items, total, err := s.repo.ListPaginated(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	result := models.NewPaginatedResult(items, total, page, limit)
	return &result, nil
}

// GetFeatured serves featured articles through the listing cache. The second
// return value reports whether the payload came from cache.
func (s *ArticleService) GetFeatured(ctx context.Context, limit int) ([]models.ArticleListItem, bool, error) {
	key := repository.ListKey("articles", "featured", limit)

	var cached []models.ArticleListItem
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, true, nil
	} else if !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("article cache read failed", zap.String("key", key), zap.Error(err))
	}

	items, err := s.repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, false, appErrors.Internal(err)
	}
	if err := s.cache.Set(ctx, key, items, s.cacheTTL); err != nil {
		s.logger.Warn("article cache write failed", zap.String("key", key), zap.Error(err))
	}
	return items, false, nil
}

func (s *ArticleService) GetRecent(ctx context.Context, limit int) ([]models.ArticleListItem, bool, error) {
	if limit < 1 {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "limit must be at least 1")
	}
	key := repository.ListKey("articles", "recent", limit)

	var cached []models.ArticleListItem
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, true, nil
	} else if !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("article cache read failed", zap.String("key", key), zap.Error(err))
	}

	items, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, false, appErrors.Internal(err)
	}
	if err := s.cache.Set(ctx, key, items, s.cacheTTL); err != nil {
		s.logger.Warn("article cache write failed", zap.String("key", key), zap.Error(err))
	}
	return items, false, nil
}

func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
		}
		return nil, appErrors.Internal(err)
	}
	return article, nil
}

func (s *ArticleService) GetByID(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
		}
		return nil, appErrors.Internal(err)
	}
	return article, nil
}

func (s *ArticleService) Search(ctx context.Context, query string) ([]models.ArticleListItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "search query is required")
	}
	items, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *ArticleService) Create(ctx context.Context, req CreateArticleRequest) (*models.Article, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	cat := models.ArticleCategory(req.Category)
	if !cat.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid article category: "+req.Category)
	}

	exists, err := s.repo.ExistsBySlug(ctx, req.Slug, "")
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "article slug already in use")
	}

	article := &models.Article{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Category:   cat,
		CoverImage: req.CoverImage,
		Author: models.Author{
			Name:   req.AuthorName,
			Role:   req.AuthorRole,
			Avatar: req.AuthorAvatar,
		},
		Tags:     req.Tags,
		Featured: req.Featured,
	}
	if req.PublishedAt != nil {
		article.PublishedAt = *req.PublishedAt
	}

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, appErrors.Internal(err)
	}
	s.invalidate(ctx)
	s.logger.Info("article created", zap.String("id", article.ID), zap.String("slug", article.Slug))
	return article, nil
}

func (s *ArticleService) Update(ctx context.Context, id string, req UpdateArticleRequest) (*models.Article, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	cat := models.ArticleCategory(req.Category)
	if !cat.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid article category: "+req.Category)
	}

	article, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsBySlug(ctx, req.Slug, id)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "article slug already in use")
	}

	article.Title = req.Title
	article.Slug = req.Slug
	article.Excerpt = req.Excerpt
	article.Content = req.Content
	article.Category = cat
	article.CoverImage = req.CoverImage
	article.Author = models.Author{Name: req.AuthorName, Role: req.AuthorRole, Avatar: req.AuthorAvatar}
	article.Tags = req.Tags
	article.Featured = req.Featured
	if req.PublishedAt != nil {
		article.PublishedAt = *req.PublishedAt
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, appErrors.Internal(err)
	}
	s.invalidate(ctx)
	s.logger.Info("article updated", zap.String("id", article.ID))
	return article, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Internal(err)
	}
	s.invalidate(ctx)
	s.logger.Info("article deleted", zap.String("id", id))
	return nil
}

func (s *ArticleService) invalidate(ctx context.Context) {
	if err := s.cache.DeleteByPattern(ctx, "articles:*"); err != nil {
		s.logger.Warn("article cache invalidation failed", zap.Error(err))
	}
}

func validatePagination(page, limit int) error {
	if page < 1 {
		return appErrors.Clone(appErrors.ErrValidation, "page must be at least 1")
	}
	if limit < 1 {
		return appErrors.Clone(appErrors.ErrValidation, "limit must be at least 1")
	}
	return nil
}
