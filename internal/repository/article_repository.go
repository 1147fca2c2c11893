package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
)

const (
	articleListColumns = "id, title, slug, excerpt, category, author_name, author_role, author_avatar, cover_image, published_at, tags, featured, views"
	articleFullColumns = "id, title, slug, excerpt, content, category, author_name, author_role, author_avatar, cover_image, published_at, updated_at, tags, featured, views"
)

// articleRow mirrors the articles table. Author fields are stored flat and
// folded into the nested domain object by the transforms below.
type articleRow struct {
	ID           string         `db:"id"`
	Title        string         `db:"title"`
	Slug         string         `db:"slug"`
	Excerpt      string         `db:"excerpt"`
	Content      string         `db:"content"`
	Category     string         `db:"category"`
	AuthorName   string         `db:"author_name"`
	AuthorRole   string         `db:"author_role"`
	AuthorAvatar *string        `db:"author_avatar"`
	CoverImage   string         `db:"cover_image"`
	PublishedAt  time.Time      `db:"published_at"`
	UpdatedAt    *time.Time     `db:"updated_at"`
	Tags         pq.StringArray `db:"tags"`
	Featured     bool           `db:"featured"`
	Views        *int           `db:"views"`
}

func (r articleRow) article() models.Article {
	return models.Article{
		ID:       r.ID,
		Title:    r.Title,
		Slug:     r.Slug,
		Excerpt:  r.Excerpt,
		Content:  r.Content,
		Category: models.ArticleCategory(r.Category),
		Author: models.Author{
			Name:   r.AuthorName,
			Role:   r.AuthorRole,
			Avatar: optionalString(r.AuthorAvatar),
		},
		CoverImage:  r.CoverImage,
		PublishedAt: r.PublishedAt,
		UpdatedAt:   r.UpdatedAt,
		Tags:        append([]string{}, r.Tags...),
		Featured:    r.Featured,
		Views:       r.Views,
	}
}

func (r articleRow) listItem() models.ArticleListItem {
	return models.ArticleListItem{
		ID:       r.ID,
		Title:    r.Title,
		Slug:     r.Slug,
		Excerpt:  r.Excerpt,
		Category: models.ArticleCategory(r.Category),
		Author: models.Author{
			Name:   r.AuthorName,
			Role:   r.AuthorRole,
			Avatar: optionalString(r.AuthorAvatar),
		},
		CoverImage:  r.CoverImage,
		PublishedAt: r.PublishedAt,
		Tags:        append([]string{}, r.Tags...),
		Featured:    r.Featured,
		Views:       r.Views,
	}
}

// articleRowFrom folds a domain article back into its storage shape.
func articleRowFrom(a *models.Article) articleRow {
	var avatar *string
	if a.Author.Avatar != nil && *a.Author.Avatar != "" {
		avatar = a.Author.Avatar
	}
	return articleRow{
		ID:           a.ID,
		Title:        a.Title,
		Slug:         a.Slug,
		Excerpt:      a.Excerpt,
		Content:      a.Content,
		Category:     string(a.Category),
		AuthorName:   a.Author.Name,
		AuthorRole:   a.Author.Role,
		AuthorAvatar: avatar,
		CoverImage:   a.CoverImage,
		PublishedAt:  a.PublishedAt,
		UpdatedAt:    a.UpdatedAt,
		Tags:         pq.StringArray(a.Tags),
		Featured:     a.Featured,
		Views:        a.Views,
	}
}

func articleListItems(rows []articleRow) []models.ArticleListItem {
	items := make([]models.ArticleListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.listItem())
	}
	return items
}

// ArticleRepository manages persistence for articles.
type ArticleRepository struct {
	db *sqlx.DB
}

// NewArticleRepository constructs an ArticleRepository.
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// List returns all articles, newest first.
func (r *ArticleRepository) List(ctx context.Context) ([]models.ArticleListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM articles ORDER BY published_at DESC", articleListColumns)
	var rows []articleRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articleListItems(rows), nil
}

// ListByCategory returns articles within one category, newest first.
func (r *ArticleRepository) ListByCategory(ctx context.Context, category models.ArticleCategory) ([]models.ArticleListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE category = $1 ORDER BY published_at DESC", articleListColumns)
	var rows []articleRow
	if err := r.db.SelectContext(ctx, &rows, query, string(category)); err != nil {
		return nil, fmt.Errorf("list articles by category: %w", err)
	}
	return articleListItems(rows), nil
}

// ListPaginated returns one page of articles plus the total matching count.
func (r *ArticleRepository) ListPaginated(ctx context.Context, filter models.ArticleFilter) ([]models.ArticleListItem, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, string(filter.Category))
	}
	whereClause := strings.Join(conditions, " AND ")

	offset := models.PageOffset(filter.Page, filter.Limit)
	query := fmt.Sprintf("SELECT %s FROM articles WHERE %s ORDER BY published_at DESC LIMIT %d OFFSET %d",
		articleListColumns, whereClause, filter.Limit, offset)
	var rows []articleRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list articles paginated: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM articles WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}
	return articleListItems(rows), total, nil
}

// ListFeatured returns featured articles, newest first. A non-positive limit
// returns all of them.
func (r *ArticleRepository) ListFeatured(ctx context.Context, limit int) ([]models.ArticleListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE featured = TRUE ORDER BY published_at DESC", articleListColumns)
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}
	var rows []articleRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list featured articles: %w", err)
	}
	return articleListItems(rows), nil
}

// ListRecent returns the most recently published articles.
func (r *ArticleRepository) ListRecent(ctx context.Context, limit int) ([]models.ArticleListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM articles ORDER BY published_at DESC", articleListColumns)
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}
	var rows []articleRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list recent articles: %w", err)
	}
	return articleListItems(rows), nil
}

// FindBySlug fetches a full article by slug. sql.ErrNoRows passes through so
// the service can distinguish absent rows from query failures.
func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE slug = $1", articleFullColumns)
	var row articleRow
	if err := r.db.GetContext(ctx, &row, query, slug); err != nil {
		return nil, err
	}
	article := row.article()
	return &article, nil
}

// FindByID fetches a full article by primary key.
func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*models.Article, error) {
	query := fmt.Sprintf("SELECT %s FROM articles WHERE id = $1", articleFullColumns)
	var row articleRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	article := row.article()
	return &article, nil
}

// Search matches the query case-insensitively against title and excerpt.
func (r *ArticleRepository) Search(ctx context.Context, query string) ([]models.ArticleListItem, error) {
	sqlQuery := fmt.Sprintf("SELECT %s FROM articles WHERE (LOWER(title) LIKE $1 OR LOWER(excerpt) LIKE $1) ORDER BY published_at DESC", articleListColumns)
	pattern := "%" + strings.ToLower(query) + "%"
	var rows []articleRow
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, pattern); err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return articleListItems(rows), nil
}

// ExistsBySlug checks slug uniqueness, optionally excluding an article ID.
func (r *ArticleRepository) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	query := "SELECT 1 FROM articles WHERE slug = $1"
	args := []interface{}{slug}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check article slug: %w", err)
	}
	return true, nil
}

// Create inserts a new article.
func (r *ArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	if article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now().UTC()
	}
	row := articleRowFrom(article)
	query := `INSERT INTO articles (id, title, slug, excerpt, content, category, author_name, author_role, author_avatar, cover_image, published_at, updated_at, tags, featured, views)
VALUES (:id, :title, :slug, :excerpt, :content, :category, :author_name, :author_role, :author_avatar, :cover_image, :published_at, :updated_at, :tags, :featured, :views)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// Update modifies an existing article.
func (r *ArticleRepository) Update(ctx context.Context, article *models.Article) error {
	now := time.Now().UTC()
	article.UpdatedAt = &now
	row := articleRowFrom(article)
	query := `UPDATE articles SET title = :title, slug = :slug, excerpt = :excerpt, content = :content, category = :category,
author_name = :author_name, author_role = :author_role, author_avatar = :author_avatar, cover_image = :cover_image,
published_at = :published_at, updated_at = :updated_at, tags = :tags, featured = :featured, views = :views
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes an article.
func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
