package models

import "time"

// ArticleCategory classifies published articles.
type ArticleCategory string

const (
	ArticleCategoryPost        ArticleCategory = "post"
	ArticleCategoryBlog        ArticleCategory = "blog"
	ArticleCategoryOpinion     ArticleCategory = "opinion"
	ArticleCategoryPublication ArticleCategory = "publication"
	ArticleCategoryInfo        ArticleCategory = "info"
)

// Valid reports whether the category belongs to the closed set.
func (c ArticleCategory) Valid() bool {
	switch c {
	case ArticleCategoryPost, ArticleCategoryBlog, ArticleCategoryOpinion,
		ArticleCategoryPublication, ArticleCategoryInfo:
		return true
	}
	return false
}

// Author carries the article byline.
type Author struct {
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Avatar *string `json:"avatar,omitempty"`
}

// Article is the full projection including body content.
type Article struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Excerpt     string          `json:"excerpt"`
	Content     string          `json:"content"`
	Category    ArticleCategory `json:"category"`
	Author      Author          `json:"author"`
	CoverImage  string          `json:"coverImage"`
	PublishedAt time.Time       `json:"publishedAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
	Tags        []string        `json:"tags"`
	Featured    bool            `json:"featured"`
	Views       *int            `json:"views,omitempty"`
}

// ArticleListItem is the summary projection used by listings.
type ArticleListItem struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Excerpt     string          `json:"excerpt"`
	Category    ArticleCategory `json:"category"`
	Author      Author          `json:"author"`
	CoverImage  string          `json:"coverImage"`
	PublishedAt time.Time       `json:"publishedAt"`
	Tags        []string        `json:"tags"`
	Featured    bool            `json:"featured"`
	Views       *int            `json:"views,omitempty"`
}

// ArticleFilter encapsulates paginated listing parameters.
type ArticleFilter struct {
	Category ArticleCategory
	Page     int
	Limit    int
}
