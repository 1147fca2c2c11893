package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResultFirstPage(t *testing.T) {
	items := make([]ArticleListItem, 12)
	result := NewPaginatedResult(items, 30, 1, 12)

	assert.Equal(t, 30, result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 1, result.CurrentPage)
	assert.True(t, result.HasNextPage)
	assert.False(t, result.HasPrevPage)
	assert.Len(t, result.Items, 12)
}

func TestNewPaginatedResultLastPage(t *testing.T) {
	items := make([]ArticleListItem, 6)
	result := NewPaginatedResult(items, 30, 3, 12)

	assert.Equal(t, 3, result.TotalPages)
	assert.False(t, result.HasNextPage)
	assert.True(t, result.HasPrevPage)
	// 30 - (3-1)*12 items remain on the final page
	assert.Len(t, result.Items, 6)
}

func TestNewPaginatedResultEmpty(t *testing.T) {
	result := NewPaginatedResult[MemberListItem](nil, 0, 1, 12)

	assert.Equal(t, 0, result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	assert.False(t, result.HasNextPage)
	assert.False(t, result.HasPrevPage)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestNewPaginatedResultPageBeyondTotal(t *testing.T) {
	result := NewPaginatedResult([]EventListItem{}, 10, 5, 10)

	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, 5, result.CurrentPage)
	assert.False(t, result.HasNextPage)
	assert.True(t, result.HasPrevPage)
	assert.Empty(t, result.Items)
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, PageOffset(1, 12))
	assert.Equal(t, 12, PageOffset(2, 12))
	assert.Equal(t, 0, PageOffset(0, 12))
	assert.Equal(t, 40, PageOffset(5, 10))
}
