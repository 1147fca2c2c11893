package models

// PaginatedResult wraps a single page of items together with paging metadata.
// JSON field names stay camelCase to match the frontend entity contract.
type PaginatedResult[T any] struct {
	Items       []T  `json:"items"`
	TotalCount  int  `json:"totalCount"`
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPaginatedResult builds the envelope for a 1-indexed page. TotalPages is
// floored at 1 so page 1 is always addressable even for an empty result set.
func NewPaginatedResult[T any](items []T, totalCount, page, limit int) PaginatedResult[T] {
	totalPages := 1
	if limit > 0 {
		totalPages = (totalCount + limit - 1) / limit
	}
	if totalPages < 1 {
		totalPages = 1
	}
	if items == nil {
		items = []T{}
	}
	return PaginatedResult[T]{
		Items:       items,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// PageOffset converts a 1-indexed page into the row offset for the store query.
func PageOffset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
