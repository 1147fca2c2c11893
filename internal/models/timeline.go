package models

import "time"

// TimelineItem is a milestone on the organization history page.
type TimelineItem struct {
	ID          string     `json:"id"`
	Year        string     `json:"year"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	OrderIndex  int        `json:"orderIndex"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
