package models

import "time"

// EventCategory classifies organization events.
type EventCategory string

const (
	EventCategorySeminar          EventCategory = "seminar"
	EventCategoryWorkshop         EventCategory = "workshop"
	EventCategoryCommunityService EventCategory = "community-service"
	EventCategoryCompetition      EventCategory = "competition"
	EventCategoryTraining         EventCategory = "training"
	EventCategoryOther            EventCategory = "other"
)

// Valid reports whether the category belongs to the closed set.
func (c EventCategory) Valid() bool {
	switch c {
	case EventCategorySeminar, EventCategoryWorkshop, EventCategoryCommunityService,
		EventCategoryCompetition, EventCategoryTraining, EventCategoryOther:
		return true
	}
	return false
}

// EventStatus tracks the lifecycle of an event.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// Valid reports whether the status belongs to the closed set.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// EventLocation is the decoded venue. Address stays empty when the stored
// value was a bare venue name.
type EventLocation struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Organizer identifies who runs the event.
type Organizer struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Event is the full projection including body content.
type Event struct {
	ID                   string        `json:"id"`
	Title                string        `json:"title"`
	Slug                 string        `json:"slug"`
	Description          string        `json:"description"`
	Content              string        `json:"content"`
	Category             EventCategory `json:"category"`
	Status               EventStatus   `json:"status"`
	StartDate            time.Time     `json:"startDate"`
	EndDate              time.Time     `json:"endDate"`
	Location             EventLocation `json:"location"`
	CoverImage           string        `json:"coverImage"`
	Images               []string      `json:"images,omitempty"`
	Organizer            Organizer     `json:"organizer"`
	RegistrationURL      *string       `json:"registrationUrl,omitempty"`
	RegistrationDeadline *time.Time    `json:"registrationDeadline,omitempty"`
	MaxParticipants      *int          `json:"maxParticipants,omitempty"`
	CurrentParticipants  *int          `json:"currentParticipants,omitempty"`
	Tags                 []string      `json:"tags"`
	Featured             bool          `json:"featured"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            *time.Time    `json:"updatedAt,omitempty"`
}

// EventListItem is the summary projection used by listings.
type EventListItem struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Category    EventCategory `json:"category"`
	Status      EventStatus   `json:"status"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     time.Time     `json:"endDate"`
	Location    EventLocation `json:"location"`
	CoverImage  string        `json:"coverImage"`
	Featured    bool          `json:"featured"`
}

// EventFilter encapsulates paginated listing parameters.
type EventFilter struct {
	Category EventCategory
	Status   EventStatus
	Page     int
	Limit    int
}
