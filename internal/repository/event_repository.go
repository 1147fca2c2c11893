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
	eventListColumns = "id, title, slug, description, category, status, start_date, end_date, location, cover_image, featured"
	eventFullColumns = "id, title, slug, description, content, category, status, start_date, end_date, location, cover_image, images, organizer_name, organizer_contact, registration_url, registration_deadline, max_participants, current_participants, tags, featured, created_at, updated_at"
)

// eventRow mirrors the events table. Location is a legacy text column that may
// hold either a bare venue name or JSON; organizer fields are stored flat.
type eventRow struct {
	ID                   string         `db:"id"`
	Title                string         `db:"title"`
	Slug                 string         `db:"slug"`
	Description          string         `db:"description"`
	Content              string         `db:"content"`
	Category             string         `db:"category"`
	Status               string         `db:"status"`
	StartDate            time.Time      `db:"start_date"`
	EndDate              time.Time      `db:"end_date"`
	Location             string         `db:"location"`
	CoverImage           string         `db:"cover_image"`
	Images               pq.StringArray `db:"images"`
	OrganizerName        *string        `db:"organizer_name"`
	OrganizerContact     *string        `db:"organizer_contact"`
	RegistrationURL      *string        `db:"registration_url"`
	RegistrationDeadline *time.Time     `db:"registration_deadline"`
	MaxParticipants      *int           `db:"max_participants"`
	CurrentParticipants  *int           `db:"current_participants"`
	Tags                 pq.StringArray `db:"tags"`
	Featured             bool           `db:"featured"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            *time.Time     `db:"updated_at"`
}

func (r eventRow) event(defaults ContentDefaults) models.Event {
	var images []string
	if len(r.Images) > 0 {
		images = append([]string{}, r.Images...)
	}
	return models.Event{
		ID:          r.ID,
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Content:     r.Content,
		Category:    models.EventCategory(r.Category),
		Status:      models.EventStatus(r.Status),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Location:    parseLocation(r.Location),
		CoverImage:  r.CoverImage,
		Images:      images,
		Organizer: models.Organizer{
			Name:    stringOr(r.OrganizerName, defaults.OrganizerName),
			Contact: stringOr(r.OrganizerContact, defaults.OrganizerContact),
		},
		RegistrationURL:      optionalString(r.RegistrationURL),
		RegistrationDeadline: r.RegistrationDeadline,
		MaxParticipants:      r.MaxParticipants,
		CurrentParticipants:  r.CurrentParticipants,
		Tags:                 append([]string{}, r.Tags...),
		Featured:             r.Featured,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func (r eventRow) listItem() models.EventListItem {
	return models.EventListItem{
		ID:          r.ID,
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Category:    models.EventCategory(r.Category),
		Status:      models.EventStatus(r.Status),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Location:    parseLocation(r.Location),
		CoverImage:  r.CoverImage,
		Featured:    r.Featured,
	}
}

// eventRowFrom folds a domain event back into its storage shape.
func eventRowFrom(e *models.Event) eventRow {
	return eventRow{
		ID:                   e.ID,
		Title:                e.Title,
		Slug:                 e.Slug,
		Description:          e.Description,
		Content:              e.Content,
		Category:             string(e.Category),
		Status:               string(e.Status),
		StartDate:            e.StartDate,
		EndDate:              e.EndDate,
		Location:             encodeLocation(e.Location),
		CoverImage:           e.CoverImage,
		Images:               pq.StringArray(e.Images),
		OrganizerName:        nullableString(e.Organizer.Name),
		OrganizerContact:     nullableString(e.Organizer.Contact),
		RegistrationURL:      optionalString(e.RegistrationURL),
		RegistrationDeadline: e.RegistrationDeadline,
		MaxParticipants:      e.MaxParticipants,
		CurrentParticipants:  e.CurrentParticipants,
		Tags:                 pq.StringArray(e.Tags),
		Featured:             e.Featured,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func eventListItems(rows []eventRow) []models.EventListItem {
	items := make([]models.EventListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.listItem())
	}
	return items
}

// EventRepository manages persistence for events.
type EventRepository struct {
	db       *sqlx.DB
	defaults ContentDefaults
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *sqlx.DB, defaults ContentDefaults) *EventRepository {
	return &EventRepository{db: db, defaults: defaults}
}

// List returns all events ordered by start date, newest first.
func (r *EventRepository) List(ctx context.Context) ([]models.EventListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM events ORDER BY start_date DESC", eventListColumns)
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return eventListItems(rows), nil
}

// ListByStatus returns events in a lifecycle state, newest first.
func (r *EventRepository) ListByStatus(ctx context.Context, status models.EventStatus) ([]models.EventListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE status = $1 ORDER BY start_date DESC", eventListColumns)
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, string(status)); err != nil {
		return nil, fmt.Errorf("list events by status: %w", err)
	}
	return eventListItems(rows), nil
}

// ListByCategory returns events within one category, newest first.
func (r *EventRepository) ListByCategory(ctx context.Context, category models.EventCategory) ([]models.EventListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE category = $1 ORDER BY start_date DESC", eventListColumns)
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, string(category)); err != nil {
		return nil, fmt.Errorf("list events by category: %w", err)
	}
	return eventListItems(rows), nil
}

// ListPaginated returns one page of events plus the total matching count.
func (r *EventRepository) ListPaginated(ctx context.Context, filter models.EventFilter) ([]models.EventListItem, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, string(filter.Category))
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, string(filter.Status))
	}
	whereClause := strings.Join(conditions, " AND ")

	offset := models.PageOffset(filter.Page, filter.Limit)
	query := fmt.Sprintf("SELECT %s FROM events WHERE %s ORDER BY start_date DESC LIMIT %d OFFSET %d",
		eventListColumns, whereClause, filter.Limit, offset)
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list events paginated: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM events WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	return eventListItems(rows), total, nil
}

// ListUpcoming returns upcoming events that have not started yet, soonest
// first. A non-positive limit returns all of them.
func (r *EventRepository) ListUpcoming(ctx context.Context, limit int) ([]models.EventListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE status = $1 AND start_date >= NOW() ORDER BY start_date ASC", eventListColumns)
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, string(models.EventStatusUpcoming)); err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return eventListItems(rows), nil
}

// ListFeatured returns featured events, newest first.
func (r *EventRepository) ListFeatured(ctx context.Context, limit int) ([]models.EventListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE featured = TRUE ORDER BY start_date DESC", eventListColumns)
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list featured events: %w", err)
	}
	return eventListItems(rows), nil
}

// ListRecent returns the most recently dated events.
func (r *EventRepository) ListRecent(ctx context.Context, limit int) ([]models.EventListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM events ORDER BY start_date DESC", eventListColumns)
	if limit > 0 {
		query = fmt.Sprintf("%s LIMIT %d", query, limit)
	}
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	return eventListItems(rows), nil
}

// ListByDateRange returns events whose start date falls inside the inclusive
// range, soonest first.
func (r *EventRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.EventListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE start_date >= $1 AND start_date <= $2 ORDER BY start_date ASC", eventListColumns)
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, start, end); err != nil {
		return nil, fmt.Errorf("list events by date range: %w", err)
	}
	return eventListItems(rows), nil
}

// FindBySlug fetches a full event by slug. sql.ErrNoRows passes through.
func (r *EventRepository) FindBySlug(ctx context.Context, slug string) (*models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE slug = $1", eventFullColumns)
	var row eventRow
	if err := r.db.GetContext(ctx, &row, query, slug); err != nil {
		return nil, err
	}
	event := row.event(r.defaults)
	return &event, nil
}

// FindByID fetches a full event by primary key.
func (r *EventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	query := fmt.Sprintf("SELECT %s FROM events WHERE id = $1", eventFullColumns)
	var row eventRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	event := row.event(r.defaults)
	return &event, nil
}

// ExistsBySlug checks slug uniqueness, optionally excluding an event ID.
func (r *EventRepository) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	query := "SELECT 1 FROM events WHERE slug = $1"
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
		return false, fmt.Errorf("check event slug: %w", err)
	}
	return true, nil
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	row := eventRowFrom(event)
	query := `INSERT INTO events (id, title, slug, description, content, category, status, start_date, end_date, location, cover_image, images, organizer_name, organizer_contact, registration_url, registration_deadline, max_participants, current_participants, tags, featured, created_at, updated_at)
VALUES (:id, :title, :slug, :description, :content, :category, :status, :start_date, :end_date, :location, :cover_image, :images, :organizer_name, :organizer_contact, :registration_url, :registration_deadline, :max_participants, :current_participants, :tags, :featured, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// Update modifies an existing event.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	now := time.Now().UTC()
	event.UpdatedAt = &now
	row := eventRowFrom(event)
	query := `UPDATE events SET title = :title, slug = :slug, description = :description, content = :content, category = :category,
status = :status, start_date = :start_date, end_date = :end_date, location = :location, cover_image = :cover_image, images = :images,
organizer_name = :organizer_name, organizer_contact = :organizer_contact, registration_url = :registration_url,
registration_deadline = :registration_deadline, max_participants = :max_participants, current_participants = :current_participants,
tags = :tags, featured = :featured, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM events WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
