package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
)

const timelineColumns = "id, year, title, description, order_index, created_at, updated_at"

type timelineRow struct {
	ID          string     `db:"id"`
	Year        string     `db:"year"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	OrderIndex  int        `db:"order_index"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

func (r timelineRow) item() models.TimelineItem {
	return models.TimelineItem{
		ID:          r.ID,
		Year:        r.Year,
		Title:       r.Title,
		Description: r.Description,
		OrderIndex:  r.OrderIndex,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func timelineRowFrom(item *models.TimelineItem) timelineRow {
	return timelineRow{
		ID:          item.ID,
		Year:        item.Year,
		Title:       item.Title,
		Description: item.Description,
		OrderIndex:  item.OrderIndex,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// TimelineRepository manages persistence for organization history milestones.
type TimelineRepository struct {
	db *sqlx.DB
}

// NewTimelineRepository constructs a TimelineRepository.
func NewTimelineRepository(db *sqlx.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

// List returns all milestones, most recent year first.
func (r *TimelineRepository) List(ctx context.Context) ([]models.TimelineItem, error) {
	query := fmt.Sprintf("SELECT %s FROM organization_timeline ORDER BY year DESC, order_index ASC", timelineColumns)
	var rows []timelineRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list timeline: %w", err)
	}
	items := make([]models.TimelineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.item())
	}
	return items, nil
}

// FindByID fetches a single milestone. sql.ErrNoRows passes through.
func (r *TimelineRepository) FindByID(ctx context.Context, id string) (*models.TimelineItem, error) {
	query := fmt.Sprintf("SELECT %s FROM organization_timeline WHERE id = $1", timelineColumns)
	var row timelineRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	item := row.item()
	return &item, nil
}

// Create inserts a new milestone.
func (r *TimelineRepository) Create(ctx context.Context, item *models.TimelineItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	row := timelineRowFrom(item)
	query := `INSERT INTO organization_timeline (id, year, title, description, order_index, created_at)
VALUES (:id, :year, :title, :description, :order_index, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("create timeline item: %w", err)
	}
	return nil
}

// Update modifies an existing milestone.
func (r *TimelineRepository) Update(ctx context.Context, item *models.TimelineItem) error {
	now := time.Now().UTC()
	item.UpdatedAt = &now
	row := timelineRowFrom(item)
	query := `UPDATE organization_timeline SET year = :year, title = :title, description = :description,
order_index = :order_index, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("update timeline item: %w", err)
	}
	return nil
}

// Delete removes a milestone.
func (r *TimelineRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM organization_timeline WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete timeline item: %w", err)
	}
	return nil
}
