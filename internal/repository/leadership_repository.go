package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
)

const leadershipColumns = "id, name, position, division, period, email, phone, avatar_url, nim, batch, bio, instagram, linkedin, display_order, is_active, created_at, updated_at"

// leadershipRow mirrors the leadership table. The period column stores the
// tenure as a "START-END" string and social links are stored flat.
type leadershipRow struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	Position     string     `db:"position"`
	Division     *string    `db:"division"`
	Period       string     `db:"period"`
	Email        *string    `db:"email"`
	Phone        *string    `db:"phone"`
	AvatarURL    *string    `db:"avatar_url"`
	NIM          *string    `db:"nim"`
	Batch        *string    `db:"batch"`
	Bio          *string    `db:"bio"`
	Instagram    *string    `db:"instagram"`
	LinkedIn     *string    `db:"linkedin"`
	DisplayOrder int        `db:"display_order"`
	IsActive     bool       `db:"is_active"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

func (r leadershipRow) leadership(defaults ContentDefaults) models.Leadership {
	return models.Leadership{
		ID:          r.ID,
		Name:        r.Name,
		Position:    models.LeadershipPosition(r.Position),
		Division:    divisionPtr(r.Division),
		Period:      parsePeriod(r.Period),
		Email:       optionalString(r.Email),
		Phone:       optionalString(r.Phone),
		Photo:       stringOr(r.AvatarURL, defaults.AvatarURL),
		NIM:         optionalString(r.NIM),
		Batch:       optionalString(r.Batch),
		Bio:         optionalString(r.Bio),
		SocialMedia: socialMedia(r.Instagram, r.LinkedIn),
		Order:       r.DisplayOrder,
		Active:      r.IsActive,
	}
}

func (r leadershipRow) listItem(defaults ContentDefaults) models.LeadershipListItem {
	return models.LeadershipListItem{
		ID:       r.ID,
		Name:     r.Name,
		Position: models.LeadershipPosition(r.Position),
		Division: divisionPtr(r.Division),
		Period:   parsePeriod(r.Period),
		Email:    optionalString(r.Email),
		Photo:    stringOr(r.AvatarURL, defaults.AvatarURL),
		Order:    r.DisplayOrder,
	}
}

// leadershipRowFrom folds a domain leadership record back to storage shape.
func leadershipRowFrom(l *models.Leadership) leadershipRow {
	var division *string
	if l.Division != nil {
		d := string(*l.Division)
		division = &d
	}
	var instagram, linkedin *string
	if l.SocialMedia != nil {
		instagram = l.SocialMedia.Instagram
		linkedin = l.SocialMedia.LinkedIn
	}
	return leadershipRow{
		ID:           l.ID,
		Name:         l.Name,
		Position:     string(l.Position),
		Division:     division,
		Period:       encodePeriod(l.Period),
		Email:        l.Email,
		Phone:        l.Phone,
		AvatarURL:    nullableString(l.Photo),
		NIM:          l.NIM,
		Batch:        l.Batch,
		Bio:          l.Bio,
		Instagram:    instagram,
		LinkedIn:     linkedin,
		DisplayOrder: l.Order,
		IsActive:     l.Active,
	}
}

func (r *LeadershipRepository) listItems(rows []leadershipRow) []models.LeadershipListItem {
	items := make([]models.LeadershipListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.listItem(r.defaults))
	}
	return items
}

// LeadershipRepository manages persistence for the leadership roster.
type LeadershipRepository struct {
	db       *sqlx.DB
	defaults ContentDefaults
}

// NewLeadershipRepository constructs a LeadershipRepository.
func NewLeadershipRepository(db *sqlx.DB, defaults ContentDefaults) *LeadershipRepository {
	return &LeadershipRepository{db: db, defaults: defaults}
}

// List returns all leadership records in display order.
func (r *LeadershipRepository) List(ctx context.Context) ([]models.LeadershipListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM leadership ORDER BY display_order ASC", leadershipColumns)
	var rows []leadershipRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list leadership: %w", err)
	}
	return r.listItems(rows), nil
}

// ListActive returns the currently serving board in display order.
func (r *LeadershipRepository) ListActive(ctx context.Context) ([]models.LeadershipListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM leadership WHERE is_active = TRUE ORDER BY display_order ASC", leadershipColumns)
	var rows []leadershipRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list active leadership: %w", err)
	}
	return r.listItems(rows), nil
}

// ListCore returns the executive board positions in display order.
func (r *LeadershipRepository) ListCore(ctx context.Context) ([]models.LeadershipListItem, error) {
	positions := make([]string, 0, len(models.CorePositions))
	for _, p := range models.CorePositions {
		positions = append(positions, string(p))
	}
	query := fmt.Sprintf("SELECT %s FROM leadership WHERE is_active = TRUE AND position = ANY($1) ORDER BY display_order ASC", leadershipColumns)
	var rows []leadershipRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(positions)); err != nil {
		return nil, fmt.Errorf("list core leadership: %w", err)
	}
	return r.listItems(rows), nil
}

// ListByDivision returns active leadership within one division.
func (r *LeadershipRepository) ListByDivision(ctx context.Context, division models.Division) ([]models.LeadershipListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM leadership WHERE division = $1 AND is_active = TRUE ORDER BY display_order ASC", leadershipColumns)
	var rows []leadershipRow
	if err := r.db.SelectContext(ctx, &rows, query, string(division)); err != nil {
		return nil, fmt.Errorf("list leadership by division: %w", err)
	}
	return r.listItems(rows), nil
}

// ListByPosition returns active leadership holding one position.
func (r *LeadershipRepository) ListByPosition(ctx context.Context, position models.LeadershipPosition) ([]models.LeadershipListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM leadership WHERE position = $1 AND is_active = TRUE ORDER BY display_order ASC", leadershipColumns)
	var rows []leadershipRow
	if err := r.db.SelectContext(ctx, &rows, query, string(position)); err != nil {
		return nil, fmt.Errorf("list leadership by position: %w", err)
	}
	return r.listItems(rows), nil
}

// ListByPeriod returns leadership serving in a tenure period.
func (r *LeadershipRepository) ListByPeriod(ctx context.Context, period string) ([]models.LeadershipListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM leadership WHERE period = $1 ORDER BY display_order ASC", leadershipColumns)
	var rows []leadershipRow
	if err := r.db.SelectContext(ctx, &rows, query, period); err != nil {
		return nil, fmt.Errorf("list leadership by period: %w", err)
	}
	return r.listItems(rows), nil
}

// ListPaginated returns one page of leadership plus the total matching count.
func (r *LeadershipRepository) ListPaginated(ctx context.Context, filter models.LeadershipFilter) ([]models.LeadershipListItem, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	if filter.Division != "" {
		conditions = append(conditions, fmt.Sprintf("division = $%d", len(args)+1))
		args = append(args, string(filter.Division))
	}
	if filter.Position != "" {
		conditions = append(conditions, fmt.Sprintf("position = $%d", len(args)+1))
		args = append(args, string(filter.Position))
	}
	if filter.Period != "" {
		conditions = append(conditions, fmt.Sprintf("period = $%d", len(args)+1))
		args = append(args, filter.Period)
	}
	whereClause := strings.Join(conditions, " AND ")

	offset := models.PageOffset(filter.Page, filter.Limit)
	query := fmt.Sprintf("SELECT %s FROM leadership WHERE %s ORDER BY display_order ASC LIMIT %d OFFSET %d",
		leadershipColumns, whereClause, filter.Limit, offset)
	var rows []leadershipRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list leadership paginated: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM leadership WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count leadership: %w", err)
	}
	return r.listItems(rows), total, nil
}

// FindByID fetches a full leadership record. sql.ErrNoRows passes through.
func (r *LeadershipRepository) FindByID(ctx context.Context, id string) (*models.Leadership, error) {
	query := fmt.Sprintf("SELECT %s FROM leadership WHERE id = $1", leadershipColumns)
	var row leadershipRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	record := row.leadership(r.defaults)
	return &record, nil
}

// Create inserts a new leadership record.
func (r *LeadershipRepository) Create(ctx context.Context, record *models.Leadership) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	row := leadershipRowFrom(record)
	row.CreatedAt = time.Now().UTC()
	query := `INSERT INTO leadership (id, name, position, division, period, email, phone, avatar_url, nim, batch, bio, instagram, linkedin, display_order, is_active, created_at)
VALUES (:id, :name, :position, :division, :period, :email, :phone, :avatar_url, :nim, :batch, :bio, :instagram, :linkedin, :display_order, :is_active, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("create leadership: %w", err)
	}
	return nil
}

// Update modifies an existing leadership record.
func (r *LeadershipRepository) Update(ctx context.Context, record *models.Leadership) error {
	row := leadershipRowFrom(record)
	now := time.Now().UTC()
	row.UpdatedAt = &now
	query := `UPDATE leadership SET name = :name, position = :position, division = :division, period = :period,
email = :email, phone = :phone, avatar_url = :avatar_url, nim = :nim, batch = :batch, bio = :bio,
instagram = :instagram, linkedin = :linkedin, display_order = :display_order, is_active = :is_active, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("update leadership: %w", err)
	}
	return nil
}

// Delete removes a leadership record.
func (r *LeadershipRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM leadership WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete leadership: %w", err)
	}
	return nil
}
