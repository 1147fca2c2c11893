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

const memberColumns = "id, name, nim, batch, status, division, position, email, phone, avatar_url, bio, interests, achievements, instagram, linkedin, joined_at, graduated_at, created_at, updated_at"

// memberRow mirrors the members table.
type memberRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	NIM          string         `db:"nim"`
	Batch        string         `db:"batch"`
	Status       string         `db:"status"`
	Division     *string        `db:"division"`
	Position     *string        `db:"position"`
	Email        *string        `db:"email"`
	Phone        *string        `db:"phone"`
	AvatarURL    *string        `db:"avatar_url"`
	Bio          *string        `db:"bio"`
	Interests    pq.StringArray `db:"interests"`
	Achievements pq.StringArray `db:"achievements"`
	Instagram    *string        `db:"instagram"`
	LinkedIn     *string        `db:"linkedin"`
	JoinedAt     time.Time      `db:"joined_at"`
	GraduatedAt  *time.Time     `db:"graduated_at"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    *time.Time     `db:"updated_at"`
}

func (r memberRow) member() models.Member {
	var interests, achievements []string
	if len(r.Interests) > 0 {
		interests = append([]string{}, r.Interests...)
	}
	if len(r.Achievements) > 0 {
		achievements = append([]string{}, r.Achievements...)
	}
	return models.Member{
		ID:           r.ID,
		Name:         r.Name,
		NIM:          r.NIM,
		Batch:        r.Batch,
		Status:       models.MemberStatus(r.Status),
		Division:     divisionPtr(r.Division),
		Position:     optionalString(r.Position),
		Email:        optionalString(r.Email),
		Phone:        optionalString(r.Phone),
		Photo:        optionalString(r.AvatarURL),
		Bio:          optionalString(r.Bio),
		Interests:    interests,
		Achievements: achievements,
		SocialMedia:  socialMedia(r.Instagram, r.LinkedIn),
		JoinedAt:     r.JoinedAt,
		GraduatedAt:  r.GraduatedAt,
	}
}

func (r memberRow) listItem() models.MemberListItem {
	return models.MemberListItem{
		ID:       r.ID,
		Name:     r.Name,
		NIM:      r.NIM,
		Batch:    r.Batch,
		Status:   models.MemberStatus(r.Status),
		Division: divisionPtr(r.Division),
		Position: optionalString(r.Position),
		Photo:    optionalString(r.AvatarURL),
	}
}

// memberRowFrom folds a domain member back into its storage shape.
func memberRowFrom(m *models.Member) memberRow {
	var division *string
	if m.Division != nil {
		d := string(*m.Division)
		division = &d
	}
	var instagram, linkedin *string
	if m.SocialMedia != nil {
		instagram = m.SocialMedia.Instagram
		linkedin = m.SocialMedia.LinkedIn
	}
	return memberRow{
		ID:           m.ID,
		Name:         m.Name,
		NIM:          m.NIM,
		Batch:        m.Batch,
		Status:       string(m.Status),
		Division:     division,
		Position:     m.Position,
		Email:        m.Email,
		Phone:        m.Phone,
		AvatarURL:    m.Photo,
		Bio:          m.Bio,
		Interests:    pq.StringArray(m.Interests),
		Achievements: pq.StringArray(m.Achievements),
		Instagram:    instagram,
		LinkedIn:     linkedin,
		JoinedAt:     m.JoinedAt,
		GraduatedAt:  m.GraduatedAt,
	}
}

func memberListItems(rows []memberRow) []models.MemberListItem {
	items := make([]models.MemberListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.listItem())
	}
	return items
}

// MemberRepository manages persistence for organization members.
type MemberRepository struct {
	db *sqlx.DB
}

// NewMemberRepository constructs a MemberRepository.
func NewMemberRepository(db *sqlx.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// List returns all members ordered by name.
func (r *MemberRepository) List(ctx context.Context) ([]models.MemberListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM members ORDER BY name ASC", memberColumns)
	var rows []memberRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return memberListItems(rows), nil
}

// ListByStatus returns members with one membership standing, by name.
func (r *MemberRepository) ListByStatus(ctx context.Context, status models.MemberStatus) ([]models.MemberListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM members WHERE status = $1 ORDER BY name ASC", memberColumns)
	var rows []memberRow
	if err := r.db.SelectContext(ctx, &rows, query, string(status)); err != nil {
		return nil, fmt.Errorf("list members by status: %w", err)
	}
	return memberListItems(rows), nil
}

// ListByBatch returns members of one entry-year batch, by name.
func (r *MemberRepository) ListByBatch(ctx context.Context, batch string) ([]models.MemberListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM members WHERE batch = $1 ORDER BY name ASC", memberColumns)
	var rows []memberRow
	if err := r.db.SelectContext(ctx, &rows, query, batch); err != nil {
		return nil, fmt.Errorf("list members by batch: %w", err)
	}
	return memberListItems(rows), nil
}

// ListByDivision returns members assigned to one division, by name.
func (r *MemberRepository) ListByDivision(ctx context.Context, division models.Division) ([]models.MemberListItem, error) {
	query := fmt.Sprintf("SELECT %s FROM members WHERE division = $1 ORDER BY name ASC", memberColumns)
	var rows []memberRow
	if err := r.db.SelectContext(ctx, &rows, query, string(division)); err != nil {
		return nil, fmt.Errorf("list members by division: %w", err)
	}
	return memberListItems(rows), nil
}

// ListPaginated returns one page of members plus the total matching count.
func (r *MemberRepository) ListPaginated(ctx context.Context, filter models.MemberFilter) ([]models.MemberListItem, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, string(filter.Status))
	}
	if filter.Batch != "" {
		conditions = append(conditions, fmt.Sprintf("batch = $%d", len(args)+1))
		args = append(args, filter.Batch)
	}
	if filter.Division != "" {
		conditions = append(conditions, fmt.Sprintf("division = $%d", len(args)+1))
		args = append(args, string(filter.Division))
	}
	whereClause := strings.Join(conditions, " AND ")

	offset := models.PageOffset(filter.Page, filter.Limit)
	query := fmt.Sprintf("SELECT %s FROM members WHERE %s ORDER BY name ASC LIMIT %d OFFSET %d",
		memberColumns, whereClause, filter.Limit, offset)
	var rows []memberRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list members paginated: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM members WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count members: %w", err)
	}
	return memberListItems(rows), total, nil
}

// FindByID fetches a full member record. sql.ErrNoRows passes through.
func (r *MemberRepository) FindByID(ctx context.Context, id string) (*models.Member, error) {
	query := fmt.Sprintf("SELECT %s FROM members WHERE id = $1", memberColumns)
	var row memberRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	member := row.member()
	return &member, nil
}

// Search matches the query case-insensitively against name and NIM.
func (r *MemberRepository) Search(ctx context.Context, query string) ([]models.MemberListItem, error) {
	sqlQuery := fmt.Sprintf("SELECT %s FROM members WHERE (LOWER(name) LIKE $1 OR LOWER(nim) LIKE $1) ORDER BY name ASC", memberColumns)
	pattern := "%" + strings.ToLower(query) + "%"
	var rows []memberRow
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, pattern); err != nil {
		return nil, fmt.Errorf("search members: %w", err)
	}
	return memberListItems(rows), nil
}

// ExistsByNIM checks NIM uniqueness, optionally excluding a member ID.
func (r *MemberRepository) ExistsByNIM(ctx context.Context, nim, excludeID string) (bool, error) {
	query := "SELECT 1 FROM members WHERE nim = $1"
	args := []interface{}{nim}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check member nim: %w", err)
	}
	return true, nil
}

// Create inserts a new member.
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now().UTC()
	}
	row := memberRowFrom(member)
	row.CreatedAt = time.Now().UTC()
	query := `INSERT INTO members (id, name, nim, batch, status, division, position, email, phone, avatar_url, bio, interests, achievements, instagram, linkedin, joined_at, graduated_at, created_at)
VALUES (:id, :name, :nim, :batch, :status, :division, :position, :email, :phone, :avatar_url, :bio, :interests, :achievements, :instagram, :linkedin, :joined_at, :graduated_at, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

// Update modifies an existing member.
func (r *MemberRepository) Update(ctx context.Context, member *models.Member) error {
	row := memberRowFrom(member)
	now := time.Now().UTC()
	row.UpdatedAt = &now
	query := `UPDATE members SET name = :name, nim = :nim, batch = :batch, status = :status, division = :division,
position = :position, email = :email, phone = :phone, avatar_url = :avatar_url, bio = :bio, interests = :interests,
achievements = :achievements, instagram = :instagram, linkedin = :linkedin, joined_at = :joined_at,
graduated_at = :graduated_at, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

// Delete removes a member.
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM members WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}
