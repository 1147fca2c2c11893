package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
)

type mockLeadershipRepo struct {
	records    map[string]models.Leadership
	items      []models.LeadershipListItem
	listTotal  int
	lastFilter models.LeadershipFilter
	lastPeriod string
}

func (m *mockLeadershipRepo) List(ctx context.Context) ([]models.LeadershipListItem, error) {
	return m.items, nil
}

func (m *mockLeadershipRepo) ListActive(ctx context.Context) ([]models.LeadershipListItem, error) {
	return m.items, nil
}

func (m *mockLeadershipRepo) ListCore(ctx context.Context) ([]models.LeadershipListItem, error) {
	return m.items, nil
}

func (m *mockLeadershipRepo) ListByDivision(ctx context.Context, division models.Division) ([]models.LeadershipListItem, error) {
	return m.items, nil
}

func (m *mockLeadershipRepo) ListByPosition(ctx context.Context, position models.LeadershipPosition) ([]models.LeadershipListItem, error) {
	return m.items, nil
}

func (m *mockLeadershipRepo) ListByPeriod(ctx context.Context, period string) ([]models.LeadershipListItem, error) {
	m.lastPeriod = period
	return m.items, nil
}

func (m *mockLeadershipRepo) ListPaginated(ctx context.Context, filter models.LeadershipFilter) ([]models.LeadershipListItem, int, error) {
	m.lastFilter = filter
	return m.items, m.listTotal, nil
}

func (m *mockLeadershipRepo) FindByID(ctx context.Context, id string) (*models.Leadership, error) {
	if record, ok := m.records[id]; ok {
		return &record, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockLeadershipRepo) Create(ctx context.Context, record *models.Leadership) error {
	if m.records == nil {
		m.records = make(map[string]models.Leadership)
	}
	if record.ID == "" {
		record.ID = "generated"
	}
	m.records[record.ID] = *record
	return nil
}

func (m *mockLeadershipRepo) Update(ctx context.Context, record *models.Leadership) error {
	m.records[record.ID] = *record
	return nil
}

func (m *mockLeadershipRepo) Delete(ctx context.Context, id string) error {
	delete(m.records, id)
	return nil
}

func TestLeadershipServiceGetByDivisionInvalid(t *testing.T) {
	svc := NewLeadershipService(&mockLeadershipRepo{}, zap.NewNop())

	_, err := svc.GetByDivision(context.Background(), "marketing")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestLeadershipServiceGetByPositionInvalid(t *testing.T) {
	svc := NewLeadershipService(&mockLeadershipRepo{}, zap.NewNop())

	_, err := svc.GetByPosition(context.Background(), "presiden")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestLeadershipServiceGetByPeriod(t *testing.T) {
	repo := &mockLeadershipRepo{items: []models.LeadershipListItem{{ID: "l1", Name: "Andi"}}}
	svc := NewLeadershipService(repo, zap.NewNop())

	items, err := svc.GetByPeriod(context.Background(), "2024-2025")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "2024-2025", repo.lastPeriod)

	_, err = svc.GetByPeriod(context.Background(), "periode-sekarang")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestLeadershipServiceCreate(t *testing.T) {
	repo := &mockLeadershipRepo{}
	svc := NewLeadershipService(repo, zap.NewNop())

	division := "academic"
	record, err := svc.Create(context.Background(), CreateLeadershipRequest{
		Name:        "Siti Rahma",
		Position:    "coordinator",
		Division:    &division,
		PeriodStart: "2024",
		PeriodEnd:   "2025",
		Active:      true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, models.Period{Start: "2024", End: "2025"}, record.Period)
	require.NotNil(t, record.Division)
	assert.Equal(t, models.DivisionAcademic, *record.Division)
}

func TestLeadershipServiceCreateDefaultsPeriodEnd(t *testing.T) {
	svc := NewLeadershipService(&mockLeadershipRepo{}, zap.NewNop())

	record, err := svc.Create(context.Background(), CreateLeadershipRequest{
		Name:        "Budi",
		Position:    "ketua",
		PeriodStart: "2024",
	})
	require.NoError(t, err)
	assert.Equal(t, models.Period{Start: "2024", End: "2024"}, record.Period)
}

func TestLeadershipServiceGetByIDNotFound(t *testing.T) {
	svc := NewLeadershipService(&mockLeadershipRepo{}, zap.NewNop())

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
