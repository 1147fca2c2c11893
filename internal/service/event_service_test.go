package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
)

type mockEventRepo struct {
	events     map[string]models.Event
	bySlug     map[string]string
	items      []models.EventListItem
	listTotal  int
	lastFilter models.EventFilter
	rangeStart time.Time
	rangeEnd   time.Time
}

func (m *mockEventRepo) List(ctx context.Context) ([]models.EventListItem, error) {
	return m.items, nil
}

func (m *mockEventRepo) ListByStatus(ctx context.Context, status models.EventStatus) ([]models.EventListItem, error) {
	return m.items, nil
}

func (m *mockEventRepo) ListByCategory(ctx context.Context, category models.EventCategory) ([]models.EventListItem, error) {
	return m.items, nil
}

func (m *mockEventRepo) ListPaginated(ctx context.Context, filter models.EventFilter) ([]models.EventListItem, int, error) {
	m.lastFilter = filter
	return m.items, m.listTotal, nil
}

func (m *mockEventRepo) ListUpcoming(ctx context.Context, limit int) ([]models.EventListItem, error) {
	return m.items, nil
}

func (m *mockEventRepo) ListFeatured(ctx context.Context, limit int) ([]models.EventListItem, error) {
	return m.items, nil
}

func (m *mockEventRepo) ListRecent(ctx context.Context, limit int) ([]models.EventListItem, error) {
	return m.items, nil
}

func (m *mockEventRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.EventListItem, error) {
	m.rangeStart = start
	m.rangeEnd = end
	return m.items, nil
}

func (m *mockEventRepo) FindBySlug(ctx context.Context, slug string) (*models.Event, error) {
	if id, ok := m.bySlug[slug]; ok {
		event := m.events[id]
		return &event, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*models.Event, error) {
	if event, ok := m.events[id]; ok {
		return &event, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockEventRepo) ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error) {
	if id, ok := m.bySlug[slug]; ok {
		if excludeID == "" || id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	if m.events == nil {
		m.events = make(map[string]models.Event)
	}
	if m.bySlug == nil {
		m.bySlug = make(map[string]string)
	}
	if event.ID == "" {
		event.ID = "generated"
	}
	m.events[event.ID] = *event
	m.bySlug[event.Slug] = event.ID
	return nil
}

func (m *mockEventRepo) Update(ctx context.Context, event *models.Event) error {
	m.events[event.ID] = *event
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	delete(m.events, id)
	return nil
}

func TestEventServiceGetByStatusInvalid(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, &mockCache{}, time.Minute, zap.NewNop())

	_, err := svc.GetByStatus(context.Background(), "postponed")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestEventServiceGetPaginatedFilters(t *testing.T) {
	repo := &mockEventRepo{listTotal: 7}
	svc := NewEventService(repo, &mockCache{}, time.Minute, zap.NewNop())

	result, err := svc.GetPaginated(context.Background(), 1, 12, "seminar", "upcoming")
	require.NoError(t, err)
	assert.Equal(t, 7, result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, models.EventCategorySeminar, repo.lastFilter.Category)
	assert.Equal(t, models.EventStatusUpcoming, repo.lastFilter.Status)
}

func TestEventServiceGetByDateRangeRejectsInverted(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, &mockCache{}, time.Minute, zap.NewNop())

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)
	_, err := svc.GetByDateRange(context.Background(), start, end)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestEventServiceGetUpcomingCaches(t *testing.T) {
	repo := &mockEventRepo{items: []models.EventListItem{{ID: "e1", Title: "Seminar Nasional"}}}
	cache := &mockCache{}
	svc := NewEventService(repo, cache, time.Minute, zap.NewNop())

	items, hit, err := svc.GetUpcoming(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Len(t, items, 1)

	_, hit, err = svc.GetUpcoming(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestEventServiceCreateValidatesDates(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, &mockCache{}, time.Minute, zap.NewNop())

	start := time.Date(2025, 9, 10, 8, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), CreateEventRequest{
		Title:        "Workshop Jurnal",
		Slug:         "workshop-jurnal",
		Description:  "Pelatihan penulisan",
		Category:     "workshop",
		Status:       "upcoming",
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, -1),
		LocationName: "Aula Fakultas",
		CoverImage:   "/images/workshop.jpg",
	})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestEventServiceCreateAndInvalidateCache(t *testing.T) {
	repo := &mockEventRepo{}
	cache := &mockCache{}
	svc := NewEventService(repo, cache, time.Minute, zap.NewNop())

	start := time.Date(2025, 9, 10, 8, 0, 0, 0, time.UTC)
	event, err := svc.Create(context.Background(), CreateEventRequest{
		Title:        "Workshop Jurnal",
		Slug:         "workshop-jurnal",
		Description:  "Pelatihan penulisan",
		Category:     "workshop",
		Status:       "upcoming",
		StartDate:    start,
		EndDate:      start.Add(8 * time.Hour),
		LocationName: "Aula Fakultas",
		CoverImage:   "/images/workshop.jpg",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Contains(t, cache.deleted, "events:*")
}
