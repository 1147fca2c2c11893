package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
)

func eventMockRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "slug", "description", "category", "status", "start_date", "end_date", "location", "cover_image", "featured"}).
		AddRow("ev-1", "Seminar", "seminar", "Deskripsi", "seminar", "upcoming", time.Now(), time.Now().Add(4*time.Hour), "Main Hall", "/covers/e.jpg", false)
}

func TestEventRepositoryListByStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db, ContentDefaults{})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + eventListColumns + " FROM events WHERE status = $1 ORDER BY start_date DESC")).
		WithArgs("upcoming").
		WillReturnRows(eventMockRows())

	items, err := repo.ListByStatus(context.Background(), models.EventStatusUpcoming)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Main Hall", items[0].Location.Name)
	assert.Equal(t, "", items[0].Location.Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListByDateRange(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db, ContentDefaults{})

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + eventListColumns + " FROM events WHERE start_date >= $1 AND start_date <= $2 ORDER BY start_date ASC")).
		WithArgs(start, end).
		WillReturnRows(eventMockRows())

	items, err := repo.ListByDateRange(context.Background(), start, end)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListUpcoming(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db, ContentDefaults{})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + eventListColumns + " FROM events WHERE status = $1 AND start_date >= NOW() ORDER BY start_date ASC LIMIT 3")).
		WithArgs("upcoming").
		WillReturnRows(eventMockRows())

	items, err := repo.ListUpcoming(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryFindBySlugDecodesJSONLocation(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db, ContentDefaults{OrganizerName: "HMJF UIN Alauddin"})

	rows := sqlmock.NewRows([]string{"id", "title", "slug", "description", "content", "category", "status", "start_date", "end_date", "location", "cover_image", "images", "organizer_name", "organizer_contact", "registration_url", "registration_deadline", "max_participants", "current_participants", "tags", "featured", "created_at", "updated_at"}).
		AddRow("ev-1", "Seminar", "seminar", "Deskripsi", "Isi", "seminar", "upcoming", time.Now(), time.Now(), `{"name":"Hall A","address":"Block 3"}`, "/covers/e.jpg", nil, nil, nil, nil, nil, nil, nil, "{}", false, time.Now(), nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + eventFullColumns + " FROM events WHERE slug = $1")).
		WithArgs("seminar").
		WillReturnRows(rows)

	event, err := repo.FindBySlug(context.Background(), "seminar")
	require.NoError(t, err)
	assert.Equal(t, "Hall A", event.Location.Name)
	assert.Equal(t, "Block 3", event.Location.Address)
	assert.Equal(t, "HMJF UIN Alauddin", event.Organizer.Name)
	assert.Nil(t, event.MaxParticipants)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryFindBySlugNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db, ContentDefaults{})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + eventFullColumns + " FROM events WHERE slug = $1")).
		WithArgs("missing-slug").
		WillReturnError(sql.ErrNoRows)

	event, err := repo.FindBySlug(context.Background(), "missing-slug")
	assert.Nil(t, event)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
