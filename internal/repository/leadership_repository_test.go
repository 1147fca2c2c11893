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

func leadershipMockRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "position", "division", "period", "email", "phone", "avatar_url", "nim", "batch", "bio", "instagram", "linkedin", "display_order", "is_active", "created_at", "updated_at"}).
		AddRow("ld-1", "Rina", "ketua", nil, "2024-2025", nil, nil, nil, nil, nil, nil, nil, nil, 1, true, time.Now(), nil)
}

func TestLeadershipRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLeadershipRepository(db, ContentDefaults{AvatarURL: "/images/default-avatar.png"})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + leadershipColumns + " FROM leadership ORDER BY display_order ASC")).
		WillReturnRows(leadershipMockRows())

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.PositionKetua, items[0].Position)
	assert.Equal(t, "2024", items[0].Period.Start)
	assert.Equal(t, "2025", items[0].Period.End)
	assert.Equal(t, "/images/default-avatar.png", items[0].Photo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadershipRepositoryListCore(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLeadershipRepository(db, ContentDefaults{})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + leadershipColumns + " FROM leadership WHERE is_active = TRUE AND position = ANY($1) ORDER BY display_order ASC")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(leadershipMockRows())

	items, err := repo.ListCore(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadershipRepositoryListByDivision(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLeadershipRepository(db, ContentDefaults{})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + leadershipColumns + " FROM leadership WHERE division = $1 AND is_active = TRUE ORDER BY display_order ASC")).
		WithArgs("academic").
		WillReturnRows(leadershipMockRows())

	items, err := repo.ListByDivision(context.Background(), models.DivisionAcademic)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadershipRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLeadershipRepository(db, ContentDefaults{})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + leadershipColumns + " FROM leadership WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	record, err := repo.FindByID(context.Background(), "missing")
	assert.Nil(t, record)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
