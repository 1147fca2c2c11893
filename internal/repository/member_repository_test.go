package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
)

func memberMockRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "nim", "batch", "status", "division", "position", "email", "phone", "avatar_url", "bio", "interests", "achievements", "instagram", "linkedin", "joined_at", "graduated_at", "created_at", "updated_at"}).
		AddRow("mb-1", "Andi", "70100123001", "2023", "active", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, time.Now(), nil, time.Now(), nil)
}

func TestMemberRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewMemberRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + memberColumns + " FROM members ORDER BY name ASC")).
		WillReturnRows(memberMockRows())

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.MemberStatusActive, items[0].Status)
	assert.Nil(t, items[0].Division)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepositoryListPaginated(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewMemberRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + memberColumns + " FROM members WHERE 1=1 AND status = $1 ORDER BY name ASC LIMIT 20 OFFSET 0")).
		WithArgs("alumni").
		WillReturnRows(memberMockRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM members WHERE 1=1 AND status = $1")).
		WithArgs("alumni").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	items, total, err := repo.ListPaginated(context.Background(), models.MemberFilter{Status: models.MemberStatusAlumni, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepositorySearch(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewMemberRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + memberColumns + " FROM members WHERE (LOWER(name) LIKE $1 OR LOWER(nim) LIKE $1) ORDER BY name ASC")).
		WithArgs("%andi%").
		WillReturnRows(memberMockRows())

	items, err := repo.Search(context.Background(), "Andi")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewMemberRepository(db)

	mock.ExpectExec("INSERT INTO members").
		WillReturnResult(sqlmock.NewResult(1, 1))

	member := &models.Member{Name: "Andi", NIM: "70100123001", Batch: "2023", Status: models.MemberStatusActive}
	err := repo.Create(context.Background(), member)
	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
