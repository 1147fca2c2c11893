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

type mockMemberRepo struct {
	members    map[string]models.Member
	byNIM      map[string]string
	items      []models.MemberListItem
	listTotal  int
	lastFilter models.MemberFilter
}

func (m *mockMemberRepo) List(ctx context.Context) ([]models.MemberListItem, error) {
	return m.items, nil
}

func (m *mockMemberRepo) ListByStatus(ctx context.Context, status models.MemberStatus) ([]models.MemberListItem, error) {
	return m.items, nil
}

func (m *mockMemberRepo) ListByBatch(ctx context.Context, batch string) ([]models.MemberListItem, error) {
	return m.items, nil
}

func (m *mockMemberRepo) ListByDivision(ctx context.Context, division models.Division) ([]models.MemberListItem, error) {
	return m.items, nil
}

func (m *mockMemberRepo) ListPaginated(ctx context.Context, filter models.MemberFilter) ([]models.MemberListItem, int, error) {
	m.lastFilter = filter
	return m.items, m.listTotal, nil
}

func (m *mockMemberRepo) FindByID(ctx context.Context, id string) (*models.Member, error) {
	if member, ok := m.members[id]; ok {
		return &member, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockMemberRepo) Search(ctx context.Context, query string) ([]models.MemberListItem, error) {
	return m.items, nil
}

func (m *mockMemberRepo) ExistsByNIM(ctx context.Context, nim, excludeID string) (bool, error) {
	if id, ok := m.byNIM[nim]; ok {
		if excludeID == "" || id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockMemberRepo) Create(ctx context.Context, member *models.Member) error {
	if m.members == nil {
		m.members = make(map[string]models.Member)
	}
	if m.byNIM == nil {
		m.byNIM = make(map[string]string)
	}
	if member.ID == "" {
		member.ID = "generated"
	}
	m.members[member.ID] = *member
	m.byNIM[member.NIM] = member.ID
	return nil
}

func (m *mockMemberRepo) Update(ctx context.Context, member *models.Member) error {
	m.members[member.ID] = *member
	return nil
}

func (m *mockMemberRepo) Delete(ctx context.Context, id string) error {
	delete(m.members, id)
	return nil
}

func TestMemberServiceGetByStatusInvalid(t *testing.T) {
	svc := NewMemberService(&mockMemberRepo{}, zap.NewNop())

	_, err := svc.GetByStatus(context.Background(), "suspended")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestMemberServiceGetByBatchInvalid(t *testing.T) {
	svc := NewMemberService(&mockMemberRepo{}, zap.NewNop())

	_, err := svc.GetByBatch(context.Background(), "angkatan-22")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestMemberServiceGetPaginatedFilters(t *testing.T) {
	repo := &mockMemberRepo{listTotal: 40}
	svc := NewMemberService(repo, zap.NewNop())

	result, err := svc.GetPaginated(context.Background(), 2, 20, "alumni", "2020", "academic")
	require.NoError(t, err)
	assert.Equal(t, 40, result.TotalCount)
	assert.Equal(t, 2, result.TotalPages)
	assert.False(t, result.HasNextPage)
	assert.Equal(t, models.MemberStatusAlumni, repo.lastFilter.Status)
	assert.Equal(t, "2020", repo.lastFilter.Batch)
	assert.Equal(t, models.DivisionAcademic, repo.lastFilter.Division)
}

func TestMemberServiceGetPaginatedInvalidDivision(t *testing.T) {
	svc := NewMemberService(&mockMemberRepo{}, zap.NewNop())

	_, err := svc.GetPaginated(context.Background(), 1, 20, "", "", "marketing")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestMemberServiceCreate(t *testing.T) {
	repo := &mockMemberRepo{}
	svc := NewMemberService(repo, zap.NewNop())

	member, err := svc.Create(context.Background(), CreateMemberRequest{
		Name:   "Andi Saputra",
		NIM:    "60900122001",
		Batch:  "2022",
		Status: "active",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, models.MemberStatusActive, member.Status)
}

func TestMemberServiceCreateDuplicateNIM(t *testing.T) {
	repo := &mockMemberRepo{byNIM: map[string]string{"60900122001": "existing"}}
	svc := NewMemberService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateMemberRequest{
		Name:   "Andi Saputra",
		NIM:    "60900122001",
		Batch:  "2022",
		Status: "active",
	})
	assert.ErrorIs(t, err, appErrors.ErrConflict)
}

func TestMemberServiceGetByIDNotFound(t *testing.T) {
	svc := NewMemberService(&mockMemberRepo{}, zap.NewNop())

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
