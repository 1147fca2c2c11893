package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
)

type memberRepository interface {
	List(ctx context.Context) ([]models.MemberListItem, error)
	ListByStatus(ctx context.Context, status models.MemberStatus) ([]models.MemberListItem, error)
	ListByBatch(ctx context.Context, batch string) ([]models.MemberListItem, error)
	ListByDivision(ctx context.Context, division models.Division) ([]models.MemberListItem, error)
	ListPaginated(ctx context.Context, filter models.MemberFilter) ([]models.MemberListItem, int, error)
	FindByID(ctx context.Context, id string) (*models.Member, error)
	Search(ctx context.Context, query string) ([]models.MemberListItem, error)
	ExistsByNIM(ctx context.Context, nim, excludeID string) (bool, error)
	Create(ctx context.Context, member *models.Member) error
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id string) error
}

// batchPattern accepts cohort years such as "2022".
var batchPattern = regexp.MustCompile(`^\d{4}$`)

// CreateMemberRequest carries the writable fields of a member.
type CreateMemberRequest struct {
	Name         string              `json:"name" validate:"required"`
	NIM          string              `json:"nim" validate:"required"`
	Batch        string              `json:"batch" validate:"required"`
	Status       string              `json:"status" validate:"required"`
	Division     *string             `json:"division,omitempty"`
	Position     *string             `json:"position,omitempty"`
	Email        *string             `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string             `json:"phone,omitempty"`
	Photo        *string             `json:"photo,omitempty"`
	Bio          *string             `json:"bio,omitempty"`
	Interests    []string            `json:"interests,omitempty"`
	Achievements []string            `json:"achievements,omitempty"`
	SocialMedia  *models.SocialMedia `json:"socialMedia,omitempty"`
	JoinedAt     *time.Time          `json:"joinedAt,omitempty"`
	GraduatedAt  *time.Time          `json:"graduatedAt,omitempty"`
}

type UpdateMemberRequest struct {
	CreateMemberRequest
}

type MemberService struct {
	repo     memberRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewMemberService(repo memberRepository, logger *zap.Logger) *MemberService {
	return &MemberService{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *MemberService) GetAll(ctx context.Context) ([]models.MemberListItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *MemberService) GetByStatus(ctx context.Context, status string) ([]models.MemberListItem, error) {
	st := models.MemberStatus(status)
	if !st.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid member status: "+status)
	}
	items, err := s.repo.ListByStatus(ctx, st)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *MemberService) GetByBatch(ctx context.Context, batch string) ([]models.MemberListItem, error) {
	if !batchPattern.MatchString(batch) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid batch: "+batch)
	}
	items, err := s.repo.ListByBatch(ctx, batch)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *MemberService) GetByDivision(ctx context.Context, division string) ([]models.MemberListItem, error) {
	div := models.Division(division)
	if !div.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid division: "+division)
	}
	items, err := s.repo.ListByDivision(ctx, div)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *MemberService) GetPaginated(ctx context.Context, page, limit int, status, batch, division string) (*models.PaginatedResult[models.MemberListItem], error) {
	if err := validatePagination(page, limit); err != nil {
		return nil, err
	}
	filter := models.MemberFilter{Page: page, Limit: limit}
	if status != "" {
		st := models.MemberStatus(status)
		if !st.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid member status: "+status)
		}
		filter.Status = st
	}
	if batch != "" {
		if !batchPattern.MatchString(batch) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid batch: "+batch)
		}
		filter.Batch = batch
	}
	if division != "" {
		div := models.Division(division)
		if !div.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid division: "+division)
		}
		filter.Division = div
	}
	items, total, err := s.repo.ListPaginated(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	result := models.NewPaginatedResult(items, total, page, limit)
	return &result, nil
}

func (s *MemberService) GetByID(ctx context.Context, id string) (*models.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "member not found")
		}
		return nil, appErrors.Internal(err)
	}
	return member, nil
}

func (s *MemberService) Search(ctx context.Context, query string) ([]models.MemberListItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "search query is required")
	}
	items, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *MemberService) Create(ctx context.Context, req CreateMemberRequest) (*models.Member, error) {
	member, err := s.buildMember(req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByNIM(ctx, req.NIM, "")
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "member NIM already registered")
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, appErrors.Internal(err)
	}
	s.logger.Info("member created", zap.String("id", member.ID), zap.String("nim", member.NIM))
	return member, nil
}

func (s *MemberService) Update(ctx context.Context, id string, req UpdateMemberRequest) (*models.Member, error) {
	updated, err := s.buildMember(req.CreateMemberRequest)
	if err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByNIM(ctx, req.NIM, id)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "member NIM already registered")
	}

	updated.ID = existing.ID
	if req.JoinedAt == nil {
		updated.JoinedAt = existing.JoinedAt
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, appErrors.Internal(err)
	}
	s.logger.Info("member updated", zap.String("id", id))
	return updated, nil
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Internal(err)
	}
	s.logger.Info("member deleted", zap.String("id", id))
	return nil
}

func (s *MemberService) buildMember(req CreateMemberRequest) (*models.Member, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	st := models.MemberStatus(req.Status)
	if !st.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid member status: "+req.Status)
	}
	if !batchPattern.MatchString(req.Batch) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid batch: "+req.Batch)
	}
	var division *models.Division
	if req.Division != nil {
		div := models.Division(*req.Division)
		if !div.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid division: "+*req.Division)
		}
		division = &div
	}

	member := &models.Member{
		Name:         req.Name,
		NIM:          req.NIM,
		Batch:        req.Batch,
		Status:       st,
		Division:     division,
		Position:     req.Position,
		Email:        req.Email,
		Phone:        req.Phone,
		Photo:        req.Photo,
		Bio:          req.Bio,
		Interests:    req.Interests,
		Achievements: req.Achievements,
		SocialMedia:  req.SocialMedia,
		GraduatedAt:  req.GraduatedAt,
	}
	if req.JoinedAt != nil {
		member.JoinedAt = *req.JoinedAt
	}
	return member, nil
}
