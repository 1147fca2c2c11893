package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
)

type leadershipRepository interface {
	List(ctx context.Context) ([]models.LeadershipListItem, error)
	ListActive(ctx context.Context) ([]models.LeadershipListItem, error)
	ListCore(ctx context.Context) ([]models.LeadershipListItem, error)
	ListByDivision(ctx context.Context, division models.Division) ([]models.LeadershipListItem, error)
	ListByPosition(ctx context.Context, position models.LeadershipPosition) ([]models.LeadershipListItem, error)
	ListByPeriod(ctx context.Context, period string) ([]models.LeadershipListItem, error)
	ListPaginated(ctx context.Context, filter models.LeadershipFilter) ([]models.LeadershipListItem, int, error)
	FindByID(ctx context.Context, id string) (*models.Leadership, error)
	Create(ctx context.Context, record *models.Leadership) error
	Update(ctx context.Context, record *models.Leadership) error
	Delete(ctx context.Context, id string) error
}

// periodPattern accepts a four digit start year, optionally followed by a
// dash and an end year, e.g. "2024" or "2024-2025".
var periodPattern = regexp.MustCompile(`^\d{4}(-\d{4})?$`)

// CreateLeadershipRequest carries the writable fields of a board member.
type CreateLeadershipRequest struct {
	Name        string              `json:"name" validate:"required"`
	Position    string              `json:"position" validate:"required"`
	Division    *string             `json:"division,omitempty"`
	PeriodStart string              `json:"periodStart" validate:"required"`
	PeriodEnd   string              `json:"periodEnd"`
	Email       *string             `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string             `json:"phone,omitempty"`
	Photo       string              `json:"photo"`
	NIM         *string             `json:"nim,omitempty"`
	Batch       *string             `json:"batch,omitempty"`
	Bio         *string             `json:"bio,omitempty"`
	SocialMedia *models.SocialMedia `json:"socialMedia,omitempty"`
	Order       int                 `json:"order"`
	Active      bool                `json:"active"`
}

type UpdateLeadershipRequest struct {
	CreateLeadershipRequest
}

type LeadershipService struct {
	repo     leadershipRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewLeadershipService(repo leadershipRepository, logger *zap.Logger) *LeadershipService {
	return &LeadershipService{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *LeadershipService) GetAll(ctx context.Context) ([]models.LeadershipListItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

// GetCurrent returns the board of the active period.
func (s *LeadershipService) GetCurrent(ctx context.Context) ([]models.LeadershipListItem, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

// GetCore returns the executive board roles only.
func (s *LeadershipService) GetCore(ctx context.Context) ([]models.LeadershipListItem, error) {
	items, err := s.repo.ListCore(ctx)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *LeadershipService) GetByDivision(ctx context.Context, division string) ([]models.LeadershipListItem, error) {
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

func (s *LeadershipService) GetByPosition(ctx context.Context, position string) ([]models.LeadershipListItem, error) {
	pos := models.LeadershipPosition(position)
	if !pos.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid position: "+position)
	}
	items, err := s.repo.ListByPosition(ctx, pos)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *LeadershipService) GetByPeriod(ctx context.Context, period string) ([]models.LeadershipListItem, error) {
	if !periodPattern.MatchString(period) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid period: "+period)
	}
	items, err := s.repo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *LeadershipService) GetPaginated(ctx context.Context, page, limit int, division, position, period string) (*models.PaginatedResult[models.LeadershipListItem], error) {
	if err := validatePagination(page, limit); err != nil {
		return nil, err
	}
	filter := models.LeadershipFilter{Page: page, Limit: limit}
	if division != "" {
		div := models.Division(division)
		if !div.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid division: "+division)
		}
		filter.Division = div
	}
	if position != "" {
		pos := models.LeadershipPosition(position)
		if !pos.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid position: "+position)
		}
		filter.Position = pos
	}
	if period != "" {
		if !periodPattern.MatchString(period) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid period: "+period)
		}
		filter.Period = period
	}
	items, total, err := s.repo.ListPaginated(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	result := models.NewPaginatedResult(items, total, page, limit)
	return &result, nil
}

func (s *LeadershipService) GetByID(ctx context.Context, id string) (*models.Leadership, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "leadership record not found")
		}
		return nil, appErrors.Internal(err)
	}
	return record, nil
}

func (s *LeadershipService) Create(ctx context.Context, req CreateLeadershipRequest) (*models.Leadership, error) {
	record, err := s.buildRecord(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, appErrors.Internal(err)
	}
	s.logger.Info("leadership record created", zap.String("id", record.ID), zap.String("position", string(record.Position)))
	return record, nil
}

func (s *LeadershipService) Update(ctx context.Context, id string, req UpdateLeadershipRequest) (*models.Leadership, error) {
	updated, err := s.buildRecord(req.CreateLeadershipRequest)
	if err != nil {
		return nil, err
	}
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, appErrors.Internal(err)
	}
	s.logger.Info("leadership record updated", zap.String("id", id))
	return updated, nil
}

func (s *LeadershipService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Internal(err)
	}
	s.logger.Info("leadership record deleted", zap.String("id", id))
	return nil
}

func (s *LeadershipService) buildRecord(req CreateLeadershipRequest) (*models.Leadership, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	pos := models.LeadershipPosition(req.Position)
	if !pos.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid position: "+req.Position)
	}
	var division *models.Division
	if req.Division != nil {
		div := models.Division(*req.Division)
		if !div.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid division: "+*req.Division)
		}
		division = &div
	}
	if !periodPattern.MatchString(req.PeriodStart) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid period start: "+req.PeriodStart)
	}
	end := req.PeriodEnd
	if end == "" {
		end = req.PeriodStart
	} else if !periodPattern.MatchString(end) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid period end: "+end)
	}

	return &models.Leadership{
		Name:        req.Name,
		Position:    pos,
		Division:    division,
		Period:      models.Period{Start: req.PeriodStart, End: end},
		Email:       req.Email,
		Phone:       req.Phone,
		Photo:       req.Photo,
		NIM:         req.NIM,
		Batch:       req.Batch,
		Bio:         req.Bio,
		SocialMedia: req.SocialMedia,
		Order:       req.Order,
		Active:      req.Active,
	}, nil
}
