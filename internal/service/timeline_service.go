package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
)

type timelineRepository interface {
	List(ctx context.Context) ([]models.TimelineItem, error)
	FindByID(ctx context.Context, id string) (*models.TimelineItem, error)
	Create(ctx context.Context, item *models.TimelineItem) error
	Update(ctx context.Context, item *models.TimelineItem) error
	Delete(ctx context.Context, id string) error
}

// TimelineItemRequest carries the writable fields of a milestone.
type TimelineItemRequest struct {
	Year        string `json:"year" validate:"required,len=4,numeric"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	OrderIndex  int    `json:"orderIndex"`
}

type TimelineService struct {
	repo     timelineRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewTimelineService(repo timelineRepository, logger *zap.Logger) *TimelineService {
	return &TimelineService{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *TimelineService) GetAll(ctx context.Context) ([]models.TimelineItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *TimelineService) GetByID(ctx context.Context, id string) (*models.TimelineItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "timeline item not found")
		}
		return nil, appErrors.Internal(err)
	}
	return item, nil
}

func (s *TimelineService) Create(ctx context.Context, req TimelineItemRequest) (*models.TimelineItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	item := &models.TimelineItem{
		Year:        req.Year,
		Title:       req.Title,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Internal(err)
	}
	s.logger.Info("timeline item created", zap.String("id", item.ID), zap.String("year", item.Year))
	return item, nil
}

func (s *TimelineService) Update(ctx context.Context, id string, req TimelineItemRequest) (*models.TimelineItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Year = req.Year
	item.Title = req.Title
	item.Description = req.Description
	item.OrderIndex = req.OrderIndex
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, appErrors.Internal(err)
	}
	s.logger.Info("timeline item updated", zap.String("id", id))
	return item, nil
}

func (s *TimelineService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Internal(err)
	}
	s.logger.Info("timeline item deleted", zap.String("id", id))
	return nil
}
