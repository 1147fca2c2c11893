package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hmjf-dev/hmjf-cms-api/internal/models"
	"github.com/hmjf-dev/hmjf-cms-api/internal/repository"
	appErrors "github.com/hmjf-dev/hmjf-cms-api/pkg/errors"
)

type eventRepository interface {
	List(ctx context.Context) ([]models.EventListItem, error)
	ListByStatus(ctx context.Context, status models.EventStatus) ([]models.EventListItem, error)
	ListByCategory(ctx context.Context, category models.EventCategory) ([]models.EventListItem, error)
	ListPaginated(ctx context.Context, filter models.EventFilter) ([]models.EventListItem, int, error)
	ListUpcoming(ctx context.Context, limit int) ([]models.EventListItem, error)
	ListFeatured(ctx context.Context, limit int) ([]models.EventListItem, error)
	ListRecent(ctx context.Context, limit int) ([]models.EventListItem, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]models.EventListItem, error)
	FindBySlug(ctx context.Context, slug string) (*models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
	ExistsBySlug(ctx context.Context, slug, excludeID string) (bool, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}

// CreateEventRequest carries the writable fields of an event.
type CreateEventRequest struct {
	Title                string     `json:"title" validate:"required"`
	Slug                 string     `json:"slug" validate:"required"`
	Description          string     `json:"description" validate:"required"`
	Content              string     `json:"content"`
	Category             string     `json:"category" validate:"required"`
	Status               string     `json:"status" validate:"required"`
	StartDate            time.Time  `json:"startDate" validate:"required"`
	EndDate              time.Time  `json:"endDate" validate:"required"`
	LocationName         string     `json:"locationName" validate:"required"`
	LocationAddress      string     `json:"locationAddress"`
	CoverImage           string     `json:"coverImage" validate:"required"`
	Images               []string   `json:"images,omitempty"`
	OrganizerName        *string    `json:"organizerName,omitempty"`
	OrganizerContact     *string    `json:"organizerContact,omitempty"`
	RegistrationURL      *string    `json:"registrationUrl,omitempty"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty"`
	MaxParticipants      *int       `json:"maxParticipants,omitempty"`
	CurrentParticipants  *int       `json:"currentParticipants,omitempty"`
	Tags                 []string   `json:"tags,omitempty"`
	Featured             bool       `json:"featured"`
}

type UpdateEventRequest struct {
	CreateEventRequest
}

type EventService struct {
	repo     eventRepository
	cache    listingCache
	cacheTTL time.Duration
	validate *validator.Validate
	logger   *zap.Logger
}

func NewEventService(repo eventRepository, cache listingCache, cacheTTL time.Duration, logger *zap.Logger) *EventService {
	return &EventService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *EventService) GetAll(ctx context.Context) ([]models.EventListItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *EventService) GetByStatus(ctx context.Context, status string) ([]models.EventListItem, error) {
	st := models.EventStatus(status)
	if !st.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid event status: "+status)
	}
	items, err := s.repo.ListByStatus(ctx, st)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *EventService) GetByCategory(ctx context.Context, category string) ([]models.EventListItem, error) {
	cat := models.EventCategory(category)
	if !cat.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid event category: "+category)
	}
	items, err := s.repo.ListByCategory(ctx, cat)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *EventService) GetPaginated(ctx context.Context, page, limit int, category, status string) (*models.PaginatedResult[models.EventListItem], error) {
	if err := validatePagination(page, limit); err != nil {
		return nil, err
	}
	filter := models.EventFilter{Page: page, Limit: limit}
	if category != "" {
		cat := models.EventCategory(category)
		if !cat.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid event category: "+category)
		}
		filter.Category = cat
	}
	if status != "" {
		st := models.EventStatus(status)
		if !st.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid event status: "+status)
		}
		filter.Status = st
	}
	items, total, err := s.repo.ListPaginated(ctx, filter)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	result := models.NewPaginatedResult(items, total, page, limit)
	return &result, nil
}

// GetUpcoming serves the upcoming-events strip through the listing cache.
func (s *EventService) GetUpcoming(ctx context.Context, limit int) ([]models.EventListItem, bool, error) {
	key := repository.ListKey("events", "upcoming", limit)

	var cached []models.EventListItem
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, true, nil
	} else if !errors.Is(err, appErrors.ErrCacheMiss) {
		s.logger.Warn("event cache read failed", zap.String("key", key), zap.Error(err))
	}

	items, err := s.repo.ListUpcoming(ctx, limit)
	if err != nil {
		return nil, false, appErrors.Internal(err)
	}
	if err := s.cache.Set(ctx, key, items, s.cacheTTL); err != nil {
		s.logger.Warn("event cache write failed", zap.String("key", key), zap.Error(err))
	}
	return items, false, nil
}

func (s *EventService) GetFeatured(ctx context.Context, limit int) ([]models.EventListItem, error) {
	items, err := s.repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *EventService) GetRecent(ctx context.Context, limit int) ([]models.EventListItem, error) {
	if limit < 1 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "limit must be at least 1")
	}
	items, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *EventService) GetByDateRange(ctx context.Context, start, end time.Time) ([]models.EventListItem, error) {
	if start.After(end) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "start date must not be after end date")
	}
	items, err := s.repo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	return items, nil
}

func (s *EventService) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	event, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Internal(err)
	}
	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Internal(err)
	}
	return event, nil
}

func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	event, err := s.buildEvent(req)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsBySlug(ctx, req.Slug, "")
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "event slug already in use")
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Internal(err)
	}
	s.invalidate(ctx)
	s.logger.Info("event created", zap.String("id", event.ID), zap.String("slug", event.Slug))
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, req UpdateEventRequest) (*models.Event, error) {
	updated, err := s.buildEvent(req.CreateEventRequest)
	if err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsBySlug(ctx, req.Slug, id)
	if err != nil {
		return nil, appErrors.Internal(err)
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "event slug already in use")
	}

	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, appErrors.Internal(err)
	}
	s.invalidate(ctx)
	s.logger.Info("event updated", zap.String("id", id))
	return updated, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Internal(err)
	}
	s.invalidate(ctx)
	s.logger.Info("event deleted", zap.String("id", id))
	return nil
}

func (s *EventService) buildEvent(req CreateEventRequest) (*models.Event, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	cat := models.EventCategory(req.Category)
	if !cat.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid event category: "+req.Category)
	}
	st := models.EventStatus(req.Status)
	if !st.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid event status: "+req.Status)
	}
	if req.StartDate.After(req.EndDate) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "start date must not be after end date")
	}

	return &models.Event{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Content:     req.Content,
		Category:    cat,
		Status:      st,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location: models.EventLocation{
			Name:    req.LocationName,
			Address: req.LocationAddress,
		},
		CoverImage: req.CoverImage,
		Images:     req.Images,
		Organizer: models.Organizer{
			Name:    stringValue(req.OrganizerName),
			Contact: stringValue(req.OrganizerContact),
		},
		RegistrationURL:      req.RegistrationURL,
		RegistrationDeadline: req.RegistrationDeadline,
		MaxParticipants:      req.MaxParticipants,
		CurrentParticipants:  req.CurrentParticipants,
		Tags:                 req.Tags,
		Featured:             req.Featured,
	}, nil
}

func (s *EventService) invalidate(ctx context.Context) {
	if err := s.cache.DeleteByPattern(ctx, "events:*"); err != nil {
		s.logger.Warn("event cache invalidation failed", zap.Error(err))
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
