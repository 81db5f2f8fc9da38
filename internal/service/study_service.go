package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"studytrack/api/internal/ids"
	"studytrack/api/internal/models"
	"studytrack/api/internal/repository"
)

var ErrUnknownResource = errors.New("resource does not exist")

type SessionStore interface {
	Create(ctx context.Context, session models.StudySession) error
	ListByUser(ctx context.Context, userID string, filter repository.ListFilter) ([]models.StudySession, error)
}

type ResourceStore interface {
	Create(ctx context.Context, resource models.Resource) error
	GetByID(ctx context.Context, userID string, id string) (models.Resource, error)
	ListByUser(ctx context.Context, userID string) ([]models.Resource, error)
}

type StudyService struct {
	sessions  SessionStore
	resources ResourceStore
	stats     *StatsService
	log       zerolog.Logger
}

func NewStudyService(sessions SessionStore, resources ResourceStore, stats *StatsService, log zerolog.Logger) *StudyService {
	return &StudyService{
		sessions:  sessions,
		resources: resources,
		stats:     stats,
		log:       log,
	}
}

type LogSessionInput struct {
	Date       time.Time
	Duration   int
	StudyType  models.StudyType
	Notes      *string
	ResourceID *string
}

func (s *StudyService) LogSession(ctx context.Context, userID string, input LogSessionInput) (models.StudySession, error) {
	if input.ResourceID != nil {
		if _, err := s.resources.GetByID(ctx, userID, *input.ResourceID); err != nil {
			if errors.Is(err, repository.ErrResourceNotFound) {
				return models.StudySession{}, ErrUnknownResource
			}
			return models.StudySession{}, err
		}
	}

	session := models.StudySession{
		ID:         ids.New(),
		UserID:     userID,
		Date:       input.Date,
		Duration:   input.Duration,
		StudyType:  input.StudyType,
		Notes:      input.Notes,
		ResourceID: input.ResourceID,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return models.StudySession{}, err
	}

	if s.stats != nil {
		s.stats.InvalidateSummary(ctx, userID)
	}

	return session, nil
}

func (s *StudyService) ListSessions(ctx context.Context, userID string, filter repository.ListFilter) ([]models.StudySession, error) {
	return s.sessions.ListByUser(ctx, userID, filter)
}

type AddResourceInput struct {
	Name        string
	URL         *string
	Type        models.ResourceType
	Description *string
	Status      models.ResourceStatus
	Rating      *int
	Notes       *string
}

func (s *StudyService) AddResource(ctx context.Context, userID string, input AddResourceInput) (models.Resource, error) {
	if input.Status == "" {
		input.Status = models.ResourceStatusActive
	}

	resource := models.Resource{
		ID:          ids.New(),
		UserID:      userID,
		Name:        input.Name,
		URL:         input.URL,
		Type:        input.Type,
		Description: input.Description,
		Status:      input.Status,
		Rating:      input.Rating,
		Notes:       input.Notes,
	}

	if err := s.resources.Create(ctx, resource); err != nil {
		return models.Resource{}, err
	}
	return resource, nil
}

func (s *StudyService) ListResources(ctx context.Context, userID string) ([]models.Resource, error) {
	return s.resources.ListByUser(ctx, userID)
}
