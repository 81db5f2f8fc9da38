package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrack/api/internal/models"
	"studytrack/api/internal/repository"
)

type fakeSessionStore struct {
	created []models.StudySession
}

func (f *fakeSessionStore) Create(_ context.Context, session models.StudySession) error {
	f.created = append(f.created, session)
	return nil
}

func (f *fakeSessionStore) ListByUser(_ context.Context, userID string, _ repository.ListFilter) ([]models.StudySession, error) {
	var out []models.StudySession
	for _, s := range f.created {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeResourceStore struct {
	resources map[string]models.Resource
}

func (f *fakeResourceStore) Create(_ context.Context, resource models.Resource) error {
	if f.resources == nil {
		f.resources = make(map[string]models.Resource)
	}
	f.resources[resource.ID] = resource
	return nil
}

func (f *fakeResourceStore) GetByID(_ context.Context, userID string, id string) (models.Resource, error) {
	resource, ok := f.resources[id]
	if !ok || resource.UserID != userID {
		return models.Resource{}, repository.ErrResourceNotFound
	}
	return resource, nil
}

func (f *fakeResourceStore) ListByUser(_ context.Context, userID string) ([]models.Resource, error) {
	var out []models.Resource
	for _, r := range f.resources {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestLogSession(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessionStore{}
	svc := NewStudyService(sessions, &fakeResourceStore{}, nil, zerolog.Nop())

	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	session, err := svc.LogSession(context.Background(), "user-1", LogSessionInput{
		Date:      date,
		Duration:  45,
		StudyType: models.StudyTypeReading,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, 45, session.Duration)
	assert.Equal(t, models.StudyTypeReading, session.StudyType)
	require.Len(t, sessions.created, 1)
}

func TestLogSession_UnknownResource(t *testing.T) {
	t.Parallel()

	svc := NewStudyService(&fakeSessionStore{}, &fakeResourceStore{}, nil, zerolog.Nop())

	missing := "no-such-resource"
	_, err := svc.LogSession(context.Background(), "user-1", LogSessionInput{
		Date:       time.Now(),
		Duration:   30,
		StudyType:  models.StudyTypeGrammar,
		ResourceID: &missing,
	})
	assert.ErrorIs(t, err, ErrUnknownResource)
}

// A resource belonging to another user is as good as nonexistent.
func TestLogSession_ForeignResource(t *testing.T) {
	t.Parallel()

	resources := &fakeResourceStore{}
	svc := NewStudyService(&fakeSessionStore{}, resources, nil, zerolog.Nop())

	owned, err := svc.AddResource(context.Background(), "user-2", AddResourceInput{
		Name: "Grammar in Use",
		Type: models.ResourceTypeBook,
	})
	require.NoError(t, err)

	_, err = svc.LogSession(context.Background(), "user-1", LogSessionInput{
		Date:       time.Now(),
		Duration:   30,
		StudyType:  models.StudyTypeGrammar,
		ResourceID: &owned.ID,
	})
	assert.ErrorIs(t, err, ErrUnknownResource)
}

func TestAddResource_StatusDefault(t *testing.T) {
	t.Parallel()

	svc := NewStudyService(&fakeSessionStore{}, &fakeResourceStore{}, nil, zerolog.Nop())

	resource, err := svc.AddResource(context.Background(), "user-1", AddResourceInput{
		Name: "Inner French",
		Type: models.ResourceTypePodcast,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ResourceStatusActive, resource.Status)
	assert.NotEmpty(t, resource.ID)
}
