package models

import "time"

type StudyType string

const (
	StudyTypeSpeaking   StudyType = "speaking"
	StudyTypeReading    StudyType = "reading"
	StudyTypeWriting    StudyType = "writing"
	StudyTypeListening  StudyType = "listening"
	StudyTypeGrammar    StudyType = "grammar"
	StudyTypeVocabulary StudyType = "vocabulary"
)

// StudySession is a single logged block of study time. Sessions are
// immutable once created and owned by exactly one user.
type StudySession struct {
	ID         string
	UserID     string
	Date       time.Time
	Duration   int // minutes
	StudyType  StudyType
	Notes      *string
	ResourceID *string
	CreatedAt  time.Time
}

type ResourceType string

const (
	ResourceTypeVideo   ResourceType = "video"
	ResourceTypePodcast ResourceType = "podcast"
	ResourceTypeBook    ResourceType = "book"
	ResourceTypeCourse  ResourceType = "course"
	ResourceTypeApp     ResourceType = "app"
	ResourceTypeWebsite ResourceType = "website"
	ResourceTypeOther   ResourceType = "other"
)

type ResourceStatus string

const (
	ResourceStatusActive    ResourceStatus = "active"
	ResourceStatusCompleted ResourceStatus = "completed"
)

type Resource struct {
	ID          string
	UserID      string
	Name        string
	URL         *string
	Type        ResourceType
	Description *string
	Status      ResourceStatus
	Rating      *int
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
