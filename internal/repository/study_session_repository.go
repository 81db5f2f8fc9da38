package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"studytrack/api/internal/models"
)

type StudySessionRepository struct {
	pool *pgxpool.Pool
}

func NewStudySessionRepository(pool *pgxpool.Pool) *StudySessionRepository {
	return &StudySessionRepository{pool: pool}
}

func (r *StudySessionRepository) Create(ctx context.Context, session models.StudySession) error {
	const query = `
		INSERT INTO study_sessions (
			id, user_id, date, duration, study_type, notes, resource_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.UserID,
		session.Date,
		session.Duration,
		session.StudyType,
		session.Notes,
		session.ResourceID,
	)
	return err
}

// ListFilter narrows and orders a session listing. Zero values mean no
// constraint; Ascending false lists newest first.
type ListFilter struct {
	From      *time.Time
	To        *time.Time
	Limit     int
	Ascending bool
}

func (r *StudySessionRepository) ListByUser(ctx context.Context, userID string, filter ListFilter) ([]models.StudySession, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, user_id, date, duration, study_type, notes, resource_id, created_at
		FROM study_sessions
		WHERE user_id = $1
	`)

	args := []any{userID}
	if filter.From != nil {
		args = append(args, *filter.From)
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		fmt.Fprintf(&sb, " AND date < $%d", len(args))
	}

	if filter.Ascending {
		sb.WriteString(" ORDER BY date ASC")
	} else {
		sb.WriteString(" ORDER BY date DESC")
	}
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.StudySession
	for rows.Next() {
		var session models.StudySession
		if err := rows.Scan(
			&session.ID,
			&session.UserID,
			&session.Date,
			&session.Duration,
			&session.StudyType,
			&session.Notes,
			&session.ResourceID,
			&session.CreatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}
