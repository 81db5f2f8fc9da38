package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"studytrack/api/internal/models"
)

var ErrResourceNotFound = errors.New("resource not found")

type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

func (r *ResourceRepository) Create(ctx context.Context, resource models.Resource) error {
	const query = `
		INSERT INTO resources (
			id, user_id, name, url, type, description, status, rating, notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		resource.ID,
		resource.UserID,
		resource.Name,
		resource.URL,
		resource.Type,
		resource.Description,
		resource.Status,
		resource.Rating,
		resource.Notes,
	)
	return err
}

func (r *ResourceRepository) GetByID(ctx context.Context, userID string, id string) (models.Resource, error) {
	const query = `
		SELECT id, user_id, name, url, type, description, status, rating, notes, created_at, updated_at
		FROM resources
		WHERE id = $1 AND user_id = $2
	`

	row := r.pool.QueryRow(ctx, query, id, userID)
	var resource models.Resource
	if err := row.Scan(
		&resource.ID,
		&resource.UserID,
		&resource.Name,
		&resource.URL,
		&resource.Type,
		&resource.Description,
		&resource.Status,
		&resource.Rating,
		&resource.Notes,
		&resource.CreatedAt,
		&resource.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Resource{}, ErrResourceNotFound
		}
		return models.Resource{}, err
	}
	return resource, nil
}

func (r *ResourceRepository) ListByUser(ctx context.Context, userID string) ([]models.Resource, error) {
	const query = `
		SELECT id, user_id, name, url, type, description, status, rating, notes, created_at, updated_at
		FROM resources
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var resource models.Resource
		if err := rows.Scan(
			&resource.ID,
			&resource.UserID,
			&resource.Name,
			&resource.URL,
			&resource.Type,
			&resource.Description,
			&resource.Status,
			&resource.Rating,
			&resource.Notes,
			&resource.CreatedAt,
			&resource.UpdatedAt,
		); err != nil {
			return nil, err
		}
		resources = append(resources, resource)
	}
	return resources, rows.Err()
}
