package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brandsite/brandsite/internal/model"
)

// ErrAwardNotFound is returned when no award matches the given ID.
var ErrAwardNotFound = errors.New("award not found")

const awardColumns = "id, title, issuer, description, image_url, awarded_at, created_at, updated_at"

// CreateAward inserts a new award into the database.
func (r *Repository) CreateAward(ctx context.Context, award *model.Award) error {
	query := `
		INSERT INTO awards (id, title, issuer, description, image_url, awarded_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		award.ID,
		award.Title,
		award.Issuer,
		award.Description,
		award.ImageURL,
		award.AwardedAt,
		award.CreatedAt,
		award.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create award: %w", err)
	}

	return nil
}

// GetAwardByID retrieves an award by its ID.
func (r *Repository) GetAwardByID(ctx context.Context, id string) (*model.Award, error) {
	query := `SELECT ` + awardColumns + ` FROM awards WHERE id = $1`

	award, err := scanAward(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAwardNotFound
		}
		return nil, fmt.Errorf("failed to get award by ID: %w", err)
	}

	return award, nil
}

// ListAwards retrieves all awards, most recently awarded first.
func (r *Repository) ListAwards(ctx context.Context) ([]*model.Award, error) {
	query := `SELECT ` + awardColumns + ` FROM awards ORDER BY awarded_at DESC NULLS LAST, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list awards: %w", err)
	}
	defer rows.Close()

	awards := make([]*model.Award, 0)
	for rows.Next() {
		award, err := scanAward(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan award: %w", err)
		}
		awards = append(awards, award)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating awards: %w", err)
	}

	return awards, nil
}

// UpdateAward replaces all mutable fields of an award and returns the stored row.
func (r *Repository) UpdateAward(ctx context.Context, award *model.Award) (*model.Award, error) {
	query := `
		UPDATE awards
		SET title = $2, issuer = $3, description = $4, image_url = $5, awarded_at = $6, updated_at = $7
		WHERE id = $1
		RETURNING ` + awardColumns

	updated, err := scanAward(r.pool.QueryRow(ctx, query,
		award.ID,
		award.Title,
		award.Issuer,
		award.Description,
		award.ImageURL,
		award.AwardedAt,
		award.UpdatedAt,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAwardNotFound
		}
		return nil, fmt.Errorf("failed to update award: %w", err)
	}

	return updated, nil
}

// DeleteAward removes an award and returns the deleted row.
func (r *Repository) DeleteAward(ctx context.Context, id string) (*model.Award, error) {
	query := `DELETE FROM awards WHERE id = $1 RETURNING ` + awardColumns

	deleted, err := scanAward(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAwardNotFound
		}
		return nil, fmt.Errorf("failed to delete award: %w", err)
	}

	return deleted, nil
}

// scanAward scans a single row into an Award model.
func scanAward(row pgx.Row) (*model.Award, error) {
	var award model.Award
	err := row.Scan(
		&award.ID,
		&award.Title,
		&award.Issuer,
		&award.Description,
		&award.ImageURL,
		&award.AwardedAt,
		&award.CreatedAt,
		&award.UpdatedAt,
	)
	return &award, err
}
