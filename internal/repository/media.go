package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brandsite/brandsite/internal/model"
)

// ErrMediaNotFound is returned when no media item matches the given ID.
var ErrMediaNotFound = errors.New("media item not found")

const mediaColumns = "id, title, outlet, link_url, published_at, created_at, updated_at"

// CreateMedia inserts a new press coverage item into the database.
func (r *Repository) CreateMedia(ctx context.Context, media *model.Media) error {
	query := `
		INSERT INTO media (id, title, outlet, link_url, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		media.ID,
		media.Title,
		media.Outlet,
		media.LinkURL,
		media.PublishedAt,
		media.CreatedAt,
		media.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create media item: %w", err)
	}

	return nil
}

// GetMediaByID retrieves a media item by its ID.
func (r *Repository) GetMediaByID(ctx context.Context, id string) (*model.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media WHERE id = $1`

	media, err := scanMedia(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to get media item by ID: %w", err)
	}

	return media, nil
}

// ListMedia retrieves all media items, newest publication first.
func (r *Repository) ListMedia(ctx context.Context) ([]*model.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media ORDER BY published_at DESC NULLS LAST, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list media items: %w", err)
	}
	defer rows.Close()

	items := make([]*model.Media, 0)
	for rows.Next() {
		media, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan media item: %w", err)
		}
		items = append(items, media)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating media items: %w", err)
	}

	return items, nil
}

// UpdateMedia replaces all mutable fields of a media item and returns the stored row.
func (r *Repository) UpdateMedia(ctx context.Context, media *model.Media) (*model.Media, error) {
	query := `
		UPDATE media
		SET title = $2, outlet = $3, link_url = $4, published_at = $5, updated_at = $6
		WHERE id = $1
		RETURNING ` + mediaColumns

	updated, err := scanMedia(r.pool.QueryRow(ctx, query,
		media.ID,
		media.Title,
		media.Outlet,
		media.LinkURL,
		media.PublishedAt,
		media.UpdatedAt,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to update media item: %w", err)
	}

	return updated, nil
}

// DeleteMedia removes a media item and returns the deleted row.
func (r *Repository) DeleteMedia(ctx context.Context, id string) (*model.Media, error) {
	query := `DELETE FROM media WHERE id = $1 RETURNING ` + mediaColumns

	deleted, err := scanMedia(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to delete media item: %w", err)
	}

	return deleted, nil
}

// scanMedia scans a single row into a Media model.
func scanMedia(row pgx.Row) (*model.Media, error) {
	var media model.Media
	err := row.Scan(
		&media.ID,
		&media.Title,
		&media.Outlet,
		&media.LinkURL,
		&media.PublishedAt,
		&media.CreatedAt,
		&media.UpdatedAt,
	)
	return &media, err
}
