package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brandsite/brandsite/internal/model"
)

// ErrApplicationNotFound is returned when no application matches the given ID.
var ErrApplicationNotFound = errors.New("application not found")

const applicationColumns = "id, name, email, phone, role, resume_url, cover_letter, created_at"

// CreateApplication inserts a new job application into the database.
func (r *Repository) CreateApplication(ctx context.Context, app *model.Application) error {
	query := `
		INSERT INTO applications (id, name, email, phone, role, resume_url, cover_letter, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		app.ID,
		app.Name,
		app.Email,
		app.Phone,
		app.Role,
		app.ResumeURL,
		app.CoverLetter,
		app.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// GetApplicationByID retrieves a job application by its ID.
func (r *Repository) GetApplicationByID(ctx context.Context, id string) (*model.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	app, err := scanApplication(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application by ID: %w", err)
	}

	return app, nil
}

// ListApplications retrieves all job applications, newest first.
func (r *Repository) ListApplications(ctx context.Context) ([]*model.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	apps := make([]*model.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return apps, nil
}

// UpdateApplication replaces all mutable fields of an application and returns the stored row.
func (r *Repository) UpdateApplication(ctx context.Context, app *model.Application) (*model.Application, error) {
	query := `
		UPDATE applications
		SET name = $2, email = $3, phone = $4, role = $5, resume_url = $6, cover_letter = $7
		WHERE id = $1
		RETURNING ` + applicationColumns

	updated, err := scanApplication(r.pool.QueryRow(ctx, query,
		app.ID,
		app.Name,
		app.Email,
		app.Phone,
		app.Role,
		app.ResumeURL,
		app.CoverLetter,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	return updated, nil
}

// DeleteApplication removes an application and returns the deleted row.
func (r *Repository) DeleteApplication(ctx context.Context, id string) (*model.Application, error) {
	query := `DELETE FROM applications WHERE id = $1 RETURNING ` + applicationColumns

	deleted, err := scanApplication(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to delete application: %w", err)
	}

	return deleted, nil
}

// scanApplication scans a single row into an Application model.
func scanApplication(row pgx.Row) (*model.Application, error) {
	var app model.Application
	err := row.Scan(
		&app.ID,
		&app.Name,
		&app.Email,
		&app.Phone,
		&app.Role,
		&app.ResumeURL,
		&app.CoverLetter,
		&app.CreatedAt,
	)
	return &app, err
}
