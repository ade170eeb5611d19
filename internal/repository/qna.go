package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brandsite/brandsite/internal/model"
)

// ErrQnANotFound is returned when no Q&A entry matches the given ID.
var ErrQnANotFound = errors.New("qna entry not found")

const qnaColumns = "id, question, answer, category, position, created_at, updated_at"

// CreateQnA inserts a new Q&A entry into the database.
func (r *Repository) CreateQnA(ctx context.Context, qna *model.QnA) error {
	query := `
		INSERT INTO qna (id, question, answer, category, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		qna.ID,
		qna.Question,
		qna.Answer,
		qna.Category,
		qna.Position,
		qna.CreatedAt,
		qna.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create qna entry: %w", err)
	}

	return nil
}

// GetQnAByID retrieves a Q&A entry by its ID.
func (r *Repository) GetQnAByID(ctx context.Context, id string) (*model.QnA, error) {
	query := `SELECT ` + qnaColumns + ` FROM qna WHERE id = $1`

	qna, err := scanQnA(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQnANotFound
		}
		return nil, fmt.Errorf("failed to get qna entry by ID: %w", err)
	}

	return qna, nil
}

// ListQnA retrieves all Q&A entries in display order.
func (r *Repository) ListQnA(ctx context.Context) ([]*model.QnA, error) {
	query := `SELECT ` + qnaColumns + ` FROM qna ORDER BY position ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list qna entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*model.QnA, 0)
	for rows.Next() {
		qna, err := scanQnA(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan qna entry: %w", err)
		}
		entries = append(entries, qna)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating qna entries: %w", err)
	}

	return entries, nil
}

// UpdateQnA replaces all mutable fields of a Q&A entry and returns the stored row.
func (r *Repository) UpdateQnA(ctx context.Context, qna *model.QnA) (*model.QnA, error) {
	query := `
		UPDATE qna
		SET question = $2, answer = $3, category = $4, position = $5, updated_at = $6
		WHERE id = $1
		RETURNING ` + qnaColumns

	updated, err := scanQnA(r.pool.QueryRow(ctx, query,
		qna.ID,
		qna.Question,
		qna.Answer,
		qna.Category,
		qna.Position,
		qna.UpdatedAt,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQnANotFound
		}
		return nil, fmt.Errorf("failed to update qna entry: %w", err)
	}

	return updated, nil
}

// DeleteQnA removes a Q&A entry and returns the deleted row.
func (r *Repository) DeleteQnA(ctx context.Context, id string) (*model.QnA, error) {
	query := `DELETE FROM qna WHERE id = $1 RETURNING ` + qnaColumns

	deleted, err := scanQnA(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQnANotFound
		}
		return nil, fmt.Errorf("failed to delete qna entry: %w", err)
	}

	return deleted, nil
}

// scanQnA scans a single row into a QnA model.
func scanQnA(row pgx.Row) (*model.QnA, error) {
	var qna model.QnA
	err := row.Scan(
		&qna.ID,
		&qna.Question,
		&qna.Answer,
		&qna.Category,
		&qna.Position,
		&qna.CreatedAt,
		&qna.UpdatedAt,
	)
	return &qna, err
}
