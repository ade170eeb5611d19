package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brandsite/brandsite/internal/model"
)

// Common errors for subscriber repository operations.
var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrEmailSubscribed    = errors.New("email already subscribed")
)

const subscriberColumns = "id, email, created_at"

// CreateSubscriber inserts a new newsletter subscription into the database.
func (r *Repository) CreateSubscriber(ctx context.Context, sub *model.Subscriber) error {
	query := `
		INSERT INTO subscribers (id, email, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.pool.Exec(ctx, query,
		sub.ID,
		sub.Email,
		sub.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailSubscribed
		}
		return fmt.Errorf("failed to create subscriber: %w", err)
	}

	return nil
}

// GetSubscriberByID retrieves a subscriber by its ID.
func (r *Repository) GetSubscriberByID(ctx context.Context, id string) (*model.Subscriber, error) {
	query := `SELECT ` + subscriberColumns + ` FROM subscribers WHERE id = $1`

	sub, err := scanSubscriber(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("failed to get subscriber by ID: %w", err)
	}

	return sub, nil
}

// ListSubscribers retrieves all subscribers, newest first.
func (r *Repository) ListSubscribers(ctx context.Context) ([]*model.Subscriber, error) {
	query := `SELECT ` + subscriberColumns + ` FROM subscribers ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	subs := make([]*model.Subscriber, 0)
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscribers: %w", err)
	}

	return subs, nil
}

// UpdateSubscriber replaces a subscriber's email and returns the stored row.
func (r *Repository) UpdateSubscriber(ctx context.Context, sub *model.Subscriber) (*model.Subscriber, error) {
	query := `
		UPDATE subscribers
		SET email = $2
		WHERE id = $1
		RETURNING ` + subscriberColumns

	updated, err := scanSubscriber(r.pool.QueryRow(ctx, query, sub.ID, sub.Email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriberNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrEmailSubscribed
		}
		return nil, fmt.Errorf("failed to update subscriber: %w", err)
	}

	return updated, nil
}

// DeleteSubscriber removes a subscription and returns the deleted row.
func (r *Repository) DeleteSubscriber(ctx context.Context, id string) (*model.Subscriber, error) {
	query := `DELETE FROM subscribers WHERE id = $1 RETURNING ` + subscriberColumns

	deleted, err := scanSubscriber(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("failed to delete subscriber: %w", err)
	}

	return deleted, nil
}

// scanSubscriber scans a single row into a Subscriber model.
func scanSubscriber(row pgx.Row) (*model.Subscriber, error) {
	var sub model.Subscriber
	err := row.Scan(
		&sub.ID,
		&sub.Email,
		&sub.CreatedAt,
	)
	return &sub, err
}
