package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brandsite/brandsite/internal/model"
)

// ErrInquiryNotFound is returned when no inquiry matches the given ID.
var ErrInquiryNotFound = errors.New("inquiry not found")

const inquiryColumns = "id, name, company, email, phone, product_name, message, created_at"

// CreateInquiry inserts a new product inquiry into the database.
func (r *Repository) CreateInquiry(ctx context.Context, inquiry *model.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, name, company, email, phone, product_name, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		inquiry.ID,
		inquiry.Name,
		inquiry.Company,
		inquiry.Email,
		inquiry.Phone,
		inquiry.ProductName,
		inquiry.Message,
		inquiry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}

// GetInquiryByID retrieves an inquiry by its ID.
func (r *Repository) GetInquiryByID(ctx context.Context, id string) (*model.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`

	inquiry, err := scanInquiry(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry by ID: %w", err)
	}

	return inquiry, nil
}

// ListInquiries retrieves all inquiries, newest first.
func (r *Repository) ListInquiries(ctx context.Context) ([]*model.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := make([]*model.Inquiry, 0)
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inquiry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inquiries: %w", err)
	}

	return inquiries, nil
}

// UpdateInquiry replaces all mutable fields of an inquiry and returns the stored row.
func (r *Repository) UpdateInquiry(ctx context.Context, inquiry *model.Inquiry) (*model.Inquiry, error) {
	query := `
		UPDATE inquiries
		SET name = $2, company = $3, email = $4, phone = $5, product_name = $6, message = $7
		WHERE id = $1
		RETURNING ` + inquiryColumns

	updated, err := scanInquiry(r.pool.QueryRow(ctx, query,
		inquiry.ID,
		inquiry.Name,
		inquiry.Company,
		inquiry.Email,
		inquiry.Phone,
		inquiry.ProductName,
		inquiry.Message,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to update inquiry: %w", err)
	}

	return updated, nil
}

// DeleteInquiry removes an inquiry and returns the deleted row.
func (r *Repository) DeleteInquiry(ctx context.Context, id string) (*model.Inquiry, error) {
	query := `DELETE FROM inquiries WHERE id = $1 RETURNING ` + inquiryColumns

	deleted, err := scanInquiry(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to delete inquiry: %w", err)
	}

	return deleted, nil
}

// scanInquiry scans a single row into an Inquiry model.
func scanInquiry(row pgx.Row) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	err := row.Scan(
		&inquiry.ID,
		&inquiry.Name,
		&inquiry.Company,
		&inquiry.Email,
		&inquiry.Phone,
		&inquiry.ProductName,
		&inquiry.Message,
		&inquiry.CreatedAt,
	)
	return &inquiry, err
}
