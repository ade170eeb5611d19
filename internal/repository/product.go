package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"github.com/brandsite/brandsite/internal/model"
)

// ErrProductNotFound is returned when no product matches the given ID.
var ErrProductNotFound = errors.New("product not found")

const productColumns = "id, name, summary, description, image_url, category, related_product_ids, position, created_at, updated_at"

// CreateProduct inserts a new product into the database.
func (r *Repository) CreateProduct(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (id, name, summary, description, image_url, category, related_product_ids, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Summary,
		product.Description,
		product.ImageURL,
		product.Category,
		pq.Array(product.RelatedProductIDs),
		product.Position,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// GetProductByID retrieves a product by its ID.
func (r *Repository) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}

	return product, nil
}

// ListProducts retrieves all products in display order.
func (r *Repository) ListProducts(ctx context.Context) ([]*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY position ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]*model.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// UpdateProduct replaces all mutable fields of a product and returns the stored row.
func (r *Repository) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	query := `
		UPDATE products
		SET name = $2, summary = $3, description = $4, image_url = $5, category = $6, related_product_ids = $7, position = $8, updated_at = $9
		WHERE id = $1
		RETURNING ` + productColumns

	updated, err := scanProduct(r.pool.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Summary,
		product.Description,
		product.ImageURL,
		product.Category,
		pq.Array(product.RelatedProductIDs),
		product.Position,
		product.UpdatedAt,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return updated, nil
}

// DeleteProduct removes a product and returns the deleted row.
func (r *Repository) DeleteProduct(ctx context.Context, id string) (*model.Product, error) {
	query := `DELETE FROM products WHERE id = $1 RETURNING ` + productColumns

	deleted, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	return deleted, nil
}

// scanProduct scans a single row into a Product model.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var product model.Product
	var related []string
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Summary,
		&product.Description,
		&product.ImageURL,
		&product.Category,
		pq.Array(&related),
		&product.Position,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if related == nil {
		related = []string{}
	}
	product.RelatedProductIDs = related
	return &product, err
}
