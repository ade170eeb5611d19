package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brandsite/brandsite/internal/model"
)

// Common errors for blog repository operations.
var (
	ErrBlogNotFound = errors.New("blog not found")
	ErrSlugExists   = errors.New("slug already exists")
)

const blogColumns = "id, title, slug, content, excerpt, thumbnail_url, category, published_at, created_at, updated_at"

// CreateBlog inserts a new blog post into the database.
func (r *Repository) CreateBlog(ctx context.Context, blog *model.Blog) error {
	query := `
		INSERT INTO blogs (id, title, slug, content, excerpt, thumbnail_url, category, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		blog.ID,
		blog.Title,
		blog.Slug,
		blog.Content,
		blog.Excerpt,
		blog.ThumbnailURL,
		blog.Category,
		blog.PublishedAt,
		blog.CreatedAt,
		blog.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlugExists
		}
		return fmt.Errorf("failed to create blog: %w", err)
	}

	return nil
}

// GetBlogByID retrieves a blog post by its ID.
func (r *Repository) GetBlogByID(ctx context.Context, id string) (*model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	blog, err := scanBlog(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to get blog by ID: %w", err)
	}

	return blog, nil
}

// ListBlogs retrieves all blog posts, newest publication first.
func (r *Repository) ListBlogs(ctx context.Context) ([]*model.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs ORDER BY published_at DESC NULLS LAST, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]*model.Blog, 0)
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blogs: %w", err)
	}

	return blogs, nil
}

// UpdateBlog replaces all mutable fields of a blog post and returns the stored row.
func (r *Repository) UpdateBlog(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	query := `
		UPDATE blogs
		SET title = $2, slug = $3, content = $4, excerpt = $5, thumbnail_url = $6, category = $7, published_at = $8, updated_at = $9
		WHERE id = $1
		RETURNING ` + blogColumns

	updated, err := scanBlog(r.pool.QueryRow(ctx, query,
		blog.ID,
		blog.Title,
		blog.Slug,
		blog.Content,
		blog.Excerpt,
		blog.ThumbnailURL,
		blog.Category,
		blog.PublishedAt,
		blog.UpdatedAt,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrSlugExists
		}
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	return updated, nil
}

// DeleteBlog removes a blog post and returns the deleted row.
func (r *Repository) DeleteBlog(ctx context.Context, id string) (*model.Blog, error) {
	query := `DELETE FROM blogs WHERE id = $1 RETURNING ` + blogColumns

	deleted, err := scanBlog(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to delete blog: %w", err)
	}

	return deleted, nil
}

// scanBlog scans a single row into a Blog model.
func scanBlog(row pgx.Row) (*model.Blog, error) {
	var blog model.Blog
	err := row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Slug,
		&blog.Content,
		&blog.Excerpt,
		&blog.ThumbnailURL,
		&blog.Category,
		&blog.PublishedAt,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)
	return &blog, err
}
