package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"github.com/brandsite/brandsite/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 815815

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// ResetSchema drops and recreates all tables for tests.
func ResetSchema(ctx context.Context, pool *pgxpool.Pool) error {
	root, err := ProjectRoot()
	if err != nil {
		return err
	}

	downPath := filepath.Join(root, "migrations", "000001_init.down.sql")
	upPath := filepath.Join(root, "migrations", "000001_init.up.sql")

	downSQL, err := os.ReadFile(downPath)
	if err != nil {
		return fmt.Errorf("read down migration: %w", err)
	}
	if _, err := pool.Exec(ctx, string(downSQL)); err != nil {
		return fmt.Errorf("apply down migration: %w", err)
	}

	upSQL, err := os.ReadFile(upPath)
	if err != nil {
		return fmt.Errorf("read up migration: %w", err)
	}
	if _, err := pool.Exec(ctx, string(upSQL)); err != nil {
		return fmt.Errorf("apply up migration: %w", err)
	}

	return nil
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
	return root, nil
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestBlog creates a test blog post with sensible defaults.
func NewTestBlog(t testing.TB, slug string) *model.Blog {
	t.Helper()
	now := time.Now().UTC()
	return &model.Blog{
		ID:        ulid.Make().String(),
		Title:     "Post " + slug,
		Slug:      slug,
		Content:   "Body of " + slug,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestProduct creates a test product with sensible defaults.
func NewTestProduct(t testing.TB, name string) *model.Product {
	t.Helper()
	now := time.Now().UTC()
	return &model.Product{
		ID:                ulid.Make().String(),
		Name:              name,
		Description:       "Description of " + name,
		RelatedProductIDs: []string{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// NewTestSubscriber creates a test subscriber with sensible defaults.
func NewTestSubscriber(t testing.TB, email string) *model.Subscriber {
	t.Helper()
	return &model.Subscriber{
		ID:        ulid.Make().String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
}

// UniqueSlug generates a unique slug for tests.
func UniqueSlug(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// UniqueEmail generates a unique email address for tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}
