//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/brandsite/brandsite/internal/testutil"
)

// ============================================================================
// Blog Repository Integration Tests
// ============================================================================

func TestIntegrationBlogRepository_CreateBlog(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	slug := testutil.UniqueSlug("create")
	blog := testutil.NewTestBlog(t, slug)

	if err := repo.CreateBlog(ctx, blog); err != nil {
		t.Fatalf("CreateBlog failed: %v", err)
	}

	retrieved, err := repo.GetBlogByID(ctx, blog.ID)
	if err != nil {
		t.Fatalf("GetBlogByID failed: %v", err)
	}

	if retrieved.Slug != slug {
		t.Errorf("Slug mismatch: got %q, want %q", retrieved.Slug, slug)
	}
	if retrieved.Title != blog.Title {
		t.Errorf("Title mismatch: got %q, want %q", retrieved.Title, blog.Title)
	}
	if retrieved.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestIntegrationBlogRepository_CreateBlog_DuplicateSlug(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	slug := testutil.UniqueSlug("dup")
	blog1 := testutil.NewTestBlog(t, slug)
	blog2 := testutil.NewTestBlog(t, slug) // Different ID, same slug

	if err := repo.CreateBlog(ctx, blog1); err != nil {
		t.Fatalf("CreateBlog (first) failed: %v", err)
	}

	err := repo.CreateBlog(ctx, blog2)
	if !errors.Is(err, ErrSlugExists) {
		t.Errorf("Expected ErrSlugExists, got: %v", err)
	}
}

func TestIntegrationBlogRepository_GetByID_NotFound(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	_, err := repo.GetBlogByID(ctx, "nonexistent-id")
	if !errors.Is(err, ErrBlogNotFound) {
		t.Errorf("Expected ErrBlogNotFound, got: %v", err)
	}
}

func TestIntegrationBlogRepository_ListBlogs_Order(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	older := testutil.NewTestBlog(t, testutil.UniqueSlug("older"))
	olderAt := time.Now().UTC().Add(-2 * time.Hour)
	older.PublishedAt = &olderAt

	newer := testutil.NewTestBlog(t, testutil.UniqueSlug("newer"))
	newerAt := time.Now().UTC().Add(-1 * time.Hour)
	newer.PublishedAt = &newerAt

	draft := testutil.NewTestBlog(t, testutil.UniqueSlug("draft")) // PublishedAt nil

	if err := repo.CreateBlog(ctx, older); err != nil {
		t.Fatalf("CreateBlog (older) failed: %v", err)
	}
	if err := repo.CreateBlog(ctx, newer); err != nil {
		t.Fatalf("CreateBlog (newer) failed: %v", err)
	}
	if err := repo.CreateBlog(ctx, draft); err != nil {
		t.Fatalf("CreateBlog (draft) failed: %v", err)
	}

	blogs, err := repo.ListBlogs(ctx)
	if err != nil {
		t.Fatalf("ListBlogs failed: %v", err)
	}

	if len(blogs) != 3 {
		t.Fatalf("Expected 3 blogs, got %d", len(blogs))
	}

	// Newest publication first, unpublished drafts last.
	if blogs[0].ID != newer.ID {
		t.Errorf("Expected newest published blog first, got %q", blogs[0].Slug)
	}
	if blogs[1].ID != older.ID {
		t.Errorf("Expected older published blog second, got %q", blogs[1].Slug)
	}
	if blogs[2].ID != draft.ID {
		t.Errorf("Expected unpublished draft last, got %q", blogs[2].Slug)
	}
}

func TestIntegrationBlogRepository_UpdateBlog(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	blog := testutil.NewTestBlog(t, testutil.UniqueSlug("update"))
	if err := repo.CreateBlog(ctx, blog); err != nil {
		t.Fatalf("CreateBlog failed: %v", err)
	}

	blog.Title = "Updated title"
	blog.Content = "Updated body"
	blog.UpdatedAt = time.Now().UTC().Add(time.Second)

	updated, err := repo.UpdateBlog(ctx, blog)
	if err != nil {
		t.Fatalf("UpdateBlog failed: %v", err)
	}

	if updated.Title != "Updated title" {
		t.Errorf("Title not updated: got %q", updated.Title)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Error("UpdatedAt should be after CreatedAt")
	}
}

func TestIntegrationBlogRepository_UpdateBlog_NotFound(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	blog := testutil.NewTestBlog(t, testutil.UniqueSlug("ghost"))
	blog.ID = ulid.Make().String() // never inserted

	_, err := repo.UpdateBlog(ctx, blog)
	if !errors.Is(err, ErrBlogNotFound) {
		t.Errorf("Expected ErrBlogNotFound, got: %v", err)
	}
}

func TestIntegrationBlogRepository_UpdateBlog_DuplicateSlug(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	taken := testutil.UniqueSlug("taken")
	blog1 := testutil.NewTestBlog(t, taken)
	blog2 := testutil.NewTestBlog(t, testutil.UniqueSlug("free"))

	if err := repo.CreateBlog(ctx, blog1); err != nil {
		t.Fatalf("CreateBlog (first) failed: %v", err)
	}
	if err := repo.CreateBlog(ctx, blog2); err != nil {
		t.Fatalf("CreateBlog (second) failed: %v", err)
	}

	blog2.Slug = taken
	_, err := repo.UpdateBlog(ctx, blog2)
	if !errors.Is(err, ErrSlugExists) {
		t.Errorf("Expected ErrSlugExists, got: %v", err)
	}
}

func TestIntegrationBlogRepository_DeleteBlog(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	blog := testutil.NewTestBlog(t, testutil.UniqueSlug("delete"))
	if err := repo.CreateBlog(ctx, blog); err != nil {
		t.Fatalf("CreateBlog failed: %v", err)
	}

	deleted, err := repo.DeleteBlog(ctx, blog.ID)
	if err != nil {
		t.Fatalf("DeleteBlog failed: %v", err)
	}
	if deleted.ID != blog.ID {
		t.Errorf("Deleted row ID mismatch: got %q, want %q", deleted.ID, blog.ID)
	}

	_, err = repo.GetBlogByID(ctx, blog.ID)
	if !errors.Is(err, ErrBlogNotFound) {
		t.Errorf("Expected ErrBlogNotFound after delete, got: %v", err)
	}
}

func TestIntegrationBlogRepository_DeleteBlog_NotFound(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	_, err := repo.DeleteBlog(ctx, "nonexistent-id")
	if !errors.Is(err, ErrBlogNotFound) {
		t.Errorf("Expected ErrBlogNotFound, got: %v", err)
	}
}

// ============================================================================
// Test Environment Setup
// ============================================================================

func newRepoTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	return ctx, repo
}
