//go:build integration

package repository

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/brandsite/brandsite/internal/testutil"
)

// ============================================================================
// Product Repository Integration Tests
// ============================================================================

func TestIntegrationProductRepository_CreateProduct(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	product := testutil.NewTestProduct(t, "Widget")
	product.RelatedProductIDs = []string{"p-1", "p-2"}

	if err := repo.CreateProduct(ctx, product); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	retrieved, err := repo.GetProductByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("GetProductByID failed: %v", err)
	}

	if retrieved.Name != "Widget" {
		t.Errorf("Name mismatch: got %q", retrieved.Name)
	}
	if !reflect.DeepEqual(retrieved.RelatedProductIDs, []string{"p-1", "p-2"}) {
		t.Errorf("RelatedProductIDs mismatch: got %v", retrieved.RelatedProductIDs)
	}
}

func TestIntegrationProductRepository_EmptyRelatedIDs(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	product := testutil.NewTestProduct(t, "Loner")
	product.RelatedProductIDs = nil

	if err := repo.CreateProduct(ctx, product); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	retrieved, err := repo.GetProductByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("GetProductByID failed: %v", err)
	}

	// Scans back as an empty slice, never nil.
	if retrieved.RelatedProductIDs == nil {
		t.Error("RelatedProductIDs should be an empty slice, got nil")
	}
	if len(retrieved.RelatedProductIDs) != 0 {
		t.Errorf("Expected no related IDs, got %v", retrieved.RelatedProductIDs)
	}
}

func TestIntegrationProductRepository_ListProducts_PositionOrder(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	second := testutil.NewTestProduct(t, "Second")
	second.Position = 2
	first := testutil.NewTestProduct(t, "First")
	first.Position = 1

	if err := repo.CreateProduct(ctx, second); err != nil {
		t.Fatalf("CreateProduct (second) failed: %v", err)
	}
	if err := repo.CreateProduct(ctx, first); err != nil {
		t.Fatalf("CreateProduct (first) failed: %v", err)
	}

	products, err := repo.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(products))
	}
	if products[0].Name != "First" || products[1].Name != "Second" {
		t.Errorf("Products out of position order: %q, %q", products[0].Name, products[1].Name)
	}
}

func TestIntegrationProductRepository_UpdateProduct(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	product := testutil.NewTestProduct(t, "Before")
	if err := repo.CreateProduct(ctx, product); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	product.Name = "After"
	product.RelatedProductIDs = []string{"p-9"}
	product.UpdatedAt = time.Now().UTC().Add(time.Second)

	updated, err := repo.UpdateProduct(ctx, product)
	if err != nil {
		t.Fatalf("UpdateProduct failed: %v", err)
	}

	if updated.Name != "After" {
		t.Errorf("Name not updated: got %q", updated.Name)
	}
	if !reflect.DeepEqual(updated.RelatedProductIDs, []string{"p-9"}) {
		t.Errorf("RelatedProductIDs not updated: got %v", updated.RelatedProductIDs)
	}
}

func TestIntegrationProductRepository_DeleteProduct(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	product := testutil.NewTestProduct(t, "Doomed")
	if err := repo.CreateProduct(ctx, product); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	deleted, err := repo.DeleteProduct(ctx, product.ID)
	if err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if deleted.ID != product.ID {
		t.Errorf("Deleted row ID mismatch: got %q, want %q", deleted.ID, product.ID)
	}

	_, err = repo.GetProductByID(ctx, product.ID)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound after delete, got: %v", err)
	}
}

func TestIntegrationProductRepository_NotFound(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	if _, err := repo.GetProductByID(ctx, "nonexistent-id"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound, got: %v", err)
	}
	if _, err := repo.DeleteProduct(ctx, "nonexistent-id"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound, got: %v", err)
	}
}
