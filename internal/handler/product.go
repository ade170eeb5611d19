package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/brandsite/brandsite/internal/handler/dto"
	"github.com/brandsite/brandsite/internal/model"
	"github.com/brandsite/brandsite/internal/repository"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	repository *repository.Repository
	logger     *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(repo *repository.Repository, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		repository: repo,
		logger:     logger,
	}
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.repository.ListProducts(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.repository.GetProductByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	now := time.Now().UTC()
	product := &model.Product{
		ID:                ulid.Make().String(),
		Name:              req.Name,
		Summary:           req.Summary,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
		Category:          req.Category,
		RelatedProductIDs: normalizeIDs(req.RelatedProductIDs),
		Position:          req.Position,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := h.repository.CreateProduct(r.Context(), product); err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("product_created",
		"product_id", product.ID,
		"name", product.Name,
	)

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id}.
// All mutable fields are replaced with the request values.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	product := &model.Product{
		ID:                id,
		Name:              req.Name,
		Summary:           req.Summary,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
		Category:          req.Category,
		RelatedProductIDs: normalizeIDs(req.RelatedProductIDs),
		Position:          req.Position,
		UpdatedAt:         time.Now().UTC(),
	}

	updated, err := h.repository.UpdateProduct(r.Context(), product)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("product_updated", "product_id", updated.ID)

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.repository.DeleteProduct(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("product_deleted", "product_id", id)

	writeJSON(w, http.StatusOK, deleted)
}

// handleError maps repository errors to HTTP responses.
func (h *ProductHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Product not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// normalizeIDs ensures a non-nil slice so the column stores an empty array.
func normalizeIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
