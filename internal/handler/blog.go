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

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	repository *repository.Repository
	logger     *slog.Logger
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(repo *repository.Repository, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		repository: repo,
		logger:     logger,
	}
}

// List handles GET /api/blogs.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.repository.ListBlogs(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, blogs)
}

// Get handles GET /api/blogs/{id}.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	blog, err := h.repository.GetBlogByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

// Create handles POST /api/blogs.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.BlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	now := time.Now().UTC()
	blog := &model.Blog{
		ID:           ulid.Make().String(),
		Title:        req.Title,
		Slug:         req.Slug,
		Content:      req.Content,
		Excerpt:      req.Excerpt,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		PublishedAt:  req.PublishedAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.repository.CreateBlog(r.Context(), blog); err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("blog_created",
		"blog_id", blog.ID,
		"slug", blog.Slug,
	)

	writeJSON(w, http.StatusCreated, blog)
}

// Update handles PUT /api/blogs/{id}.
// All mutable fields are replaced with the request values.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.BlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	blog := &model.Blog{
		ID:           id,
		Title:        req.Title,
		Slug:         req.Slug,
		Content:      req.Content,
		Excerpt:      req.Excerpt,
		ThumbnailURL: req.ThumbnailURL,
		Category:     req.Category,
		PublishedAt:  req.PublishedAt,
		UpdatedAt:    time.Now().UTC(),
	}

	updated, err := h.repository.UpdateBlog(r.Context(), blog)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("blog_updated", "blog_id", updated.ID)

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/blogs/{id}.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.repository.DeleteBlog(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("blog_deleted", "blog_id", id)

	writeJSON(w, http.StatusOK, deleted)
}

// handleError maps repository errors to HTTP responses.
func (h *BlogHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrBlogNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Blog not found")
	case errors.Is(err, repository.ErrSlugExists):
		writeError(w, http.StatusConflict, "CONFLICT", "Slug already exists")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
