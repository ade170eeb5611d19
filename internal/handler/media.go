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

// MediaHandler handles HTTP requests for press coverage items.
type MediaHandler struct {
	repository *repository.Repository
	logger     *slog.Logger
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(repo *repository.Repository, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		repository: repo,
		logger:     logger,
	}
}

// List handles GET /api/media.
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repository.ListMedia(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/media/{id}.
func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	media, err := h.repository.GetMediaByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, media)
}

// Create handles POST /api/media.
func (h *MediaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.MediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	now := time.Now().UTC()
	media := &model.Media{
		ID:          ulid.Make().String(),
		Title:       req.Title,
		Outlet:      req.Outlet,
		LinkURL:     req.LinkURL,
		PublishedAt: req.PublishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repository.CreateMedia(r.Context(), media); err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("media_created", "media_id", media.ID)

	writeJSON(w, http.StatusCreated, media)
}

// Update handles PUT /api/media/{id}.
// All mutable fields are replaced with the request values.
func (h *MediaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.MediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	media := &model.Media{
		ID:          id,
		Title:       req.Title,
		Outlet:      req.Outlet,
		LinkURL:     req.LinkURL,
		PublishedAt: req.PublishedAt,
		UpdatedAt:   time.Now().UTC(),
	}

	updated, err := h.repository.UpdateMedia(r.Context(), media)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("media_updated", "media_id", updated.ID)

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/media/{id}.
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.repository.DeleteMedia(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("media_deleted", "media_id", id)

	writeJSON(w, http.StatusOK, deleted)
}

// handleError maps repository errors to HTTP responses.
func (h *MediaHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrMediaNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Media item not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
