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

// AwardHandler handles HTTP requests for awards.
type AwardHandler struct {
	repository *repository.Repository
	logger     *slog.Logger
}

// NewAwardHandler creates a new AwardHandler.
func NewAwardHandler(repo *repository.Repository, logger *slog.Logger) *AwardHandler {
	return &AwardHandler{
		repository: repo,
		logger:     logger,
	}
}

// List handles GET /api/awards.
func (h *AwardHandler) List(w http.ResponseWriter, r *http.Request) {
	awards, err := h.repository.ListAwards(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, awards)
}

// Get handles GET /api/awards/{id}.
func (h *AwardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	award, err := h.repository.GetAwardByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, award)
}

// Create handles POST /api/awards.
func (h *AwardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	now := time.Now().UTC()
	award := &model.Award{
		ID:          ulid.Make().String(),
		Title:       req.Title,
		Issuer:      req.Issuer,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AwardedAt:   req.AwardedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repository.CreateAward(r.Context(), award); err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("award_created", "award_id", award.ID)

	writeJSON(w, http.StatusCreated, award)
}

// Update handles PUT /api/awards/{id}.
// All mutable fields are replaced with the request values.
func (h *AwardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.AwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	award := &model.Award{
		ID:          id,
		Title:       req.Title,
		Issuer:      req.Issuer,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		AwardedAt:   req.AwardedAt,
		UpdatedAt:   time.Now().UTC(),
	}

	updated, err := h.repository.UpdateAward(r.Context(), award)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("award_updated", "award_id", updated.ID)

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/awards/{id}.
func (h *AwardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.repository.DeleteAward(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("award_deleted", "award_id", id)

	writeJSON(w, http.StatusOK, deleted)
}

// handleError maps repository errors to HTTP responses.
func (h *AwardHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrAwardNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Award not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
