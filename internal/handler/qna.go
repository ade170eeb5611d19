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

// QnAHandler handles HTTP requests for Q&A entries.
type QnAHandler struct {
	repository *repository.Repository
	logger     *slog.Logger
}

// NewQnAHandler creates a new QnAHandler.
func NewQnAHandler(repo *repository.Repository, logger *slog.Logger) *QnAHandler {
	return &QnAHandler{
		repository: repo,
		logger:     logger,
	}
}

// List handles GET /api/qna.
func (h *QnAHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.repository.ListQnA(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Get handles GET /api/qna/{id}.
func (h *QnAHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	qna, err := h.repository.GetQnAByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, qna)
}

// Create handles POST /api/qna.
func (h *QnAHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.QnARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	now := time.Now().UTC()
	qna := &model.QnA{
		ID:        ulid.Make().String(),
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		Position:  req.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.repository.CreateQnA(r.Context(), qna); err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("qna_created", "qna_id", qna.ID)

	writeJSON(w, http.StatusCreated, qna)
}

// Update handles PUT /api/qna/{id}.
// All mutable fields are replaced with the request values.
func (h *QnAHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.QnARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	qna := &model.QnA{
		ID:        id,
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		Position:  req.Position,
		UpdatedAt: time.Now().UTC(),
	}

	updated, err := h.repository.UpdateQnA(r.Context(), qna)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("qna_updated", "qna_id", updated.ID)

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/qna/{id}.
func (h *QnAHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.repository.DeleteQnA(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("qna_deleted", "qna_id", id)

	writeJSON(w, http.StatusOK, deleted)
}

// handleError maps repository errors to HTTP responses.
func (h *QnAHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrQnANotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Q&A entry not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
