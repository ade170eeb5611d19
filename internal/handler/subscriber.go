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

// SubscriberHandler handles HTTP requests for newsletter subscriptions.
type SubscriberHandler struct {
	repository *repository.Repository
	logger     *slog.Logger
}

// NewSubscriberHandler creates a new SubscriberHandler.
func NewSubscriberHandler(repo *repository.Repository, logger *slog.Logger) *SubscriberHandler {
	return &SubscriberHandler{
		repository: repo,
		logger:     logger,
	}
}

// List handles GET /api/subscribe.
func (h *SubscriberHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.repository.ListSubscribers(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, subs)
}

// Get handles GET /api/subscribe/{id}.
func (h *SubscriberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sub, err := h.repository.GetSubscriberByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sub)
}

// Create handles POST /api/subscribe.
func (h *SubscriberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SubscriberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	sub := &model.Subscriber{
		ID:        ulid.Make().String(),
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.repository.CreateSubscriber(r.Context(), sub); err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("subscriber_created", "subscriber_id", sub.ID)

	writeJSON(w, http.StatusCreated, sub)
}

// Update handles PUT /api/subscribe/{id}.
func (h *SubscriberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.SubscriberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	sub := &model.Subscriber{
		ID:    id,
		Email: req.Email,
	}

	updated, err := h.repository.UpdateSubscriber(r.Context(), sub)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("subscriber_updated", "subscriber_id", updated.ID)

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/subscribe/{id}.
func (h *SubscriberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.repository.DeleteSubscriber(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("subscriber_deleted", "subscriber_id", id)

	writeJSON(w, http.StatusOK, deleted)
}

// handleError maps repository errors to HTTP responses.
func (h *SubscriberHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrSubscriberNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Subscriber not found")
	case errors.Is(err, repository.ErrEmailSubscribed):
		writeError(w, http.StatusConflict, "CONFLICT", "Email already subscribed")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
