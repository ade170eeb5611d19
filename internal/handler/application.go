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

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	repository *repository.Repository
	logger     *slog.Logger
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(repo *repository.Repository, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		repository: repo,
		logger:     logger,
	}
}

// List handles GET /api/apply.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.repository.ListApplications(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, apps)
}

// Get handles GET /api/apply/{id}.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	app, err := h.repository.GetApplicationByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, app)
}

// Create handles POST /api/apply.
func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	app := &model.Application{
		ID:          ulid.Make().String(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Role:        req.Role,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.repository.CreateApplication(r.Context(), app); err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("application_created",
		"application_id", app.ID,
		"role", app.Role,
	)

	writeJSON(w, http.StatusCreated, app)
}

// Update handles PUT /api/apply/{id}.
// All mutable fields are replaced with the request values.
func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.ApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	app := &model.Application{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Role:        req.Role,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	}

	updated, err := h.repository.UpdateApplication(r.Context(), app)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("application_updated", "application_id", updated.ID)

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/apply/{id}.
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.repository.DeleteApplication(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("application_deleted", "application_id", id)

	writeJSON(w, http.StatusOK, deleted)
}

// handleError maps repository errors to HTTP responses.
func (h *ApplicationHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrApplicationNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Application not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
