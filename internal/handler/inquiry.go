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

// InquiryHandler handles HTTP requests for product inquiries.
type InquiryHandler struct {
	repository *repository.Repository
	logger     *slog.Logger
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(repo *repository.Repository, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{
		repository: repo,
		logger:     logger,
	}
}

// List handles GET /api/requests.
func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.repository.ListInquiries(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, inquiries)
}

// Get handles GET /api/requests/{id}.
func (h *InquiryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	inquiry, err := h.repository.GetInquiryByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, inquiry)
}

// Create handles POST /api/requests.
func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	inquiry := &model.Inquiry{
		ID:          ulid.Make().String(),
		Name:        req.Name,
		Company:     req.Company,
		Email:       req.Email,
		Phone:       req.Phone,
		ProductName: req.ProductName,
		Message:     req.Message,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.repository.CreateInquiry(r.Context(), inquiry); err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("inquiry_created", "inquiry_id", inquiry.ID)

	writeJSON(w, http.StatusCreated, inquiry)
}

// Update handles PUT /api/requests/{id}.
// All mutable fields are replaced with the request values.
func (h *InquiryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if missing := req.Validate(); len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", missingFieldsMessage(missing))
		return
	}

	inquiry := &model.Inquiry{
		ID:          id,
		Name:        req.Name,
		Company:     req.Company,
		Email:       req.Email,
		Phone:       req.Phone,
		ProductName: req.ProductName,
		Message:     req.Message,
	}

	updated, err := h.repository.UpdateInquiry(r.Context(), inquiry)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("inquiry_updated", "inquiry_id", updated.ID)

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/requests/{id}.
func (h *InquiryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.repository.DeleteInquiry(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("inquiry_deleted", "inquiry_id", id)

	writeJSON(w, http.StatusOK, deleted)
}

// handleError maps repository errors to HTTP responses.
func (h *InquiryHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrInquiryNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Inquiry not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
