// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/brandsite/brandsite/internal/handler/dto"
)

// Handler wraps application-level HTTP handlers that are not tied
// to a single resource.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// Root is the service info endpoint.
// GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"service": "brandsite-api",
		"version": "1.0.0",
	}
	writeJSON(w, http.StatusOK, response)
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already written; nothing useful left to do.
		_ = err
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// missingFieldsMessage formats a 400 message from missing field names.
func missingFieldsMessage(fields []string) string {
	return "missing required fields: " + strings.Join(fields, ", ")
}
