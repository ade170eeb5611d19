// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "strings"

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// isBlank reports whether a field is empty after trimming whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
