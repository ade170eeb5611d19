package dto

import "time"

// MediaRequest represents the request body for creating or replacing a press coverage item.
type MediaRequest struct {
	Title       string     `json:"title"`
	Outlet      string     `json:"outlet,omitempty"`
	LinkURL     string     `json:"link_url"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// Validate returns the names of required fields that are missing.
func (r *MediaRequest) Validate() []string {
	var missing []string
	if isBlank(r.Title) {
		missing = append(missing, "title")
	}
	if isBlank(r.LinkURL) {
		missing = append(missing, "link_url")
	}
	return missing
}
