package dto

import "time"

// BlogRequest represents the request body for creating or replacing a blog post.
type BlogRequest struct {
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Content      string     `json:"content"`
	Excerpt      string     `json:"excerpt,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Category     string     `json:"category,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
}

// Validate returns the names of required fields that are missing.
func (r *BlogRequest) Validate() []string {
	var missing []string
	if isBlank(r.Title) {
		missing = append(missing, "title")
	}
	if isBlank(r.Slug) {
		missing = append(missing, "slug")
	}
	if isBlank(r.Content) {
		missing = append(missing, "content")
	}
	return missing
}
