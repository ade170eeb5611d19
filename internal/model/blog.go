// Package model defines domain entities for the application.
package model

import "time"

// Blog represents a blog post on the marketing site.
// Slug is unique across all posts and forms the public URL.
type Blog struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Content      string     `json:"content"`
	Excerpt      string     `json:"excerpt"`
	ThumbnailURL string     `json:"thumbnail_url"`
	Category     string     `json:"category"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
