package model

import "time"

// Media represents a press coverage item linking out to an external article.
type Media struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Outlet      string     `json:"outlet"`
	LinkURL     string     `json:"link_url"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
