package model

import "time"

// Award represents an award or certification held by the company.
type Award struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Issuer      string     `json:"issuer"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	AwardedAt   *time.Time `json:"awarded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
