package dto

import "time"

// AwardRequest represents the request body for creating or replacing an award.
type AwardRequest struct {
	Title       string     `json:"title"`
	Issuer      string     `json:"issuer"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	AwardedAt   *time.Time `json:"awarded_at,omitempty"`
}

// Validate returns the names of required fields that are missing.
func (r *AwardRequest) Validate() []string {
	var missing []string
	if isBlank(r.Title) {
		missing = append(missing, "title")
	}
	if isBlank(r.Issuer) {
		missing = append(missing, "issuer")
	}
	return missing
}
