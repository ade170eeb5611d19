package model

import "time"

// Product represents a product page.
// RelatedProductIDs are loose references kept as free-form text;
// the database does not enforce them.
type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Summary           string    `json:"summary"`
	Description       string    `json:"description"`
	ImageURL          string    `json:"image_url"`
	Category          string    `json:"category"`
	RelatedProductIDs []string  `json:"related_product_ids"`
	Position          int       `json:"position"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
