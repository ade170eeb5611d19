package dto

// ProductRequest represents the request body for creating or replacing a product.
type ProductRequest struct {
	Name              string   `json:"name"`
	Summary           string   `json:"summary,omitempty"`
	Description       string   `json:"description"`
	ImageURL          string   `json:"image_url,omitempty"`
	Category          string   `json:"category,omitempty"`
	RelatedProductIDs []string `json:"related_product_ids,omitempty"`
	Position          int      `json:"position,omitempty"`
}

// Validate returns the names of required fields that are missing.
func (r *ProductRequest) Validate() []string {
	var missing []string
	if isBlank(r.Name) {
		missing = append(missing, "name")
	}
	if isBlank(r.Description) {
		missing = append(missing, "description")
	}
	return missing
}
