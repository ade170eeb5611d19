package dto

// InquiryRequest represents the request body for creating or replacing a product inquiry.
type InquiryRequest struct {
	Name        string `json:"name"`
	Company     string `json:"company,omitempty"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	Message     string `json:"message"`
}

// Validate returns the names of required fields that are missing.
func (r *InquiryRequest) Validate() []string {
	var missing []string
	if isBlank(r.Name) {
		missing = append(missing, "name")
	}
	if isBlank(r.Email) {
		missing = append(missing, "email")
	}
	if isBlank(r.Message) {
		missing = append(missing, "message")
	}
	return missing
}
