package dto

// SubscriberRequest represents the request body for creating or replacing a subscription.
type SubscriberRequest struct {
	Email string `json:"email"`
}

// Validate returns the names of required fields that are missing.
func (r *SubscriberRequest) Validate() []string {
	var missing []string
	if isBlank(r.Email) {
		missing = append(missing, "email")
	}
	return missing
}
