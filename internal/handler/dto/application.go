package dto

// ApplicationRequest represents the request body for creating or replacing a job application.
type ApplicationRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Role        string `json:"role"`
	ResumeURL   string `json:"resume_url,omitempty"`
	CoverLetter string `json:"cover_letter,omitempty"`
}

// Validate returns the names of required fields that are missing.
func (r *ApplicationRequest) Validate() []string {
	var missing []string
	if isBlank(r.Name) {
		missing = append(missing, "name")
	}
	if isBlank(r.Email) {
		missing = append(missing, "email")
	}
	if isBlank(r.Role) {
		missing = append(missing, "role")
	}
	return missing
}
