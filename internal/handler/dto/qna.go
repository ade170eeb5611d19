package dto

// QnARequest represents the request body for creating or replacing a Q&A entry.
type QnARequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
	Position int    `json:"position,omitempty"`
}

// Validate returns the names of required fields that are missing.
func (r *QnARequest) Validate() []string {
	var missing []string
	if isBlank(r.Question) {
		missing = append(missing, "question")
	}
	if isBlank(r.Answer) {
		missing = append(missing, "answer")
	}
	return missing
}
