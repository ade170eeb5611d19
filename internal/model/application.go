package model

import "time"

// Application represents a job application submitted through the careers page.
type Application struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	ResumeURL   string    `json:"resume_url"`
	CoverLetter string    `json:"cover_letter"`
	CreatedAt   time.Time `json:"created_at"`
}
