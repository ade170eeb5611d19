package model

import "time"

// Inquiry represents a product inquiry submitted through the contact form.
// ProductName is free text, not a reference into the products table.
type Inquiry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ProductName string    `json:"product_name"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
