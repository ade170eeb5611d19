package model

import "time"

// Subscriber represents a newsletter subscription.
// Email is unique; a duplicate subscription is rejected by the database.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
