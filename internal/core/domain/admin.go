package domain

import "time"

// Admin models an operator account allowed to view the candidate listing.
// Admins are seeded out-of-band (cmd/seed) and never mutated by the API.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
