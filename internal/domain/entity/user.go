package entity

import "time"

// User is a credential record. The password is stored only as a bcrypt
// hash, never in plaintext. Handlers expose users through DTOs, so the
// hash never leaves the process even though it round-trips through the
// store as JSON.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
