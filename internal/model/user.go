package model

import "github.com/google/uuid"

// User represents an administrator account allowed to publish issues.
type User struct {
	ID           uuid.UUID `json:"user_id"`  // unique identifier for the user
	Username     string    `json:"username"` // login name
	PasswordHash string    `json:"-"`        // bcrypt hash of the password
}
