package models

import "time"

// User is an account holder. PasswordHash is a bcrypt hash and must
// never leave the server.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}
