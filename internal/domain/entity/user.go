package entity

import (
	"net/mail"
	"time"
)

// User represents an account in the system.
// The password is stored only in hashed form; handlers never expose it.
type User struct {
	ID             int64
	Email          string
	HashedPassword string
	FullName       *string
	Active         bool
	Superuser      bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Validate validates the User entity fields.
func (u *User) Validate() error {
	if u.Email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return &ValidationError{Field: "email", Message: "is not a valid address"}
	}
	if u.HashedPassword == "" {
		return &ValidationError{Field: "hashed_password", Message: "is required"}
	}
	return nil
}
