package entity

import (
	"time"
)

// User is the aggregate root for the user domain. An account is
// created either locally (Email + PasswordHash set) or on first
// Facebook login (FacebookID + DisplayName set); the two paths share
// one identifier space. Passwords are stored as bcrypt hashes.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FacebookID   string
	DisplayName  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the account can be verified locally.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
