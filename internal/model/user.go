package model

import "strings"

// User is one registered account as stored in the credential slot.
// Password is kept in plain text; this demo has no hashing.
type User struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DisplayName returns the name, falling back to the email when no name was given.
func (u User) DisplayName() string {
	if strings.TrimSpace(u.Name) != "" {
		return u.Name
	}
	return u.Email
}

// SameEmail reports whether email matches the user's email, ignoring case.
func (u User) SameEmail(email string) bool {
	return strings.EqualFold(u.Email, email)
}
