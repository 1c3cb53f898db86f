package domain

import "strings"

type UserProfile struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
}

type LoginCredentials struct {
	Username string
	Password string
}

type Registration struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
}

// Validate runs the client-side checks that must reject a registration
// before any network call is made.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return &ValidationError{Field: "username", Message: "Username is required"}
	}
	if strings.TrimSpace(r.Email) == "" {
		return &ValidationError{Field: "email", Message: "Email is required"}
	}
	if r.Password == "" {
		return &ValidationError{Field: "password", Message: "Password is required"}
	}
	if r.Password != r.PasswordConfirm {
		return &ValidationError{Field: "password_confirm", Message: "Passwords do not match"}
	}
	return nil
}
