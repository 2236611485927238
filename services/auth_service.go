package services

import (
	"errors"
	"strings"

	"luxelane/models"
)

var ErrEmptyCredentials = errors.New("email and password are required")

// MockAuthenticator is a trusted-input, always-succeeds login stub: any
// non-empty email/password pair is accepted and no verification happens.
// This is NOT security-equivalent to a real auth system; replace it before
// using this service anywhere with real stakes.
type MockAuthenticator struct{}

func NewMockAuthenticator() *MockAuthenticator {
	return &MockAuthenticator{}
}

// Authenticate validates that both fields are non-empty and derives the
// display name from the email's local part.
func (a *MockAuthenticator) Authenticate(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrEmptyCredentials
	}
	name := email
	if at := strings.Index(email, "@"); at >= 0 {
		name = email[:at]
	}
	return models.User{Name: name, Email: email}, nil
}
