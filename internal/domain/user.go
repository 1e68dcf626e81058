package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotAuthenticated is returned when an operation requires a signed-in
	// user but the session store holds none.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionExpired is returned when a stored session exists but the
	// server no longer accepts its token.
	ErrSessionExpired = errors.New("session expired")
	// ErrInvalidCredentials is returned when the email/password combination
	// is rejected by the server.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is the profile of a SafeGuard account as returned by the API.
// The server serializes Mongo documents, hence the "_id" key.
type User struct {
	ID          string `json:"_id"`                  // Unique identifier
	FirstName   string `json:"firstName"`            // Given name
	LastName    string `json:"lastName"`             // Family name
	MiddleName  string `json:"middleName,omitempty"` // Optional middle name
	Email       string `json:"email"`                // Login email
	Phone       string `json:"phone,omitempty"`      // Optional phone number
	Address     string `json:"address,omitempty"`    // Optional home address
	SafetyScore int    `json:"safetyScore"`          // Server-computed score (0-100)
}

// FullName returns the user's display name, skipping empty name parts.
func (u User) FullName() string {
	parts := make([]string, 0, 2)

	for _, p := range []string{u.FirstName, u.LastName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, " ")
}
