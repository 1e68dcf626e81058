package domain

import "errors"

// ErrContactNotFound is returned when a contact ID does not exist or belongs
// to another user.
var ErrContactNotFound = errors.New("contact not found")

// Priority classifies how urgently an emergency contact should be reached.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the priorities the server accepts.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Contact is an emergency contact owned by a user. The client never stores
// contacts durably; instances are transient snapshots of the latest fetch.
type Contact struct {
	ID           string   `json:"_id"`                  // Unique identifier
	UserID       string   `json:"userId"`               // Owning user
	FirstName    string   `json:"firstName"`            // Given name
	LastName     string   `json:"lastName"`             // Family name
	MiddleName   string   `json:"middleName,omitempty"` // Optional middle name
	Phone        string   `json:"phone"`                // Contact phone number
	Email        string   `json:"email,omitempty"`      // Optional email
	Address      string   `json:"address,omitempty"`    // Optional address
	Relationship string   `json:"relationship"`         // e.g. "family", "friend"
	Priority     Priority `json:"priority"`             // high/medium/low
	IsOnline     bool     `json:"isOnline,omitempty"`   // Presence hint from the server
}

// FullName returns the contact's display name.
func (c Contact) FullName() string {
	return User{FirstName: c.FirstName, LastName: c.LastName}.FullName()
}
