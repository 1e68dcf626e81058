package domain

import (
	"errors"
	"time"
)

// ErrActivityNotFound is returned when an activity ID does not exist or
// belongs to another user.
var ErrActivityNotFound = errors.New("activity not found")

// ActivityType identifies the kind of safety event recorded on the timeline.
type ActivityType string

const (
	ActivityLocationShared ActivityType = "location_shared"
	ActivityContactCalled  ActivityType = "contact_called"
	ActivityCheckIn        ActivityType = "check_in"
	ActivityEmergencyAlert ActivityType = "emergency_alert"
)

// ActivityStatus is the outcome of a recorded activity.
type ActivityStatus string

const (
	ActivityStatusSuccess ActivityStatus = "success"
	ActivityStatusPending ActivityStatus = "pending"
	ActivityStatusFailed  ActivityStatus = "failed"
)

// Activity is one entry on a user's safety timeline. Like contacts,
// activities live on the server; the client only renders snapshots.
type Activity struct {
	ID          string         `json:"_id"`         // Unique identifier
	UserID      string         `json:"userId"`      // Owning user
	Type        ActivityType   `json:"type"`        // Event kind
	Description string         `json:"description"` // Human-readable summary
	Status      ActivityStatus `json:"status"`      // success/pending/failed
	Timestamp   time.Time      `json:"timestamp"`   // When the event happened
}
