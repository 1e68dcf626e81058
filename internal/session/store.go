// Package session persists the signed-in user's profile and auth token
// between runs, playing the role the browser's localStorage plays for the
// web client. State is present-XOR-absent: login/signup write the whole
// session in one step, logout removes the whole session in one step, and no
// partially written session is ever observable.
package session

import (
	"context"

	"github.com/dmfreyre/safeguard-client/internal/domain"
)

// Storage keys. These mirror the web client's localStorage entries verbatim
// so both clients can be reasoned about with the same vocabulary.
const (
	KeyUserData        = "userData"
	KeyUserEmail       = "userEmail"
	KeyUserID          = "userId"
	KeyIsAuthenticated = "isAuthenticated"
	KeyAuthToken       = "authToken"
)

// Store defines the interface for session persistence.
type Store interface {
	// SaveLogin replaces the stored session with the given user and token
	// atomically. An empty token stores no authToken entry.
	SaveLogin(ctx context.Context, user domain.User, token string) error

	// User retrieves the stored profile.
	// Returns the user and true if a session is present, or false if not.
	User(ctx context.Context) (domain.User, bool, error)

	// Token returns the stored auth token, if any. It satisfies the
	// transport layer's TokenSource so outbound requests pick up the
	// bearer token automatically.
	Token(ctx context.Context) (string, bool)

	// IsAuthenticated reports whether a session is present. It is true if
	// and only if User would return a profile.
	IsAuthenticated(ctx context.Context) bool

	// Clear removes every stored key atomically. Clearing an empty store
	// is not an error.
	Clear(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}

// StoreFactory is a function that creates a new Store instance.
// Returns an error if initialization fails.
type StoreFactory func() (Store, error)
