package context

import (
	"context"
)

const contextKeyUserID = contextKey("userID")

// UserIDFromContext extracts the signed-in user's ID from the context.
// Returns the ID and true if present, or empty string and false if not.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(contextKeyUserID).(string)

	return userID, ok
}

// WithUserID creates a new context carrying the signed-in user's ID so that
// log records emitted below the form/dashboard layer can be attributed.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKeyUserID, userID)
}
