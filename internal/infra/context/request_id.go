package context

import (
	"context"
)

const contextKeyRequestID = contextKey("requestID")

// RequestIDFromContext extracts the outbound request ID from the context.
// Returns the ID and true if present, or empty string and false if not.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(contextKeyRequestID).(string)

	return requestID, ok
}

// WithRequestID creates a new context carrying the given request ID.
// The ID identifies one outbound API call in logs and on the wire, and lets
// a caller discard responses that belong to a superseded request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}
