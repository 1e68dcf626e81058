package http

import (
	"net/http"

	"github.com/google/uuid"

	context_ "github.com/dmfreyre/safeguard-client/internal/infra/context"
)

const RequestIDHeader = "X-Request-ID"

// TracingRoundTripper stamps each outbound request with an identifier.
// It reuses the request ID already carried on the context if present,
// otherwise generates a new UUIDv7. The ID is sent as X-Request-ID and made
// available to inner round-trippers through the request context, so a caller
// holding the ID can recognize and discard responses from superseded calls.
func TracingRoundTripper(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		requestID, ok := context_.RequestIDFromContext(r.Context())
		if !ok {
			requestID = newRequestID()
			r = r.WithContext(context_.WithRequestID(r.Context(), requestID))
		}

		r.Header.Set(RequestIDHeader, requestID)

		//nolint:wrapcheck
		return next.RoundTrip(r)
	})
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the entropy source does; fall back to the
		// random-based variant rather than sending no ID at all.
		return uuid.NewString()
	}

	return id.String()
}
