package http

import (
	"net/http"
)

const AuthorizationHeader = "Authorization"

// AuthorizingRoundTripper attaches a bearer token from the given TokenSource
// to each outbound request. Requests are sent unauthenticated when the source
// holds no token or when the caller already set an Authorization header.
func AuthorizingRoundTripper(next http.RoundTripper, tokens TokenSource) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		if tokens != nil && r.Header.Get(AuthorizationHeader) == "" {
			if token, ok := tokens.Token(r.Context()); ok {
				r.Header.Set(AuthorizationHeader, "Bearer "+token)
			}
		}

		//nolint:wrapcheck
		return next.RoundTrip(r)
	})
}
