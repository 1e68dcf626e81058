package http

import (
	"context"
	"net/http"
	"time"

	"github.com/dmfreyre/safeguard-client/internal/infra/logging"
)

// HTTPClientConfig contains configuration parameters for outbound HTTP calls.
type HTTPClientConfig struct {
	// RequestTimeout is the per-request timeout in seconds
	RequestTimeout int64 `env:"REQUEST_TIMEOUT" default:"15"`
}

// TokenSource supplies the bearer token attached to outbound requests.
// Implementations return false when no token is stored, in which case the
// request is sent unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// NewHTTPClient builds an *http.Client whose transport stamps every request
// with a request ID, attaches the bearer token when one is available, and
// logs request/response pairs at a level derived from the response status.
func NewHTTPClient(cfg HTTPClientConfig, tokens TokenSource) *http.Client {
	log := logging.GetLogger("infra.transport.http")

	var transport http.RoundTripper = http.DefaultTransport
	transport = LoggingRoundTripper(transport, log)
	transport = AuthorizingRoundTripper(transport, tokens)
	transport = TracingRoundTripper(transport)

	return &http.Client{
		Transport: transport,
		Timeout:   time.Duration(cfg.RequestTimeout * int64(time.Second)),
	}
}

// roundTripperFunc adapts a function to the http.RoundTripper interface.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
