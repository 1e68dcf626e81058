package http

import (
	"log/slog"
	"net/http"

	"github.com/dmfreyre/safeguard-client/internal/infra/logging"
)

// LoggingRoundTripper logs outbound HTTP request and response details.
// Requests are logged at DEBUG level and responses at a level determined by
// the status code:
// - 5xx: ERROR
// - 4xx: WARN
// - Other: DEBUG.
func LoggingRoundTripper(next http.RoundTripper, log logging.Logger) http.RoundTripper {
	//nolint:varnamelen
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		log.DebugContext(r.Context(), "request", slog.Group("http",
			"url", r.URL.String(),
			"method", r.Method,
		))

		resp, err := next.RoundTrip(r)
		if err != nil {
			log.ErrorContext(r.Context(), "request failed", slog.Group("http",
				"url", r.URL.String(),
				"method", r.Method,
			), "error", err)

			//nolint:wrapcheck
			return nil, err
		}

		var level logging.Level

		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			level = logging.LevelError
		case resp.StatusCode >= http.StatusBadRequest:
			level = logging.LevelWarn
		default:
			level = logging.LevelDebug
		}

		log.Log(r.Context(), level, "response", slog.Group("http",
			"url", r.URL.String(),
			"method", r.Method,
			"status", resp.StatusCode,
		))

		return resp, nil
	})
}
