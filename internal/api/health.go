package api

import (
	"context"
	"net/http"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health checks whether the SafeGuard API is reachable and healthy.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse

	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return HealthResponse{}, err
	}

	return resp, nil
}
