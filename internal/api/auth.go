package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmfreyre/safeguard-client/internal/domain"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MiddleName string `json:"middleName,omitempty"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	Password   string `json:"password"`
}

// TokenResponse is the server's answer to a successful login or
// registration.
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        domain.User `json:"user"`
}

// Login authenticates with email and password.
// Returns domain.ErrInvalidCredentials when the server rejects the pair.
func (c *Client) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	var resp TokenResponse

	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		if IsUnauthorized(err) {
			return TokenResponse{}, errors.Join(domain.ErrInvalidCredentials, err)
		}

		return TokenResponse{}, err
	}

	return resp, nil
}

// Register creates a new account and signs it in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (TokenResponse, error) {
	var resp TokenResponse

	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return TokenResponse{}, err
	}

	return resp, nil
}
