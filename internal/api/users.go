package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmfreyre/safeguard-client/internal/domain"
)

// ProfileUpdate is the body of PUT /users/me. Nil fields are omitted and
// left untouched by the server.
type ProfileUpdate struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	MiddleName *string `json:"middleName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
}

// Me fetches the signed-in user's profile. A 401 means the stored token is
// no longer accepted, surfaced as domain.ErrSessionExpired.
func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var user domain.User

	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		if IsUnauthorized(err) {
			return domain.User{}, errors.Join(domain.ErrSessionExpired, err)
		}

		return domain.User{}, err
	}

	return user, nil
}

// UpdateProfile updates the signed-in user's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (domain.User, error) {
	var user domain.User

	if err := c.do(ctx, http.MethodPut, "/users/me", update, &user); err != nil {
		if IsUnauthorized(err) {
			return domain.User{}, errors.Join(domain.ErrSessionExpired, err)
		}

		return domain.User{}, err
	}

	return user, nil
}
