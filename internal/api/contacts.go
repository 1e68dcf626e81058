package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmfreyre/safeguard-client/internal/domain"
)

// CreateContactRequest is the body of POST /contacts/.
type CreateContactRequest struct {
	UserID       string          `json:"userId"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	MiddleName   string          `json:"middleName,omitempty"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email,omitempty"`
	Address      string          `json:"address,omitempty"`
	Relationship string          `json:"relationship"`
	Priority     domain.Priority `json:"priority"`
}

// UpdateContactRequest is the body of PUT /contacts/{id}. Nil fields are
// omitted and left untouched by the server.
type UpdateContactRequest struct {
	FirstName    *string          `json:"firstName,omitempty"`
	LastName     *string          `json:"lastName,omitempty"`
	MiddleName   *string          `json:"middleName,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Address      *string          `json:"address,omitempty"`
	Relationship *string          `json:"relationship,omitempty"`
	Priority     *domain.Priority `json:"priority,omitempty"`
}

// Contacts lists every emergency contact belonging to the given user.
func (c *Client) Contacts(ctx context.Context, userID string) ([]domain.Contact, error) {
	var contacts []domain.Contact

	if err := c.do(ctx, http.MethodGet, "/contacts/user/"+userID, nil, &contacts); err != nil {
		return nil, err
	}

	return contacts, nil
}

// Contact fetches a single contact by ID.
func (c *Client) Contact(ctx context.Context, contactID string) (domain.Contact, error) {
	var contact domain.Contact

	if err := c.do(ctx, http.MethodGet, "/contacts/"+contactID, nil, &contact); err != nil {
		if IsNotFound(err) {
			return domain.Contact{}, errors.Join(domain.ErrContactNotFound, err)
		}

		return domain.Contact{}, err
	}

	return contact, nil
}

// CreateContact creates an emergency contact for the given user.
func (c *Client) CreateContact(ctx context.Context, req CreateContactRequest) (domain.Contact, error) {
	var contact domain.Contact

	if err := c.do(ctx, http.MethodPost, "/contacts/", req, &contact); err != nil {
		return domain.Contact{}, err
	}

	return contact, nil
}

// UpdateContact updates fields of an existing contact.
func (c *Client) UpdateContact(ctx context.Context, contactID string, req UpdateContactRequest) (domain.Contact, error) {
	var contact domain.Contact

	if err := c.do(ctx, http.MethodPut, "/contacts/"+contactID, req, &contact); err != nil {
		if IsNotFound(err) {
			return domain.Contact{}, errors.Join(domain.ErrContactNotFound, err)
		}

		return domain.Contact{}, err
	}

	return contact, nil
}

// DeleteContact removes a contact.
func (c *Client) DeleteContact(ctx context.Context, contactID string) error {
	if err := c.do(ctx, http.MethodDelete, "/contacts/"+contactID, nil, nil); err != nil {
		if IsNotFound(err) {
			return errors.Join(domain.ErrContactNotFound, err)
		}

		return err
	}

	return nil
}
