package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmfreyre/safeguard-client/internal/api"
	"github.com/dmfreyre/safeguard-client/internal/domain"
	"github.com/dmfreyre/safeguard-client/internal/infra/logging"
	"github.com/dmfreyre/safeguard-client/internal/session"
	"github.com/dmfreyre/safeguard-client/internal/validate"
)

// Contact form field names.
const (
	FieldName         = "name"
	FieldRelationship = "relationship"
	FieldPriority     = "priority"
)

// LastNamePlaceholder is stored as the last name when the free-text contact
// name holds a single token. The server requires a non-empty last name, so
// the placeholder keeps single-name contacts accepted.
const LastNamePlaceholder = "N/A"

// ContactForm validates and submits the dashboard's add-contact form. The
// form takes a single free-text name that is split into first/last name at
// submit time, and uses the looser dashboard phone rule.
type ContactForm struct {
	controller

	client   *api.Client
	sessions session.Store
	log      logging.Logger
}

// NewContactForm creates an empty add-contact form bound to the given API
// client and session store.
func NewContactForm(client *api.Client, sessions session.Store) *ContactForm {
	rules := map[string]fieldRule{
		FieldName: func(values map[string]string) *validate.FieldError {
			return validate.Name("Name", values[FieldName])
		},
		FieldPhone: func(values map[string]string) *validate.FieldError {
			return validate.LoosePhone(values[FieldPhone])
		},
		FieldEmail: func(values map[string]string) *validate.FieldError {
			return validate.Email(values[FieldEmail], false)
		},
		FieldRelationship: func(values map[string]string) *validate.FieldError {
			return validate.Relationship(values[FieldRelationship])
		},
	}

	return &ContactForm{
		controller: newController(rules, nil),
		client:     client,
		sessions:   sessions,
		log:        logging.GetLogger("form.contact"),
	}
}

// SplitFullName splits a free-text name into first and last name: the first
// whitespace-separated token becomes the first name and the remaining tokens
// joined by single spaces become the last name. A single-token name gets
// LastNamePlaceholder as last name.
func SplitFullName(fullName string) (firstName, lastName string) {
	tokens := strings.Fields(fullName)
	if len(tokens) == 0 {
		return "", LastNamePlaceholder
	}

	firstName = tokens[0]
	lastName = strings.Join(tokens[1:], " ")

	if lastName == "" {
		lastName = LastNamePlaceholder
	}

	return firstName, lastName
}

// Submittable reports whether the submit control should be enabled.
func (f *ContactForm) Submittable() bool {
	return f.requiredPresent(FieldName, FieldPhone, FieldRelationship) && f.errors.Empty()
}

// Submit re-validates every field and creates the contact for the signed-in
// user. Returns domain.ErrNotAuthenticated when no session is stored. Field
// values are preserved on failure.
func (f *ContactForm) Submit(ctx context.Context) (contact domain.Contact, err error) {
	log := f.log

	defer func() {
		if err != nil {
			log.WarnContext(ctx, "add contact failed", "error", err)
		} else {
			log.InfoContext(ctx, "contact added", "contactId", contact.ID)
		}
	}()

	f.validateAll()

	if !f.errors.Empty() {
		return domain.Contact{}, ErrFormInvalid
	}

	user, ok, err := f.sessions.User(ctx)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return domain.Contact{}, domain.ErrNotAuthenticated
	}

	priority := domain.Priority(f.Value(FieldPriority))
	if !priority.Valid() {
		priority = domain.PriorityMedium
	}

	firstName, lastName := SplitFullName(f.Value(FieldName))

	created, err := f.client.CreateContact(ctx, api.CreateContactRequest{
		UserID:       user.ID,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        strings.TrimSpace(f.Value(FieldPhone)),
		Email:        strings.TrimSpace(f.Value(FieldEmail)),
		Relationship: f.Value(FieldRelationship),
		Priority:     priority,
	})
	if err != nil {
		return domain.Contact{}, fmt.Errorf("create contact: %w", err)
	}

	return created, nil
}
