package form

import (
	"context"
	"fmt"

	"github.com/dmfreyre/safeguard-client/internal/api"
	"github.com/dmfreyre/safeguard-client/internal/domain"
	"github.com/dmfreyre/safeguard-client/internal/infra/logging"
	"github.com/dmfreyre/safeguard-client/internal/session"
	"github.com/dmfreyre/safeguard-client/internal/validate"
)

// Signup form field names (email and password are shared with login).
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldMiddleName      = "middleName"
	FieldPhone           = "phone"
	FieldAddress         = "address"
	FieldConfirmPassword = "confirmPassword"
)

// SignupForm validates and submits the account registration form. On top of
// the shared controller it exposes the password requirement flags and
// strength score that drive the signup UI's strength meter.
type SignupForm struct {
	controller

	client   *api.Client
	sessions session.Store
	log      logging.Logger
}

// NewSignupForm creates an empty signup form bound to the given API client
// and session store.
func NewSignupForm(client *api.Client, sessions session.Store) *SignupForm {
	rules := map[string]fieldRule{
		FieldFirstName: func(values map[string]string) *validate.FieldError {
			return validate.Name("First name", values[FieldFirstName])
		},
		FieldLastName: func(values map[string]string) *validate.FieldError {
			return validate.Name("Last name", values[FieldLastName])
		},
		FieldEmail: func(values map[string]string) *validate.FieldError {
			return validate.Email(values[FieldEmail], true)
		},
		FieldPhone: func(values map[string]string) *validate.FieldError {
			return validate.Phone(values[FieldPhone], false)
		},
		FieldPassword: func(values map[string]string) *validate.FieldError {
			return validate.Password(values[FieldPassword])
		},
		FieldConfirmPassword: func(values map[string]string) *validate.FieldError {
			return validate.ConfirmPassword(values[FieldConfirmPassword], values[FieldPassword])
		},
	}

	// Changing the password re-validates a touched confirmation, otherwise
	// a stale mismatch (or stale pass) would linger until the next edit of
	// the confirmation itself.
	dependents := map[string][]string{
		FieldPassword: {FieldConfirmPassword},
	}

	return &SignupForm{
		controller: newController(rules, dependents),
		client:     client,
		sessions:   sessions,
		log:        logging.GetLogger("form.signup"),
	}
}

// Requirements returns the requirement flags for the current password.
func (f *SignupForm) Requirements() validate.PasswordRequirements {
	return validate.CheckPassword(f.Value(FieldPassword))
}

// Score returns the current password strength score.
func (f *SignupForm) Score() int {
	return f.Requirements().Score()
}

// StrengthLabel returns the label for the current score.
func (f *SignupForm) StrengthLabel() string {
	return validate.StrengthLabel(f.Score())
}

// Submittable reports whether the submit control should be enabled: every
// required field present, password and confirmation equal and at full
// strength, and no field errors.
func (f *SignupForm) Submittable() bool {
	return f.requiredPresent(FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldConfirmPassword) &&
		f.Value(FieldPassword) == f.Value(FieldConfirmPassword) &&
		f.Score() == 100 &&
		f.errors.Empty()
}

// Submit re-validates every field, registers the account, and stores the
// resulting session. Field values are preserved on failure.
func (f *SignupForm) Submit(ctx context.Context) (user domain.User, err error) {
	log := f.log

	defer func() {
		if err != nil {
			log.WarnContext(ctx, "signup failed", "error", err)
		} else {
			log.InfoContext(ctx, "account created", "userId", user.ID)
		}
	}()

	f.validateAll()

	if !f.errors.Empty() {
		return domain.User{}, ErrFormInvalid
	}

	resp, err := f.client.Register(ctx, api.RegisterRequest{
		FirstName:  f.Value(FieldFirstName),
		LastName:   f.Value(FieldLastName),
		MiddleName: f.Value(FieldMiddleName),
		Email:      f.Value(FieldEmail),
		Phone:      f.Value(FieldPhone),
		Address:    f.Value(FieldAddress),
		Password:   f.Value(FieldPassword),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("register: %w", err)
	}

	if err := f.sessions.SaveLogin(ctx, resp.User, resp.AccessToken); err != nil {
		return domain.User{}, fmt.Errorf("save session: %w", err)
	}

	return resp.User, nil
}
