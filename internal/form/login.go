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

// Login form field names.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// LoginForm validates and submits the login form.
type LoginForm struct {
	controller

	client   *api.Client
	sessions session.Store
	log      logging.Logger
}

// NewLoginForm creates an empty login form bound to the given API client and
// session store.
func NewLoginForm(client *api.Client, sessions session.Store) *LoginForm {
	rules := map[string]fieldRule{
		FieldEmail: func(values map[string]string) *validate.FieldError {
			return validate.Email(values[FieldEmail], true)
		},
		FieldPassword: func(values map[string]string) *validate.FieldError {
			// Strength rules apply at signup; login only requires presence.
			if values[FieldPassword] == "" {
				return &validate.FieldError{
					Reason:  validate.ReasonRequired,
					Message: "Password is required",
				}
			}

			return nil
		},
	}

	return &LoginForm{
		controller: newController(rules, nil),
		client:     client,
		sessions:   sessions,
		log:        logging.GetLogger("form.login"),
	}
}

// Submittable reports whether the submit control should be enabled. It is
// re-derived after every field validation, not only at submit time.
func (f *LoginForm) Submittable() bool {
	return f.requiredPresent(FieldEmail, FieldPassword) && f.errors.Empty()
}

// Submit re-validates every field, then authenticates and stores the
// session. Field values are preserved on failure so the user can retry.
func (f *LoginForm) Submit(ctx context.Context) (user domain.User, err error) {
	log := f.log

	defer func() {
		if err != nil {
			log.WarnContext(ctx, "login failed", "error", err)
		} else {
			log.InfoContext(ctx, "login successful", "userId", user.ID)
		}
	}()

	f.validateAll()

	if !f.errors.Empty() {
		return domain.User{}, ErrFormInvalid
	}

	resp, err := f.client.Login(ctx, api.LoginRequest{
		Email:    f.Value(FieldEmail),
		Password: f.Value(FieldPassword),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("login: %w", err)
	}

	if err := f.sessions.SaveLogin(ctx, resp.User, resp.AccessToken); err != nil {
		return domain.User{}, fmt.Errorf("save session: %w", err)
	}

	return resp.User, nil
}
