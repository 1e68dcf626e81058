package form_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfreyre/safeguard-client/internal/api"
	"github.com/dmfreyre/safeguard-client/internal/domain"
	"github.com/dmfreyre/safeguard-client/internal/form"
	"github.com/dmfreyre/safeguard-client/internal/session"
)

// strongPassword satisfies every password requirement.
const strongPassword = "Abc12345!"

func newClient(t *testing.T, handler http.Handler) (*api.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return api.NewClient(api.ClientConfig{BaseURL: server.URL}, nil), server
}

// countingHandler counts requests and fails the test on any; forms whose
// validation fails must never reach the network.
func countingHandler(t *testing.T, hits *int) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	})
}

func TestLoginFormValidation(t *testing.T) {
	client, _ := newClient(t, http.NotFoundHandler())
	f := form.NewLoginForm(client, session.NewMemoryStore())

	assert.False(t, f.Submittable())

	msg := f.ValidateField(form.FieldEmail, "not-an-email")
	assert.Equal(t, "Please enter a valid email address", msg)
	assert.False(t, f.Submittable())

	msg = f.ValidateField(form.FieldEmail, "ana@example.com")
	assert.Empty(t, msg)

	msg = f.ValidateField(form.FieldPassword, "")
	assert.Equal(t, "Password is required", msg)

	msg = f.ValidateField(form.FieldPassword, "whatever")
	assert.Empty(t, msg)
	assert.True(t, f.Submittable())
}

func TestLoginFormSubmitInvalidSendsNothing(t *testing.T) {
	var hits int

	client, _ := newClient(t, countingHandler(t, &hits))
	f := form.NewLoginForm(client, session.NewMemoryStore())

	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, form.ErrFormInvalid)
	assert.Zero(t, hits)
	assert.Equal(t, "Email is required", f.Errors().Message(form.FieldEmail))
	assert.Equal(t, "Password is required", f.Errors().Message(form.FieldPassword))
}

func TestLoginFormSubmitStoresSession(t *testing.T) {
	user := domain.User{ID: "u-1", FirstName: "Ana", LastName: "Reyes", Email: "ana@example.com"}

	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@example.com", req.Email)

		json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken: "tok-123",
			TokenType:   "bearer",
			User:        user,
		})
	}))

	store := session.NewMemoryStore()
	f := form.NewLoginForm(client, store)
	f.ValidateField(form.FieldEmail, "ana@example.com")
	f.ValidateField(form.FieldPassword, "hunter2hunter2")

	got, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user, got)

	assert.True(t, store.IsAuthenticated(context.Background()))

	token, ok := store.Token(context.Background())
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)
}

func TestLoginFormSubmitFailurePreservesValues(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect email or password"})
	}))

	store := session.NewMemoryStore()
	f := form.NewLoginForm(client, store)
	f.ValidateField(form.FieldEmail, "ana@example.com")
	f.ValidateField(form.FieldPassword, "wrong-password")

	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, "Incorrect email or password", api.ErrorMessage(err))

	// A failed attempt keeps the typed values for retry and stores no session.
	assert.Equal(t, "ana@example.com", f.Value(form.FieldEmail))
	assert.Equal(t, "wrong-password", f.Value(form.FieldPassword))
	assert.False(t, store.IsAuthenticated(context.Background()))
}

func TestSignupFormConfirmRevalidatesOnPasswordChange(t *testing.T) {
	client, _ := newClient(t, http.NotFoundHandler())
	f := form.NewSignupForm(client, session.NewMemoryStore())

	f.ValidateField(form.FieldPassword, strongPassword)
	msg := f.ValidateField(form.FieldConfirmPassword, strongPassword)
	assert.Empty(t, msg)

	// Editing the password must re-check the already touched confirmation.
	f.ValidateField(form.FieldPassword, strongPassword+"x")
	assert.Equal(t, "Passwords do not match", f.Errors().Message(form.FieldConfirmPassword))

	f.ValidateField(form.FieldPassword, strongPassword)
	assert.Empty(t, f.Errors().Message(form.FieldConfirmPassword))
}

func TestSignupFormConfirmUntouchedNotValidated(t *testing.T) {
	client, _ := newClient(t, http.NotFoundHandler())
	f := form.NewSignupForm(client, session.NewMemoryStore())

	f.ValidateField(form.FieldPassword, strongPassword)

	// The confirmation has never been edited, so no error shows yet.
	assert.Empty(t, f.Errors().Message(form.FieldConfirmPassword))
}

func TestSignupFormStrengthMeter(t *testing.T) {
	client, _ := newClient(t, http.NotFoundHandler())
	f := form.NewSignupForm(client, session.NewMemoryStore())

	f.ValidateField(form.FieldPassword, "Abc12345")
	assert.Equal(t, 80, f.Score())
	assert.Equal(t, "Good", f.StrengthLabel())

	f.ValidateField(form.FieldPassword, strongPassword)
	assert.Equal(t, 100, f.Score())
	assert.Equal(t, "Strong", f.StrengthLabel())
}

func TestSignupFormSubmittable(t *testing.T) {
	client, _ := newClient(t, http.NotFoundHandler())
	f := form.NewSignupForm(client, session.NewMemoryStore())

	f.ValidateField(form.FieldFirstName, "Ana")
	f.ValidateField(form.FieldLastName, "Reyes")
	f.ValidateField(form.FieldEmail, "ana@example.com")
	f.ValidateField(form.FieldPassword, "Abc12345")
	f.ValidateField(form.FieldConfirmPassword, "Abc12345")

	// Matching but below full strength stays blocked.
	assert.False(t, f.Submittable())

	f.ValidateField(form.FieldPassword, strongPassword)
	f.ValidateField(form.FieldConfirmPassword, strongPassword)
	assert.True(t, f.Submittable())
}

func TestSignupFormSubmit(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)

		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ana", req.FirstName)
		assert.Equal(t, strongPassword, req.Password)

		json.NewEncoder(w).Encode(api.TokenResponse{
			AccessToken: "tok-456",
			TokenType:   "bearer",
			User:        domain.User{ID: "u-2", FirstName: req.FirstName, LastName: req.LastName, Email: req.Email},
		})
	}))

	store := session.NewMemoryStore()
	f := form.NewSignupForm(client, store)
	f.ValidateField(form.FieldFirstName, "Ana")
	f.ValidateField(form.FieldLastName, "Reyes")
	f.ValidateField(form.FieldEmail, "ana@example.com")
	f.ValidateField(form.FieldPassword, strongPassword)
	f.ValidateField(form.FieldConfirmPassword, strongPassword)

	user, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u-2", user.ID)
	assert.True(t, store.IsAuthenticated(context.Background()))
}

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		firstName string
		lastName  string
	}{
		{"two tokens", "Maria Lopez", "Maria", "Lopez"},
		{"three tokens", "Maria Lopez Cruz", "Maria", "Lopez Cruz"},
		{"single token", "Maria", "Maria", form.LastNamePlaceholder},
		{"surrounding space", "  Maria   Lopez  ", "Maria", "Lopez"},
		{"empty", "", "", form.LastNamePlaceholder},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			first, last := form.SplitFullName(tc.input)
			assert.Equal(t, tc.firstName, first)
			assert.Equal(t, tc.lastName, last)
		})
	}
}

func TestContactFormValidation(t *testing.T) {
	client, _ := newClient(t, http.NotFoundHandler())
	f := form.NewContactForm(client, session.NewMemoryStore())

	assert.Equal(t, "Name is required", f.ValidateField(form.FieldName, ""))
	assert.Empty(t, f.ValidateField(form.FieldName, "Maria Lopez"))

	// The dashboard accepts formatted numbers the signup form would reject.
	assert.Empty(t, f.ValidateField(form.FieldPhone, "(555) 123-4567"))
	assert.Equal(t, "Please enter a valid phone number", f.ValidateField(form.FieldPhone, "123"))
	f.ValidateField(form.FieldPhone, "(555) 123-4567")

	assert.Equal(t, "Please select a relationship", f.ValidateField(form.FieldRelationship, ""))
	f.ValidateField(form.FieldRelationship, "Sister")

	assert.True(t, f.Submittable())
}

func TestContactFormSubmit(t *testing.T) {
	var got api.CreateContactRequest

	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/contacts/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(domain.Contact{
			ID:           "c-1",
			UserID:       got.UserID,
			FirstName:    got.FirstName,
			LastName:     got.LastName,
			Phone:        got.Phone,
			Relationship: got.Relationship,
			Priority:     got.Priority,
		})
	}))

	store := session.NewMemoryStore()
	require.NoError(t, store.SaveLogin(context.Background(), domain.User{ID: "u-1", Email: "ana@example.com"}, "tok"))

	f := form.NewContactForm(client, store)
	f.ValidateField(form.FieldName, "Maria Lopez Cruz")
	f.ValidateField(form.FieldPhone, "(555) 123-4567")
	f.ValidateField(form.FieldRelationship, "Sister")

	contact, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "c-1", contact.ID)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, "Maria", got.FirstName)
	assert.Equal(t, "Lopez Cruz", got.LastName)
	// No priority picked defaults to medium.
	assert.Equal(t, domain.PriorityMedium, got.Priority)
}

func TestContactFormSubmitSingleNamePlaceholder(t *testing.T) {
	var got api.CreateContactRequest

	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(domain.Contact{ID: "c-2"})
	}))

	store := session.NewMemoryStore()
	require.NoError(t, store.SaveLogin(context.Background(), domain.User{ID: "u-1"}, "tok"))

	f := form.NewContactForm(client, store)
	f.ValidateField(form.FieldName, "Maria")
	f.ValidateField(form.FieldPhone, "0912 345 6789")
	f.ValidateField(form.FieldRelationship, "Friend")
	f.ValidateField(form.FieldPriority, string(domain.PriorityHigh))

	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Maria", got.FirstName)
	assert.Equal(t, form.LastNamePlaceholder, got.LastName)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
}

func TestContactFormSubmitRequiresSession(t *testing.T) {
	var hits int

	client, _ := newClient(t, countingHandler(t, &hits))
	f := form.NewContactForm(client, session.NewMemoryStore())
	f.ValidateField(form.FieldName, "Maria Lopez")
	f.ValidateField(form.FieldPhone, "0912 345 6789")
	f.ValidateField(form.FieldRelationship, "Friend")

	_, err := f.Submit(context.Background())
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Zero(t, hits)
}

func TestContactFormReset(t *testing.T) {
	client, _ := newClient(t, http.NotFoundHandler())
	f := form.NewContactForm(client, session.NewMemoryStore())

	f.ValidateField(form.FieldName, "")
	require.False(t, f.Errors().Empty())

	f.Reset()
	assert.True(t, f.Errors().Empty())
	assert.Empty(t, f.Value(form.FieldName))
	assert.False(t, f.Submittable())
}
