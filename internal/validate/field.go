// Package validate holds the pure field validation rules shared by every
// form. Validators have no side effects: each maps a raw input value (plus,
// for confirm-password, one sibling value) to nil or a *FieldError.
package validate

import (
	"regexp"
	"strings"
)

// Reason classifies why a field value was rejected.
type Reason string

const (
	ReasonRequired      Reason = "required"
	ReasonTooShort      Reason = "too_short"
	ReasonInvalidFormat Reason = "invalid_format"
	ReasonMismatch      Reason = "mismatch"
	ReasonWeakenedMatch Reason = "weakened_match"
)

// FieldError is the failure result of a single validator: a machine-readable
// reason plus the message shown next to the field.
type FieldError struct {
	Reason  Reason
	Message string
}

func (e *FieldError) Error() string { return e.Message }

func fieldErr(reason Reason, message string) *FieldError {
	return &FieldError{Reason: reason, Message: message}
}

var (
	// Deliberately permissive: non-whitespace, "@", non-whitespace, ".",
	// non-whitespace. Full RFC validation is the server's job.
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	// International-leaning: optional "+", 1-3 leading digits, then digit
	// groups separated by space, hyphen or dot.
	phonePattern = regexp.MustCompile(`^\+?[0-9]{1,3}(?:[-. ]?[0-9]{2,4}){2,4}$`)

	// The contact form historically accepted a looser shape: at least ten
	// characters drawn from digits, spaces, dashes and parentheses. The two
	// phone rules are kept separate on purpose; unifying them would change
	// which values each form accepts.
	loosePhonePattern = regexp.MustCompile(`^[0-9\s\-()]{10,}$`)
)

// Name validates a person-name field (first name, last name, contact name).
// label is the human-readable field name used in messages.
func Name(label, value string) *FieldError {
	trimmed := trim(value)

	switch {
	case trimmed == "":
		return fieldErr(ReasonRequired, label+" is required")
	case len([]rune(trimmed)) < 2:
		return fieldErr(ReasonTooShort, label+" must be at least 2 characters")
	default:
		return nil
	}
}

// Email validates an email field. When required is false an empty value
// passes, but a non-empty value must still match the format.
func Email(value string, required bool) *FieldError {
	trimmed := trim(value)

	if trimmed == "" {
		if required {
			return fieldErr(ReasonRequired, "Email is required")
		}

		return nil
	}

	if !emailPattern.MatchString(trimmed) {
		return fieldErr(ReasonInvalidFormat, "Please enter a valid email address")
	}

	return nil
}

// Phone validates a phone field against the strict login/signup pattern.
func Phone(value string, required bool) *FieldError {
	trimmed := trim(value)

	if trimmed == "" {
		if required {
			return fieldErr(ReasonRequired, "Phone number is required")
		}

		return nil
	}

	if !phonePattern.MatchString(trimmed) {
		return fieldErr(ReasonInvalidFormat, "Please enter a valid phone number")
	}

	return nil
}

// LoosePhone validates a phone field against the dashboard contact-form
// pattern. The contact phone is always required.
func LoosePhone(value string) *FieldError {
	trimmed := trim(value)

	if trimmed == "" {
		return fieldErr(ReasonRequired, "Phone number is required")
	}

	if !loosePhonePattern.MatchString(trimmed) {
		return fieldErr(ReasonInvalidFormat, "Please enter a valid phone number")
	}

	return nil
}

// Relationship validates the contact relationship selector.
func Relationship(value string) *FieldError {
	if trim(value) == "" {
		return fieldErr(ReasonRequired, "Please select a relationship")
	}

	return nil
}

func trim(s string) string { return strings.TrimSpace(s) }
