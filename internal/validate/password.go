package validate

import (
	"strings"
	"unicode"
)

// MinPasswordLength is the length requirement checked by the strength engine.
const MinPasswordLength = 8

// Characters counted as "special" by the strength engine.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// PasswordRequirements records which of the five password rules a value
// satisfies. All five predicates are always evaluated so callers can display
// each independently.
type PasswordRequirements struct {
	Length    bool // at least MinPasswordLength characters
	Uppercase bool // contains an uppercase letter
	Lowercase bool // contains a lowercase letter
	Number    bool // contains a digit
	Special   bool // contains a character from specialChars
}

// CheckPassword derives the requirement flags from a password string.
func CheckPassword(password string) PasswordRequirements {
	reqs := PasswordRequirements{
		Length: len([]rune(password)) >= MinPasswordLength,
	}

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			reqs.Uppercase = true
		case unicode.IsLower(r):
			reqs.Lowercase = true
		case unicode.IsDigit(r):
			reqs.Number = true
		case strings.ContainsRune(specialChars, r):
			reqs.Special = true
		}
	}

	return reqs
}

// Score returns the strength score: 20 points per satisfied requirement,
// always a multiple of 20 in [0,100].
func (reqs PasswordRequirements) Score() int {
	score := 0

	for _, ok := range [...]bool{reqs.Length, reqs.Uppercase, reqs.Lowercase, reqs.Number, reqs.Special} {
		if ok {
			score += 20
		}
	}

	return score
}

// Missing returns the unmet requirement phrases in display order:
// length, uppercase, lowercase, number, special.
func (reqs PasswordRequirements) Missing() []string {
	var missing []string

	if !reqs.Length {
		missing = append(missing, "at least 8 characters")
	}
	if !reqs.Uppercase {
		missing = append(missing, "one uppercase letter")
	}
	if !reqs.Lowercase {
		missing = append(missing, "one lowercase letter")
	}
	if !reqs.Number {
		missing = append(missing, "one number")
	}
	if !reqs.Special {
		missing = append(missing, "one special character")
	}

	return missing
}

// StrengthLabel maps a score to the label shown beside the strength meter.
func StrengthLabel(score int) string {
	switch {
	case score >= 100:
		return "Strong"
	case score >= 80:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Weak"
	}
}

// Password validates the primary password field. An empty password is a
// plain Required failure and reports no requirement breakdown; otherwise the
// message enumerates every missing requirement.
func Password(password string) *FieldError {
	if password == "" {
		return fieldErr(ReasonRequired, "Password is required")
	}

	reqs := CheckPassword(password)
	if reqs.Score() == 100 {
		return nil
	}

	return fieldErr(
		ReasonInvalidFormat,
		"Password must contain "+strings.Join(reqs.Missing(), ", "),
	)
}

// ConfirmPassword validates the confirmation field against the primary
// password. The rules apply in priority order: required, then mismatch, then
// primary-password strength. A matching but weak password is still rejected;
// matching only wins once strength is already satisfied.
func ConfirmPassword(confirm, password string) *FieldError {
	switch {
	case confirm == "":
		return fieldErr(ReasonRequired, "Please confirm your password")
	case confirm != password:
		return fieldErr(ReasonMismatch, "Passwords do not match")
	case CheckPassword(password).Score() < 100:
		return fieldErr(ReasonWeakenedMatch, "Please create a stronger password first")
	default:
		return nil
	}
}
