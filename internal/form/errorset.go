// Package form implements per-form controllers that run the validators on
// live input, maintain the field error set, derive submittability, and on
// submit call the API client and session store. Each form is an independent
// instance; nothing here is process-global.
package form

import "errors"

// ErrFormInvalid is the aggregate failure returned by Submit when the final
// re-validation pass finds any invalid field. No request is sent in that
// case.
var ErrFormInvalid = errors.New("form has invalid fields")

// ErrorSet maps field names to human-readable error messages. A field is
// present if and only if its current value fails validation.
type ErrorSet map[string]string

// Empty reports whether no field currently fails validation.
func (s ErrorSet) Empty() bool { return len(s) == 0 }

// Message returns the message for a field, or "" if the field is valid.
func (s ErrorSet) Message(field string) string { return s[field] }

func (s ErrorSet) set(field, message string) { s[field] = message }

func (s ErrorSet) clear(field string) { delete(s, field) }
