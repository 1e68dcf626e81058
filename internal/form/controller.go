package form

import (
	"github.com/dmfreyre/safeguard-client/internal/validate"
)

// fieldRule validates one field's current value against the whole form
// state, so cross-field rules (confirm-password) can see their sibling.
type fieldRule func(values map[string]string) *validate.FieldError

// controller is the state shared by every form: current values, the error
// set, and the declared cross-field dependency graph. Validation of a field
// never touches other fields except through dependents, which makes the
// confirm-password re-trigger a visible rule instead of a side effect.
type controller struct {
	values     map[string]string
	touched    map[string]bool
	errors     ErrorSet
	rules      map[string]fieldRule
	dependents map[string][]string
}

func newController(rules map[string]fieldRule, dependents map[string][]string) controller {
	return controller{
		values:     make(map[string]string),
		touched:    make(map[string]bool),
		errors:     make(ErrorSet),
		rules:      rules,
		dependents: dependents,
	}
}

// ValidateField records the new value, re-runs the field's rule, and
// re-validates any declared dependents that have been touched. It returns
// the field's current error message, "" when valid.
func (c *controller) ValidateField(field, value string) string {
	c.values[field] = value
	c.touched[field] = true

	c.revalidate(field)

	for _, dependent := range c.dependents[field] {
		if c.touched[dependent] {
			c.revalidate(dependent)
		}
	}

	return c.errors.Message(field)
}

func (c *controller) revalidate(field string) {
	rule, ok := c.rules[field]
	if !ok {
		return
	}

	if err := rule(c.values); err != nil {
		c.errors.set(field, err.Message)
	} else {
		c.errors.clear(field)
	}
}

// validateAll runs every rule against the current values. Submit calls this
// before issuing any network request, so an edited-but-unvalidated field can
// never slip through.
func (c *controller) validateAll() {
	for field := range c.rules {
		c.touched[field] = true
		c.revalidate(field)
	}
}

// Errors returns a copy of the current error set.
func (c *controller) Errors() ErrorSet {
	out := make(ErrorSet, len(c.errors))
	for field, message := range c.errors {
		out[field] = message
	}

	return out
}

// Value returns the current value of a field.
func (c *controller) Value(field string) string { return c.values[field] }

// Reset clears all values, touched marks, and errors, returning the form to
// its pristine state.
func (c *controller) Reset() {
	c.values = make(map[string]string)
	c.touched = make(map[string]bool)
	c.errors = make(ErrorSet)
}

// requiredPresent reports whether every listed field has a non-empty value.
func (c *controller) requiredPresent(fields ...string) bool {
	for _, field := range fields {
		if c.values[field] == "" {
			return false
		}
	}

	return true
}
