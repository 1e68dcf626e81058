package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmfreyre/safeguard-client/internal/domain"
	"github.com/dmfreyre/safeguard-client/internal/form"
)

// promptedForm is the slice of a form controller the prompt loop drives.
// Every keystroke-level rule the web forms enforce also gates the CLI,
// because input flows through the same ValidateField path.
type promptedForm interface {
	ValidateField(field, value string) string
	Value(field string) string
}

type promptSpec struct {
	field    string
	label    string
	required bool
}

// prompt reads one field, re-asking until the form accepts the value. An
// optional field accepts an empty line even before validation runs, so
// "press enter to skip" works for fields without an empty-is-valid rule.
func (a *app) prompt(f promptedForm, spec promptSpec) error {
	for {
		fmt.Fprintf(a.out, "%s: ", spec.label)

		value, err := a.readLine()
		if err != nil {
			return err
		}

		if value == "" && !spec.required {
			if msg := f.ValidateField(spec.field, ""); msg != "" {
				fmt.Fprintln(a.out, " ", msg)

				continue
			}

			return nil
		}

		if msg := f.ValidateField(spec.field, value); msg != "" {
			fmt.Fprintln(a.out, " ", msg)

			continue
		}

		return nil
	}
}

// promptPriority reads the contact priority, defaulting to medium on an
// empty line. Priority has no form rule; the accepted set lives on the
// domain type.
func (a *app) promptPriority(f promptedForm) error {
	for {
		fmt.Fprint(a.out, "Priority (high/medium/low) [medium]: ")

		value, err := a.readLine()
		if err != nil {
			return err
		}

		if value == "" {
			f.ValidateField(form.FieldPriority, string(domain.PriorityMedium))

			return nil
		}

		if !domain.Priority(value).Valid() {
			fmt.Fprintln(a.out, "  Please pick high, medium, or low")

			continue
		}

		f.ValidateField(form.FieldPriority, value)

		return nil
	}
}

func (a *app) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}
