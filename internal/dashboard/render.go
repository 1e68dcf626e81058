package dashboard

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmfreyre/safeguard-client/internal/domain"
)

const timestampLayout = "2006-01-02 15:04"

// RenderOverview writes the full dashboard view to w.
func RenderOverview(w io.Writer, o Overview) error {
	name := o.User.FullName()
	if name == "" {
		name = o.User.Email
	}

	if _, err := fmt.Fprintf(w, "Welcome back, %s (safety score: %d)\n\n", name, o.User.SafetyScore); err != nil {
		return err
	}

	if err := RenderContacts(w, o.Contacts); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	return RenderActivities(w, o.Activities)
}

// RenderContacts writes the emergency contact list to w as an aligned table.
func RenderContacts(w io.Writer, contacts []domain.Contact) error {
	if _, err := fmt.Fprintf(w, "Emergency contacts (%d)\n", len(contacts)); err != nil {
		return err
	}

	if len(contacts) == 0 {
		_, err := fmt.Fprintln(w, "  none yet")

		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "  NAME\tPHONE\tRELATIONSHIP\tPRIORITY")

	for _, c := range contacts {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", c.FullName(), c.Phone, c.Relationship, c.Priority)
	}

	return tw.Flush()
}

// RenderActivities writes the activity timeline to w, newest first as
// delivered by the server.
func RenderActivities(w io.Writer, activities []domain.Activity) error {
	if _, err := fmt.Fprintf(w, "Recent activity (%d)\n", len(activities)); err != nil {
		return err
	}

	if len(activities) == 0 {
		_, err := fmt.Fprintln(w, "  none yet")

		return err
	}

	for _, a := range activities {
		when := a.Timestamp.Local().Format(timestampLayout)

		if _, err := fmt.Fprintf(w, "  %s  [%s] %s (%s)\n", when, a.Type, a.Description, a.Status); err != nil {
			return err
		}
	}

	return nil
}
