package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmfreyre/safeguard-client/internal/api"
	"github.com/dmfreyre/safeguard-client/internal/dashboard"
	"github.com/dmfreyre/safeguard-client/internal/domain"
	"github.com/dmfreyre/safeguard-client/internal/form"
	transport "github.com/dmfreyre/safeguard-client/internal/infra/transport/http"
	"github.com/dmfreyre/safeguard-client/internal/session"
)

// app wires the API client, session store, and dashboard service behind the
// CLI subcommands. All user-facing output goes to out; logs go wherever the
// logging configuration points.
type app struct {
	client   *api.Client
	sessions session.Store
	dash     *dashboard.Service

	in  *bufio.Reader
	out io.Writer
}

func newApp(cfg Config, store session.Store) *app {
	client := api.NewClient(cfg.API, transport.NewHTTPClient(cfg.HTTP, store))

	return &app{
		client:   client,
		sessions: store,
		dash:     dashboard.NewService(client, store),
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "dashboard":
		return a.dashboard(ctx)
	case "contacts":
		return a.contacts(ctx, rest)
	case "activities":
		return a.activities(ctx, rest)
	case "share-location":
		return a.quickAction(ctx, a.dash.ShareLocation, "Location shared with your emergency contacts.")
	case "alert":
		return a.quickAction(ctx, a.dash.EmergencyAlert, "Emergency alert sent.")
	case "check-in":
		return a.quickAction(ctx, a.dash.CheckIn, "Checked in. Stay safe!")
	case "health":
		return a.health(ctx)
	case "help":
		printUsage(a.out)

		return nil
	default:
		printUsage(a.out)

		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) register(ctx context.Context) error {
	f := form.NewSignupForm(a.client, a.sessions)

	fields := []promptSpec{
		{form.FieldFirstName, "First name", true},
		{form.FieldLastName, "Last name", true},
		{form.FieldMiddleName, "Middle name (optional)", false},
		{form.FieldEmail, "Email", true},
		{form.FieldPhone, "Phone (optional)", false},
		{form.FieldAddress, "Address (optional)", false},
		{form.FieldPassword, "Password", true},
		{form.FieldConfirmPassword, "Confirm password", true},
	}

	for _, spec := range fields {
		if err := a.prompt(f, spec); err != nil {
			return err
		}

		if spec.field == form.FieldPassword {
			fmt.Fprintf(a.out, "  strength: %s\n", f.StrengthLabel())
		}
	}

	user, err := f.Submit(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s! Your account is ready.\n", user.FullName())

	return nil
}

func (a *app) login(ctx context.Context) error {
	f := form.NewLoginForm(a.client, a.sessions)

	for _, spec := range []promptSpec{
		{form.FieldEmail, "Email", true},
		{form.FieldPassword, "Password", true},
	} {
		if err := a.prompt(f, spec); err != nil {
			return err
		}
	}

	user, err := f.Submit(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.FullName())

	return nil
}

func (a *app) logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	fmt.Fprintln(a.out, "Signed out.")

	return nil
}

func (a *app) whoami(ctx context.Context) error {
	user, ok, err := a.sessions.User(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return domain.ErrNotAuthenticated
	}

	fmt.Fprintf(a.out, "%s <%s>\n", user.FullName(), user.Email)
	fmt.Fprintf(a.out, "  id: %s\n  safety score: %d\n", user.ID, user.SafetyScore)

	return nil
}

func (a *app) dashboard(ctx context.Context) error {
	overview, err := a.dash.Overview(ctx)
	if err != nil {
		return err
	}

	return dashboard.RenderOverview(a.out, overview)
}

func (a *app) contacts(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		user, err := a.currentUser(ctx)
		if err != nil {
			return err
		}

		contacts, err := a.client.Contacts(ctx, user.ID)
		if err != nil {
			return err
		}

		return dashboard.RenderContacts(a.out, contacts)
	case "add":
		return a.addContact(ctx)
	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s contacts delete <contact-id>", appName)
		}

		if err := a.client.DeleteContact(ctx, args[0]); err != nil {
			return err
		}

		fmt.Fprintln(a.out, "Contact deleted.")

		return nil
	default:
		return fmt.Errorf("unknown contacts subcommand %q", sub)
	}
}

func (a *app) addContact(ctx context.Context) error {
	f := form.NewContactForm(a.client, a.sessions)

	for _, spec := range []promptSpec{
		{form.FieldName, "Name", true},
		{form.FieldPhone, "Phone", true},
		{form.FieldEmail, "Email (optional)", false},
		{form.FieldRelationship, "Relationship", true},
	} {
		if err := a.prompt(f, spec); err != nil {
			return err
		}
	}

	if err := a.promptPriority(f); err != nil {
		return err
	}

	contact, err := f.Submit(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Added %s (%s priority).\n", contact.FullName(), contact.Priority)

	return nil
}

func (a *app) activities(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("activities", flag.ContinueOnError)
	flags.SetOutput(a.out)
	limit := flags.Int("limit", api.DefaultActivityLimit, "maximum number of activities to list")

	if err := flags.Parse(args); err != nil {
		return err
	}

	user, err := a.currentUser(ctx)
	if err != nil {
		return err
	}

	activities, err := a.client.Activities(ctx, user.ID, *limit)
	if err != nil {
		return err
	}

	return dashboard.RenderActivities(a.out, activities)
}

// quickAction runs one dashboard quick action. Recording failures do not
// fail the command; the web client shows a toast and moves on, and so do we.
func (a *app) quickAction(ctx context.Context, trigger func(context.Context) (domain.Activity, bool), confirmation string) error {
	if _, err := a.currentUser(ctx); err != nil {
		return err
	}

	if _, ok := trigger(ctx); !ok {
		fmt.Fprintln(a.out, "Could not record the activity right now. Please try again.")

		return nil
	}

	fmt.Fprintln(a.out, confirmation)

	return nil
}

func (a *app) health(ctx context.Context) error {
	health, err := a.client.Health(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: %s\n", health.Service, health.Status)

	return nil
}

func (a *app) currentUser(ctx context.Context) (domain.User, error) {
	user, ok, err := a.sessions.User(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return domain.User{}, domain.ErrNotAuthenticated
	}

	return user, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `usage: %s <command> [arguments]

Commands:
  register          create an account and sign in
  login             sign in with email and password
  logout            clear the stored session
  whoami            show the signed-in user
  dashboard         show contacts and recent activity
  contacts          list contacts (default)
  contacts add      add an emergency contact
  contacts delete   delete a contact by id
  activities        list recent activities (-limit N)
  share-location    share your location with your contacts
  alert             send an emergency alert
  check-in          record a safety check-in
  health            check the service status
`, appName)
}
