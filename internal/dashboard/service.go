// Package dashboard assembles the signed-in user's overview (profile,
// emergency contacts, recent activity) and implements the quick action
// triggers. It sits between the CLI views and the API client the same way
// the dashboard page sits between the DOM and fetch in the web client.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmfreyre/safeguard-client/internal/api"
	"github.com/dmfreyre/safeguard-client/internal/domain"
	"github.com/dmfreyre/safeguard-client/internal/infra/logging"
	"github.com/dmfreyre/safeguard-client/internal/session"
)

// Overview is the dashboard view model: everything the landing view renders
// after login. All slices are transient snapshots of the latest fetch.
type Overview struct {
	User       domain.User
	Contacts   []domain.Contact
	Activities []domain.Activity
}

// Service fetches dashboard data and records quick actions for the
// signed-in user.
type Service struct {
	client   *api.Client
	sessions session.Store
	log      logging.Logger
}

// NewService creates a dashboard service bound to the given API client and
// session store.
func NewService(client *api.Client, sessions session.Store) *Service {
	return &Service{
		client:   client,
		sessions: sessions,
		log:      logging.GetLogger("dashboard.service"),
	}
}

// Overview loads the dashboard view model. It first verifies the stored
// token against the server, then fetches contacts and recent activities
// concurrently. When the server no longer accepts the token the stored
// session is cleared before returning domain.ErrSessionExpired, so the
// caller lands on the login flow with no stale state behind it.
func (s *Service) Overview(ctx context.Context) (overview Overview, err error) {
	log := s.log

	defer func() {
		if err != nil {
			log.WarnContext(ctx, "overview load failed", "error", err)
		} else {
			log.DebugContext(ctx, "overview loaded",
				"contacts", len(overview.Contacts),
				"activities", len(overview.Activities))
		}
	}()

	stored, ok, err := s.sessions.User(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return Overview{}, domain.ErrNotAuthenticated
	}

	user, err := s.client.Me(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			if clearErr := s.sessions.Clear(ctx); clearErr != nil {
				log.ErrorContext(ctx, "clear expired session failed", "error", clearErr)
			}
		}

		return Overview{}, fmt.Errorf("verify session: %w", err)
	}

	overview.User = user

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		contacts, err := s.client.Contacts(ctx, stored.ID)
		if err != nil {
			return fmt.Errorf("fetch contacts: %w", err)
		}

		overview.Contacts = contacts

		return nil
	})

	g.Go(func() error {
		activities, err := s.client.Activities(ctx, stored.ID, api.DefaultActivityLimit)
		if err != nil {
			return fmt.Errorf("fetch activities: %w", err)
		}

		overview.Activities = activities

		return nil
	})

	if err := g.Wait(); err != nil {
		return Overview{}, err
	}

	return overview, nil
}
