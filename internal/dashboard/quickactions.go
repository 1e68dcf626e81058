package dashboard

import (
	"context"
	"time"

	"github.com/dmfreyre/safeguard-client/internal/api"
	"github.com/dmfreyre/safeguard-client/internal/domain"
)

// Quick action timeline descriptions.
const (
	descShareLocation  = "Location shared with emergency contacts"
	descEmergencyAlert = "Emergency alert sent to all contacts"
	descCheckIn        = "Safety check-in completed"
)

// ShareLocation records a location_shared activity on the user's timeline.
func (s *Service) ShareLocation(ctx context.Context) (domain.Activity, bool) {
	return s.record(ctx, domain.ActivityLocationShared, descShareLocation, domain.ActivityStatusSuccess)
}

// EmergencyAlert records an emergency_alert activity. The alert itself is
// dispatched server-side, so the entry starts out pending.
func (s *Service) EmergencyAlert(ctx context.Context) (domain.Activity, bool) {
	return s.record(ctx, domain.ActivityEmergencyAlert, descEmergencyAlert, domain.ActivityStatusPending)
}

// CheckIn records a check_in activity on the user's timeline.
func (s *Service) CheckIn(ctx context.Context) (domain.Activity, bool) {
	return s.record(ctx, domain.ActivityCheckIn, descCheckIn, domain.ActivityStatusSuccess)
}

// record posts one activity. Quick actions are fire-and-forget: a failed
// recording is logged and reported as ok=false, never as an error that
// would block the dashboard.
func (s *Service) record(ctx context.Context, typ domain.ActivityType, description string, status domain.ActivityStatus) (domain.Activity, bool) {
	user, ok, err := s.sessions.User(ctx)
	if err != nil || !ok {
		s.log.WarnContext(ctx, "quick action without session", "type", typ, "error", err)

		return domain.Activity{}, false
	}

	activity, err := s.client.CreateActivity(ctx, api.CreateActivityRequest{
		UserID:      user.ID,
		Type:        typ,
		Description: description,
		Status:      status,
		Timestamp:   time.Now().UTC(),
	})
	if err != nil {
		s.log.WarnContext(ctx, "record activity failed", "type", typ, "error", err)

		return domain.Activity{}, false
	}

	s.log.InfoContext(ctx, "activity recorded", "type", typ, "activityId", activity.ID)

	return activity, true
}
