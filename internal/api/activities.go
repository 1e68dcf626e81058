package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmfreyre/safeguard-client/internal/domain"
)

// DefaultActivityLimit matches the server's default page size.
const DefaultActivityLimit = 50

// CreateActivityRequest is the body of POST /activities/.
type CreateActivityRequest struct {
	UserID      string                `json:"userId"`
	Type        domain.ActivityType   `json:"type"`
	Description string                `json:"description"`
	Status      domain.ActivityStatus `json:"status"`
	Timestamp   time.Time             `json:"timestamp"`
}

// Activities lists the most recent activities for the given user, newest
// first. limit <= 0 uses the server default.
func (c *Client) Activities(ctx context.Context, userID string, limit int) ([]domain.Activity, error) {
	path := "/activities/user/" + userID
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var activities []domain.Activity
	if err := c.do(ctx, http.MethodGet, path, nil, &activities); err != nil {
		return nil, err
	}

	return activities, nil
}

// Activity fetches a single activity by ID.
func (c *Client) Activity(ctx context.Context, activityID string) (domain.Activity, error) {
	var activity domain.Activity

	if err := c.do(ctx, http.MethodGet, "/activities/"+activityID, nil, &activity); err != nil {
		if IsNotFound(err) {
			return domain.Activity{}, errors.Join(domain.ErrActivityNotFound, err)
		}

		return domain.Activity{}, err
	}

	return activity, nil
}

// CreateActivity records a safety activity on the user's timeline.
func (c *Client) CreateActivity(ctx context.Context, req CreateActivityRequest) (domain.Activity, error) {
	var activity domain.Activity

	if err := c.do(ctx, http.MethodPost, "/activities/", req, &activity); err != nil {
		return domain.Activity{}, err
	}

	return activity, nil
}

// DeleteActivity removes an activity from the timeline.
func (c *Client) DeleteActivity(ctx context.Context, activityID string) error {
	if err := c.do(ctx, http.MethodDelete, "/activities/"+activityID, nil, nil); err != nil {
		if IsNotFound(err) {
			return errors.Join(domain.ErrActivityNotFound, err)
		}

		return err
	}

	return nil
}
