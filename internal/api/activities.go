package api

import (
	"context"

	"github.com/edusphere/lms-client/internal/dto"
)

// Activities lists all recorded activities.
func (c *Client) Activities(ctx context.Context) (*dto.ActivitiesResponse, error) {
	var resp dto.ActivitiesResponse
	if err := c.get(ctx, route("/activities"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UserActivities lists one user's activities.
func (c *Client) UserActivities(ctx context.Context, userID int) (*dto.ActivitiesResponse, error) {
	var resp dto.ActivitiesResponse
	if err := c.get(ctx, pathf("/users/%d/activities", userID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CourseActivities lists one course's activities.
func (c *Client) CourseActivities(ctx context.Context, courseID int) (*dto.ActivitiesResponse, error) {
	var resp dto.ActivitiesResponse
	if err := c.get(ctx, pathf("/courses/%d/activities", courseID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateActivity records a learning interaction.
func (c *Client) CreateActivity(ctx context.Context, req dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	var resp dto.ActivityResponse
	if err := c.post(ctx, route("/activities"), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateActivity applies a partial patch and returns the updated record.
func (c *Client) UpdateActivity(ctx context.Context, activityID int, req dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	var resp dto.ActivityResponse
	if err := c.put(ctx, pathf("/activities/%d", activityID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
