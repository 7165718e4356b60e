package api

import (
	"context"

	"github.com/edusphere/lms-client/internal/dto"
)

// UserAnalytics fetches one user's learning analytics.
func (c *Client) UserAnalytics(ctx context.Context, userID int) (*dto.UserAnalyticsResponse, error) {
	var resp dto.UserAnalyticsResponse
	if err := c.get(ctx, pathf("/analytics/user/%d", userID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CourseAnalytics fetches one course's activity analytics.
func (c *Client) CourseAnalytics(ctx context.Context, courseID int) (*dto.CourseAnalyticsResponse, error) {
	var resp dto.CourseAnalyticsResponse
	if err := c.get(ctx, pathf("/analytics/course/%d", courseID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SystemOverview fetches the platform-wide analytics snapshot.
func (c *Client) SystemOverview(ctx context.Context) (*dto.OverviewResponse, error) {
	var resp dto.OverviewResponse
	if err := c.get(ctx, route("/analytics/overview"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
