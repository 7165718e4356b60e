package api

import (
	"context"

	"github.com/edusphere/lms-client/internal/dto"
)

// Users lists user records, optionally narrowed by a raw query string such as
// "?role=student".
func (c *Client) Users(ctx context.Context, query string) (*dto.UsersResponse, error) {
	var resp dto.UsersResponse
	if err := c.get(ctx, route("/users").query(query), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// User fetches one user by id.
func (c *Client) User(ctx context.Context, userID int) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	if err := c.get(ctx, pathf("/users/%d", userID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateUser patches a profile and returns the updated record.
func (c *Client) UpdateUser(ctx context.Context, userID int, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	if err := c.put(ctx, pathf("/users/%d", userID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
