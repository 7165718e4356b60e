package api

import (
	"context"

	"github.com/edusphere/lms-client/internal/dto"
)

// Login authenticates and returns the issued token plus the user record.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	if err := c.post(ctx, route("/auth/login"), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	var resp dto.RegisterResponse
	if err := c.post(ctx, route("/auth/register"), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, route("/auth/logout"), nil, nil)
}

// CurrentUser fetches the profile behind the current token.
func (c *Client) CurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	if err := c.get(ctx, route("/auth/user"), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
