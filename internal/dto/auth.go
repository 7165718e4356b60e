// Package dto defines the typed response envelopes decoded at the transport
// boundary. Every backend response carries a status field and a human-readable
// message alongside the payload.
package dto

import "github.com/edusphere/lms-client/internal/models"

// Status holds the bare status/message pair shared by all responses.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Status
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterResponse is returned by POST /auth/register.
type RegisterResponse struct {
	Status
	User models.User `json:"user"`
}

// UserResponse wraps a single user record.
type UserResponse struct {
	Status
	User models.User `json:"user"`
}

// UsersResponse wraps a flat user list.
type UsersResponse struct {
	Status
	Users []models.User `json:"users"`
}
