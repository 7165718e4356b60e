package store

import (
	"sync"

	"github.com/edusphere/lms-client/internal/models"
)

// Auth holds the session state: token plus current user. It satisfies the
// transport's TokenSource.
type Auth struct {
	workState

	mu    sync.RWMutex
	token string
	user  *models.User
}

// NewAuth returns an empty (logged-out) auth store.
func NewAuth() *Auth {
	return &Auth{}
}

// SetSession installs the token and user in one transition, keeping
// IsLoggedIn and Token consistent.
func (s *Auth) SetSession(token string, user models.User) {
	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()
}

// SetUser replaces the current user record, leaving the token alone.
func (s *Auth) SetUser(user models.User) {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
}

// Logout clears token and user together. It reports whether a live session
// was actually torn down, so overlapping 401 handlers settle to one teardown.
func (s *Auth) Logout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" && s.user == nil {
		return false
	}
	s.token = ""
	s.user = nil
	return true
}

// Token returns the current bearer token, empty when logged out.
func (s *Auth) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser returns a copy of the logged-in user, nil when logged out.
func (s *Auth) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// UserID returns the logged-in user's id, zero when logged out.
func (s *Auth) UserID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return 0
	}
	return s.user.ID
}

// IsLoggedIn is true iff a non-empty token is held.
func (s *Auth) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}
