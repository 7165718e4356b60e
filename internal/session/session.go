// Package session persists the auth session (token + user record) across
// restarts. It is the local analog of the two browser storage keys the web
// client uses.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/edusphere/lms-client/internal/models"
)

// Record is the durable session payload.
type Record struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// FileStore keeps the session record in a single JSON file, replaced
// atomically on every write.
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewFileStore ensures the parent directory exists and returns a handle.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = ".lms-session.json"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create session directory: %w", err)
		}
	}
	return &FileStore{path: path, now: time.Now}, nil
}

// Load reads the persisted session. A missing file, an unreadable record, or
// a token whose exp claim already passed all hydrate to a logged-out state
// (nil record, no error).
func (s *FileStore) Load() (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, nil
	}
	if rec.Token == "" || rec.User == nil {
		return nil, nil
	}
	if expired(rec.Token, s.now()) {
		return nil, nil
	}
	return &rec, nil
}

// Save persists the record via write-to-temp plus rename so a crash never
// leaves a torn session file.
func (s *FileStore) Save(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear removes the persisted session. It reports whether a record was
// actually removed, so overlapping teardowns settle to exactly one.
func (s *FileStore) Clear() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("clear session file: %w", err)
	}
	return true, nil
}

// Path exposes the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// expired inspects the token's exp claim without verifying the signature;
// the client holds no signing key, the check only avoids presenting a token
// the server is guaranteed to reject.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque non-JWT tokens are kept; the server decides.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
