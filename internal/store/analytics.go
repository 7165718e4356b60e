package store

import (
	"sync"

	"github.com/edusphere/lms-client/internal/models"
)

// Analytics holds the dashboard snapshots. Each snapshot carries the id it
// was computed for, so views can tell whose numbers they are rendering.
type Analytics struct {
	workState

	mu       sync.RWMutex
	user     *models.UserAnalytics
	course   *models.CourseAnalytics
	overview *models.SystemOverview
}

// NewAnalytics returns an empty analytics store.
func NewAnalytics() *Analytics {
	return &Analytics{}
}

// SetUserAnalytics replaces the per-user snapshot.
func (s *Analytics) SetUserAnalytics(data models.UserAnalytics) {
	s.mu.Lock()
	s.user = &data
	s.mu.Unlock()
}

// SetCourseAnalytics replaces the per-course snapshot.
func (s *Analytics) SetCourseAnalytics(data models.CourseAnalytics) {
	s.mu.Lock()
	s.course = &data
	s.mu.Unlock()
}

// SetOverview replaces the system snapshot.
func (s *Analytics) SetOverview(data models.SystemOverview) {
	s.mu.Lock()
	s.overview = &data
	s.mu.Unlock()
}

// UserAnalytics returns a copy of the per-user snapshot, nil when unset.
func (s *Analytics) UserAnalytics() *models.UserAnalytics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	data := *s.user
	return &data
}

// CourseAnalytics returns a copy of the per-course snapshot, nil when unset.
func (s *Analytics) CourseAnalytics() *models.CourseAnalytics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.course == nil {
		return nil
	}
	data := *s.course
	return &data
}

// Overview returns a copy of the system snapshot, nil when unset.
func (s *Analytics) Overview() *models.SystemOverview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.overview == nil {
		return nil
	}
	data := *s.overview
	return &data
}
