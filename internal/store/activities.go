package store

import (
	"sync"

	"github.com/edusphere/lms-client/internal/models"
)

// Activities holds the canonical activity list plus the keyed lists fetched
// per user or per course. The keyed lists remember the id they were fetched
// for, so Add knows which of them a new activity belongs to.
type Activities struct {
	workState

	mu        sync.RWMutex
	all       []models.Activity
	user      []models.Activity
	userFor   int
	course    []models.Activity
	courseFor int
	current   *models.Activity

	allSeq    uint64
	userSeq   uint64
	courseSeq uint64
}

// NewActivities returns an empty activity store.
func NewActivities() *Activities {
	return &Activities{}
}

// SetAll replaces the canonical list; stale tokens are rejected.
func (s *Activities) SetAll(token uint64, activities []models.Activity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !commit(&s.allSeq, token) {
		return false
	}
	s.all = copyActivities(activities)
	return true
}

// SetUserActivities replaces the per-user list and tags it with the user id.
func (s *Activities) SetUserActivities(token uint64, userID int, activities []models.Activity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !commit(&s.userSeq, token) {
		return false
	}
	s.user = copyActivities(activities)
	s.userFor = userID
	return true
}

// SetCourseActivities replaces the per-course list and tags it with the
// course id.
func (s *Activities) SetCourseActivities(token uint64, courseID int, activities []models.Activity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !commit(&s.courseSeq, token) {
		return false
	}
	s.course = copyActivities(activities)
	s.courseFor = courseID
	return true
}

// SetCurrent replaces the activity detail record.
func (s *Activities) SetCurrent(activity models.Activity) {
	s.mu.Lock()
	s.current = &activity
	s.mu.Unlock()
}

// Add appends the new activity to the canonical list and to exactly the keyed
// lists whose tag it already satisfies.
func (s *Activities) Add(activity models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = append(s.all, activity)
	if s.userFor != 0 && activity.UserID == s.userFor {
		s.user = append(s.user, activity)
	}
	if s.courseFor != 0 && activity.CourseID == s.courseFor {
		s.course = append(s.course, activity)
	}
}

// Update replaces the activity in place in every list containing its id.
func (s *Activities) Update(activity models.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	replaceActivity(s.all, activity)
	replaceActivity(s.user, activity)
	replaceActivity(s.course, activity)
	if s.current != nil && s.current.ID == activity.ID {
		s.current = &activity
	}
}

// All returns a copy of the canonical list.
func (s *Activities) All() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyActivities(s.all)
}

// UserActivities returns a copy of the per-user list.
func (s *Activities) UserActivities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyActivities(s.user)
}

// UserActivitiesFor returns the user the per-user list was fetched for.
func (s *Activities) UserActivitiesFor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userFor
}

// CourseActivities returns a copy of the per-course list.
func (s *Activities) CourseActivities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyActivities(s.course)
}

// CourseActivitiesFor returns the course the per-course list was fetched for.
func (s *Activities) CourseActivitiesFor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.courseFor
}

// Current returns a copy of the activity detail record, nil when unset.
func (s *Activities) Current() *models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	a := *s.current
	return &a
}
