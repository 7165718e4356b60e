package store

import (
	"sync"

	"github.com/edusphere/lms-client/internal/models"
)

// Grades holds the gradebook of the currently viewed course plus the viewer's
// own cross-course grades.
type Grades struct {
	workState

	mu          sync.RWMutex
	course      []models.StudentGrade
	courseFor   int
	settings    *models.GradeSettings
	user        []models.UserGrade
	userFor     int
	courseSeq   uint64
	userSeq     uint64
	settingsSeq uint64
}

// NewGrades returns an empty grade store.
func NewGrades() *Grades {
	return &Grades{}
}

// SetCourseGrades replaces the gradebook fetched for the given course,
// together with the settings that arrived with it.
func (s *Grades) SetCourseGrades(token uint64, courseID int, grades []models.StudentGrade, settings models.GradeSettings) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !commit(&s.courseSeq, token) {
		return false
	}
	s.course = make([]models.StudentGrade, len(grades))
	copy(s.course, grades)
	s.courseFor = courseID
	s.settings = &settings
	return true
}

// SetSettings replaces the grade weighting record.
func (s *Grades) SetSettings(token uint64, settings models.GradeSettings) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !commit(&s.settingsSeq, token) {
		return false
	}
	s.settings = &settings
	return true
}

// SetUserGrades replaces the viewer's cross-course grades.
func (s *Grades) SetUserGrades(token uint64, userID int, grades []models.UserGrade) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !commit(&s.userSeq, token) {
		return false
	}
	s.user = make([]models.UserGrade, len(grades))
	copy(s.user, grades)
	s.userFor = userID
	return true
}

// UpdateStudentGrade replaces the row keyed by the grade's user id in place.
// A row not present in the current gradebook is a no-op.
func (s *Grades) UpdateStudentGrade(grade models.StudentGrade) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.courseFor != grade.CourseID {
		return
	}
	for i := range s.course {
		if s.course[i].UserID == grade.UserID {
			// Keep the roster info the update response does not echo back.
			if grade.Student == nil {
				grade.Student = s.course[i].Student
			}
			s.course[i] = grade
			return
		}
	}
}

// CourseGrades returns a copy of the fetched gradebook.
func (s *Grades) CourseGrades() []models.StudentGrade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.StudentGrade, len(s.course))
	copy(out, s.course)
	return out
}

// CourseGradesFor returns the course the gradebook was fetched for.
func (s *Grades) CourseGradesFor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.courseFor
}

// Settings returns a copy of the grade weighting, nil when unset.
func (s *Grades) Settings() *models.GradeSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil
	}
	settings := *s.settings
	return &settings
}

// UserGrades returns a copy of the viewer's cross-course grades.
func (s *Grades) UserGrades() []models.UserGrade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.UserGrade, len(s.user))
	copy(out, s.user)
	return out
}

// UserGradesFor returns the user the cross-course grades were fetched for.
func (s *Grades) UserGradesFor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userFor
}
