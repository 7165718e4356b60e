package store

import (
	"sync"

	"github.com/edusphere/lms-client/internal/models"
)

// Courses holds the canonical course list plus the fetched lists that cannot
// be derived from it. Teaching and available are computed projections.
type Courses struct {
	workState

	mu          sync.RWMutex
	all         []models.Course
	enrolled    []models.Course
	enrolledFor int
	current     *models.Course
	students    []models.User
	studentsFor int
	viewerID    int

	allSeq      uint64
	enrolledSeq uint64
	studentsSeq uint64
}

// NewCourses returns an empty course store.
func NewCourses() *Courses {
	return &Courses{}
}

// SetViewer pins the viewer context used by the derived projections.
func (s *Courses) SetViewer(userID int) {
	s.mu.Lock()
	s.viewerID = userID
	s.mu.Unlock()
}

// SetAll replaces the canonical list. It reports false when the token is
// stale (a newer fetch already committed).
func (s *Courses) SetAll(token uint64, courses []models.Course) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !commit(&s.allSeq, token) {
		return false
	}
	s.all = copyCourses(courses)
	return true
}

// SetEnrolled replaces the enrolled list fetched for the given viewer.
func (s *Courses) SetEnrolled(token uint64, viewerID int, courses []models.Course) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !commit(&s.enrolledSeq, token) {
		return false
	}
	s.enrolled = copyCourses(courses)
	s.enrolledFor = viewerID
	return true
}

// SetCurrent replaces the course detail record.
func (s *Courses) SetCurrent(course models.Course) {
	s.mu.Lock()
	s.current = &course
	s.mu.Unlock()
}

// SetStudents replaces the roster fetched for the given course.
func (s *Courses) SetStudents(token uint64, courseID int, students []models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !commit(&s.studentsSeq, token) {
		return false
	}
	s.students = copyUsers(students)
	s.studentsFor = courseID
	return true
}

// Add appends a newly created course to the canonical list. The derived
// projections pick it up on their next read; the enrolled list is untouched
// because membership is unknown at creation time.
func (s *Courses) Add(course models.Course) {
	s.mu.Lock()
	s.all = append(s.all, course)
	s.mu.Unlock()
}

// Update replaces the course in place in every list currently containing its
// id, and in the current-course slot when it matches. Lists without the id
// are left unchanged.
func (s *Courses) Update(course models.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	replaceCourse(s.all, course)
	replaceCourse(s.enrolled, course)
	if s.current != nil && s.current.ID == course.ID {
		s.current = &course
	}
}

// Remove filters the id out of every list and clears a matching current
// record.
func (s *Courses) Remove(courseID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = removeCourse(s.all, courseID)
	s.enrolled = removeCourse(s.enrolled, courseID)
	if s.current != nil && s.current.ID == courseID {
		s.current = nil
	}
	if s.studentsFor == courseID {
		s.students = nil
		s.studentsFor = 0
	}
}

// SetProgress records the viewer's completion percentage on every course
// record currently holding the id.
func (s *Courses) SetProgress(courseID int, percent float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.all {
		if s.all[i].ID == courseID {
			p := percent
			s.all[i].Progress = &p
		}
	}
	for i := range s.enrolled {
		if s.enrolled[i].ID == courseID {
			p := percent
			s.enrolled[i].Progress = &p
		}
	}
	if s.current != nil && s.current.ID == courseID {
		p := percent
		s.current.Progress = &p
	}
}

// AddStudent appends to the roster when it belongs to the given course.
func (s *Courses) AddStudent(courseID int, student models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.studentsFor == courseID {
		s.students = append(s.students, student)
	}
}

// RemoveStudent drops a student from the roster when it belongs to the given
// course.
func (s *Courses) RemoveStudent(courseID, studentID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.studentsFor == courseID {
		s.students = removeUser(s.students, studentID)
	}
}

// All returns a copy of the canonical list.
func (s *Courses) All() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCourses(s.all)
}

// Enrolled returns a copy of the fetched enrolled list.
func (s *Courses) Enrolled() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCourses(s.enrolled)
}

// EnrolledFor returns the viewer the enrolled list was fetched for.
func (s *Courses) EnrolledFor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enrolledFor
}

// Teaching recomputes the viewer's own courses from the canonical list.
func (s *Courses) Teaching() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return TeachingCourses(s.all, s.viewerID)
}

// Available recomputes the joinable courses from the canonical list, the
// enrolled ids, and the viewer.
func (s *Courses) Available() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return AvailableCourses(s.all, CourseIDSet(s.enrolled), s.viewerID)
}

// Current returns a copy of the course detail record, nil when unset.
func (s *Courses) Current() *models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// Students returns a copy of the fetched roster.
func (s *Courses) Students() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUsers(s.students)
}

// StudentsFor returns the course the roster was fetched for.
func (s *Courses) StudentsFor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.studentsFor
}
