package store

import (
	"sync"

	"github.com/edusphere/lms-client/internal/models"
)

// Admin holds the admin console state: paginated user and course listings,
// detail records, and the roster of the course under management.
type Admin struct {
	workState

	mu            sync.RWMutex
	overview      *models.SystemOverview
	users         []models.User
	usersPages    models.Pagination
	currentUser   *models.User
	courses       []models.Course
	coursesPages  models.Pagination
	currentCourse *models.Course
	students      []models.User
	studentsFor   int

	usersSeq    uint64
	coursesSeq  uint64
	studentsSeq uint64
}

// NewAdmin returns an empty admin store.
func NewAdmin() *Admin {
	return &Admin{}
}

// SetOverview replaces the console overview snapshot.
func (s *Admin) SetOverview(data models.SystemOverview) {
	s.mu.Lock()
	s.overview = &data
	s.mu.Unlock()
}

// SetUsers replaces the user page and its pagination metadata.
func (s *Admin) SetUsers(token uint64, users []models.User, pages models.Pagination) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !commit(&s.usersSeq, token) {
		return false
	}
	s.users = copyUsers(users)
	s.usersPages = pages
	return true
}

// SetCurrentUser replaces the user detail record.
func (s *Admin) SetCurrentUser(user models.User) {
	s.mu.Lock()
	s.currentUser = &user
	s.mu.Unlock()
}

// SetCourses replaces the course page and its pagination metadata.
func (s *Admin) SetCourses(token uint64, courses []models.Course, pages models.Pagination) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !commit(&s.coursesSeq, token) {
		return false
	}
	s.courses = copyCourses(courses)
	s.coursesPages = pages
	return true
}

// SetCurrentCourse replaces the course detail record.
func (s *Admin) SetCurrentCourse(course models.Course) {
	s.mu.Lock()
	s.currentCourse = &course
	s.mu.Unlock()
}

// SetStudents replaces the roster fetched for the given course.
func (s *Admin) SetStudents(token uint64, courseID int, students []models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !commit(&s.studentsSeq, token) {
		return false
	}
	s.students = copyUsers(students)
	s.studentsFor = courseID
	return true
}

// Overview returns a copy of the console snapshot, nil when unset.
func (s *Admin) Overview() *models.SystemOverview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.overview == nil {
		return nil
	}
	data := *s.overview
	return &data
}

// Users returns a copy of the current user page.
func (s *Admin) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUsers(s.users)
}

// UsersPagination returns the user page metadata.
func (s *Admin) UsersPagination() models.Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersPages
}

// CurrentUser returns a copy of the user detail record, nil when unset.
func (s *Admin) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// Courses returns a copy of the current course page.
func (s *Admin) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCourses(s.courses)
}

// CoursesPagination returns the course page metadata.
func (s *Admin) CoursesPagination() models.Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coursesPages
}

// CurrentCourse returns a copy of the course detail record, nil when unset.
func (s *Admin) CurrentCourse() *models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentCourse == nil {
		return nil
	}
	c := *s.currentCourse
	return &c
}

// Students returns a copy of the managed course roster.
func (s *Admin) Students() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUsers(s.students)
}

// StudentsFor returns the course the roster was fetched for.
func (s *Admin) StudentsFor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.studentsFor
}
