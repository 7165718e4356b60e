package dto

import "github.com/edusphere/lms-client/internal/models"

// CoursesResponse is returned by GET /courses and GET /users/{id}/courses.
type CoursesResponse struct {
	Status
	Courses []models.Course `json:"courses"`
}

// CourseResponse wraps a single course record.
type CourseResponse struct {
	Status
	Course models.Course `json:"course"`
}

// CourseStudentsResponse is returned by GET /courses/{id}/students.
type CourseStudentsResponse struct {
	Status
	Students []models.User `json:"students"`
}

// CourseProgressResponse wraps a per-student course progress record.
type CourseProgressResponse struct {
	Status
	Progress models.CourseProgress `json:"progress"`
}
