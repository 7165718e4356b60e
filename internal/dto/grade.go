package dto

import "github.com/edusphere/lms-client/internal/models"

// GradeSettingsResponse wraps a course's grade weighting.
type GradeSettingsResponse struct {
	Status
	Settings models.GradeSettings `json:"settings"`
}

// CourseGradesResponse is returned by GET /courses/{id}/grades. The backend
// materialises empty rows for ungraded students, so Grades covers the whole
// roster.
type CourseGradesResponse struct {
	Status
	Grades   []models.StudentGrade `json:"grades"`
	Settings models.GradeSettings  `json:"settings"`
}

// StudentGradeResponse wraps one gradebook row.
type StudentGradeResponse struct {
	Status
	Grade models.StudentGrade `json:"grade"`
}

// BatchGradesResponse is returned by POST /courses/{id}/grades/batch.
type BatchGradesResponse struct {
	Status
	Updated int `json:"updated"`
}

// UserGradesResponse is returned by GET /users/{id}/grades.
type UserGradesResponse struct {
	Status
	Grades []models.UserGrade `json:"grades"`
}
