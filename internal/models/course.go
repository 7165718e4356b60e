package models

// CourseStatus represents the lifecycle state of a course.
type CourseStatus string

const (
	CourseActive   CourseStatus = "active"
	CourseArchived CourseStatus = "archived"
)

// Course represents a course record. Progress is only populated on responses
// scoped to a viewing student.
type Course struct {
	ID             int          `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	InstructorID   int          `json:"instructor_id"`
	InstructorName string       `json:"instructorName,omitempty"`
	Status         CourseStatus `json:"status"`
	StartDate      string       `json:"start_date,omitempty"`
	EndDate        string       `json:"end_date,omitempty"`
	Progress       *float64     `json:"progress,omitempty"`
	StudentCount   int          `json:"student_count,omitempty"`
	CreatedAt      string       `json:"created_at,omitempty"`
	UpdatedAt      string       `json:"updated_at,omitempty"`
}

// CourseProgress is the per-student completion record for one course.
type CourseProgress struct {
	UserID          int     `json:"user_id"`
	CourseID        int     `json:"course_id"`
	ProgressPercent float64 `json:"progress_percent"`
	UpdatedAt       string  `json:"updated_at,omitempty"`
}
