package models

// GradeSettings holds the per-course weighting between the final exam and the
// regular grade. Weights are percentages and sum to 100.
type GradeSettings struct {
	CourseID           int     `json:"course_id"`
	FinalExamWeight    float64 `json:"final_exam_weight"`
	RegularGradeWeight float64 `json:"regular_grade_weight"`
	UpdatedAt          string  `json:"updated_at,omitempty"`
}

// GradeStudent is the student summary embedded in gradebook rows.
type GradeStudent struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// StudentGrade is one gradebook row, keyed by (course_id, user_id). Nil score
// pointers mean "not graded yet"; the backend returns empty rows for enrolled
// students without grades.
type StudentGrade struct {
	CourseID       int           `json:"course_id"`
	UserID         int           `json:"user_id"`
	FinalExamScore *float64      `json:"final_exam_score"`
	RegularGrade   *float64      `json:"regular_grade"`
	TotalScore     *float64      `json:"total_score"`
	Comment        string        `json:"comment,omitempty"`
	Student        *GradeStudent `json:"student,omitempty"`
	UpdatedAt      string        `json:"updated_at,omitempty"`
}

// UserGrade is one entry of a student's cross-course grade report.
type UserGrade struct {
	CourseID    int      `json:"course_id"`
	CourseTitle string   `json:"course_title"`
	TotalScore  *float64 `json:"total_score"`
}
