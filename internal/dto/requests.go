package dto

import "github.com/edusphere/lms-client/internal/models"

// LoginRequest carries login credentials.
type LoginRequest struct {
	Account  string `json:"account" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest carries a self-service registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Account  string `json:"account" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=student teacher"`
}

// CreateCourseRequest creates a course owned by InstructorID.
type CreateCourseRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description,omitempty"`
	InstructorID int    `json:"instructor_id" validate:"required"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Status       string `json:"status,omitempty" validate:"omitempty,oneof=active archived"`
}

// UpdateCourseRequest is a partial course patch; nil fields are left
// untouched server-side.
type UpdateCourseRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active archived"`
}

// CreateActivityRequest records a new learning interaction.
type CreateActivityRequest struct {
	UserID     int                    `json:"user_id" validate:"required"`
	CourseID   int                    `json:"course_id" validate:"required"`
	Type       models.ActivityType    `json:"activity_type" validate:"required,oneof=assignment discussion document_read quiz video_watch"`
	ResourceID string                 `json:"resource_id,omitempty"`
	Duration   int                    `json:"duration,omitempty" validate:"omitempty,min=0"`
	Score      *float64               `json:"score,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateActivityRequest is a partial activity patch.
type UpdateActivityRequest struct {
	Completed *bool                  `json:"completed,omitempty"`
	Score     *float64               `json:"score,omitempty"`
	Duration  *int                   `json:"duration,omitempty" validate:"omitempty,min=0"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateGradeSettingsRequest rebalances the course grade weights. The two
// weights must sum to 100.
type UpdateGradeSettingsRequest struct {
	FinalExamWeight    float64 `json:"final_exam_weight" validate:"min=0,max=100"`
	RegularGradeWeight float64 `json:"regular_grade_weight" validate:"min=0,max=100"`
}

// UpdateStudentGradeRequest overwrites one gradebook row.
type UpdateStudentGradeRequest struct {
	FinalExamScore *float64 `json:"final_exam_score,omitempty" validate:"omitempty,min=0,max=100"`
	RegularGrade   *float64 `json:"regular_grade,omitempty" validate:"omitempty,min=0,max=100"`
	Comment        *string  `json:"comment,omitempty"`
}

// BatchGradeEntry is one row of a batch grade update.
type BatchGradeEntry struct {
	UserID         int      `json:"user_id" validate:"required"`
	FinalExamScore *float64 `json:"final_exam_score,omitempty" validate:"omitempty,min=0,max=100"`
	RegularGrade   *float64 `json:"regular_grade,omitempty" validate:"omitempty,min=0,max=100"`
	Comment        *string  `json:"comment,omitempty"`
}

// BatchUpdateGradesRequest updates several gradebook rows at once.
type BatchUpdateGradesRequest struct {
	Grades []BatchGradeEntry `json:"grades" validate:"required,min=1,dive"`
}

// UpdateProgressRequest syncs a student's completion percentage for a course.
type UpdateProgressRequest struct {
	ProgressPercent float64 `json:"progress_percent" validate:"min=0,max=100"`
}

// UpdateProfileRequest is a partial self-service profile patch.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Avatar   *string `json:"avatar,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

// AdminCreateUserRequest creates a user from the admin console.
type AdminCreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Account  string `json:"account" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=student teacher admin"`
}

// AdminUpdateUserRequest is a partial user patch from the admin console.
type AdminUpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=student teacher admin"`
	Avatar   *string `json:"avatar,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}
