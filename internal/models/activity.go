package models

// ActivityType enumerates the learning interaction kinds the backend records.
type ActivityType string

const (
	ActivityAssignment   ActivityType = "assignment"
	ActivityDiscussion   ActivityType = "discussion"
	ActivityDocumentRead ActivityType = "document_read"
	ActivityQuiz         ActivityType = "quiz"
	ActivityVideoWatch   ActivityType = "video_watch"
)

// Activity represents a single learning interaction. Activities are created
// once and later marked complete; they are never deleted client-side.
type Activity struct {
	ID         int                    `json:"id"`
	UserID     int                    `json:"user_id"`
	CourseID   int                    `json:"course_id"`
	Type       ActivityType           `json:"activity_type"`
	ResourceID string                 `json:"resource_id,omitempty"`
	Duration   int                    `json:"duration,omitempty"`
	Score      *float64               `json:"score,omitempty"`
	Completed  bool                   `json:"completed"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  string                 `json:"created_at,omitempty"`
	UpdatedAt  string                 `json:"updated_at,omitempty"`
}
