package models

// CourseProgressSummary is the per-course slice of a user analytics report.
type CourseProgressSummary struct {
	CourseID            int     `json:"course_id"`
	CourseTitle         string  `json:"course_title"`
	TotalActivities     int     `json:"total_activities"`
	CompletedActivities int     `json:"completed_activities"`
	ProgressPercent     float64 `json:"progress_percent"`
}

// UserAnalytics aggregates one user's learning behaviour.
type UserAnalytics struct {
	UserID              int                     `json:"user_id"`
	TotalDuration       int                     `json:"total_duration"`
	TotalActivities     int                     `json:"total_activities"`
	CompletedActivities int                     `json:"completed_activities"`
	AvgScore            float64                 `json:"avg_score"`
	CourseProgress      []CourseProgressSummary `json:"course_progress"`
	RecentActivities    []Activity              `json:"recent_activities"`
}

// ActiveStudent ranks a student inside a course analytics report.
type ActiveStudent struct {
	UserID        int    `json:"user_id"`
	Username      string `json:"username"`
	ActivityCount int    `json:"activity_count"`
}

// CourseAnalytics aggregates activity across one course.
type CourseAnalytics struct {
	CourseID       int             `json:"course_id"`
	StudentCount   int             `json:"student_count"`
	ActivityCount  int             `json:"activity_count"`
	CompletionRate float64         `json:"completion_rate"`
	AvgScore       float64         `json:"avg_score"`
	ActiveStudents []ActiveStudent `json:"active_students"`
	ActivityTypes  map[string]int  `json:"activity_types"`
}

// UserCounts breaks the user population down by role.
type UserCounts struct {
	Total    int `json:"total"`
	Students int `json:"students"`
	Teachers int `json:"teachers"`
	Admins   int `json:"admins"`
}

// CourseCounts breaks courses down by status.
type CourseCounts struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Archived int `json:"archived"`
}

// ActivityCounts summarises recorded activities.
type ActivityCounts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// TrendPoint is one day of the system activity trend.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// SystemOverview is the platform-wide snapshot shown on admin dashboards.
type SystemOverview struct {
	UserCounts               UserCounts     `json:"user_counts"`
	CourseCounts             CourseCounts   `json:"course_counts"`
	ActivityCounts           ActivityCounts `json:"activity_counts"`
	ActivityTypeDistribution map[string]int `json:"activity_type_distribution"`
	ActivityTrend            []TrendPoint   `json:"activity_trend"`
}
