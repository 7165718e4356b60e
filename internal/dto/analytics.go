package dto

import "github.com/edusphere/lms-client/internal/models"

// UserAnalyticsResponse is returned by GET /analytics/user/{id}. The numeric
// fields default to zero when the backend omits them.
type UserAnalyticsResponse struct {
	Status
	models.UserAnalytics
}

// CourseAnalyticsResponse is returned by GET /analytics/course/{id}.
type CourseAnalyticsResponse struct {
	Status
	models.CourseAnalytics
}

// OverviewResponse is returned by GET /analytics/overview and
// GET /admin/overview.
type OverviewResponse struct {
	Status
	Data models.SystemOverview `json:"data"`
}
