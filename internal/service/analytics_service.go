package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/edusphere/lms-client/internal/dto"
	"github.com/edusphere/lms-client/internal/models"
	"github.com/edusphere/lms-client/internal/store"
	"github.com/edusphere/lms-client/pkg/labels"
)

type analyticsAPI interface {
	UserAnalytics(ctx context.Context, userID int) (*dto.UserAnalyticsResponse, error)
	CourseAnalytics(ctx context.Context, courseID int) (*dto.CourseAnalyticsResponse, error)
	SystemOverview(ctx context.Context) (*dto.OverviewResponse, error)
}

// AnalyticsService orchestrates the dashboard snapshot workflows.
type AnalyticsService struct {
	api    analyticsAPI
	store  *store.Analytics
	logger *zap.Logger
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(api analyticsAPI, st *store.Analytics, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{api: api, store: st, logger: logger}
}

// FetchUserAnalytics loads one user's learning analytics.
func (s *AnalyticsService) FetchUserAnalytics(ctx context.Context, userID int) (*models.UserAnalytics, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.UserAnalytics(ctx, userID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load user analytics"))
		return nil, err
	}
	data := resp.UserAnalytics
	data.UserID = userID
	if data.CourseProgress == nil {
		data.CourseProgress = []models.CourseProgressSummary{}
	}
	if data.RecentActivities == nil {
		data.RecentActivities = []models.Activity{}
	}
	s.store.SetUserAnalytics(data)
	return &data, nil
}

// FetchCourseAnalytics loads one course's activity analytics.
func (s *AnalyticsService) FetchCourseAnalytics(ctx context.Context, courseID int) (*models.CourseAnalytics, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.CourseAnalytics(ctx, courseID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load course analytics"))
		return nil, err
	}
	data := resp.CourseAnalytics
	data.CourseID = courseID
	if data.ActiveStudents == nil {
		data.ActiveStudents = []models.ActiveStudent{}
	}
	if data.ActivityTypes == nil {
		data.ActivityTypes = map[string]int{}
	}
	s.store.SetCourseAnalytics(data)
	return &data, nil
}

// FetchSystemOverview loads the platform-wide snapshot. On failure the store
// degrades to a zero-valued snapshot so dashboards render empty rather than
// stale, and the error still propagates.
func (s *AnalyticsService) FetchSystemOverview(ctx context.Context) (*models.SystemOverview, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.SystemOverview(ctx)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load system overview"))
		s.store.SetOverview(emptyOverview())
		return nil, err
	}
	data := resp.Data
	data.ActivityTypeDistribution = labels.RelabelDistribution(data.ActivityTypeDistribution)
	if data.ActivityTrend == nil {
		data.ActivityTrend = []models.TrendPoint{}
	}
	s.store.SetOverview(data)
	return &data, nil
}

func emptyOverview() models.SystemOverview {
	return models.SystemOverview{
		ActivityTypeDistribution: map[string]int{},
		ActivityTrend:            []models.TrendPoint{},
	}
}
