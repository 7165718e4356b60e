package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusphere/lms-client/internal/dto"
	"github.com/edusphere/lms-client/internal/models"
	"github.com/edusphere/lms-client/internal/store"
	appErrors "github.com/edusphere/lms-client/pkg/errors"
)

type activityAPI interface {
	Activities(ctx context.Context) (*dto.ActivitiesResponse, error)
	UserActivities(ctx context.Context, userID int) (*dto.ActivitiesResponse, error)
	CourseActivities(ctx context.Context, courseID int) (*dto.ActivitiesResponse, error)
	CreateActivity(ctx context.Context, req dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	UpdateActivity(ctx context.Context, activityID int, req dto.UpdateActivityRequest) (*dto.ActivityResponse, error)
}

// ActivityService orchestrates the learning-activity workflows.
type ActivityService struct {
	api       activityAPI
	store     *store.Activities
	validator *validator.Validate
	logger    *zap.Logger
}

// NewActivityService constructs an ActivityService.
func NewActivityService(api activityAPI, st *store.Activities, validate *validator.Validate, logger *zap.Logger) *ActivityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{api: api, store: st, validator: validate, logger: logger}
}

// FetchActivities refreshes the canonical activity list.
func (s *ActivityService) FetchActivities(ctx context.Context) ([]models.Activity, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	token := s.store.Begin()
	resp, err := s.api.Activities(ctx)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load activities"))
		return nil, err
	}
	s.store.SetAll(token, resp.Activities)
	return resp.Activities, nil
}

// FetchUserActivities loads one user's activities and tags the list with the
// user id so later adds know whether they belong to it.
func (s *ActivityService) FetchUserActivities(ctx context.Context, userID int) ([]models.Activity, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	token := s.store.Begin()
	resp, err := s.api.UserActivities(ctx, userID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load user activities"))
		return nil, err
	}
	s.store.SetUserActivities(token, userID, resp.Activities)
	return resp.Activities, nil
}

// FetchCourseActivities loads one course's activities and tags the list with
// the course id.
func (s *ActivityService) FetchCourseActivities(ctx context.Context, courseID int) ([]models.Activity, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	token := s.store.Begin()
	resp, err := s.api.CourseActivities(ctx, courseID)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load course activities"))
		return nil, err
	}
	s.store.SetCourseActivities(token, courseID, resp.Activities)
	return resp.Activities, nil
}

// CreateActivity records a learning interaction.
func (s *ActivityService) CreateActivity(ctx context.Context, req dto.CreateActivityRequest) (*models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activity payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.CreateActivity(ctx, req)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to create activity"))
		return nil, err
	}
	s.store.Add(resp.Activity)
	activity := resp.Activity
	return &activity, nil
}

// UpdateActivity patches an activity and propagates the record everywhere.
func (s *ActivityService) UpdateActivity(ctx context.Context, activityID int, req dto.UpdateActivityRequest) (*models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid activity payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.UpdateActivity(ctx, activityID, req)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to update activity"))
		return nil, err
	}
	s.store.Update(resp.Activity)
	activity := resp.Activity
	return &activity, nil
}

// CompleteActivity marks an activity done, optionally recording the final
// score and duration in the same patch.
func (s *ActivityService) CompleteActivity(ctx context.Context, activityID int, req dto.UpdateActivityRequest) (*models.Activity, error) {
	completed := true
	req.Completed = &completed
	return s.UpdateActivity(ctx, activityID, req)
}
