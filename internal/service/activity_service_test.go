package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edusphere/lms-client/internal/dto"
	"github.com/edusphere/lms-client/internal/models"
	"github.com/edusphere/lms-client/internal/store"
)

type mockActivityAPI struct {
	activities  []models.Activity
	created     models.Activity
	createCalls int
	updated     models.Activity
	lastUpdate  dto.UpdateActivityRequest
}

func (m *mockActivityAPI) Activities(ctx context.Context) (*dto.ActivitiesResponse, error) {
	return &dto.ActivitiesResponse{Activities: m.activities}, nil
}

func (m *mockActivityAPI) UserActivities(ctx context.Context, userID int) (*dto.ActivitiesResponse, error) {
	return &dto.ActivitiesResponse{Activities: m.activities}, nil
}

func (m *mockActivityAPI) CourseActivities(ctx context.Context, courseID int) (*dto.ActivitiesResponse, error) {
	return &dto.ActivitiesResponse{Activities: m.activities}, nil
}

func (m *mockActivityAPI) CreateActivity(ctx context.Context, req dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	m.createCalls++
	return &dto.ActivityResponse{Activity: m.created}, nil
}

func (m *mockActivityAPI) UpdateActivity(ctx context.Context, activityID int, req dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	m.lastUpdate = req
	return &dto.ActivityResponse{Activity: m.updated}, nil
}

func TestActivityServiceFetchUserActivitiesTagsList(t *testing.T) {
	api := &mockActivityAPI{activities: []models.Activity{
		{ID: 1, UserID: 7, CourseID: 2, Type: models.ActivityQuiz},
	}}
	st := store.NewActivities()
	svc := NewActivityService(api, st, validator.New(), zap.NewNop())

	activities, err := svc.FetchUserActivities(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, activities, 1)
	assert.Equal(t, 7, st.UserActivitiesFor())
}

func TestActivityServiceCreateValidates(t *testing.T) {
	api := &mockActivityAPI{}
	svc := NewActivityService(api, store.NewActivities(), validator.New(), zap.NewNop())

	_, err := svc.CreateActivity(context.Background(), dto.CreateActivityRequest{UserID: 7})
	require.Error(t, err)
	assert.Zero(t, api.createCalls)
}

func TestActivityServiceCreateAppendsToMatchingLists(t *testing.T) {
	api := &mockActivityAPI{created: models.Activity{ID: 5, UserID: 7, CourseID: 2, Type: models.ActivityAssignment}}
	st := store.NewActivities()
	require.True(t, st.SetUserActivities(st.Begin(), 7, nil))
	svc := NewActivityService(api, st, validator.New(), zap.NewNop())

	activity, err := svc.CreateActivity(context.Background(), dto.CreateActivityRequest{
		UserID:   7,
		CourseID: 2,
		Type:     models.ActivityAssignment,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, activity.ID)

	assert.Len(t, st.All(), 1)
	assert.Len(t, st.UserActivities(), 1)
	assert.Empty(t, st.CourseActivities())
}

func TestActivityServiceCompleteSetsCompletedFlag(t *testing.T) {
	api := &mockActivityAPI{updated: models.Activity{ID: 5, UserID: 7, CourseID: 2, Completed: true}}
	st := store.NewActivities()
	require.True(t, st.SetAll(st.Begin(), []models.Activity{{ID: 5, UserID: 7, CourseID: 2}}))
	svc := NewActivityService(api, st, validator.New(), zap.NewNop())

	activity, err := svc.CompleteActivity(context.Background(), 5, dto.UpdateActivityRequest{Score: score(95)})
	require.NoError(t, err)
	assert.True(t, activity.Completed)

	require.NotNil(t, api.lastUpdate.Completed)
	assert.True(t, *api.lastUpdate.Completed)
	require.NotNil(t, api.lastUpdate.Score)
	assert.Equal(t, 95.0, *api.lastUpdate.Score)

	assert.True(t, st.All()[0].Completed)
}
