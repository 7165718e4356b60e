package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusphere/lms-client/internal/models"
)

func activity(id, userID, courseID int) models.Activity {
	return models.Activity{ID: id, UserID: userID, CourseID: courseID, Type: models.ActivityAssignment}
}

func TestActivitiesAddRespectsTags(t *testing.T) {
	s := NewActivities()
	require.True(t, s.SetUserActivities(s.Begin(), 7, []models.Activity{activity(1, 7, 2)}))
	require.True(t, s.SetCourseActivities(s.Begin(), 2, []models.Activity{activity(1, 7, 2)}))

	s.Add(activity(2, 7, 2))
	s.Add(activity(3, 9, 5))

	assert.Len(t, s.All(), 2)

	user := s.UserActivities()
	require.Len(t, user, 2)
	assert.Equal(t, 2, user[1].ID)

	course := s.CourseActivities()
	require.Len(t, course, 2)
	assert.Equal(t, 2, course[1].ID)
	assert.Equal(t, 2, s.CourseActivitiesFor())
}

func TestActivitiesAddIgnoresUntaggedLists(t *testing.T) {
	s := NewActivities()

	s.Add(activity(1, 7, 2))

	assert.Len(t, s.All(), 1)
	assert.Empty(t, s.UserActivities())
	assert.Empty(t, s.CourseActivities())
}

func TestActivitiesUpdateReplacesInPlace(t *testing.T) {
	s := NewActivities()
	require.True(t, s.SetAll(s.Begin(), []models.Activity{
		activity(1, 7, 2),
		activity(2, 7, 2),
	}))
	require.True(t, s.SetUserActivities(s.Begin(), 7, []models.Activity{activity(2, 7, 2)}))
	s.SetCurrent(activity(2, 7, 2))

	done := activity(2, 7, 2)
	done.Completed = true
	s.Update(done)

	all := s.All()
	require.Len(t, all, 2)
	assert.False(t, all[0].Completed)
	assert.True(t, all[1].Completed)
	assert.True(t, s.UserActivities()[0].Completed)
	require.NotNil(t, s.Current())
	assert.True(t, s.Current().Completed)
}

func TestActivitiesUpdateUnknownIDIsNoOp(t *testing.T) {
	s := NewActivities()
	require.True(t, s.SetAll(s.Begin(), []models.Activity{activity(1, 7, 2)}))

	s.Update(activity(99, 7, 2))

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, 1, all[0].ID)
}

func TestActivitiesStaleUserListRejected(t *testing.T) {
	s := NewActivities()

	first := s.Begin()
	second := s.Begin()

	require.True(t, s.SetUserActivities(second, 9, []models.Activity{activity(2, 9, 1)}))
	assert.False(t, s.SetUserActivities(first, 7, []models.Activity{activity(1, 7, 1)}))

	assert.Equal(t, 9, s.UserActivitiesFor())
	require.Len(t, s.UserActivities(), 1)
	assert.Equal(t, 2, s.UserActivities()[0].ID)
}
